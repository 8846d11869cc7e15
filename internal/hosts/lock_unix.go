//go:build unix

package hosts

import (
	"os"

	"golang.org/x/sys/unix"
)

// lockFile takes an exclusive flock on fh, blocking until it is available.
func lockFile(fh *os.File) (func(), error) {
	fd := int(fh.Fd())
	for {
		err := unix.Flock(fd, unix.LOCK_EX)
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			return nil, err
		}
		break
	}
	return func() { _ = unix.Flock(fd, unix.LOCK_UN) }, nil
}
