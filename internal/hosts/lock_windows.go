//go:build windows

package hosts

import (
	"os"

	"golang.org/x/sys/windows"
)

// lockFile takes an exclusive LockFileEx lock over the whole of fh.
func lockFile(fh *os.File) (func(), error) {
	handle := windows.Handle(fh.Fd())
	ol := new(windows.Overlapped)
	if err := windows.LockFileEx(handle, windows.LOCKFILE_EXCLUSIVE_LOCK, 0, ^uint32(0), ^uint32(0), ol); err != nil {
		return nil, err
	}
	return func() { _ = windows.UnlockFileEx(handle, 0, ^uint32(0), ^uint32(0), ol) }, nil
}
