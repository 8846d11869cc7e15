// Package hosts maintains the loopback entries wpsite adds to the
// host-resolution file (/etc/hosts).
//
// Every read-modify-write holds an exclusive advisory lock on the file, so two
// wpsite processes editing different sites cannot interleave. Removal rewrites
// the file in place rather than renaming a temp file over it, which keeps
// bind-mounted hosts files (containers) working.
package hosts

import (
	"bytes"
	"io"
	"os"
	"strings"

	"github.com/wpstack/wpsite/internal/errors"
	"github.com/wpstack/wpsite/internal/logger"
)

// LoopbackAddr is the address every site name is mapped to.
const LoopbackAddr = "127.0.0.1"

// Entry returns the hosts line for site, without a line terminator.
func Entry(site string) string {
	return LoopbackAddr + " " + site
}

// File is a host-resolution file on disk.
type File struct {
	Path string
}

// New returns a File for path.
func New(path string) *File {
	return &File{Path: path}
}

// Add appends "127.0.0.1 <site>\n". Existing entries are not checked, so
// calling Add twice leaves two identical lines.
func (f *File) Add(site string) error {
	fh, err := os.OpenFile(f.Path, os.O_RDWR|os.O_APPEND|os.O_CREATE, 0644)
	if err != nil {
		return errors.Filesystem("failed to open hosts file", err)
	}
	defer fh.Close()

	unlock, err := lockFile(fh)
	if err != nil {
		return errors.Filesystem("failed to lock hosts file", err)
	}
	defer unlock()

	line := Entry(site) + "\n"
	missingNewline, err := endsWithoutNewline(fh)
	if err != nil {
		return errors.Filesystem("failed to read hosts file", err)
	}
	if missingNewline {
		line = "\n" + line
	}

	if _, err := fh.WriteString(line); err != nil {
		return errors.Filesystem("failed to write hosts file", err)
	}

	logger.DebugFields("added hosts entry", map[string]interface{}{
		"file":  f.Path,
		"entry": Entry(site),
	})
	return nil
}

// Remove drops every line starting with "127.0.0.1 <site>" and returns how
// many lines were dropped. Retained lines keep their order and bytes.
func (f *File) Remove(site string) (int, error) {
	fh, err := os.OpenFile(f.Path, os.O_RDWR, 0)
	if err != nil {
		return 0, errors.Filesystem("failed to open hosts file", err)
	}
	defer fh.Close()

	unlock, err := lockFile(fh)
	if err != nil {
		return 0, errors.Filesystem("failed to lock hosts file", err)
	}
	defer unlock()

	content, err := io.ReadAll(fh)
	if err != nil {
		return 0, errors.Filesystem("failed to read hosts file", err)
	}

	kept, removed := Filter(content, site)
	if removed == 0 {
		logger.Debug("no hosts entry for %s in %s", site, f.Path)
		return 0, nil
	}

	if err := fh.Truncate(0); err != nil {
		return 0, errors.Filesystem("failed to truncate hosts file", err)
	}
	if _, err := fh.WriteAt(kept, 0); err != nil {
		return 0, errors.Filesystem("failed to write hosts file", err)
	}

	logger.DebugFields("removed hosts entries", map[string]interface{}{
		"file":    f.Path,
		"site":    site,
		"removed": removed,
	})
	return removed, nil
}

// Filter returns content without the lines that start with Entry(site), and
// the number of lines dropped.
func Filter(content []byte, site string) ([]byte, int) {
	prefix := Entry(site)
	var out bytes.Buffer
	out.Grow(len(content))

	removed := 0
	for _, line := range strings.SplitAfter(string(content), "\n") {
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, prefix) {
			removed++
			continue
		}
		out.WriteString(line)
	}
	return out.Bytes(), removed
}

func endsWithoutNewline(fh *os.File) (bool, error) {
	info, err := fh.Stat()
	if err != nil {
		return false, err
	}
	if info.Size() == 0 {
		return false, nil
	}
	last := make([]byte, 1)
	if _, err := fh.ReadAt(last, info.Size()-1); err != nil {
		return false, err
	}
	return last[0] != '\n', nil
}
