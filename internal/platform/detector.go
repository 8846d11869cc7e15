// Package platform resolves OS-specific locations used by wpsite.
package platform

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// DefaultHostsFile is the host-resolution file on Unix-like systems.
const DefaultHostsFile = "/etc/hosts"

// HostsFile returns the host-resolution file for the current OS.
func HostsFile() (string, error) {
	return hostsFileFor(runtime.GOOS, os.Getenv("SystemRoot"))
}

func hostsFileFor(goos, systemRoot string) (string, error) {
	switch goos {
	case "linux", "darwin", "freebsd", "openbsd", "netbsd":
		return DefaultHostsFile, nil
	case "windows":
		if systemRoot == "" {
			systemRoot = `C:\Windows`
		}
		return filepath.Join(systemRoot, "System32", "drivers", "etc", "hosts"), nil
	default:
		return "", fmt.Errorf("unsupported platform: %s", goos)
	}
}

// DirExists reports whether path exists and is a directory.
func DirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// Platform returns a string describing the current platform.
func Platform() string {
	return fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH)
}
