package platform

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func TestHostsFileFor(t *testing.T) {
	tests := []struct {
		goos       string
		systemRoot string
		want       string
		wantErr    bool
	}{
		{goos: "linux", want: "/etc/hosts"},
		{goos: "darwin", want: "/etc/hosts"},
		{goos: "plan9", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.goos, func(t *testing.T) {
			got, err := hostsFileFor(tt.goos, tt.systemRoot)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %s", tt.goos)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestHostsFileFor_Windows(t *testing.T) {
	got, err := hostsFileFor("windows", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasSuffix(filepath.ToSlash(got), "System32/drivers/etc/hosts") {
		t.Errorf("unexpected windows hosts path %s", got)
	}
}

func TestHostsFile(t *testing.T) {
	path, err := HostsFile()
	switch runtime.GOOS {
	case "linux", "darwin":
		if err != nil || path != DefaultHostsFile {
			t.Errorf("HostsFile() = %q, %v", path, err)
		}
	}
}

func TestDirExists(t *testing.T) {
	dir := t.TempDir()
	if !DirExists(dir) {
		t.Error("temp dir should exist")
	}

	file := filepath.Join(dir, "file")
	if err := os.WriteFile(file, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	if DirExists(file) {
		t.Error("regular file is not a directory")
	}
	if DirExists(filepath.Join(dir, "missing")) {
		t.Error("missing path should not exist")
	}
}
