package preflight

import (
	"context"
	"errors"
	"net"
	"reflect"
	"strings"
	"testing"

	"github.com/wpstack/wpsite/internal/driver"
	wperrors "github.com/wpstack/wpsite/internal/errors"
	"github.com/wpstack/wpsite/internal/executor"
)

func TestCheckOrchestrator(t *testing.T) {
	ctx := context.Background()

	ok := driver.NewMockDriver("docker-compose")
	if err := CheckOrchestrator(ctx, ok); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok.VersionCalls != 1 {
		t.Errorf("expected one version query, got %d", ok.VersionCalls)
	}

	tests := []struct {
		name     string
		lookPath func(file string) (string, error)
		execute  func(dir, name string, args ...string) ([]byte, error)
		wantMsg  string
		wantRuns int
	}{
		{
			name: "not on PATH",
			lookPath: func(file string) (string, error) {
				return "", errors.New("executable file not found in $PATH")
			},
			wantMsg:  "docker-compose is not installed. Please make sure docker-compose is installed and in the system PATH",
			wantRuns: 0,
		},
		{
			name: "version query exits non-zero",
			execute: func(dir, name string, args ...string) ([]byte, error) {
				return nil, errors.New("exit status 1")
			},
			wantMsg:  "docker-compose was found at /usr/bin/docker-compose but its version query failed",
			wantRuns: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := &executor.MockExecutor{LookPathFunc: tt.lookPath, ExecuteFunc: tt.execute}
			failing, err := driver.NewWithExecutor("docker-compose", mock)
			if err != nil {
				t.Fatal(err)
			}

			err = CheckOrchestrator(ctx, failing)
			if !wperrors.Is(err, wperrors.ErrMissingDependency) {
				t.Fatalf("expected DEPENDENCY error, got %v", err)
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("message %q does not contain %q", err.Error(), tt.wantMsg)
			}
			if len(mock.Calls) != tt.wantRuns {
				t.Errorf("expected %d runs, got %d", tt.wantRuns, len(mock.Calls))
			}
		})
	}

	missing := driver.NewMockDriver("podman-compose")
	missing.LocateFunc = func() (string, error) { return "", errors.New("not found") }
	if err := CheckOrchestrator(ctx, missing); err == nil {
		t.Fatal("expected error")
	}
	if missing.VersionCalls != 0 {
		t.Error("version should not be queried when the binary is missing")
	}
}

func TestPortConflicts(t *testing.T) {
	ctx := context.Background()
	probe := StaticPortProbe{Ports: []int{22, 8080, 8000}}

	busy, err := PortConflicts(ctx, probe, []int{9000, 8080, 8001, 8000, 8080})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(busy, []int{8000, 8080}) {
		t.Errorf("got %v", busy)
	}

	if _, err := PortConflicts(ctx, StaticPortProbe{Err: errors.New("denied")}, []int{80}); err == nil {
		t.Error("expected probe error")
	}
}

func TestSystemPortProbe(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Skipf("cannot listen: %v", err)
	}
	defer ln.Close()
	port := ln.Addr().(*net.TCPAddr).Port

	ports, err := SystemPortProbe{}.ListeningPorts(context.Background())
	if err != nil {
		t.Skipf("socket table not readable here: %v", err)
	}
	if !ports[port] {
		t.Errorf("expected port %d to be reported as listening", port)
	}
}
