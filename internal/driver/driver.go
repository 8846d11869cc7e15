package driver

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/wpstack/wpsite/internal/executor"
)

// Driver is the interface every orchestrator driver implements
type Driver interface {
	// Name returns the driver name (docker-compose, docker, podman-compose)
	Name() string

	// Binary returns the executable looked up on PATH
	Binary() string

	// Locate returns the full path of Binary on PATH
	Locate() (string, error)

	// Version runs the version query and returns its output
	Version(ctx context.Context) (string, error)

	// Up creates and starts the services in dir, detached
	Up(ctx context.Context, dir string) error

	// Start resumes stopped services in dir
	Start(ctx context.Context, dir string) error

	// Stop pauses running services in dir
	Stop(ctx context.Context, dir string) error

	// Down removes the services in dir together with their volumes
	Down(ctx context.Context, dir string) error
}

// CommandError is a failed orchestrator invocation
type CommandError struct {
	Command string
	Output  string
	Err     error
}

func (e *CommandError) Error() string {
	out := strings.TrimSpace(e.Output)
	if out == "" {
		return fmt.Sprintf("%s: %v", e.Command, e.Err)
	}
	return fmt.Sprintf("%s: %v\n%s", e.Command, e.Err, out)
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// invocation describes how one orchestrator is invoked
type invocation struct {
	command []string
}

var known = map[string]invocation{
	"docker-compose": {command: []string{"docker-compose"}},
	"docker":         {command: []string{"docker", "compose"}},
	"podman-compose": {command: []string{"podman-compose"}},
}

// Available returns the supported driver names, sorted
func Available() []string {
	names := make([]string, 0, len(known))
	for name := range known {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ComposeDriver runs a compose-compatible command line
type ComposeDriver struct {
	name    string
	command []string
	exec    executor.CommandExecutor
}

// New creates the named driver backed by the system executor
func New(name string) (*ComposeDriver, error) {
	return NewWithExecutor(name, executor.NewSystemExecutor())
}

// NewWithExecutor creates the named driver with a custom executor (for testing)
func NewWithExecutor(name string, exec executor.CommandExecutor) (*ComposeDriver, error) {
	s, ok := known[name]
	if !ok {
		return nil, fmt.Errorf("unknown orchestrator %q (available: %s)", name, strings.Join(Available(), ", "))
	}
	return &ComposeDriver{name: name, command: s.command, exec: exec}, nil
}

// Name returns the driver name
func (d *ComposeDriver) Name() string {
	return d.name
}

// Binary returns the executable name
func (d *ComposeDriver) Binary() string {
	return d.command[0]
}

// Locate looks the executable up on PATH
func (d *ComposeDriver) Locate() (string, error) {
	return d.exec.LookPath(d.command[0])
}

// Version runs "<cmd> --version"
func (d *ComposeDriver) Version(ctx context.Context) (string, error) {
	out, err := d.run(ctx, "", "--version")
	return strings.TrimSpace(out), err
}

// Up runs "<cmd> up -d" in dir
func (d *ComposeDriver) Up(ctx context.Context, dir string) error {
	_, err := d.run(ctx, dir, "up", "-d")
	return err
}

// Start runs "<cmd> start" in dir
func (d *ComposeDriver) Start(ctx context.Context, dir string) error {
	_, err := d.run(ctx, dir, "start")
	return err
}

// Stop runs "<cmd> stop" in dir
func (d *ComposeDriver) Stop(ctx context.Context, dir string) error {
	_, err := d.run(ctx, dir, "stop")
	return err
}

// Down runs "<cmd> down -v" in dir
func (d *ComposeDriver) Down(ctx context.Context, dir string) error {
	_, err := d.run(ctx, dir, "down", "-v")
	return err
}

func (d *ComposeDriver) run(ctx context.Context, dir string, verb ...string) (string, error) {
	args := append(append([]string{}, d.command[1:]...), verb...)
	out, err := d.exec.Execute(ctx, dir, d.command[0], args...)
	if err != nil {
		return string(out), &CommandError{
			Command: strings.Join(append([]string{d.command[0]}, args...), " "),
			Output:  string(out),
			Err:     err,
		}
	}
	return string(out), nil
}
