package executor

import (
	"context"
	"os/exec"

	"github.com/wpstack/wpsite/internal/logger"
)

// CommandExecutor runs system commands
type CommandExecutor interface {
	// Execute runs name with args inside dir and returns combined output.
	// An empty dir means the current working directory.
	Execute(ctx context.Context, dir, name string, args ...string) ([]byte, error)

	// LookPath searches for an executable in the directories named by the PATH
	LookPath(file string) (string, error)
}

// SystemExecutor implements CommandExecutor using os/exec
type SystemExecutor struct{}

// NewSystemExecutor creates a new SystemExecutor
func NewSystemExecutor() *SystemExecutor {
	return &SystemExecutor{}
}

// Execute runs a command in dir and returns combined output
func (e *SystemExecutor) Execute(ctx context.Context, dir, name string, args ...string) ([]byte, error) {
	logger.Command(dir, name, args...)
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	return cmd.CombinedOutput()
}

// LookPath searches for an executable
func (e *SystemExecutor) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

// MockExecutor is a mock implementation for testing
type MockExecutor struct {
	ExecuteFunc  func(dir, name string, args ...string) ([]byte, error)
	LookPathFunc func(file string) (string, error)
	Calls        []CommandCall
}

// CommandCall records a command execution for verification
type CommandCall struct {
	Dir  string
	Name string
	Args []string
}

// Execute records the call and delegates to ExecuteFunc
func (m *MockExecutor) Execute(_ context.Context, dir, name string, args ...string) ([]byte, error) {
	m.Calls = append(m.Calls, CommandCall{Dir: dir, Name: name, Args: args})
	if m.ExecuteFunc != nil {
		return m.ExecuteFunc(dir, name, args...)
	}
	return []byte(""), nil
}

// LookPath calls the mock function
func (m *MockExecutor) LookPath(file string) (string, error) {
	if m.LookPathFunc != nil {
		return m.LookPathFunc(file)
	}
	return "/usr/bin/" + file, nil
}
