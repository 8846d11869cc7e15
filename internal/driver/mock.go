package driver

import "context"

// MockDriver is a test double for Driver
type MockDriver struct {
	name string

	// Function mocks - set these to customize behavior
	LocateFunc  func() (string, error)
	VersionFunc func() (string, error)
	UpFunc      func(dir string) error
	StartFunc   func(dir string) error
	StopFunc    func(dir string) error
	DownFunc    func(dir string) error

	// Call tracking - each slice records the dir passed
	VersionCalls int
	UpCalls      []string
	StartCalls   []string
	StopCalls    []string
	DownCalls    []string
}

// NewMockDriver creates a MockDriver whose operations all succeed
func NewMockDriver(name string) *MockDriver {
	return &MockDriver{name: name}
}

func (m *MockDriver) Name() string {
	return m.name
}

func (m *MockDriver) Binary() string {
	return m.name
}

func (m *MockDriver) Locate() (string, error) {
	if m.LocateFunc != nil {
		return m.LocateFunc()
	}
	return "/usr/bin/" + m.name, nil
}

func (m *MockDriver) Version(context.Context) (string, error) {
	m.VersionCalls++
	if m.VersionFunc != nil {
		return m.VersionFunc()
	}
	return m.name + " version 1.29.2", nil
}

func (m *MockDriver) Up(_ context.Context, dir string) error {
	m.UpCalls = append(m.UpCalls, dir)
	if m.UpFunc != nil {
		return m.UpFunc(dir)
	}
	return nil
}

func (m *MockDriver) Start(_ context.Context, dir string) error {
	m.StartCalls = append(m.StartCalls, dir)
	if m.StartFunc != nil {
		return m.StartFunc(dir)
	}
	return nil
}

func (m *MockDriver) Stop(_ context.Context, dir string) error {
	m.StopCalls = append(m.StopCalls, dir)
	if m.StopFunc != nil {
		return m.StopFunc(dir)
	}
	return nil
}

func (m *MockDriver) Down(_ context.Context, dir string) error {
	m.DownCalls = append(m.DownCalls, dir)
	if m.DownFunc != nil {
		return m.DownFunc(dir)
	}
	return nil
}
