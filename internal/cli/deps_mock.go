package cli

import (
	"time"

	"github.com/wpstack/wpsite/internal/config"
	"github.com/wpstack/wpsite/internal/driver"
	"github.com/wpstack/wpsite/internal/hosts"
	"github.com/wpstack/wpsite/internal/preflight"
	"github.com/wpstack/wpsite/internal/site"
)

// MockConfigLoader is a test double for ConfigLoader
type MockConfigLoader struct {
	Cfg       *config.Config
	LoadErr   error
	SaveErr   error
	SaveCalls int
}

func (m *MockConfigLoader) Load() (*config.Config, error) {
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	if m.Cfg == nil {
		m.Cfg = config.New()
	}
	return m.Cfg, nil
}

func (m *MockConfigLoader) Save(cfg *config.Config) error {
	m.SaveCalls++
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.Cfg = cfg
	return nil
}

// MockDriverFactory is a test double for DriverFactory
type MockDriverFactory struct {
	Driver    driver.Driver
	Err       error
	Requested []string
}

func (m *MockDriverFactory) Create(name string) (driver.Driver, error) {
	m.Requested = append(m.Requested, name)
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Driver != nil {
		return m.Driver, nil
	}
	return driver.NewMockDriver(name), nil
}

// FileHostsFactory opens real hosts files; tests point it at temp files
type FileHostsFactory struct {
	Opened []string
}

func (f *FileHostsFactory) Open(path string) site.HostEditor {
	f.Opened = append(f.Opened, path)
	return hosts.New(path)
}

// MockDependenciesBuilder helps create mock dependencies for tests
type MockDependenciesBuilder struct {
	deps *Dependencies
}

// NewMockDeps creates a new MockDependenciesBuilder with sensible defaults
func NewMockDeps() *MockDependenciesBuilder {
	return &MockDependenciesBuilder{
		deps: &Dependencies{
			ConfigLoader:  &MockConfigLoader{Cfg: config.New()},
			DriverFactory: &MockDriverFactory{},
			HostsFactory:  &FileHostsFactory{},
			PortProbe:     preflight.StaticPortProbe{},
			Now:           func() time.Time { return time.Date(2026, 10, 18, 10, 0, 0, 0, time.UTC) },
		},
	}
}

// WithConfigLoader sets a custom config loader
func (b *MockDependenciesBuilder) WithConfigLoader(loader ConfigLoader) *MockDependenciesBuilder {
	b.deps.ConfigLoader = loader
	return b
}

// WithDriver sets the driver returned for any orchestrator name
func (b *MockDependenciesBuilder) WithDriver(drv driver.Driver) *MockDependenciesBuilder {
	b.deps.DriverFactory = &MockDriverFactory{Driver: drv}
	return b
}

// WithDriverFactory sets a custom driver factory
func (b *MockDependenciesBuilder) WithDriverFactory(factory DriverFactory) *MockDependenciesBuilder {
	b.deps.DriverFactory = factory
	return b
}

// WithListeningPorts makes the port probe report ports as busy
func (b *MockDependenciesBuilder) WithListeningPorts(ports ...int) *MockDependenciesBuilder {
	b.deps.PortProbe = preflight.StaticPortProbe{Ports: ports}
	return b
}

// Build returns the configured Dependencies
func (b *MockDependenciesBuilder) Build() *Dependencies {
	return b.deps
}
