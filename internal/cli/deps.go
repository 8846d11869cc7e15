package cli

import (
	"time"

	"github.com/wpstack/wpsite/internal/config"
	"github.com/wpstack/wpsite/internal/driver"
	"github.com/wpstack/wpsite/internal/hosts"
	"github.com/wpstack/wpsite/internal/preflight"
	"github.com/wpstack/wpsite/internal/site"
)

// Dependencies aggregates all CLI external dependencies for testability
type Dependencies struct {
	ConfigLoader  ConfigLoader
	DriverFactory DriverFactory
	HostsFactory  HostsFactory
	PortProbe     preflight.PortProbe
	Now           func() time.Time
}

// ConfigLoader handles configuration loading and saving
type ConfigLoader interface {
	Load() (*config.Config, error)
	Save(cfg *config.Config) error
}

// DriverFactory creates orchestrator drivers by name
type DriverFactory interface {
	Create(name string) (driver.Driver, error)
}

// HostsFactory opens a host-resolution file for editing
type HostsFactory interface {
	Open(path string) site.HostEditor
}

// Package-level dependencies (can be overridden for testing)
var deps = &Dependencies{
	ConfigLoader:  &realConfigLoader{},
	DriverFactory: &realDriverFactory{},
	HostsFactory:  &realHostsFactory{},
	PortProbe:     preflight.SystemPortProbe{},
	Now:           time.Now,
}

type realConfigLoader struct{}

func (r *realConfigLoader) Load() (*config.Config, error) {
	return config.Load()
}

func (r *realConfigLoader) Save(cfg *config.Config) error {
	return cfg.Save()
}

type realDriverFactory struct{}

func (r *realDriverFactory) Create(name string) (driver.Driver, error) {
	return driver.New(name)
}

type realHostsFactory struct{}

func (r *realHostsFactory) Open(path string) site.HostEditor {
	return hosts.New(path)
}
