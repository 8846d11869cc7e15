package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/wpstack/wpsite/internal/logger"
	"github.com/wpstack/wpsite/internal/platform"
)

// Config represents the application configuration
type Config struct {
	Orchestrator string           `yaml:"orchestrator"`
	BaseDir      string           `yaml:"base_dir,omitempty"`
	HostsFile    string           `yaml:"hosts_file,omitempty"`
	Sites        map[string]*Site `yaml:"sites"`
}

const (
	configDir  = ".config/wpsite"
	configFile = "config.yaml"

	// DefaultOrchestrator is the driver used when none is configured.
	DefaultOrchestrator = "docker-compose"
)

// New creates a new Config with default values
func New() *Config {
	return &Config{
		Orchestrator: DefaultOrchestrator,
		Sites:        make(map[string]*Site),
	}
}

// ConfigDir returns the config directory path
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, configDir), nil
}

// ConfigPath returns the config file path
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFile), nil
}

// Load reads the config from the default location. Without a resolvable
// home directory there is no config file, so defaults are returned.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		logger.Debug("no config file, using defaults: %v", err)
		return New(), nil
	}
	return LoadFrom(path)
}

// LoadFrom reads the config at path, returning defaults if it does not exist
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return New(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := New()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.Orchestrator == "" {
		cfg.Orchestrator = DefaultOrchestrator
	}
	if cfg.Sites == nil {
		cfg.Sites = make(map[string]*Site)
	}

	return cfg, nil
}

// Save writes the config to the default location
func (c *Config) Save() error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	return c.SaveTo(path)
}

// SaveTo writes the config to path, creating parent directories
func (c *Config) SaveTo(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// ResolveHostsFile returns the configured hosts file or the platform default
func (c *Config) ResolveHostsFile() (string, error) {
	if c.HostsFile != "" {
		return c.HostsFile, nil
	}
	return platform.HostsFile()
}

// ResolveBaseDir returns the absolute directory site roots are created under.
// An unset base_dir means the current working directory.
func (c *Config) ResolveBaseDir() (string, error) {
	dir := c.BaseDir
	if dir == "" {
		dir = "."
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("failed to resolve base directory: %w", err)
	}
	return abs, nil
}
