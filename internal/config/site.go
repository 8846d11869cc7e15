package config

import "time"

// Site is a registry entry for a site created by wpsite
type Site struct {
	Name      string    `yaml:"name"`
	Root      string    `yaml:"root"`
	Enabled   bool      `yaml:"enabled"`
	CreatedAt time.Time `yaml:"created_at"`
}

// RecordSite adds or refreshes the entry for name as enabled
func (c *Config) RecordSite(name, root string, now time.Time) *Site {
	site, exists := c.Sites[name]
	if !exists {
		site = &Site{Name: name, CreatedAt: now}
		c.Sites[name] = site
	}
	site.Root = root
	site.Enabled = true
	return site
}

// SetEnabled updates the enabled flag; it reports false if name is unknown
func (c *Config) SetEnabled(name string, enabled bool) bool {
	site, exists := c.Sites[name]
	if !exists {
		return false
	}
	site.Enabled = enabled
	return true
}

// RemoveSite drops name from the registry; it reports whether it was present
func (c *Config) RemoveSite(name string) bool {
	if _, exists := c.Sites[name]; !exists {
		return false
	}
	delete(c.Sites, name)
	return true
}
