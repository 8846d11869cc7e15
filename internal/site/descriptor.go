package site

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Service is the subset of a compose service wpsite inspects.
type Service struct {
	Image       string            `yaml:"image"`
	Restart     string            `yaml:"restart,omitempty"`
	DependsOn   []string          `yaml:"depends_on,omitempty"`
	Ports       []string          `yaml:"ports,omitempty"`
	Volumes     []string          `yaml:"volumes,omitempty"`
	Environment map[string]string `yaml:"environment,omitempty"`
	Networks    []string          `yaml:"networks,omitempty"`
}

// Descriptor is a parsed docker-compose.yml.
type Descriptor struct {
	Version  string                 `yaml:"version"`
	Services map[string]Service     `yaml:"services"`
	Networks map[string]interface{} `yaml:"networks"`
	Volumes  map[string]interface{} `yaml:"volumes"`
}

// Service names and shared resources the generated descriptor declares.
const (
	ServiceDatabase = "db"
	ServiceRuntime  = "phpfpm"
	ServiceDBAdmin  = "phpmyadmin"
	ServiceCMS      = "wordpress"
	ServiceProxy    = "proxy"
	SharedNetwork   = "wpsite"
	DatabaseVolume  = "db_data"
)

// RequiredServices are the five services every site runs.
var RequiredServices = []string{ServiceDatabase, ServiceRuntime, ServiceDBAdmin, ServiceCMS, ServiceProxy}

// ParseDescriptor decodes compose YAML.
func ParseDescriptor(data []byte) (*Descriptor, error) {
	var d Descriptor
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("failed to parse compose descriptor: %w", err)
	}
	return &d, nil
}

// Validate checks that every required service, its dependencies, the shared
// network and the database volume are declared.
func (d *Descriptor) Validate() error {
	for _, name := range RequiredServices {
		svc, ok := d.Services[name]
		if !ok {
			return fmt.Errorf("service %q is not declared", name)
		}
		if svc.Image == "" {
			return fmt.Errorf("service %q has no image", name)
		}
		for _, dep := range svc.DependsOn {
			if _, ok := d.Services[dep]; !ok {
				return fmt.Errorf("service %q depends on undeclared service %q", name, dep)
			}
		}
	}
	if _, ok := d.Networks[SharedNetwork]; !ok {
		return fmt.Errorf("network %q is not declared", SharedNetwork)
	}
	if _, ok := d.Volumes[DatabaseVolume]; !ok {
		return fmt.Errorf("volume %q is not declared", DatabaseVolume)
	}
	return nil
}

// PublishedPorts returns the host side of every port mapping, sorted.
func (d *Descriptor) PublishedPorts() []int {
	var ports []int
	for _, svc := range d.Services {
		for _, mapping := range svc.Ports {
			if p, ok := hostPort(mapping); ok {
				ports = append(ports, p)
			}
		}
	}
	sort.Ints(ports)
	return ports
}

// ServicePort returns the first published host port of a service.
func (d *Descriptor) ServicePort(name string) (int, bool) {
	svc, ok := d.Services[name]
	if !ok {
		return 0, false
	}
	for _, mapping := range svc.Ports {
		if p, ok := hostPort(mapping); ok {
			return p, true
		}
	}
	return 0, false
}

// hostPort extracts HOST from "HOST:CONTAINER" or "IP:HOST:CONTAINER".
func hostPort(mapping string) (int, bool) {
	parts := strings.Split(mapping, ":")
	if len(parts) < 2 {
		return 0, false
	}
	p, err := strconv.Atoi(parts[len(parts)-2])
	if err != nil {
		return 0, false
	}
	return p, true
}
