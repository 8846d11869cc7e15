package site

import (
	"context"
	"fmt"
	"os"

	"github.com/wpstack/wpsite/internal/driver"
	"github.com/wpstack/wpsite/internal/errors"
	"github.com/wpstack/wpsite/internal/logger"
	"github.com/wpstack/wpsite/internal/platform"
	"github.com/wpstack/wpsite/internal/preflight"
)

// HostEditor edits the host-resolution file.
type HostEditor interface {
	Add(site string) error
	Remove(site string) (int, error)
}

// Manager runs the site lifecycle: create, enable, disable, delete.
// Every operation works on RootPath(BaseDir); the process working directory
// is never changed.
type Manager struct {
	BaseDir string
	Driver  driver.Driver
	Hosts   HostEditor

	// Ports is optional; when set, Create reports published ports that are
	// already in use before bringing the services up.
	Ports preflight.PortProbe
}

// Result describes the outcome of a lifecycle operation.
type Result struct {
	Site      string   `json:"site"`
	Action    string   `json:"action"`
	Root      string   `json:"root"`
	URL       string   `json:"url,omitempty"`
	Files     []string `json:"files,omitempty"`
	BusyPorts []int    `json:"busy_ports,omitempty"`
	Existed   bool     `json:"existed"`
}

// Root returns the site root this manager operates on.
func (m *Manager) Root() string {
	return RootPath(m.BaseDir)
}

// Create adds the hosts entry, writes the artifacts and brings the services
// up detached. The returned Result is non-nil whenever the artifacts were
// written, even if bring-up failed.
func (m *Manager) Create(ctx context.Context, name string) (*Result, error) {
	if err := ValidateName(name); err != nil {
		return nil, err
	}
	root := m.Root()
	res := &Result{Site: name, Action: "create", Root: root, Existed: platform.DirExists(root)}

	if err := m.Hosts.Add(name); err != nil {
		return nil, err
	}

	files, err := Materialize(root)
	if err != nil {
		return nil, err
	}
	res.Files = files

	desc, err := LoadDescriptor(root)
	if err != nil {
		return res, err
	}
	if port, ok := desc.ServicePort(ServiceProxy); ok {
		res.URL = fmt.Sprintf("http://%s:%d", name, port)
	}

	if m.Ports != nil {
		busy, err := preflight.PortConflicts(ctx, m.Ports, desc.PublishedPorts())
		if err != nil {
			logger.Warn("could not check ports: %v", err)
		}
		res.BusyPorts = busy
	}

	if err := m.Driver.Up(ctx, root); err != nil {
		logger.Error("%s: artifacts in %s and the hosts entry were left in place", name, root)
		return res, orchestratorError(name, "failed to start services", err)
	}
	logger.Info("%s: services up in %s", name, root)
	return res, nil
}

// Enable resumes the services of an existing site.
func (m *Manager) Enable(ctx context.Context, name string) (*Result, error) {
	return m.toggle(ctx, name, "enable", m.Driver.Start)
}

// Disable pauses the services of an existing site.
func (m *Manager) Disable(ctx context.Context, name string) (*Result, error) {
	return m.toggle(ctx, name, "disable", m.Driver.Stop)
}

func (m *Manager) toggle(ctx context.Context, name, action string, verb func(context.Context, string) error) (*Result, error) {
	if err := ValidateName(name); err != nil {
		return nil, err
	}
	root := m.Root()
	if !platform.DirExists(root) {
		return nil, errors.NotFound(name)
	}
	if err := verb(ctx, root); err != nil {
		return nil, orchestratorError(name, fmt.Sprintf("failed to %s site", action), err)
	}
	logger.Info("%s: %s done in %s", name, action, root)
	return &Result{Site: name, Action: action, Root: root, Existed: true}, nil
}

// Delete tears the services down with their volumes, removes the hosts entry
// and then the site root. A missing site root is not an error; Existed is
// false in that case and nothing is touched.
func (m *Manager) Delete(ctx context.Context, name string) (*Result, error) {
	if err := ValidateName(name); err != nil {
		return nil, err
	}
	root := m.Root()
	res := &Result{Site: name, Action: "delete", Root: root}
	if !platform.DirExists(root) {
		return res, nil
	}
	res.Existed = true

	// teardown needs docker-compose.yml, so it runs before any removal
	if err := m.Driver.Down(ctx, root); err != nil {
		return nil, orchestratorError(name, "failed to tear down services", err)
	}

	removed, err := m.Hosts.Remove(name)
	if err != nil {
		return nil, err
	}
	logger.Info("%s: removed %d hosts entries", name, removed)

	if err := os.RemoveAll(root); err != nil {
		return nil, errors.Filesystem("failed to remove site root", err)
	}
	logger.Debug("removed %s", root)
	return res, nil
}

func orchestratorError(name, msg string, err error) error {
	return errors.WrapSite(errors.ErrCodeOrchestrator, name, msg, err)
}
