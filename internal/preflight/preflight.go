// Package preflight checks the host before wpsite touches anything.
package preflight

import (
	"context"
	"fmt"

	"github.com/wpstack/wpsite/internal/errors"
	"github.com/wpstack/wpsite/internal/logger"
)

// Versioner is the part of an orchestrator driver preflight needs.
type Versioner interface {
	Binary() string
	Locate() (string, error)
	Version(ctx context.Context) (string, error)
}

// CheckOrchestrator looks the orchestrator up on PATH and runs its version
// query. Either failure yields a DEPENDENCY error.
func CheckOrchestrator(ctx context.Context, drv Versioner) error {
	bin := drv.Binary()
	path, err := drv.Locate()
	if err != nil {
		return &errors.SiteError{
			Code: errors.ErrCodeDependency,
			Message: fmt.Sprintf("%s is not installed. Please make sure %s is installed and in the system PATH",
				bin, bin),
			Err: err,
		}
	}

	version, err := drv.Version(ctx)
	if err != nil {
		return &errors.SiteError{
			Code:    errors.ErrCodeDependency,
			Message: fmt.Sprintf("%s was found at %s but its version query failed", bin, path),
			Err:     err,
		}
	}
	logger.DebugFields("orchestrator", map[string]interface{}{"path": path, "version": version})
	return nil
}
