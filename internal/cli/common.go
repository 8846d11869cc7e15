package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wpstack/wpsite/internal/config"
	"github.com/wpstack/wpsite/internal/errors"
	"github.com/wpstack/wpsite/internal/logger"
	"github.com/wpstack/wpsite/internal/output"
	"github.com/wpstack/wpsite/internal/site"
)

// Actions accepted as the optional second argument. No action means create.
const (
	ActionCreate  = "create"
	ActionEnable  = "enable"
	ActionDisable = "disable"
	ActionDelete  = "delete"
)

// usageError marks errors that should be followed by the usage text
type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

// validateArgs accepts "<site_name>" or "<site_name> <action>"
func validateArgs(cmd *cobra.Command, args []string) error {
	if len(args) < 1 || len(args) > 2 {
		return &usageError{errors.Validation(
			fmt.Sprintf("expected a site name and an optional action, got %d arguments", len(args)))}
	}
	_, err := parseAction(args)
	return err
}

// parseAction returns the action named by args, defaulting to create
func parseAction(args []string) (string, error) {
	if len(args) < 2 {
		return ActionCreate, nil
	}
	switch args[1] {
	case ActionEnable, ActionDisable, ActionDelete:
		return args[1], nil
	default:
		return "", &usageError{&errors.SiteError{
			Code:    errors.ErrCodeValidation,
			Message: fmt.Sprintf("unknown action %q (expected enable, disable or delete)", args[1]),
			Site:    args[0],
		}}
	}
}

// applyFlags overrides config values with flags given on the command line
func applyFlags(cfg *config.Config) {
	if orchestratorFlag != "" {
		cfg.Orchestrator = orchestratorFlag
	}
	if baseDirFlag != "" {
		cfg.BaseDir = baseDirFlag
	}
	if hostsFileFlag != "" {
		cfg.HostsFile = hostsFileFlag
	}
}

// commandContext returns the command's context, or Background when run
// outside cobra (tests call run functions directly)
func commandContext(cmd *cobra.Command) context.Context {
	if cmd != nil && cmd.Context() != nil {
		return cmd.Context()
	}
	return context.Background()
}

// saveConfig persists the site registry; failure only warns since the site
// itself is already in its new state
func saveConfig(cfg *config.Config) {
	if err := deps.ConfigLoader.Save(cfg); err != nil {
		if jsonOutput {
			logger.WarnFields("site registry not saved", map[string]interface{}{"error": err})
			return
		}
		output.Warn("Site registry not saved: %v", err)
	}
}

// CommandResult is the JSON shape printed with --json
type CommandResult struct {
	Success bool `json:"success"`
	*site.Result
}

// outputResult handles JSON or human-readable output
func outputResult(res *site.Result, successMsg string, args ...interface{}) error {
	if jsonOutput {
		return output.JSON(CommandResult{Success: true, Result: res})
	}
	output.Success(successMsg, args...)
	return nil
}
