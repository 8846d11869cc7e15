package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/wpstack/wpsite/internal/config"
	"github.com/wpstack/wpsite/internal/errors"
	"github.com/wpstack/wpsite/internal/logger"
	"github.com/wpstack/wpsite/internal/output"
	"github.com/wpstack/wpsite/internal/platform"
	"github.com/wpstack/wpsite/internal/preflight"
	"github.com/wpstack/wpsite/internal/site"
)

func runRoot(cmd *cobra.Command, args []string) error {
	ctx := commandContext(cmd)

	cfg, err := deps.ConfigLoader.Load()
	if err != nil {
		return errors.Wrap(errors.ErrCodeConfig, "failed to load config", err)
	}
	applyFlags(cfg)

	drv, err := deps.DriverFactory.Create(cfg.Orchestrator)
	if err != nil {
		return errors.Wrap(errors.ErrCodeConfig, "failed to select orchestrator", err)
	}
	if err := preflight.CheckOrchestrator(ctx, drv); err != nil {
		return err
	}

	name := args[0]
	action, err := parseAction(args)
	if err != nil {
		return err
	}

	baseDir, err := cfg.ResolveBaseDir()
	if err != nil {
		return errors.Wrap(errors.ErrCodeConfig, "invalid base directory", err)
	}
	hostsPath, err := cfg.ResolveHostsFile()
	if err != nil {
		return errors.Wrap(errors.ErrCodeConfig, "cannot locate hosts file", err)
	}

	mgr := &site.Manager{
		BaseDir: baseDir,
		Driver:  drv,
		Hosts:   deps.HostsFactory.Open(hostsPath),
		Ports:   deps.PortProbe,
	}
	logger.DebugFields("dispatch", map[string]interface{}{
		"site":         name,
		"action":       action,
		"root":         mgr.Root(),
		"hosts":        hostsPath,
		"orchestrator": drv.Name(),
		"platform":     platform.Platform(),
	})

	switch action {
	case ActionEnable:
		res, err := mgr.Enable(ctx, name)
		if err != nil {
			return err
		}
		cfg.SetEnabled(name, true)
		saveConfig(cfg)
		return outputResult(res, "Site %s enabled", name)

	case ActionDisable:
		res, err := mgr.Disable(ctx, name)
		if err != nil {
			return err
		}
		cfg.SetEnabled(name, false)
		saveConfig(cfg)
		return outputResult(res, "Site %s disabled", name)

	case ActionDelete:
		res, err := mgr.Delete(ctx, name)
		if err != nil {
			return err
		}
		if !res.Existed {
			if jsonOutput {
				return outputResult(res, "")
			}
			output.Warn("Site %s does not exist", name)
			return nil
		}
		if cfg.RemoveSite(name) {
			saveConfig(cfg)
		}
		return outputResult(res, "Site %s deleted", name)

	default:
		return runCreate(ctx, cfg, mgr, name)
	}
}

func runCreate(ctx context.Context, cfg *config.Config, mgr *site.Manager, name string) error {
	if !jsonOutput {
		output.Info("Creating %s in %s...", name, mgr.Root())
	}
	res, err := mgr.Create(ctx, name)
	if res != nil && len(res.BusyPorts) > 0 && !jsonOutput {
		output.Warn("Ports already in use: %v", res.BusyPorts)
	}
	if err != nil {
		return err
	}

	cfg.RecordSite(name, res.Root, deps.Now())
	saveConfig(cfg)

	if err := outputResult(res, "Servers for '%s' have been created successfully.", name); err != nil {
		return err
	}
	if !jsonOutput && res.URL != "" {
		output.Hint("Visit %s", res.URL)
	}
	return nil
}
