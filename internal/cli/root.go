package cli

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/wpstack/wpsite/internal/errors"
	"github.com/wpstack/wpsite/internal/logger"
	"github.com/wpstack/wpsite/internal/output"
)

var (
	jsonOutput       bool
	verbose          bool
	orchestratorFlag string
	baseDirFlag      string
	hostsFileFlag    string
	version          = "dev"
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "wpsite <site_name> [enable|disable|delete]",
	Short: "Provision a local WordPress stack behind nginx",
	Long: `wpsite provisions a local WordPress hosting environment: MySQL, PHP-FPM,
phpMyAdmin, WordPress and an nginx reverse proxy, run by docker-compose.

With only a site name it creates the site: it maps the name to 127.0.0.1 in
the hosts file, writes wordpress-docker/ and brings the services up.

Examples:
  wpsite test.local            # create
  wpsite test.local disable    # stop the containers
  wpsite test.local enable     # start them again
  wpsite test.local delete     # tear down, remove files and hosts entry`,
	Args:          validateArgs,
	RunE:          runRoot,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute runs the root command and exits non-zero on failure
func Execute() {
	cobra.OnInitialize(func() {
		logger.Init(verbose)
	})

	if err := rootCmd.Execute(); err != nil {
		reportError(err)
		os.Exit(1)
	}
}

// reportError prints err once, with usage for bad invocations
func reportError(err error) {
	output.Error("%v", err)
	var usage *usageError
	switch {
	case errors.As(err, &usage):
		fmt.Fprint(color.Error, rootCmd.UsageString())
	case errors.Is(err, errors.ErrPermissionDenied):
		output.Hint("the hosts file usually needs root; try again with sudo")
	}
}

// SetVersion sets the version string for the CLI
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging for debugging")
	rootCmd.Flags().StringVar(&orchestratorFlag, "orchestrator", "", "Orchestrator driver: docker-compose, docker, podman-compose")
	rootCmd.Flags().StringVar(&baseDirFlag, "base-dir", "", "Directory to create wordpress-docker/ in (default: current directory)")
	rootCmd.Flags().StringVar(&hostsFileFlag, "hosts-file", "", "Host-resolution file to edit (default: /etc/hosts)")
}
