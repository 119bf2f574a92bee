/*
PURPOSE:
  Defines the root Cobra command for the GR Runner CLI.
  Handles global flags and command initialization.

REQUIREMENTS:
  User-specified:
  - Provide a CLI interface.
  - Support global flags like --config.

  Implementation-discovered:
  - Needs to expose an Execute() function for main.go.
  - Long batches must stop cleanly on Ctrl-C.

ARCHITECTURE INTEGRATION:
  - Called by: cmd/gr-runner/main.go
  - Calls: Child commands (run, list-models, ordinates)

ERROR HANDLING:
  - Returns error to main.go for exit code handling.

IMPLEMENTATION RULES:
  - Use `PersistentFlags()` for flags available to all subcommands.
  - Keep Run logic in subcommands.

USAGE:
  Called by main.go.

RELATED FILES:
  - cmd/gr-runner/main.go
*/

package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var (
	// cfgFile stores the path to the config file (if specified via flag)
	cfgFile string

	logLevel  string
	logFormat string

	rootCmd = &cobra.Command{
		Use:   "gr-runner",
		Short: "Batch runner for GR rainfall-runoff models",
		Long: `Simulates river flow from rainfall and evapotranspiration with the GR model
family (GR1A, GR2M, GR4H, GR4J, GR5J, GR6J). Use 'run --help' for batch options.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

// Execute executes the root command. SIGINT and SIGTERM cancel the
// command context.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./gr_runner.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error (overrides config)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "log format: text or json (overrides config)")
}
