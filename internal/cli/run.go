/*
PURPOSE:
  Defines the 'run' subcommand.
  Simulates every configured scenario.

REQUIREMENTS:
  User-specified:
  - Run the scenarios from the config file.
  - Specific flags for overrides.

  Implementation-discovered:
  - Need to load config first.
  - Apply flag overrides to config.
  - Logger is configured after overrides so --log-level wins.

ARCHITECTURE INTEGRATION:
  - Calls: internal/engine.Run()
  - Uses: internal/config, internal/output

ERROR HANDLING:
  - Returns error if config load fails or engine run fails.
  - Failed scenarios only make the command fail when nothing succeeded.

IMPLEMENTATION RULES:
  - Setup flags in init().
  - Logic: Load Config -> Override -> Engine.Run.

USAGE:
  gr-runner run -o ./out --workers 8

RELATED FILES:
  - internal/cli/root.go
*/

package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/daryltucker/gr-runner/internal/config"
	"github.com/daryltucker/gr-runner/internal/engine"
	"github.com/daryltucker/gr-runner/internal/output"
)

var (
	outputOverride    string
	workersOverride   int
	scenariosOverride []string
	excludeOverride   []string
	keepFlow          bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the configured scenarios",
	Long: `Simulates every scenario of the configuration file in parallel.
Each scenario names a model, its parameters, optional initial store fractions
and the rainfall/evapotranspiration series. When observed flow is given, the
run is scored (RMSE, NSE, KGE, PBIAS) after the warm-up period.

Flows are written one row per timestep to a CSV file; a JSON Lines summary
with the final store fractions and scores is written next to it.`,
	Example: `  # Run with defaults (uses gr_runner.yaml)
  gr-runner run

  # Use another config and output directory
  gr-runner run --config ./catchments.yaml -o ./out

  # Run only specific scenarios
  gr-runner run --scenarios l0123001,l0123002

  # Exclude scenarios by name (substring match)
  gr-runner run --exclude draft,test`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// 1. Load Config
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return err
		}

		// 2. Overrides
		if outputOverride != "" {
			cfg.OutputDir = outputOverride
		}
		if workersOverride > 0 {
			cfg.Workers = workersOverride
		}
		if len(scenariosOverride) > 0 {
			cfg.Only = scenariosOverride
		}
		if len(excludeOverride) > 0 {
			cfg.Exclude = excludeOverride
		}
		if keepFlow {
			cfg.KeepFlow = true
		}
		if logLevel != "" {
			cfg.LogLevel = logLevel
		}
		if logFormat != "" {
			cfg.LogFormat = logFormat
		}
		if err := output.ConfigureLogger(os.Stderr, cfg.LogLevel, cfg.LogFormat); err != nil {
			return err
		}

		// 3. Execution
		results, err := engine.Run(cmd.Context(), cfg)
		if err != nil {
			return err
		}

		var failed int
		for _, r := range results {
			if r.Error != "" {
				failed++
			}
		}
		if failed > 0 && failed == len(results) {
			return fmt.Errorf("all %d scenarios failed", failed)
		}
		output.Logger.Info("Batch complete", "scenarios", len(results), "failed", failed, "output_dir", cfg.OutputDir)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&outputOverride, "output-dir", "o", "", "Output directory for results (CSV/JSON)")
	runCmd.Flags().IntVarP(&workersOverride, "workers", "w", 0, "Number of scenarios simulated in parallel")
	runCmd.Flags().StringSliceVar(&scenariosOverride, "scenarios", nil, "Comma-separated list of scenario names to run")
	runCmd.Flags().StringSliceVar(&excludeOverride, "exclude", nil, "Comma-separated list of substrings to exclude from scenario names")
	runCmd.Flags().BoolVar(&keepFlow, "keep-flow", false, "Include full flow series in the JSON summary")
}
