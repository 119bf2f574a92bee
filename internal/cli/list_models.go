/*
PURPOSE:
  Defines the 'list-models' subcommand.
  Shows the available models with their parameters and stores.

REQUIREMENTS:
  User-specified:
  - List available models.

  Implementation-discovered:
  - Useful when writing a config: parameter and store names are the YAML keys.

ARCHITECTURE INTEGRATION:
  - Calls: internal/model.Names(), internal/model.Lookup()

IMPLEMENTATION RULES:
  - Simple output to stdout.

USAGE:
  gr-runner list-models
*/

package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/daryltucker/gr-runner/internal/model"
)

var listModelsCmd = &cobra.Command{
	Use:   "list-models",
	Short: "List available models",
	RunE: func(cmd *cobra.Command, args []string) error {
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "MODEL\tTIMESTEP\tPARAMETERS\tSTORES\tUNIT HYDROGRAPHS")
		for _, name := range model.Names() {
			info, err := model.Lookup(name)
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				info.Name,
				info.Timestep,
				strings.Join(info.ParameterNames, ","),
				orDash(strings.Join(info.StoreNames, ",")),
				orDash(unitHydrographs(info)),
			)
		}
		return w.Flush()
	},
}

func unitHydrographs(info model.Info) string {
	var uh []string
	if info.UH1 {
		uh = append(uh, "UH1")
	}
	if info.UH2 {
		uh = append(uh, "UH2")
	}
	return strings.Join(uh, ",")
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func init() {
	rootCmd.AddCommand(listModelsCmd)
}
