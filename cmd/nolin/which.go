// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Emasoft/no-install-linters-expert/internal/report"
)

var whichCmd = &cobra.Command{
	Use:   "which <tool> [args...]",
	Short: "Show which runner would execute a tool, without running it",
	Long: `Resolve the executor and the exact command line for a tool, then stop.
Nothing is executed. Under an unchanged host, 'which' and 'run' always
select the same executor.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		tool, extra := args[0], args[1:]

		decision, err := decide(cmd.Context(), tool, extra)
		if err != nil {
			return failureExit(tool, err)
		}

		if jsonOutput {
			return report.Encode(cmd.OutOrStdout(), report.FromDecision(decision))
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s %s %s %s\n",
			SubtitleStyle.Render("would run"),
			CmdStyle.Render(tool),
			SubtitleStyle.Render("via"),
			SuccessStyle.Render(decision.Runner))
		fmt.Fprintf(out, "  %s\n", CmdStyle.Render(strings.Join(decision.Argv, " ")))
		return nil
	},
}

func init() {
	whichCmd.Flags().SetInterspersed(false)
}
