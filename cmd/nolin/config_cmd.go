// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Emasoft/no-install-linters-expert/internal/report"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect nolin configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		if jsonOutput {
			type toolRow struct {
				Name    string   `json:"name"`
				Runners []string `json:"runners"`
			}
			payload := struct {
				ProbeTimeout string              `json:"probe_timeout"`
				Priority     map[string][]string `json:"priority,omitempty"`
				Tools        []toolRow           `json:"tools,omitempty"`
			}{ProbeTimeout: cfg.ProbeTimeout.String(), Priority: cfg.Priority}
			for _, t := range cfg.Tools {
				payload.Tools = append(payload.Tools, toolRow{Name: t.Name, Runners: t.Runners})
			}
			return report.Encode(cmd.OutOrStdout(), payload)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, TitleStyle.Render("Configuration"))
		fmt.Fprintln(out)
		fmt.Fprintf(out, "  %s %s\n", SubtitleStyle.Render("probe_timeout:"), cfg.ProbeTimeout)
		for eco, runners := range cfg.Priority {
			fmt.Fprintf(out, "  %s %s\n", SubtitleStyle.Render("priority."+eco+":"), strings.Join(runners, " > "))
		}
		for _, t := range cfg.Tools {
			fmt.Fprintf(out, "  %s %s (%s)\n", SubtitleStyle.Render("tool:"), CmdStyle.Render(t.Name), strings.Join(t.Runners, " > "))
		}
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
}
