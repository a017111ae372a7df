// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Emasoft/no-install-linters-expert/internal/report"
)

var dbCmd = &cobra.Command{
	Use:   "db",
	Short: "Print the static tool catalog",
	Long: `Print every tool nolin knows how to run: its ecosystem, its
distribution package where it differs from the command name, and the
priority-ordered runner list.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		cat, _, err := buildEngine()
		if err != nil {
			return failureExit("", err)
		}

		if jsonOutput {
			rows := make([]report.ToolEntry, 0, cat.Len())
			for _, t := range cat.Tools() {
				rows = append(rows, report.ToolEntry{
					Name:      t.Name,
					Package:   t.PackageName(),
					Ecosystem: string(t.Ecosystem),
					Runners:   t.Runners,
				})
			}
			return report.Encode(cmd.OutOrStdout(), rows)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, TitleStyle.Render("Tool Catalog"))
		fmt.Fprintln(out)
		for _, t := range cat.Tools() {
			name := CmdStyle.Render(t.Name)
			if t.Package != "" {
				name += SubtitleStyle.Render(" (package " + t.Package + ")")
			}
			fmt.Fprintf(out, "  %-32s %-10s %s\n",
				name,
				SubtitleStyle.Render(string(t.Ecosystem)),
				strings.Join(t.Runners, " > "))
		}
		return nil
	},
}
