// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Emasoft/no-install-linters-expert/internal/detect"
	"github.com/Emasoft/no-install-linters-expert/internal/executor"
	"github.com/Emasoft/no-install-linters-expert/internal/report"
)

var executorsCmd = &cobra.Command{
	Use:   "executors",
	Short: "List every execution mechanism and its availability on this host",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		reg := executor.Default()
		avail := detect.Detect(cmd.Context(), reg, cfg.ProbeTimeout)

		if jsonOutput {
			rows := make([]report.ExecutorStatus, 0, len(reg.Names()))
			for _, e := range reg.All() {
				status := avail[e.Name()]
				rows = append(rows, report.ExecutorStatus{
					Name:      e.Name(),
					Ecosystem: string(e.Ecosystem()),
					Present:   status.Present,
					Reason:    status.Reason,
				})
			}
			return report.Encode(cmd.OutOrStdout(), rows)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, TitleStyle.Render("Executors"))
		fmt.Fprintln(out)
		for _, e := range reg.All() {
			status := avail[e.Name()]
			mark := SuccessStyle.Render("✔")
			detail := ""
			if !status.Present {
				mark = ErrorStyle.Render("✘")
				detail = SubtitleStyle.Render(" (" + status.Reason + ")")
			}
			fmt.Fprintf(out, "  %s %-8s %s%s\n", mark, e.Name(), SubtitleStyle.Render(string(e.Ecosystem())), detail)
		}
		return nil
	},
}
