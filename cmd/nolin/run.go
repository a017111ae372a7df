// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Emasoft/no-install-linters-expert/internal/dispatch"
	"github.com/Emasoft/no-install-linters-expert/internal/report"
)

// captureOutput buffers the tool's stdout/stderr instead of streaming it.
// Implied by --json.
var captureOutput bool

var runCmd = &cobra.Command{
	Use:   "run <tool> [args...]",
	Short: "Resolve an ephemeral runner for a tool and execute it",
	Long: `Resolve which ephemeral execution mechanism can run the given tool,
build the command line, and execute it. The tool's stdout, stderr, and
exit code pass through unmodified.

Everything after the tool name is handed to the tool verbatim:

  nolin run ruff check --fix .
  nolin run markdownlint '**/*.md'

Reserved exit codes (never produced by the tool itself):
  124  unknown tool        125  no runner available
  126  launch failure      127  catalog/config defect`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		tool, extra := args[0], args[1:]

		decision, err := decide(cmd.Context(), tool, extra)
		if err != nil {
			return failureExit(tool, err)
		}

		capture := captureOutput || jsonOutput
		result, err := dispatch.Run(cmd.Context(), decision.Argv, dispatch.Options{
			Stdin:   os.Stdin,
			Stdout:  cmd.OutOrStdout(),
			Stderr:  cmd.ErrOrStderr(),
			Capture: capture,
		})
		if err != nil {
			return failureExit(tool, err)
		}

		switch {
		case jsonOutput:
			if err := report.Encode(cmd.OutOrStdout(), report.FromResult(decision, result)); err != nil {
				return err
			}
		case capture:
			// Captured without --json: replay the streams in order.
			fmt.Fprint(cmd.OutOrStdout(), result.Output)
			fmt.Fprint(cmd.ErrOrStderr(), result.ErrOutput)
		}

		if !result.ExitCode.IsSuccess() {
			return &ExitError{Code: result.ExitCode}
		}
		return nil
	},
}

func init() {
	// Flags after the tool name belong to the tool, not to nolin.
	runCmd.Flags().SetInterspersed(false)
	runCmd.Flags().BoolVar(&captureOutput, "capture", false, "buffer the tool's output instead of streaming it")
}
