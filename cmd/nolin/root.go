// SPDX-License-Identifier: MPL-2.0

// Package cmd contains all CLI commands for nolin.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/Emasoft/no-install-linters-expert/internal/config"
	"github.com/Emasoft/no-install-linters-expert/internal/issue"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"

	// verbose enables debug diagnostics (probe timings, selection trace)
	verbose bool
	// jsonOutput wraps results in the machine-readable envelope
	jsonOutput bool
	// cfgFile allows specifying a custom config file
	cfgFile string

	// cfg is the loaded configuration, populated by initRootConfig
	cfg = config.DefaultConfig()

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "nolin",
		Short: "Run linters and formatters without installing them",
		Long: TitleStyle.Render("nolin") + SubtitleStyle.Render(" - no-install linter runner") + `

nolin runs third-party linters, formatters, and type-checkers through
whichever ephemeral execution mechanism your host already has: uvx or
pipx for Python tools, bun x or npx for Node tools, go run for Go
module tools, and docker for everything else. Nothing is added to your
project or installed globally.

` + SubtitleStyle.Render("Examples:") + `
  nolin run ruff check .    Resolve a runner for ruff and execute it
  nolin which ruff check .  Show what would run, without running it
  nolin executors           List runners and their availability
  nolin db                  Print the tool catalog`,
	}
)

func init() {
	cobra.OnInitialize(initRootConfig)

	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "emit machine-readable JSON instead of pass-through text")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/nolin/config.toml)")

	// Add subcommands
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(whichCmd)
	rootCmd.AddCommand(executorsCmd)
	rootCmd.AddCommand(dbCmd)
	rootCmd.AddCommand(configCmd)
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
		fang.WithErrorHandler(handleCLIError),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(int(exitErr.Code))
		}
		os.Exit(1)
	}
}

// handleCLIError renders errors at the outermost layer. A bare ExitError is
// the tool's own nonzero exit code passing through; its output already went
// to the terminal, so nothing further is printed for it.
func handleCLIError(w io.Writer, styles fang.Styles, err error) {
	var exitErr *ExitError
	if errors.As(err, &exitErr) && exitErr.Err == nil {
		return
	}
	fmt.Fprintln(w, ErrorStyle.Render("Error: ")+formatErrorForDisplay(err, verbose))
}

// initRootConfig loads the configuration and wires the global logger.
func initRootConfig() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
		Level:           log.WarnLevel,
	})
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}
	slog.SetDefault(slog.New(logger))

	loaded, err := config.Load(cfgFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, WarningStyle.Render("Warning: ")+formatErrorForDisplay(err, verbose))
		renderIssue(os.Stderr, issue.ConfigLoadFailedId)
		return
	}
	cfg = loaded
}

// formatErrorForDisplay formats an error for user display.
// If the error is an ActionableError, it uses the Format method.
// In verbose mode, shows the full error chain.
func formatErrorForDisplay(err error, verboseMode bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verboseMode)
	}
	return err.Error()
}

// renderIssue prints the catalog help text for an issue id, if present.
func renderIssue(w io.Writer, id issue.Id) {
	entry := issue.Get(id)
	if entry == nil {
		return
	}
	rendered, err := entry.Render("dark")
	if err != nil {
		slog.Warn("failed to render issue catalog entry", "issueID", id, "error", err)
		return
	}
	fmt.Fprint(w, rendered)
}
