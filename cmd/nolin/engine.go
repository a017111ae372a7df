// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"os"
	"strings"

	"github.com/Emasoft/no-install-linters-expert/internal/catalog"
	"github.com/Emasoft/no-install-linters-expert/internal/detect"
	"github.com/Emasoft/no-install-linters-expert/internal/dispatch"
	"github.com/Emasoft/no-install-linters-expert/internal/executor"
	"github.com/Emasoft/no-install-linters-expert/internal/issue"
	"github.com/Emasoft/no-install-linters-expert/internal/report"
	"github.com/Emasoft/no-install-linters-expert/internal/resolve"
	"github.com/Emasoft/no-install-linters-expert/pkg/types"
)

// buildEngine materializes the catalog under the current configuration and
// validates it against the executor registry. Both are immutable once built
// and passed explicitly to the detector and selector.
func buildEngine() (*catalog.Catalog, *executor.Registry, error) {
	reg := executor.Default()
	cat, err := cfg.Catalog()
	if err != nil {
		return nil, nil, err
	}
	if err := cat.Validate(reg.Has); err != nil {
		return nil, nil, err
	}
	return cat, reg, nil
}

// decide probes the host and selects the executor for one tool. The
// availability set is computed fresh on every call, so `which` followed by
// `run` under an unchanged host selects identically.
func decide(ctx context.Context, tool string, extra []string) (*resolve.Decision, error) {
	cat, reg, err := buildEngine()
	if err != nil {
		return nil, err
	}
	avail := detect.Detect(ctx, reg, cfg.ProbeTimeout)
	return resolve.Select(cat, reg, avail, tool, extra)
}

// failureExit converts a resolution or dispatch failure into the reserved
// exit code for its kind, rendering either the JSON failure envelope or the
// styled message plus issue catalog help.
func failureExit(tool string, err error) error {
	code, kind, issueID, tried := classifyFailure(err)

	if jsonOutput {
		_ = report.Encode(os.Stdout, report.Failure{
			Tool:     tool,
			Kind:     kind,
			Error:    err.Error(),
			ExitCode: int(code),
			Tried:    tried,
		})
		return &ExitError{Code: code}
	}

	os.Stderr.WriteString(ErrorStyle.Render("Error: ") + formatErrorForDisplay(err, verbose) + "\n")
	renderIssue(os.Stderr, issueID)
	return &ExitError{Code: code}
}

// classifyFailure maps an error to its reserved exit code, JSON kind tag,
// issue catalog entry, and (for no-runner failures) the tried list.
func classifyFailure(err error) (types.ExitCode, string, issue.Id, []string) {
	var unknownErr *resolve.UnknownToolError
	var noRunnerErr *resolve.NoRunnerError
	var buildErr *executor.BuildError
	var launchErr *dispatch.LaunchError

	switch {
	case errors.As(err, &unknownErr):
		return types.ExitUnknownTool, "unknown_tool", issue.UnknownToolId, nil
	case errors.As(err, &noRunnerErr):
		tried := make([]string, 0, len(noRunnerErr.Considered))
		dockerDown := false
		for _, r := range noRunnerErr.Considered {
			tried = append(tried, r.Runner+": "+r.Reason)
			if r.Runner == catalog.RunnerDocker && strings.Contains(r.Reason, "daemon") {
				dockerDown = true
			}
		}
		id := issue.NoRunnerAvailableId
		if dockerDown && len(noRunnerErr.Considered) == 1 {
			id = issue.DockerDaemonUnreachableId
		}
		return types.ExitNoRunner, "no_runner_available", id, tried
	case errors.As(err, &launchErr):
		return types.ExitLaunchFailure, "launch_failure", issue.LaunchFailureId, nil
	case errors.As(err, &buildErr):
		return types.ExitBuildError, "build_error", 0, nil
	default:
		return types.ExitBuildError, "error", 0, nil
	}
}
