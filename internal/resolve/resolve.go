// SPDX-License-Identifier: MPL-2.0

// Package resolve selects the executor for a tool and renders the final
// command line. Selection is pure given its inputs: the catalog, the
// registry, and a precomputed availability set.
package resolve

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/Emasoft/no-install-linters-expert/internal/catalog"
	"github.com/Emasoft/no-install-linters-expert/internal/detect"
	"github.com/Emasoft/no-install-linters-expert/internal/executor"
)

type (
	// Decision is the selection outcome: the chosen executor and the exact
	// argv that would be (or was) dispatched.
	Decision struct {
		// Tool is the resolved catalog entry.
		Tool catalog.ToolSpec
		// Runner is the chosen executor's name.
		Runner string
		// Executor is the chosen executor.
		Executor executor.Executor
		// Argv is the rendered command line, ready for dispatch.
		Argv []string
	}

	// Rejection records why one executor in a tool's runner list was not
	// chosen. The full rejection list is part of the NoRunnerError contract:
	// the caller needs it to know what to install.
	Rejection struct {
		Runner string
		Reason string
	}

	// UnknownToolError means the tool name is not in the catalog. No probing
	// happens for unknown tools.
	UnknownToolError struct {
		Name string
	}

	// NoRunnerError means every executor in the tool's runner list is absent.
	NoRunnerError struct {
		Tool       string
		Considered []Rejection
	}
)

// Error implements the error interface.
func (e *UnknownToolError) Error() string {
	return fmt.Sprintf("unknown tool %q: not in the tool catalog", e.Name)
}

// Error implements the error interface. The message enumerates every
// considered executor with its absence reason.
func (e *NoRunnerError) Error() string {
	reasons := make([]string, 0, len(e.Considered))
	for _, r := range e.Considered {
		reasons = append(reasons, fmt.Sprintf("%s (%s)", r.Runner, r.Reason))
	}
	return fmt.Sprintf("no runner available for %q: tried %s", e.Tool, strings.Join(reasons, ", "))
}

// Select walks the tool's priority-ordered runner list and picks the first
// executor marked present in the availability set. List order is the sole
// tie-break; a lower-priority executor is never preferred for any reason.
func Select(cat *catalog.Catalog, reg *executor.Registry, avail detect.Set, tool string, extra []string) (*Decision, error) {
	spec, ok := cat.Lookup(tool)
	if !ok {
		return nil, &UnknownToolError{Name: tool}
	}

	var considered []Rejection
	for _, runner := range spec.Runners {
		exec, ok := reg.Get(runner)
		if !ok {
			considered = append(considered, Rejection{Runner: runner, Reason: "not registered"})
			continue
		}
		status := avail[runner]
		if !status.Present {
			reason := status.Reason
			if reason == "" {
				reason = "not present"
			}
			considered = append(considered, Rejection{Runner: runner, Reason: reason})
			continue
		}

		argv, err := exec.Args(spec, extra)
		if err != nil {
			return nil, err
		}
		slog.Debug("selected executor", "tool", tool, "executor", runner, "argv", argv)
		return &Decision{Tool: spec, Runner: runner, Executor: exec, Argv: argv}, nil
	}

	return nil, &NoRunnerError{Tool: tool, Considered: considered}
}
