// SPDX-License-Identifier: MPL-2.0

// Package report renders selection and execution outcomes as machine-readable
// records for the --json mode.
package report

import (
	"encoding/json"
	"io"

	"github.com/Emasoft/no-install-linters-expert/internal/dispatch"
	"github.com/Emasoft/no-install-linters-expert/internal/resolve"
)

type (
	// Record is the JSON envelope for one run or dry-run. ExitCode is absent
	// in dry-run records because nothing executed.
	Record struct {
		Tool      string   `json:"tool"`
		Executor  string   `json:"executor"`
		Ecosystem string   `json:"ecosystem"`
		Argv      []string `json:"argv"`
		DryRun    bool     `json:"dry_run"`
		ExitCode  *int     `json:"exit_code,omitempty"`
		Stdout    string   `json:"stdout,omitempty"`
		Stderr    string   `json:"stderr,omitempty"`
	}

	// ExecutorStatus is one row of the `executors` listing.
	ExecutorStatus struct {
		Name      string `json:"name"`
		Ecosystem string `json:"ecosystem"`
		Present   bool   `json:"present"`
		Reason    string `json:"reason,omitempty"`
	}

	// ToolEntry is one row of the `db` catalog listing.
	ToolEntry struct {
		Name      string   `json:"name"`
		Package   string   `json:"package"`
		Ecosystem string   `json:"ecosystem"`
		Runners   []string `json:"runners"`
	}

	// Failure is the JSON envelope for a dispatcher-level failure (unknown
	// tool, no runner, launch failure, build error).
	Failure struct {
		Tool     string   `json:"tool"`
		Kind     string   `json:"kind"`
		Error    string   `json:"error"`
		ExitCode int      `json:"exit_code"`
		Tried    []string `json:"tried,omitempty"`
	}
)

// FromDecision builds a dry-run record from a selection decision.
func FromDecision(d *resolve.Decision) Record {
	return Record{
		Tool:      d.Tool.Name,
		Executor:  d.Runner,
		Ecosystem: string(d.Executor.Ecosystem()),
		Argv:      d.Argv,
		DryRun:    true,
	}
}

// FromResult builds a record from a decision and the dispatch result it
// produced.
func FromResult(d *resolve.Decision, r *dispatch.Result) Record {
	code := int(r.ExitCode)
	rec := FromDecision(d)
	rec.DryRun = false
	rec.ExitCode = &code
	rec.Stdout = r.Output
	rec.Stderr = r.ErrOutput
	return rec
}

// Encode writes v to w as indented JSON with a trailing newline.
func Encode(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
