// SPDX-License-Identifier: MPL-2.0

package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/Emasoft/no-install-linters-expert/internal/catalog"
	"github.com/Emasoft/no-install-linters-expert/internal/dispatch"
	"github.com/Emasoft/no-install-linters-expert/internal/executor"
	"github.com/Emasoft/no-install-linters-expert/internal/resolve"
)

func sampleDecision() *resolve.Decision {
	return &resolve.Decision{
		Tool: catalog.ToolSpec{
			Name:      "ruff",
			Ecosystem: catalog.EcosystemPython,
			Runners:   []string{catalog.RunnerUvx},
		},
		Runner:   catalog.RunnerUvx,
		Executor: executor.NewUvx(),
		Argv:     []string{"uvx", "ruff", "check", "."},
	}
}

func TestFromDecisionIsDryRun(t *testing.T) {
	rec := FromDecision(sampleDecision())

	if !rec.DryRun {
		t.Error("FromDecision() DryRun = false, want true")
	}
	if rec.ExitCode != nil {
		t.Errorf("FromDecision() ExitCode = %d, want absent", *rec.ExitCode)
	}
	if rec.Tool != "ruff" || rec.Executor != catalog.RunnerUvx {
		t.Errorf("record = %+v, want tool ruff via uvx", rec)
	}
	if rec.Ecosystem != string(catalog.EcosystemPython) {
		t.Errorf("Ecosystem = %q, want python", rec.Ecosystem)
	}
}

func TestFromResultCarriesExitCodeAndStreams(t *testing.T) {
	rec := FromResult(sampleDecision(), &dispatch.Result{
		ExitCode:  1,
		Output:    "findings\n",
		ErrOutput: "warning\n",
	})

	if rec.DryRun {
		t.Error("FromResult() DryRun = true, want false")
	}
	if rec.ExitCode == nil || *rec.ExitCode != 1 {
		t.Errorf("ExitCode = %v, want 1", rec.ExitCode)
	}
	if rec.Stdout != "findings\n" || rec.Stderr != "warning\n" {
		t.Errorf("streams = %q / %q", rec.Stdout, rec.Stderr)
	}
}

func TestEncodeDryRunOmitsExitCode(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, FromDecision(sampleDecision())); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	if strings.Contains(buf.String(), "exit_code") {
		t.Errorf("dry-run JSON mentions exit_code:\n%s", buf.String())
	}
	if !strings.HasSuffix(buf.String(), "\n") {
		t.Error("Encode() output missing trailing newline")
	}

	var decoded Record
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded.Tool != "ruff" {
		t.Errorf("decoded tool = %q, want ruff", decoded.Tool)
	}
}

func TestEncodeFailureKeepsTriedList(t *testing.T) {
	var buf bytes.Buffer
	f := Failure{
		Tool:     "ruff",
		Kind:     "no_runner_available",
		Error:    "no available runner",
		ExitCode: 125,
		Tried:    []string{catalog.RunnerUvx, catalog.RunnerPipx},
	}
	if err := Encode(&buf, f); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	var decoded Failure
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded.ExitCode != 125 || len(decoded.Tried) != 2 {
		t.Errorf("decoded = %+v", decoded)
	}
}
