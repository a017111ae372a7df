// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestActionableErrorMessage(t *testing.T) {
	cause := errors.New("connection refused")
	err := New("probe executor").On("docker").Wrap(cause)

	want := "failed to probe executor: docker: connection refused"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is() does not reach the wrapped cause")
	}
}

func TestActionableErrorMinimalForm(t *testing.T) {
	err := New("load config")
	if err.Error() != "failed to load config" {
		t.Errorf("Error() = %q", err.Error())
	}
}

func TestFormatListsSuggestions(t *testing.T) {
	err := New("resolve tool").
		On("ruff").
		Hint("Run 'nolin executors' to see what is installed").
		Hint("Check the tool name with 'nolin db'")

	out := err.Format(false)
	if strings.Count(out, "•") != 2 {
		t.Errorf("Format() = %q, want two suggestion bullets", out)
	}
}

func TestFormatVerboseShowsErrorChain(t *testing.T) {
	inner := errors.New("root cause")
	middle := fmt.Errorf("middle layer: %w", inner)
	err := New("load config").Wrap(middle)

	terse := err.Format(false)
	if strings.Contains(terse, "Error chain") {
		t.Errorf("non-verbose Format() includes the chain: %q", terse)
	}

	verbose := err.Format(true)
	if !strings.Contains(verbose, "Error chain") {
		t.Fatalf("verbose Format() missing the chain: %q", verbose)
	}
	if !strings.Contains(verbose, "root cause") || !strings.Contains(verbose, "middle layer") {
		t.Errorf("verbose chain missing links: %q", verbose)
	}
}
