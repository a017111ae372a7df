// SPDX-License-Identifier: MPL-2.0

// Package dispatch runs a resolved argv as a child process and reports its
// exit status verbatim. It is a transparent pass-through: exit codes are
// never translated, clamped, or reinterpreted, and output is never rewritten.
package dispatch

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"

	"github.com/Emasoft/no-install-linters-expert/pkg/types"
)

type (
	// Options controls how the child process is wired up.
	Options struct {
		// Stdin is the child's standard input. Nil means no input.
		Stdin io.Reader
		// Stdout receives the child's standard output when not capturing.
		Stdout io.Writer
		// Stderr receives the child's standard error when not capturing.
		Stderr io.Writer
		// Capture buffers stdout and stderr into the Result instead of
		// streaming them to the writers above.
		Capture bool
	}

	// Result is the outcome of one dispatched child process.
	Result struct {
		// ExitCode is the child's literal exit code.
		ExitCode types.ExitCode
		// Output is captured stdout (Capture mode only).
		Output string
		// ErrOutput is captured stderr (Capture mode only).
		ErrOutput string
	}

	// LaunchError means the child process could not be started at all;
	// executable missing despite a positive probe, permission denied, and
	// the like. It is distinct from the tool running and exiting nonzero,
	// so callers can tell "install problem" from "lint findings".
	LaunchError struct {
		Argv0 string
		Err   error
	}
)

// Error implements the error interface.
func (e *LaunchError) Error() string {
	return fmt.Sprintf("failed to launch %s: %v", e.Argv0, e.Err)
}

// Unwrap returns the underlying spawn error.
func (e *LaunchError) Unwrap() error { return e.Err }

// Run executes argv as a child process and waits for it. The only error it
// returns is a *LaunchError; a tool that runs and exits nonzero is not an
// error here; its code lands in Result.ExitCode unmodified. No timeout is
// imposed beyond whatever the caller's context carries: a long-running lint
// is legitimate and must not be cancelled implicitly.
func Run(ctx context.Context, argv []string, opts Options) (*Result, error) {
	if len(argv) == 0 {
		return nil, &LaunchError{Argv0: "", Err: errors.New("empty argv")}
	}

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Stdin = opts.Stdin

	var stdout, stderr bytes.Buffer
	if opts.Capture {
		cmd.Stdout = &stdout
		cmd.Stderr = &stderr
	} else {
		cmd.Stdout = opts.Stdout
		cmd.Stderr = opts.Stderr
	}

	err := cmd.Run()
	result := &Result{}
	if opts.Capture {
		result.Output = stdout.String()
		result.ErrOutput = stderr.String()
	}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			result.ExitCode = types.ExitCode(exitErr.ExitCode())
			return result, nil
		}
		return nil, &LaunchError{Argv0: argv[0], Err: err}
	}

	return result, nil
}
