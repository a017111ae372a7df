// SPDX-License-Identifier: MPL-2.0

// Package types defines cross-cutting value types shared by the resolution
// and dispatch packages. These carry semantic meaning and validation but have
// no domain-specific dependencies.
//
// This package is a leaf dependency: it imports only the standard library.
package types

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrInvalidExitCode is the sentinel error wrapped by InvalidExitCodeError.
var ErrInvalidExitCode = errors.New("invalid exit code")

// Reserved exit codes for dispatcher-level outcomes. The underlying tool's
// own exit code is always passed through verbatim; these codes are only
// produced when no tool ran (or could not be started), so automation can
// tell "the linter found problems" apart from "nolin could not run it".
const (
	// ExitUnknownTool means the requested tool is not in the catalog.
	ExitUnknownTool ExitCode = 124
	// ExitNoRunner means no executor capable of running the tool is present.
	ExitNoRunner ExitCode = 125
	// ExitLaunchFailure means process creation failed despite a positive probe.
	ExitLaunchFailure ExitCode = 126
	// ExitBuildError means the catalog entry is missing data an executor
	// requires (e.g. a container image), or the configuration is invalid.
	ExitBuildError ExitCode = 127
)

type (
	// ExitCode represents a process exit status code.
	// Exit codes are in the range 0-255 on POSIX systems.
	// The zero value (0) means success.
	ExitCode int

	// InvalidExitCodeError is returned when an ExitCode is outside the
	// valid range (0-255).
	InvalidExitCodeError struct {
		Value ExitCode
	}
)

// Error implements the error interface.
func (e *InvalidExitCodeError) Error() string {
	return fmt.Sprintf("invalid exit code %d (must be in range 0-255)", e.Value)
}

// Unwrap returns ErrInvalidExitCode so callers can use errors.Is for programmatic detection.
func (e *InvalidExitCodeError) Unwrap() error { return ErrInvalidExitCode }

// Validate returns an error if the ExitCode is outside the valid range (0-255).
func (c ExitCode) Validate() error {
	if c < 0 || c > 255 {
		return &InvalidExitCodeError{Value: c}
	}
	return nil
}

// IsSuccess returns true if the exit code indicates successful execution.
func (c ExitCode) IsSuccess() bool { return c == 0 }

// IsReserved returns true if the exit code is one of the dispatcher-level
// codes rather than a code reported by the tool itself.
func (c ExitCode) IsReserved() bool {
	return c >= ExitUnknownTool && c <= ExitBuildError
}

// String returns the decimal string representation of the ExitCode.
func (c ExitCode) String() string { return strconv.Itoa(int(c)) }
