// SPDX-License-Identifier: MPL-2.0

package types

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidToolName is the sentinel error wrapped by InvalidToolNameError.
var ErrInvalidToolName = errors.New("invalid tool name")

type (
	// ToolName is the identifier a user types to invoke a tool. A valid name
	// is non-empty and contains no whitespace or path separators; it is a
	// lookup key, never a path.
	ToolName string

	// InvalidToolNameError is returned when a ToolName value is empty or
	// contains forbidden characters.
	InvalidToolNameError struct {
		Value ToolName
	}
)

// String returns the string representation of the ToolName.
func (n ToolName) String() string { return string(n) }

// Validate returns an error when the name is empty or contains whitespace or
// path separators.
func (n ToolName) Validate() error {
	if strings.TrimSpace(string(n)) == "" {
		return &InvalidToolNameError{Value: n}
	}
	if strings.ContainsAny(string(n), " \t\n/\\") {
		return &InvalidToolNameError{Value: n}
	}
	return nil
}

// Error implements the error interface for InvalidToolNameError.
func (e *InvalidToolNameError) Error() string {
	return fmt.Sprintf("invalid tool name %q: must be non-empty with no whitespace or path separators", e.Value)
}

// Unwrap returns ErrInvalidToolName for errors.Is() compatibility.
func (e *InvalidToolNameError) Unwrap() error { return ErrInvalidToolName }
