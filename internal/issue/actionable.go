// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"errors"
	"fmt"
	"strings"
)

// ActionableError is an error with context for user-facing messages: what
// operation failed, what resource was involved, and how to unblock. Methods
// chain so call sites read as one expression:
//
//	return issue.New("resolve tool").
//		On("ruff").
//		Hint("Run 'nolin executors' to see what is installed").
//		Wrap(err)
type ActionableError struct {
	// Operation describes what was being attempted (e.g. "resolve tool").
	Operation string
	// Resource identifies the tool, file, or executor involved (optional).
	Resource string
	// Suggestions are hints on how to unblock (optional).
	Suggestions []string
	// Cause is the underlying error (optional).
	Cause error
}

// New creates an ActionableError for the given operation.
func New(operation string) *ActionableError {
	return &ActionableError{Operation: operation}
}

// On sets the resource involved and returns the error for chaining.
func (e *ActionableError) On(resource string) *ActionableError {
	e.Resource = resource
	return e
}

// Hint appends suggestions and returns the error for chaining.
func (e *ActionableError) Hint(suggestions ...string) *ActionableError {
	e.Suggestions = append(e.Suggestions, suggestions...)
	return e
}

// Wrap sets the underlying cause and returns the error for chaining.
func (e *ActionableError) Wrap(err error) *ActionableError {
	e.Cause = err
	return e
}

// Error implements the error interface with the concise form used in
// non-verbose output.
func (e *ActionableError) Error() string {
	var msg strings.Builder
	msg.WriteString("failed to ")
	msg.WriteString(e.Operation)
	if e.Resource != "" {
		msg.WriteString(": ")
		msg.WriteString(e.Resource)
	}
	if e.Cause != nil {
		msg.WriteString(": ")
		msg.WriteString(e.Cause.Error())
	}
	return msg.String()
}

// Unwrap returns the cause for errors.Is/As chains.
func (e *ActionableError) Unwrap() error { return e.Cause }

// Format renders the error with its suggestions. In verbose mode the full
// error chain is appended.
func (e *ActionableError) Format(verbose bool) string {
	var msg strings.Builder
	msg.WriteString(e.Error())

	for _, s := range e.Suggestions {
		msg.WriteString("\n  • ")
		msg.WriteString(s)
	}

	if verbose && e.Cause != nil {
		msg.WriteString("\n\nError chain:")
		err := e.Cause
		depth := 1
		for err != nil {
			fmt.Fprintf(&msg, "\n  %d. %s", depth, err.Error())
			err = errors.Unwrap(err)
			depth++
		}
	}
	return msg.String()
}
