// SPDX-License-Identifier: MPL-2.0

package types

import (
	"errors"
	"testing"
)

func TestToolNameValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		value     ToolName
		wantValid bool
	}{
		{name: "simple name is valid", value: "ruff", wantValid: true},
		{name: "hyphenated name is valid", value: "markdownlint-cli", wantValid: true},
		{name: "empty is invalid", value: "", wantValid: false},
		{name: "whitespace-only is invalid", value: "   ", wantValid: false},
		{name: "embedded space is invalid", value: "my tool", wantValid: false},
		{name: "path separator is invalid", value: "bin/ruff", wantValid: false},
		{name: "backslash is invalid", value: `bin\ruff`, wantValid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.value.Validate()
			if (err == nil) != tt.wantValid {
				t.Errorf("ToolName(%q).Validate() error = %v, wantValid %v", tt.value, err, tt.wantValid)
			}
			if !tt.wantValid && !errors.Is(err, ErrInvalidToolName) {
				t.Errorf("error does not wrap ErrInvalidToolName: %v", err)
			}
		})
	}
}
