// SPDX-License-Identifier: MPL-2.0

package executor

import (
	"context"

	"github.com/Emasoft/no-install-linters-expert/internal/catalog"
)

// Gorun runs Go tools straight from their module path via `go run`. The
// toolchain fetches the module into the module cache and builds it into a
// temp path, so nothing is added to the project or to GOBIN.
type Gorun struct{}

// NewGorun creates the gorun executor.
func NewGorun() *Gorun { return &Gorun{} }

// Name returns the executor name.
func (g *Gorun) Name() string { return catalog.RunnerGorun }

// Ecosystem returns the Go ecosystem tag.
func (g *Gorun) Ecosystem() catalog.Ecosystem { return catalog.EcosystemGo }

// Probe checks that the go toolchain resolves on PATH.
func (g *Gorun) Probe(ctx context.Context) error {
	return probeOnPath("go")
}

// Args renders the go run invocation. The tool's Module field must carry the
// full command path with a version suffix (e.g. mvdan.cc/sh/v3/cmd/shfmt@latest).
func (g *Gorun) Args(tool catalog.ToolSpec, extra []string) ([]string, error) {
	if tool.Module == "" {
		return nil, &BuildError{Tool: tool.Name, Runner: g.Name(), Missing: "a Go module path"}
	}
	argv := []string{"go", "run", tool.Module}
	return append(argv, trailing(tool, extra)...), nil
}
