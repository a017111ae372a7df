// SPDX-License-Identifier: MPL-2.0

package executor

import (
	"context"

	"github.com/Emasoft/no-install-linters-expert/internal/catalog"
)

// Npx runs Node tools through npx with --yes, so a missing package is
// fetched into the npx cache without an interactive prompt.
type Npx struct{}

// NewNpx creates the npx executor.
func NewNpx() *Npx { return &Npx{} }

// Name returns the executor name.
func (n *Npx) Name() string { return catalog.RunnerNpx }

// Ecosystem returns the Node ecosystem tag.
func (n *Npx) Ecosystem() catalog.Ecosystem { return catalog.EcosystemNode }

// Probe checks that npx resolves on PATH.
func (n *Npx) Probe(ctx context.Context) error {
	return probeOnPath("npx")
}

// Args renders the npx invocation. When the package and the command differ,
// npx needs --package to fetch one and run the other: this is how
// markdownlint (package markdownlint-cli) and tsc (package typescript) work.
func (n *Npx) Args(tool catalog.ToolSpec, extra []string) ([]string, error) {
	argv := []string{"npx", "--yes"}
	if tool.PackageName() != tool.Name {
		argv = append(argv, "--package", tool.PackageName())
	}
	argv = append(argv, tool.Name)
	return append(argv, trailing(tool, extra)...), nil
}
