// SPDX-License-Identifier: MPL-2.0

package executor

import (
	"context"

	"github.com/Emasoft/no-install-linters-expert/internal/catalog"
)

// Pipx runs Python tools through `pipx run`, which downloads the package
// into pipx's shared cache and runs it from there.
type Pipx struct{}

// NewPipx creates the pipx executor.
func NewPipx() *Pipx { return &Pipx{} }

// Name returns the executor name.
func (p *Pipx) Name() string { return catalog.RunnerPipx }

// Ecosystem returns the Python ecosystem tag.
func (p *Pipx) Ecosystem() catalog.Ecosystem { return catalog.EcosystemPython }

// Probe checks that pipx resolves on PATH.
func (p *Pipx) Probe(ctx context.Context) error {
	return probeOnPath("pipx")
}

// Args renders the pipx invocation. `pipx run <app>` assumes the app and the
// package share a name; the --spec form pins the package explicitly when
// they differ.
func (p *Pipx) Args(tool catalog.ToolSpec, extra []string) ([]string, error) {
	argv := []string{"pipx", "run"}
	if tool.PackageName() != tool.Name {
		argv = append(argv, "--spec", tool.PackageName())
	}
	argv = append(argv, tool.Name)
	return append(argv, trailing(tool, extra)...), nil
}
