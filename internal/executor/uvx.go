// SPDX-License-Identifier: MPL-2.0

package executor

import (
	"context"

	"github.com/Emasoft/no-install-linters-expert/internal/catalog"
)

// Uvx runs Python tools through uv's ephemeral runner. uvx resolves the
// package into uv's cache and executes it without installing anything into
// the project or the user environment.
type Uvx struct{}

// NewUvx creates the uvx executor.
func NewUvx() *Uvx { return &Uvx{} }

// Name returns the executor name.
func (u *Uvx) Name() string { return catalog.RunnerUvx }

// Ecosystem returns the Python ecosystem tag.
func (u *Uvx) Ecosystem() catalog.Ecosystem { return catalog.EcosystemPython }

// Probe checks that the uvx shim resolves on PATH.
func (u *Uvx) Probe(ctx context.Context) error {
	return probeOnPath("uvx")
}

// Args renders the uvx invocation. When the distribution package differs
// from the command, uvx needs the --from form: uvx --from <package> <command>.
func (u *Uvx) Args(tool catalog.ToolSpec, extra []string) ([]string, error) {
	argv := []string{"uvx"}
	if tool.PackageName() != tool.Name {
		argv = append(argv, "--from", tool.PackageName())
	}
	argv = append(argv, tool.Name)
	return append(argv, trailing(tool, extra)...), nil
}
