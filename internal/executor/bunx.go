// SPDX-License-Identifier: MPL-2.0

package executor

import (
	"context"

	"github.com/Emasoft/no-install-linters-expert/internal/catalog"
)

// Bunx runs Node tools through `bun x`, which fetches the package into bun's
// global cache and runs its binary without touching node_modules.
type Bunx struct{}

// NewBunx creates the bunx executor.
func NewBunx() *Bunx { return &Bunx{} }

// Name returns the executor name.
func (b *Bunx) Name() string { return catalog.RunnerBunx }

// Ecosystem returns the Node ecosystem tag.
func (b *Bunx) Ecosystem() catalog.Ecosystem { return catalog.EcosystemNode }

// Probe checks that the bun binary resolves on PATH.
func (b *Bunx) Probe(ctx context.Context) error {
	return probeOnPath("bun")
}

// Args renders the bun invocation. bun x takes the package name and runs its
// binary; packages exposing multiple binaries are ambiguous under bun x and
// should prefer npx in their runner list instead.
func (b *Bunx) Args(tool catalog.ToolSpec, extra []string) ([]string, error) {
	argv := []string{"bun", "x", tool.PackageName()}
	return append(argv, trailing(tool, extra)...), nil
}
