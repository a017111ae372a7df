// SPDX-License-Identifier: MPL-2.0

// Package executor provides the ephemeral execution mechanisms (uvx, pipx,
// bunx, npx, go run, docker) and the registry that holds them.
package executor

import (
	"context"
	"fmt"
	"os/exec"

	"github.com/Emasoft/no-install-linters-expert/internal/catalog"
)

type (
	// Executor is one ephemeral execution mechanism: a way to run a tool
	// without a permanent install. Implementations must be stateless with
	// respect to host probing: Probe reflects the host at call time.
	Executor interface {
		// Name returns the executor name as referenced by catalog runner lists.
		Name() string
		// Ecosystem returns the packaging ecosystem this executor serves.
		Ecosystem() catalog.Ecosystem
		// Probe checks whether the executor is usable on the current host.
		// A nil return means present; a non-nil return carries the absence
		// reason. Probe must not mutate host state.
		Probe(ctx context.Context) error
		// Args renders the full argv for running the tool with the given
		// trailing arguments. Arguments are passed as a literal vector,
		// never interpolated through a shell.
		Args(tool catalog.ToolSpec, extra []string) ([]string, error)
	}

	// BuildError reports a catalog data defect: a tool declares this executor
	// as a runner but is missing data the executor requires.
	BuildError struct {
		Tool    string
		Runner  string
		Missing string
	}

	// Registry holds all known executors in registration order. Constructed
	// once at startup and read-only thereafter.
	Registry struct {
		order     []string
		executors map[string]Executor
	}
)

// Error implements the error interface.
func (e *BuildError) Error() string {
	return fmt.Sprintf("cannot build %s invocation for %q: catalog entry is missing %s", e.Runner, e.Tool, e.Missing)
}

// NewRegistry creates an empty executor registry.
func NewRegistry() *Registry {
	return &Registry{executors: make(map[string]Executor)}
}

// Register adds an executor. Registering the same name twice replaces the
// earlier entry but keeps its position.
func (r *Registry) Register(e Executor) {
	if _, exists := r.executors[e.Name()]; !exists {
		r.order = append(r.order, e.Name())
	}
	r.executors[e.Name()] = e
}

// Get returns an executor by name.
func (r *Registry) Get(name string) (Executor, bool) {
	e, ok := r.executors[name]
	return e, ok
}

// Has reports whether an executor with the given name is registered.
func (r *Registry) Has(name string) bool {
	_, ok := r.executors[name]
	return ok
}

// Names returns executor names in registration order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// All returns executors in registration order.
func (r *Registry) All() []Executor {
	out := make([]Executor, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.executors[name])
	}
	return out
}

// Default returns the registry of all built-in executors.
func Default() *Registry {
	r := NewRegistry()
	r.Register(NewUvx())
	r.Register(NewPipx())
	r.Register(NewBunx())
	r.Register(NewNpx())
	r.Register(NewGorun())
	r.Register(NewDocker())
	return r
}

// probeOnPath is the shared probe for executors whose availability is simply
// "does the launcher binary resolve on PATH".
func probeOnPath(binary string) error {
	if _, err := exec.LookPath(binary); err != nil {
		return fmt.Errorf("%s not found on PATH", binary)
	}
	return nil
}

// trailing combines a tool's always-on extra arguments with the caller's
// trailing arguments. Extra args come first so callers can still override
// them where the tool uses last-wins flag semantics.
func trailing(tool catalog.ToolSpec, extra []string) []string {
	out := make([]string, 0, len(tool.ExtraArgs)+len(extra))
	out = append(out, tool.ExtraArgs...)
	out = append(out, extra...)
	return out
}
