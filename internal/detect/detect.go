// SPDX-License-Identifier: MPL-2.0

// Package detect probes the host for usable executors and produces the
// per-invocation availability set.
package detect

import (
	"context"
	"log/slog"
	"time"

	"github.com/Emasoft/no-install-linters-expert/internal/executor"
)

// DefaultProbeTimeout bounds each individual probe. A stuck probe (e.g. a
// docker CLI waiting on a dead daemon socket) must not stall the whole run.
const DefaultProbeTimeout = 5 * time.Second

type (
	// Status records one executor's presence on the current host.
	Status struct {
		// Present is true when the executor's probe succeeded.
		Present bool
		// Reason carries the absence reason when Present is false.
		Reason string
	}

	// Set maps executor name to probe status. It is computed fresh on every
	// invocation and never cached across runs, so installed runners can come
	// and go between invocations, and the whole point of probing is to
	// reflect the host as it is right now.
	Set map[string]Status
)

// Present reports whether the named executor probed as present.
func (s Set) Present(name string) bool {
	return s[name].Present
}

// Detect probes every executor in the registry and returns the availability
// set. A probe that errors or times out marks that executor absent; it never
// aborts detection of the others. timeout <= 0 selects DefaultProbeTimeout.
func Detect(ctx context.Context, reg *executor.Registry, timeout time.Duration) Set {
	if timeout <= 0 {
		timeout = DefaultProbeTimeout
	}

	set := make(Set, len(reg.Names()))
	for _, e := range reg.All() {
		probeCtx, cancel := context.WithTimeout(ctx, timeout)
		start := time.Now()
		err := e.Probe(probeCtx)
		cancel()

		if err != nil {
			set[e.Name()] = Status{Reason: err.Error()}
		} else {
			set[e.Name()] = Status{Present: true}
		}
		slog.Debug("probed executor",
			"executor", e.Name(),
			"present", err == nil,
			"elapsed", time.Since(start).Round(time.Millisecond))
	}
	return set
}
