// SPDX-License-Identifier: MPL-2.0

package detect

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Emasoft/no-install-linters-expert/internal/catalog"
	"github.com/Emasoft/no-install-linters-expert/internal/executor"
)

// fakeExecutor is a stub executor whose probe outcome is scripted.
type fakeExecutor struct {
	name     string
	probeErr error
	blocking bool
}

func (f *fakeExecutor) Name() string                 { return f.name }
func (f *fakeExecutor) Ecosystem() catalog.Ecosystem { return catalog.EcosystemPython }

func (f *fakeExecutor) Probe(ctx context.Context) error {
	if f.blocking {
		<-ctx.Done()
		return ctx.Err()
	}
	return f.probeErr
}

func (f *fakeExecutor) Args(tool catalog.ToolSpec, extra []string) ([]string, error) {
	return append([]string{f.name, tool.Name}, extra...), nil
}

func registryOf(execs ...executor.Executor) *executor.Registry {
	reg := executor.NewRegistry()
	for _, e := range execs {
		reg.Register(e)
	}
	return reg
}

func TestDetectCoversEveryExecutor(t *testing.T) {
	reg := registryOf(
		&fakeExecutor{name: "present"},
		&fakeExecutor{name: "absent", probeErr: errors.New("not found on PATH")},
	)

	set := Detect(context.Background(), reg, time.Second)
	if len(set) != 2 {
		t.Fatalf("Detect() covered %d executors, want 2", len(set))
	}
	if !set.Present("present") {
		t.Error("executor with nil probe error marked absent")
	}
	if set.Present("absent") {
		t.Error("executor with probe error marked present")
	}
	if set["absent"].Reason != "not found on PATH" {
		t.Errorf("absence reason = %q, want probe error text", set["absent"].Reason)
	}
}

func TestDetectOneBrokenProbeDoesNotBlockOthers(t *testing.T) {
	reg := registryOf(
		&fakeExecutor{name: "broken", probeErr: errors.New("probe exploded")},
		&fakeExecutor{name: "fine"},
	)

	set := Detect(context.Background(), reg, time.Second)
	if !set.Present("fine") {
		t.Error("healthy executor marked absent because a sibling probe failed")
	}
	if set.Present("broken") {
		t.Error("failing probe marked present")
	}
}

func TestDetectTimeoutMeansAbsent(t *testing.T) {
	reg := registryOf(
		&fakeExecutor{name: "stuck", blocking: true},
		&fakeExecutor{name: "fine"},
	)

	start := time.Now()
	set := Detect(context.Background(), reg, 50*time.Millisecond)
	elapsed := time.Since(start)

	if set.Present("stuck") {
		t.Error("timed-out probe marked present")
	}
	if !set.Present("fine") {
		t.Error("executor after a stuck probe marked absent")
	}
	if elapsed > 2*time.Second {
		t.Errorf("Detect() took %v, timeout did not bound the stuck probe", elapsed)
	}
}

func TestDetectZeroTimeoutUsesDefault(t *testing.T) {
	reg := registryOf(&fakeExecutor{name: "fine"})
	set := Detect(context.Background(), reg, 0)
	if !set.Present("fine") {
		t.Error("Detect() with zero timeout marked a healthy executor absent")
	}
}

func TestSetPresentOnMissingName(t *testing.T) {
	var set Set = map[string]Status{}
	if set.Present("ghost") {
		t.Error("Present() true for a name that was never probed")
	}
}
