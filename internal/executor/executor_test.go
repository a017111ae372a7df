// SPDX-License-Identifier: MPL-2.0

package executor

import (
	"reflect"
	"testing"

	"github.com/Emasoft/no-install-linters-expert/internal/catalog"
)

func TestDefaultRegistryCoversCatalog(t *testing.T) {
	reg := Default()
	if err := catalog.Default().Validate(reg.Has); err != nil {
		t.Errorf("default catalog references unknown executors: %v", err)
	}
}

func TestDefaultRegistryOrder(t *testing.T) {
	want := []string{
		catalog.RunnerUvx,
		catalog.RunnerPipx,
		catalog.RunnerBunx,
		catalog.RunnerNpx,
		catalog.RunnerGorun,
		catalog.RunnerDocker,
	}
	if got := Default().Names(); !reflect.DeepEqual(got, want) {
		t.Errorf("Names() = %v, want %v", got, want)
	}
}

func TestRegistryReplaceKeepsPosition(t *testing.T) {
	reg := NewRegistry()
	reg.Register(NewUvx())
	reg.Register(NewPipx())

	// Replacing uvx must not move it behind pipx.
	reg.Register(NewUvx())
	want := []string{catalog.RunnerUvx, catalog.RunnerPipx}
	if got := reg.Names(); !reflect.DeepEqual(got, want) {
		t.Errorf("Names() after replace = %v, want %v", got, want)
	}
}

func TestRegistryGet(t *testing.T) {
	reg := Default()
	e, ok := reg.Get(catalog.RunnerDocker)
	if !ok {
		t.Fatal("Get(docker) failed")
	}
	if e.Name() != catalog.RunnerDocker {
		t.Errorf("Get(docker).Name() = %q", e.Name())
	}
	if _, ok := reg.Get("teleporter"); ok {
		t.Error("Get() returned an executor that was never registered")
	}
}

func TestExecutorEcosystems(t *testing.T) {
	cases := map[string]catalog.Ecosystem{
		catalog.RunnerUvx:    catalog.EcosystemPython,
		catalog.RunnerPipx:   catalog.EcosystemPython,
		catalog.RunnerBunx:   catalog.EcosystemNode,
		catalog.RunnerNpx:    catalog.EcosystemNode,
		catalog.RunnerGorun:  catalog.EcosystemGo,
		catalog.RunnerDocker: catalog.EcosystemContainer,
	}
	reg := Default()
	for name, eco := range cases {
		e, ok := reg.Get(name)
		if !ok {
			t.Fatalf("Get(%s) failed", name)
		}
		if e.Ecosystem() != eco {
			t.Errorf("%s ecosystem = %q, want %q", name, e.Ecosystem(), eco)
		}
	}
}
