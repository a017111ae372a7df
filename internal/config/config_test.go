// SPDX-License-Identifier: MPL-2.0

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	// Point the config dir somewhere empty so the host's real file is ignored.
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.ProbeTimeout != 5*time.Second {
		t.Errorf("ProbeTimeout = %v, want 5s default", cfg.ProbeTimeout)
	}
	if len(cfg.Tools) != 0 {
		t.Errorf("Tools = %v, want empty", cfg.Tools)
	}
}

func TestLoadExplicitFile(t *testing.T) {
	path := writeConfig(t, `
probe_timeout = "250ms"

[priority]
python = ["pipx", "uvx"]

[[tools]]
name = "sqruff"
runners = ["uvx"]
extra_args = "--config 'my config.toml'"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.ProbeTimeout != 250*time.Millisecond {
		t.Errorf("ProbeTimeout = %v, want 250ms", cfg.ProbeTimeout)
	}
	if got := cfg.Priority["python"]; len(got) != 2 || got[0] != "pipx" {
		t.Errorf("Priority[python] = %v, want [pipx uvx]", got)
	}
	if len(cfg.Tools) != 1 || cfg.Tools[0].Name != "sqruff" {
		t.Fatalf("Tools = %+v, want one entry named sqruff", cfg.Tools)
	}
}

func TestLoadExplicitFileMissing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Error("Load() = nil error for a missing explicit config file")
	}
}

func TestLoadRejectsBadTimeout(t *testing.T) {
	path := writeConfig(t, `probe_timeout = "yesterday"`)
	if _, err := Load(path); err == nil {
		t.Error("Load() = nil error for an unparseable probe_timeout")
	}
}

func TestCatalogAppliesPriorityOverride(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Priority = map[string][]string{"python": {"pipx", "uvx"}}

	cat, err := cfg.Catalog()
	if err != nil {
		t.Fatalf("Catalog() error = %v", err)
	}
	ruff, ok := cat.Lookup("ruff")
	if !ok {
		t.Fatal("ruff missing from catalog")
	}
	if ruff.Runners[0] != "pipx" {
		t.Errorf("ruff runners = %v, want pipx first after override", ruff.Runners)
	}
}

func TestCatalogPriorityOverrideNeverAddsCapability(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Priority = map[string][]string{"node": {"docker", "npx", "bunx"}}

	cat, err := cfg.Catalog()
	if err != nil {
		t.Fatalf("Catalog() error = %v", err)
	}
	eslint, ok := cat.Lookup("eslint")
	if !ok {
		t.Fatal("eslint missing from catalog")
	}
	for _, r := range eslint.Runners {
		if r == "docker" {
			t.Errorf("override added docker to eslint runners: %v", eslint.Runners)
		}
	}
	if eslint.Runners[0] != "npx" {
		t.Errorf("eslint runners = %v, want npx first", eslint.Runners)
	}
}

func TestCatalogCustomToolShadowsBuiltin(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Tools = []ToolConfig{{
		Name:    "ruff",
		Runners: []string{"pipx"},
	}}

	cat, err := cfg.Catalog()
	if err != nil {
		t.Fatalf("Catalog() error = %v", err)
	}
	ruff, _ := cat.Lookup("ruff")
	if len(ruff.Runners) != 1 || ruff.Runners[0] != "pipx" {
		t.Errorf("custom ruff runners = %v, want [pipx]", ruff.Runners)
	}
}

func TestToSpecSplitsExtraArgsWithQuoting(t *testing.T) {
	tc := ToolConfig{
		Name:      "sqruff",
		Runners:   []string{"uvx"},
		ExtraArgs: `--config "my config.toml" --fix`,
	}
	spec, err := tc.toSpec()
	if err != nil {
		t.Fatalf("toSpec() error = %v", err)
	}
	want := []string{"--config", "my config.toml", "--fix"}
	if len(spec.ExtraArgs) != len(want) {
		t.Fatalf("ExtraArgs = %v, want %v", spec.ExtraArgs, want)
	}
	for i := range want {
		if spec.ExtraArgs[i] != want[i] {
			t.Errorf("ExtraArgs[%d] = %q, want %q", i, spec.ExtraArgs[i], want[i])
		}
	}
}

func TestToSpecRejectsMissingFields(t *testing.T) {
	if _, err := (ToolConfig{Runners: []string{"uvx"}}).toSpec(); err == nil {
		t.Error("toSpec() accepted a tool with no name")
	}
	if _, err := (ToolConfig{Name: "x"}).toSpec(); err == nil {
		t.Error("toSpec() accepted a tool with no runners")
	}
}
