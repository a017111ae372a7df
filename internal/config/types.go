// SPDX-License-Identifier: MPL-2.0

package config

import (
	"fmt"
	"time"

	"mvdan.cc/sh/v3/shell"

	"github.com/Emasoft/no-install-linters-expert/internal/catalog"
)

type (
	// Config is the effective nolin configuration after merging defaults,
	// the config file, and environment variables.
	Config struct {
		// ProbeTimeout bounds each availability probe.
		ProbeTimeout time.Duration `mapstructure:"-"`
		// ProbeTimeoutRaw is the duration string as read from the config
		// file (e.g. "5s"). Parsed into ProbeTimeout during Load.
		ProbeTimeoutRaw string `mapstructure:"probe_timeout"`
		// Priority overrides runner ordering per ecosystem. Runners named
		// here are moved to the front of every matching tool's runner list,
		// in the given order; unnamed runners keep their relative order
		// behind them. Which runner wins is policy, not correctness, so it
		// is exposed as data.
		Priority map[string][]string `mapstructure:"priority"`
		// Tools are user-defined catalog entries. A tool with the same name
		// as a built-in shadows it.
		Tools []ToolConfig `mapstructure:"tools"`
	}

	// ToolConfig is one user-defined tool entry from the config file.
	ToolConfig struct {
		Name      string   `mapstructure:"name"`
		Package   string   `mapstructure:"package"`
		Ecosystem string   `mapstructure:"ecosystem"`
		Runners   []string `mapstructure:"runners"`
		Image     string   `mapstructure:"image"`
		Module    string   `mapstructure:"module"`
		// ExtraArgs is a single string split into fields with POSIX shell
		// word rules (quoting respected, nothing executed or expanded).
		ExtraArgs string `mapstructure:"extra_args"`
	}
)

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		ProbeTimeout:    5 * time.Second,
		ProbeTimeoutRaw: "5s",
	}
}

// Catalog materializes the tool catalog under this configuration: built-in
// tools with runner lists reordered per the priority overrides, then
// user-defined tools appended (shadowing built-ins by name).
func (c *Config) Catalog() (*catalog.Catalog, error) {
	specs := catalog.Default().Tools()
	for i := range specs {
		specs[i].Runners = c.reorderRunners(specs[i])
	}

	for _, tc := range c.Tools {
		spec, err := tc.toSpec()
		if err != nil {
			return nil, err
		}
		specs = append(specs, spec)
	}
	return catalog.New(specs...), nil
}

// reorderRunners applies the ecosystem priority override to one tool's
// runner list. Only runners already in the tool's list are affected: the
// override reorders, it never adds capability.
func (c *Config) reorderRunners(spec catalog.ToolSpec) []string {
	preferred, ok := c.Priority[string(spec.Ecosystem)]
	if !ok {
		return spec.Runners
	}

	out := make([]string, 0, len(spec.Runners))
	for _, p := range preferred {
		if spec.HasRunner(p) {
			out = append(out, p)
		}
	}
	for _, r := range spec.Runners {
		if !contains(out, r) {
			out = append(out, r)
		}
	}
	return out
}

// toSpec converts a user tool entry into a catalog spec, splitting extra_args
// with shell word rules so quoted arguments survive intact.
func (tc ToolConfig) toSpec() (catalog.ToolSpec, error) {
	if tc.Name == "" {
		return catalog.ToolSpec{}, fmt.Errorf("custom tool entry is missing a name")
	}
	if len(tc.Runners) == 0 {
		return catalog.ToolSpec{}, fmt.Errorf("custom tool %q has no runners", tc.Name)
	}

	var extra []string
	if tc.ExtraArgs != "" {
		fields, err := shell.Fields(tc.ExtraArgs, nil)
		if err != nil {
			return catalog.ToolSpec{}, fmt.Errorf("custom tool %q has unparseable extra_args: %w", tc.Name, err)
		}
		extra = fields
	}

	return catalog.ToolSpec{
		Name:      tc.Name,
		Package:   tc.Package,
		Ecosystem: catalog.Ecosystem(tc.Ecosystem),
		Runners:   tc.Runners,
		Image:     tc.Image,
		Module:    tc.Module,
		ExtraArgs: extra,
	}, nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
