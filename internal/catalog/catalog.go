// SPDX-License-Identifier: MPL-2.0

// Package catalog holds the static tool database: which logical tool maps to
// which distribution package, and which executors can run it, in priority order.
package catalog

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Emasoft/no-install-linters-expert/pkg/types"
)

// Ecosystem identifies the packaging ecosystem a tool or executor belongs to.
type Ecosystem string

const (
	// EcosystemPython covers tools distributed on PyPI.
	EcosystemPython Ecosystem = "python"
	// EcosystemNode covers tools distributed on the npm registry.
	EcosystemNode Ecosystem = "node"
	// EcosystemGo covers tools runnable as Go modules ("platform-module" loading).
	EcosystemGo Ecosystem = "go"
	// EcosystemContainer covers tools only runnable via a container image.
	EcosystemContainer Ecosystem = "container"
)

// Executor names referenced by tool runner lists. The executor registry must
// provide an executor for every name used in a ToolSpec.
const (
	RunnerUvx    = "uvx"
	RunnerPipx   = "pipx"
	RunnerBunx   = "bunx"
	RunnerNpx    = "npx"
	RunnerGorun  = "gorun"
	RunnerDocker = "docker"
)

type (
	// ToolSpec describes one logical tool: the name a user types, the
	// distribution identity behind it, and the executors able to run it.
	// ToolSpecs are immutable reference data; the Runners list is consulted
	// top-down with no re-ranking.
	ToolSpec struct {
		// Name is the command a user types (and usually the binary name).
		Name string
		// Package is the distribution package when it differs from Name
		// (e.g. markdownlint is shipped as markdownlint-cli). Empty means
		// the package and the command share the name.
		Package string
		// Ecosystem tags the tool's packaging origin.
		Ecosystem Ecosystem
		// Runners is the priority-ordered list of executor names able to
		// run this tool. Must be non-empty.
		Runners []string
		// Image is the container image for the docker runner. Required when
		// RunnerDocker appears in Runners. The image entrypoint must be the
		// tool itself.
		Image string
		// Module is the Go module path (including version suffix) for the
		// gorun runner. Required when RunnerGorun appears in Runners.
		Module string
		// ExtraArgs are inserted between the tool command and the caller's
		// arguments on every invocation. Populated from user configuration.
		ExtraArgs []string
	}

	// Catalog is the lookup table from tool name to ToolSpec. Construct once
	// at startup and treat as read-only.
	Catalog struct {
		tools map[string]ToolSpec
	}
)

// PackageName returns the distribution package identity, falling back to the
// tool name when no explicit package is declared.
func (t ToolSpec) PackageName() string {
	if t.Package != "" {
		return t.Package
	}
	return t.Name
}

// HasRunner reports whether the named executor appears in the runner list.
func (t ToolSpec) HasRunner(name string) bool {
	for _, r := range t.Runners {
		if r == name {
			return true
		}
	}
	return false
}

// New builds a Catalog from the given specs. Later specs override earlier
// ones with the same name, which lets user configuration shadow built-ins.
func New(specs ...ToolSpec) *Catalog {
	c := &Catalog{tools: make(map[string]ToolSpec, len(specs))}
	for _, s := range specs {
		c.tools[s.Name] = s
	}
	return c
}

// Lookup returns the spec for a tool name.
func (c *Catalog) Lookup(name string) (ToolSpec, bool) {
	s, ok := c.tools[name]
	return s, ok
}

// Tools returns all specs sorted by name.
func (c *Catalog) Tools() []ToolSpec {
	out := make([]ToolSpec, 0, len(c.tools))
	for _, s := range c.tools {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Len returns the number of registered tools.
func (c *Catalog) Len() int { return len(c.tools) }

// Validate checks catalog invariants: every tool has a non-empty runner list,
// every runner name is known to the registry, and runner-specific data
// (container image, Go module path) is present where required.
func (c *Catalog) Validate(knownRunner func(name string) bool) error {
	var problems []string
	for _, t := range c.Tools() {
		if err := types.ToolName(t.Name).Validate(); err != nil {
			problems = append(problems, err.Error())
			continue
		}
		if len(t.Runners) == 0 {
			problems = append(problems, fmt.Sprintf("%s: empty runner list", t.Name))
			continue
		}
		for _, r := range t.Runners {
			if !knownRunner(r) {
				problems = append(problems, fmt.Sprintf("%s: unknown runner %q", t.Name, r))
			}
		}
		if t.HasRunner(RunnerDocker) && t.Image == "" {
			problems = append(problems, fmt.Sprintf("%s: docker runner declared without an image", t.Name))
		}
		if t.HasRunner(RunnerGorun) && t.Module == "" {
			problems = append(problems, fmt.Sprintf("%s: gorun runner declared without a module path", t.Name))
		}
	}
	if len(problems) > 0 {
		return fmt.Errorf("invalid tool catalog: %s", strings.Join(problems, "; "))
	}
	return nil
}

// Default returns the built-in tool catalog.
//
// Priority policy: within the Python ecosystem uvx is preferred over pipx
// (uvx resolves from a warm cache and needs no prior install), and within the
// Node ecosystem bunx over npx for the same reason. This ordering is data,
// not code; user configuration can reorder it per ecosystem.
func Default() *Catalog {
	return New(
		// Python ecosystem.
		ToolSpec{Name: "ruff", Ecosystem: EcosystemPython, Runners: []string{RunnerUvx, RunnerPipx}},
		ToolSpec{Name: "black", Ecosystem: EcosystemPython, Runners: []string{RunnerUvx, RunnerPipx}},
		ToolSpec{Name: "isort", Ecosystem: EcosystemPython, Runners: []string{RunnerUvx, RunnerPipx}},
		ToolSpec{Name: "mypy", Ecosystem: EcosystemPython, Runners: []string{RunnerUvx, RunnerPipx}},
		ToolSpec{Name: "yamllint", Ecosystem: EcosystemPython, Runners: []string{RunnerUvx, RunnerPipx}},
		ToolSpec{Name: "codespell", Ecosystem: EcosystemPython, Runners: []string{RunnerUvx, RunnerPipx}},
		ToolSpec{Name: "bandit", Ecosystem: EcosystemPython, Runners: []string{RunnerUvx, RunnerPipx}},
		ToolSpec{
			Name:      "sqlfluff",
			Ecosystem: EcosystemPython,
			Runners:   []string{RunnerUvx, RunnerPipx, RunnerDocker},
			Image:     "sqlfluff/sqlfluff:latest",
		},

		// Node ecosystem.
		ToolSpec{Name: "eslint", Ecosystem: EcosystemNode, Runners: []string{RunnerBunx, RunnerNpx}},
		ToolSpec{Name: "prettier", Ecosystem: EcosystemNode, Runners: []string{RunnerBunx, RunnerNpx}},
		ToolSpec{Name: "stylelint", Ecosystem: EcosystemNode, Runners: []string{RunnerBunx, RunnerNpx}},
		ToolSpec{Name: "jsonlint", Ecosystem: EcosystemNode, Runners: []string{RunnerBunx, RunnerNpx}},
		ToolSpec{
			// The command is markdownlint but the npm package is markdownlint-cli.
			Name:      "markdownlint",
			Package:   "markdownlint-cli",
			Ecosystem: EcosystemNode,
			Runners:   []string{RunnerBunx, RunnerNpx},
		},
		ToolSpec{
			// tsc ships inside the typescript package, which exposes more
			// than one binary; only npx can pick a specific one.
			Name:      "tsc",
			Package:   "typescript",
			Ecosystem: EcosystemNode,
			Runners:   []string{RunnerNpx},
		},

		// Go module tools.
		ToolSpec{Name: "shfmt", Ecosystem: EcosystemGo, Runners: []string{RunnerGorun}, Module: "mvdan.cc/sh/v3/cmd/shfmt@latest"},
		ToolSpec{Name: "staticcheck", Ecosystem: EcosystemGo, Runners: []string{RunnerGorun}, Module: "honnef.co/go/tools/cmd/staticcheck@latest"},
		ToolSpec{Name: "goimports", Ecosystem: EcosystemGo, Runners: []string{RunnerGorun}, Module: "golang.org/x/tools/cmd/goimports@latest"},
		ToolSpec{Name: "govulncheck", Ecosystem: EcosystemGo, Runners: []string{RunnerGorun}, Module: "golang.org/x/vuln/cmd/govulncheck@latest"},

		// Container-only tools.
		ToolSpec{Name: "shellcheck", Ecosystem: EcosystemContainer, Runners: []string{RunnerDocker}, Image: "koalaman/shellcheck:stable"},
		ToolSpec{Name: "hadolint", Ecosystem: EcosystemContainer, Runners: []string{RunnerDocker}, Image: "hadolint/hadolint:latest"},
	)
}
