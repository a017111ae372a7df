// SPDX-License-Identifier: MPL-2.0

package executor

import (
	"context"
	"fmt"
	"os"
	"os/exec"

	"github.com/Emasoft/no-install-linters-expert/internal/catalog"
)

// Docker runs tools via `docker run` against a per-tool image. The working
// directory is mounted at /mnt so the tool sees the caller's files under
// the same relative paths.
type Docker struct {
	// Workdir is the host directory mounted into the container. Defaults to
	// the process working directory at construction time.
	Workdir string
}

// NewDocker creates the docker executor rooted at the current directory.
func NewDocker() *Docker {
	wd, err := os.Getwd()
	if err != nil {
		wd = "."
	}
	return &Docker{Workdir: wd}
}

// Name returns the executor name.
func (d *Docker) Name() string { return catalog.RunnerDocker }

// Ecosystem returns the container ecosystem tag.
func (d *Docker) Ecosystem() catalog.Ecosystem { return catalog.EcosystemContainer }

// Probe checks for a usable docker CLI and a reachable daemon. A docker
// binary with no daemon behind it cannot run anything, so PATH presence
// alone is not enough.
func (d *Docker) Probe(ctx context.Context) error {
	if _, err := exec.LookPath("docker"); err != nil {
		return fmt.Errorf("docker not found on PATH")
	}
	cmd := exec.CommandContext(ctx, "docker", "info", "--format", "{{.ServerVersion}}")
	cmd.Stdout = nil
	cmd.Stderr = nil
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("docker daemon is not reachable")
	}
	return nil
}

// Args renders the docker run invocation. The image entrypoint is the tool
// itself, so trailing arguments follow the image name directly.
func (d *Docker) Args(tool catalog.ToolSpec, extra []string) ([]string, error) {
	if tool.Image == "" {
		return nil, &BuildError{Tool: tool.Name, Runner: d.Name(), Missing: "a container image"}
	}
	argv := []string{
		"docker", "run", "--rm", "-i",
		"-v", d.Workdir + ":/mnt",
		"-w", "/mnt",
		tool.Image,
	}
	return append(argv, trailing(tool, extra)...), nil
}
