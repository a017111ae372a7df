// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"maps"
	"slices"

	"github.com/charmbracelet/glamour"
)

// Id identifies an entry in the issue catalog.
type Id int

const (
	UnknownToolId Id = iota + 1
	NoRunnerAvailableId
	DockerDaemonUnreachableId
	LaunchFailureId
	ConfigLoadFailedId
)

// MarkdownMsg is markdown help text rendered to the terminal via glamour.
type MarkdownMsg string

// Issue is one catalog entry: longer-form help shown after an error, telling
// the user what to install or check.
type Issue struct {
	id    Id
	mdMsg MarkdownMsg
}

// Id returns the issue's catalog identifier.
func (i *Issue) Id() Id { return i.id }

// MarkdownMsg returns the raw markdown help text.
func (i *Issue) MarkdownMsg() MarkdownMsg { return i.mdMsg }

// Render renders the markdown help with the given glamour style.
func (i *Issue) Render(stylePath string) (string, error) {
	return render(string(i.mdMsg), stylePath)
}

var (
	render = glamour.Render

	unknownToolIssue = &Issue{
		id: UnknownToolId,
		mdMsg: `
# Unknown tool!

The tool you asked for is not in the catalog, so there is nothing to resolve.

## Things you can try:
- List every known tool and its runners:
~~~
$ nolin db
~~~
- Check for typos in the tool name
- Add a custom tool to your config file:
~~~toml
[[tools]]
name = "sqruff"
runners = ["uvx"]
~~~`,
	}

	noRunnerAvailableIssue = &Issue{
		id: NoRunnerAvailableId,
		mdMsg: `
# No runner available!

Every executor capable of running this tool is absent on this host. The list
above shows each one that was considered and why it was rejected.

## Ephemeral runners we look for:
- **uvx** (Python): ` + "`curl -LsSf https://astral.sh/uv/install.sh | sh`" + `
- **pipx** (Python): ` + "`pip install --user pipx`" + `
- **bun** (Node): ` + "`curl -fsSL https://bun.sh/install | bash`" + `
- **npx** (Node): ships with Node.js, https://nodejs.org
- **go** (Go modules): https://go.dev/dl
- **docker** (containers): https://docs.docker.com/get-docker/

Installing any one runner from the tool's list unblocks it; the first one in
the list is the preferred choice.

## See what is already installed:
~~~
$ nolin executors
~~~`,
	}

	dockerDaemonUnreachableIssue = &Issue{
		id: DockerDaemonUnreachableId,
		mdMsg: `
# Docker daemon unreachable!

A docker CLI is on your PATH but the daemon did not answer, so the container
runner counts as absent.

## Things you can try:
- Start the daemon:
~~~
$ sudo systemctl start docker
~~~
- Check that your user is in the docker group:
~~~
$ sudo usermod -aG docker $USER
~~~
- On macOS/Windows, make sure Docker Desktop is running`,
	}

	launchFailureIssue = &Issue{
		id: LaunchFailureId,
		mdMsg: `
# Launch failure!

The executor probed as present but the process could not be started. This is
different from the tool running and reporting findings: nothing ran at all.

## Common causes:
- The runner was removed between the probe and the launch
- Permission denied on the runner binary
- PATH changed mid-run

## Things you can try:
- Re-run with verbose diagnostics:
~~~
$ nolin -v run <tool>
~~~
- Inspect what would have run:
~~~
$ nolin which <tool>
~~~`,
	}

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Failed to load configuration!

## Configuration file locations:
- Linux: ~/.config/nolin/config.toml
- macOS: ~/Library/Application Support/nolin/config.toml
- Windows: %APPDATA%\nolin\config.toml

## Example configuration:
~~~toml
probe_timeout = "5s"

[priority]
python = ["pipx", "uvx"]

[[tools]]
name = "sqruff"
runners = ["uvx"]
extra_args = "--config .sqruff"
~~~

Remove the file to fall back to defaults.`,
	}

	issues = map[Id]*Issue{
		unknownToolIssue.Id():             unknownToolIssue,
		noRunnerAvailableIssue.Id():       noRunnerAvailableIssue,
		dockerDaemonUnreachableIssue.Id(): dockerDaemonUnreachableIssue,
		launchFailureIssue.Id():           launchFailureIssue,
		configLoadFailedIssue.Id():        configLoadFailedIssue,
	}
)

// Values returns every catalog entry.
func Values() []*Issue {
	return slices.Collect(maps.Values(issues))
}

// Get returns the catalog entry for an id, or nil if unknown.
func Get(id Id) *Issue {
	return issues[id]
}
