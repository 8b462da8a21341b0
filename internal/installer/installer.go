package installer

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/mcpc-dev/mcpc/internal/project"
)

// Step is one package-manager invocation in the install sequence.
type Step struct {
	Name string // human-readable, e.g. "runtime dependencies"
	Bin  string
	Args []string
}

// Output captures the result of running the install sequence.
type Output struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// Installer executes install steps with working directory set to the
// project. Stdout and Stderr can be set for testing; defaults to
// os.Stdout/os.Stderr.
type Installer struct {
	Stdout io.Writer
	Stderr io.Writer
}

// Steps returns the install sequence for a tool. The TypeScript tools
// install the MCP SDK plus dev tooling; uv only creates the virtual
// environment and leaves `uv pip install` to the user.
func Steps(tool project.Tool) []Step {
	switch tool {
	case project.ToolPnpm:
		return []Step{
			{Name: "runtime dependencies", Bin: "pnpm", Args: []string{"install", "@modelcontextprotocol/sdk", "zod"}},
			{Name: "development dependencies", Bin: "pnpm", Args: []string{"install", "-D", "@types/node", "typescript"}},
		}
	case project.ToolYarn:
		return []Step{
			{Name: "runtime dependencies", Bin: "yarn", Args: []string{"add", "@modelcontextprotocol/sdk", "zod"}},
			{Name: "development dependencies", Bin: "yarn", Args: []string{"add", "--dev", "@types/node", "typescript"}},
		}
	case project.ToolNpm:
		return []Step{
			{Name: "runtime dependencies", Bin: "npm", Args: []string{"install", "@modelcontextprotocol/sdk", "zod"}},
			{Name: "development dependencies", Bin: "npm", Args: []string{"install", "--save-dev", "@types/node", "typescript"}},
		}
	case project.ToolUv:
		return []Step{
			{Name: "virtual environment", Bin: "uv", Args: []string{"venv"}},
		}
	default:
		return nil
	}
}

// Run executes the tool's install sequence in projectDir, streaming output
// to the configured writers while capturing it for diagnostics. A step
// exiting non-zero is recorded in Output.ExitCode and stops the sequence;
// the error return is reserved for failures to start a process at all.
func (i *Installer) Run(ctx context.Context, projectDir string, tool project.Tool) (*Output, error) {
	stdout := i.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}
	stderr := i.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}

	var stdoutBuf, stderrBuf bytes.Buffer
	output := &Output{}

	for _, step := range Steps(tool) {
		bin, err := exec.LookPath(step.Bin)
		if err != nil {
			return output, fmt.Errorf("installer requires %s: %w", step.Bin, err)
		}

		fmt.Fprintf(stdout, "Installing %s with %s...\n", step.Name, step.Bin)

		cmd := exec.CommandContext(ctx, bin, step.Args...)
		cmd.Dir = projectDir
		cmd.Stdout = io.MultiWriter(stdout, &stdoutBuf)
		cmd.Stderr = io.MultiWriter(stderr, &stderrBuf)

		err = cmd.Run()
		output.Stdout = stdoutBuf.String()
		output.Stderr = stderrBuf.String()

		if err != nil {
			if exitErr, ok := err.(*exec.ExitError); ok {
				output.ExitCode = exitErr.ExitCode()
				return output, nil
			}
			return output, fmt.Errorf("running %s %s: %w", step.Bin, step.Name, err)
		}
	}

	return output, nil
}
