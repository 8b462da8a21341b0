// Package vcs initializes version control in a generated project.
package vcs

import (
	"context"
	"fmt"
	"os/exec"
)

// Init runs `git init` in projectDir. The output is discarded: callers
// only care whether initialization succeeded, and failure is non-fatal
// for project creation.
func Init(ctx context.Context, projectDir string) error {
	git, err := exec.LookPath("git")
	if err != nil {
		return fmt.Errorf("git not found on PATH: %w", err)
	}

	cmd := exec.CommandContext(ctx, git, "init")
	cmd.Dir = projectDir
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("running git init: %w (output: %s)", err, out)
	}
	return nil
}
