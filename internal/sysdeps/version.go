package sysdeps

import (
	"fmt"
	"os/exec"
	"regexp"
	"strings"

	"github.com/Masterminds/semver/v3"
)

var versionToken = regexp.MustCompile(`[0-9]+(\.[0-9]+){0,2}`)

// binaryVersion runs `<bin> --version` and extracts the first version-like
// token from its output. Tools disagree on the surrounding text ("v22.1.0",
// "git version 2.39.2", "Python 3.11.4"), so only the numeric token counts.
func binaryVersion(bin string) (string, error) {
	out, err := exec.Command(bin, "--version").CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("running %s --version: %w", bin, err)
	}

	token := versionToken.FindString(strings.TrimSpace(string(out)))
	if token == "" {
		return "", fmt.Errorf("no version token in %s --version output", bin)
	}
	return token, nil
}

// meetsMinimum reports whether version satisfies ">= min".
// Handles "v" prefix tolerance (strips leading "v" before parsing).
func meetsMinimum(version, min string) (bool, error) {
	c, err := semver.NewConstraint(">= " + min)
	if err != nil {
		return false, fmt.Errorf("parsing minimum version %q: %w", min, err)
	}
	v, err := semver.NewVersion(strings.TrimPrefix(version, "v"))
	if err != nil {
		return false, fmt.Errorf("parsing version %q: %w", version, err)
	}
	return c.Check(v), nil
}
