package sysdeps

import (
	"fmt"
	"io"
	"os/exec"
	"strings"

	"github.com/mcpc-dev/mcpc/internal/bundle"
)

// Missing describes a required executable that was not found on PATH.
type Missing struct {
	Name        string
	InstallHint string
}

// Check probes each requirement and returns the ones with no candidate
// binary on PATH. Presence-only: version minimums are advisory and
// reported by Report, not enforced here.
func Check(reqs []bundle.Requirement) []Missing {
	var missing []Missing
	for _, r := range reqs {
		if _, found := lookupAny(r.Binaries); !found {
			missing = append(missing, Missing{Name: r.Name, InstallHint: r.InstallHint})
		}
	}
	return missing
}

// Report writes a doctor-style line per requirement and returns the
// number of missing executables. Found binaries additionally get an
// advisory version probe against the requirement's minimum.
func Report(w io.Writer, reqs []bundle.Requirement) int {
	missingCount := 0
	for _, r := range reqs {
		bin, found := lookupAny(r.Binaries)
		if !found {
			fmt.Fprintf(w, "  [MISS] %s (looked for %s)\n", r.Name, strings.Join(r.Binaries, ", "))
			if r.InstallHint != "" {
				fmt.Fprintf(w, "         Install with: %s\n", r.InstallHint)
			}
			missingCount++
			continue
		}

		path, _ := exec.LookPath(bin)
		if r.MinVersion == "" {
			fmt.Fprintf(w, "  [ OK ] %s found at %s\n", r.Name, path)
			continue
		}

		version, err := binaryVersion(bin)
		if err != nil {
			// Probe failures are not actionable for the user.
			fmt.Fprintf(w, "  [ OK ] %s found at %s (version unknown)\n", r.Name, path)
			continue
		}

		ok, err := meetsMinimum(version, r.MinVersion)
		switch {
		case err != nil:
			fmt.Fprintf(w, "  [ OK ] %s found at %s (version unknown)\n", r.Name, path)
		case ok:
			fmt.Fprintf(w, "  [ OK ] %s found at %s (version %s)\n", r.Name, path, version)
		default:
			fmt.Fprintf(w, "  [WARN] %s version %s is older than the recommended %s\n", r.Name, version, r.MinVersion)
		}
	}
	return missingCount
}

// lookupAny returns the first of the candidate binaries found on PATH.
func lookupAny(binaries []string) (string, bool) {
	for _, bin := range binaries {
		if _, err := exec.LookPath(bin); err == nil {
			return bin, true
		}
	}
	return "", false
}
