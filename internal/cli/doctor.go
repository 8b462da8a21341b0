package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mcpc-dev/mcpc/internal/bundle"
	"github.com/mcpc-dev/mcpc/internal/project"
	"github.com/mcpc-dev/mcpc/internal/sysdeps"
)

var doctorLanguage string

func init() {
	doctorCmd.Flags().StringVarP(&doctorLanguage, "language", "l", "", "Check a single language: ts or py (default: both)")
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check for the external tools project generation needs",
	Long: `Probe the command search path for the executables generated projects
depend on (git, language runtimes, package managers) and report versions
where a minimum is recommended.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		languages := []project.Language{project.LangTypeScript, project.LangPython}
		if doctorLanguage != "" {
			lang, err := project.ParseLanguage(doctorLanguage)
			if err != nil {
				return err
			}
			languages = []project.Language{lang}
		}

		missing := 0
		for _, lang := range languages {
			b, err := bundle.Load(lang)
			if err != nil {
				return err
			}

			fmt.Printf("%s:\n", lang)
			// The doctor reports every tool the language supports, not
			// just the default one.
			missing += sysdeps.Report(os.Stdout, dedupe(b.Requires))
			fmt.Println()
		}

		if missing > 0 {
			fmt.Printf("%d missing system dependency(ies). Only the tools you plan to use need to be installed.\n", missing)
		} else {
			fmt.Println("All system dependencies found")
		}
		return nil
	},
}

// dedupe drops repeated requirement names (git appears in every bundle).
func dedupe(reqs []bundle.Requirement) []bundle.Requirement {
	seen := make(map[string]bool, len(reqs))
	var out []bundle.Requirement
	for _, r := range reqs {
		if seen[r.Name] {
			continue
		}
		seen[r.Name] = true
		out = append(out, r)
	}
	return out
}
