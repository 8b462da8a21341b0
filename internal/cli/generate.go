package cli

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/mcpc-dev/mcpc/internal/bundle"
	"github.com/mcpc-dev/mcpc/internal/config"
	"github.com/mcpc-dev/mcpc/internal/installer"
	"github.com/mcpc-dev/mcpc/internal/project"
	"github.com/mcpc-dev/mcpc/internal/scaffold"
	"github.com/mcpc-dev/mcpc/internal/sysdeps"
	"github.com/mcpc-dev/mcpc/internal/vcs"
)

// runGenerate drives the whole pipeline: resolve the spec, verify system
// dependencies, write the project tree, then run the installer and git
// init. The last two are best-effort — the skeleton is already valid, so
// their failures become warnings instead of aborting.
func runGenerate(name string) error {
	config.Load()

	spec, err := resolveSpec(name)
	if err != nil {
		return err
	}

	b, err := bundle.Load(spec.Language)
	if err != nil {
		return err
	}

	gitWanted := !flagNoGit && config.GitInit()

	reqs := b.RequirementsFor(spec.Tool)
	if !gitWanted {
		reqs = withoutGit(reqs)
	}
	if missing := sysdeps.Check(reqs); len(missing) > 0 {
		fmt.Println("Missing required dependencies:")
		for _, m := range missing {
			fmt.Printf("  - %s\n", m.Name)
			if m.InstallHint != "" {
				fmt.Printf("    Install with: %s\n", m.InstallHint)
			}
		}
		return fmt.Errorf("%d missing system dependency(ies)", len(missing))
	}

	outDir := flagOutputDir
	if outDir == "" {
		outDir = filepath.Join(".", spec.Name)
	}

	result, err := scaffold.Generate(b, scaffold.NewData(spec), outDir)
	if err != nil {
		return err
	}

	fmt.Printf("Created %s project at %s/\n", spec.Language, result.OutputDir)
	for _, f := range result.Files {
		fmt.Printf("  %s\n", f)
	}

	ctx := context.Background()

	if !flagNoInstall {
		runInstall(ctx, result.OutputDir, spec.Tool)
	}

	if gitWanted {
		if err := vcs.Init(ctx, result.OutputDir); err != nil {
			fmt.Printf("Warning: could not initialize git repository: %v\n", err)
		}
	}

	printNextSteps(spec)
	return nil
}

// resolveSpec merges flags with config defaults. An explicit --tool is a
// hard requirement; a configured defaults.tool is only honored when it is
// compatible with the resolved language.
func resolveSpec(name string) (*project.Spec, error) {
	langCode := flagLanguage
	if langCode == "" {
		langCode = config.DefaultLanguage()
	}

	if flagTool != "" {
		return project.NewSpec(name, langCode, flagTool)
	}

	if cfgTool := config.DefaultTool(); cfgTool != "" {
		spec, err := project.NewSpec(name, langCode, cfgTool)
		if err == nil {
			return spec, nil
		}
	}
	return project.NewSpec(name, langCode, "")
}

// withoutGit drops the git requirement when VCS init is disabled.
func withoutGit(reqs []bundle.Requirement) []bundle.Requirement {
	var out []bundle.Requirement
	for _, r := range reqs {
		if len(r.Binaries) == 1 && r.Binaries[0] == "git" {
			continue
		}
		out = append(out, r)
	}
	return out
}

// runInstall executes the package manager and reports failure as a
// warning, leaving the generated tree intact.
func runInstall(ctx context.Context, projectDir string, tool project.Tool) {
	inst := &installer.Installer{}
	out, err := inst.Run(ctx, projectDir, tool)
	if err != nil {
		fmt.Printf("Warning: dependency installation failed: %v\n", err)
		fmt.Println("The project files are in place; install dependencies manually.")
		return
	}
	if out.ExitCode != 0 {
		fmt.Printf("Warning: %s exited with code %d\n", tool, out.ExitCode)
		fmt.Println("The project files are in place; install dependencies manually.")
		return
	}
	fmt.Println("Dependencies installed successfully")
}

// printNextSteps mirrors the per-language guidance the generated README
// spells out in full.
func printNextSteps(spec *project.Spec) {
	fmt.Println("\nNext steps:")
	fmt.Printf("  cd %s\n", spec.Name)

	if spec.Language == project.LangPython {
		fmt.Println("  source .venv/bin/activate  # On Windows: .venv\\Scripts\\activate")
		fmt.Println("  uv pip install -r requirements.txt")
		fmt.Println("  python server.py --test")
		return
	}

	switch spec.Tool {
	case project.ToolYarn:
		fmt.Println("  yarn dev")
	case project.ToolNpm:
		fmt.Println("  npm run dev")
	default:
		fmt.Println("  pnpm dev")
	}
	fmt.Printf("\nSee %s for Claude for Desktop integration.\n", filepath.Join(spec.Name, "README.md"))
}
