package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mcpc-dev/mcpc/internal/branding"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var (
	flagLanguage  string
	flagTool      string
	flagOutputDir string
	flagNoInstall bool
	flagNoGit     bool
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName() + " <project-name>",
	Short: branding.Description(),
	Long: branding.DisplayName() + ` generates a ready-to-run MCP (Model Context Protocol) server
project: it renders the template bundle for the chosen language, installs
dependencies with the chosen package manager, and initializes a git repository.

Examples:
  mcpc demo                  TypeScript server, installed with pnpm
  mcpc demo -l ts -t yarn    TypeScript server, installed with yarn
  mcpc demo -l py            Python server with a uv virtual environment`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGenerate(args[0])
	},
}

func init() {
	rootCmd.Flags().StringVarP(&flagLanguage, "language", "l", "", "Target language: ts or py (default from config, else ts)")
	rootCmd.Flags().StringVarP(&flagTool, "tool", "t", "", "Package manager: pnpm, yarn, npm, or uv (default per language)")
	rootCmd.Flags().StringVar(&flagOutputDir, "output-dir", "", "Output directory (default: ./<project-name>)")
	rootCmd.Flags().BoolVar(&flagNoInstall, "no-install", false, "Skip dependency installation")
	rootCmd.Flags().BoolVar(&flagNoGit, "no-git", false, "Skip git repository initialization")
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return err
}
