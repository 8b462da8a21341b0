package scaffold

import (
	"bytes"
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"text/template"
	"time"

	"github.com/mcpc-dev/mcpc/internal/bundle"
	"github.com/mcpc-dev/mcpc/internal/platform"
	"github.com/mcpc-dev/mcpc/internal/project"
)

//go:embed templates
var templateFS embed.FS

// Data holds the template variables available to bundle templates.
type Data struct {
	Name string // project name, substituted into manifests and READMEs
	Tool string // selected package manager, e.g. "pnpm"
	Year int    // current year
}

// NewData builds template data from a project spec.
func NewData(spec *project.Spec) *Data {
	return &Data{
		Name: spec.Name,
		Tool: string(spec.Tool),
		Year: time.Now().Year(),
	}
}

// Result holds the outcome of a scaffold generation.
type Result struct {
	OutputDir string
	Files     []string
}

// Generate renders the bundle into outputDir. The directory is created if
// needed; an existing non-empty directory is rejected before anything is
// written.
func Generate(b *bundle.Bundle, data *Data, outputDir string) (*Result, error) {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	// Check for existing files to prevent accidental overwrites.
	existing, err := os.ReadDir(outputDir)
	if err == nil && len(existing) > 0 {
		return nil, fmt.Errorf("output directory %s is not empty; choose another project name or remove it", outputDir)
	}

	for _, dir := range b.Dirs {
		if err := os.MkdirAll(filepath.Join(outputDir, dir), 0755); err != nil {
			return nil, fmt.Errorf("creating directory %s: %w", dir, err)
		}
	}

	result := &Result{OutputDir: outputDir}

	for _, f := range b.Files {
		if err := renderFile(b.Language, f, data, outputDir); err != nil {
			return nil, err
		}
		result.Files = append(result.Files, f.Dest)
	}

	return result, nil
}

// renderFile renders a single bundle file into the output directory.
func renderFile(language string, f bundle.File, data *Data, outputDir string) error {
	tmplPath := "templates/" + language + "/" + f.Src
	tmplBytes, err := templateFS.ReadFile(tmplPath)
	if err != nil {
		return fmt.Errorf("reading template %s: %w", tmplPath, err)
	}

	tmpl, err := template.New(f.Src).Parse(string(tmplBytes))
	if err != nil {
		return fmt.Errorf("parsing template %s: %w", f.Src, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return fmt.Errorf("executing template %s: %w", f.Src, err)
	}

	outPath := filepath.Join(outputDir, filepath.FromSlash(f.Dest))
	if dir := filepath.Dir(outPath); dir != outputDir {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating directory for %s: %w", f.Dest, err)
		}
	}

	if err := os.WriteFile(outPath, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", f.Dest, err)
	}

	if f.Executable {
		if err := platform.Chmod(outPath, 0755); err != nil {
			return fmt.Errorf("marking %s executable: %w", f.Dest, err)
		}
	}

	return nil
}
