package scaffold

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/mcpc-dev/mcpc/internal/bundle"
	"github.com/mcpc-dev/mcpc/internal/project"
)

func TestGenerateTypeScript(t *testing.T) {
	dir := t.TempDir()
	outDir := filepath.Join(dir, "demo")

	spec, err := project.NewSpec("demo", "ts", "pnpm")
	if err != nil {
		t.Fatalf("NewSpec() error: %v", err)
	}
	b, err := bundle.Load(spec.Language)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	result, err := Generate(b, NewData(spec), outDir)
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	expected := []string{
		"package.json", "tsconfig.json", ".gitignore",
		".prettierrc", ".prettierignore", "src/index.ts", "README.md",
	}
	assertFiles(t, result, expected)

	// Directories from the bundle exist even when empty.
	for _, d := range []string{"src", "build"} {
		info, err := os.Stat(filepath.Join(outDir, d))
		if err != nil || !info.IsDir() {
			t.Errorf("expected directory %s in output", d)
		}
	}

	// Project name is substituted into the manifest.
	pkg := readGenerated(t, outDir, "package.json")
	assertContains(t, pkg, `"name": "demo"`)
	assertContains(t, pkg, `"demo": "./build/index.js"`)
	assertNotContains(t, pkg, "{{")

	// README carries both name and tool.
	readme := readGenerated(t, outDir, "README.md")
	assertContains(t, readme, "# demo")
	assertContains(t, readme, "pnpm install")
	assertContains(t, readme, "/ABSOLUTE/PATH/TO/demo/build/index.js")

	// Entry point is untouched template content.
	index := readGenerated(t, outDir, filepath.Join("src", "index.ts"))
	assertContains(t, index, "new McpServer")
	assertContains(t, index, "StdioServerTransport")
}

func TestGenerateTypeScript_YarnReadme(t *testing.T) {
	outDir := filepath.Join(t.TempDir(), "demo")

	spec, err := project.NewSpec("demo", "ts", "yarn")
	if err != nil {
		t.Fatalf("NewSpec() error: %v", err)
	}
	b, err := bundle.Load(spec.Language)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if _, err := Generate(b, NewData(spec), outDir); err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	readme := readGenerated(t, outDir, "README.md")
	assertContains(t, readme, "yarn install")
	assertNotContains(t, readme, "pnpm")
}

func TestGeneratePython(t *testing.T) {
	outDir := filepath.Join(t.TempDir(), "weather-py")

	spec, err := project.NewSpec("weather-py", "py", "uv")
	if err != nil {
		t.Fatalf("NewSpec() error: %v", err)
	}
	b, err := bundle.Load(spec.Language)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	result, err := Generate(b, NewData(spec), outDir)
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	expected := []string{
		"pyproject.toml", "requirements.txt", ".gitignore", "server.py", "README.md",
	}
	assertFiles(t, result, expected)

	pyproject := readGenerated(t, outDir, "pyproject.toml")
	assertContains(t, pyproject, `name = "weather-py"`)

	reqs := readGenerated(t, outDir, "requirements.txt")
	assertContains(t, reqs, "mcp[cli]>=1.2.0")

	server := readGenerated(t, outDir, "server.py")
	assertContains(t, server, "FastMCP")

	if runtime.GOOS != "windows" {
		info, err := os.Stat(filepath.Join(outDir, "server.py"))
		if err != nil {
			t.Fatal(err)
		}
		if info.Mode().Perm()&0111 == 0 {
			t.Errorf("server.py mode = %o, want executable bit set", info.Mode().Perm())
		}
	}
}

func TestGenerate_RefusesNonEmptyDir(t *testing.T) {
	outDir := filepath.Join(t.TempDir(), "taken")
	if err := os.MkdirAll(outDir, 0755); err != nil {
		t.Fatal(err)
	}
	marker := filepath.Join(outDir, "keep.txt")
	if err := os.WriteFile(marker, []byte("do not touch"), 0644); err != nil {
		t.Fatal(err)
	}

	spec, err := project.NewSpec("taken", "ts", "npm")
	if err != nil {
		t.Fatalf("NewSpec() error: %v", err)
	}
	b, err := bundle.Load(spec.Language)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	_, err = Generate(b, NewData(spec), outDir)
	if err == nil {
		t.Fatal("expected error for non-empty directory, got nil")
	}
	if !strings.Contains(err.Error(), "not empty") {
		t.Errorf("unexpected error: %v", err)
	}

	// Existing content must survive.
	data, err := os.ReadFile(marker)
	if err != nil || string(data) != "do not touch" {
		t.Error("existing file was modified or removed")
	}
	entries, err := os.ReadDir(outDir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("directory gained entries: %d, want 1", len(entries))
	}
}

func TestGenerate_AllowsExistingEmptyDir(t *testing.T) {
	outDir := filepath.Join(t.TempDir(), "empty")
	if err := os.MkdirAll(outDir, 0755); err != nil {
		t.Fatal(err)
	}

	spec, err := project.NewSpec("empty", "py", "")
	if err != nil {
		t.Fatalf("NewSpec() error: %v", err)
	}
	b, err := bundle.Load(spec.Language)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if _, err := Generate(b, NewData(spec), outDir); err != nil {
		t.Fatalf("Generate() into empty existing dir error: %v", err)
	}
}

// ─── Helpers ───────────────────────────────────────────────────────

func assertFiles(t *testing.T, result *Result, expected []string) {
	t.Helper()
	got := make(map[string]bool, len(result.Files))
	for _, f := range result.Files {
		got[f] = true
	}
	for _, f := range expected {
		if !got[f] {
			t.Errorf("missing generated file %q (got %v)", f, result.Files)
		}
	}
	if len(result.Files) != len(expected) {
		t.Errorf("generated %d files, want %d: %v", len(result.Files), len(expected), result.Files)
	}
}

func readGenerated(t *testing.T, outDir, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(outDir, name))
	if err != nil {
		t.Fatalf("reading generated %s: %v", name, err)
	}
	return string(data)
}

func assertContains(t *testing.T, content, want string) {
	t.Helper()
	if !strings.Contains(content, want) {
		t.Errorf("content missing %q", want)
	}
}

func assertNotContains(t *testing.T, content, notWant string) {
	t.Helper()
	if strings.Contains(content, notWant) {
		t.Errorf("content unexpectedly contains %q", notWant)
	}
}
