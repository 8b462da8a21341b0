package bundle

import (
	"strings"
	"testing"

	"github.com/mcpc-dev/mcpc/internal/project"
)

func TestLoadTypeScript(t *testing.T) {
	b, err := Load(project.LangTypeScript)
	if err != nil {
		t.Fatalf("Load(typescript) error: %v", err)
	}

	if b.Language != "typescript" {
		t.Errorf("Language = %q, want typescript", b.Language)
	}

	assertDests(t, b, []string{
		"package.json", "tsconfig.json", ".gitignore",
		".prettierrc", ".prettierignore", "src/index.ts", "README.md",
	})

	wantDirs := map[string]bool{"src": false, "build": false}
	for _, d := range b.Dirs {
		if _, ok := wantDirs[d]; ok {
			wantDirs[d] = true
		}
	}
	for d, found := range wantDirs {
		if !found {
			t.Errorf("missing dir %q in typescript bundle", d)
		}
	}
}

func TestLoadPython(t *testing.T) {
	b, err := Load(project.LangPython)
	if err != nil {
		t.Fatalf("Load(python) error: %v", err)
	}

	assertDests(t, b, []string{
		"pyproject.toml", "requirements.txt", ".gitignore", "server.py", "README.md",
	})

	// server.py must carry the executable bit.
	for _, f := range b.Files {
		if f.Dest == "server.py" && !f.Executable {
			t.Error("server.py should be marked executable")
		}
	}
}

func TestRequirementsFor_ToolScoping(t *testing.T) {
	b, err := Load(project.LangTypeScript)
	if err != nil {
		t.Fatalf("Load(typescript) error: %v", err)
	}

	reqs := b.RequirementsFor(project.ToolPnpm)
	names := make(map[string]bool)
	for _, r := range reqs {
		names[r.Name] = true
	}

	if !names["Git"] || !names["Node.js 18+"] || !names["pnpm"] {
		t.Errorf("pnpm requirements missing expected entries: %v", names)
	}
	if names["yarn"] || names["npm"] {
		t.Errorf("pnpm requirements should not include other tools: %v", names)
	}
}

func TestParse_RejectsUnknownFields(t *testing.T) {
	_, err := parse([]byte(`
language: typescript
files:
  - src: a.tmpl
    dest: a
    overwrite: true
`))
	if err == nil {
		t.Fatal("expected schema error for unknown field, got nil")
	}
	if !strings.Contains(err.Error(), "invalid bundle descriptor") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestParse_RejectsMissingFiles(t *testing.T) {
	_, err := parse([]byte("language: python\n"))
	if err == nil {
		t.Fatal("expected schema error for missing files, got nil")
	}
}

func TestParse_RejectsBadMinVersion(t *testing.T) {
	_, err := parse([]byte(`
language: python
files:
  - src: a.tmpl
    dest: a
requires:
  - name: Python
    binaries: [python3]
    min_version: not-a-version
`))
	if err == nil {
		t.Fatal("expected schema error for malformed min_version, got nil")
	}
}

func assertDests(t *testing.T, b *Bundle, want []string) {
	t.Helper()
	dests := make(map[string]bool, len(b.Files))
	for _, f := range b.Files {
		dests[f.Dest] = true
	}
	for _, d := range want {
		if !dests[d] {
			t.Errorf("bundle missing file %q (have %v)", d, b.Files)
		}
	}
	if len(b.Files) != len(want) {
		t.Errorf("bundle has %d files, want %d", len(b.Files), len(want))
	}
}
