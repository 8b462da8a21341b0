package project

import (
	"fmt"
	"regexp"
	"strings"
)

// Language identifies a target language for the generated server.
type Language string

// Supported languages.
const (
	LangTypeScript Language = "typescript"
	LangPython     Language = "python"
)

// Tool identifies a package manager used to install project dependencies.
type Tool string

// Supported package-manager tools.
const (
	ToolPnpm Tool = "pnpm"
	ToolYarn Tool = "yarn"
	ToolNpm  Tool = "npm"
	ToolUv   Tool = "uv"
)

var namePattern = regexp.MustCompile(`^[a-z0-9][a-z0-9._-]*$`)

// toolsByLanguage defines which tools are valid for each language.
var toolsByLanguage = map[Language][]Tool{
	LangTypeScript: {ToolPnpm, ToolYarn, ToolNpm},
	LangPython:     {ToolUv},
}

// Spec is the immutable project specification resolved from CLI input.
type Spec struct {
	Name     string
	Language Language
	Tool     Tool
}

// ParseLanguage resolves a language code ("ts", "typescript", "py",
// "python") to a Language.
func ParseLanguage(code string) (Language, error) {
	switch strings.ToLower(code) {
	case "ts", "typescript":
		return LangTypeScript, nil
	case "py", "python":
		return LangPython, nil
	default:
		return "", fmt.Errorf("unsupported language %q: expected ts or py", code)
	}
}

// ParseTool resolves a tool code to a Tool.
func ParseTool(code string) (Tool, error) {
	switch strings.ToLower(code) {
	case "pnpm":
		return ToolPnpm, nil
	case "yarn":
		return ToolYarn, nil
	case "npm":
		return ToolNpm, nil
	case "uv":
		return ToolUv, nil
	default:
		return "", fmt.Errorf("unsupported tool %q: expected pnpm, yarn, npm, or uv", code)
	}
}

// DefaultTool returns the default package manager for a language.
func DefaultTool(lang Language) Tool {
	if lang == LangPython {
		return ToolUv
	}
	return ToolPnpm
}

// Tools returns the tools valid for the language.
func (l Language) Tools() []Tool {
	return toolsByLanguage[l]
}

// Compatible reports whether the tool is valid for the language.
func Compatible(lang Language, tool Tool) bool {
	for _, t := range toolsByLanguage[lang] {
		if t == tool {
			return true
		}
	}
	return false
}

// ValidateName checks that a project name is non-empty, filesystem-safe,
// and free of path separators.
func ValidateName(name string) error {
	if name == "" {
		return fmt.Errorf("project name is required")
	}
	if strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("invalid project name %q: must not contain path separators", name)
	}
	if !namePattern.MatchString(name) {
		return fmt.Errorf("invalid project name %q: must match pattern [a-z0-9][a-z0-9._-]*", name)
	}
	return nil
}

// NewSpec validates the raw CLI inputs and builds a Spec. An empty
// toolCode selects the language's default tool.
func NewSpec(name, langCode, toolCode string) (*Spec, error) {
	if err := ValidateName(name); err != nil {
		return nil, err
	}

	lang, err := ParseLanguage(langCode)
	if err != nil {
		return nil, err
	}

	var tool Tool
	if toolCode == "" {
		tool = DefaultTool(lang)
	} else {
		tool, err = ParseTool(toolCode)
		if err != nil {
			return nil, err
		}
	}

	if !Compatible(lang, tool) {
		valid := make([]string, 0, len(lang.Tools()))
		for _, t := range lang.Tools() {
			valid = append(valid, string(t))
		}
		return nil, fmt.Errorf("tool %q is not valid for language %q: expected one of %s",
			tool, lang, strings.Join(valid, ", "))
	}

	return &Spec{Name: name, Language: lang, Tool: tool}, nil
}
