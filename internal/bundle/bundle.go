package bundle

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"go.yaml.in/yaml/v3"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/mcpc-dev/mcpc/internal/project"
)

//go:embed bundles/*.yaml bundle.schema.json
var bundleFS embed.FS

//go:embed bundle.schema.json
var schemaBytes []byte

var (
	compiledSchema *jsonschema.Schema
	compileOnce    sync.Once
	compileErr     error
	printer        = message.NewPrinter(language.English)
)

// File is one template file in a bundle: the template name inside the
// language's template set and the destination path relative to the
// project root.
type File struct {
	Src        string `yaml:"src"`
	Dest       string `yaml:"dest"`
	Executable bool   `yaml:"executable"`
}

// Requirement declares a system executable the generated project needs.
// Any one of Binaries satisfies it. Tool-scoped requirements only apply
// when that package manager is selected.
type Requirement struct {
	Name        string   `yaml:"name"`
	Binaries    []string `yaml:"binaries"`
	MinVersion  string   `yaml:"min_version"`
	InstallHint string   `yaml:"install_hint"`
	Tool        string   `yaml:"tool"`
}

// Bundle describes the full file set generated for one language.
type Bundle struct {
	Language string        `yaml:"language"`
	Dirs     []string      `yaml:"dirs"`
	Files    []File        `yaml:"files"`
	Requires []Requirement `yaml:"requires"`
}

// getSchema compiles the embedded JSON Schema once and returns it.
func getSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaBytes))
		if err != nil {
			compileErr = fmt.Errorf("unmarshaling schema JSON: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource("bundle.schema.json", doc); err != nil {
			compileErr = fmt.Errorf("adding schema resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile("bundle.schema.json")
		if compileErr != nil {
			compileErr = fmt.Errorf("compiling schema: %w", compileErr)
		}
	})
	return compiledSchema, compileErr
}

// Load reads and validates the descriptor for a language.
func Load(lang project.Language) (*Bundle, error) {
	name := fmt.Sprintf("bundles/%s.yaml", lang)
	data, err := bundleFS.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("no template bundle for language %q: %w", lang, err)
	}
	return parse(data)
}

// parse unmarshals a descriptor after checking it against the schema.
func parse(data []byte) (*Bundle, error) {
	if err := validate(data); err != nil {
		return nil, err
	}

	var b Bundle
	if err := yaml.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("parsing bundle descriptor: %w", err)
	}
	return &b, nil
}

// validate checks raw descriptor YAML against the embedded JSON Schema.
func validate(data []byte) error {
	schema, err := getSchema()
	if err != nil {
		return fmt.Errorf("loading schema: %w", err)
	}

	var raw interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("parsing YAML: %w", err)
	}

	// Round-trip through JSON so the validator sees JSON-native types.
	raw = normalizeYAML(raw)
	jsonData, err := json.Marshal(raw)
	if err != nil {
		return fmt.Errorf("converting to JSON: %w", err)
	}
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(jsonData))
	if err != nil {
		return fmt.Errorf("preparing JSON for validation: %w", err)
	}

	err = schema.Validate(inst)
	if err == nil {
		return nil
	}

	ve, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return fmt.Errorf("validating bundle descriptor: %w", err)
	}
	return fmt.Errorf("invalid bundle descriptor:\n  %s", strings.Join(issueStrings(ve), "\n  "))
}

// RequirementsFor returns the requirements that apply when the given
// tool is selected: all unscoped requirements plus the tool's own.
func (b *Bundle) RequirementsFor(tool project.Tool) []Requirement {
	var out []Requirement
	for _, r := range b.Requires {
		if r.Tool == "" || r.Tool == string(tool) {
			out = append(out, r)
		}
	}
	return out
}

// issueStrings walks the validation error tree and renders leaf errors.
func issueStrings(ve *jsonschema.ValidationError) []string {
	var out []string
	collectIssues(ve, &out)
	if len(out) == 0 {
		out = append(out, ve.Error())
	}
	return out
}

func collectIssues(ve *jsonschema.ValidationError, out *[]string) {
	if len(ve.Causes) == 0 {
		if ve.ErrorKind == nil {
			return
		}
		path := "/" + strings.Join(ve.InstanceLocation, "/")
		if len(ve.InstanceLocation) == 0 {
			path = "(root)"
		}
		*out = append(*out, path+": "+ve.ErrorKind.LocalizedString(printer))
		return
	}
	for _, cause := range ve.Causes {
		collectIssues(cause, out)
	}
}

// normalizeYAML recursively converts YAML-decoded values to JSON-compatible
// types (map keys to strings, nested slices and maps normalized).
func normalizeYAML(v interface{}) interface{} {
	switch val := v.(type) {
	case map[string]interface{}:
		m := make(map[string]interface{}, len(val))
		for k, item := range val {
			m[k] = normalizeYAML(item)
		}
		return m
	case map[interface{}]interface{}:
		m := make(map[string]interface{}, len(val))
		for k, item := range val {
			m[fmt.Sprintf("%v", k)] = normalizeYAML(item)
		}
		return m
	case []interface{}:
		s := make([]interface{}, len(val))
		for i, item := range val {
			s[i] = normalizeYAML(item)
		}
		return s
	default:
		return v
	}
}
