// Package schema loads declarative form definitions from JSON or YAML
// documents. A definition lists the form's questions in presentation
// order; Definition.Form turns it into a runnable forms.Form.
package schema

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Definition is the root of a declarative form document.
type Definition struct {
	Title       string         `json:"title" yaml:"title"`
	Description string         `json:"description" yaml:"description"`
	Accent      string         `json:"accent" yaml:"accent"`
	Questions   []QuestionSpec `json:"questions" yaml:"questions"`
}

// QuestionSpec declares a single question. Kind selects the variant and
// decides which of the optional fields apply: Limit to text, Min/Max to
// integer, Default to boolean, Choices to choice and checkboxes.
type QuestionSpec struct {
	Kind        string       `json:"kind" yaml:"kind"`
	ID          string       `json:"id" yaml:"id"`
	Title       string       `json:"title" yaml:"title"`
	Description string       `json:"description" yaml:"description"`
	Limit       int          `json:"limit" yaml:"limit"`
	Min         *int64       `json:"min" yaml:"min"`
	Max         *int64       `json:"max" yaml:"max"`
	Default     bool         `json:"default" yaml:"default"`
	Choices     []string     `json:"choices" yaml:"choices"`
	Requires    *RequireSpec `json:"requires" yaml:"requires"`
}

// RequireSpec gates a question on an earlier question's answer.
type RequireSpec struct {
	Question string `json:"question" yaml:"question"`
	Equals   any    `json:"equals" yaml:"equals"`
}

// Parse decodes and validates a definition document. JSON is tried first,
// then YAML.
func Parse(data []byte) (*Definition, error) {
	return parse(data, "definition")
}

// Load reads and parses a definition file from disk.
func Load(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("schema: read %s: %w", path, err)
	}
	return parse(data, path)
}

// LoadFS reads and parses a definition file from the provided filesystem.
func LoadFS(fsys fs.FS, path string) (*Definition, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("schema: read %s: %w", path, err)
	}
	return parse(data, path)
}

func parse(data []byte, source string) (*Definition, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, fmt.Errorf("schema: %s is empty", source)
	}

	var def Definition
	if err := json.Unmarshal(data, &def); err != nil {
		def = Definition{}
		if err := yaml.Unmarshal(data, &def); err != nil {
			return nil, fmt.Errorf("schema: parse %s: invalid JSON or YAML", source)
		}
	}

	if err := def.Validate(); err != nil {
		return nil, err
	}
	return &def, nil
}
