package structtag

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Mixins is a YAML mix-in document.
type Mixins struct {
	Types []TypeMixin `yaml:"types"`
}

// TypeMixin attaches tags to one registered type and its members.
type TypeMixin struct {
	// Type is a Registry name.
	Type string `yaml:"type"`
	// Tags are class tags.
	Tags string `yaml:"tags,omitempty"`
	// Fields maps field names to tag text.
	Fields map[string]string `yaml:"fields,omitempty"`
	// Methods maps method names to their mix-in.
	Methods map[string]MethodMixin `yaml:"methods,omitempty"`
}

// MethodMixin attaches tags to a method and names its parameters.
// In YAML it is either a mapping or a scalar holding only the method tags.
type MethodMixin struct {
	Tags   string       `yaml:"tags,omitempty"`
	Params []ParamMixin `yaml:"params,omitempty"`
}

// ParamMixin names a method parameter and tags it.
type ParamMixin struct {
	Name string `yaml:"name,omitempty"`
	Tags string `yaml:"tags,omitempty"`
}

// UnmarshalYAML accepts either a tag text scalar or a full mapping.
func (m *MethodMixin) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var tags string

		if err := node.Decode(&tags); err != nil {
			return err
		}

		*m = MethodMixin{Tags: tags}

		return nil

	case yaml.MappingNode:
		type plain MethodMixin

		var p plain

		if err := node.Decode(&p); err != nil {
			return err
		}

		*m = MethodMixin(p)

		return nil

	default:
		return fmt.Errorf("expected tag text or mapping, got %v", node.Kind)
	}
}

// LoadMixins loads and parses a YAML mix-in file from the given path.
func LoadMixins(path string) (*Mixins, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read mix-in file %s: %w", path, err)
	}

	return ParseMixins(data)
}

// ParseMixins parses YAML data into Mixins.
func ParseMixins(data []byte) (*Mixins, error) {
	var m Mixins

	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse mix-in YAML: %w", err)
	}

	for i, tm := range m.Types {
		if tm.Type == "" {
			return nil, fmt.Errorf("types[%d]: missing type: %w", i, ErrInvalidValue)
		}
	}

	return &m, nil
}

// Marshal serializes Mixins to YAML.
func (m *Mixins) Marshal() ([]byte, error) {
	return yaml.Marshal(m)
}
