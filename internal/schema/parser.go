package schema

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ruleEntry represents the structured rule form in a schema file.
// Pointer fields distinguish "unspecified" from a zero value: an
// unspecified `required` defaults to true during normalization.
type ruleEntry struct {
	Required    *bool    `yaml:"required"`
	Default     *string  `yaml:"default"`
	Pattern     *string  `yaml:"pattern"`
	OneOf       []string `yaml:"one_of"`
	Transform   string   `yaml:"transform"`
	Description string   `yaml:"description"`
}

// normalize expands a file entry into a canonical Rule. Patterns are
// compiled here, once, and unknown transform names are rejected here so
// evaluation never fails on a malformed rule.
func (e ruleEntry) normalize(key string) (Rule, error) {
	r := Rule{
		Required:    true,
		Default:     e.Default,
		OneOf:       e.OneOf,
		Description: e.Description,
	}

	if e.Required != nil {
		r.Required = *e.Required
	}

	if e.Pattern != nil {
		p, err := CompilePattern(*e.Pattern)
		if err != nil {
			return Rule{}, fmt.Errorf("key %q: %w", key, err)
		}
		r.Pattern = p
	}

	if e.Transform != "" {
		fn, ok := LookupTransform(e.Transform)
		if !ok {
			return Rule{}, fmt.Errorf("key %q: unknown transform %q", key, e.Transform)
		}
		r.Transform = fn
	}

	return r, nil
}

// Parse parses YAML schema content. Each top-level entry is an env var
// name mapped to either a bare boolean (shorthand for required-ness) or
// a structured rule. The document is decoded through yaml.Node so key
// declaration order survives into the Schema.
func Parse(content []byte) (*Schema, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(content, &doc); err != nil {
		return nil, fmt.Errorf("invalid YAML: %w", err)
	}

	s := New()

	// An empty document is a valid, empty schema.
	if len(doc.Content) == 0 {
		return s, nil
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("schema root must be a mapping of env var names to rules")
	}

	for i := 0; i < len(root.Content); i += 2 {
		keyNode, valNode := root.Content[i], root.Content[i+1]
		key := keyNode.Value

		if _, dup := s.Rule(key); dup {
			return nil, fmt.Errorf("duplicate key %q", key)
		}

		switch valNode.Kind {
		case yaml.ScalarNode:
			var required bool
			if err := valNode.Decode(&required); err != nil {
				return nil, fmt.Errorf("key %q: shorthand must be a boolean", key)
			}
			s.SetShorthand(key, required)

		case yaml.MappingNode:
			var entry ruleEntry
			if err := valNode.Decode(&entry); err != nil {
				return nil, fmt.Errorf("key %q: %w", key, err)
			}
			r, err := entry.normalize(key)
			if err != nil {
				return nil, err
			}
			s.Set(key, r)

		default:
			return nil, fmt.Errorf("key %q: rule must be a boolean or a mapping", key)
		}
	}

	return s, nil
}

// Load reads and parses envguard.yaml from the given directory.
func Load(dir string) (*Schema, error) {
	return LoadFromPath(filepath.Join(dir, "envguard.yaml"))
}

// LoadFromPath reads and parses a schema from the given file path.
func LoadFromPath(path string) (*Schema, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to read schema: %w", err)
	}

	return Parse(content)
}
