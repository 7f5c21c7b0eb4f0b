package rules

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// ErrNullName is returned when a kind name is written as a YAML null
// scalar (Null, null, ~ or nothing) instead of a quoted string.
var ErrNullName = errors.New(`kind name is a YAML null scalar; quote it, e.g. "Null"`)

// ParseYAML reads a YAML rule set. Unknown fields are rejected.
func ParseYAML(r io.Reader) (*Set, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read YAML: %w", err)
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if err := checkNames(&doc); err != nil {
		return nil, err
	}

	var set Set
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&set); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if err := set.validate(); err != nil {
		return nil, fmt.Errorf("invalid rules: %w", err)
	}
	return &set, nil
}

// checkNames rejects null scalars under null_kind and rules[].kind, which
// the decoder would otherwise turn into empty strings.
func checkNames(doc *yaml.Node) error {
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(root.Content); i += 2 {
		key, value := root.Content[i], root.Content[i+1]
		switch key.Value {
		case "null_kind":
			if isNull(value) {
				return fmt.Errorf("line %d: null_kind: %w", value.Line, ErrNullName)
			}
		case "rules":
			if value.Kind != yaml.SequenceNode {
				continue
			}
			for _, item := range value.Content {
				if item.Kind != yaml.MappingNode {
					continue
				}
				for j := 0; j+1 < len(item.Content); j += 2 {
					if item.Content[j].Value == "kind" && isNull(item.Content[j+1]) {
						return fmt.Errorf("line %d: kind: %w", item.Content[j+1].Line, ErrNullName)
					}
				}
			}
		}
	}
	return nil
}

func isNull(n *yaml.Node) bool {
	return n.Kind == yaml.ScalarNode && n.ShortTag() == "!!null"
}
