package publish

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Setting is a single name/value pair of an extension configuration. On the
// wire it is a two-element sequence, e.g. ["noclasses", "True"], so the order
// of settings within an extension is preserved.
type Setting struct {
	Name  string
	Value string
}

// MarshalYAML encodes the setting as a flow-style [name, value] sequence.
func (s Setting) MarshalYAML() (interface{}, error) {
	return &yaml.Node{
		Kind:  yaml.SequenceNode,
		Style: yaml.FlowStyle,
		Content: []*yaml.Node{
			{Kind: yaml.ScalarNode, Value: s.Name},
			{Kind: yaml.ScalarNode, Value: s.Value},
		},
	}, nil
}

// UnmarshalYAML decodes a [name, value] sequence.
func (s *Setting) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.SequenceNode || len(node.Content) != 2 {
		return fmt.Errorf("line %d: extension setting must be a [name, value] pair", node.Line)
	}

	var pair [2]string
	for i, item := range node.Content {
		if item.Kind != yaml.ScalarNode {
			return fmt.Errorf("line %d: setting pair elements must be scalars", item.Line)
		}
		// take the raw scalar so unquoted values like True stay strings
		pair[i] = item.Value
	}

	s.Name = pair[0]
	s.Value = pair[1]
	return nil
}

// MarshalJSON encodes the setting as a ["name", "value"] array.
func (s Setting) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]string{s.Name, s.Value})
}

// UnmarshalJSON decodes a ["name", "value"] array.
func (s *Setting) UnmarshalJSON(data []byte) error {
	var raw []string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("decode setting pair: %w", err)
	}
	if len(raw) != 2 {
		return fmt.Errorf("extension setting must be a [name, value] pair, got %d elements", len(raw))
	}

	s.Name = raw[0]
	s.Value = raw[1]
	return nil
}
