package palette

import (
	"gopkg.in/yaml.v3"
)

// MarshalYAML writes the palette as a mapping in canonical step order.
func (p Palette) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for i, step := range Steps {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: step.String()},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: p.shades[i].String(), Style: yaml.DoubleQuotedStyle},
		)
	}
	return node, nil
}

// UnmarshalYAML reads the mapping written by MarshalYAML.
func (p *Palette) UnmarshalYAML(value *yaml.Node) error {
	var raw map[string]string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	out, err := fromMap(raw)
	if err != nil {
		return err
	}
	*p = out
	return nil
}
