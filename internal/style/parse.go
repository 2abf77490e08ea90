package style

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Parse decodes a YAML or JSON document into a Node, keeping the key
// order of every mapping. The document root must be a mapping.
func Parse(data []byte) (*Node, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode style document: %w", err)
	}
	if doc.Kind == 0 {
		return NewNode(), nil
	}
	root := &doc
	if root.Kind == yaml.DocumentNode {
		if len(root.Content) == 0 {
			return NewNode(), nil
		}
		root = root.Content[0]
	}
	v, err := decode(root)
	if err != nil {
		return nil, err
	}
	n, ok := v.(*Node)
	if !ok {
		return nil, fmt.Errorf("style document at line %d: expected a mapping", root.Line)
	}
	return n, nil
}

func decode(y *yaml.Node) (Value, error) {
	switch y.Kind {
	case yaml.AliasNode:
		return decode(y.Alias)
	case yaml.MappingNode:
		n := NewNode()
		for i := 0; i+1 < len(y.Content); i += 2 {
			k := y.Content[i]
			if k.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("line %d: mapping keys must be scalars", k.Line)
			}
			// YAML merge keys (<<) splice the referenced mapping in place.
			if k.Tag == "!!merge" {
				merged, err := decode(y.Content[i+1])
				if err != nil {
					return nil, err
				}
				if m, ok := merged.(*Node); ok {
					for _, e := range m.entries {
						n.Set(e.Key, e.Value)
					}
				}
				continue
			}
			v, err := decode(y.Content[i+1])
			if err != nil {
				return nil, err
			}
			n.Set(k.Value, v)
		}
		return n, nil
	case yaml.SequenceNode:
		out := make(List, 0, len(y.Content))
		for _, item := range y.Content {
			v, err := decode(item)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
		return out, nil
	case yaml.ScalarNode:
		return scalar(y), nil
	}
	return Null{}, nil
}

func scalar(y *yaml.Node) Value {
	switch y.ShortTag() {
	case "!!null":
		return Null{}
	case "!!bool":
		var b bool
		if err := y.Decode(&b); err != nil {
			return String(y.Value)
		}
		return Bool(b)
	case "!!int", "!!float":
		var f float64
		if err := y.Decode(&f); err != nil {
			return String(y.Value)
		}
		return Number(f)
	}
	return String(y.Value)
}
