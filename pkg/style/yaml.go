package style

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Decode parses a YAML document into a style tree rooted at an untagged node.
//
// Mapping keys become tags and scalars become values. Sequence items become
// children of the node holding the sequence; an item that is a single-key
// mapping becomes a child tagged with that key, any other item an untagged
// child.
func Decode(data []byte) (*Node, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse style: %w", err)
	}
	root := NewNode("")
	if doc.Kind == 0 {
		return root, nil
	}
	content := &doc
	if doc.Kind == yaml.DocumentNode {
		if len(doc.Content) == 0 {
			return root, nil
		}
		content = doc.Content[0]
	}
	if err := fill(root, content); err != nil {
		return nil, err
	}
	return root, nil
}

// DecodeFile reads and decodes a YAML style file.
func DecodeFile(path string) (*Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	n, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	n.tag = path
	return n, nil
}

func fill(n *Node, y *yaml.Node) error {
	switch y.Kind {
	case yaml.AliasNode:
		if y.Alias == nil {
			return fmt.Errorf("line %d: dangling alias", y.Line)
		}
		return fill(n, y.Alias)
	case yaml.ScalarNode:
		if y.Tag != "!!null" {
			n.SetValue(y.Value)
		}
	case yaml.MappingNode:
		for i := 0; i+1 < len(y.Content); i += 2 {
			key := y.Content[i]
			if key.Kind != yaml.ScalarNode {
				return fmt.Errorf("line %d: mapping keys must be scalars", key.Line)
			}
			child := NewNode(key.Value)
			if err := fill(child, y.Content[i+1]); err != nil {
				return err
			}
			n.AddChild(child)
		}
	case yaml.SequenceNode:
		for _, item := range y.Content {
			child := NewNode("")
			body := item
			if item.Kind == yaml.MappingNode && len(item.Content) == 2 && item.Content[0].Kind == yaml.ScalarNode {
				child.tag = item.Content[0].Value
				body = item.Content[1]
			}
			if err := fill(child, body); err != nil {
				return err
			}
			n.AddChild(child)
		}
	default:
		return fmt.Errorf("line %d: unsupported yaml node", y.Line)
	}
	return nil
}
