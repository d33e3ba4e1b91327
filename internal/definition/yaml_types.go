package definition

import (
	"fmt"
	"slices"

	"gopkg.in/yaml.v3"
)

var paramKeys = []string{"name", "bits", "values"}

// paramFields mirrors Param without its UnmarshalYAML method.
type paramFields Param

// UnmarshalYAML accepts either a bare integer bit width or a mapping with
// name, bits and values keys.
func (p *Param) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var bits int

		err := node.Decode(&bits)
		if err != nil {
			return fmt.Errorf("line %d: param shorthand must be an integer bit width: %w", node.Line, err)
		}

		*p = Param{Bits: &bits}

		return nil

	case yaml.MappingNode:
		for i := 0; i+1 < len(node.Content); i += 2 {
			key := node.Content[i]
			if !slices.Contains(paramKeys, key.Value) {
				return fmt.Errorf("line %d: unknown param key %q", key.Line, key.Value)
			}
		}

		var f paramFields

		err := node.Decode(&f)
		if err != nil {
			return err
		}

		*p = Param(f)

		return nil

	default:
		return fmt.Errorf("line %d: expected integer or mapping for param, got %v", node.Line, node.Kind)
	}
}
