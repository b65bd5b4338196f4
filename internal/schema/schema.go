// Package schema holds the raw capability schema document as exported by a
// device, before any classification happens.
//
// The document is loosely structured, so it is modelled as a small ordered
// value tree rather than Go structs. Field order matters: the generator must
// emit declarations in the exact order the schema lists them, and decoding
// through ordinary maps would destroy that. Decoding goes through yaml.v3's
// Node API, which keeps mapping order and accepts both YAML and JSON input
// (JSON schema dumps are the common case).
package schema

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Kind discriminates the value forms a schema document can contain.
type Kind int

const (
	Null Kind = iota
	Scalar
	Sequence
	Mapping
)

func (k Kind) String() string {
	switch k {
	case Null:
		return "null"
	case Scalar:
		return "scalar"
	case Sequence:
		return "sequence"
	case Mapping:
		return "mapping"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Value is one node of the schema document. Exactly one of Scalar, Items or
// Fields is meaningful, selected by Kind. Scalars keep the string form of
// whatever the document contained ("True", "5", "Off"); classification of
// those strings is the compiler's business, not ours.
type Value struct {
	Kind   Kind
	Scalar string   // Kind == Scalar
	Items  []*Value // Kind == Sequence, in document order
	Fields []Field  // Kind == Mapping, in document order
}

// Field is a single key/value pair of a mapping, in document position.
type Field struct {
	Key   string
	Value *Value
}

// Get returns the value for key, or nil when v is not a mapping or the key
// is absent. Lookups are linear; schema mappings are small.
func (v *Value) Get(key string) *Value {
	if v == nil || v.Kind != Mapping {
		return nil
	}
	for _, f := range v.Fields {
		if f.Key == key {
			return f.Value
		}
	}
	return nil
}

// Has reports whether key is present on a mapping value.
func (v *Value) Has(key string) bool { return v.Get(key) != nil }

// Str returns the scalar text of v, or "" when v is nil or not a scalar.
func (v *Value) Str() string {
	if v == nil || v.Kind != Scalar {
		return ""
	}
	return v.Scalar
}

// Parse decodes a schema document from raw bytes. An empty document decodes
// to a Null value.
func Parse(data []byte) (*Value, error) {
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, fmt.Errorf("parse schema: %w", err)
	}
	if node.Kind == 0 {
		return &Value{Kind: Null}, nil
	}
	v, err := fromNode(&node)
	if err != nil {
		return nil, fmt.Errorf("parse schema: %w", err)
	}
	return v, nil
}

// Load reads and parses a schema document from a file.
func Load(path string) (*Value, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read schema: %w", err)
	}
	return Parse(data)
}

func fromNode(n *yaml.Node) (*Value, error) {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return &Value{Kind: Null}, nil
		}
		return fromNode(n.Content[0])
	case yaml.AliasNode:
		return fromNode(n.Alias)
	case yaml.ScalarNode:
		if n.Tag == "!!null" {
			return &Value{Kind: Null}, nil
		}
		return &Value{Kind: Scalar, Scalar: n.Value}, nil
	case yaml.SequenceNode:
		items := make([]*Value, 0, len(n.Content))
		for _, c := range n.Content {
			v, err := fromNode(c)
			if err != nil {
				return nil, err
			}
			items = append(items, v)
		}
		return &Value{Kind: Sequence, Items: items}, nil
	case yaml.MappingNode:
		fields := make([]Field, 0, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			key := n.Content[i]
			if key.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("line %d: mapping key must be a scalar", key.Line)
			}
			v, err := fromNode(n.Content[i+1])
			if err != nil {
				return nil, err
			}
			fields = append(fields, Field{Key: key.Value, Value: v})
		}
		return &Value{Kind: Mapping, Fields: fields}, nil
	default:
		return nil, fmt.Errorf("line %d: unsupported document node", n.Line)
	}
}
