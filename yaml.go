//go:build !brand_noyaml

package brand

import "gopkg.in/yaml.v3"

// MarshalYAML implements yaml.Marshaler; b is encoded as its raw value.
func (b Brand[T, R]) MarshalYAML() (any, error) {
	return b.raw, nil
}

// UnmarshalYAML implements yaml.Unmarshaler by decoding the node into the raw
// value.
func (b *Brand[T, R]) UnmarshalYAML(node *yaml.Node) error {
	return node.Decode(&b.raw)
}
