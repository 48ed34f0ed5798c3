package gen

import (
	"bytes"
	"encoding/json"
	"fmt"
	"go/token"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ParseManifest reads brand declarations from a YAML or JSON manifest:
//
//	package: ids
//	imports:
//	  - path: github.com/google/uuid
//	brands:
//	  - name: UserID
//	    raw: int32
//	    doc: UserID identifies a user account.
func ParseManifest(name string, data []byte) (*File, error) {
	var f File

	switch ext := filepath.Ext(name); ext {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&f); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
	case ".json":
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&f); err != nil {
			return nil, fmt.Errorf("failed to parse JSON: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported manifest extension %q", ext)
	}

	f.Source = name
	for i := range f.Brands {
		f.Brands[i].Pos.Filename = name
	}
	return &f, nil
}

// UnmarshalYAML records where the declaration starts so errors can point at
// it.
func (d *Decl) UnmarshalYAML(node *yaml.Node) error {
	type plain Decl
	if err := node.Decode((*plain)(d)); err != nil {
		return err
	}
	d.Pos = token.Position{Line: node.Line, Column: node.Column}
	return nil
}
