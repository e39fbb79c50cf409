// Package schema models the record schema of a configured input: an
// ordered sequence of named, typed fields. The JSON shape is the one
// exchanged with design-time tooling:
//
//	{"fields":[{"name":"offset","type":"long"},{"name":"body","type":"string"}]}
package schema

import (
	"fmt"

	"github.com/goccy/go-json"
)

type Type string

const (
	TypeString    Type = "string"
	TypeLong      Type = "long"
	TypeDouble    Type = "double"
	TypeBoolean   Type = "boolean"
	TypeBytes     Type = "bytes"
	TypeTimestamp Type = "timestamp"
)

func (t Type) valid() bool {
	switch t {
	case TypeString, TypeLong, TypeDouble, TypeBoolean, TypeBytes, TypeTimestamp:
		return true
	}
	return false
}

type Field struct {
	Name string `json:"name" yaml:"name"`
	Type Type   `json:"type" yaml:"type"`
}

type Schema struct {
	Fields []Field `json:"fields" yaml:"fields"`
}

// Parse decodes and validates a user-declared schema.
func Parse(data []byte) (*Schema, error) {
	s := &Schema{}
	if err := json.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("parsing schema: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Schema) Validate() error {
	if len(s.Fields) == 0 {
		return fmt.Errorf("schema must declare at least one field")
	}
	seen := make(map[string]struct{}, len(s.Fields))
	for _, f := range s.Fields {
		if f.Name == "" {
			return fmt.Errorf("schema declares a field without a name")
		}
		if !f.Type.valid() {
			return fmt.Errorf("schema field %q has unknown type %q", f.Name, f.Type)
		}
		if _, ok := seen[f.Name]; ok {
			return fmt.Errorf("schema declares field %q more than once", f.Name)
		}
		seen[f.Name] = struct{}{}
	}
	return nil
}

// FieldNames returns the field names in declaration order.
func (s *Schema) FieldNames() []string {
	names := make([]string, 0, len(s.Fields))
	for _, f := range s.Fields {
		names = append(names, f.Name)
	}
	return names
}

func (s *Schema) String() string {
	b, err := json.Marshal(s)
	if err != nil {
		return ""
	}
	return string(b)
}
