// Package schemas holds the hand-written parameter schemas that replace the
// generic fallback for well-known UAC endpoints.
package schemas

import (
	"encoding/json"

	"github.com/google/jsonschema-go/jsonschema"
)

// Annotations are the MCP behaviour hints attached to a curated tool.
// A nil hint is left unset.
type Annotations struct {
	ReadOnly    *bool
	Destructive *bool
	Idempotent  *bool
}

// Param is one named property of a curated input schema.
type Param struct {
	Name     string
	Schema   *jsonschema.Schema
	Required bool
}

// CuratedSchema is the hand-authored description of a single tool.
type CuratedSchema struct {
	Description string
	Params      []Param
	Annotations Annotations
}

// HasParams reports whether the tool takes any arguments.
func (c CuratedSchema) HasParams() bool {
	return len(c.Params) > 0
}

// ParamNames returns the property names in declaration order.
func (c CuratedSchema) ParamNames() []string {
	names := make([]string, len(c.Params))
	for i, p := range c.Params {
		names[i] = p.Name
	}
	return names
}

// InputSchema renders the params as a JSON Schema object.
func (c CuratedSchema) InputSchema() *jsonschema.Schema {
	s := &jsonschema.Schema{
		Type:       "object",
		Properties: make(map[string]*jsonschema.Schema, len(c.Params)),
	}
	for _, p := range c.Params {
		s.Properties[p.Name] = p.Schema
		if p.Required {
			s.Required = append(s.Required, p.Name)
		}
	}
	return s
}

func required(name string, s *jsonschema.Schema) Param {
	return Param{Name: name, Schema: s, Required: true}
}

func optional(name string, s *jsonschema.Schema) Param {
	return Param{Name: name, Schema: s}
}

func str(desc string) *jsonschema.Schema {
	return &jsonschema.Schema{Type: "string", Description: desc}
}

func num(desc string) *jsonschema.Schema {
	return &jsonschema.Schema{Type: "number", Description: desc}
}

func boolean(desc string) *jsonschema.Schema {
	return &jsonschema.Schema{Type: "boolean", Description: desc}
}

func enum(desc string, values ...string) *jsonschema.Schema {
	s := &jsonschema.Schema{Type: "string", Description: desc}
	for _, v := range values {
		s.Enum = append(s.Enum, v)
	}
	return s
}

// withDefault sets the schema default. Properties with a default are never required.
func withDefault(s *jsonschema.Schema, v any) *jsonschema.Schema {
	raw, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	s.Default = raw
	return s
}

func between(s *jsonschema.Schema, lo, hi float64) *jsonschema.Schema {
	s.Minimum = &lo
	s.Maximum = &hi
	return s
}

// vector3 is a 3D vector whose components default to 0.
func vector3(desc string) *jsonschema.Schema {
	return &jsonschema.Schema{
		Type:        "object",
		Description: desc,
		Properties: map[string]*jsonschema.Schema{
			"x": withDefault(num("X coordinate"), 0),
			"y": withDefault(num("Y coordinate"), 0),
			"z": withDefault(num("Z coordinate"), 0),
		},
	}
}

// unit is a colour channel in [0,1] defaulting to 1.
func unit(desc string) *jsonschema.Schema {
	return withDefault(between(num(desc), 0, 1), 1)
}

func hint(v bool) *bool { return &v }

var (
	readOnly    = Annotations{ReadOnly: hint(true)}
	destructive = Annotations{Destructive: hint(true)}
	idempotent  = Annotations{Idempotent: hint(true)}
)
