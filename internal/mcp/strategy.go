package mcp

import (
	"encoding/json"
	"sort"

	"github.com/bobmcallan/uac-mcp/internal/models"
	"github.com/bobmcallan/uac-mcp/internal/schemas"
	"github.com/google/jsonschema-go/jsonschema"
	"github.com/mark3labs/mcp-go/mcp"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Params is the ordered argument map handed to the executor.
type Params = orderedmap.OrderedMap[string, any]

// NewParams returns an empty parameter map.
func NewParams() *Params {
	return orderedmap.New[string, any]()
}

// StrategyKind selects how a tool's schema and arguments are derived.
type StrategyKind int

const (
	CuratedWithParams StrategyKind = iota
	CuratedEmpty
	ImplicitEmptyGet
	GenericFallback
)

func (k StrategyKind) String() string {
	switch k {
	case CuratedWithParams:
		return "curated"
	case CuratedEmpty:
		return "curated_empty"
	case ImplicitEmptyGet:
		return "implicit_get"
	case GenericFallback:
		return "generic"
	default:
		return "unknown"
	}
}

// CuratedLookup finds the curated schema for a tool name.
type CuratedLookup interface {
	Lookup(name string) (schemas.Entry, bool)
}

// Strategy is the resolved registration strategy for one tool.
// Curated is only set for the two curated kinds.
type Strategy struct {
	Kind    StrategyKind
	Curated schemas.Entry
}

const genericParamsDescription = "JSON parameters for this endpoint. Refer to the tool description for expected fields."

// emptyInputSchema is the schema of tools that take no arguments.
var emptyInputSchema = json.RawMessage(`{"type":"object","properties":{}}`)

var (
	genericInput    = genericSchema()
	genericResolved = mustResolve(genericInput)
)

func genericSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"params": {
				Type:        "object",
				Description: genericParamsDescription,
			},
		},
	}
}

func mustResolve(s *jsonschema.Schema) *jsonschema.Resolved {
	r, err := s.Resolve(nil)
	if err != nil {
		panic(err)
	}
	return r
}

// ResolveStrategy picks the strategy for a tool. Precedence: curated with
// params, curated without params, uncurated GET, generic fallback.
func ResolveStrategy(name string, ep models.EndpointInfo, lookup CuratedLookup) Strategy {
	if entry, ok := lookup.Lookup(name); ok {
		if entry.HasParams() {
			return Strategy{Kind: CuratedWithParams, Curated: entry}
		}
		return Strategy{Kind: CuratedEmpty, Curated: entry}
	}
	if ep.IsGet() {
		return Strategy{Kind: ImplicitEmptyGet}
	}
	return Strategy{Kind: GenericFallback}
}

// IsCurated reports whether the strategy comes from the curated table.
func (s Strategy) IsCurated() bool {
	return s.Kind == CuratedWithParams || s.Kind == CuratedEmpty
}

// Description returns the curated description verbatim, or the enriched
// endpoint description for uncurated tools.
func (s Strategy) Description(ep models.EndpointInfo) string {
	if s.IsCurated() {
		return s.Curated.Description
	}
	return Description(ep)
}

// InputSchema returns the JSON schema advertised for the tool.
func (s Strategy) InputSchema() (json.RawMessage, error) {
	switch s.Kind {
	case CuratedWithParams:
		return json.Marshal(s.Curated.Input)
	case GenericFallback:
		return json.Marshal(genericInput)
	default:
		return emptyInputSchema, nil
	}
}

// Annotations maps curated hints onto MCP tool annotations.
func (s Strategy) Annotations() mcp.ToolAnnotation {
	if !s.IsCurated() {
		return mcp.ToolAnnotation{}
	}
	a := s.Curated.Annotations
	return mcp.ToolAnnotation{
		ReadOnlyHint:    a.ReadOnly,
		DestructiveHint: a.Destructive,
		IdempotentHint:  a.Idempotent,
	}
}

// Params turns raw tool arguments into the ordered parameters sent to the
// editor. Tools without a schema always get an empty map. Curated arguments
// are reduced to the declared properties, get schema defaults applied and are
// validated; generic tools forward the contents of "params".
func (s Strategy) Params(args map[string]any) (*Params, error) {
	switch s.Kind {
	case CuratedWithParams:
		return s.curatedParams(args)
	case GenericFallback:
		return genericParams(args)
	default:
		return NewParams(), nil
	}
}

func (s Strategy) curatedParams(args map[string]any) (*Params, error) {
	values := conform(s.Curated.Input, args)
	if err := s.Curated.Resolved.Validate(values); err != nil {
		return nil, err
	}

	params := NewParams()
	for _, name := range s.Curated.ParamNames() {
		if v, ok := values[name]; ok {
			params.Set(name, v)
		}
	}
	return params, nil
}

// conform copies m keeping only the properties declared by schema. Missing
// properties take their default; nested objects are conformed the same way.
func conform(schema *jsonschema.Schema, m map[string]any) map[string]any {
	out := make(map[string]any, len(schema.Properties))
	for name, prop := range schema.Properties {
		v, ok := m[name]
		if !ok {
			if len(prop.Default) == 0 {
				continue
			}
			var def any
			if err := json.Unmarshal(prop.Default, &def); err != nil {
				continue
			}
			out[name] = def
			continue
		}
		if nested, isObject := v.(map[string]any); isObject && len(prop.Properties) > 0 {
			v = conform(prop, nested)
		}
		out[name] = v
	}
	return out
}

func genericParams(args map[string]any) (*Params, error) {
	if args == nil {
		args = map[string]any{}
	}
	if err := genericResolved.Validate(args); err != nil {
		return nil, err
	}

	params := NewParams()
	raw, ok := args["params"].(map[string]any)
	if !ok {
		return params, nil
	}
	for _, k := range sortedKeys(raw) {
		params.Set(k, raw[k])
	}
	return params, nil
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
