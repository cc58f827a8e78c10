package mcp

import (
	"encoding/json"
	"testing"

	"github.com/bobmcallan/uac-mcp/internal/models"
	"github.com/bobmcallan/uac-mcp/internal/schemas"
	"github.com/google/go-cmp/cmp"
)

var curatedTable = schemas.NewTable()

// paramKeys lists the keys of p in order.
func paramKeys(p *Params) []string {
	var keys []string
	for pair := p.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}

func TestResolveStrategy_Precedence(t *testing.T) {
	tests := []struct {
		name string
		tool string
		ep   models.EndpointInfo
		want StrategyKind
	}{
		{"curated with params", "gameobject_create", models.EndpointInfo{Path: "/api/gameobject/create", Method: "POST"}, CuratedWithParams},
		{"curated with params on GET", "assets_list", models.EndpointInfo{Path: "/api/assets/list", Method: "GET"}, CuratedWithParams},
		{"curated empty", "gameobject_list", models.EndpointInfo{Path: "/api/gameobject/list", Method: "GET"}, CuratedEmpty},
		{"curated empty on POST", "console_clear", models.EndpointInfo{Path: "/api/console/clear", Method: "POST"}, CuratedEmpty},
		{"uncurated GET", "project_info", models.EndpointInfo{Path: "/api/project/info", Method: "GET"}, ImplicitEmptyGet},
		{"uncurated lowercase get is not GET", "project_info", models.EndpointInfo{Path: "/api/project/info", Method: "get"}, GenericFallback},
		{"uncurated POST", "gameobject_hierarchy", models.EndpointInfo{Path: "/api/gameobject/hierarchy", Method: "POST"}, GenericFallback},
		{"uncurated PUT", "terrain_height_set", models.EndpointInfo{Path: "/api/terrain/height/set", Method: "PUT"}, GenericFallback},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveStrategy(tt.tool, tt.ep, curatedTable)
			if got.Kind != tt.want {
				t.Errorf("ResolveStrategy(%s) = %s, want %s", tt.tool, got.Kind, tt.want)
			}
		})
	}
}

func TestStrategy_Description(t *testing.T) {
	ep := models.EndpointInfo{Path: "/api/gameobject/findByTag", Method: "GET", Category: "gameobject", Description: "Find gameobjects by tag"}

	curated := ResolveStrategy("gameobject_find_by_tag", ep, curatedTable)
	entry, _ := curatedTable.Lookup("gameobject_find_by_tag")
	if got := curated.Description(ep); got != entry.Description {
		t.Errorf("curated description must be verbatim, got %q", got)
	}

	uncurated := Strategy{Kind: ImplicitEmptyGet}
	if got := uncurated.Description(ep); got != Description(ep) {
		t.Errorf("uncurated description must be enriched, got %q", got)
	}
}

func TestStrategy_InputSchema(t *testing.T) {
	generic, err := Strategy{Kind: GenericFallback}.InputSchema()
	if err != nil {
		t.Fatal(err)
	}
	var decoded struct {
		Type       string `json:"type"`
		Required   []string
		Properties map[string]struct {
			Type        string `json:"type"`
			Description string `json:"description"`
		} `json:"properties"`
	}
	if err := json.Unmarshal(generic, &decoded); err != nil {
		t.Fatalf("generic schema is not JSON: %v", err)
	}
	if decoded.Type != "object" {
		t.Errorf("expected object, got %q", decoded.Type)
	}
	if len(decoded.Required) != 0 {
		t.Errorf("params must be optional, got required %v", decoded.Required)
	}
	params := decoded.Properties["params"]
	if params.Type != "object" || params.Description != genericParamsDescription {
		t.Errorf("unexpected params property: %+v", params)
	}

	empty, _ := Strategy{Kind: ImplicitEmptyGet}.InputSchema()
	if string(empty) != `{"type":"object","properties":{}}` {
		t.Errorf("unexpected empty schema: %s", empty)
	}
}

func TestStrategy_Annotations(t *testing.T) {
	ep := models.EndpointInfo{Path: "/api/gameobject/delete", Method: "POST"}
	a := ResolveStrategy("gameobject_delete", ep, curatedTable).Annotations()
	if a.DestructiveHint == nil || !*a.DestructiveHint {
		t.Error("expected destructive hint")
	}
	if a.ReadOnlyHint != nil {
		t.Error("expected read-only hint unset")
	}

	none := Strategy{Kind: GenericFallback}.Annotations()
	if none.DestructiveHint != nil || none.ReadOnlyHint != nil || none.IdempotentHint != nil {
		t.Error("uncurated tools carry no hints")
	}
}

func TestStrategy_Params_Curated(t *testing.T) {
	ep := models.EndpointInfo{Path: "/api/material/color", Method: "POST"}
	s := ResolveStrategy("material_color", ep, curatedTable)

	params, err := s.Params(map[string]any{
		"r":            0.5,
		"materialPath": "Assets/Materials/Wood.mat",
		"extra":        true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"materialPath", "propertyName", "r", "g", "b", "a"}
	if diff := cmp.Diff(want, paramKeys(params)); diff != "" {
		t.Errorf("param order mismatch (-want +got):\n%s", diff)
	}
	if v, _ := params.Get("propertyName"); v != "_Color" {
		t.Errorf("expected default _Color, got %v", v)
	}
	if v, _ := params.Get("g"); v != float64(1) {
		t.Errorf("expected default 1, got %v", v)
	}
	if v, _ := params.Get("r"); v != 0.5 {
		t.Errorf("expected supplied r kept, got %v", v)
	}
}

func TestStrategy_Params_CuratedDropsUndeclaredKeys(t *testing.T) {
	ep := models.EndpointInfo{Path: "/api/gameobject/create", Method: "POST"}
	s := ResolveStrategy("gameobject_create", ep, curatedTable)

	params, err := s.Params(map[string]any{
		"name":     "Cube",
		"bogus":    1.0,
		"position": map[string]any{"x": 1.0, "y": 2.0, "z": 3.0, "w": 4.0},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if diff := cmp.Diff([]string{"name", "position"}, paramKeys(params)); diff != "" {
		t.Errorf("param keys mismatch (-want +got):\n%s", diff)
	}
	position, _ := params.Get("position")
	want := map[string]any{"x": 1.0, "y": 2.0, "z": 3.0}
	if diff := cmp.Diff(want, position); diff != "" {
		t.Errorf("nested keys mismatch (-want +got):\n%s", diff)
	}
}

func TestStrategy_Params_CuratedNestedDefaults(t *testing.T) {
	ep := models.EndpointInfo{Path: "/api/gameobject/create", Method: "POST"}
	s := ResolveStrategy("gameobject_create", ep, curatedTable)

	args := map[string]any{
		"name":     "Cube",
		"position": map[string]any{"x": 1.0},
	}
	params, err := s.Params(args)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	position, _ := params.Get("position")
	want := map[string]any{"x": 1.0, "y": 0.0, "z": 0.0}
	if diff := cmp.Diff(want, position); diff != "" {
		t.Errorf("vector defaults mismatch (-want +got):\n%s", diff)
	}
	if _, ok := params.Get("rotation"); ok {
		t.Error("absent optional objects must stay absent")
	}
	if len(args["position"].(map[string]any)) != 1 {
		t.Errorf("nested argument was mutated: %v", args["position"])
	}
}

func TestStrategy_Params_CuratedNestedInvalid(t *testing.T) {
	ep := models.EndpointInfo{Path: "/api/gameobject/create", Method: "POST"}
	s := ResolveStrategy("gameobject_create", ep, curatedTable)

	if _, err := s.Params(map[string]any{"name": "Cube", "position": map[string]any{"x": "left"}}); err == nil {
		t.Error("expected error for non-numeric vector component")
	}
}

func TestStrategy_Params_CuratedInvalid(t *testing.T) {
	ep := models.EndpointInfo{Path: "/api/gameobject/findByTag", Method: "GET"}
	s := ResolveStrategy("gameobject_find_by_tag", ep, curatedTable)

	if _, err := s.Params(map[string]any{}); err == nil {
		t.Error("expected error for missing required tag")
	}
	if _, err := s.Params(map[string]any{"tag": 42.0}); err == nil {
		t.Error("expected error for non-string tag")
	}
}

func TestStrategy_Params_DoesNotMutateArguments(t *testing.T) {
	ep := models.EndpointInfo{Path: "/api/material/color", Method: "POST"}
	s := ResolveStrategy("material_color", ep, curatedTable)

	args := map[string]any{"materialPath": "a.mat"}
	if _, err := s.Params(args); err != nil {
		t.Fatal(err)
	}
	if len(args) != 1 {
		t.Errorf("arguments were mutated: %v", args)
	}
}

func TestStrategy_Params_Generic(t *testing.T) {
	s := Strategy{Kind: GenericFallback}

	params, err := s.Params(map[string]any{
		"params": map[string]any{"zeta": 1.0, "alpha": "a", "mid": []any{1.0}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff([]string{"alpha", "mid", "zeta"}, paramKeys(params)); diff != "" {
		t.Errorf("generic params must be sorted (-want +got):\n%s", diff)
	}

	absent, err := s.Params(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if absent.Len() != 0 {
		t.Errorf("expected empty params, got %d", absent.Len())
	}

	if _, err := s.Params(map[string]any{"params": "not-an-object"}); err == nil {
		t.Error("expected error for non-object params")
	}
}

func TestStrategy_Params_NoSchemaIgnoresArguments(t *testing.T) {
	for _, kind := range []StrategyKind{CuratedEmpty, ImplicitEmptyGet} {
		params, err := Strategy{Kind: kind}.Params(map[string]any{"stray": "value"})
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", kind, err)
		}
		if params.Len() != 0 {
			t.Errorf("%s: expected empty params, got %d", kind, params.Len())
		}
	}
}

func TestStrategyKind_String(t *testing.T) {
	kinds := map[StrategyKind]string{
		CuratedWithParams: "curated",
		CuratedEmpty:      "curated_empty",
		ImplicitEmptyGet:  "implicit_get",
		GenericFallback:   "generic",
		StrategyKind(42):  "unknown",
	}
	for k, want := range kinds {
		if got := k.String(); got != want {
			t.Errorf("StrategyKind(%d).String() = %q, want %q", int(k), got, want)
		}
	}
}
