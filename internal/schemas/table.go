package schemas

import (
	"fmt"
	"sort"

	"github.com/google/jsonschema-go/jsonschema"
)

// Entry is a curated schema together with its resolved input schema.
// Input and Resolved are nil for tools without parameters.
type Entry struct {
	CuratedSchema
	Input    *jsonschema.Schema
	Resolved *jsonschema.Resolved
}

// Table is the read-only lookup of curated schemas keyed by tool name.
type Table struct {
	entries map[string]Entry
}

// NewTable builds the curated table. It panics if a curated schema is
// malformed, which only a code change can cause.
func NewTable() *Table {
	t, err := newTable(
		gameobjectSchemas,
		sceneSchemas,
		assetSchemas,
		materialSchemas,
		prefabSchemas,
		buildSchemas,
		consoleSchemas,
		selectionSchemas,
		cameraSchemas,
	)
	if err != nil {
		panic(err)
	}
	return t
}

func newTable(sets ...map[string]CuratedSchema) (*Table, error) {
	t := &Table{entries: make(map[string]Entry)}
	for _, set := range sets {
		for name, cs := range set {
			if _, dup := t.entries[name]; dup {
				return nil, fmt.Errorf("curated schema %q defined twice", name)
			}
			entry := Entry{CuratedSchema: cs}
			if cs.HasParams() {
				entry.Input = cs.InputSchema()
				resolved, err := entry.Input.Resolve(&jsonschema.ResolveOptions{ValidateDefaults: true})
				if err != nil {
					return nil, fmt.Errorf("curated schema %q: %w", name, err)
				}
				entry.Resolved = resolved
			}
			t.entries[name] = entry
		}
	}
	return t, nil
}

// Lookup returns the curated entry for a tool name.
func (t *Table) Lookup(name string) (Entry, bool) {
	e, ok := t.entries[name]
	return e, ok
}

// Len returns the number of curated tools.
func (t *Table) Len() int {
	return len(t.entries)
}

// Names returns the curated tool names, sorted.
func (t *Table) Names() []string {
	names := make([]string, 0, len(t.entries))
	for name := range t.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
