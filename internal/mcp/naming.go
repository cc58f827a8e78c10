package mcp

import (
	"regexp"
	"strings"

	"github.com/bobmcallan/uac-mcp/internal/models"
)

var (
	camelBoundary = regexp.MustCompile(`([a-z])([A-Z])`)
	underscoreRun = regexp.MustCompile(`_+`)
	placeholder   = regexp.MustCompile(`\{[^}]+\}`)
)

// ToolName converts a REST path into an MCP tool name.
//
//	/api/gameobject/findByTag  -> gameobject_find_by_tag
//	/api/terrain/height/set    -> terrain_height_set
//	/api/assets/list           -> assets_list
//
// The method does not take part in the name, so endpoints that differ only
// by method share a name.
func ToolName(path, _ string) string {
	name := strings.TrimPrefix(path, "/api/")
	name = strings.TrimSuffix(name, "/")
	name = camelBoundary.ReplaceAllString(name, "${1}_${2}")
	name = strings.ToLower(name)
	name = strings.ReplaceAll(name, "/", "_")
	name = underscoreRun.ReplaceAllString(name, "_")
	name = placeholder.ReplaceAllString(name, "")
	return strings.TrimRight(name, "_")
}

// Description enriches an endpoint description with its method and category.
func Description(ep models.EndpointInfo) string {
	parts := []string{ep.Description}
	if ep.IsGet() {
		parts = append(parts, "(read-only, no parameters required)")
	} else {
		parts = append(parts, "("+ep.Method+" "+ep.Path+")")
	}
	parts = append(parts, "[Category: "+ep.Category+"]")
	return strings.Join(parts, " ")
}
