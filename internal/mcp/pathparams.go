package mcp

import "strings"

// pathEmbedding marks a GET parameter whose value is appended to the path as
// a segment instead of being sent in the query string.
type pathEmbedding struct {
	pathContains string
	param        string
}

var pathEmbeddedParams = []pathEmbedding{
	{pathContains: "findByTag", param: "tag"},
	{pathContains: "material/properties", param: "materialPath"},
}

// isPathEmbedded reports whether key is embedded in path for a GET call.
func isPathEmbedded(path, key string) bool {
	for _, pe := range pathEmbeddedParams {
		if pe.param == key && strings.Contains(path, pe.pathContains) {
			return true
		}
	}
	return false
}
