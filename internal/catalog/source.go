package catalog

import "github.com/bobmcallan/uac-mcp/internal/models"

// Source records where the endpoint list came from.
type Source string

const (
	SourceDynamic Source = "dynamic"
	SourceStatic  Source = "static"
)

// Select returns the discovered endpoints when there are any, otherwise the
// static catalog.
func Select(discovered []models.EndpointInfo) ([]models.EndpointInfo, Source) {
	if len(discovered) > 0 {
		return discovered, SourceDynamic
	}
	return StaticEndpoints(), SourceStatic
}
