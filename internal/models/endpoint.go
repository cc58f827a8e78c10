package models

// EndpointInfo describes one HTTP operation exposed by the UAC plugin.
type EndpointInfo struct {
	Path        string `json:"path"`
	Method      string `json:"method"`
	Category    string `json:"category"`
	Description string `json:"description"`
}

// IsGet reports whether the endpoint is read via GET. The match is exact;
// every other method is sent as POST.
func (e EndpointInfo) IsGet() bool {
	return e.Method == "GET"
}

// DiscoverData is the data of a GET /api/discover response.
type DiscoverData struct {
	Endpoints  []EndpointInfo `json:"endpoints"`
	TotalCount int            `json:"totalCount"`
	Categories []string       `json:"categories"`
	Message    string         `json:"message"`
}
