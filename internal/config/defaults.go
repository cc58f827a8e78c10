package config

import "github.com/bobmcallan/uac-mcp/internal/common"

// Supported MCP transports.
const (
	TransportStdio = "stdio"
	TransportHTTP  = "http"
)

// NewDefaultConfig creates a configuration with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Remote: RemoteConfig{
			Host:               "localhost",
			Port:               7777,
			TimeoutMS:          10000,
			DiscoveryTimeoutMS: 3000,
		},
		Server: ServerConfig{
			Name:      "uac-mcp-server",
			Transport: TransportStdio,
			Host:      "127.0.0.1",
			Port:      7778,
			Path:      "/mcp",
		},
		Logging: common.LoggingConfig{
			Level:   "info",
			Outputs: []string{"console"},
		},
	}
}
