package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/bobmcallan/uac-mcp/internal/common"
)

// Config represents the application configuration.
type Config struct {
	Remote  RemoteConfig         `toml:"remote"`
	Server  ServerConfig         `toml:"server"`
	Logging common.LoggingConfig `toml:"logging"`
}

// RemoteConfig describes how to reach the Unity API Communicator plugin.
type RemoteConfig struct {
	Host               string `toml:"host"`
	Port               int    `toml:"port"`
	TimeoutMS          int    `toml:"timeout_ms"`
	DiscoveryTimeoutMS int    `toml:"discovery_timeout_ms"`
}

// ServerConfig contains MCP server settings.
type ServerConfig struct {
	Name      string `toml:"name"`
	Transport string `toml:"transport"` // stdio or http
	Host      string `toml:"host"`
	Port      int    `toml:"port"`
	Path      string `toml:"path"`
}

// BaseURL returns the HTTP origin of the remote plugin.
func (r RemoteConfig) BaseURL() string {
	return fmt.Sprintf("http://%s:%d", r.Host, r.Port)
}

// Timeout is the per-call bound for tool invocations.
func (r RemoteConfig) Timeout() time.Duration {
	return time.Duration(r.TimeoutMS) * time.Millisecond
}

// DiscoveryTimeout is the bound for the startup discovery probe.
func (r RemoteConfig) DiscoveryTimeout() time.Duration {
	return time.Duration(r.DiscoveryTimeoutMS) * time.Millisecond
}

// Addr returns the listen address for the HTTP transport.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// LoadFromFiles loads configuration from multiple files with priority:
// defaults -> file1 -> file2 -> ... -> env.
// Later files override earlier files.
func LoadFromFiles(paths ...string) (*Config, error) {
	config := NewDefaultConfig()

	for i, path := range paths {
		if path == "" {
			continue
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		if err := toml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s (file %d of %d): %w", path, i+1, len(paths), err)
		}
	}

	applyEnvOverrides(config)

	return config, nil
}

// applyEnvOverrides applies UAC_* environment variable overrides to config.
// Unparseable numbers are ignored and the previous value kept.
func applyEnvOverrides(config *Config) {
	if host := os.Getenv("UAC_HOST"); host != "" {
		config.Remote.Host = host
	}
	if port, ok := envInt("UAC_PORT"); ok {
		config.Remote.Port = port
	}
	if timeout, ok := envInt("UAC_TIMEOUT"); ok {
		config.Remote.TimeoutMS = timeout
	}
	if timeout, ok := envInt("UAC_DISCOVERY_TIMEOUT"); ok {
		config.Remote.DiscoveryTimeoutMS = timeout
	}
	if transport := os.Getenv("UAC_MCP_TRANSPORT"); transport != "" {
		config.Server.Transport = transport
	}
	if host := os.Getenv("UAC_MCP_HOST"); host != "" {
		config.Server.Host = host
	}
	if port, ok := envInt("UAC_MCP_PORT"); ok {
		config.Server.Port = port
	}
	if level := os.Getenv("UAC_LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}
}

func envInt(key string) (int, bool) {
	raw := os.Getenv(key)
	if raw == "" {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}

// ApplyFlagOverrides applies command-line flag overrides to config.
func ApplyFlagOverrides(config *Config, transport string, port int, logLevel string) {
	if transport != "" {
		config.Server.Transport = transport
	}
	if port > 0 {
		config.Server.Port = port
	}
	if logLevel != "" {
		config.Logging.Level = logLevel
	}
}

// Validate checks configuration sanity.
func (c *Config) Validate() error {
	if c.Remote.Host == "" {
		return fmt.Errorf("remote.host must not be empty")
	}
	if c.Remote.Port <= 0 || c.Remote.Port > 65535 {
		return fmt.Errorf("remote.port %d out of range", c.Remote.Port)
	}
	if c.Remote.TimeoutMS <= 0 {
		return fmt.Errorf("remote.timeout_ms must be > 0")
	}
	if c.Remote.DiscoveryTimeoutMS <= 0 {
		return fmt.Errorf("remote.discovery_timeout_ms must be > 0")
	}
	if c.Server.Name == "" {
		return fmt.Errorf("server.name must not be empty")
	}
	switch c.Server.Transport {
	case TransportStdio:
	case TransportHTTP:
		if c.Server.Port <= 0 || c.Server.Port > 65535 {
			return fmt.Errorf("server.port %d out of range", c.Server.Port)
		}
		if c.Server.Path == "" || c.Server.Path[0] != '/' {
			return fmt.Errorf("server.path %q must start with /", c.Server.Path)
		}
	default:
		return fmt.Errorf("server.transport %q must be %q or %q", c.Server.Transport, TransportStdio, TransportHTTP)
	}
	return nil
}
