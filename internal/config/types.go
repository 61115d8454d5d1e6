package config

import (
	"time"
)

// RuntimeConfig represents the complete runtime configuration
// This is injected into use cases and contains all resolved settings
type RuntimeConfig struct {
	// Execution settings
	Debug    bool
	Quiet    bool
	LogLevel string
	Timeout  time.Duration

	// Endpoint alias file given with --config; empty means the default
	// file, which may be absent
	ConfigFile string
}

// EndpointsFile represents the raw endpoint alias file. The section name
// matches foundry.toml so an existing foundry.toml can be pointed at directly.
type EndpointsFile struct {
	RpcEndpoints map[string]string `toml:"rpc_endpoints"`
}
