package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/chronicleprotocol/ethutil/internal/usecase"
	"github.com/joho/godotenv"
)

// envVarPattern matches ${VAR_NAME} patterns in TOML values
var envVarPattern = regexp.MustCompile(`^\$\{([A-Za-z_][A-Za-z0-9_]*)\}$`)

// DetectEnvVar checks if a raw TOML value is a simple ${VAR_NAME} reference.
// Returns the variable name and true if the value is a pure env var reference.
func DetectEnvVar(rawValue string) (string, bool) {
	matches := envVarPattern.FindStringSubmatch(rawValue)
	if len(matches) == 2 {
		return matches[1], true
	}
	return "", false
}

// loadDotEnv loads .env files from dir. Variables already present in the
// environment win.
func loadDotEnv(dir string) {
	envFiles := []string{
		filepath.Join(dir, ".env"),
		filepath.Join(dir, ".env.local"),
	}

	for _, envFile := range envFiles {
		if _, err := os.Stat(envFile); err == nil {
			if err := godotenv.Load(envFile); err != nil {
				// Log warning but don't fail
				fmt.Fprintf(os.Stderr, "Warning: Failed to load %s: %v\n", envFile, err)
			}
		}
	}
}

// LoadEndpoints reads the [rpc_endpoints] table of a TOML file. Values are
// returned as written; ${VAR} references are expanded when an alias is
// resolved. A missing file is an error only when required is set.
func LoadEndpoints(path string, required bool) (map[string]string, error) {
	var raw EndpointsFile
	if _, err := toml.DecodeFile(path, &raw); err != nil {
		if !required && errors.Is(err, fs.ErrNotExist) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	if raw.RpcEndpoints == nil {
		return map[string]string{}, nil
	}
	return raw.RpcEndpoints, nil
}

// expandEndpoint expands environment variables in an alias value. A value
// that is a bare ${VAR} reference to an unset variable is an error.
func expandEndpoint(name, value string) (string, error) {
	if envVar, ok := DetectEnvVar(value); ok {
		if _, set := os.LookupEnv(envVar); !set {
			return "", fmt.Errorf("endpoint %s references unset environment variable %s", name, envVar)
		}
	}
	return os.ExpandEnv(value), nil
}

// EndpointResolver resolves endpoint aliases from the endpoint file. The file
// is only read the first time an alias has to be looked up.
type EndpointResolver struct {
	path      string
	required  bool
	endpoints map[string]string
}

// NewEndpointResolver creates a resolver over the configured endpoint file
func NewEndpointResolver(cfg *RuntimeConfig) *EndpointResolver {
	r := &EndpointResolver{
		path:     cfg.ConfigFile,
		required: cfg.ConfigFile != "",
	}
	if !r.required {
		r.path = DefaultConfigFile
	}
	return r
}

// Resolve returns the URL for a known alias. URLs pass through without
// touching the endpoint file; IPC paths and unknown names pass through
// unchanged.
func (r *EndpointResolver) Resolve(nameOrURL string) (string, error) {
	if strings.Contains(nameOrURL, "://") {
		return nameOrURL, nil
	}

	if r.endpoints == nil {
		endpoints, err := LoadEndpoints(r.path, r.required)
		if err != nil {
			return "", err
		}
		r.endpoints = endpoints
	}

	for _, name := range []string{nameOrURL, strings.ToLower(nameOrURL)} {
		if value, ok := r.endpoints[name]; ok {
			return expandEndpoint(name, value)
		}
	}
	return nameOrURL, nil
}

// Ensure the resolver implements the interface
var _ usecase.EndpointResolver = (*EndpointResolver)(nil)
