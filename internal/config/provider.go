package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// DefaultConfigFile is picked up from the working directory when --config is not given
const DefaultConfigFile = "ethutil.toml"

// Provider creates RuntimeConfig for Wire dependency injection. The endpoint
// file is not read here; aliases are resolved on demand.
func Provider(v *viper.Viper) (*RuntimeConfig, error) {
	cfg := &RuntimeConfig{
		Debug:      v.GetBool("debug"),
		Quiet:      v.GetBool("quiet"),
		LogLevel:   v.GetString("log_level"),
		Timeout:    v.GetDuration("timeout"),
		ConfigFile: v.GetString("config"),
	}

	if cfg.Timeout < 0 {
		return nil, fmt.Errorf("invalid timeout %s", cfg.Timeout)
	}

	return cfg, nil
}

// SetupViper creates and configures a viper instance for cmd. Values come
// from flags, then ETHUTIL_* environment variables (including those set in
// .env and .env.local), then defaults.
func SetupViper(workDir string, cmd *cobra.Command) *viper.Viper {
	loadDotEnv(workDir)

	v := viper.New()

	// Set up environment variables
	v.SetEnvPrefix("ETHUTIL")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	// Set defaults
	v.SetDefault("timeout", "2m")
	v.SetDefault("debug", false)
	v.SetDefault("quiet", false)
	v.SetDefault("log_level", "")
	v.SetDefault("config", "")

	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		err := v.BindPFlag(f.Name, f)
		if err != nil {
			panic(err)
		}
	})

	return v
}

// FindWorkDir returns the directory .env files and the default endpoint file
// are looked up in
func FindWorkDir() string {
	dir, err := os.Getwd()
	if err != nil {
		return "."
	}
	return dir
}
