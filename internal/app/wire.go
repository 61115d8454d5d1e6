//go:build wireinject
// +build wireinject

package app

import (
	"github.com/chronicleprotocol/ethutil/internal/adapters"
	"github.com/chronicleprotocol/ethutil/internal/config"
	"github.com/chronicleprotocol/ethutil/internal/logging"
	"github.com/chronicleprotocol/ethutil/internal/usecase"
	"github.com/google/wire"
	"github.com/spf13/viper"
)

// InitApp creates a fully wired App instance
func InitApp(v *viper.Viper, sink usecase.ProgressSink) (*App, error) {
	wire.Build(
		// Configuration
		config.Provider,
		logging.LoggingSet,

		// Adapters
		adapters.AllAdapters,

		// Use cases
		usecase.NewComputeContractAddress,
		usecase.NewDumpEvents,

		// App
		NewApp,
	)
	return nil, nil
}
