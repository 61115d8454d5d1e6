package app

import (
	"github.com/chronicleprotocol/ethutil/internal/config"
	"github.com/chronicleprotocol/ethutil/internal/usecase"
)

// App is the main application container that holds all use cases
type App struct {
	// Configuration
	Config *config.RuntimeConfig

	// Use cases
	ComputeContractAddress *usecase.ComputeContractAddress
	DumpEvents             *usecase.DumpEvents
}

// NewApp creates a new application instance with all use cases
func NewApp(
	cfg *config.RuntimeConfig,
	computeContractAddress *usecase.ComputeContractAddress,
	dumpEvents *usecase.DumpEvents,
) (*App, error) {
	return &App{
		Config:                 cfg,
		ComputeContractAddress: computeContractAddress,
		DumpEvents:             dumpEvents,
	}, nil
}
