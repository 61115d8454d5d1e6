package adapters

import (
	"github.com/chronicleprotocol/ethutil/internal/adapters/abi"
	"github.com/chronicleprotocol/ethutil/internal/adapters/blockchain"
	"github.com/chronicleprotocol/ethutil/internal/config"
	"github.com/chronicleprotocol/ethutil/internal/usecase"
	"github.com/google/wire"
)

// ABISet provides ABI loading and log decoding
var ABISet = wire.NewSet(
	abi.NewFileLoader,
	wire.Bind(new(usecase.ABILoader), new(*abi.FileLoader)),

	abi.NewLogDecoder,
	wire.Bind(new(usecase.LogDecoder), new(*abi.LogDecoder)),
)

// BlockchainSet provides RPC access
var BlockchainSet = wire.NewSet(
	blockchain.NewDialerAdapter,
	wire.Bind(new(usecase.LogQuerierDialer), new(*blockchain.DialerAdapter)),
)

// ConfigSet provides configuration-backed implementations
var ConfigSet = wire.NewSet(
	config.NewEndpointResolver,
	wire.Bind(new(usecase.EndpointResolver), new(*config.EndpointResolver)),
)

// AllAdapters includes all adapter sets
var AllAdapters = wire.NewSet(
	ABISet,
	BlockchainSet,
	ConfigSet,
)
