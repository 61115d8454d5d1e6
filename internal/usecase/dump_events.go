package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"math/big"

	"github.com/chronicleprotocol/ethutil/internal/domain"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
)

// DumpEventsParams contains parameters for dumping contract events
type DumpEventsParams struct {
	// RPC is an RPC URL or a configured endpoint alias
	RPC      string
	ABIPath  string
	Contract string

	// FromBlock defaults to the genesis block, ToBlock to the chain head
	FromBlock *big.Int
	ToBlock   *big.Int
}

// DumpEventsResult contains every log the contract emitted in the range
type DumpEventsResult struct {
	Contract common.Address
	Events   []domain.EventRecord
}

// DumpEvents is the use case for fetching all historical events of a contract
type DumpEvents struct {
	loader    ABILoader
	dialer    LogQuerierDialer
	decoder   LogDecoder
	endpoints EndpointResolver
	sink      ProgressSink
	log       *slog.Logger
}

// NewDumpEvents creates a new DumpEvents use case
func NewDumpEvents(
	loader ABILoader,
	dialer LogQuerierDialer,
	decoder LogDecoder,
	endpoints EndpointResolver,
	sink ProgressSink,
	log *slog.Logger,
) *DumpEvents {
	return &DumpEvents{
		loader:    loader,
		dialer:    dialer,
		decoder:   decoder,
		endpoints: endpoints,
		sink:      sink,
		log:       log.With("component", "dump-events"),
	}
}

// Run executes the use case. The ABI is loaded before any connection is
// opened; a missing or malformed ABI never reaches the network.
func (uc *DumpEvents) Run(ctx context.Context, params DumpEventsParams) (*DumpEventsResult, error) {
	uc.sink.OnProgress(ctx, ProgressEvent{
		Stage:   "loading",
		Message: "Loading ABI " + params.ABIPath,
	})

	contractABI, err := uc.loader.Load(ctx, params.ABIPath)
	if err != nil {
		return nil, err
	}
	uc.log.Debug("loaded ABI", "path", params.ABIPath, "events", len(contractABI.Events))

	contract, err := domain.ParseAddress("contract", params.Contract)
	if err != nil {
		return nil, err
	}

	rpcURL, err := uc.endpoints.Resolve(params.RPC)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve endpoint %s: %w", params.RPC, err)
	}
	uc.log.Debug("resolved endpoint", "rpc", params.RPC)

	client, err := uc.dialer.Dial(ctx, rpcURL)
	if err != nil {
		return nil, &domain.RPCError{Op: "dial", Err: err}
	}
	defer client.Close()

	query := ethereum.FilterQuery{
		FromBlock: params.FromBlock,
		ToBlock:   params.ToBlock,
		Addresses: []common.Address{contract},
	}
	if query.FromBlock == nil {
		query.FromBlock = big.NewInt(0)
	}

	uc.sink.OnProgress(ctx, ProgressEvent{
		Stage:   "querying",
		Message: "Fetching events of " + contract.Hex(),
		Spinner: true,
	})
	uc.log.Debug("querying logs", "contract", contract.Hex(), "from", query.FromBlock, "to", query.ToBlock)

	logs, err := client.FilterLogs(ctx, query)
	if err != nil {
		uc.sink.Error("Failed to fetch events")
		return nil, &domain.RPCError{Op: "eth_getLogs", Err: err}
	}
	uc.log.Debug("fetched logs", "count", len(logs))

	uc.sink.OnProgress(ctx, ProgressEvent{
		Stage:   "decoding",
		Message: "Decoding events",
		Spinner: true,
	})

	events, err := uc.decoder.Decode(contractABI, logs)
	if err != nil {
		uc.sink.Error("Failed to decode events")
		return nil, err
	}
	if events == nil {
		events = []domain.EventRecord{}
	}

	uc.sink.OnProgress(ctx, ProgressEvent{Stage: "completed"})

	return &DumpEventsResult{
		Contract: contract,
		Events:   events,
	}, nil
}
