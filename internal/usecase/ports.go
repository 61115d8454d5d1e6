package usecase

import (
	"context"

	"github.com/chronicleprotocol/ethutil/internal/domain"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/core/types"
)

// ABILoader reads a contract ABI from disk
type ABILoader interface {
	// Load returns a *domain.FileError when the file cannot be read and a
	// *domain.ParseError when its content is not a JSON ABI.
	Load(ctx context.Context, path string) (*abi.ABI, error)
}

// LogQuerier is the part of an RPC client the event dump needs
type LogQuerier interface {
	FilterLogs(ctx context.Context, q ethereum.FilterQuery) ([]types.Log, error)
	Close()
}

// LogQuerierDialer opens RPC connections
type LogQuerierDialer interface {
	Dial(ctx context.Context, rawURL string) (LogQuerier, error)
}

// LogDecoder turns raw logs into event records using a contract ABI
type LogDecoder interface {
	Decode(contractABI *abi.ABI, logs []types.Log) ([]domain.EventRecord, error)
}

// EndpointResolver maps a configured endpoint alias to its RPC URL.
// Inputs that are not aliases are returned unchanged.
type EndpointResolver interface {
	Resolve(nameOrURL string) (string, error)
}

// Progress tracking interfaces

// ProgressEvent represents a progress update
type ProgressEvent struct {
	Stage   string
	Message string
	Spinner bool
}

// ProgressSink receives progress events
type ProgressSink interface {
	OnProgress(ctx context.Context, event ProgressEvent)
	Info(message string)
	Error(message string)
}
