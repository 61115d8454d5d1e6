package blockchain

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/chronicleprotocol/ethutil/internal/usecase"
	"github.com/ethereum/go-ethereum/ethclient"
)

// DialerAdapter implements the LogQuerierDialer interface using ethclient
type DialerAdapter struct {
	log *slog.Logger
}

// NewDialerAdapter creates a new dialer adapter
func NewDialerAdapter(log *slog.Logger) *DialerAdapter {
	return &DialerAdapter{
		log: log.With("component", "Dialer"),
	}
}

// Dial opens a client for rawURL. http(s) endpoints connect lazily on the
// first request; ws(s) and IPC endpoints connect here.
func (d *DialerAdapter) Dial(ctx context.Context, rawURL string) (usecase.LogQuerier, error) {
	if rawURL == "" {
		return nil, fmt.Errorf("empty RPC URL")
	}

	client, err := ethclient.DialContext(ctx, rawURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RPC: %w", err)
	}
	d.log.Debug("dialed RPC endpoint")

	return client, nil
}

// Ensure the adapter implements the interface
var _ usecase.LogQuerierDialer = (*DialerAdapter)(nil)
var _ usecase.LogQuerier = (*ethclient.Client)(nil)
