package cli

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	abiadapter "github.com/chronicleprotocol/ethutil/internal/adapters/abi"
	"github.com/chronicleprotocol/ethutil/internal/adapters/progress"
	"github.com/chronicleprotocol/ethutil/internal/app"
	"github.com/chronicleprotocol/ethutil/internal/config"
	"github.com/chronicleprotocol/ethutil/internal/usecase"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

// fakeQuerier serves a fixed set of logs and counts queries
type fakeQuerier struct {
	logs    []types.Log
	err     error
	queries []ethereum.FilterQuery
}

func (f *fakeQuerier) FilterLogs(ctx context.Context, q ethereum.FilterQuery) ([]types.Log, error) {
	f.queries = append(f.queries, q)
	return f.logs, f.err
}

func (f *fakeQuerier) Close() {}

// fakeDialer hands out its querier and records dialed URLs
type fakeDialer struct {
	querier *fakeQuerier
	dialed  []string
}

func (f *fakeDialer) Dial(ctx context.Context, rawURL string) (usecase.LogQuerier, error) {
	f.dialed = append(f.dialed, rawURL)
	return f.querier, nil
}

func newFakeDialer(logs []types.Log) *fakeDialer {
	return &fakeDialer{querier: &fakeQuerier{logs: logs}}
}

// newTestApp wires an App around dialer. configFile names the endpoint file,
// empty means ethutil.toml in the working directory.
func newTestApp(t *testing.T, dialer usecase.LogQuerierDialer, configFile string) *app.App {
	t.Helper()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.RuntimeConfig{ConfigFile: configFile}

	dump := usecase.NewDumpEvents(
		abiadapter.NewFileLoader(log),
		dialer,
		abiadapter.NewLogDecoder(log),
		config.NewEndpointResolver(cfg),
		progress.NewNopSink(),
		log,
	)
	a, err := app.NewApp(cfg, usecase.NewComputeContractAddress(log), dump)
	require.NoError(t, err)
	return a
}

type runResult struct {
	stdout string
	stderr string
	code   int
}

// execute runs cmd with a pre-built app so no config or network is touched
func execute(cmd *cobra.Command, a *app.App, args ...string) runResult {
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetContext(context.WithValue(context.Background(), appKey, a))

	code := Execute(cmd, args)
	return runResult{stdout: stdout.String(), stderr: stderr.String(), code: code}
}

// executeWithConfig runs cmd the way main does: the app is built by setupApp
// from flags, environment and the files in the working directory.
func executeWithConfig(cmd *cobra.Command, args ...string) runResult {
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetContext(context.Background())

	code := Execute(cmd, args)
	return runResult{stdout: stdout.String(), stderr: stderr.String(), code: code}
}

// writeConfig writes content as ethutil.toml in dir
func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, config.DefaultConfigFile)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func writeABI(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "L1Escrow.abi")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}
