package abi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"os"

	"github.com/chronicleprotocol/ethutil/internal/domain"
	"github.com/chronicleprotocol/ethutil/internal/usecase"
	"github.com/ethereum/go-ethereum/accounts/abi"
)

var errInvalidJSON = errors.New("not valid JSON")

// FileLoader loads contract ABIs from JSON files. Plain ABI arrays and
// compiler artifacts carrying an "abi" field are both accepted.
type FileLoader struct {
	log *slog.Logger
}

// NewFileLoader creates a new ABI file loader
func NewFileLoader(log *slog.Logger) *FileLoader {
	return &FileLoader{
		log: log.With("component", "ABILoader"),
	}
}

// Load reads and parses the ABI at path
func (l *FileLoader) Load(ctx context.Context, path string) (*abi.ABI, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is a user supplied CLI argument
	if err != nil {
		return nil, &domain.FileError{Path: path, Err: err}
	}

	return l.parse(path, data)
}

func (l *FileLoader) parse(path string, data []byte) (*abi.ABI, error) {
	if !json.Valid(data) {
		return nil, &domain.ParseError{Path: path, Err: errInvalidJSON}
	}

	raw := bytes.TrimSpace(data)
	if len(raw) > 0 && raw[0] == '{' {
		var artifact struct {
			ABI json.RawMessage `json:"abi"`
		}
		if err := json.Unmarshal(raw, &artifact); err == nil && len(artifact.ABI) > 0 {
			l.log.Debug("using abi field of compiler artifact", "path", path)
			raw = artifact.ABI
		}
	}

	contractABI, err := abi.JSON(bytes.NewReader(raw))
	if err != nil {
		return nil, &domain.ParseError{Path: path, Err: err}
	}

	return &contractABI, nil
}

// Ensure the loader implements the interface
var _ usecase.ABILoader = (*FileLoader)(nil)
