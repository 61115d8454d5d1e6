package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// Sentinel errors for domain operations
var (
	// ErrInvalidAddress is returned when an Ethereum address is invalid
	ErrInvalidAddress = errors.New("invalid address")

	// ErrInvalidNonce is returned when a nonce is not a non-negative 64-bit integer
	ErrInvalidNonce = errors.New("invalid nonce")

	// ErrInvalidBlock is returned when a block number or tag cannot be parsed
	ErrInvalidBlock = errors.New("invalid block number")
)

// UsageError is returned when a command is invoked with the wrong arguments.
// Lines holds the usage text to show instead of an error line.
type UsageError struct {
	Lines []string
	Err   error
}

func (e *UsageError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return strings.Join(e.Lines, "\n")
}

func (e *UsageError) Unwrap() error {
	return e.Err
}

// InputError reports a positional argument or flag that failed validation
type InputError struct {
	Field string
	Value string
	Err   error
}

func (e *InputError) Error() string {
	return fmt.Sprintf("%s %q: %v", e.Field, e.Value, e.Err)
}

func (e *InputError) Unwrap() error {
	return e.Err
}

// FileError is returned when the ABI file cannot be read
type FileError struct {
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("failed to read ABI file %s: %v", e.Path, e.Err)
}

func (e *FileError) Unwrap() error {
	return e.Err
}

// ParseError is returned when the ABI file is not a valid JSON ABI
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse ABI file %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// RPCError wraps failures talking to the JSON-RPC endpoint.
// Op names the failed step ("dial", "eth_getLogs").
type RPCError struct {
	Op  string
	Err error
}

func (e *RPCError) Error() string {
	return fmt.Sprintf("rpc %s failed: %v", e.Op, e.Err)
}

func (e *RPCError) Unwrap() error {
	return e.Err
}

// DecodeError is returned when a log matches an ABI event but its payload
// does not unpack against the event's inputs.
type DecodeError struct {
	TxHash   common.Hash
	LogIndex uint
	Event    string
	Err      error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode %s log %d in tx %s: %v", e.Event, e.LogIndex, e.TxHash.Hex(), e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
