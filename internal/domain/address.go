package domain

import (
	"encoding/hex"
	"math/big"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/math"
	"github.com/ethereum/go-ethereum/rpc"
)

// ParseAddress parses a 20-byte hex address, with or without the 0x prefix
func ParseAddress(field, s string) (common.Address, error) {
	if !common.IsHexAddress(s) {
		return common.Address{}, &InputError{Field: field, Value: s, Err: ErrInvalidAddress}
	}
	return common.HexToAddress(s), nil
}

// ParseNonce parses a nonce given in decimal or 0x-prefixed hex
func ParseNonce(s string) (uint64, error) {
	trimmed := strings.TrimSpace(s)
	nonce, ok := math.ParseUint64(trimmed)
	if !ok || trimmed == "" {
		return 0, &InputError{Field: "nonce", Value: s, Err: ErrInvalidNonce}
	}
	return nonce, nil
}

// NonceHex returns the minimal big-endian hex form of the nonce with an even
// number of digits and no prefix. Zero maps to the empty string, which is the
// RLP encoding of the integer 0.
func NonceHex(nonce uint64) string {
	if nonce == 0 {
		return ""
	}
	s := strconv.FormatUint(nonce, 16)
	if len(s)%2 == 1 {
		s = "0" + s
	}
	return s
}

// NonceBytes returns the byte string RLP encodes for the nonce
func NonceBytes(nonce uint64) []byte {
	b, _ := hex.DecodeString(NonceHex(nonce))
	if b == nil {
		return []byte{}
	}
	return b
}

// ParseBlockNumber parses a block number for log queries. Named tags map to
// the negative sentinels understood by ethclient. The empty string returns nil
// so the caller keeps its default.
func ParseBlockNumber(s string) (*big.Int, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return nil, nil
	case "latest":
		return big.NewInt(int64(rpc.LatestBlockNumber)), nil
	case "earliest":
		return big.NewInt(0), nil
	case "pending":
		return big.NewInt(int64(rpc.PendingBlockNumber)), nil
	case "safe":
		return big.NewInt(int64(rpc.SafeBlockNumber)), nil
	case "finalized":
		return big.NewInt(int64(rpc.FinalizedBlockNumber)), nil
	}
	n, ok := math.ParseUint64(strings.TrimSpace(s))
	if !ok {
		return nil, &InputError{Field: "block", Value: s, Err: ErrInvalidBlock}
	}
	return new(big.Int).SetUint64(n), nil
}
