package usecase_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	stdmath "math"
	"strconv"
	"testing"

	"github.com/chronicleprotocol/ethutil/internal/domain"
	"github.com/chronicleprotocol/ethutil/internal/usecase"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestComputeContractAddress(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewComputeContractAddress(discardLogger())

	tests := []struct {
		name     string
		sender   string
		nonce    string
		expected string
	}{
		{
			name:     "nonce zero",
			sender:   "0x970e8128ab834e8eac17ab8e3812f010678cf791",
			nonce:    "0",
			expected: "333c3310824b7c685133f2bedb2ca4b8b4df633d",
		},
		{
			name:     "nonce one",
			sender:   "0x970e8128ab834e8eac17ab8e3812f010678cf791",
			nonce:    "1",
			expected: "8bda78331c916a08481428e4b07c96d3e916d165",
		},
		{
			name:     "nonce two",
			sender:   "970e8128ab834e8eac17ab8e3812f010678cf791",
			nonce:    "2",
			expected: "c9ddedf451bc62ce88bf9292afb13df35b670699",
		},
		{
			name:     "second sender",
			sender:   "0x6ac7ea33f8831ea9dcc53393aaa88b25a785dbf0",
			nonce:    "0",
			expected: "cd234a471b72ba2f1ccf0a70fcaba648a5eecd8d",
		},
		{
			name:     "hex nonce",
			sender:   "0x6ac7ea33f8831ea9dcc53393aaa88b25a785dbf0",
			nonce:    "0x3",
			expected: "fffd933a0bc612844eaf0c6fe3e5b8e9b6c1d19c",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := uc.Run(ctx, usecase.ComputeContractAddressParams{
				Sender: tt.sender,
				Nonce:  tt.nonce,
			})
			require.NoError(t, err)
			require.Len(t, result.Predictions, 1)
			assert.Equal(t, tt.expected, common.Bytes2Hex(result.Predictions[0].Address.Bytes()))
		})
	}
}

func TestComputeContractAddress_MatchesCreateAddress(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewComputeContractAddress(discardLogger())
	sender := common.HexToAddress("0x6ac7ea33f8831ea9dcc53393aaa88b25a785dbf0")

	nonces := []uint64{0, 1, 2, 3, 15, 16, 127, 128, 255, 256, 1024, 65535, 1 << 32, stdmath.MaxUint64}
	for _, nonce := range nonces {
		result, err := uc.Run(ctx, usecase.ComputeContractAddressParams{
			Sender: sender.Hex(),
			Nonce:  strconv.FormatUint(nonce, 10),
		})
		require.NoError(t, err, "nonce %d", nonce)
		assert.Equal(t, crypto.CreateAddress(sender, nonce), result.Predictions[0].Address, "nonce %d", nonce)
	}
}

func TestComputeContractAddress_Encoding(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewComputeContractAddress(discardLogger())
	sender := common.HexToAddress("0x970e8128ab834e8eac17ab8e3812f010678cf791")

	run := func(nonce string) []byte {
		result, err := uc.Run(ctx, usecase.ComputeContractAddressParams{Sender: sender.Hex(), Nonce: nonce})
		require.NoError(t, err)
		return result.Predictions[0].Encoded
	}

	t.Run("nonce zero is the empty string", func(t *testing.T) {
		encoded := run("0")
		require.Len(t, encoded, 23)
		assert.Equal(t, byte(0xd6), encoded[0])
		assert.Equal(t, byte(0x94), encoded[1])
		assert.Equal(t, sender.Bytes(), encoded[2:22])
		assert.Equal(t, byte(0x80), encoded[22])
	})

	t.Run("small nonce is a single byte", func(t *testing.T) {
		encoded := run("1")
		require.Len(t, encoded, 23)
		assert.Equal(t, byte(0x01), encoded[22])
	})

	t.Run("nonce 128 gets a length prefix", func(t *testing.T) {
		encoded := run("128")
		require.Len(t, encoded, 24)
		assert.Equal(t, byte(0xd7), encoded[0])
		assert.Equal(t, []byte{0x81, 0x80}, encoded[22:])
	})
}

func TestComputeContractAddress_Idempotent(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewComputeContractAddress(discardLogger())
	params := usecase.ComputeContractAddressParams{
		Sender: "0x970e8128ab834e8eac17ab8e3812f010678cf791",
		Nonce:  "42",
	}

	first, err := uc.Run(ctx, params)
	require.NoError(t, err)
	second, err := uc.Run(ctx, params)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestComputeContractAddress_Count(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewComputeContractAddress(discardLogger())

	result, err := uc.Run(ctx, usecase.ComputeContractAddressParams{
		Sender: "0x6ac7ea33f8831ea9dcc53393aaa88b25a785dbf0",
		Nonce:  "0",
		Count:  4,
	})
	require.NoError(t, err)
	require.Len(t, result.Predictions, 4)

	expected := []string{
		"cd234a471b72ba2f1ccf0a70fcaba648a5eecd8d",
		"343c43a37d37dff08ae8c4a11544c718abb4fcf8",
		"f778b86fa74e846c4f0a1fbd1335fe81c00a0c91",
		"fffd933a0bc612844eaf0c6fe3e5b8e9b6c1d19c",
	}
	for i, p := range result.Predictions {
		assert.Equal(t, uint64(i), p.Nonce)
		assert.Equal(t, expected[i], common.Bytes2Hex(p.Address.Bytes()))
	}
}

func TestComputeContractAddress_InvalidInput(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewComputeContractAddress(discardLogger())
	validSender := "0x970e8128ab834e8eac17ab8e3812f010678cf791"

	tests := []struct {
		name    string
		params  usecase.ComputeContractAddressParams
		wantErr error
	}{
		{
			name:    "short sender",
			params:  usecase.ComputeContractAddressParams{Sender: "0x1234", Nonce: "0"},
			wantErr: domain.ErrInvalidAddress,
		},
		{
			name:    "non hex sender",
			params:  usecase.ComputeContractAddressParams{Sender: "0xzz0e8128ab834e8eac17ab8e3812f010678cf791", Nonce: "0"},
			wantErr: domain.ErrInvalidAddress,
		},
		{
			name:    "negative nonce",
			params:  usecase.ComputeContractAddressParams{Sender: validSender, Nonce: "-1"},
			wantErr: domain.ErrInvalidNonce,
		},
		{
			name:    "nonce not a number",
			params:  usecase.ComputeContractAddressParams{Sender: validSender, Nonce: "abc"},
			wantErr: domain.ErrInvalidNonce,
		},
		{
			name:    "nonce too large",
			params:  usecase.ComputeContractAddressParams{Sender: validSender, Nonce: "18446744073709551616"},
			wantErr: domain.ErrInvalidNonce,
		},
		{
			name:    "count overflows nonce range",
			params:  usecase.ComputeContractAddressParams{Sender: validSender, Nonce: "18446744073709551615", Count: 2},
			wantErr: domain.ErrInvalidNonce,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := uc.Run(ctx, tt.params)
			require.Error(t, err)
			assert.Nil(t, result)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)

			var inputErr *domain.InputError
			assert.True(t, errors.As(err, &inputErr))
		})
	}
}
