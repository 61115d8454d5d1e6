package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/chronicleprotocol/ethutil/internal/domain"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/rlp"
)

// ComputeContractAddressParams contains parameters for predicting CREATE addresses
type ComputeContractAddressParams struct {
	Sender string
	Nonce  string
	// Count is the number of consecutive nonces to predict, starting at Nonce.
	// Zero is treated as one.
	Count uint64
}

// ComputeContractAddressResult contains the predicted addresses
type ComputeContractAddressResult struct {
	Sender      common.Address
	Predictions []AddressPrediction
}

// AddressPrediction is the address a CREATE from Sender at Nonce lands on
type AddressPrediction struct {
	Nonce   uint64
	Address common.Address
	// Encoded is the RLP payload that was hashed
	Encoded []byte
}

// ComputeContractAddress predicts the address of a contract deployed with
// CREATE: the last 20 bytes of keccak256(rlp([sender, nonce])).
type ComputeContractAddress struct {
	log *slog.Logger
}

// NewComputeContractAddress creates a new ComputeContractAddress use case
func NewComputeContractAddress(log *slog.Logger) *ComputeContractAddress {
	return &ComputeContractAddress{
		log: log.With("component", "compute-contract-address"),
	}
}

// Run executes the use case
func (uc *ComputeContractAddress) Run(ctx context.Context, params ComputeContractAddressParams) (*ComputeContractAddressResult, error) {
	sender, err := domain.ParseAddress("sender", params.Sender)
	if err != nil {
		return nil, err
	}

	nonce, err := domain.ParseNonce(params.Nonce)
	if err != nil {
		return nil, err
	}

	count := params.Count
	if count == 0 {
		count = 1
	}
	if nonce+(count-1) < nonce {
		return nil, &domain.InputError{
			Field: "count",
			Value: fmt.Sprintf("%d", params.Count),
			Err:   fmt.Errorf("nonce range overflows: %w", domain.ErrInvalidNonce),
		}
	}

	result := &ComputeContractAddressResult{
		Sender:      sender,
		Predictions: make([]AddressPrediction, 0, count),
	}
	for i := uint64(0); i < count; i++ {
		prediction, err := predict(sender, nonce+i)
		if err != nil {
			return nil, err
		}
		uc.log.Debug("predicted contract address",
			"sender", sender.Hex(),
			"nonce", prediction.Nonce,
			"rlp", hexutil.Encode(prediction.Encoded),
			"address", prediction.Address.Hex())
		result.Predictions = append(result.Predictions, prediction)
	}

	return result, nil
}

// predict derives a single CREATE address
func predict(sender common.Address, nonce uint64) (AddressPrediction, error) {
	encoded, err := rlp.EncodeToBytes([]interface{}{sender.Bytes(), domain.NonceBytes(nonce)})
	if err != nil {
		return AddressPrediction{}, fmt.Errorf("failed to rlp encode sender and nonce: %w", err)
	}

	digest := crypto.Keccak256(encoded)

	return AddressPrediction{
		Nonce:   nonce,
		Address: common.BytesToAddress(digest[12:]),
		Encoded: encoded,
	}, nil
}
