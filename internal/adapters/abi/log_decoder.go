package abi

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/chronicleprotocol/ethutil/internal/domain"
	"github.com/chronicleprotocol/ethutil/internal/usecase"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/samber/lo"
)

// LogDecoder decodes contract logs into event records
type LogDecoder struct {
	log *slog.Logger
}

// NewLogDecoder creates a new log decoder
func NewLogDecoder(log *slog.Logger) *LogDecoder {
	return &LogDecoder{
		log: log.With("component", "LogDecoder"),
	}
}

// Decode converts logs in order. Logs whose signature is not part of the ABI
// are kept with their raw payload only.
func (d *LogDecoder) Decode(contractABI *abi.ABI, logs []types.Log) ([]domain.EventRecord, error) {
	records := make([]domain.EventRecord, 0, len(logs))
	for i := range logs {
		record, err := d.decodeLog(contractABI, &logs[i])
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, nil
}

func (d *LogDecoder) decodeLog(contractABI *abi.ABI, log *types.Log) (domain.EventRecord, error) {
	record := domain.EventRecord{
		Address:          log.Address.Hex(),
		BlockHash:        log.BlockHash.Hex(),
		BlockNumber:      log.BlockNumber,
		LogIndex:         uint64(log.Index),
		Removed:          log.Removed,
		TransactionHash:  log.TxHash.Hex(),
		TransactionIndex: uint64(log.TxIndex),
		ID:               LogID(log),
		ReturnValues:     map[string]any{},
		Raw: domain.RawLog{
			Data: hexutil.Encode(log.Data),
			Topics: lo.Map(log.Topics, func(topic common.Hash, _ int) string {
				return topic.Hex()
			}),
		},
	}

	// Anonymous events carry no signature topic
	if len(log.Topics) == 0 || contractABI == nil {
		return record, nil
	}

	event, err := contractABI.EventByID(log.Topics[0])
	if err != nil {
		d.log.Debug("unknown event signature", "topic", log.Topics[0].Hex(), "tx", log.TxHash.Hex())
		return record, nil
	}

	decoded := make(map[string]any)

	indexed := lo.Filter(event.Inputs, func(input abi.Argument, _ int) bool {
		return input.Indexed
	})
	if err := abi.ParseTopicsIntoMap(decoded, indexed, log.Topics[1:]); err != nil {
		return record, &domain.DecodeError{TxHash: log.TxHash, LogIndex: log.Index, Event: event.Name, Err: fmt.Errorf("failed to parse topics: %w", err)}
	}

	if err := event.Inputs.UnpackIntoMap(decoded, log.Data); err != nil {
		return record, &domain.DecodeError{TxHash: log.TxHash, LogIndex: log.Index, Event: event.Name, Err: fmt.Errorf("failed to unpack data: %w", err)}
	}

	for i, input := range event.Inputs {
		value, ok := decoded[input.Name]
		if !ok {
			continue
		}
		formatted := FormatValue(value)
		record.ReturnValues[strconv.Itoa(i)] = formatted
		if !generatedName(input.Name, i) {
			record.ReturnValues[input.Name] = formatted
		}
	}

	record.Event = event.RawName
	record.Signature = event.ID.Hex()

	return record, nil
}

// generatedName reports whether name is the placeholder go-ethereum assigns
// to an unnamed event input at position i. Unnamed inputs are only
// reachable by position.
func generatedName(name string, i int) bool {
	return name == "arg"+strconv.Itoa(i)
}

// LogID derives the identifier web3 assigns to a log:
// "log_" followed by the first 8 hex digits of
// keccak256(blockHash ++ txHash ++ logIndex), all without 0x prefixes.
func LogID(log *types.Log) string {
	seed := strings.TrimPrefix(log.BlockHash.Hex(), "0x") +
		strings.TrimPrefix(log.TxHash.Hex(), "0x") +
		strconv.FormatUint(uint64(log.Index), 16)
	return "log_" + common.Bytes2Hex(crypto.Keccak256([]byte(seed)))[:8]
}

// Ensure the decoder implements the interface
var _ usecase.LogDecoder = (*LogDecoder)(nil)
