package render

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/chronicleprotocol/ethutil/internal/usecase"
	"github.com/ethereum/go-ethereum/common"
	"github.com/samber/lo"
)

// AddressRenderer renders predicted contract addresses
type AddressRenderer struct {
	out      io.Writer
	checksum bool
	asJSON   bool
}

// NewAddressRenderer creates a new address renderer. Addresses are printed
// as 40 lower-case hex characters unless checksum is set, in which case the
// 0x-prefixed EIP-55 form is used.
func NewAddressRenderer(out io.Writer, checksum, asJSON bool) *AddressRenderer {
	return &AddressRenderer{
		out:      out,
		checksum: checksum,
		asJSON:   asJSON,
	}
}

type addressEntry struct {
	Sender  string `json:"sender"`
	Nonce   uint64 `json:"nonce"`
	Address string `json:"address"`
}

// Render prints one address per line, or a single JSON array
func (r *AddressRenderer) Render(result *usecase.ComputeContractAddressResult) error {
	if r.asJSON {
		entries := lo.Map(result.Predictions, func(p usecase.AddressPrediction, _ int) addressEntry {
			return addressEntry{
				Sender:  r.format(result.Sender),
				Nonce:   p.Nonce,
				Address: r.format(p.Address),
			}
		})
		data, err := json.Marshal(entries)
		if err != nil {
			return fmt.Errorf("failed to marshal addresses: %w", err)
		}
		_, err = fmt.Fprintln(r.out, string(data))
		return err
	}

	for _, p := range result.Predictions {
		if _, err := fmt.Fprintln(r.out, r.format(p.Address)); err != nil {
			return err
		}
	}
	return nil
}

func (r *AddressRenderer) format(addr common.Address) string {
	if r.checksum {
		return addr.Hex()
	}
	return common.Bytes2Hex(addr.Bytes())
}

var _ Renderer[*usecase.ComputeContractAddressResult] = (*AddressRenderer)(nil)
