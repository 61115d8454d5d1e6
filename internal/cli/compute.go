package cli

import (
	"github.com/chronicleprotocol/ethutil/internal/cli/render"
	"github.com/chronicleprotocol/ethutil/internal/usecase"
	"github.com/spf13/cobra"
)

func computeUsage(name string) []string {
	return []string{"Usage: " + name + " ETH_FROM_address nonce"}
}

// NewComputeAddressCmd creates the compute-contract-address command
func NewComputeAddressCmd() *cobra.Command {
	var (
		checksum bool
		asJSON   bool
		count    uint64
	)

	cmd := &cobra.Command{
		Use:   "compute-contract-address [flags] ETH_FROM_address nonce",
		Short: "Predict the address of a contract deployed with CREATE",
		Long: `Predict the address of a contract deployed with CREATE from a sender
address and nonce: the last 20 bytes of keccak256(rlp([sender, nonce])).

The nonce may be decimal or 0x-prefixed hex. Flags must come before the
arguments.`,
		Example: `  # Address of the first contract deployed by an account
  compute-contract-address 0x970e8128ab834e8eac17ab8e3812f010678cf791 0

  # Next three addresses, EIP-55 checksummed
  compute-contract-address --checksum --count 3 0x970e8128ab834e8eac17ab8e3812f010678cf791 5`,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.ComputeContractAddress.Run(cmd.Context(), usecase.ComputeContractAddressParams{
				Sender: args[0],
				Nonce:  args[1],
				Count:  count,
			})
			if err != nil {
				return err
			}

			renderer := render.NewAddressRenderer(cmd.OutOrStdout(), checksum, asJSON)
			return renderer.Render(result)
		},
	}
	newCommand(cmd, 2, computeUsage)

	cmd.Flags().BoolVar(&checksum, "checksum", false, "Print 0x-prefixed EIP-55 checksummed addresses")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print a JSON array of {sender, nonce, address}")
	cmd.Flags().Uint64Var(&count, "count", 1, "Number of consecutive nonces to predict")

	return cmd
}
