package cli

import (
	"time"

	"github.com/chronicleprotocol/ethutil/internal/cli/render"
	"github.com/chronicleprotocol/ethutil/internal/config"
	"github.com/chronicleprotocol/ethutil/internal/domain"
	"github.com/chronicleprotocol/ethutil/internal/usecase"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func dumpUsage(name string) []string {
	return []string{
		"Usage: " + name + " http://eth-rpc-url path/to/abi/file contract",
		"E.g.:  " + name + " http://localhost:8545 e2e/wormhole/optimism-dai-bridge-contracts/out/L1Escrow.abi 0xdeadbeef",
	}
}

// NewDumpEventsCmd creates the dump-events command
func NewDumpEventsCmd() *cobra.Command {
	var (
		output    string
		fromBlock string
		toBlock   string
	)

	cmd := &cobra.Command{
		Use:   "dump-events [flags] http://eth-rpc-url path/to/abi/file contract",
		Short: "Dump every event a contract has emitted",
		Long: `Fetch all logs emitted by a contract, from the genesis block to the chain
head, decode them with the contract ABI and print them as a JSON array.

The RPC argument is either a URL or an alias from the [rpc_endpoints] table of
the config file (ethutil.toml by default). Values may reference environment
variables as ${VAR}; .env and .env.local are loaded first. The file is only read
when the RPC argument is not a URL.

Flags must come before the arguments.`,
		Example: `  # Dump all events of the L1 escrow
  dump-events http://localhost:8545 out/L1Escrow.abi 0x5FbDB2315678afecb367f032d93F642f64180aa3

  # Use an endpoint alias and a block range, print a table
  dump-events -o table --from-block 100 --to-block latest mainnet out/L1Escrow.abi 0x5FbD...`,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			format, err := render.ParseOutputFormat(output)
			if err != nil {
				return err
			}

			from, err := domain.ParseBlockNumber(fromBlock)
			if err != nil {
				return err
			}
			to, err := domain.ParseBlockNumber(toBlock)
			if err != nil {
				return err
			}

			result, err := app.DumpEvents.Run(cmd.Context(), usecase.DumpEventsParams{
				RPC:       args[0],
				ABIPath:   args[1],
				Contract:  args[2],
				FromBlock: from,
				ToBlock:   to,
			})
			if err != nil {
				return err
			}

			renderer := render.NewEventsRenderer(cmd.OutOrStdout(), format, !color.NoColor)
			return renderer.Render(result)
		},
	}
	newCommand(cmd, 3, dumpUsage)

	cmd.Flags().StringVarP(&output, "output", "o", string(render.FormatJSON), "Output format (json, yaml, table)")
	cmd.Flags().StringVar(&fromBlock, "from-block", "", "First block to query (number or tag, default 0)")
	cmd.Flags().StringVar(&toBlock, "to-block", "", "Last block to query (number or tag, default latest)")
	cmd.Flags().String("config", "", "Endpoint alias file (default "+config.DefaultConfigFile+" if present)")
	cmd.Flags().BoolP("quiet", "q", false, "Disable the progress spinner")
	cmd.Flags().Duration("timeout", 2*time.Minute, "Overall timeout for RPC calls")

	return cmd
}
