package main

import (
	"os"

	"github.com/chronicleprotocol/ethutil/internal/cli"
)

func main() {
	os.Exit(cli.Execute(cli.NewComputeAddressCmd(), os.Args[1:]))
}
