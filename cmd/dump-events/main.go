package main

import (
	"os"

	"github.com/chronicleprotocol/ethutil/internal/cli"
)

func main() {
	os.Exit(cli.Execute(cli.NewDumpEventsCmd(), os.Args[1:]))
}
