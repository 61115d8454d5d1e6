package cli

import (
	"github.com/spf13/cobra"
)

// Version is set during build time
var Version = "dev"

// setVersion enables --version on cmd
func setVersion(cmd *cobra.Command) {
	cmd.Version = Version
	cmd.SetVersionTemplate("{{.Name}} version {{.Version}}\n")
}
