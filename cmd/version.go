package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/monobump/internal/config"
)

// version is set at build time with -ldflags "-X .../cmd.version=...".
var version = "dev"

// versionCmd represents the version command.
var versionCmd = newVersionCmd()

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the monobump version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", config.AppName, version)
		},
	}
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
