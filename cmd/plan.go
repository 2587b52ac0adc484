package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/monobump/internal/domain"
)

// planCmd represents the plan command.
var planCmd = newPlanCmd()

func newPlanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "plan",
		Aliases: []string{"preview"},
		Short:   "Show the version changes a bump would make",
		Long:    "Show the version changes a bump would make without writing anything. Same as --dry-run.",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBump(cmd, domain.BumpArgs{
				FromRef: fromRefFlag,
				DryRun:  true,
			})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(planCmd)
}
