package cmd

import (
	"github.com/spf13/cobra"
)

// componentsCmd represents the components command.
var componentsCmd = newComponentsCmd()

func newComponentsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "components",
		Aliases: []string{"ls"},
		Short:   "List components and their recorded versions",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := setup(cmd)
			if err != nil {
				return err
			}

			components, err := s.workflow.Components(cmd.Context())
			if err != nil {
				return err
			}

			return s.ui.DisplayComponents(components)
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(componentsCmd)
}
