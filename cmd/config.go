package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// configCmd represents the config command.
var configCmd = newConfigCmd()

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Long: `Print the effective configuration as YAML: built-in defaults, overridden by
the config file, overridden by MONOBUMP_* environment variables.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd, configRoot())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if cfg.File != "" {
				fmt.Fprintf(out, "# %s\n", cfg.File)
			}

			enc := yaml.NewEncoder(out)
			enc.SetIndent(2)

			if err := enc.Encode(cfg); err != nil {
				return fmt.Errorf("encode config: %w", err)
			}

			return enc.Close()
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(configCmd)
}
