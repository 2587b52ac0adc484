// Package cmd provides the root command and CLI setup for monobump.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/monobump/internal/clierr"
	"github.com/mouse-blink/monobump/internal/domain"
)

var fromRefFlag string
var dryRunFlag bool
var tagFlag bool
var yesFlag bool
var formatFlag string
var repoFlag string
var configFlag string
var verboseFlag bool

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "monobump",
		Short: "Resolve component versions from conventional commits",
		Long: `Monobump reads the commits since the last release tag, works out which
components of the monorepo they touch and how far each one must move, then
rewrites the component version records and the aggregate manifest.

Examples:
  monobump --dry-run          show what would change
  monobump                    write the new versions
  monobump --tag              write, commit and tag the release
  monobump --from-ref HEAD~5  use another baseline`,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBump(cmd, domain.BumpArgs{
				FromRef: fromRefFlag,
				DryRun:  dryRunFlag,
				Tag:     tagFlag,
			})
		},
	}

	cmd.PersistentFlags().StringVar(&repoFlag, "repo", ".", "path inside the repository to operate on")
	cmd.PersistentFlags().StringVar(&configFlag, "config", "", "config file (default is .monobump.{yaml,json,toml} at the repository root)")
	cmd.PersistentFlags().StringVarP(&formatFlag, "format", "f", "text", "output format: text, json or yaml")
	cmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "log every commit decision")
	cmd.PersistentFlags().StringVar(&fromRefFlag, "from-ref", "", "baseline revision, overrides release tag discovery")

	cmd.Flags().BoolVar(&dryRunFlag, "dry-run", false, "compute and show changes without writing")
	cmd.Flags().BoolVar(&tagFlag, "tag", false, "commit the written files and create an annotated release tag")
	cmd.Flags().BoolVarP(&yesFlag, "yes", "y", false, "skip the release confirmation prompt")

	cmd.MarkFlagsMutuallyExclusive("dry-run", "tag")

	return cmd
}

func runBump(cmd *cobra.Command, args domain.BumpArgs) error {
	s, err := setup(cmd)
	if err != nil {
		return err
	}

	if args.Tag && !yesFlag {
		args.Confirm = s.ui.ConfirmRelease
	}

	report, err := s.workflow.Bump(cmd.Context(), args)
	if domain.IsNothingToDo(err) {
		if displayErr := s.ui.DisplayReport(report); displayErr != nil {
			return displayErr
		}

		return clierr.Wrap(clierr.ExitNothingToDo, "", err)
	}

	if err != nil {
		return err
	}

	return s.ui.DisplayReport(report)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	os.Exit(execute(rootCmd))
}

func execute(cmd *cobra.Command) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := cmd.ExecuteContext(ctx)
	if err != nil && !clierr.Silent(err) {
		fmt.Fprintln(cmd.ErrOrStderr(), "Error:", err)
	}

	return clierr.ExitCodeOf(err)
}
