package cmd

import (
	"io"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/mouse-blink/monobump/internal/adapter"
	"github.com/mouse-blink/monobump/internal/config"
	"github.com/mouse-blink/monobump/internal/controller"
	"github.com/mouse-blink/monobump/internal/domain"
)

// session is everything a command needs, wired from flags and config.
type session struct {
	cfg      *config.Config
	logger   *log.Logger
	ui       controller.UI
	workflow domain.Workflow
}

// setup builds the session for a command. Tests replace it.
var setup = newSession

func newSession(cmd *cobra.Command) (*session, error) {
	format, err := controller.ParseFormat(formatFlag)
	if err != nil {
		return nil, err
	}

	logger := newLogger(cmd.ErrOrStderr(), verboseFlag)

	located, err := adapter.OpenGitRepository(repoFlag, "")
	if err != nil {
		return nil, err
	}

	root := located.Root()

	cfg, err := loadConfig(cmd, root)
	if err != nil {
		return nil, err
	}

	rules, err := cfg.ClassificationRules()
	if err != nil {
		return nil, err
	}

	repo, err := adapter.OpenGitRepository(root, cfg.TagPrefix)
	if err != nil {
		return nil, err
	}

	writer := adapter.NewLocalRecordWriter()
	components := adapter.NewLocalComponentStore(root, cfg.ComponentsRoot, cfg.VersionFile, writer)
	manifest := adapter.NewLocalManifestStore(filepath.Join(root, cfg.Manifest), cfg.ManifestEntries)

	workflow := domain.NewWorkflow(
		repo,
		repo,
		components,
		domain.NewSynchronizer(components, manifest, writer, logger),
		domain.NewClassifier(rules),
		domain.NewResolver(cfg.ComponentsRoot),
		domain.ReleaseSettings{
			CommitMessage: cfg.Release.CommitMessage,
			TagMessage:    cfg.Release.TagMessage,
			TagPrefix:     cfg.TagPrefix,
		},
		logger,
	)

	if cfg.File != "" {
		logger.Debug("loaded config", "file", cfg.File)
	}

	return &session{
		cfg:      cfg,
		logger:   logger,
		ui:       controller.NewUI(cmd, controller.IsTTY(cmd.OutOrStdout()), format),
		workflow: workflow,
	}, nil
}

func newLogger(w io.Writer, verbose bool) *log.Logger {
	level := log.InfoLevel
	if verbose {
		level = log.DebugLevel
	}

	return log.NewWithOptions(w, log.Options{
		Prefix: config.AppName,
		Level:  level,
	})
}

// loadConfig reads settings for the repository at root.
func loadConfig(cmd *cobra.Command, root string) (*config.Config, error) {
	return config.NewProvider().Load(cmd.Context(), config.LoadOptions{
		ConfigFilePath: configFlag,
		SearchDir:      root,
	})
}

// configRoot is the repository root containing repoFlag, or repoFlag
// itself outside a repository.
func configRoot() string {
	repo, err := adapter.OpenGitRepository(repoFlag, "")
	if err != nil {
		return repoFlag
	}

	return repo.Root()
}
