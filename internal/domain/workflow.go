package domain

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/mouse-blink/monobump/internal/adapter"
	m "github.com/mouse-blink/monobump/internal/model"
)

const tagPlaceholder = "{tag}"

// Default release messages. {tag} is replaced with the release tag.
const (
	DefaultCommitMessage = "chore(release): bump versions to {tag}"
	DefaultTagMessage    = "Release {tag}"
)

// Workflow defines the version resolution operations.
type Workflow interface {
	// Bump resolves versions from the commits since the baseline and
	// previews or applies them. When nothing qualifies it returns the
	// partial report together with an error wrapping ErrNothingToDo.
	Bump(ctx context.Context, args BumpArgs) (m.Report, error)
	// Components lists discovered components with their recorded versions.
	Components(ctx context.Context) ([]m.ComponentVersion, error)
}

// BumpArgs controls a single Bump run.
type BumpArgs struct {
	// FromRef overrides baseline discovery with any resolvable revision.
	FromRef string
	DryRun  bool
	// Tag commits the written files and creates an annotated release tag.
	Tag bool
	// Confirm is asked before a release is written. Nil means yes.
	Confirm func(report m.Report) (bool, error)
}

// ReleaseSettings configures the release commit and tag.
type ReleaseSettings struct {
	CommitMessage string
	TagMessage    string
	TagPrefix     string
}

// BumpWorkflow implements Workflow.
type BumpWorkflow struct {
	history    adapter.HistorySource
	releaser   adapter.Releaser
	components adapter.ComponentStore
	sync       Synchronizer
	classifier Classifier
	resolver   Resolver
	release    ReleaseSettings
	logger     *log.Logger
}

// NewWorkflow creates a new Workflow instance with the provided adapters.
func NewWorkflow(
	history adapter.HistorySource,
	releaser adapter.Releaser,
	components adapter.ComponentStore,
	sync Synchronizer,
	classifier Classifier,
	resolver Resolver,
	release ReleaseSettings,
	logger *log.Logger,
) *BumpWorkflow {
	if release.CommitMessage == "" {
		release.CommitMessage = DefaultCommitMessage
	}

	if release.TagMessage == "" {
		release.TagMessage = DefaultTagMessage
	}

	return &BumpWorkflow{
		history:    history,
		releaser:   releaser,
		components: components,
		sync:       sync,
		classifier: classifier,
		resolver:   resolver,
		release:    release,
		logger:     orDiscard(logger),
	}
}

// Bump runs baseline → commits → classify → attribute → aggregate → plan,
// then stops (dry run) or writes and optionally releases. Every check that
// can refuse the run happens before the first write.
func (w *BumpWorkflow) Bump(ctx context.Context, args BumpArgs) (m.Report, error) {
	report := m.Report{DryRun: args.DryRun}

	baseline, err := w.baseline(ctx, args.FromRef)
	if err != nil {
		return report, err
	}

	report.Baseline = baseline
	w.logger.Info("scanning commits", "baseline", baseline.Name)

	commits, err := w.history.CommitsSince(ctx, baseline)
	if err != nil {
		return report, fmt.Errorf("list commits since %s: %w", baseline, err)
	}

	report.Scanned = len(commits)
	if len(commits) == 0 {
		return report, fmt.Errorf("%w: no commits since %s", ErrNothingToDo, baseline)
	}

	known, err := w.knownComponents()
	if err != nil {
		return report, err
	}

	attributions := w.attribute(ctx, commits, known, &report)

	plan := Aggregate(attributions)
	if len(plan) == 0 {
		return report, fmt.Errorf("%w: no version-affecting conventional commits", ErrNothingToDo)
	}

	result, err := w.sync.Plan(plan)
	if err != nil {
		return report, err
	}

	fillReport(&report, result)

	if args.DryRun {
		return report, nil
	}

	if args.Tag {
		if err := w.checkRelease(ctx, &report, args.Confirm); err != nil {
			return report, err
		}
	}

	if err := w.sync.Apply(result); err != nil {
		return report, err
	}

	if !args.Tag {
		return report, nil
	}

	hash, err := w.releaser.Release(ctx, adapter.ReleaseRequest{
		Files:         result.Files(),
		CommitMessage: w.render(w.release.CommitMessage, report.Tag),
		Tag:           report.Tag,
		TagMessage:    w.render(w.release.TagMessage, report.Tag),
	})
	if err != nil {
		return report, fmt.Errorf("release %s: %w", report.Tag, err)
	}

	w.logger.Info("release tagged", "tag", report.Tag, "commit", m.CommitRecord{Hash: hash}.Short())

	return report, nil
}

// Components implements Workflow.
func (w *BumpWorkflow) Components(_ context.Context) ([]m.ComponentVersion, error) {
	names, err := w.components.ListComponents()
	if err != nil {
		return nil, err
	}

	versions := make([]m.ComponentVersion, 0, len(names))

	for _, name := range names {
		v, err := w.components.ReadVersion(name)
		if err != nil {
			return nil, err
		}

		versions = append(versions, v)
	}

	return versions, nil
}

func (w *BumpWorkflow) baseline(ctx context.Context, override string) (m.Reference, error) {
	if override != "" {
		return m.Reference{Name: override}, nil
	}

	ref, found, err := w.history.FindBaselineReference(ctx)
	if err != nil {
		return m.Reference{}, fmt.Errorf("find baseline: %w", err)
	}

	if !found {
		return m.Reference{}, ErrNoBaseline
	}

	return ref, nil
}

func (w *BumpWorkflow) knownComponents() (m.ComponentSet, error) {
	names, err := w.components.ListComponents()
	if err != nil {
		return nil, err
	}

	return m.NewComponentSet(names...), nil
}

// attribute classifies and attributes commits in history order.
func (w *BumpWorkflow) attribute(
	ctx context.Context,
	commits []m.CommitRecord,
	known m.ComponentSet,
	report *m.Report,
) []m.Attribution {
	var attributions []m.Attribution

	for _, commit := range commits {
		if commit.IsMerge() {
			report.SkippedMerges++
			w.logger.Debug("skipping merge commit", "commit", commit.Short())

			continue
		}

		cc, ok := w.classifier.Classify(commit.Subject, commit.Body)
		if !ok {
			report.Unconventional++
			w.logger.Debug("skipping non-conventional commit", "commit", commit.Short(), "subject", commit.Subject)

			continue
		}

		if cc.Level == m.BumpNone {
			reason := "unrecognized type"
			if w.classifier.IsNoBump(cc.Type) {
				reason = "type does not bump"
			}

			w.logger.Debug("skipping commit", "commit", commit.Short(), "type", cc.Type, "reason", reason)

			continue
		}

		files, err := w.history.ChangedFiles(ctx, commit.Hash)
		if err != nil {
			w.logger.Warn("could not list changed files, attributing by scope only", "commit", commit.Short(), "err", err)
			files = nil
		}

		affected := w.resolver.Resolve(cc, files, known)
		if len(affected) == 0 {
			w.logger.Debug("commit affects no component", "commit", commit.Short(), "subject", commit.Subject)
			continue
		}

		report.Qualifying++
		w.logger.Debug("commit qualifies", "commit", commit.Short(), "level", cc.Level, "components", strings.Join(affected.Sorted(), ","))

		attributions = append(attributions, m.Attribution{Commit: commit, Level: cc.Level, Components: affected})
	}

	return attributions
}

// checkRelease verifies tagging preconditions and asks for confirmation.
func (w *BumpWorkflow) checkRelease(ctx context.Context, report *m.Report, confirm func(m.Report) (bool, error)) error {
	if !report.HasChanges() {
		return ErrNothingToTag
	}

	report.Tag = w.release.TagPrefix + report.Aggregate.String()

	staged, err := w.releaser.HasStagedChanges(ctx)
	if err != nil {
		return fmt.Errorf("check index: %w", err)
	}

	if staged {
		return ErrUnrelatedStaged
	}

	exists, err := w.releaser.TagExists(ctx, report.Tag)
	if err != nil {
		return fmt.Errorf("check tag %s: %w", report.Tag, err)
	}

	if exists {
		return fmt.Errorf("%w: %s", ErrTagExists, report.Tag)
	}

	clean, err := w.history.WorkingTreeIsClean(ctx)
	if err != nil {
		return fmt.Errorf("check working tree: %w", err)
	}

	if !clean {
		w.logger.Warn("working tree has unstaged changes; only version records will be committed")
	}

	if confirm == nil {
		return nil
	}

	ok, err := confirm(*report)
	if err != nil {
		return err
	}

	if !ok {
		return ErrReleaseDeclined
	}

	return nil
}

func (w *BumpWorkflow) render(template, tag string) string {
	return strings.ReplaceAll(template, tagPlaceholder, tag)
}

func fillReport(report *m.Report, result m.SyncResult) {
	report.Changes = result.Changes
	report.Aggregate = result.Aggregate
	report.PreviousAggregate = result.PreviousAggregate
	report.Warnings = result.Warnings
	report.Files = result.Files()
}

// IsNothingToDo reports whether err means a successful run with no changes.
func IsNothingToDo(err error) bool {
	return errors.Is(err, ErrNothingToDo)
}

func orDiscard(logger *log.Logger) *log.Logger {
	if logger != nil {
		return logger
	}

	return log.New(io.Discard)
}
