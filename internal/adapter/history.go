// Package adapter contains the storage and version-control adapters the
// domain layer depends on.
package adapter

import (
	"context"

	m "github.com/mouse-blink/monobump/internal/model"
)

// HistorySource supplies commit history. The domain only ever talks to
// history through this interface, so any VCS or a synthetic fixture can
// back it.
type HistorySource interface {
	// FindBaselineReference returns the most recent release tag reachable
	// from HEAD. found is false when there is none, which is not an error.
	FindBaselineReference(ctx context.Context) (ref m.Reference, found bool, err error)

	// CommitsSince lists commits reachable from HEAD but not from baseline,
	// newest first.
	CommitsSince(ctx context.Context, baseline m.Reference) ([]m.CommitRecord, error)

	// ChangedFiles returns repository-relative, slash-separated paths
	// changed by the commit.
	ChangedFiles(ctx context.Context, hash string) ([]string, error)

	// WorkingTreeIsClean reports whether the worktree has no changes.
	WorkingTreeIsClean(ctx context.Context) (bool, error)
}

// ReleaseRequest describes the release commit and its annotated tag.
type ReleaseRequest struct {
	Files         []m.Path
	CommitMessage string
	Tag           string
	TagMessage    string
}

// Releaser records a release in version control.
type Releaser interface {
	// HasStagedChanges reports whether the index differs from HEAD.
	HasStagedChanges(ctx context.Context) (bool, error)

	// TagExists reports whether a tag with the given name exists.
	TagExists(ctx context.Context, name string) (bool, error)

	// Release stages exactly req.Files, commits them and creates the
	// annotated tag. It returns the new commit hash.
	Release(ctx context.Context, req ReleaseRequest) (string, error)
}
