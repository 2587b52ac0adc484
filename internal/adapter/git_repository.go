package adapter

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/plumbing/storer"
	"golang.org/x/mod/semver"

	m "github.com/mouse-blink/monobump/internal/model"
)

const (
	fallbackSignatureName  = "monobump"
	fallbackSignatureEmail = "monobump@localhost"
)

// GitRepository implements HistorySource and Releaser on top of go-git.
type GitRepository struct {
	repo      *git.Repository
	root      string
	tagPrefix string
	now       func() time.Time
}

// OpenGitRepository opens the repository containing path. tagPrefix is the
// text in front of major.minor.patch in release tag names.
func OpenGitRepository(path string, tagPrefix string) (*GitRepository, error) {
	repo, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, fmt.Errorf("open git repository at %s: %w", path, err)
	}

	wt, err := repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("open worktree: %w", err)
	}

	return &GitRepository{
		repo:      repo,
		root:      wt.Filesystem.Root(),
		tagPrefix: tagPrefix,
		now:       time.Now,
	}, nil
}

// Root returns the worktree root directory.
func (g *GitRepository) Root() string {
	return g.root
}

// FindBaselineReference walks history from HEAD by commit time and returns
// the first commit carrying a release tag. When a commit carries several,
// the highest version wins.
func (g *GitRepository) FindBaselineReference(ctx context.Context) (m.Reference, bool, error) {
	tagged, err := g.releaseTags()
	if err != nil {
		return m.Reference{}, false, err
	}

	if len(tagged) == 0 {
		return m.Reference{}, false, nil
	}

	head, err := g.headCommit()
	if err != nil {
		return m.Reference{}, false, err
	}

	var found m.Reference

	iter := object.NewCommitIterCTime(head, nil, nil)
	defer iter.Close()

	err = iter.ForEach(func(c *object.Commit) error {
		if err := ctx.Err(); err != nil {
			return err
		}

		names, ok := tagged[c.Hash]
		if !ok {
			return nil
		}

		found = m.Reference{Name: g.highestTag(names), Hash: c.Hash.String()}

		return storer.ErrStop
	})
	if err != nil {
		return m.Reference{}, false, fmt.Errorf("walk history for release tags: %w", err)
	}

	return found, found.Name != "", nil
}

// CommitsSince returns baseline..HEAD ordered by commit time, newest first.
func (g *GitRepository) CommitsSince(ctx context.Context, baseline m.Reference) ([]m.CommitRecord, error) {
	base, err := g.resolve(baseline)
	if err != nil {
		return nil, err
	}

	head, err := g.headCommit()
	if err != nil {
		return nil, err
	}

	seen := make(map[plumbing.Hash]bool)

	baseIter := object.NewCommitPreorderIter(base, nil, nil)
	defer baseIter.Close()

	err = baseIter.ForEach(func(c *object.Commit) error {
		if err := ctx.Err(); err != nil {
			return err
		}

		seen[c.Hash] = true

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk ancestors of %s: %w", baseline, err)
	}

	if seen[head.Hash] {
		return []m.CommitRecord{}, nil
	}

	commits := []m.CommitRecord{}

	iter := object.NewCommitIterCTime(head, seen, nil)
	defer iter.Close()

	err = iter.ForEach(func(c *object.Commit) error {
		if err := ctx.Err(); err != nil {
			return err
		}

		commits = append(commits, toCommitRecord(c))

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk commits since %s: %w", baseline, err)
	}

	return commits, nil
}

// ChangedFiles diffs the commit against its parent. Root and merge commits
// report no paths, matching `git diff-tree` without -m or --root. Renames
// report both the old and the new path.
func (g *GitRepository) ChangedFiles(ctx context.Context, hash string) ([]string, error) {
	commit, err := g.repo.CommitObject(plumbing.NewHash(hash))
	if err != nil {
		return nil, fmt.Errorf("load commit %s: %w", hash, err)
	}

	if commit.NumParents() != 1 {
		return []string{}, nil
	}

	parent, err := commit.Parent(0)
	if err != nil {
		return nil, fmt.Errorf("load parent of %s: %w", hash, err)
	}

	from, err := parent.Tree()
	if err != nil {
		return nil, fmt.Errorf("load tree of %s: %w", parent.Hash, err)
	}

	to, err := commit.Tree()
	if err != nil {
		return nil, fmt.Errorf("load tree of %s: %w", hash, err)
	}

	changes, err := object.DiffTreeContext(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("diff %s: %w", hash, err)
	}

	unique := make(map[string]struct{})

	for _, change := range changes {
		for _, name := range []string{change.From.Name, change.To.Name} {
			if name != "" {
				unique[name] = struct{}{}
			}
		}
	}

	paths := make([]string, 0, len(unique))
	for name := range unique {
		paths = append(paths, name)
	}

	sort.Strings(paths)

	return paths, nil
}

// WorkingTreeIsClean reports whether git status shows no changes.
func (g *GitRepository) WorkingTreeIsClean(_ context.Context) (bool, error) {
	status, err := g.status()
	if err != nil {
		return false, err
	}

	return status.IsClean(), nil
}

// HasStagedChanges reports whether anything is staged in the index.
func (g *GitRepository) HasStagedChanges(_ context.Context) (bool, error) {
	status, err := g.status()
	if err != nil {
		return false, err
	}

	for _, fs := range status {
		if fs.Staging != git.Unmodified && fs.Staging != git.Untracked {
			return true, nil
		}
	}

	return false, nil
}

// TagExists reports whether the tag name is taken.
func (g *GitRepository) TagExists(_ context.Context, name string) (bool, error) {
	_, err := g.repo.Tag(name)
	if errors.Is(err, git.ErrTagNotFound) {
		return false, nil
	}

	if err != nil {
		return false, fmt.Errorf("look up tag %s: %w", name, err)
	}

	return true, nil
}

// Release stages the files, commits them and creates an annotated tag on
// the new commit.
func (g *GitRepository) Release(_ context.Context, req ReleaseRequest) (string, error) {
	wt, err := g.repo.Worktree()
	if err != nil {
		return "", fmt.Errorf("open worktree: %w", err)
	}

	for _, file := range req.Files {
		rel, err := g.relative(file)
		if err != nil {
			return "", err
		}

		if _, err := wt.Add(rel); err != nil {
			return "", fmt.Errorf("stage %s: %w", rel, err)
		}
	}

	sig := g.signature()

	hash, err := wt.Commit(req.CommitMessage, &git.CommitOptions{Author: sig, Committer: sig})
	if err != nil {
		return "", fmt.Errorf("commit release: %w", err)
	}

	_, err = g.repo.CreateTag(req.Tag, hash, &git.CreateTagOptions{
		Tagger:  sig,
		Message: req.TagMessage,
	})
	if err != nil {
		return "", fmt.Errorf("create tag %s: %w", req.Tag, err)
	}

	return hash.String(), nil
}

func (g *GitRepository) status() (git.Status, error) {
	wt, err := g.repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("open worktree: %w", err)
	}

	status, err := wt.Status()
	if err != nil {
		return nil, fmt.Errorf("worktree status: %w", err)
	}

	return status, nil
}

func (g *GitRepository) headCommit() (*object.Commit, error) {
	head, err := g.repo.Head()
	if err != nil {
		return nil, fmt.Errorf("resolve HEAD: %w", err)
	}

	commit, err := g.repo.CommitObject(head.Hash())
	if err != nil {
		return nil, fmt.Errorf("load HEAD commit: %w", err)
	}

	return commit, nil
}

// resolve turns a baseline into a commit. A known hash wins over the name;
// names are anything go-git revision parsing accepts (tags, HEAD~3, ...).
func (g *GitRepository) resolve(ref m.Reference) (*object.Commit, error) {
	var hash plumbing.Hash

	if ref.Hash != "" {
		hash = plumbing.NewHash(ref.Hash)
	} else {
		resolved, err := g.repo.ResolveRevision(plumbing.Revision(ref.Name))
		if err != nil {
			return nil, fmt.Errorf("resolve baseline %q: %w", ref.Name, err)
		}

		hash = *resolved
	}

	peeled, err := g.peel(hash)
	if err != nil {
		return nil, fmt.Errorf("resolve baseline %q: %w", ref.Name, err)
	}

	commit, err := g.repo.CommitObject(peeled)
	if err != nil {
		return nil, fmt.Errorf("load baseline %q: %w", ref.Name, err)
	}

	return commit, nil
}

// peel follows annotated tag objects down to the commit they point at.
func (g *GitRepository) peel(hash plumbing.Hash) (plumbing.Hash, error) {
	tag, err := g.repo.TagObject(hash)
	if errors.Is(err, plumbing.ErrObjectNotFound) {
		return hash, nil
	}

	if err != nil {
		return plumbing.ZeroHash, err
	}

	commit, err := tag.Commit()
	if err != nil {
		return plumbing.ZeroHash, err
	}

	return commit.Hash, nil
}

// releaseTags maps commits to the release tags pointing at them.
func (g *GitRepository) releaseTags() (map[plumbing.Hash][]string, error) {
	refs, err := g.repo.Tags()
	if err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}

	tagged := make(map[plumbing.Hash][]string)

	err = refs.ForEach(func(ref *plumbing.Reference) error {
		name := ref.Name().Short()
		if _, ok := g.tagVersion(name); !ok {
			return nil
		}

		hash, err := g.peel(ref.Hash())
		if err != nil {
			return nil //nolint:nilerr // tags on non-commit objects are not baselines
		}

		tagged[hash] = append(tagged[hash], name)

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}

	return tagged, nil
}

// tagVersion converts a tag name into canonical "vX.Y.Z" form when it is a
// plain release tag: prefix followed by exactly major.minor.patch.
func (g *GitRepository) tagVersion(name string) (string, bool) {
	rest, ok := strings.CutPrefix(name, g.tagPrefix)
	if !ok {
		return "", false
	}

	v := "v" + rest
	if !semver.IsValid(v) || semver.Canonical(v) != v || semver.Prerelease(v) != "" {
		return "", false
	}

	return v, true
}

func (g *GitRepository) highestTag(names []string) string {
	sorted := append([]string(nil), names...)
	sort.Slice(sorted, func(i, j int) bool {
		vi, _ := g.tagVersion(sorted[i])
		vj, _ := g.tagVersion(sorted[j])

		return semver.Compare(vi, vj) > 0
	})

	return sorted[0]
}

func (g *GitRepository) relative(file m.Path) (string, error) {
	path := string(file)
	if !filepath.IsAbs(path) {
		return filepath.ToSlash(path), nil
	}

	rel, err := filepath.Rel(g.root, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return "", fmt.Errorf("%s is outside the repository", path)
	}

	return filepath.ToSlash(rel), nil
}

// signature builds the author from git config, falling back to a fixed
// identity so releases work in bare CI environments.
func (g *GitRepository) signature() *object.Signature {
	sig := &object.Signature{
		Name:  fallbackSignatureName,
		Email: fallbackSignatureEmail,
		When:  g.now(),
	}

	cfg, err := g.repo.ConfigScoped(config.GlobalScope)
	if err != nil {
		return sig
	}

	if cfg.User.Name != "" {
		sig.Name = cfg.User.Name
	}

	if cfg.User.Email != "" {
		sig.Email = cfg.User.Email
	}

	return sig
}

func toCommitRecord(c *object.Commit) m.CommitRecord {
	parents := make([]string, 0, len(c.ParentHashes))
	for _, p := range c.ParentHashes {
		parents = append(parents, p.String())
	}

	subject, body, _ := strings.Cut(strings.TrimSpace(c.Message), "\n")

	return m.CommitRecord{
		Hash:    c.Hash.String(),
		Parents: parents,
		Subject: strings.TrimSpace(subject),
		Body:    strings.TrimSpace(body),
	}
}
