package domain

import "errors"

var (
	// ErrNoBaseline means no release tag is reachable and no override was given.
	ErrNoBaseline = errors.New("no release tag found and no baseline override supplied; " +
		"create a baseline release tag first (e.g. git tag v0.0.0) or run with --from-ref HEAD~N")
	// ErrNothingToDo means the run found no qualifying commits. It is a
	// successful outcome, not a failure.
	ErrNothingToDo = errors.New("nothing to do")
	// ErrNothingToTag refuses a release when no component was bumped.
	ErrNothingToTag = errors.New("refusing to tag: no components were bumped")
	// ErrUnrelatedStaged refuses a release on top of changes already staged in the index.
	ErrUnrelatedStaged = errors.New("refusing to tag: the index has unrelated staged changes")
	// ErrTagExists refuses a release whose tag is already taken.
	ErrTagExists = errors.New("refusing to tag: tag already exists")
	// ErrReleaseDeclined is returned when the user answers no at the confirmation prompt.
	ErrReleaseDeclined = errors.New("release declined")
)
