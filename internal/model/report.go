package model

// VersionChange describes one component moving to a new version.
type VersionChange struct {
	Component string          `json:"component" yaml:"component"`
	Level     BumpLevel       `json:"level" yaml:"level"`
	From      SemanticVersion `json:"from" yaml:"from"`
	To        SemanticVersion `json:"to" yaml:"to"`
	Record    Path            `json:"record" yaml:"record"`
}

// PendingWrite is the full new content of one persisted record.
type PendingWrite struct {
	Path    Path
	Content []byte
}

// SyncResult is everything the synchronizer computed for a bump plan.
// Applying it writes Writes and nothing else.
type SyncResult struct {
	Changes           []VersionChange
	Versions          VersionMap
	Aggregate         SemanticVersion
	PreviousAggregate string
	Manifest          Manifest
	Warnings          []string
	Writes            []PendingWrite
}

// Files lists the paths that applying the result touches, in write order.
func (r SyncResult) Files() []Path {
	files := make([]Path, 0, len(r.Writes))
	for _, w := range r.Writes {
		files = append(files, w.Path)
	}

	return files
}

// Report summarizes one resolution run.
type Report struct {
	Baseline          Reference       `json:"baseline" yaml:"baseline"`
	DryRun            bool            `json:"dry_run" yaml:"dry_run"`
	Scanned           int             `json:"scanned" yaml:"scanned"`
	Qualifying        int             `json:"qualifying" yaml:"qualifying"`
	SkippedMerges     int             `json:"skipped_merges" yaml:"skipped_merges"`
	Unconventional    int             `json:"unconventional" yaml:"unconventional"`
	Changes           []VersionChange `json:"changes" yaml:"changes"`
	Aggregate         SemanticVersion `json:"aggregate" yaml:"aggregate"`
	PreviousAggregate string          `json:"previous_aggregate" yaml:"previous_aggregate"`
	Warnings          []string        `json:"warnings,omitempty" yaml:"warnings,omitempty"`
	Files             []Path          `json:"files,omitempty" yaml:"files,omitempty"`
	Tag               string          `json:"tag,omitempty" yaml:"tag,omitempty"`
}

// HasChanges reports whether any component was bumped.
func (r Report) HasChanges() bool {
	return len(r.Changes) > 0
}
