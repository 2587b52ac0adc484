package domain

import (
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/mouse-blink/monobump/internal/adapter"
	m "github.com/mouse-blink/monobump/internal/model"
)

// Synchronizer turns a bump plan into new component versions and an
// updated aggregate manifest.
type Synchronizer interface {
	// Plan computes every write without performing any of them.
	Plan(plan m.BumpPlan) (m.SyncResult, error)
	// Apply persists exactly the writes Plan produced.
	Apply(result m.SyncResult) error
}

// ManifestSynchronizer implements Synchronizer over component and manifest stores.
type ManifestSynchronizer struct {
	components adapter.ComponentStore
	manifest   adapter.ManifestStore
	writer     adapter.RecordWriter
	logger     *log.Logger
}

// NewSynchronizer wires a synchronizer. A nil logger discards output.
func NewSynchronizer(
	components adapter.ComponentStore,
	manifest adapter.ManifestStore,
	writer adapter.RecordWriter,
	logger *log.Logger,
) *ManifestSynchronizer {
	return &ManifestSynchronizer{
		components: components,
		manifest:   manifest,
		writer:     writer,
		logger:     orDiscard(logger),
	}
}

// Plan implements Synchronizer. Component records are written before the
// manifest, so the manifest write is always last.
func (s *ManifestSynchronizer) Plan(plan m.BumpPlan) (m.SyncResult, error) {
	if len(plan) == 0 {
		return m.SyncResult{}, fmt.Errorf("%w: empty bump plan", ErrNothingToDo)
	}

	result := m.SyncResult{Versions: make(m.VersionMap, len(plan))}

	for _, name := range plan.Components() {
		level := plan[name]

		current, err := s.components.ReadVersion(name)
		if err != nil {
			return m.SyncResult{}, err
		}

		if current.Normalized {
			s.logger.Debug("version record missing or malformed, starting from 0.0.0", "component", name, "record", current.Record)
		}

		next := NextVersion(current.Version, level)

		content, err := s.components.RenderVersion(name, next)
		if err != nil {
			return m.SyncResult{}, err
		}

		result.Versions[name] = next
		result.Changes = append(result.Changes, m.VersionChange{
			Component: name,
			Level:     level,
			From:      current.Version,
			To:        next,
			Record:    s.components.RecordPath(name),
		})
		result.Writes = append(result.Writes, m.PendingWrite{Path: s.components.RecordPath(name), Content: content})
	}

	mf, err := s.manifest.Load()
	if err != nil {
		return m.SyncResult{}, err
	}

	result.PreviousAggregate = mf.Version
	updated := mf.Clone()
	listed := m.NewComponentSet()

	for i, entry := range updated.Entries {
		if next, ok := result.Versions[entry.Name]; ok {
			updated.Entries[i].Version = next.String()
			listed.Add(entry.Name)
		}
	}

	for _, name := range result.Versions.Components() {
		if listed.Has(name) {
			continue
		}

		warning := fmt.Sprintf("%s updated but not listed in %s", name, filepath.Base(string(s.manifest.Path())))
		s.logger.Warn(warning)
		result.Warnings = append(result.Warnings, warning)
	}

	aggregate, _ := result.Versions.Max()
	result.Aggregate = aggregate
	updated.Version = aggregate.String()
	result.Manifest = updated

	content, err := s.manifest.Render(updated)
	if err != nil {
		return m.SyncResult{}, err
	}

	result.Writes = append(result.Writes, m.PendingWrite{Path: s.manifest.Path(), Content: content})

	return result, nil
}

// Apply implements Synchronizer.
func (s *ManifestSynchronizer) Apply(result m.SyncResult) error {
	if len(result.Writes) == 0 {
		return nil
	}

	if err := s.writer.WriteAll(result.Writes); err != nil {
		return fmt.Errorf("write version records: %w", err)
	}

	for _, change := range result.Changes {
		s.logger.Debug("version written", "component", change.Component, "from", change.From, "to", change.To)
	}

	return nil
}
