package model

// ComponentVersion is a discovered component and its recorded version.
type ComponentVersion struct {
	Name    string          `json:"name" yaml:"name"`
	Version SemanticVersion `json:"version" yaml:"version"`
	Record  Path            `json:"record" yaml:"record"`
	// Normalized is set when the record was missing or malformed and the
	// version fell back to 0.0.0.
	Normalized bool `json:"normalized,omitempty" yaml:"normalized,omitempty"`
}

// ManifestEntry is one component listed in the aggregate manifest.
type ManifestEntry struct {
	Name    string
	Version string
}

// Manifest is the root record listing all components.
// Versions are kept as raw text so that untouched entries round-trip as-is.
type Manifest struct {
	Version string
	Entries []ManifestEntry
}

// Clone returns a deep copy.
func (mf Manifest) Clone() Manifest {
	entries := make([]ManifestEntry, len(mf.Entries))
	copy(entries, mf.Entries)

	return Manifest{Version: mf.Version, Entries: entries}
}

// Rules is the classification configuration for conventional commits.
type Rules struct {
	// BumpTypes maps lowercase commit types to the level they trigger.
	BumpTypes map[string]BumpLevel
	// NoBumpTypes are recognized types that never trigger a bump.
	NoBumpTypes map[string]struct{}
	// BreakingMarkers are body substrings that make a commit breaking.
	BreakingMarkers []string
}

// DefaultRules returns the standard conventional commits rule set.
func DefaultRules() Rules {
	return Rules{
		BumpTypes: map[string]BumpLevel{
			"fix":  BumpPatch,
			"feat": BumpMinor,
		},
		NoBumpTypes: map[string]struct{}{
			"docs":     {},
			"chore":    {},
			"style":    {},
			"test":     {},
			"ci":       {},
			"refactor": {},
			"build":    {},
			"perf":     {},
		},
		BreakingMarkers: []string{"BREAKING CHANGE", "BREAKING-CHANGE"},
	}
}
