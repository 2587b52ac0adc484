package model

import (
	"fmt"
	"sort"
	"strings"
)

// BumpLevel is the magnitude of a semantic version increment.
// The zero value means no bump.
type BumpLevel int

// Bump levels in increasing severity.
const (
	BumpNone BumpLevel = iota
	BumpPatch
	BumpMinor
	BumpMajor
)

var bumpLevelNames = map[BumpLevel]string{
	BumpNone:  "none",
	BumpPatch: "patch",
	BumpMinor: "minor",
	BumpMajor: "major",
}

func (b BumpLevel) String() string {
	if name, ok := bumpLevelNames[b]; ok {
		return name
	}

	return fmt.Sprintf("BumpLevel(%d)", int(b))
}

// ParseBumpLevel converts "patch", "minor", "major" or "none" into a BumpLevel.
func ParseBumpLevel(s string) (BumpLevel, error) {
	needle := strings.ToLower(strings.TrimSpace(s))
	for level, name := range bumpLevelNames {
		if name == needle {
			return level, nil
		}
	}

	return BumpNone, fmt.Errorf("unknown bump level %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (b BumpLevel) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (b *BumpLevel) UnmarshalText(text []byte) error {
	level, err := ParseBumpLevel(string(text))
	if err != nil {
		return err
	}

	*b = level

	return nil
}

// Max returns the more severe of the two levels.
func (b BumpLevel) Max(other BumpLevel) BumpLevel {
	if other > b {
		return other
	}

	return b
}

// ComponentSet is a set of component names.
type ComponentSet map[string]struct{}

// NewComponentSet builds a set from names.
func NewComponentSet(names ...string) ComponentSet {
	set := make(ComponentSet, len(names))
	for _, name := range names {
		set.Add(name)
	}

	return set
}

// Add inserts name into the set.
func (s ComponentSet) Add(name string) {
	s[name] = struct{}{}
}

// Has reports whether name is in the set.
func (s ComponentSet) Has(name string) bool {
	_, ok := s[name]
	return ok
}

// Sorted returns the names in lexical order.
func (s ComponentSet) Sorted() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// Attribution ties a commit to its bump level and affected components.
type Attribution struct {
	Commit     CommitRecord
	Level      BumpLevel
	Components ComponentSet
}

// BumpPlan holds the highest bump level seen per component.
type BumpPlan map[string]BumpLevel

// Components returns the planned component names in lexical order.
func (p BumpPlan) Components() []string {
	names := make([]string, 0, len(p))
	for name := range p {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}
