package model

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// SemanticVersion is a major.minor.patch triple.
type SemanticVersion struct {
	Major uint64
	Minor uint64
	Patch uint64
}

// ZeroVersion is what malformed or missing versions normalize to.
var ZeroVersion = SemanticVersion{}

// ParseVersion reads "major.minor.patch". Anything else, including signs,
// prefixes and prerelease suffixes, yields ZeroVersion with ok=false.
func ParseVersion(s string) (SemanticVersion, bool) {
	parts := strings.Split(strings.TrimSpace(s), ".")
	if len(parts) != 3 {
		return ZeroVersion, false
	}

	var fields [3]uint64

	for i, part := range parts {
		n, err := strconv.ParseUint(part, 10, 64)
		if err != nil {
			return ZeroVersion, false
		}

		fields[i] = n
	}

	return SemanticVersion{Major: fields[0], Minor: fields[1], Patch: fields[2]}, true
}

// MustParseVersion is ParseVersion for literals known to be valid.
func MustParseVersion(s string) SemanticVersion {
	v, ok := ParseVersion(s)
	if !ok {
		panic(fmt.Sprintf("invalid semantic version %q", s))
	}

	return v
}

func (v SemanticVersion) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// Compare orders versions by (major, minor, patch) as integers and returns
// -1, 0 or +1.
func (v SemanticVersion) Compare(other SemanticVersion) int {
	switch {
	case v.Major != other.Major:
		return cmpUint(v.Major, other.Major)
	case v.Minor != other.Minor:
		return cmpUint(v.Minor, other.Minor)
	default:
		return cmpUint(v.Patch, other.Patch)
	}
}

// Less reports whether v orders before other.
func (v SemanticVersion) Less(other SemanticVersion) bool {
	return v.Compare(other) < 0
}

// MarshalText implements encoding.TextMarshaler.
func (v SemanticVersion) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Malformed text
// normalizes to ZeroVersion instead of failing.
func (v *SemanticVersion) UnmarshalText(text []byte) error {
	*v, _ = ParseVersion(string(text))
	return nil
}

func cmpUint(a, b uint64) int {
	if a < b {
		return -1
	}

	if a > b {
		return 1
	}

	return 0
}

// VersionMap maps component names to their new versions.
type VersionMap map[string]SemanticVersion

// Components returns the component names in lexical order.
func (vm VersionMap) Components() []string {
	names := make([]string, 0, len(vm))
	for name := range vm {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// Max returns the highest version in the map and false when the map is empty.
func (vm VersionMap) Max() (SemanticVersion, bool) {
	var (
		highest SemanticVersion
		found   bool
	)

	for _, v := range vm {
		if !found || highest.Less(v) {
			highest = v
			found = true
		}
	}

	return highest, found
}
