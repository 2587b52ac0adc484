package domain

import m "github.com/mouse-blink/monobump/internal/model"

// NextVersion applies level to v. BumpNone returns v unchanged.
func NextVersion(v m.SemanticVersion, level m.BumpLevel) m.SemanticVersion {
	switch level {
	case m.BumpMajor:
		return m.SemanticVersion{Major: v.Major + 1}
	case m.BumpMinor:
		return m.SemanticVersion{Major: v.Major, Minor: v.Minor + 1}
	case m.BumpPatch:
		return m.SemanticVersion{Major: v.Major, Minor: v.Minor, Patch: v.Patch + 1}
	default:
		return v
	}
}
