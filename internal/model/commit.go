// Package model defines the data structures for version resolution.
package model

const shortHashLen = 7

// CommitRecord is one commit as supplied by a history source.
type CommitRecord struct {
	Hash    string   `json:"hash" yaml:"hash"`
	Parents []string `json:"parents" yaml:"parents"`
	Subject string   `json:"subject" yaml:"subject"`
	Body    string   `json:"body" yaml:"body"`
}

// IsMerge reports whether the commit has more than one parent.
func (c CommitRecord) IsMerge() bool {
	return len(c.Parents) > 1
}

// Short returns the abbreviated commit hash.
func (c CommitRecord) Short() string {
	if len(c.Hash) > shortHashLen {
		return c.Hash[:shortHashLen]
	}

	return c.Hash
}

// ConventionalCommit is the parsed form of a conventional commit subject.
type ConventionalCommit struct {
	Type string
	// Scope is the text between the parentheses. Scoped is false when the
	// subject has no parentheses at all, so `feat():` and `feat:` differ.
	Scope    string
	Scoped   bool
	Breaking bool
	Level    BumpLevel
}

// Reference is a point in history commits are scanned from.
type Reference struct {
	Name string `json:"name" yaml:"name"`
	Hash string `json:"hash,omitempty" yaml:"hash,omitempty"`
}

func (r Reference) String() string {
	return r.Name
}
