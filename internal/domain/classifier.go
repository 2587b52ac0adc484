package domain

import (
	"regexp"
	"strings"

	m "github.com/mouse-blink/monobump/internal/model"
)

var conventionalSubject = regexp.MustCompile(`^(\w+)(?:\(([^)]*)\))?(!)?\s*:\s*(.+)$`)

// Classifier parses commit messages into conventional commits.
type Classifier interface {
	// Classify returns false when the subject does not follow the
	// type[(scope)][!]: description grammar.
	Classify(subject, body string) (m.ConventionalCommit, bool)

	// IsNoBump reports whether the type is explicitly recognized as never
	// affecting versions, as opposed to unknown.
	IsNoBump(commitType string) bool
}

// RuleClassifier classifies commits with a fixed rule set.
type RuleClassifier struct {
	rules m.Rules
}

// NewClassifier returns a classifier using rules. Lookups are by lowercase type.
func NewClassifier(rules m.Rules) *RuleClassifier {
	normalized := m.Rules{
		BumpTypes:       make(map[string]m.BumpLevel, len(rules.BumpTypes)),
		NoBumpTypes:     make(map[string]struct{}, len(rules.NoBumpTypes)),
		BreakingMarkers: append([]string(nil), rules.BreakingMarkers...),
	}

	for t, level := range rules.BumpTypes {
		normalized.BumpTypes[strings.ToLower(t)] = level
	}

	for t := range rules.NoBumpTypes {
		normalized.NoBumpTypes[strings.ToLower(t)] = struct{}{}
	}

	return &RuleClassifier{rules: normalized}
}

// Classify implements Classifier.
func (c *RuleClassifier) Classify(subject, body string) (m.ConventionalCommit, bool) {
	trimmed := strings.TrimSpace(subject)

	match := conventionalSubject.FindStringSubmatchIndex(trimmed)
	if match == nil {
		return m.ConventionalCommit{}, false
	}

	cc := m.ConventionalCommit{
		Type:     strings.ToLower(trimmed[match[2]:match[3]]),
		Scoped:   match[4] >= 0,
		Breaking: match[6] >= 0 || c.hasBreakingMarker(body),
	}

	if cc.Scoped {
		cc.Scope = trimmed[match[4]:match[5]]
	}

	cc.Level = c.level(cc)

	return cc, true
}

// IsNoBump implements Classifier.
func (c *RuleClassifier) IsNoBump(commitType string) bool {
	_, ok := c.rules.NoBumpTypes[strings.ToLower(commitType)]
	return ok
}

func (c *RuleClassifier) level(cc m.ConventionalCommit) m.BumpLevel {
	if cc.Breaking {
		return m.BumpMajor
	}

	if level, ok := c.rules.BumpTypes[cc.Type]; ok {
		return level
	}

	return m.BumpNone
}

func (c *RuleClassifier) hasBreakingMarker(body string) bool {
	for _, marker := range c.rules.BreakingMarkers {
		if marker != "" && strings.Contains(body, marker) {
			return true
		}
	}

	return false
}
