package domain

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	m "github.com/mouse-blink/monobump/internal/model"
)

func attribution(hash string, level m.BumpLevel, components ...string) m.Attribution {
	return m.Attribution{
		Commit:     m.CommitRecord{Hash: hash, Parents: []string{"p"}},
		Level:      level,
		Components: m.NewComponentSet(components...),
	}
}

func permutations(items []m.Attribution) [][]m.Attribution {
	if len(items) <= 1 {
		return [][]m.Attribution{append([]m.Attribution(nil), items...)}
	}

	var out [][]m.Attribution

	for i := range items {
		rest := make([]m.Attribution, 0, len(items)-1)
		rest = append(rest, items[:i]...)
		rest = append(rest, items[i+1:]...)

		for _, p := range permutations(rest) {
			out = append(out, append([]m.Attribution{items[i]}, p...))
		}
	}

	return out
}

func TestAggregate(t *testing.T) {
	t.Run("highest level wins per component", func(t *testing.T) {
		plan := Aggregate([]m.Attribution{
			attribution("a", m.BumpPatch, "core"),
			attribution("b", m.BumpMinor, "core", "web"),
			attribution("c", m.BumpPatch, "web"),
			attribution("d", m.BumpMajor, "cli"),
		})

		assert.Equal(t, m.BumpPlan{"core": m.BumpMinor, "web": m.BumpMinor, "cli": m.BumpMajor}, plan)
	})

	t.Run("merge commits are excluded", func(t *testing.T) {
		merge := attribution("m", m.BumpMajor, "core")
		merge.Commit.Parents = []string{"p1", "p2"}

		plan := Aggregate([]m.Attribution{merge, attribution("a", m.BumpPatch, "core")})
		assert.Equal(t, m.BumpPlan{"core": m.BumpPatch}, plan)
	})

	t.Run("no bump level is excluded", func(t *testing.T) {
		plan := Aggregate([]m.Attribution{attribution("a", m.BumpNone, "core")})
		assert.Empty(t, plan)
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Empty(t, Aggregate(nil))
	})
}

func TestAggregate_OrderIndependent(t *testing.T) {
	merge := attribution("m", m.BumpMajor, "web")
	merge.Commit.Parents = []string{"p1", "p2"}

	commits := []m.Attribution{
		attribution("a", m.BumpPatch, "core", "web"),
		attribution("b", m.BumpMinor, "core"),
		attribution("c", m.BumpMajor, "cli"),
		attribution("d", m.BumpPatch, "cli", "web"),
		attribution("e", m.BumpNone, "docs"),
		merge,
	}

	want := m.BumpPlan{"core": m.BumpMinor, "web": m.BumpPatch, "cli": m.BumpMajor}

	perms := permutations(commits)
	assert.Len(t, perms, 720)

	for i, p := range perms {
		assert.Equal(t, want, Aggregate(p), fmt.Sprintf("permutation %d", i))
	}
}
