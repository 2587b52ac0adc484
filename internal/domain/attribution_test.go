package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	m "github.com/mouse-blink/monobump/internal/model"
)

func TestPathResolver_Resolve(t *testing.T) {
	resolver := NewResolver("plugins")
	known := m.NewComponentSet("api", "web", "cli")

	tests := []struct {
		name  string
		scope string
		files []string
		want  []string
	}{
		{name: "scope only", scope: "api", want: []string{"api"}},
		{name: "unknown scope is ignored", scope: "deps", want: []string{}},
		{
			name:  "paths under components root",
			files: []string{"plugins/web/index.ts", "plugins/cli/main.ts", "README.md"},
			want:  []string{"cli", "web"},
		},
		{
			name:  "new component attributed by path",
			files: []string{"plugins/brand-new/.claude-plugin/plugin.json"},
			want:  []string{"brand-new"},
		},
		{
			name:  "union of scope and paths",
			scope: "api",
			files: []string{"plugins/web/a.go"},
			want:  []string{"api", "web"},
		},
		{
			name:  "similar prefixes do not match",
			files: []string{"plugins-old/web/a.go", "docs/plugins/web/a.go", "plugins/file-at-root.md"},
			want:  []string{},
		},
		{name: "nothing", files: []string{"Makefile"}, want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cc := m.ConventionalCommit{Type: "fix", Scope: tt.scope, Scoped: tt.scope != ""}

			got := resolver.Resolve(cc, tt.files, known)
			assert.Equal(t, tt.want, got.Sorted())
		})
	}
}

func TestNewResolver_NormalizesRoot(t *testing.T) {
	for _, root := range []string{"plugins/", "./plugins", "/plugins", `plugins\`} {
		t.Run(root, func(t *testing.T) {
			got := NewResolver(root).Resolve(m.ConventionalCommit{}, []string{"plugins/a/x"}, m.NewComponentSet())
			assert.Equal(t, []string{"a"}, got.Sorted())
		})
	}

	t.Run("nested root", func(t *testing.T) {
		got := NewResolver("packages/plugins").Resolve(m.ConventionalCommit{}, []string{"packages/plugins/a/x", "plugins/b/x"}, m.NewComponentSet())
		assert.Equal(t, []string{"a"}, got.Sorted())
	})
}

// A scope reused for something unrelated still attributes to the component
// with that exact name. Known limitation, kept on purpose: no fuzzy matching.
func TestPathResolver_AmbiguousScopeIsExactMatch(t *testing.T) {
	resolver := NewResolver("plugins")
	known := m.NewComponentSet("docs", "api")

	cc := m.ConventionalCommit{Type: "fix", Scope: "docs", Scoped: true}
	got := resolver.Resolve(cc, []string{"website/docs/index.md"}, known)
	assert.Equal(t, []string{"docs"}, got.Sorted())

	cc = m.ConventionalCommit{Type: "fix", Scope: "API", Scoped: true}
	got = resolver.Resolve(cc, nil, known)
	assert.Empty(t, got, "scope matching is case sensitive")
}
