package domain

import (
	"path"
	"strings"

	m "github.com/mouse-blink/monobump/internal/model"
)

// Resolver maps a classified commit to the components it affects.
type Resolver interface {
	Resolve(cc m.ConventionalCommit, files []string, known m.ComponentSet) m.ComponentSet
}

// PathResolver attributes commits by exact scope match and by changed
// paths under the components root.
type PathResolver struct {
	prefix string
}

// NewResolver returns a resolver for components living under componentsRoot.
func NewResolver(componentsRoot string) *PathResolver {
	root := strings.Trim(path.Clean("/"+strings.ReplaceAll(componentsRoot, "\\", "/")), "/")

	if root == "" {
		return &PathResolver{}
	}

	return &PathResolver{prefix: root + "/"}
}

// Resolve returns the union of the scope match and every
// <components root>/<name>/... path. Path names are included even when
// they are not known yet, so a component's first commit is attributed.
//
// Scope matching is exact: a scope that happens to equal an unrelated
// component's name attributes to that component.
func (r *PathResolver) Resolve(cc m.ConventionalCommit, files []string, known m.ComponentSet) m.ComponentSet {
	affected := m.NewComponentSet()

	if cc.Scope != "" && known.Has(cc.Scope) {
		affected.Add(cc.Scope)
	}

	for _, file := range files {
		if name, ok := r.componentOf(file); ok {
			affected.Add(name)
		}
	}

	return affected
}

func (r *PathResolver) componentOf(file string) (string, bool) {
	rest, ok := strings.CutPrefix(file, r.prefix)
	if !ok {
		return "", false
	}

	name, tail, ok := strings.Cut(rest, "/")
	if !ok || name == "" || tail == "" {
		return "", false
	}

	return name, true
}
