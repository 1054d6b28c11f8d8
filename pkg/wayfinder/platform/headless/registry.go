package headless

import (
	"sort"

	"github.com/BrandonKowalski/wayfinder/pkg/wayfinder/route"
)

// Builder creates a screen for a window. The context is the navigation
// payload, or nil.
type Builder func(w *Window, context any) *Screen

// Registry maps identifiers to the builders that create their screens.
type Registry struct {
	builders map[route.Identifier]Builder
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{builders: make(map[route.Identifier]Builder)}
}

// Register adds a builder, replacing any previous one for id.
func (r *Registry) Register(id route.Identifier, b Builder) *Registry {
	r.builders[id] = b
	return r
}

// Has reports whether id has a builder.
func (r *Registry) Has(id route.Identifier) bool {
	_, ok := r.builders[id]
	return ok
}

// Identifiers returns the registered identifiers, sorted.
func (r *Registry) Identifiers() []route.Identifier {
	ids := make([]route.Identifier, 0, len(r.builders))
	for id := range r.builders {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
