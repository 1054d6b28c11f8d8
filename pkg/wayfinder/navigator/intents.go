package navigator

import "github.com/BrandonKowalski/wayfinder/pkg/wayfinder/route"

// Intent is a navigation request produced by the application's action layer.
// Each intent maps to one Navigator entry point.
type Intent interface {
	apply(n *Navigator) *Future
}

// Navigate replaces the whole route.
type Navigate struct {
	Route    route.Route
	Animated bool
	Context  any
}

// Show appends screens above the current leaf.
type Show struct {
	Identifiers []route.Identifier
	Animated    bool
	Context     any
}

// Hide truncates the route back to, and excluding, Identifier.
// An empty Identifier hides the current leaf.
type Hide struct {
	Identifier route.Identifier
	Animated   bool
	Context    any
	Atomic     bool
}

func (i Navigate) apply(n *Navigator) *Future {
	return n.ChangeRoute(i.Route, i.Animated, i.Context)
}

func (i Show) apply(n *Navigator) *Future {
	return n.Show(i.Identifiers, i.Animated, i.Context)
}

func (i Hide) apply(n *Navigator) *Future {
	return n.Hide(i.Identifier, i.Animated, i.Context, i.Atomic)
}

// Dispatch routes an intent to its entry point.
func (n *Navigator) Dispatch(intent Intent) *Future {
	return intent.apply(n)
}
