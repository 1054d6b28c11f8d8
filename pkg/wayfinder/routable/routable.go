package routable

import "github.com/BrandonKowalski/wayfinder/pkg/wayfinder/route"

// Completion signals that a platform transition has finished.
// It must be called exactly once, from the UI thread.
type Completion func()

// Request describes a show or hide being offered to a screen.
type Request struct {
	// Identifier is the screen to show or hide.
	Identifier route.Identifier

	// From is the live leaf for a show, or the screen being removed for a hide.
	From Routable

	Animated bool

	// Context is an opaque payload handed to screen factories.
	Context any
}

// ChangeRequest asks a screen to swap the child subtree shown above it.
type ChangeRequest struct {
	From     route.Identifier
	To       route.Identifier
	Animated bool
	Context  any
}

// Routable is a live screen.
//
// Show and Hide return false to decline, in which case the navigator keeps
// searching toward the root. Returning true means the screen owns the
// transition and will call done. Change has no fallback: a false return is a
// configuration error.
//
// Implementations must be pointer types; the navigator compares handlers by
// identity.
type Routable interface {
	RouteIdentifier() route.Identifier
	VisibleChildren() []Routable
	Show(req Request, done Completion) bool
	Hide(req Request, done Completion) bool
	Change(req ChangeRequest, done Completion) bool
}

// Platform mutates the native containment graph.
// All methods run on the UI thread and call done when the transition ends.
type Platform interface {
	Push(onto Routable, screen Routable, animated bool, done Completion)
	Pop(screen Routable, animated bool, done Completion)
	Present(from Routable, screen Routable, animated bool, done Completion)
	Dismiss(screen Routable, animated bool, done Completion)
}
