// Package reconcile turns a live handler chain and a desired route into the
// ordered list of atomic changes that transform one into the other.
package reconcile

import (
	"fmt"

	"github.com/BrandonKowalski/wayfinder/pkg/wayfinder/route"
	"github.com/BrandonKowalski/wayfinder/pkg/wayfinder/routable"
)

// Kind names a RouteChange variant.
type Kind int

const (
	KindShow Kind = iota
	KindHide
	KindChange
	KindRootChange
)

func (k Kind) String() string {
	switch k {
	case KindShow:
		return "show"
	case KindHide:
		return "hide"
	case KindChange:
		return "change"
	case KindRootChange:
		return "root_change"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// RouteChange is one unit of navigation work.
// It is produced by Diff and consumed exactly once by the navigator.
type RouteChange interface {
	Kind() Kind
	String() string
	isRouteChange()
}

// Show adds a screen above the live leaf. It carries only an identifier:
// the handler that will receive it may not exist yet when the batch is built.
type Show struct {
	Identifier route.Identifier
}

// Hide removes a live screen and everything above it.
type Hide struct {
	Handler routable.Routable
}

// Change asks Handler to replace the child subtree From with To.
type Change struct {
	Handler routable.Routable
	From    route.Identifier
	To      route.Identifier
}

// RootChange tears the hierarchy down and installs a new root.
// From is empty when nothing was installed yet.
type RootChange struct {
	From route.Identifier
	To   route.Identifier
}

func (Show) Kind() Kind       { return KindShow }
func (Hide) Kind() Kind       { return KindHide }
func (Change) Kind() Kind     { return KindChange }
func (RootChange) Kind() Kind { return KindRootChange }

func (Show) isRouteChange()       {}
func (Hide) isRouteChange()       {}
func (Change) isRouteChange()     {}
func (RootChange) isRouteChange() {}

func (c Show) String() string { return fmt.Sprintf("show(%s)", c.Identifier) }

func (c Hide) String() string { return fmt.Sprintf("hide(%s)", c.Handler.RouteIdentifier()) }

func (c Change) String() string {
	return fmt.Sprintf("change(%s: %s -> %s)", c.Handler.RouteIdentifier(), c.From, c.To)
}

func (c RootChange) String() string {
	from := c.From
	if from == "" {
		from = "<none>"
	}
	return fmt.Sprintf("root_change(%s -> %s)", from, c.To)
}
