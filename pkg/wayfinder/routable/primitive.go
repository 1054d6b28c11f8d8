package routable

import (
	"fmt"

	"github.com/BrandonKowalski/wayfinder/pkg/wayfinder/route"
)

// Direction says whether a transition adds or removes a screen.
type Direction int

const (
	Show Direction = iota
	Hide
)

func (d Direction) String() string {
	switch d {
	case Show:
		return "show"
	case Hide:
		return "hide"
	default:
		return fmt.Sprintf("direction(%d)", int(d))
	}
}

// TransitionSource is the lookup key of a declarative Table.
type TransitionSource struct {
	Identifier route.Identifier
	Direction  Direction
}

// ShowSource is shorthand for TransitionSource{id, Show}.
func ShowSource(id route.Identifier) TransitionSource {
	return TransitionSource{Identifier: id, Direction: Show}
}

// HideSource is shorthand for TransitionSource{id, Hide}.
func HideSource(id route.Identifier) TransitionSource {
	return TransitionSource{Identifier: id, Direction: Hide}
}

// Factory builds a new screen. The context is the payload passed to the
// navigation call, or nil.
type Factory func(context any) Routable

// DismissBehaviour selects what a modal dismissal removes.
type DismissBehaviour int

const (
	// DismissSelf dismisses the screen being hidden.
	DismissSelf DismissBehaviour = iota
	// DismissPresented dismisses whatever the matching screen presents.
	DismissPresented
)

func (b DismissBehaviour) String() string {
	if b == DismissPresented {
		return "presented"
	}
	return "self"
}

// Transition is everything a primitive needs to act.
type Transition struct {
	Request
	Direction Direction

	// Handler is the screen whose table matched.
	Handler  Routable
	Platform Platform
}

// Primitive is one concrete way to realize a transition.
// The variants are Push, Pop, PresentModally, DismissModally and Custom.
type Primitive interface {
	Perform(t Transition, done Completion)
	String() string
}

type pushPrimitive struct{ factory Factory }

// Push builds a screen and pushes it on top of the live leaf.
func Push(factory Factory) Primitive { return pushPrimitive{factory: factory} }

func (p pushPrimitive) Perform(t Transition, done Completion) {
	t.Platform.Push(t.From, p.factory(t.Context), t.Animated, done)
}

func (pushPrimitive) String() string { return "push" }

type popPrimitive struct{}

// Pop removes the screen being hidden from its navigation stack.
func Pop() Primitive { return popPrimitive{} }

func (popPrimitive) Perform(t Transition, done Completion) {
	t.Platform.Pop(t.From, t.Animated, done)
}

func (popPrimitive) String() string { return "pop" }

type presentPrimitive struct{ factory Factory }

// PresentModally builds a screen and presents it over the live leaf.
func PresentModally(factory Factory) Primitive { return presentPrimitive{factory: factory} }

func (p presentPrimitive) Perform(t Transition, done Completion) {
	t.Platform.Present(t.From, p.factory(t.Context), t.Animated, done)
}

func (presentPrimitive) String() string { return "present" }

type dismissPrimitive struct{ behaviour DismissBehaviour }

// DismissModally dismisses a presented screen.
func DismissModally(behaviour DismissBehaviour) Primitive {
	return dismissPrimitive{behaviour: behaviour}
}

func (p dismissPrimitive) Perform(t Transition, done Completion) {
	target := t.From
	if p.behaviour == DismissPresented {
		children := t.Handler.VisibleChildren()
		if len(children) == 0 {
			done()
			return
		}
		target = children[0]
	}
	t.Platform.Dismiss(target, t.Animated, done)
}

func (p dismissPrimitive) String() string { return "dismiss(" + p.behaviour.String() + ")" }

type customPrimitive struct {
	fn func(t Transition, done Completion)
}

// Custom runs fn in place of a platform primitive. fn owns done.
func Custom(fn func(t Transition, done Completion)) Primitive {
	return customPrimitive{fn: fn}
}

func (p customPrimitive) Perform(t Transition, done Completion) { p.fn(t, done) }

func (customPrimitive) String() string { return "custom" }
