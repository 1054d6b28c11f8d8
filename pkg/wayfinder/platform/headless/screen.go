package headless

import (
	"github.com/BrandonKowalski/wayfinder/pkg/wayfinder/route"
	"github.com/BrandonKowalski/wayfinder/pkg/wayfinder/routable"
)

// Presentation records how a screen was attached to its parent.
type Presentation int

const (
	PresentedAsRoot Presentation = iota
	Pushed
	PresentedModally
	SelectedTab
)

func (p Presentation) String() string {
	switch p {
	case Pushed:
		return "pushed"
	case PresentedModally:
		return "modal"
	case SelectedTab:
		return "tab"
	default:
		return "root"
	}
}

// Screen is a live headless screen. It shows at most one child.
type Screen struct {
	*routable.Configured

	id           route.Identifier
	window       *Window
	context      any
	parent       *Screen
	child        *Screen
	presentation Presentation
	tabs         map[route.Identifier]routable.Factory
}

// NewScreen creates a screen whose show and hide behaviour comes from table.
func NewScreen(w *Window, id route.Identifier, table routable.Table) *Screen {
	s := &Screen{id: id, window: w}
	s.Configured = routable.NewConfigured(s, w, table)
	return s
}

// NewTabs creates a tab container. The initial tab is built immediately;
// switching tabs goes through Change and rebuilds the selected tab.
func NewTabs(w *Window, id route.Identifier, table routable.Table, tabs []route.Identifier, initial route.Identifier) *Screen {
	s := NewScreen(w, id, table)
	s.tabs = make(map[route.Identifier]routable.Factory, len(tabs))
	for _, tab := range tabs {
		s.tabs[tab] = w.Factory(tab)
	}
	if f, ok := s.tabs[initial]; ok {
		s.attach(w.screen(f(nil)), SelectedTab)
	}
	return s
}

// RouteIdentifier implements routable.Routable.
func (s *Screen) RouteIdentifier() route.Identifier { return s.id }

// VisibleChildren implements routable.Routable.
func (s *Screen) VisibleChildren() []routable.Routable {
	if s.child == nil {
		return nil
	}
	return []routable.Routable{s.child}
}

// Change selects a tab on a tab container. Other screens drop their child
// subtree and show To through their own table, declining if it has no entry.
func (s *Screen) Change(req routable.ChangeRequest, done routable.Completion) bool {
	if f, ok := s.tabs[req.To]; ok {
		s.attach(s.window.screen(f(req.Context)), SelectedTab)
		s.window.complete(req.Animated, done)
		return true
	}

	if !s.Handles(routable.ShowSource(req.To)) {
		return false
	}
	s.detach()
	return s.Show(routable.Request{
		Identifier: req.To,
		From:       s,
		Animated:   req.Animated,
		Context:    req.Context,
	}, done)
}

// Presentation returns how the screen is attached to its parent.
func (s *Screen) Presentation() Presentation { return s.presentation }

// Context returns the payload the screen was built with.
func (s *Screen) Context() any { return s.context }

// IsTabs reports whether the screen is a tab container.
func (s *Screen) IsTabs() bool { return s.tabs != nil }

func (s *Screen) String() string { return string(s.id) }

func (s *Screen) attach(child *Screen, p Presentation) {
	s.detach()
	child.parent = s
	child.presentation = p
	s.child = child
}

func (s *Screen) detach() {
	if s.child == nil {
		return
	}
	s.child.parent = nil
	s.child = nil
}
