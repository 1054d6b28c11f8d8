package headless

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/BrandonKowalski/wayfinder/pkg/wayfinder/internal"
	"github.com/BrandonKowalski/wayfinder/pkg/wayfinder/route"
	"github.com/BrandonKowalski/wayfinder/pkg/wayfinder/routable"
)

// Dispatcher is the UI thread a window completes transitions on.
// *Loop implements it, as does sdlui.MainThread.
type Dispatcher interface {
	Do(fn func())
}

// Window owns the root of a headless screen tree.
// Every method except the constructor must run on the window's dispatcher.
type Window struct {
	ui        Dispatcher
	registry  *Registry
	animation time.Duration
	logger    *slog.Logger
	root      *Screen
}

// WindowOption configures a Window.
type WindowOption func(*Window)

// WithAnimation delays the completion of animated transitions by d.
func WithAnimation(d time.Duration) WindowOption {
	return func(w *Window) {
		w.animation = d
	}
}

// WithWindowLogger replaces the internal wayfinder logger.
func WithWindowLogger(logger *slog.Logger) WindowOption {
	return func(w *Window) {
		if logger != nil {
			w.logger = logger
		}
	}
}

// NewWindow creates an empty window. Nothing is shown until InstallRoot.
func NewWindow(ui Dispatcher, registry *Registry, opts ...WindowOption) *Window {
	w := &Window{
		ui:       ui,
		registry: registry,
		logger:   internal.GetInternalLogger(),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Root implements navigator.Surface.
func (w *Window) Root() routable.Routable {
	if w.root == nil {
		return nil
	}
	return w.root
}

// Route returns the identifiers of the live chain.
func (w *Window) Route() route.Route {
	return routable.Identifiers(routable.Chain(w.Root()))
}

// Build creates the screen registered for id.
func (w *Window) Build(id route.Identifier, context any) (*Screen, bool) {
	b, ok := w.registry.builders[id]
	if !ok {
		return nil, false
	}
	s := b(w, context)
	s.context = context
	return s, true
}

// Factory returns a routable.Factory for id. The factory panics if id has
// no builder; manifests are validated up front so this is a wiring bug.
func (w *Window) Factory(id route.Identifier) routable.Factory {
	return func(context any) routable.Routable {
		s, ok := w.Build(id, context)
		if !ok {
			panic(fmt.Errorf("headless: no builder registered for %q", id))
		}
		return s
	}
}

// InstallRoot implements navigator.RootInstaller. It declines identifiers
// that have no builder.
func (w *Window) InstallRoot(id route.Identifier, context any, done routable.Completion) bool {
	s, ok := w.Build(id, context)
	if !ok {
		return false
	}

	if w.root != nil {
		w.logger.Debug("Replacing root screen", "from", w.root.id, "to", id)
	}
	s.parent = nil
	s.presentation = PresentedAsRoot
	w.root = s
	done()
	return true
}

// Push implements routable.Platform.
func (w *Window) Push(onto routable.Routable, screen routable.Routable, animated bool, done routable.Completion) {
	parent, child := w.screen(onto), w.screen(screen)
	parent.attach(child, Pushed)
	w.logger.Debug("Pushed screen", "screen", child.id, "onto", parent.id)
	w.complete(animated, done)
}

// Pop implements routable.Platform.
func (w *Window) Pop(screen routable.Routable, animated bool, done routable.Completion) {
	w.remove("pop", w.screen(screen), animated, done)
}

// Present implements routable.Platform.
func (w *Window) Present(from routable.Routable, screen routable.Routable, animated bool, done routable.Completion) {
	parent, child := w.screen(from), w.screen(screen)
	parent.attach(child, PresentedModally)
	w.logger.Debug("Presented screen", "screen", child.id, "from", parent.id)
	w.complete(animated, done)
}

// Dismiss implements routable.Platform.
func (w *Window) Dismiss(screen routable.Routable, animated bool, done routable.Completion) {
	w.remove("dismiss", w.screen(screen), animated, done)
}

func (w *Window) remove(op string, s *Screen, animated bool, done routable.Completion) {
	if s.parent == nil {
		w.logger.Warn("Cannot remove a screen without a parent", "op", op, "screen", s.id)
		done()
		return
	}
	parent := s.parent
	parent.detach()
	w.logger.Debug("Removed screen", "op", op, "screen", s.id, "from", parent.id)
	w.complete(animated, done)
}

// complete calls done now, or after the animation delay on the dispatcher.
func (w *Window) complete(animated bool, done routable.Completion) {
	if !animated || w.animation <= 0 {
		done()
		return
	}
	time.AfterFunc(w.animation, func() { w.ui.Do(done) })
}

func (w *Window) screen(r routable.Routable) *Screen {
	s, ok := r.(*Screen)
	if !ok {
		panic(fmt.Errorf("headless: %T is not a headless screen", r))
	}
	return s
}
