package sdlui

import (
	"github.com/BrandonKowalski/wayfinder/pkg/wayfinder/locale"
	"github.com/BrandonKowalski/wayfinder/pkg/wayfinder/route"
)

// TitleBar keeps a window title in sync with the applied route.
type TitleBar struct {
	ui     *MainThread
	window *Window
	titles *locale.Titles
	prefix string
}

// NewTitleBar creates a title bar that shows prefix followed by the
// breadcrumb of the route.
func NewTitleBar(ui *MainThread, window *Window, titles *locale.Titles) *TitleBar {
	return &TitleBar{ui: ui, window: window, titles: titles, prefix: window.title}
}

// Observe is a navigator.OnApplied callback.
func (t *TitleBar) Observe(r route.Route) {
	title := t.prefix
	if len(r) > 0 {
		title += " - " + t.titles.Breadcrumb(r)
	}
	t.ui.Do(func() { t.window.SetTitle(title) })
}
