package sdlui

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/wayfinder/pkg/wayfinder/platform/headless"
)

// Run locks the calling goroutine to the OS main thread and runs main on
// another goroutine. It returns once main returns.
func Run(main func()) {
	sdl.Main(main)
}

// MainThread queues functions for the SDL main thread. Do never blocks, so it
// is safe to call from the main thread itself.
type MainThread struct {
	relay *headless.Loop
}

// NewMainThread starts the relay that hands queued functions to sdl.Do in order.
func NewMainThread() *MainThread {
	return &MainThread{relay: headless.NewLoop()}
}

// Do implements navigator.UIThread.
func (m *MainThread) Do(fn func()) {
	m.relay.Do(func() { sdl.Do(fn) })
}

// Sync runs fn on the main thread and waits for it.
// It must not be called from the main thread.
func (m *MainThread) Sync(fn func()) {
	m.relay.Sync(func() { sdl.Do(fn) })
}

// Close runs what is already queued and stops the relay.
func (m *MainThread) Close() {
	m.relay.Close()
}
