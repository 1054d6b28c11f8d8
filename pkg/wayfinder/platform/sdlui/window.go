package sdlui

import (
	"fmt"
	"os"
	"strconv"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/wayfinder/pkg/wayfinder/constants"
	"github.com/BrandonKowalski/wayfinder/pkg/wayfinder/internal"
)

const (
	devWidth  = 1024
	devHeight = 768
)

// Window is an SDL window whose title follows the navigator.
// Every method must run on the main thread.
type Window struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	title    string
}

// OpenWindow initializes SDL video and opens a window sized to the display.
// In dev mode the window is decorated and sized from WINDOW_WIDTH and
// WINDOW_HEIGHT. Must run on the main thread.
func OpenWindow(title string, opts WindowOptions) (*Window, error) {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return nil, fmt.Errorf("sdl init: %w", err)
	}

	if opts.IsZero() {
		opts = WindowOptions{Resizable: true}
	}

	x, y := int32(sdl.WINDOWPOS_UNDEFINED), int32(sdl.WINDOWPOS_UNDEFINED)
	var width, height int32

	if constants.IsDevMode() {
		opts.Borderless = false
		x, y = 50, 50
		width = envSize(constants.WindowWidthEnvVar, devWidth)
		height = envSize(constants.WindowHeightEnvVar, devHeight)
	} else {
		mode, err := sdl.GetCurrentDisplayMode(0)
		if err != nil {
			internal.GetInternalLogger().Error("Failed to get display mode", "error", err)
			mode.W, mode.H = devWidth, devHeight
		}
		width, height = mode.W, mode.H
	}

	internal.GetInternalLogger().Debug("Opening SDL window", "width", width, "height", height)

	window, err := sdl.CreateWindow(title, x, y, width, height, opts.flags())
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("create window: %w", err)
	}

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC)
	if err != nil {
		window.Destroy()
		sdl.Quit()
		return nil, fmt.Errorf("create renderer: %w", err)
	}

	return &Window{window: window, renderer: renderer, title: title}, nil
}

func envSize(name string, fallback int32) int32 {
	v := os.Getenv(name)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 32)
	if err != nil {
		internal.GetInternalLogger().Warn("Invalid window size; using default", "env", name, "value", v, "error", err)
		return fallback
	}
	return int32(n)
}

// Title returns the current window title.
func (w *Window) Title() string { return w.title }

// SetTitle replaces the window title.
func (w *Window) SetTitle(title string) {
	w.title = title
	w.window.SetTitle(title)
}

// Frame drains pending events and presents a blank frame. It returns false
// once the user has asked to quit.
func (w *Window) Frame() bool {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		if _, ok := event.(*sdl.QuitEvent); ok {
			return false
		}
	}

	w.renderer.SetDrawColor(0, 0, 0, 255)
	w.renderer.Clear()
	w.renderer.Present()
	return true
}

// Close destroys the window and shuts SDL down.
func (w *Window) Close() {
	w.renderer.Destroy()
	w.window.Destroy()
	sdl.Quit()
}
