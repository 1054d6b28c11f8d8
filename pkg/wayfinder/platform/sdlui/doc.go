// Package sdlui runs wayfinder on the SDL main thread.
//
// SDL requires every window call to happen on the thread that initialized
// it. MainThread satisfies navigator.UIThread by forwarding work through
// sdl.Do, so the navigator, the headless screen tree and the window all
// mutate state on that one thread. The program must enter through Run.
//
//	sdlui.Run(func() {
//		ui := sdlui.NewMainThread()
//		win, err := sdlui.OpenWindow("wayfinder", sdlui.WindowOptions{Resizable: true})
//		...
//		titles := sdlui.NewTitleBar(ui, win, localeTitles)
//		nav := navigator.New(ui, navigator.OnApplied(titles.Observe))
//		...
//	})
package sdlui
