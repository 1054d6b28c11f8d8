// Package headless is an in-memory screen tree for tests, the CLI, and
// hosts that navigate without drawing anything.
//
// A Loop plays the role of the UI thread: one goroutine owns the tree and
// runs every mutation in order. A Window holds the root screen and
// implements the navigator's Surface and RootInstaller as well as
// routable.Platform, so a single value wires the whole navigator:
//
//	loop := headless.NewLoop()
//	defer loop.Close()
//
//	registry := headless.NewRegistry().
//	    Register("home", func(w *headless.Window, _ any) *headless.Screen {
//	        return headless.NewScreen(w, "home", routable.Table{
//	            routable.ShowSource("detail"): routable.Push(w.Factory("detail")),
//	            routable.HideSource("detail"): routable.Pop(),
//	        })
//	    }).
//	    Register("detail", func(w *headless.Window, _ any) *headless.Screen {
//	        return headless.NewScreen(w, "detail", nil)
//	    })
//
//	window := headless.NewWindow(loop, registry)
//	nav := navigator.New(loop)
//	nav.Start(window, window, "home")
//
// Each screen shows at most one child: pushed, presented modally, or the
// selected tab of a tab container.
package headless
