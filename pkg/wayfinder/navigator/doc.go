// Package navigator reconciles the live screen stack against the route a
// caller asks for.
//
// A Navigator owns one serial worker. Every call (ChangeRoute, Show, Hide or
// Dispatch with an Intent) records what the caller wants and queues it. The
// worker takes batches in FIFO order. For each one it snapshots the live chain
// on the UI thread, diffs it against the target with reconcile.Diff, and
// performs the resulting changes one at a time. The next change never starts
// before the previous one has called its completion or timed out, so at most
// one mutation of the screen tree is in flight.
//
// # Basic Usage
//
//	loop := headless.NewLoop()
//	window := headless.NewWindow(loop, registry)
//
//	nav := navigator.New(loop, navigator.WithTimeout(2*time.Second))
//	nav.Start(window, window, "home")
//
//	nav.Show([]route.Identifier{"list", "detail"}, true, nil)
//	res, err := nav.Hide("list", true, nil, true).Wait(ctx)
//
// Each call returns a Future that resolves once its whole batch has been
// applied. Callers are never blocked by the worker.
//
// # Resolution
//
// A Show is offered to the live chain leaf first, then each screen toward
// the root, and finally to the RootInstaller. A Hide is offered to the
// target screen, then toward the root. A Change goes only to the screen the
// diff names. A RootChange goes only to the RootInstaller. When nobody
// accepts, the navigator reports an *UnhandledTransitionError through its
// FatalHandler, which panics by default: an unreachable screen is a wiring
// bug, not a runtime condition.
//
// # Subtree Replacement
//
// A Change or RootChange only names the first screen that differs. Once it
// completes, the worker diffs again and shows whatever the target still
// lacks. A container that installs a default child, such as a tab bar, may
// leave the live route longer than the target.
//
// # Timeouts
//
// A screen that never calls its completion stalls only its own change. After
// the timeout the navigator logs a warning and moves on, and the batch's
// Future still resolves.
package navigator
