// Package routable defines the protocol live screens implement so the
// navigator can find who handles a transition.
//
// Every live screen is a Routable. The navigator snapshots the live chain by
// walking VisibleChildren from the root, then asks screens in that chain
// whether they can show or hide a given identifier. The first screen that
// accepts performs the transition and calls the Completion when the platform
// has finished animating.
//
// # Declarative Screens
//
// Most screens never implement Show and Hide by hand. They embed a
// *Configured built from a Table that maps (identifier, direction) pairs to
// transition primitives:
//
//	type Home struct {
//	    *routable.Configured
//	}
//
//	func NewHome(p routable.Platform) *Home {
//	    h := &Home{}
//	    h.Configured = routable.NewConfigured(h, p, routable.Table{
//	        routable.ShowSource("detail"): routable.Push(newDetail),
//	        routable.HideSource("detail"): routable.Pop(),
//	        routable.ShowSource("login"):  routable.PresentModally(newLogin),
//	        routable.HideSource("login"):  routable.DismissModally(routable.DismissSelf),
//	    })
//	    return h
//	}
//
// A lookup miss declines the request so the search continues toward the root.
//
// # Walking the Chain
//
// VisibleChildren returns what a screen currently shows above itself: the
// pushed stack for a navigation container, the presented modal, or the
// selected tab. Chain follows the last child until a screen shows nothing.
// The resulting slice is the only handler list the navigator iterates; it
// never probes screens for optional methods.
package routable
