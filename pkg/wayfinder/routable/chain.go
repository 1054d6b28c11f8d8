package routable

import "github.com/BrandonKowalski/wayfinder/pkg/wayfinder/route"

// Chain walks the live tree from root to leaf.
// Must be called on the UI thread. A nil root yields an empty chain.
func Chain(root Routable) []Routable {
	if root == nil {
		return nil
	}

	chain := []Routable{root}
	node := root
	for {
		children := node.VisibleChildren()
		if len(children) == 0 {
			return chain
		}
		chain = append(chain, children...)
		node = children[len(children)-1]
	}
}

// Identifiers returns the route a chain currently displays.
func Identifiers(chain []Routable) route.Route {
	r := make(route.Route, len(chain))
	for i, h := range chain {
		r[i] = h.RouteIdentifier()
	}
	return r
}

// IndexOf returns the position of h in chain, or -1.
func IndexOf(chain []Routable, h Routable) int {
	for i, c := range chain {
		if c == h {
			return i
		}
	}
	return -1
}
