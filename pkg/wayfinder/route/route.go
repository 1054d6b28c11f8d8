// Package route defines the path types the navigator reconciles against.
//
// A Route is an ordered list of screen identifiers, root first. It is a plain
// value: copy it, compare it, pass it across goroutines freely. Nothing in
// this package mutates a Route in place.
package route

import "strings"

// Identifier names a kind of screen.
// Identifiers only need to be unique within one live chain.
type Identifier string

// Route is the desired screen stack, root first.
type Route []Identifier

// New builds a Route from identifiers.
func New(ids ...Identifier) Route {
	return Route(ids).Clone()
}

// ParsePath splits a slash separated path ("home/list/detail") into a Route.
// Empty segments are dropped.
func ParsePath(path string) Route {
	var r Route
	for _, seg := range strings.Split(path, "/") {
		seg = strings.TrimSpace(seg)
		if seg == "" {
			continue
		}
		r = append(r, Identifier(seg))
	}
	return r
}

func (r Route) String() string {
	parts := make([]string, len(r))
	for i, id := range r {
		parts[i] = string(id)
	}
	return strings.Join(parts, "/")
}

// Equal reports whether both routes name the same screens in the same order.
func (r Route) Equal(other Route) bool {
	if len(r) != len(other) {
		return false
	}
	for i := range r {
		if r[i] != other[i] {
			return false
		}
	}
	return true
}

// HasPrefix reports whether r starts with every identifier of prefix.
func (r Route) HasPrefix(prefix Route) bool {
	return len(r) >= len(prefix) && r[:len(prefix)].Equal(prefix)
}

// Leaf returns the last identifier of the route.
func (r Route) Leaf() (Identifier, bool) {
	if len(r) == 0 {
		return "", false
	}
	return r[len(r)-1], true
}

// Clone returns a copy that shares no backing array with r.
func (r Route) Clone() Route {
	if r == nil {
		return nil
	}
	out := make(Route, len(r))
	copy(out, r)
	return out
}

// Append returns a new route with ids added after the leaf.
func (r Route) Append(ids ...Identifier) Route {
	out := make(Route, 0, len(r)+len(ids))
	out = append(out, r...)
	return append(out, ids...)
}

// TruncateBefore returns the prefix of r that ends just before the last
// occurrence of id. The second result is false when id is not in r.
func (r Route) TruncateBefore(id Identifier) (Route, bool) {
	for i := len(r) - 1; i >= 0; i-- {
		if r[i] == id {
			return r[:i].Clone(), true
		}
	}
	return nil, false
}
