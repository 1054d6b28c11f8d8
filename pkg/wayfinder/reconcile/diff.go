package reconcile

import (
	"github.com/BrandonKowalski/wayfinder/pkg/wayfinder/route"
	"github.com/BrandonKowalski/wayfinder/pkg/wayfinder/routable"
)

// CommonIndex returns the last index at which old and target agree, scanning
// from the root. It returns -1 when the roots differ or either side is empty.
func CommonIndex(old []routable.Routable, target route.Route) int {
	common := -1
	for i := 0; i < len(old) && i < len(target); i++ {
		if old[i].RouteIdentifier() != target[i] {
			break
		}
		common = i
	}
	return common
}

// Diff computes the changes that turn the live chain old into target.
//
// Removals are emitted leaf first, additions root first. When atomic is set,
// a removal of several trailing screens collapses into a single Hide of the
// lowest one; its handler is expected to remove everything above it.
// A divergence below the root yields one Change at the last shared screen,
// which owns replacing its whole subtree. A divergence at the root yields one
// RootChange.
//
// target must not be empty.
func Diff(old []routable.Routable, target route.Route, atomic bool) []RouteChange {
	if len(target) == 0 {
		return nil
	}

	common := CommonIndex(old, target)

	switch {
	case common == len(old)-1 && common == len(target)-1:
		return nil

	case common == -1:
		var from route.Identifier
		if len(old) > 0 {
			from = old[0].RouteIdentifier()
		}
		return []RouteChange{RootChange{From: from, To: target[0]}}

	case common == len(target)-1:
		if atomic {
			return []RouteChange{Hide{Handler: old[common+1]}}
		}
		changes := make([]RouteChange, 0, len(old)-common-1)
		for i := len(old) - 1; i > common; i-- {
			changes = append(changes, Hide{Handler: old[i]})
		}
		return changes

	case common == len(old)-1:
		changes := make([]RouteChange, 0, len(target)-common-1)
		for i := common + 1; i < len(target); i++ {
			changes = append(changes, Show{Identifier: target[i]})
		}
		return changes

	default:
		return []RouteChange{Change{
			Handler: old[common],
			From:    old[common+1].RouteIdentifier(),
			To:      target[common+1],
		}}
	}
}
