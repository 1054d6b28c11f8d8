package navigator

import (
	"errors"
	"fmt"

	"github.com/BrandonKowalski/wayfinder/pkg/wayfinder/route"
)

// Sentinel errors for navigator lifecycle and request resolution.
var (
	// ErrNotStarted is reported when navigation is requested before Start.
	ErrNotStarted = errors.New("navigator: not started")

	// ErrAlreadyStarted is reported when Start is called twice.
	ErrAlreadyStarted = errors.New("navigator: already started")

	// ErrStopped is returned for requests made after Stop.
	ErrStopped = errors.New("navigator: stopped")

	// ErrUnhandled is the cause of every UnhandledTransitionError.
	ErrUnhandled = errors.New("unhandled transition")

	// ErrEmptyRoute is returned when a batch would navigate to an empty route.
	ErrEmptyRoute = errors.New("navigator: empty target route")

	// ErrNotInRoute is returned when a hide names a screen that is not live.
	ErrNotInRoute = errors.New("navigator: identifier not in live route")

	// ErrHideRoot is returned when a hide would remove the root screen.
	ErrHideRoot = errors.New("navigator: cannot hide the root screen")
)

// UnhandledTransitionError means no live screen and no root installer
// accepted a transition. It indicates a configuration bug.
type UnhandledTransitionError struct {
	Op         string           // show, hide, change or root_change
	Identifier route.Identifier // Screen that could not be reached
	Route      route.Route      // Live route when the request was offered
}

func (e *UnhandledTransitionError) Error() string {
	return fmt.Sprintf("navigator: %s %q: no handler accepted (live route %q)", e.Op, e.Identifier, e.Route.String())
}

func (e *UnhandledTransitionError) Unwrap() error {
	return ErrUnhandled
}

// IsUnhandled checks if an error reports an unhandled transition.
func IsUnhandled(err error) bool {
	return errors.Is(err, ErrUnhandled)
}
