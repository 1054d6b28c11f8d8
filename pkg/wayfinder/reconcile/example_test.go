package reconcile_test

import (
	"fmt"

	"github.com/BrandonKowalski/wayfinder/pkg/wayfinder/reconcile"
	"github.com/BrandonKowalski/wayfinder/pkg/wayfinder/route"
)

// ExampleDiff shows each shape a diff can take.
func ExampleDiff() {
	live := chainOf("home", "list", "detail")

	for _, target := range []route.Route{
		route.New("home"),
		route.New("home", "list", "detail", "share"),
		route.New("home", "settings"),
		route.New("login"),
	} {
		fmt.Println(target, reconcile.Diff(live, target, false))
	}

	// Output:
	// home [hide(detail) hide(list)]
	// home/list/detail/share [show(share)]
	// home/settings [change(home: list -> settings)]
	// login [root_change(home -> login)]
}
