package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/BrandonKowalski/wayfinder/pkg/wayfinder/platform/headless"
	"github.com/BrandonKowalski/wayfinder/pkg/wayfinder/reconcile"
	"github.com/BrandonKowalski/wayfinder/pkg/wayfinder/route"
	"github.com/BrandonKowalski/wayfinder/pkg/wayfinder/routable"
)

var (
	diffFrom   string
	diffTo     string
	diffAtomic bool
)

var diffCmd = &cobra.Command{
	Use:   "diff --from a/b/c --to a/d",
	Short: "Print the route changes between two routes",
	Long: `Print the route changes that turn the live route --from into --to.

Routes are slash separated identifiers, root first. An empty --from
describes a window with nothing installed.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		to := route.ParsePath(diffTo)
		if len(to) == 0 {
			return fmt.Errorf("--to must name at least one screen")
		}
		from := route.ParsePath(diffFrom)

		chain := detachedChain(from)
		out := cmd.OutOrStdout()

		printSection(out, fmt.Sprintf("%s → %s", displayRoute(from), to))
		printLabelValue(out, "common index", fmt.Sprint(reconcile.CommonIndex(chain, to)))
		printChanges(out, reconcile.Diff(chain, to, diffAtomic))
		return nil
	},
}

func init() {
	diffCmd.Flags().StringVar(&diffFrom, "from", "", "Live route, e.g. home/list/detail")
	diffCmd.Flags().StringVar(&diffTo, "to", "", "Target route, e.g. home/settings")
	diffCmd.Flags().BoolVar(&diffAtomic, "atomic", false, "Collapse removals into a single hide")
	_ = diffCmd.MarkFlagRequired("to")
}

// detachedChain builds unlinked screens standing in for a live chain.
// Diffing only reads their identifiers.
func detachedChain(r route.Route) []routable.Routable {
	w := headless.NewWindow(nil, headless.NewRegistry())
	chain := make([]routable.Routable, len(r))
	for i, id := range r {
		chain[i] = headless.NewScreen(w, id, nil)
	}
	return chain
}

func displayRoute(r route.Route) string {
	if len(r) == 0 {
		return "<none>"
	}
	return r.String()
}
