package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/BrandonKowalski/wayfinder/pkg/wayfinder/navigator"
	"github.com/BrandonKowalski/wayfinder/pkg/wayfinder/reconcile"
)

var (
	successColor = color.New(color.FgGreen, color.Bold)
	warningColor = color.New(color.FgYellow, color.Bold)
	errorColor   = color.New(color.FgRed, color.Bold)
	headerColor  = color.New(color.FgBlue, color.Bold)
	labelColor   = color.New(color.FgWhite, color.Bold)
	dimColor     = color.New(color.FgHiBlack)

	kindColors = map[reconcile.Kind]*color.Color{
		reconcile.KindShow:       color.New(color.FgGreen),
		reconcile.KindHide:       color.New(color.FgRed),
		reconcile.KindChange:     color.New(color.FgYellow),
		reconcile.KindRootChange: color.New(color.FgMagenta, color.Bold),
	}
)

func printSection(w io.Writer, title string) {
	_, _ = headerColor.Fprintf(w, "▸ %s\n", title)
}

func printChanges(w io.Writer, changes []reconcile.RouteChange) {
	if len(changes) == 0 {
		_, _ = dimColor.Fprintln(w, "  no changes")
		return
	}
	for i, c := range changes {
		fmt.Fprintf(w, "  %d. ", i+1)
		_, _ = kindColors[c.Kind()].Fprintln(w, c.String())
	}
}

func printLabelValue(w io.Writer, label, value string) {
	_, _ = labelColor.Fprintf(w, "  %s: ", label)
	fmt.Fprintln(w, value)
}

func printWarning(w io.Writer, msg string) {
	_, _ = warningColor.Fprintf(w, "⚠ %s\n", msg)
}

func printError(w io.Writer, msg string) {
	_, _ = errorColor.Fprintf(w, "✗ %s\n", msg)
}

func printSuccess(w io.Writer, msg string) {
	_, _ = successColor.Fprintf(w, "✓ %s\n", msg)
}

func printStats(w io.Writer, s navigator.Stats) {
	printSection(w, "Stats")
	printLabelValue(w, "batches", fmt.Sprint(s.Batches))
	printLabelValue(w, "changes", fmt.Sprint(s.Changes))
	printLabelValue(w, "timed out", fmt.Sprint(s.TimedOut))
	printLabelValue(w, "unhandled", fmt.Sprint(s.Unhandled))
}

func joinIDs(ids []string) string {
	return strings.Join(ids, ",")
}
