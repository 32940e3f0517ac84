package renderer

import (
	"fmt"
	"strings"

	"github.com/pvats/journal"
)

// SummaryMarkdown renders the portfolio totals of a report as a short markdown document.
func SummaryMarkdown(r *journal.HoldingReport) string {
	var b strings.Builder

	scope := r.Portfolio
	if scope == "" {
		scope = "All Portfolios"
	}
	fmt.Fprintf(&b, "# Summary for %s on %s\n\n", scope, r.Time.Format(journal.DateFormat))

	open := 0
	for _, h := range r.Securities {
		if h.Open() {
			open++
		}
	}
	fmt.Fprintf(&b, "Open holdings: %d\n\n", open)

	renderTotals(&b, r.Totals)
	return b.String()
}
