package renderer

import (
	"fmt"
	"strings"

	"github.com/pvats/journal"
)

// PerformanceMarkdown renders the annualized return breakdown of one or more
// reports, one section per report scope.
func PerformanceMarkdown(reports []*journal.HoldingReport) string {
	var b strings.Builder
	b.WriteString("# Performance\n\n")

	for _, r := range reports {
		scope := r.Portfolio
		if scope == "" {
			scope = "All Portfolios"
		}
		fmt.Fprintf(&b, "## %s\n\n", scope)

		tbl := newTable(&b, "Symbol", "Name", "Gain %", "XIRR")
		for _, h := range r.Securities {
			tbl.row(h.Security, h.Name, h.GainLossPct.SignedString(), h.XIRR.SignedString())
		}
		tbl.row("*Total*", "", r.Totals.GainLossPct.SignedString(), r.Totals.XIRR.SignedString())
		b.WriteString("\n")
	}

	return b.String()
}
