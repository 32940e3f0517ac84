package renderer

import (
	"fmt"
	"strings"

	"github.com/pvats/journal"
)

// HoldingMarkdown renders a holding report as a markdown document.
func HoldingMarkdown(r *journal.HoldingReport) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Holdings on %s\n\n", r.Time.Format(journal.DateFormat))
	if r.Portfolio != "" {
		fmt.Fprintf(&b, "Portfolio: %s\n\n", r.Portfolio)
	}

	tbl := newTable(&b, "Symbol", "Name", "Kind", "Quantity", "Avg Price", "Price", "Cost Basis", "Value", "Gain/Loss", "Gain %", "XIRR")
	for _, h := range r.Securities {
		if !h.Open() {
			continue
		}
		tbl.row(
			h.Security,
			h.Name,
			string(h.Kind),
			h.Quantity.String(),
			h.AvgPrice.String(),
			h.Price.String(),
			h.CostBasis.String(),
			h.MarketValue.String(),
			h.GainLoss.SignedString(),
			h.GainLossPct.SignedString(),
			h.XIRR.SignedString(),
		)
	}
	b.WriteString("\n")

	if closed := closedPositions(r); len(closed) > 0 {
		fmt.Fprintf(&b, "## Closed Positions\n\n")
		tbl := newTable(&b, "Symbol", "Name", "Quantity", "Cost Basis", "XIRR")
		for _, h := range closed {
			tbl.row(h.Security, h.Name, h.Quantity.String(), h.CostBasis.String(), h.XIRR.SignedString())
		}
		b.WriteString("\n")
	}

	renderTotals(&b, r.Totals)
	return b.String()
}

func closedPositions(r *journal.HoldingReport) []journal.SecurityHolding {
	var closed []journal.SecurityHolding
	for _, h := range r.Securities {
		if !h.Open() {
			closed = append(closed, h)
		}
	}
	return closed
}

func renderTotals(b *strings.Builder, totals journal.PortfolioStats) {
	fmt.Fprintf(b, "## Totals\n\n")
	tbl := newTable(b, "Investment", "Value", "Gain/Loss", "Gain %", "XIRR")
	tbl.row(
		totals.Investment.String(),
		totals.Value.String(),
		totals.GainLoss.SignedString(),
		totals.GainLossPct.SignedString(),
		totals.XIRR.SignedString(),
	)
}
