package renderer

import (
	"fmt"
	"strings"

	"github.com/pvats/journal"
)

// Transactions renders a transaction listing as a markdown table.
func Transactions(txs []journal.Transaction) string {
	var b strings.Builder
	b.WriteString("# Transactions\n\n")

	tbl := newTable(&b, "Date", "Action", "Symbol", "Quantity", "Price", "Total", "Portfolio", "Memo")
	for _, tx := range txs {
		switch v := tx.(type) {
		case journal.Buy:
			tbl.row(v.When().String(), "buy", v.Security, v.Quantity.String(), v.Price.String(), v.Cost().String(), v.Portfolio, v.Rationale())
		case journal.Sell:
			tbl.row(v.When().String(), "sell", v.Security, v.Quantity.String(), v.Price.String(), v.Proceeds().String(), v.Portfolio, v.Rationale())
		default:
			tbl.row(tx.When().String(), string(tx.What()), "", "", "", "", "", "")
		}
	}
	b.WriteString("\n")
	fmt.Fprintf(&b, "%d transactions.\n", len(txs))

	return b.String()
}
