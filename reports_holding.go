package journal

import "time"

// HoldingReport represents a detailed view of holdings at a specific instant.
type HoldingReport struct {
	Time       time.Time // Valuation instant
	Portfolio  string    // Scope of the report, "" for all portfolios
	Currency   string    // Reporting currency
	Securities []SecurityHolding
	Totals     PortfolioStats
}

// SecurityHolding represents the net position in a single security.
type SecurityHolding struct {
	Security    string
	Name        string
	Kind        SecurityKind
	Quantity    Quantity
	CostBasis   Money
	AvgPrice    Money
	Price       Money // Current unit price, zero when no market value is available
	MarketValue Money
	GainLoss    Money
	GainLossPct Percent
	XIRR        Percent
	Flows       Schedule // The holding's own cash flow series, terminal flow included when open
}

// Open reports whether the holding is an open position. Closed and short
// positions stay queryable but do not contribute to totals.
func (h SecurityHolding) Open() bool { return h.Quantity.IsPositive() }

// PortfolioStats is the aggregate over the open holdings of a report.
type PortfolioStats struct {
	Investment  Money
	Value       Money
	GainLoss    Money
	GainLossPct Percent
	XIRR        Percent
}
