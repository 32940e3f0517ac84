package journal

import (
	"fmt"
	"time"
)

// AccountingSystem computes reports from a ledger and a quote provider.
//
// It is stateless: every report is recomputed in full from the ledger, so the
// same ledger, quotes and instant always produce the same report.
type AccountingSystem struct {
	ledger *Ledger
	quotes QuoteProvider
}

// NewAccountingSystem creates an accounting system over a ledger and a quote provider.
func NewAccountingSystem(ledger *Ledger, quotes QuoteProvider) *AccountingSystem {
	return &AccountingSystem{ledger: ledger, quotes: quotes}
}

// holdingAcc accumulates the running position of one security in ledger order.
type holdingAcc struct {
	security string
	quantity Quantity
	cost     Money
	flows    Schedule
}

// NewHoldingReport walks the ledger and values every position at the given
// instant. The portfolio name scopes the report, "" spans all portfolios.
//
// Open positions (quantity > 0) are valued with the quote provider and
// contribute to the totals and to the portfolio-level return. A failing or
// zero quote values the holding at 0 instead of failing the report. Closed
// and short positions are reported but excluded from totals.
func (as *AccountingSystem) NewHoldingReport(now time.Time, portfolio string) (*HoldingReport, error) {
	accs := make(map[string]*holdingAcc)
	var order []string

	for _, tx := range as.ledger.Transactions(ByPortfolio(portfolio)) {
		sym := securityOf(tx)
		if sym == "" {
			continue
		}
		acc, ok := accs[sym]
		if !ok {
			acc = &holdingAcc{security: sym}
			accs[sym] = acc
			order = append(order, sym)
		}
		switch v := tx.(type) {
		case Buy:
			acc.quantity = acc.quantity.Add(v.Quantity)
			acc.cost = acc.cost.Add(v.Cost())
			acc.flows.Add(v.When().Time(), -v.Cost().AsFloat())
		case Sell:
			acc.quantity = acc.quantity.Sub(v.Quantity)
			acc.cost = acc.cost.Sub(v.Proceeds())
			acc.flows.Add(v.When().Time(), v.Proceeds().AsFloat())
		}
	}

	report := &HoldingReport{Time: now, Portfolio: portfolio}
	var aggregate Schedule
	var investment, value Money

	for _, sym := range order {
		acc := accs[sym]
		name, kind := as.ledger.SecurityDetails(sym)

		holding := SecurityHolding{
			Security:  sym,
			Name:      name,
			Kind:      kind,
			Quantity:  acc.quantity,
			CostBasis: acc.cost,
			Flows:     acc.flows,
		}

		if acc.quantity.IsPositive() {
			price, err := as.quotes.Quote(sym)
			if err != nil || price.IsZero() {
				// No market value right now, value the holding at 0.
				price = Money{}
			}
			holding.Price = price
			holding.MarketValue = price.Mul(acc.quantity)
			holding.AvgPrice = acc.cost.Div(acc.quantity)
			holding.GainLoss = holding.MarketValue.Sub(acc.cost)
			holding.GainLossPct = gainPct(holding.GainLoss, acc.cost)

			// Terminal flow: the position marked to market at the valuation instant.
			holding.Flows.Add(now, holding.MarketValue.AsFloat())
			aggregate = append(aggregate, holding.Flows...)

			investment = investment.Add(acc.cost)
			value = value.Add(holding.MarketValue)
		}

		rate, err := XIRR(holding.Flows, DefaultGuess)
		if err != nil {
			return nil, fmt.Errorf("cannot compute return for %s: %w", sym, err)
		}
		holding.XIRR = Percent(rate * 100)

		if report.Currency == "" && holding.CostBasis.Currency() != "" {
			report.Currency = holding.CostBasis.Currency()
		}
		report.Securities = append(report.Securities, holding)
	}

	gain := value.Sub(investment)
	rate, err := XIRR(aggregate, DefaultGuess)
	if err != nil {
		return nil, fmt.Errorf("cannot compute portfolio return: %w", err)
	}
	report.Totals = PortfolioStats{
		Investment:  investment,
		Value:       value,
		GainLoss:    gain,
		GainLossPct: gainPct(gain, investment),
		XIRR:        Percent(rate * 100),
	}
	return report, nil
}

// gainPct is gain over cost in percent, 0 when the cost basis is not positive.
func gainPct(gain, cost Money) Percent {
	if !cost.IsPositive() {
		return 0
	}
	return Percent(gain.AsFloat() / cost.AsFloat() * 100)
}
