package renderer

import (
	"strings"
	"testing"
	"time"

	"github.com/pvats/journal"
)

func inr(value float64) journal.Money { return journal.M(value, "INR") }

func sampleReport() *journal.HoldingReport {
	return &journal.HoldingReport{
		Time:     time.Date(2025, 8, 27, 10, 0, 0, 0, time.UTC),
		Currency: "INR",
		Securities: []journal.SecurityHolding{
			{
				Security:    "RELIANCE",
				Name:        "Reliance Industries",
				Kind:        journal.Stock,
				Quantity:    journal.Q(10),
				CostBasis:   inr(24000),
				AvgPrice:    inr(2400),
				Price:       inr(2600),
				MarketValue: inr(26000),
				GainLoss:    inr(2000),
				GainLossPct: journal.Percent(8.33),
				XIRR:        journal.Percent(12.5),
			},
			{
				Security:    "INFY",
				Name:        "Infosys",
				Kind:        journal.Stock,
				Quantity:    journal.Q(0),
				CostBasis:   inr(0),
				GainLossPct: journal.Percent(0),
				XIRR:        journal.Percent(22.1),
			},
		},
		Totals: journal.PortfolioStats{
			Investment:  inr(24000),
			Value:       inr(26000),
			GainLoss:    inr(2000),
			GainLossPct: journal.Percent(8.33),
			XIRR:        journal.Percent(12.5),
		},
	}
}

func TestHoldingMarkdown(t *testing.T) {
	got := HoldingMarkdown(sampleReport())

	for _, want := range []string{
		"# Holdings on 2025-08-27",
		"| Symbol | Name | Kind | Quantity | Avg Price | Price | Cost Basis | Value | Gain/Loss | Gain % | XIRR |",
		"| RELIANCE | Reliance Industries | stock | 10 |",
		"+8.33% | +12.50% |",
		"## Closed Positions",
		"| INFY | Infosys | 0 |",
		"## Totals",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("HoldingMarkdown() missing %q in:\n%s", want, got)
		}
	}

	// Closed positions must never appear in the open holdings table.
	openSection := got[:strings.Index(got, "## Closed Positions")]
	if strings.Contains(openSection, "INFY") {
		t.Errorf("closed position listed among open holdings:\n%s", openSection)
	}
}

func TestHoldingMarkdownScoped(t *testing.T) {
	r := sampleReport()
	r.Portfolio = "retirement"
	got := HoldingMarkdown(r)
	if !strings.Contains(got, "Portfolio: retirement") {
		t.Errorf("HoldingMarkdown() missing portfolio line in:\n%s", got)
	}
}

func TestHoldingMarkdownNoClosedSection(t *testing.T) {
	r := sampleReport()
	r.Securities = r.Securities[:1]
	got := HoldingMarkdown(r)
	if strings.Contains(got, "## Closed Positions") {
		t.Errorf("unexpected closed positions section in:\n%s", got)
	}
}

func TestSummaryMarkdown(t *testing.T) {
	got := SummaryMarkdown(sampleReport())

	for _, want := range []string{
		"# Summary for All Portfolios on 2025-08-27",
		"Open holdings: 1",
		"## Totals",
		"| Investment | Value | Gain/Loss | Gain % | XIRR |",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("SummaryMarkdown() missing %q in:\n%s", want, got)
		}
	}
}

func TestPerformanceMarkdown(t *testing.T) {
	all := sampleReport()
	scoped := sampleReport()
	scoped.Portfolio = "trading"

	got := PerformanceMarkdown([]*journal.HoldingReport{all, scoped})

	for _, want := range []string{
		"# Performance",
		"## All Portfolios",
		"## trading",
		"| RELIANCE | Reliance Industries | +8.33% | +12.50% |",
		"| INFY | Infosys | - | +22.10% |",
		"| *Total* |  | +8.33% | +12.50% |",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("PerformanceMarkdown() missing %q in:\n%s", want, got)
		}
	}
}

func TestTransactions(t *testing.T) {
	buy := journal.NewBuy(journal.NewDate(2025, 8, 1), "monthly SIP", "RELIANCE", journal.Q(10), inr(2400))
	sell := journal.NewSell(journal.NewDate(2025, 8, 20), "", "INFY", journal.Q(5), inr(1500))

	got := Transactions([]journal.Transaction{buy, sell})

	for _, want := range []string{
		"# Transactions",
		"| Date | Action | Symbol | Quantity | Price | Total | Portfolio | Memo |",
		"| 2025-08-01 | buy | RELIANCE | 10 |",
		"monthly SIP |",
		"| 2025-08-20 | sell | INFY | 5 |",
		"2 transactions.",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("Transactions() missing %q in:\n%s", want, got)
		}
	}
}
