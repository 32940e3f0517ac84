package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/subcommands"
	"github.com/pvats/journal"
	"github.com/pvats/journal/renderer"
)

// buildReport assembles a holding report from the app ledger and quotes.
func buildReport(dateStr, portfolio string) (*journal.HoldingReport, error) {
	on, err := journal.ParseDate(dateStr)
	if err != nil {
		return nil, fmt.Errorf("cannot parse date: %w", err)
	}

	ledger, err := DecodeLedger()
	if err != nil {
		return nil, err
	}
	quotes, err := Quotes()
	if err != nil {
		return nil, err
	}

	// Today's report is valued at the present instant, a past report
	// at midnight UTC of the day.
	now := on.Time()
	if on.IsToday() {
		now = time.Now()
	}

	as := journal.NewAccountingSystem(ledger, quotes)
	return as.NewHoldingReport(now, portfolio)
}

// holdingCmd holds the flags for the 'holding' subcommand.
type holdingCmd struct {
	date      string
	portfolio string
}

func (*holdingCmd) Name() string     { return "holding" }
func (*holdingCmd) Synopsis() string { return "display detailed holdings with returns" }
func (*holdingCmd) Usage() string {
	return `ijc holding [-d <date>] [-portfolio <name>]

  Displays every position with cost basis, market value, gain and
  annualized return. Closed positions are listed separately.
`
}

func (c *holdingCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", journal.Today().String(), "Date for the holdings report")
	f.StringVar(&c.portfolio, "portfolio", "", "Restrict the report to a named portfolio")
}

func (c *holdingCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	report, err := buildReport(c.date, c.portfolio)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating holding report: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.HoldingMarkdown(report))
	return subcommands.ExitSuccess
}
