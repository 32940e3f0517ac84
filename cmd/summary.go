package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/pvats/journal"
	"github.com/pvats/journal/renderer"
)

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct {
	date      string
	portfolio string
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display the portfolio totals in one glance" }
func (*summaryCmd) Usage() string {
	return `ijc summary [-d <date>] [-portfolio <name>]

  Displays invested amount, current value, gain and annualized return.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", journal.Today().String(), "Date for the summary")
	f.StringVar(&c.portfolio, "portfolio", "", "Restrict the summary to a named portfolio")
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	report, err := buildReport(c.date, c.portfolio)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating summary: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.SummaryMarkdown(report))
	return subcommands.ExitSuccess
}
