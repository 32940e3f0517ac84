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

// perfCmd holds the flags for the 'perf' subcommand.
type perfCmd struct {
	date      string
	portfolio string
	all       bool
}

func (*perfCmd) Name() string     { return "perf" }
func (*perfCmd) Synopsis() string { return "display the annualized return per security" }
func (*perfCmd) Usage() string {
	return `ijc perf [-d <date>] [-portfolio <name>] [-all]

  Displays the money weighted annualized return of every security.
  With -all, one section per named portfolio is shown as well.
`
}

func (c *perfCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", journal.Today().String(), "Date for the performance report")
	f.StringVar(&c.portfolio, "portfolio", "", "Restrict the report to a named portfolio")
	f.BoolVar(&c.all, "all", false, "Break the report down per named portfolio")
}

func (c *perfCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	report, err := buildReport(c.date, c.portfolio)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating performance report: %v\n", err)
		return subcommands.ExitFailure
	}
	reports := []*journal.HoldingReport{report}

	if c.all && c.portfolio == "" {
		ledger, err := DecodeLedger()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading ledger: %v\n", err)
			return subcommands.ExitFailure
		}
		for name := range ledger.Portfolios() {
			if name == "" {
				continue
			}
			scoped, err := buildReport(c.date, name)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error creating performance report for %q: %v\n", name, err)
				return subcommands.ExitFailure
			}
			reports = append(reports, scoped)
		}
	}

	printMarkdown(renderer.PerformanceMarkdown(reports))
	return subcommands.ExitSuccess
}
