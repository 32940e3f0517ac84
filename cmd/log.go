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

// logCmd holds the flags for the 'log' subcommand.
type logCmd struct {
	security  string
	portfolio string
	head      int
	tail      int
}

func (*logCmd) Name() string     { return "log" }
func (*logCmd) Synopsis() string { return "list the transactions in the ledger" }
func (*logCmd) Usage() string {
	return `ijc log [-s <security>] [-portfolio <name>] [-head <n> | -tail <n>]

  Lists ledger transactions in chronological order, with options for
  filtering and limiting the output.
`
}

func (c *logCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.security, "s", "", "Show only transactions for this security")
	f.StringVar(&c.portfolio, "portfolio", "", "Show only transactions of a named portfolio")
	f.IntVar(&c.head, "head", 0, "Show only the first N transactions")
	f.IntVar(&c.tail, "tail", 0, "Show only the last N transactions")
}

func (c *logCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.head > 0 && c.tail > 0 {
		fmt.Fprintln(os.Stderr, "Error: -head and -tail flags cannot be used together.")
		return subcommands.ExitUsageError
	}

	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	filter := journal.AcceptAll
	switch {
	case c.security != "":
		filter = journal.BySecurity(c.security)
	case c.portfolio != "":
		filter = journal.ByPortfolio(c.portfolio)
	}

	var transactions []journal.Transaction
	for _, tx := range ledger.Transactions(filter) {
		transactions = append(transactions, tx)
	}

	if c.head > 0 && len(transactions) > c.head {
		transactions = transactions[:c.head]
	}
	if c.tail > 0 && len(transactions) > c.tail {
		transactions = transactions[len(transactions)-c.tail:]
	}

	printMarkdown(renderer.Transactions(transactions))
	return subcommands.ExitSuccess
}
