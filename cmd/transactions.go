package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/pvats/journal"
)

// secFlags holds the flags shared by the buy and sell subcommands.
type secFlags struct {
	date      string
	security  string
	name      string
	kind      string
	portfolio string
	quantity  float64
	price     float64
	memo      string
}

func (c *secFlags) setFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", journal.Today().String(), "Transaction date. See 'ijc topic dates' for supported formats.")
	f.StringVar(&c.security, "s", "", "Security symbol")
	f.StringVar(&c.name, "n", "", "Optional display name for the security")
	f.StringVar(&c.kind, "k", "", "Instrument kind: stock or fund (default stock)")
	f.StringVar(&c.portfolio, "portfolio", "", "Named portfolio this transaction belongs to")
	f.Float64Var(&c.quantity, "q", 0, "Number of shares or units")
	f.Float64Var(&c.price, "p", 0, "Price per share or unit")
	f.StringVar(&c.memo, "m", "", "An optional rationale or note for the transaction")
}

// --- Buy Command ---

type buyCmd struct{ secFlags }

func (*buyCmd) Name() string     { return "buy" }
func (*buyCmd) Synopsis() string { return "record a purchase to open or add to a position" }
func (*buyCmd) Usage() string {
	return `ijc buy -s <security> -q <quantity> -p <price> [-d <date>] [-n <name>] [-k <kind>] [-portfolio <name>] [-m <memo>]

  Records the purchase of a security in the ledger.
`
}

func (c *buyCmd) SetFlags(f *flag.FlagSet) { c.setFlags(f) }

func (c *buyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.security == "" || c.quantity <= 0 || c.price <= 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	day, err := journal.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	tx := journal.NewBuy(day, c.memo, c.security, journal.Q(c.quantity), journal.M(c.price, *currency))
	tx.Name = c.name
	tx.Kind = journal.SecurityKind(c.kind)
	tx.Portfolio = c.portfolio

	validated, err := tx.Validate()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	return EncodeTransaction(validated)
}

// --- Sell Command ---

type sellCmd struct{ secFlags }

func (*sellCmd) Name() string     { return "sell" }
func (*sellCmd) Synopsis() string { return "record a sale to trim or close a position" }
func (*sellCmd) Usage() string {
	return `ijc sell -s <security> -q <quantity> -p <price> [-d <date>] [-portfolio <name>] [-m <memo>]

  Records the sale of a security in the ledger. Selling more than the
  current position is accepted and drives the position negative.
`
}

func (c *sellCmd) SetFlags(f *flag.FlagSet) { c.setFlags(f) }

func (c *sellCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.security == "" || c.quantity <= 0 || c.price <= 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	day, err := journal.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	tx := journal.NewSell(day, c.memo, c.security, journal.Q(c.quantity), journal.M(c.price, *currency))
	tx.Name = c.name
	tx.Kind = journal.SecurityKind(c.kind)
	tx.Portfolio = c.portfolio

	validated, err := tx.Validate()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	return EncodeTransaction(validated)
}
