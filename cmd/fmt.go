package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/google/subcommands"
	"github.com/pvats/journal"
)

type fmtCmd struct {
	outputFile string
}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "validates and formats the ledger file into a canonical form"
}
func (*fmtCmd) Usage() string {
	return `ijc fmt [-o <file>]

  Validates and formats the ledger file. This command reads all
  transactions, validates them, applies available quick-fixes, sorts
  them by date, and writes them back in a canonical JSONL format.
  With -o the result goes to the given file instead, "-" for stdout.
`
}

func (c *fmtCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.outputFile, "o", "", "Write the formatted ledger to this file instead of in-place, \"-\" for stdout")
}

func (c *fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	formatted := journal.NewLedger()
	for _, tx := range ledger.Transactions() {
		validated, err := ledger.Validate(tx)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		formatted.Append(validated)
	}

	var w io.Writer
	switch c.outputFile {
	case "-":
		w = os.Stdout
	case "":
		f, err := os.OpenFile(*ledgerFile, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening ledger file %q for writing: %v\n", *ledgerFile, err)
			return subcommands.ExitFailure
		}
		defer f.Close()
		w = f
	default:
		f, err := os.Create(c.outputFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating output file %q: %v\n", c.outputFile, err)
			return subcommands.ExitFailure
		}
		defer f.Close()
		w = f
	}

	if err := journal.EncodeLedger(w, formatted); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.outputFile == "" {
		fmt.Printf("Ledger file %q has been formatted.\n", *ledgerFile)
	}
	return subcommands.ExitSuccess
}
