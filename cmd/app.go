// Package cmd implements the CLI application to manage an investment journal.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/pvats/journal"
)

// Commands lists the subcommands of the application.
// A main package registers them all on its commander.
var Commands = []subcommands.Command{
	&buyCmd{},
	&sellCmd{},
	&holdingCmd{},
	&summaryCmd{},
	&perfCmd{},
	&logCmd{},
	&fmtCmd{},
	&topicCmd{},
}

// As a CLI application it has a very short lived lifecycle, so it is ok to use global variables.

var (
	ledgerFile = flag.String("ledger-file", "transactions.jsonl", "Path to the ledger file containing transactions (JSONL format)")
	quotesFile = flag.String("quotes-file", "", "Path to a JSON file with current prices")
	quotesPath = flag.String("quotes-path", "", "JSONPath to the symbol-to-price object inside the quotes file or response")
	quotesURL  = flag.String("quotes-url", "", "URL template for fetching a quote, with one %s placeholder for the symbol")
	currency   = flag.String("currency", "INR", "Currency for prices and reports")
)

// DecodeLedger reads the app ledger file. A missing file yields an
// empty ledger, recording a journal starts with the first buy.
func DecodeLedger() (*journal.Ledger, error) {
	f, err := os.Open(*ledgerFile)
	if errors.Is(err, fs.ErrNotExist) {
		log.Printf("warning, ledger file %q does not exist, using an empty ledger instead", *ledgerFile)
		return journal.NewLedger(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot open ledger file %q: %w", *ledgerFile, err)
	}
	defer f.Close()
	return journal.DecodeLedger(f)
}

// Quotes builds the app quote provider from the global flags. Every
// source is wrapped in the in-memory cache so a report never asks the
// same symbol twice.
func Quotes() (journal.QuoteProvider, error) {
	var source journal.QuoteProvider
	switch {
	case *quotesURL != "":
		source = journal.NewHTTPQuotes(*quotesURL, *quotesPath, *currency)
	case *quotesFile != "":
		f, err := os.Open(*quotesFile)
		if err != nil {
			return nil, fmt.Errorf("cannot open quotes file %q: %w", *quotesFile, err)
		}
		defer f.Close()
		quotes, err := journal.DecodeQuotes(f, *quotesPath, *currency)
		if err != nil {
			return nil, fmt.Errorf("cannot read quotes file %q: %w", *quotesFile, err)
		}
		source = quotes
	default:
		source = journal.StaticQuotes{}
	}
	return journal.NewCachedQuotes(source, journal.DefaultQuoteTTL), nil
}

// EncodeTransaction appends a single transaction to the app ledger file.
func EncodeTransaction(tx journal.Transaction) subcommands.ExitStatus {
	filename := *ledgerFile
	f, err := os.OpenFile(filename, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening ledger file %q: %v\n", filename, err)
		return subcommands.ExitFailure
	}
	defer f.Close()

	if err := journal.EncodeTransaction(f, tx); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing to ledger file %q: %v\n", filename, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Successfully appended transaction to %s\n", filename)
	return subcommands.ExitSuccess
}

// printMarkdown renders markdown for the terminal, falling back to the
// raw text when rendering is not possible.
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(0))
	if err != nil {
		fmt.Print(md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
