// Command ijc is an investment journal: it records buys and sells in a
// plain text ledger and reports holdings and money weighted returns.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
	"github.com/pvats/journal/cmd"
)

func main() {
	// Shell completion. In completion context this prints the candidates
	// and exits, otherwise it is a no-op.
	txFlags := map[string]complete.Predictor{
		"d":         predict.Something,
		"s":         predict.Something,
		"n":         predict.Something,
		"k":         predict.Set{"stock", "fund"},
		"portfolio": predict.Something,
		"q":         predict.Something,
		"p":         predict.Something,
		"m":         predict.Nothing,
	}
	completion := &complete.Command{
		Sub: map[string]*complete.Command{
			"buy":  {Flags: txFlags},
			"sell": {Flags: txFlags},
			"holding": {Flags: map[string]complete.Predictor{
				"d":         predict.Something,
				"portfolio": predict.Something,
			}},
			"summary": {Flags: map[string]complete.Predictor{
				"d":         predict.Something,
				"portfolio": predict.Something,
			}},
			"perf": {Flags: map[string]complete.Predictor{
				"d":         predict.Something,
				"portfolio": predict.Something,
				"all":       predict.Nothing,
			}},
			"log": {Flags: map[string]complete.Predictor{
				"s":         predict.Something,
				"portfolio": predict.Something,
				"head":      predict.Something,
				"tail":      predict.Something,
			}},
			"fmt":   {Flags: map[string]complete.Predictor{"o": predict.Files("*.jsonl")}},
			"topic": {Args: predict.Set{"readme", "ledger", "dates", "quotes", "reports", "*"}},
		},
		Flags: map[string]complete.Predictor{
			"ledger-file": predict.Files("*.jsonl"),
			"quotes-file": predict.Files("*.json"),
			"quotes-path": predict.Something,
			"quotes-url":  predict.Something,
			"currency":    predict.Set{"INR", "USD", "EUR"},
		},
	}
	completion.Complete("ijc")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
