package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/hledger-prices/cmd"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	// A .env file in the working directory may carry the API key.
	// Its absence is fine, the environment is consulted anyway.
	godotenv.Load()

	completion()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

// completion wires shell completion. It exits the process when invoked by the
// shell's completion machinery, and is a no-op otherwise.
func completion() {
	c := &complete.Command{
		Flags: map[string]complete.Predictor{
			"journal-file": predict.Files("*"),
			"api-key":      predict.Something,
		},
		Sub: map[string]*complete.Command{
			"search-stock-symbol": {},
			"history": {
				Flags: map[string]complete.Predictor{
					"decimal-digits":          predict.Something,
					"separator":               predict.Something,
					"commodity-symbol-before": predict.Nothing,
				},
			},
			"topic": {},
		},
	}
	c.Complete(path.Base(os.Args[0]))
}
