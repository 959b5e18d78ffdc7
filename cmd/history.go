package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"unicode/utf8"

	hledgerprices "github.com/etnz/hledger-prices"
	"github.com/google/subcommands"
)

// historyCmd implements the "history" command, the whole pipeline:
// fetch, read the journal, merge, rewrite the journal.
type historyCmd struct {
	decimalDigits int
	separator     string
	symbolBefore  bool
}

func (*historyCmd) Name() string { return "history" }
func (*historyCmd) Synopsis() string {
	return "fetches historic market prices of a stock into the journal"
}
func (*historyCmd) Usage() string {
	return `hgmp history <stock_symbol> <stock_commodity_name> <currency_commodity_name>

  Fetches the historic daily closing prices of a stock from Alpha Vantage
  (roughly the last 100 trading days) and merges them into the journal file
  as hledger price directives, most recent first. For a day present in both
  the journal and the response, the freshly fetched price wins.

  The journal file is given by the -journal-file flag and must exist.

  Requires the ` + apiKeyEnv + ` environment variable
  to be set or the -api-key flag.
`
}

func (c *historyCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.decimalDigits, "decimal-digits", -1, "Number of digits after the decimal point to write. Negative keeps the price as returned.")
	f.StringVar(&c.separator, "separator", ".", "What character to use as decimal separator")
	f.BoolVar(&c.symbolBefore, "commodity-symbol-before", false, "Place the currency commodity name before the amount instead of after it")
}

func (c *historyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 3 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly <stock_symbol> <stock_commodity_name> <currency_commodity_name>.")
		return subcommands.ExitUsageError
	}
	sep, size := utf8.DecodeRuneInString(c.separator)
	if size == 0 || len(c.separator) != size {
		fmt.Fprintf(os.Stderr, "Error: -separator must be a single character, got %q.\n", c.separator)
		return subcommands.ExitUsageError
	}
	symbol, stockName, currencyName := f.Arg(0), f.Arg(1), f.Arg(2)

	key, err := apiKey()
	if err != nil {
		return reportError(err)
	}

	series, err := newClient(key).Daily(symbol)
	if err != nil {
		return reportError(err)
	}

	fetched := make(map[string]string, len(series))
	for _, p := range series {
		fetched[p.Date.String()] = hledgerprices.FormatPrice(p.Close, stockName, currencyName, c.decimalDigits, sep, c.symbolBefore)
	}
	// A correctly behaving API returns every trading day at most once.
	if len(fetched) != len(series) {
		return reportError(hledgerprices.E(hledgerprices.KindInternal,
			fmt.Sprintf("there are duplicate days in the API response: %d != %d", len(series), len(fetched)), nil))
	}

	entries, err := hledgerprices.ReadJournal(*journalFile)
	if err != nil {
		return reportError(err)
	}

	merged := hledgerprices.Merge(entries, fetched)
	if err := hledgerprices.WriteJournal(*journalFile, merged); err != nil {
		return reportError(err)
	}

	fmt.Fprintf(os.Stderr, "✅ Wrote %d price directives for %s to %s.\n", len(merged), symbol, *journalFile)
	return subcommands.ExitSuccess
}
