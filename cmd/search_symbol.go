package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/etnz/hledger-prices/alphavantage"
	"github.com/google/subcommands"
)

// searchStockSymbolCmd implements the "search-stock-symbol" command.
type searchStockSymbolCmd struct{}

func (*searchStockSymbolCmd) Name() string     { return "search-stock-symbol" }
func (*searchStockSymbolCmd) Synopsis() string { return "searches for a stock symbol" }
func (*searchStockSymbolCmd) Usage() string {
	return `hgmp search-stock-symbol <search term>

  Searches for a stock symbol via the Alpha Vantage API.
  Use this if you don't know the exact stock symbol of the stock you are
  interested in.

  Requires the ` + apiKeyEnv + ` environment variable
  to be set or the -api-key flag.
`
}

func (c *searchStockSymbolCmd) SetFlags(f *flag.FlagSet) {}

func (c *searchStockSymbolCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: a search term is required.")
		return subcommands.ExitUsageError
	}
	query := strings.Join(f.Args(), " ")

	key, err := apiKey()
	if err != nil {
		return reportError(err)
	}

	matches, err := newClient(key).SearchSymbol(query)
	if err != nil {
		return reportError(err)
	}

	if len(matches) == 0 {
		fmt.Printf("No results found for %q.\n", query)
		return subcommands.ExitSuccess
	}

	printMarkdown(renderMatches(query, matches))
	return subcommands.ExitSuccess
}

// renderMatches formats search results as a markdown table.
func renderMatches(query string, matches []alphavantage.SearchMatch) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Found %d results for %q:\n\n", len(matches), query)
	b.WriteString("| Region | Symbol | Name | Type | Currency | Score |\n")
	b.WriteString("|---|---|---|---|---|---|\n")
	for _, m := range matches {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s |\n",
			m.Region, m.Symbol, m.Name, m.Type, currencyLabel(m.Currency), m.MatchScore)
	}
	return b.String()
}

// currencyLabel decorates an ISO currency code with its symbol when known,
// e.g. "USD ($)".
func currencyLabel(code string) string {
	if c := money.GetCurrency(code); c != nil && c.Grapheme != "" && c.Grapheme != code {
		return fmt.Sprintf("%s (%s)", code, c.Grapheme)
	}
	return code
}
