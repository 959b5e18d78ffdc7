// Package hledgerprices implements the core logic of the `hgmp` command-line
// tool: fetching historical market prices of a stock and merging them into an
// hledger journal file of price directives.
//
// The package covers:
//   - Journal Handling: Reading a journal made of `P <date> <value>` price
//     directives into a date-keyed mapping, merging freshly fetched prices
//     into it, and rewriting the whole file sorted by date descending.
//   - Price Formatting: Rendering a closing price into the value part of a
//     price directive, with configurable decimal digits, decimal separator
//     and currency placement.
//   - Error Taxonomy: A single error type that classifies every failure the
//     tool can hit, so the CLI layer can report each with the right wording.
//
// The Alpha Vantage client lives in the alphavantage subpackage, and the CLI
// surface in cmd.
package hledgerprices

const (
	// Name is the tool name, used in the generated journal header and in the
	// User-Agent of API requests.
	Name = "hgmp"

	// Version of the tool.
	Version = "1.0.0"

	// Repository is the home of the tool, where bug reports go.
	Repository = "https://github.com/etnz/hledger-prices"
)
