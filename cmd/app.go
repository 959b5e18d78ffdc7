// Package cmd implements the CLI commands of the hgmp tool.
package cmd

import (
	"flag"
	"os"

	hledgerprices "github.com/etnz/hledger-prices"
	"github.com/etnz/hledger-prices/alphavantage"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&searchStockSymbolCmd{}, "")
	c.Register(&historyCmd{}, "")
	c.Register(&topicCmd{}, "")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var journalFile = flag.String("journal-file", "prices.journal", "Path to the journal file holding the price directives")
var apiKeyFlag = flag.String("api-key", "", "Alpha Vantage API key. This flag takes precedence over the "+apiKeyEnv+" environment variable. You can get one at https://www.alphavantage.co/support/#api-key")

const apiKeyEnv = "HLEDGER_GET_MARKET_PRICES_API_KEY"

// newClient builds the API client for a command; tests point it at a local server.
var newClient = alphavantage.NewClient

// apiKey retrieves the Alpha Vantage API key from the command-line flag or the
// environment variable. It prioritizes the flag over the environment variable.
func apiKey() (string, error) {
	if *apiKeyFlag != "" {
		return *apiKeyFlag, nil
	}
	if key := os.Getenv(apiKeyEnv); key != "" {
		return key, nil
	}
	return "", hledgerprices.E(hledgerprices.KindConfig,
		"Environment variable "+apiKeyEnv+" is not set.\nPlease set this variable to your Alpha Vantage API key and try again.", nil)
}
