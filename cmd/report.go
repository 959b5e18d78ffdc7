package cmd

import (
	"fmt"
	"os"

	hledgerprices "github.com/etnz/hledger-prices"
	"github.com/google/subcommands"
)

// reportError prints err on the error stream and converts it into an exit
// status. Internal errors additionally ask for a bug report: they flag
// conditions the tool considers impossible.
func reportError(err error) subcommands.ExitStatus {
	switch hledgerprices.KindOf(err) {
	case hledgerprices.KindConfig, hledgerprices.KindAPI, hledgerprices.KindFile, hledgerprices.KindFormat:
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	default:
		fmt.Fprintf(os.Stderr, "An unexpected problem occurred that the application can't recover from.\n\n"+
			"If you believe the invocation of %s is correct, I'd appreciate a bug report at %s/issues/new.\n\n"+
			"Error: %v\n", hledgerprices.Name, hledgerprices.Repository, err)
	}
	return subcommands.ExitFailure
}
