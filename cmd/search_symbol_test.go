package cmd

import (
	"strings"
	"testing"

	"github.com/etnz/hledger-prices/alphavantage"
)

func TestCurrencyLabel(t *testing.T) {
	tests := map[string]string{
		"USD": "USD ($)",
		"EUR": "EUR (€)",
		"ZZZ": "ZZZ", // unknown code stays bare
	}
	for code, want := range tests {
		if got := currencyLabel(code); got != want {
			t.Errorf("currencyLabel(%q) = %q, want %q", code, got, want)
		}
	}
}

func TestRenderMatches(t *testing.T) {
	matches := []alphavantage.SearchMatch{
		{Symbol: "AAPL", Name: "Apple Inc", Type: "Equity", Region: "United States", Currency: "USD", MatchScore: "0.8889"},
	}
	md := renderMatches("apple", matches)

	if !strings.Contains(md, `Found 1 results for "apple"`) {
		t.Errorf("renderMatches() missing summary line:\n%s", md)
	}
	if !strings.Contains(md, "| Region | Symbol | Name | Type | Currency | Score |") {
		t.Errorf("renderMatches() missing table header:\n%s", md)
	}
	if !strings.Contains(md, "| United States | AAPL | Apple Inc | Equity | USD ($) | 0.8889 |") {
		t.Errorf("renderMatches() missing row:\n%s", md)
	}
}
