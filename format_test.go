package hledgerprices

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func TestFormatPrice_FixedDigits(t *testing.T) {
	price := decimal.RequireFromString("123.456789")
	for digits := 0; digits <= 6; digits++ {
		got := FormatPrice(price, "AAPL", "USD", digits, '.', false)
		fields := strings.Fields(got)
		if len(fields) != 3 {
			t.Fatalf("FormatPrice(digits=%d) = %q, want three space-separated fields", digits, got)
		}
		_, frac, found := strings.Cut(fields[1], ".")
		if digits == 0 {
			if found {
				t.Errorf("FormatPrice(digits=0) = %q, want no decimal point", got)
			}
			continue
		}
		if !found || len(frac) != digits {
			t.Errorf("FormatPrice(digits=%d) = %q, want exactly %d digits after the point", digits, got, digits)
		}
	}
}

func TestFormatPrice_Rounding(t *testing.T) {
	price := decimal.RequireFromString("123.456789")
	if got := FormatPrice(price, "AAPL", "USD", 2, '.', false); got != "AAPL 123.46 USD" {
		t.Errorf("FormatPrice() = %q, want %q", got, "AAPL 123.46 USD")
	}
}

func TestFormatPrice_Separator(t *testing.T) {
	price := decimal.RequireFromString("123.456789")
	for digits := -1; digits <= 6; digits++ {
		got := FormatPrice(price, "AAPL", "USD", digits, ',', false)
		if strings.Contains(got, ".") {
			t.Errorf("FormatPrice(digits=%d, sep=',') = %q, must not contain '.'", digits, got)
		}
	}
	if got := FormatPrice(price, "AAPL", "USD", 3, ',', false); got != "AAPL 123,457 USD" {
		t.Errorf("FormatPrice() = %q, want %q", got, "AAPL 123,457 USD")
	}
}

func TestFormatPrice_Placement(t *testing.T) {
	price := decimal.NewFromFloat(123.4)
	if got := FormatPrice(price, "AAPL", "USD", -1, '.', false); got != "AAPL 123.4 USD" {
		t.Errorf("FormatPrice() = %q, want %q", got, "AAPL 123.4 USD")
	}
	if got := FormatPrice(price, "AAPL", "$", -1, '.', true); got != "AAPL $123.4" {
		t.Errorf("FormatPrice() = %q, want %q", got, "AAPL $123.4")
	}
}

func TestFormatPrice_MinimalRepresentation(t *testing.T) {
	// The API pads closes with trailing zeros; without a fixed digit count
	// the price keeps its shortest representation.
	price := decimal.RequireFromString("100.0000")
	if got := FormatPrice(price, "AAPL", "USD", -1, '.', false); got != "AAPL 100 USD" {
		t.Errorf("FormatPrice() = %q, want %q", got, "AAPL 100 USD")
	}
}
