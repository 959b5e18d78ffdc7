package hledgerprices

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// FormatPrice renders a closing price as the value part of a price directive,
// e.g. "AAPL 123.45 USD".
//
// A negative digits keeps the shortest decimal representation of the price;
// otherwise the price is rounded to exactly digits digits after the point.
// When sep is not '.', every '.' of the rendered number is replaced by sep.
// currencyBefore places the currency name directly before the amount instead
// of after it, separated by a space.
func FormatPrice(price decimal.Decimal, stock, currency string, digits int, sep rune, currencyBefore bool) string {
	var s string
	if digits < 0 {
		s = strconv.FormatFloat(price.InexactFloat64(), 'f', -1, 64)
	} else {
		s = price.StringFixed(int32(digits))
	}

	if sep != '.' {
		s = strings.ReplaceAll(s, ".", string(sep))
	}

	if currencyBefore {
		return stock + " " + currency + s
	}
	return stock + " " + s + " " + currency
}
