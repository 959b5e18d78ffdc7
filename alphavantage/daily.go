package alphavantage

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/url"

	hledgerprices "github.com/etnz/hledger-prices"
	"github.com/etnz/hledger-prices/date"
	"github.com/shopspring/decimal"
)

// seriesKey is the member of the TIME_SERIES_DAILY response holding the
// per-day quotes, keyed by trading day.
//
//	{
//	  "Meta Data": { "2. Symbol": "IBM", ... },
//	  "Time Series (Daily)": {
//	    "2024-01-03": { "1. open": "...", "4. close": "160.10", ... },
//	    "2024-01-02": { ... },
//	    ...
//	  }
//	}
const seriesKey = "Time Series (Daily)"

// ClosePrice is one trading day's closing price.
type ClosePrice struct {
	Date  date.Date
	Close decimal.Decimal
}

// Daily returns the daily closing prices for symbol from the TIME_SERIES_DAILY
// endpoint with compact output size (roughly the last 100 trading days), in
// the order the API returned them.
//
// Should the API misbehave and return the same trading day twice, both entries
// are kept; callers relying on day uniqueness must check for it.
func (c *Client) Daily(symbol string) ([]ClosePrice, error) {
	params := url.Values{}
	params.Set("function", "TIME_SERIES_DAILY")
	params.Set("symbol", symbol)
	params.Set("outputsize", "compact")

	body, err := c.get(c.query(params))
	if err != nil {
		return nil, err
	}
	return decodeDailySeries(body)
}

// decodeDailySeries walks the response tokens instead of unmarshalling into a
// map: the object keys are the trading days, and a Go map would silently
// collapse a duplicated day.
func decodeDailySeries(body []byte) ([]ClosePrice, error) {
	dec := json.NewDecoder(bytes.NewReader(body))

	tok, err := dec.Token()
	if err != nil || tok != json.Delim('{') {
		return nil, hledgerprices.E(hledgerprices.KindAPI, "unexpected Alpha Vantage response shape", err)
	}

	var series []ClosePrice
	found := false
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, hledgerprices.E(hledgerprices.KindAPI, "cannot decode Alpha Vantage response", err)
		}
		if key, _ := keyTok.(string); key != seriesKey {
			// "Meta Data" and anything else: skip the value.
			var skip json.RawMessage
			if err := dec.Decode(&skip); err != nil {
				return nil, hledgerprices.E(hledgerprices.KindAPI, "cannot decode Alpha Vantage response", err)
			}
			continue
		}

		found = true
		tok, err := dec.Token()
		if err != nil || tok != json.Delim('{') {
			return nil, hledgerprices.E(hledgerprices.KindAPI, "unexpected Alpha Vantage time series shape", err)
		}
		for dec.More() {
			dayTok, err := dec.Token()
			if err != nil {
				return nil, hledgerprices.E(hledgerprices.KindAPI, "cannot decode Alpha Vantage time series", err)
			}
			day, ok := dayTok.(string)
			if !ok {
				return nil, hledgerprices.E(hledgerprices.KindAPI,
					fmt.Sprintf("unexpected key %v in Alpha Vantage time series", dayTok), nil)
			}
			on, err := date.Parse(day)
			if err != nil {
				return nil, hledgerprices.E(hledgerprices.KindAPI, "invalid trading day in Alpha Vantage time series", err)
			}
			var quote struct {
				Close decimal.Decimal `json:"4. close"`
			}
			if err := dec.Decode(&quote); err != nil {
				return nil, hledgerprices.E(hledgerprices.KindAPI,
					fmt.Sprintf("cannot decode quote for %s", day), err)
			}
			series = append(series, ClosePrice{Date: on, Close: quote.Close})
		}
		// consume the series' closing brace
		if _, err := dec.Token(); err != nil {
			return nil, hledgerprices.E(hledgerprices.KindAPI, "cannot decode Alpha Vantage time series", err)
		}
	}

	if !found {
		return nil, hledgerprices.E(hledgerprices.KindAPI, "Alpha Vantage response has no daily time series", nil)
	}
	return series, nil
}
