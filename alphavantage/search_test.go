package alphavantage

import (
	"net/http"
	"testing"
)

const searchPayload = `{
  "bestMatches": [
    {
      "1. symbol": "AAPL",
      "2. name": "Apple Inc",
      "3. type": "Equity",
      "4. region": "United States",
      "5. marketOpen": "09:30",
      "6. marketClose": "16:00",
      "7. timezone": "UTC-04",
      "8. currency": "USD",
      "9. matchScore": "0.8889"
    },
    {
      "1. symbol": "APLE",
      "2. name": "Apple Hospitality REIT Inc",
      "3. type": "Equity",
      "4. region": "United States",
      "5. marketOpen": "09:30",
      "6. marketClose": "16:00",
      "7. timezone": "UTC-04",
      "8. currency": "USD",
      "9. matchScore": "0.5714"
    }
  ]
}`

func TestSearchSymbol(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("function") != "SYMBOL_SEARCH" {
			t.Errorf("function = %q, want SYMBOL_SEARCH", q.Get("function"))
		}
		if q.Get("keywords") != "apple" {
			t.Errorf("keywords = %q, want apple", q.Get("keywords"))
		}
		w.Write([]byte(searchPayload))
	})

	matches, err := c.SearchSymbol("apple")
	if err != nil {
		t.Fatalf("SearchSymbol() unexpected error = %v", err)
	}
	if len(matches) != 2 {
		t.Fatalf("SearchSymbol() returned %d matches, want 2", len(matches))
	}
	first := matches[0]
	if first.Symbol != "AAPL" || first.Name != "Apple Inc" || first.Region != "United States" ||
		first.Currency != "USD" || first.MatchScore != "0.8889" {
		t.Errorf("SearchSymbol()[0] = %+v", first)
	}
}

func TestSearchSymbol_NoMatches(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"bestMatches": []}`))
	})
	matches, err := c.SearchSymbol("nothing")
	if err != nil {
		t.Fatalf("SearchSymbol() unexpected error = %v", err)
	}
	if len(matches) != 0 {
		t.Errorf("SearchSymbol() returned %d matches, want 0", len(matches))
	}
}
