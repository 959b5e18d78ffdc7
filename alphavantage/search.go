package alphavantage

import "net/url"

// SearchMatch matches the structure of a single item in the SYMBOL_SEARCH
// API response.
type SearchMatch struct {
	Symbol      string `json:"1. symbol"`
	Name        string `json:"2. name"`
	Type        string `json:"3. type"`
	Region      string `json:"4. region"`
	MarketOpen  string `json:"5. marketOpen"`
	MarketClose string `json:"6. marketClose"`
	Timezone    string `json:"7. timezone"`
	Currency    string `json:"8. currency"`
	MatchScore  string `json:"9. matchScore"`
}

// SearchSymbol searches for stock symbols matching the query, best match
// first as ranked by the API.
func (c *Client) SearchSymbol(query string) ([]SearchMatch, error) {
	params := url.Values{}
	params.Set("function", "SYMBOL_SEARCH")
	params.Set("keywords", query)

	var payload struct {
		BestMatches []SearchMatch `json:"bestMatches"`
	}
	if err := c.jwget(c.query(params), &payload); err != nil {
		return nil, err
	}
	return payload.BestMatches, nil
}
