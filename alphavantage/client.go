// Package alphavantage implements a minimal client for the Alpha Vantage
// market data API: symbol search and daily closing price history.
//
// See https://www.alphavantage.co/documentation/ for the API itself.
package alphavantage

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/PaesslerAG/jsonpath"
	hledgerprices "github.com/etnz/hledger-prices"
)

const defaultBaseURL = "https://www.alphavantage.co"

// Client queries the Alpha Vantage API with a fixed API key.
type Client struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// NewClient returns a client authenticated with the given API key.
func NewClient(apiKey string) *Client {
	return NewClientAt(apiKey, defaultBaseURL)
}

// NewClientAt returns a client talking to the API served at baseURL instead
// of the public endpoint.
func NewClientAt(apiKey, baseURL string) *Client {
	c := new(http.Client)
	c.Transport = &userAgentTransport{base: http.DefaultTransport}
	return &Client{apiKey: apiKey, baseURL: baseURL, client: c}
}

// userAgentTransport stamps every request with the tool's User-Agent.
type userAgentTransport struct{ base http.RoundTripper }

func (t *userAgentTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	req.Header.Set("User-Agent",
		fmt.Sprintf("%s V%s (%s)", hledgerprices.Name, hledgerprices.Version, hledgerprices.Repository))
	return t.base.RoundTrip(req)
}

// query builds the URL of an API call. All endpoints live behind /query and
// select their operation with the "function" parameter.
func (c *Client) query(params url.Values) string {
	params.Set("apikey", c.apiKey)
	return c.baseURL + "/query?" + params.Encode()
}

// get performs an HTTP GET request and returns the response body, after
// checking the HTTP status and probing the payload for an API-reported error.
// Error messages carry host and path only: the full URL contains the API key.
func (c *Client) get(addr string) ([]byte, error) {
	resp, err := c.client.Get(addr)
	if err != nil {
		u, _ := url.Parse(addr)
		return nil, hledgerprices.E(hledgerprices.KindAPI,
			fmt.Sprintf("cannot http GET %v%v", u.Host, u.Path), err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, hledgerprices.E(hledgerprices.KindAPI,
			fmt.Sprintf("cannot http GET %v%v: %v", resp.Request.URL.Host, resp.Request.URL.Path, resp.Status), nil)
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, resp.Body); err != nil {
		return nil, hledgerprices.E(hledgerprices.KindAPI, "error reading Alpha Vantage response", err)
	}
	if err := apiError(buf.Bytes()); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// jwget performs an HTTP GET request to the given address and unmarshals the
// JSON response body into the provided data structure.
func (c *Client) jwget(addr string, data interface{}) error {
	body, err := c.get(addr)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, data); err != nil {
		return hledgerprices.E(hledgerprices.KindAPI, "cannot decode Alpha Vantage response", err)
	}
	return nil
}

// Alpha Vantage reports failures in the body of a 200 response, under a key
// that depends on the failure: "Error Message" for a bad symbol or function,
// "Note" for rate limiting, "Information" for key problems.
var errorPaths = []string{
	`$["Error Message"]`,
	`$["Note"]`,
	`$["Information"]`,
}

// apiError returns a non-nil error when the payload is an API-reported error.
func apiError(body []byte) error {
	var jobj interface{}
	if err := json.Unmarshal(body, &jobj); err != nil {
		return hledgerprices.E(hledgerprices.KindAPI, "cannot decode Alpha Vantage response", err)
	}
	for _, path := range errorPaths {
		jval, err := jsonpath.Get(path, jobj)
		if err != nil {
			continue // the key is absent, so is this class of error
		}
		if msg, ok := jval.(string); ok {
			return hledgerprices.E(hledgerprices.KindAPI, "Alpha Vantage returned an error: "+msg, nil)
		}
	}
	return nil
}
