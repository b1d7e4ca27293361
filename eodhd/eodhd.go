// Package eodhd implements a flexfolio.PriceSource over the EODHD end-of-day
// REST API. Responses are cached on disk with a daily expiry, so repeated
// valuations of the same statement hit the network at most once per day per
// request.
package eodhd

import (
	"flag"
	"fmt"
	"net/http"
	"net/url"
	"os"

	"github.com/etnz/flexfolio"
)

const apiKeyEnv = "EODHD_API_KEY"

var apiKeyFlag = flag.String("eodhd-api-key", "", "EODHD API key used for fetching prices from EODHD.com.\n If missing it is read from the environment variable \""+apiKeyEnv+"\". You can get one at https://eodhd.com/")

// APIKey returns the configured EODHD API key: the flag, or the environment
// variable as fallback.
func APIKey() string {
	if *apiKeyFlag == "" {
		*apiKeyFlag = os.Getenv(apiKeyEnv)
	}
	return *apiKeyFlag
}

const defaultBaseURL = "https://eodhd.com/api"

// Source fetches daily close prices from EODHD.
type Source struct {
	// BaseURL of the API, defaultBaseURL unless overridden.
	BaseURL string
	apiKey  string
	client  *http.Client
}

// NewSource returns a price source authenticating with the given API key.
func NewSource(apiKey string) *Source {
	return &Source{BaseURL: defaultBaseURL, apiKey: apiKey, client: daily()}
}

// Prices implements flexfolio.PriceSource: the daily adjusted close series for
// a US-listed symbol, bounds included, with gaps on non-trading days.
func (s *Source) Prices(symbol string, from, to flexfolio.Date) (*flexfolio.Series, error) {
	// https://eodhd.com/api/eod/AAPL.US?api_token=demo&fmt=json&from=2018-02-05&to=2018-02-09
	// [
	//	{
	//		"date": "2018-02-05",
	//		"open": 159.1,
	//		"high": 163.88,
	//		"low": 156.0,
	//		"close": 156.49,
	//		"adjusted_close": 37.01,
	//		"volume": 72738522
	//	},
	addr := fmt.Sprintf("%s/eod/%s.US?fmt=json&api_token=%s&from=%s&to=%s",
		s.BaseURL, url.PathEscape(symbol), url.QueryEscape(s.apiKey), from, to)

	type info struct {
		Date  flexfolio.Date `json:"date"`
		Close float64        `json:"adjusted_close"`
	}
	content := make([]info, 0)
	if err := jwget(s.client, addr, &content); err != nil {
		return nil, fmt.Errorf("eodhd prices for %s: %w", symbol, err)
	}

	prices := &flexfolio.Series{}
	for _, point := range content {
		prices.Append(point.Date, point.Close)
	}
	return prices, nil
}

var _ flexfolio.PriceSource = (*Source)(nil)
