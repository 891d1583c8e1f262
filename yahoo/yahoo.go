// Package yahoo fetches live and historical prices from the Yahoo Finance
// chart API. It implements the folio.Quoter contract: lookups that miss
// (unknown ticker, delisted, service down) report false instead of failing,
// so valuation degrades instead of stopping.
package yahoo

import (
	"fmt"
	"net/http"
	"time"

	"github.com/PaesslerAG/jsonpath"
	"github.com/hmckay/folio/date"
)

// DefaultBaseURL is the chart API endpoint.
const DefaultBaseURL = "https://query1.finance.yahoo.com"

// FallbackForexRate stands in for USD to AUD when the service is unreachable,
// so a portfolio with US holdings still values to something sensible.
const FallbackForexRate = 1.52

// historicalLookback is how far back HistoricalPrice searches for a close
// when the requested day has none (weekends, market holidays).
const historicalLookback = 7 // days

// Client queries the chart API. The zero value is not usable; call New.
type Client struct {
	base   string
	client *http.Client
}

// New returns a client backed by a daily-expiring disk cache.
func New() *Client {
	return &Client{base: DefaultBaseURL, client: daily()}
}

// NewWithBase returns an uncached client against an alternate endpoint.
// Meant for tests.
func NewWithBase(base string) *Client {
	return &Client{base: base, client: new(http.Client)}
}

// chart fetches the raw chart payload for a ticker over a unix time range.
func (c *Client) chart(ticker string, from, to int64, interval string) (any, error) {
	addr := fmt.Sprintf("%s/v8/finance/chart/%s?period1=%d&period2=%d&interval=%s&events=history",
		c.base, ticker, from, to, interval)

	var payload any
	if err := jwget(c.client, addr, &payload); err != nil {
		return nil, err
	}
	if msg, err := jsonpath.Get("$.chart.error.description", payload); err == nil && msg != nil {
		return nil, fmt.Errorf("chart API error for %q: %v", ticker, msg)
	}
	return payload, nil
}

// Series returns daily closes for ticker over the range, inclusive.
func (c *Client) Series(ticker string, from, to date.Date) (prices date.History[float64], err error) {
	// period2 is exclusive, push it past the end of the last day.
	payload, err := c.chart(ticker, from.Time().Unix(), to.Add(1).Time().Unix(), "1d")
	if err != nil {
		return prices, err
	}

	stamps, err := jsonpath.Get("$.chart.result[0].timestamp", payload)
	if err != nil {
		// A valid payload with no timestamps is an empty series, not an error.
		return prices, nil
	}
	closes, err := jsonpath.Get("$.chart.result[0].indicators.quote[0].close", payload)
	if err != nil {
		return prices, fmt.Errorf("malformed chart payload for %q: %w", ticker, err)
	}

	stampList, ok1 := stamps.([]any)
	closeList, ok2 := closes.([]any)
	if !ok1 || !ok2 || len(stampList) != len(closeList) {
		return prices, fmt.Errorf("malformed chart payload for %q: timestamps and closes disagree", ticker)
	}

	for i, s := range stampList {
		ts, ok := s.(float64)
		if !ok {
			continue
		}
		px, ok := closeList[i].(float64) // null closes (halted days) skip the cast
		if !ok {
			continue
		}
		prices.Append(date.FromTime(time.Unix(int64(ts), 0).UTC()), px)
	}
	return prices, nil
}

// LivePrice returns the latest traded price for ticker.
func (c *Client) LivePrice(ticker string) (float64, bool) {
	now := time.Now().Unix()
	payload, err := c.chart(ticker, now-24*3600, now, "1d")
	if err != nil {
		return 0, false
	}
	v, err := jsonpath.Get("$.chart.result[0].meta.regularMarketPrice", payload)
	if err != nil {
		return 0, false
	}
	price, ok := v.(float64)
	return price, ok && price > 0
}

// HistoricalPrice returns the close on the given day, or the nearest earlier
// close within a week.
func (c *Client) HistoricalPrice(ticker string, on date.Date) (float64, bool) {
	prices, err := c.Series(ticker, on.Add(-historicalLookback), on)
	if err != nil || prices.Len() == 0 {
		return 0, false
	}
	price, ok := prices.ValueAsOf(on)
	return price, ok
}

// ForexRate returns the from->to conversion rate. Same-currency pairs are 1;
// an unreachable service falls back to a fixed USD/AUD rate rather than
// zeroing out foreign holdings.
func (c *Client) ForexRate(from, to string) float64 {
	if from == to {
		return 1
	}
	if rate, ok := c.LivePrice(fmt.Sprintf("%s%s=X", from, to)); ok {
		return rate
	}
	switch {
	case from == "USD" && to == "AUD":
		return FallbackForexRate
	case from == "AUD" && to == "USD":
		return 1 / FallbackForexRate
	}
	return 1
}
