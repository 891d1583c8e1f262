package folio

import (
	"math"
	"testing"

	"github.com/hmckay/folio/date"
	"github.com/shopspring/decimal"
)

// buy and sell are shorthands for building test transactions.
func buy(day, name, ticker string, at AssetType, quantity, price float64) Transaction {
	return NewTransaction(name, at, ticker,
		decimal.NewFromFloat(quantity), decimal.NewFromFloat(price),
		date.MustParse(day), Buy)
}

func sell(day, name, ticker string, at AssetType, quantity, price float64) Transaction {
	return NewTransaction(name, at, ticker,
		decimal.NewFromFloat(quantity), decimal.NewFromFloat(price),
		date.MustParse(day), Sell)
}

// stubQuoter serves canned market data to tests.
type stubQuoter struct {
	live   map[string]float64
	series map[string]date.History[float64]
	fx     float64
}

func (s stubQuoter) LivePrice(ticker string) (float64, bool) {
	price, ok := s.live[ticker]
	return price, ok
}

func (s stubQuoter) HistoricalPrice(ticker string, on date.Date) (float64, bool) {
	h, ok := s.series[ticker]
	if !ok {
		return 0, false
	}
	return h.ValueAsOf(on)
}

func (s stubQuoter) ForexRate(from, to string) float64 {
	if from == to || s.fx == 0 {
		return 1
	}
	return s.fx
}

func (s stubQuoter) Series(ticker string, from, to date.Date) (date.History[float64], error) {
	var out date.History[float64]
	h, ok := s.series[ticker]
	if !ok {
		return out, nil
	}
	r := date.NewRange(from, to)
	for day, v := range h.Values() {
		if r.Contains(day) {
			out.Append(day, v)
		}
	}
	return out, nil
}

// seriesOf builds a history from day/value pairs.
func seriesOf(t *testing.T, pairs ...any) date.History[float64] {
	t.Helper()
	var h date.History[float64]
	for i := 0; i < len(pairs); i += 2 {
		h.Append(date.MustParse(pairs[i].(string)), pairs[i+1].(float64))
	}
	return h
}

// approx fails the test when got is not within eps of want.
func approx(t *testing.T, name string, got, want, eps float64) {
	t.Helper()
	if math.Abs(got-want) > eps {
		t.Errorf("%s = %v, want %v (±%v)", name, got, want, eps)
	}
}
