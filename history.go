package folio

import (
	"fmt"
	"log"

	"github.com/hmckay/folio/date"
	"github.com/shopspring/decimal"
)

// HistoryPoint is the portfolio's state on one calendar day.
type HistoryPoint struct {
	Day      date.Date
	Value    float64
	CashFlow float64 // net capital moved in on that day, buys minus sells
	// DailyReturn is the plain value change against the previous day, 0 on
	// the first day. Cash flows are not backed out here; TimeWeightedReturn
	// does that itself from Value and CashFlow.
	DailyReturn float64
}

// ValueHistory reconstructs the portfolio's daily value from the first
// transaction to the end of the range. Every calendar day is a point, not
// just trading days.
//
// Marketable assets are valued at the day's close; a day with no close (and
// none within the prior week) contributes nothing for that asset rather than
// carrying a stale number forward. Everything else is frozen at its most
// recent transaction price.
func (p *Portfolio) ValueHistory(q Quoter, r date.Range) ([]HistoryPoint, error) {
	if p.Len() == 0 {
		return nil, fmt.Errorf("cannot build a value history from an empty portfolio")
	}
	if oldest := p.OldestTransactionDate(); r.From.Before(oldest) {
		r.From = oldest
	}
	if r.To.Before(r.From) {
		return nil, fmt.Errorf("invalid history range %v..%v", r.From, r.To)
	}

	// Prefetch one series per marketable ticker so the day loop never hits
	// the network.
	series := make(map[string]date.History[float64])
	for _, k := range p.groupKeys() {
		if !k.AssetType.Marketable() {
			continue
		}
		if _, ok := series[k.Ticker]; ok {
			continue
		}
		s, err := q.Series(k.Ticker, r.From, r.To)
		if err != nil {
			// Price data being down is not fatal: the ticker contributes
			// nothing until it comes back, like any other missing close.
			log.Printf("no price series for %q: %v", k.Ticker, err)
		}
		series[k.Ticker] = s
	}

	keys := p.groupKeys()
	points := make([]HistoryPoint, 0, r.Days())
	prev := 0.0
	first := true
	for day := range r.All() {
		var value float64
		var cashFlow decimal.Decimal

		for _, k := range keys {
			qty := p.quantityAsOf(k, day)
			if !qty.IsPositive() {
				continue
			}
			qf, _ := qty.Float64()

			if k.AssetType.Marketable() {
				if price, ok := nearbyClose(series[k.Ticker], day); ok {
					value += qf * price
				}
				continue
			}
			if price, ok := p.LastTradePrice(k.Ticker, day); ok {
				pf, _ := price.Float64()
				value += qf * pf
			}
		}

		for _, tx := range p.transactions {
			if tx.Date.After(day) {
				break
			}
			if tx.Date == day {
				cashFlow = cashFlow.Add(tx.SignedValue())
			}
		}
		cf, _ := cashFlow.Float64()

		point := HistoryPoint{Day: day, Value: value, CashFlow: cf}
		if !first && prev > 0 {
			point.DailyReturn = value/prev - 1
		}
		points = append(points, point)
		prev = value
		first = false
	}
	return points, nil
}

// quantityAsOf nets buys and sells for a group up to and including day.
func (p *Portfolio) quantityAsOf(k GroupKey, day date.Date) decimal.Decimal {
	var q decimal.Decimal
	for _, tx := range p.transactions {
		if tx.Date.After(day) {
			break
		}
		if tx.AssetName == k.AssetName && tx.AssetType == k.AssetType && tx.Ticker == k.Ticker {
			q = q.Add(tx.SignedQuantity())
		}
	}
	return q
}

// nearbyClose returns the close on day, or the nearest earlier close within
// a week, to bridge weekends and market holidays.
func nearbyClose(s date.History[float64], day date.Date) (float64, bool) {
	if s.Len() == 0 {
		return 0, false
	}
	if v, ok := s.Get(day); ok {
		return v, true
	}
	on, v, ok := s.LatestOnOrBefore(day)
	if !ok || day.Sub(on) > 7 {
		return 0, false
	}
	return v, true
}

// DailyReturns extracts the daily return series from a value history,
// dropping the first point which has no predecessor.
func DailyReturns(points []HistoryPoint) []float64 {
	if len(points) < 2 {
		return nil
	}
	returns := make([]float64, 0, len(points)-1)
	for _, pt := range points[1:] {
		returns = append(returns, pt.DailyReturn)
	}
	return returns
}
