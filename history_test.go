package folio

import (
	"errors"
	"testing"

	"github.com/hmckay/folio/date"
)

func TestValueHistoryReconstruction(t *testing.T) {
	p := NewPortfolio()
	p.Append(
		buy("2025-01-01", "XYZ", "XYZ", Stocks, 10, 10),
		buy("2025-01-02", "House", "House", RealEstate, 1, 100),
	)
	q := stubQuoter{series: map[string]date.History[float64]{
		"XYZ": seriesOf(t,
			"2025-01-01", 10.0,
			"2025-01-02", 11.0,
			// the 3rd has no close, the previous one carries over
			"2025-01-04", 12.0,
		),
	}}

	points, err := p.ValueHistory(q, date.NewRange(date.MustParse("2025-01-01"), date.MustParse("2025-01-04")))
	if err != nil {
		t.Fatalf("ValueHistory: %v", err)
	}
	if len(points) != 4 {
		t.Fatalf("got %d points, want 4 (every calendar day)", len(points))
	}

	approx(t, "day1 value", points[0].Value, 100, 1e-9) // 10 shares * 10
	approx(t, "day1 flow", points[0].CashFlow, 100, 1e-9)
	approx(t, "day1 return", points[0].DailyReturn, 0, 1e-9)

	approx(t, "day2 value", points[1].Value, 210, 1e-9) // 10*11 + house at 100
	approx(t, "day2 flow", points[1].CashFlow, 100, 1e-9)
	// The plain value change, 210/100 - 1. The deposit is not backed out
	// here; the time-weighted return handles that from the cash flow.
	approx(t, "day2 return", points[1].DailyReturn, 1.10, 1e-9)

	approx(t, "day3 value", points[2].Value, 210, 1e-9) // stale close carries
	approx(t, "day3 return", points[2].DailyReturn, 0, 1e-9)

	approx(t, "day4 value", points[3].Value, 220, 1e-9) // 10*12 + 100
	approx(t, "day4 return", points[3].DailyReturn, 220.0/210-1, 1e-9)
}

// downQuoter simulates the price service being unreachable.
type downQuoter struct{ stubQuoter }

func (downQuoter) Series(string, date.Date, date.Date) (date.History[float64], error) {
	return date.History[float64]{}, errors.New("service unavailable")
}

func TestValueHistorySurvivesSeriesOutage(t *testing.T) {
	p := NewPortfolio()
	p.Append(buy("2025-01-01", "XYZ", "XYZ", Stocks, 10, 10))

	// A failed series fetch degrades to a zero contribution, it must not
	// abort the reconstruction.
	points, err := p.ValueHistory(downQuoter{}, date.NewRange(
		date.MustParse("2025-01-01"), date.MustParse("2025-01-03")))
	if err != nil {
		t.Fatalf("ValueHistory: %v", err)
	}
	if len(points) != 3 {
		t.Fatalf("got %d points, want 3", len(points))
	}
	for _, pt := range points {
		if pt.Value != 0 {
			t.Errorf("unpriceable day %v carries value %v", pt.Day, pt.Value)
		}
	}
}

func TestValueHistoryMissingPricesContributeNothing(t *testing.T) {
	p := NewPortfolio()
	p.Append(buy("2025-01-01", "GHOST", "GHOST", Stocks, 10, 10))

	points, err := p.ValueHistory(stubQuoter{}, date.NewRange(
		date.MustParse("2025-01-01"), date.MustParse("2025-01-02")))
	if err != nil {
		t.Fatalf("ValueHistory: %v", err)
	}
	for _, pt := range points {
		if pt.Value != 0 {
			t.Errorf("unpriceable asset contributed value on %v: %v", pt.Day, pt.Value)
		}
	}
	// a zero previous value must not yield an infinite return
	approx(t, "return on zero base", points[1].DailyReturn, 0, 1e-9)
}

func TestValueHistoryStaleCloseExpires(t *testing.T) {
	p := NewPortfolio()
	p.Append(buy("2025-01-01", "XYZ", "XYZ", Stocks, 1, 10))
	q := stubQuoter{series: map[string]date.History[float64]{
		"XYZ": seriesOf(t, "2025-01-01", 10.0),
	}}

	points, err := p.ValueHistory(q, date.NewRange(
		date.MustParse("2025-01-01"), date.MustParse("2025-01-15")))
	if err != nil {
		t.Fatalf("ValueHistory: %v", err)
	}
	// within a week the close carries, beyond it the asset stops contributing
	approx(t, "day 8 value", points[7].Value, 10, 1e-9)
	approx(t, "day 9 value", points[8].Value, 0, 1e-9)
}

func TestValueHistoryClampsRangeAndRejectsEmpty(t *testing.T) {
	empty := NewPortfolio()
	if _, err := empty.ValueHistory(stubQuoter{}, date.Range{}); err == nil {
		t.Error("empty portfolio must not produce a history")
	}

	p := NewPortfolio()
	p.Append(buy("2025-06-01", "XYZ", "XYZ", Stocks, 1, 10))
	points, err := p.ValueHistory(stubQuoter{}, date.NewRange(
		date.MustParse("2025-01-01"), date.MustParse("2025-06-03")))
	if err != nil {
		t.Fatalf("ValueHistory: %v", err)
	}
	if points[0].Day != date.MustParse("2025-06-01") {
		t.Errorf("range should clamp to the first transaction, starts %v", points[0].Day)
	}
}

func TestDailyReturns(t *testing.T) {
	points := []HistoryPoint{
		{Value: 100},
		{Value: 110, DailyReturn: 0.10},
		{Value: 99, DailyReturn: -0.10},
	}
	returns := DailyReturns(points)
	if len(returns) != 2 {
		t.Fatalf("got %d returns, want 2 (first day dropped)", len(returns))
	}
	approx(t, "r1", returns[0], 0.10, 1e-9)
	approx(t, "r2", returns[1], -0.10, 1e-9)

	if DailyReturns(points[:1]) != nil {
		t.Error("a single point has no returns")
	}
}
