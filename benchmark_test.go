package folio

import (
	"errors"
	"testing"

	"github.com/hmckay/folio/date"
)

func TestBenchmarkTicker(t *testing.T) {
	testCases := []struct {
		in   string
		want string
	}{
		{in: "ASX 200", want: "^AXJO"},
		{in: "S&P 500", want: "^GSPC"},
		{in: "NASDAQ", want: "^IXIC"},
		{in: "ASX 200 ETF", want: "STW.AX"},
		{in: "^GSPC", want: "^GSPC"}, // raw tickers pass through
		{in: "^FTSE", want: "^FTSE"}, // even unregistered ones
		{in: "FTSE 100", want: "FTSE 100"},
	}
	for _, tc := range testCases {
		if got := BenchmarkTicker(tc.in); got != tc.want {
			t.Errorf("BenchmarkTicker(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestCompare(t *testing.T) {
	p := NewPortfolio()
	p.Append(buy("2025-01-01", "XYZ", "XYZ", Stocks, 10, 10))

	// The portfolio doubles the index's daily moves.
	q := stubQuoter{series: map[string]date.History[float64]{
		"XYZ": seriesOf(t,
			"2025-01-01", 10.0,
			"2025-01-02", 10.2, // +2%
			"2025-01-03", 10.2, // flat
			"2025-01-04", 9.996, // -2%
		),
		"^AXJO": seriesOf(t,
			"2025-01-01", 1000.0,
			"2025-01-02", 1010.0, // +1%
			"2025-01-03", 1010.0,
			"2025-01-04", 999.9, // -1%
		),
	}}

	cmp, err := p.Compare(q, "ASX 200", date.NewRange(
		date.MustParse("2025-01-01"), date.MustParse("2025-01-04")))
	if err != nil {
		t.Fatalf("Compare: %v", err)
	}

	if cmp.Ticker != "^AXJO" {
		t.Errorf("ticker = %q", cmp.Ticker)
	}
	approx(t, "portfolio return", cmp.PortfolioReturn, -0.04, 0.001)
	approx(t, "benchmark return", cmp.BenchmarkReturn, -0.01, 0.001)
	approx(t, "beta", cmp.Beta, 2, 1e-6)
	approx(t, "outperformance", cmp.Outperformance, cmp.PortfolioReturn-cmp.BenchmarkReturn, 1e-9)
	approx(t, "alpha", cmp.Alpha, cmp.PortfolioReturn-cmp.Beta*cmp.BenchmarkReturn, 1e-9)
	if cmp.AlignedDays != 3 {
		t.Errorf("aligned days = %d, want 3", cmp.AlignedDays)
	}
	// 3 aligned points is far below the threshold
	if cmp.TrackingError != 0 {
		t.Errorf("tracking error should not be reported on %d points", cmp.AlignedDays)
	}

	// Both normalized series start at 100.
	_, first := cmp.Portfolio.First()
	approx(t, "portfolio base", first, 100, 1e-9)
	_, first = cmp.Benchmark.First()
	approx(t, "benchmark base", first, 100, 1e-9)
}

func TestCompareNoData(t *testing.T) {
	p := NewPortfolio()
	p.Append(buy("2025-01-01", "XYZ", "XYZ", Stocks, 10, 10))
	q := stubQuoter{series: map[string]date.History[float64]{
		"XYZ": seriesOf(t, "2025-01-01", 10.0, "2025-01-02", 11.0),
	}}

	r := date.NewRange(date.MustParse("2025-01-01"), date.MustParse("2025-01-02"))
	if _, err := p.Compare(q, "ASX 200", r); !errors.Is(err, ErrNoBenchmarkData) {
		t.Errorf("an empty benchmark series must fail the comparison, got %v", err)
	}

	// an unregistered name is tried as a raw ticker and fails the same way
	if _, err := p.Compare(q, "FTSE 100", r); !errors.Is(err, ErrNoBenchmarkData) {
		t.Errorf("an unknown ticker with no data must fail the comparison, got %v", err)
	}
}
