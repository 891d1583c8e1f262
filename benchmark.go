package folio

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/hmckay/folio/date"
	"gonum.org/v1/gonum/stat"
)

// ErrNoBenchmarkData is returned when a benchmark series could not be
// fetched or is empty over the requested range.
var ErrNoBenchmarkData = errors.New("no benchmark data for the requested period")

// Benchmarks maps friendly benchmark names to their index or proxy ticker.
var Benchmarks = map[string]string{
	"ASX 200":         "^AXJO",
	"ASX 200 ETF":     "STW.AX",
	"S&P 500":         "^GSPC",
	"NASDAQ":          "^IXIC",
	"US Total Market": "VTS.AX",
	"Global Shares":   "VGS.AX",
}

// BenchmarkNames lists the known benchmarks in a stable order.
func BenchmarkNames() []string {
	names := make([]string, 0, len(Benchmarks))
	for name := range Benchmarks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// BenchmarkTicker resolves a friendly benchmark name to its ticker. Anything
// not in the table passes through unchanged, so a raw ticker like "^FTSE"
// works without being registered.
func BenchmarkTicker(name string) string {
	if ticker, ok := Benchmarks[name]; ok {
		return ticker
	}
	return name
}

// minTrackingPoints is the smallest number of aligned daily returns for which
// a tracking error is statistically worth reporting.
const minTrackingPoints = 30

// BenchmarkComparison holds the portfolio measured against one index over a
// period. Returns are in percent, Alpha and Outperformance in percentage
// points.
type BenchmarkComparison struct {
	Name            string
	Ticker          string
	Range           date.Range
	PortfolioReturn float64
	BenchmarkReturn float64
	Beta            float64
	Alpha           float64
	Outperformance  float64
	TrackingError   float64 // annualized, percent; 0 when too few points
	AlignedDays     int

	// Normalized series, both rebased to 100 at the first aligned day, for
	// plotting growth side by side.
	Portfolio date.History[float64]
	Benchmark date.History[float64]
}

// Compare measures the portfolio against a named benchmark over r. The
// portfolio side uses the time-weighted return so deposits do not masquerade
// as performance; beta and tracking error use only days where both series
// have a value.
func (p *Portfolio) Compare(q Quoter, benchmark string, r date.Range) (*BenchmarkComparison, error) {
	ticker := BenchmarkTicker(benchmark)

	points, err := p.ValueHistory(q, r)
	if err != nil {
		return nil, err
	}
	if len(points) < 2 {
		return nil, fmt.Errorf("not enough portfolio history between %v and %v", r.From, r.To)
	}

	index, err := q.Series(ticker, points[0].Day, points[len(points)-1].Day)
	if err != nil {
		return nil, fmt.Errorf("could not fetch benchmark %q: %w", ticker, err)
	}
	if index.Len() < 2 {
		return nil, fmt.Errorf("benchmark %q: %w", ticker, ErrNoBenchmarkData)
	}

	cmp := &BenchmarkComparison{
		Name:   benchmark,
		Ticker: ticker,
		Range:  date.Range{From: points[0].Day, To: points[len(points)-1].Day},
	}

	cmp.PortfolioReturn = TimeWeightedReturn(points)
	_, first := index.First()
	_, last := index.Latest()
	cmp.BenchmarkReturn = SimpleReturn(first, last)
	cmp.Outperformance = cmp.PortfolioReturn - cmp.BenchmarkReturn

	// Align the two daily return series on the days both traded.
	portReturns, benchReturns := alignReturns(points, &index)
	cmp.AlignedDays = len(portReturns)
	cmp.Beta = Beta(portReturns, benchReturns)
	cmp.Alpha = cmp.PortfolioReturn - cmp.Beta*cmp.BenchmarkReturn

	if len(portReturns) > minTrackingPoints {
		diffs := make([]float64, len(portReturns))
		for i := range portReturns {
			diffs[i] = portReturns[i] - benchReturns[i]
		}
		if sd := stat.StdDev(diffs, nil); !math.IsNaN(sd) {
			cmp.TrackingError = sd * math.Sqrt(TradingDays) * 100
		}
	}

	cmp.Portfolio = normalizePoints(points)
	cmp.Benchmark = normalizeSeries(&index)
	return cmp, nil
}

// alignReturns pairs portfolio and benchmark daily returns on the
// intersection of their days.
func alignReturns(points []HistoryPoint, index *date.History[float64]) (portfolio, benchmark []float64) {
	var prevPort, prevBench float64
	havePrev := false
	for _, pt := range points {
		px, ok := index.Get(pt.Day)
		if !ok {
			continue
		}
		if havePrev && prevPort > 0 && prevBench > 0 {
			portfolio = append(portfolio, pt.Value/prevPort-1)
			benchmark = append(benchmark, px/prevBench-1)
		}
		prevPort, prevBench = pt.Value, px
		havePrev = true
	}
	return portfolio, benchmark
}

// normalizePoints rebases a value history to 100 at its first positive value.
func normalizePoints(points []HistoryPoint) date.History[float64] {
	var h date.History[float64]
	base := 0.0
	for _, pt := range points {
		if base == 0 && pt.Value > 0 {
			base = pt.Value
		}
		if base > 0 {
			h.Append(pt.Day, pt.Value/base*100)
		}
	}
	return h
}

// normalizeSeries rebases a price series to 100 at its first value.
func normalizeSeries(s *date.History[float64]) date.History[float64] {
	var h date.History[float64]
	_, base := s.First()
	if base <= 0 {
		return h
	}
	for day, v := range s.Values() {
		h.Append(day, v/base*100)
	}
	return h
}
