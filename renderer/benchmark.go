package renderer

import (
	"fmt"

	"github.com/hmckay/folio"
	"github.com/hmckay/folio/date"
)

// Benchmark is the view behind the benchmark comparison report.
type Benchmark struct {
	Name   string    `json:"name"`
	Ticker string    `json:"ticker"`
	From   date.Date `json:"from"`
	To     date.Date `json:"to"`

	PortfolioReturn folio.Percent `json:"portfolioReturn"`
	BenchmarkReturn folio.Percent `json:"benchmarkReturn"`
	Outperformance  folio.Percent `json:"outperformance"`
	Beat            bool          `json:"beat"`

	Beta             float64       `json:"beta"`
	Alpha            folio.Percent `json:"alpha"`
	TrackingError    folio.Percent `json:"trackingError"`
	HasTrackingError bool          `json:"hasTrackingError"`
	AlignedDays      int           `json:"alignedDays"`

	Growth []GrowthRow `json:"growth,omitempty"`
}

// GrowthRow is one sampled point of the two normalized series, both rebased
// to 100 at the start of the period.
type GrowthRow struct {
	Day       date.Date `json:"day"`
	Portfolio string    `json:"portfolio"`
	Benchmark string    `json:"benchmark"`
}

// growthSamples caps the number of rows in the growth table.
const growthSamples = 12

// NewBenchmark builds the benchmark view from a comparison.
func NewBenchmark(c *folio.BenchmarkComparison) *Benchmark {
	view := &Benchmark{
		Name:   c.Name,
		Ticker: c.Ticker,
		From:   c.Range.From,
		To:     c.Range.To,

		PortfolioReturn: folio.Percent(c.PortfolioReturn),
		BenchmarkReturn: folio.Percent(c.BenchmarkReturn),
		Outperformance:  folio.Percent(c.Outperformance),
		Beat:            c.Outperformance > 0,

		Beta:             c.Beta,
		Alpha:            folio.Percent(c.Alpha),
		TrackingError:    folio.Percent(c.TrackingError),
		HasTrackingError: c.TrackingError != 0,
		AlignedDays:      c.AlignedDays,
	}

	// Sample both series on the benchmark's days, evenly spaced.
	n := c.Benchmark.Len()
	if n > 0 {
		step := n / growthSamples
		if step < 1 {
			step = 1
		}
		i := 0
		for day, bench := range c.Benchmark.Values() {
			if i%step == 0 || i == n-1 {
				port, ok := c.Portfolio.ValueAsOf(day)
				if ok {
					view.Growth = append(view.Growth, GrowthRow{
						Day:       day,
						Portfolio: fmt.Sprintf("%.1f", port),
						Benchmark: fmt.Sprintf("%.1f", bench),
					})
				}
			}
			i++
		}
	}
	return view
}

// RenderBenchmark renders the benchmark view to a markdown string.
func RenderBenchmark(b *Benchmark) string {
	partials := map[string]string{
		"benchmark_stats":  "benchmark_stats.md",
		"benchmark_growth": "benchmark_growth.md",
	}
	return renderTemplate("benchmark", "benchmark.md", partials, b)
}
