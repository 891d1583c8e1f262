package folio

import (
	"math"

	"github.com/hmckay/folio/date"
	"gonum.org/v1/gonum/stat"
)

// TradingDays is the annualization factor for daily return series.
const TradingDays = 252

// DefaultRiskFreeRate is the annual risk-free rate used when no fresher rate
// is available, as a fraction (4.3%). Roughly the RBA cash rate.
const DefaultRiskFreeRate = 0.043

// SimpleReturn is the plain percentage change from start to end. Returns 0
// when start is not positive.
func SimpleReturn(start, end float64) float64 {
	if start <= 0 {
		return 0
	}
	return (end - start) / start * 100
}

// TimeWeightedReturn chains cash-flow adjusted daily returns over the value
// history, in percent. Unlike SimpleReturn it is immune to the size and
// timing of deposits and withdrawals. Days whose previous value is not
// positive are skipped rather than poisoning the product.
func TimeWeightedReturn(points []HistoryPoint) float64 {
	if len(points) < 2 {
		return 0
	}
	product := 1.0
	for i := 1; i < len(points); i++ {
		prev := points[i-1].Value
		if prev <= 0 {
			continue
		}
		hpr := (points[i].Value - points[i].CashFlow) / prev
		product *= hpr
	}
	return (product - 1) * 100
}

// CAGR annualizes growth from start to end over the given number of years,
// in percent. Returns 0 when the start or the period is not positive; a
// portfolio that ends at zero legitimately reports -100%.
func CAGR(start, end, years float64) float64 {
	if start <= 0 || years <= 0 {
		return 0
	}
	return (math.Pow(end/start, 1/years) - 1) * 100
}

// SharpeRatio is the annualized excess return per unit of volatility.
// riskFree is annual, as a fraction. Returns 0 when the series is too short
// or flat.
func SharpeRatio(dailyReturns []float64, riskFree float64) float64 {
	if len(dailyReturns) < 2 {
		return 0
	}
	sd := stat.StdDev(dailyReturns, nil)
	if sd == 0 || math.IsNaN(sd) {
		return 0
	}
	annualized := stat.Mean(dailyReturns, nil) * TradingDays
	return (annualized - riskFree) / (sd * math.Sqrt(TradingDays))
}

// Volatility is the annualized standard deviation of daily returns, in
// percent.
func Volatility(dailyReturns []float64) float64 {
	if len(dailyReturns) < 2 {
		return 0
	}
	sd := stat.StdDev(dailyReturns, nil)
	if math.IsNaN(sd) {
		return 0
	}
	return sd * math.Sqrt(TradingDays) * 100
}

// Beta measures the portfolio's sensitivity to benchmark moves: covariance
// of the two return series over the benchmark's variance. The series must be
// date-aligned by the caller. Returns 0 when the series are too short,
// mismatched, or the benchmark is flat.
func Beta(portfolio, benchmark []float64) float64 {
	if len(portfolio) != len(benchmark) || len(portfolio) < 2 {
		return 0
	}
	v := stat.Variance(benchmark, nil)
	if v == 0 || math.IsNaN(v) {
		return 0
	}
	return stat.Covariance(portfolio, benchmark, nil) / v
}

// Drawdown describes the deepest peak-to-trough decline of a value history.
type Drawdown struct {
	Percent float64 // depth as a positive percentage
	Peak    date.Date
	Trough  date.Date
}

// MaxDrawdown finds the worst decline from a running maximum. A history that
// never declines reports a zero drawdown with zero peak and trough dates.
func MaxDrawdown(points []HistoryPoint) Drawdown {
	if len(points) == 0 {
		return Drawdown{}
	}

	peak := points[0].Value
	peakDay := points[0].Day
	var worst Drawdown
	for _, pt := range points {
		if pt.Value > peak {
			peak = pt.Value
			peakDay = pt.Day
		}
		if peak <= 0 {
			continue
		}
		dd := (pt.Value - peak) / peak * 100
		if dd < -worst.Percent {
			worst = Drawdown{Percent: -dd, Peak: peakDay, Trough: pt.Day}
		}
	}
	return worst
}

// Concentration summarizes how much of the portfolio sits in its largest
// positions. The Herfindahl index sums squared percentage weights, so it
// ranges from near 0 (fully diversified) to 10000 (a single holding).
type Concentration struct {
	Top1       float64
	Top3       float64
	Top5       float64
	Herfindahl float64
}

// Concentrate computes concentration from holdings, which must already carry
// weights (as Holdings produces them).
func Concentrate(holdings []Holding) Concentration {
	var c Concentration
	for i, h := range holdings {
		if i < 1 {
			c.Top1 += h.Weight
		}
		if i < 3 {
			c.Top3 += h.Weight
		}
		if i < 5 {
			c.Top5 += h.Weight
		}
		c.Herfindahl += h.Weight * h.Weight
	}
	return c
}

// YearToDate computes the simple return from the last value on or before Jan 1
// of the final point's year. With no baseline (the history starts mid-year)
// the first point stands in.
func YearToDate(points []HistoryPoint) float64 {
	if len(points) < 2 {
		return 0
	}
	last := points[len(points)-1]
	soy := last.Day.StartOfYear()

	baseline := points[0]
	for _, pt := range points {
		if pt.Day.After(soy) {
			break
		}
		baseline = pt
	}
	return SimpleReturn(baseline.Value, last.Value)
}
