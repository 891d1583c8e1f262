package folio

import "fmt"

// InsightLevel grades an insight from celebration to concern.
type InsightLevel int

const (
	Positive InsightLevel = iota
	Info
	Warning
	Negative
)

func (l InsightLevel) String() string {
	switch l {
	case Positive:
		return "positive"
	case Info:
		return "info"
	case Warning:
		return "warning"
	case Negative:
		return "negative"
	}
	return fmt.Sprintf("InsightLevel(%d)", int(l))
}

// Insight is one plain-language observation about the portfolio.
type Insight struct {
	Level   InsightLevel
	Message string
}

// Thresholds for the insight rules. They grade a personal portfolio, not a
// fund, so they err on the chatty side.
const (
	excellentSharpe = 2.0
	highVolatility  = 25.0 // percent, annualized
	deepDrawdown    = 20.0 // percent
	heavyTopHolding = 30.0 // percent of portfolio value
	notableGap      = 5.0  // percentage points vs benchmark
)

// Insights derives rule-based observations from a performance report and an
// optional benchmark comparison (pass nil when none was run). The result is
// ordered from most to least severe.
func Insights(report *PerformanceReport, cmp *BenchmarkComparison) []Insight {
	var out []Insight
	add := func(level InsightLevel, format string, args ...any) {
		out = append(out, Insight{Level: level, Message: fmt.Sprintf(format, args...)})
	}

	if report.MaxDrawdown.Percent > deepDrawdown {
		add(Negative, "The portfolio fell %.1f%% from its %v peak to %v. That is a deep drawdown; check whether the losers still earn their place.",
			report.MaxDrawdown.Percent, report.MaxDrawdown.Peak, report.MaxDrawdown.Trough)
	}
	if report.SharpeRatio < 0 {
		add(Negative, "The Sharpe ratio is %.2f: the portfolio returned less than cash would have, after adjusting for risk.", report.SharpeRatio)
	}
	if report.Volatility > highVolatility {
		add(Warning, "Annualized volatility of %.1f%% is high for a personal portfolio. Expect large day-to-day swings.", report.Volatility)
	}
	if top := report.Concentration.Top1; top > heavyTopHolding && len(report.Holdings) > 0 {
		add(Warning, "%s alone is %.1f%% of the portfolio. A single-name stumble moves everything.",
			report.Holdings[0].AssetName, top)
	}
	if report.SharpeRatio > excellentSharpe {
		add(Positive, "A Sharpe ratio of %.2f is excellent: strong returns for the risk taken.", report.SharpeRatio)
	}

	if cmp != nil {
		switch {
		case cmp.Outperformance > notableGap:
			add(Positive, "The portfolio beat the %s by %.1f percentage points over this period.", cmp.Name, cmp.Outperformance)
		case cmp.Outperformance < -notableGap:
			add(Warning, "The portfolio trailed the %s by %.1f percentage points. A low-cost index fund did better.", cmp.Name, -cmp.Outperformance)
		default:
			add(Info, "Performance roughly tracked the %s (%.1f points apart).", cmp.Name, cmp.Outperformance)
		}
		if cmp.Beta > 1.2 {
			add(Info, "A beta of %.2f means the portfolio amplifies market moves by about %.0f%%.", cmp.Beta, (cmp.Beta-1)*100)
		} else if cmp.Beta > 0 && cmp.Beta < 0.8 && cmp.AlignedDays >= 2 {
			add(Info, "A beta of %.2f means the portfolio is noticeably calmer than the market.", cmp.Beta)
		}
	}

	if len(out) == 0 {
		add(Info, "Nothing unusual to report: risk, concentration and returns all look ordinary.")
	}
	return out
}
