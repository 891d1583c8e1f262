package folio

import (
	"github.com/hmckay/folio/date"
	"github.com/shopspring/decimal"
)

// PerformanceReport bundles every performance and risk figure for a period,
// so the presentation layer renders from one value instead of re-deriving.
type PerformanceReport struct {
	Range       date.Range
	StartValue  float64
	EndValue    float64
	NetInvested decimal.Decimal

	SimpleReturn       float64 // percent
	TimeWeightedReturn float64 // percent
	CAGR               float64 // percent, only meaningful over long periods
	YearToDate         float64 // percent

	RiskFreeRate float64 // annual fraction used for the Sharpe ratio
	SharpeRatio  float64
	Volatility   float64 // annualized, percent
	MaxDrawdown  Drawdown

	Holdings      []Holding
	Concentration Concentration

	History []HistoryPoint
}

// Performance computes the full report over r, valuing with q and using
// riskFree (annual fraction) for risk-adjusted figures. Pass
// DefaultRiskFreeRate when no fresher rate is on hand.
func (p *Portfolio) Performance(q Quoter, r date.Range, riskFree float64) (*PerformanceReport, error) {
	points, err := p.ValueHistory(q, r)
	if err != nil {
		return nil, err
	}

	holdings := p.Holdings(q)
	returns := DailyReturns(points)

	report := &PerformanceReport{
		Range:        date.Range{From: points[0].Day, To: points[len(points)-1].Day},
		StartValue:   points[0].Value,
		EndValue:     points[len(points)-1].Value,
		NetInvested:  p.NetInvested(),
		RiskFreeRate: riskFree,

		SimpleReturn:       SimpleReturn(points[0].Value, points[len(points)-1].Value),
		TimeWeightedReturn: TimeWeightedReturn(points),
		YearToDate:         YearToDate(points),

		SharpeRatio: SharpeRatio(returns, riskFree),
		Volatility:  Volatility(returns),
		MaxDrawdown: MaxDrawdown(points),

		Holdings:      holdings,
		Concentration: Concentrate(holdings),

		History: points,
	}
	report.CAGR = CAGR(report.StartValue, report.EndValue, report.Range.Years())
	return report, nil
}
