package renderer

import (
	"github.com/hmckay/folio"
	"github.com/hmckay/folio/date"
)

// Performance is the view behind the performance report.
type Performance struct {
	From date.Date `json:"from"`
	To   date.Date `json:"to"`

	StartValue  folio.Money `json:"startValue"`
	EndValue    folio.Money `json:"endValue"`
	NetInvested folio.Money `json:"netInvested"`

	SimpleReturn       folio.Percent `json:"simpleReturn"`
	TimeWeightedReturn folio.Percent `json:"timeWeightedReturn"`
	CAGR               folio.Percent `json:"cagr"`
	YearToDate         folio.Percent `json:"yearToDate"`
	ShowCAGR           bool          `json:"showCagr"`

	SharpeRatio  float64       `json:"sharpeRatio"`
	Volatility   folio.Percent `json:"volatility"`
	RiskFreeRate folio.Percent `json:"riskFreeRate"`

	MaxDrawdown       folio.Percent `json:"maxDrawdown"`
	HasDrawdown       bool          `json:"hasDrawdown"`
	DrawdownPeak      date.Date     `json:"drawdownPeak"`
	DrawdownTrough    date.Date     `json:"drawdownTrough"`
	Top1Weight        folio.Percent `json:"top1Weight"`
	Top3Weight        folio.Percent `json:"top3Weight"`
	Top5Weight        folio.Percent `json:"top5Weight"`
	HerfindahlIndex   float64       `json:"herfindahlIndex"`
	NumberOfPositions int           `json:"numberOfPositions"`
}

// NewPerformance builds the performance view from a report.
func NewPerformance(r *folio.PerformanceReport) *Performance {
	return &Performance{
		From:        r.Range.From,
		To:          r.Range.To,
		StartValue:  folio.MF(r.StartValue),
		EndValue:    folio.MF(r.EndValue),
		NetInvested: folio.M(r.NetInvested),

		SimpleReturn:       folio.Percent(r.SimpleReturn),
		TimeWeightedReturn: folio.Percent(r.TimeWeightedReturn),
		CAGR:               folio.Percent(r.CAGR),
		YearToDate:         folio.Percent(r.YearToDate),
		// an annualized figure over a short window is noise
		ShowCAGR: r.Range.Years() >= 1,

		SharpeRatio:  r.SharpeRatio,
		Volatility:   folio.Percent(r.Volatility),
		RiskFreeRate: folio.Percent(r.RiskFreeRate * 100),

		MaxDrawdown:       folio.Percent(r.MaxDrawdown.Percent),
		HasDrawdown:       r.MaxDrawdown.Percent > 0,
		DrawdownPeak:      r.MaxDrawdown.Peak,
		DrawdownTrough:    r.MaxDrawdown.Trough,
		Top1Weight:        folio.Percent(r.Concentration.Top1),
		Top3Weight:        folio.Percent(r.Concentration.Top3),
		Top5Weight:        folio.Percent(r.Concentration.Top5),
		HerfindahlIndex:   r.Concentration.Herfindahl,
		NumberOfPositions: len(r.Holdings),
	}
}

// RenderPerformance renders the performance view to a markdown string.
func RenderPerformance(p *Performance) string {
	partials := map[string]string{
		"performance_returns": "performance_returns.md",
		"performance_risk":    "performance_risk.md",
	}
	return renderTemplate("performance", "performance.md", partials, p)
}
