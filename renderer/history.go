package renderer

import (
	"fmt"

	"github.com/hmckay/folio"
	"github.com/hmckay/folio/date"
)

// History is the view behind the value history report.
type History struct {
	From date.Date    `json:"from"`
	To   date.Date    `json:"to"`
	Low  folio.Money  `json:"low"`
	High folio.Money  `json:"high"`
	Rows []HistoryRow `json:"rows"`
}

// HistoryRow is one sampled day.
type HistoryRow struct {
	Day         date.Date     `json:"day"`
	Value       folio.Money   `json:"value"`
	CashFlow    folio.Money   `json:"cashFlow"`
	DailyReturn folio.Percent `json:"dailyReturn"`
	Bar         string        `json:"bar"`
}

// historySamples caps the number of rows in the history table.
const historySamples = 30

// barWidth is the width of the text bar scaled between low and high.
const barWidth = 20

// NewHistory builds the history view, sampling evenly so a multi-year
// portfolio still fits on a screen.
func NewHistory(points []folio.HistoryPoint) *History {
	view := &History{}
	if len(points) == 0 {
		return view
	}
	view.From, view.To = points[0].Day, points[len(points)-1].Day

	low, high := points[0].Value, points[0].Value
	for _, pt := range points {
		if pt.Value < low {
			low = pt.Value
		}
		if pt.Value > high {
			high = pt.Value
		}
	}
	view.Low, view.High = folio.MF(low), folio.MF(high)

	step := len(points) / historySamples
	if step < 1 {
		step = 1
	}
	for i, pt := range points {
		if i%step != 0 && i != len(points)-1 {
			continue
		}
		view.Rows = append(view.Rows, HistoryRow{
			Day:         pt.Day,
			Value:       folio.MF(pt.Value),
			CashFlow:    folio.MF(pt.CashFlow),
			DailyReturn: folio.Percent(pt.DailyReturn * 100),
			Bar:         bar(pt.Value, low, high),
		})
	}
	return view
}

// bar renders a value as a fixed-width text gauge between low and high.
func bar(v, low, high float64) string {
	if high <= low {
		return ""
	}
	n := int((v - low) / (high - low) * barWidth)
	out := ""
	for i := 0; i < n; i++ {
		out += "█"
	}
	return out
}

// RenderHistory renders the history view to a markdown string.
func RenderHistory(h *History) string {
	if len(h.Rows) == 0 {
		return fmt.Sprintln("No history to display.")
	}
	return renderTemplate("history", "history.md", nil, h)
}
