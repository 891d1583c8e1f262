package renderer

import "github.com/hmckay/folio"

// Insights is the view behind the insights report.
type Insights struct {
	Rows []InsightRow `json:"rows"`
}

// InsightRow is one observation with a display marker for its level.
type InsightRow struct {
	Marker  string `json:"marker"`
	Level   string `json:"level"`
	Message string `json:"message"`
}

var markers = map[folio.InsightLevel]string{
	folio.Positive: "✅",
	folio.Info:     "ℹ️",
	folio.Warning:  "⚠️",
	folio.Negative: "🔻",
}

// NewInsights builds the insights view.
func NewInsights(insights []folio.Insight) *Insights {
	view := &Insights{Rows: make([]InsightRow, 0, len(insights))}
	for _, in := range insights {
		view.Rows = append(view.Rows, InsightRow{
			Marker:  markers[in.Level],
			Level:   in.Level.String(),
			Message: in.Message,
		})
	}
	return view
}

// RenderInsights renders the insights view to a markdown string.
func RenderInsights(i *Insights) string {
	return renderTemplate("insights", "insights.md", nil, i)
}
