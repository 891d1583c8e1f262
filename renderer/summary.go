package renderer

// Summary composes the holdings, performance, and insights views into one
// dashboard-style report.
type Summary struct {
	Holdings    *Holdings    `json:"holdings"`
	Performance *Performance `json:"performance"`
	Insights    *Insights    `json:"insights"`
}

// RenderSummary renders the full summary to a markdown string.
func RenderSummary(s *Summary) string {
	partials := map[string]string{
		"summary_holdings":    "summary_holdings.md",
		"summary_performance": "summary_performance.md",
		"summary_insights":    "summary_insights.md",
		"holdings_rows":       "holdings_rows.md",
		"holdings_oversold":   "holdings_oversold.md",
		"performance_returns": "performance_returns.md",
		"performance_risk":    "performance_risk.md",
	}
	return renderTemplate("summary", "summary.md", partials, s)
}
