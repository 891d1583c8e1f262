package renderer

import (
	"fmt"

	"github.com/hmckay/folio"
	"github.com/hmckay/folio/date"
)

// Holdings is the view behind the holdings report.
type Holdings struct {
	Date     date.Date    `json:"date"`
	Total    folio.Money  `json:"total"`
	Invested folio.Money  `json:"invested"`
	Rows     []HoldingRow `json:"rows"`
	Oversold []string     `json:"oversold,omitempty"`
}

// HoldingRow is one position, pre-formatted.
type HoldingRow struct {
	AssetName    string        `json:"assetName"`
	AssetType    string        `json:"assetType"`
	Ticker       string        `json:"ticker"`
	Quantity     string        `json:"quantity"`
	AvgPrice     folio.Money   `json:"avgPrice"`
	CurrentPrice folio.Money   `json:"currentPrice"`
	Value        folio.Money   `json:"value"`
	PnL          folio.Money   `json:"pnl"`
	PnLPercent   folio.Percent `json:"pnlPercent"`
	Weight       folio.Percent `json:"weight"`
}

// NewHoldings builds the holdings view from the aggregated positions.
func NewHoldings(p *folio.Portfolio, q folio.Quoter) *Holdings {
	holdings := p.Holdings(q)
	view := &Holdings{
		Date:     date.Today(),
		Total:    folio.M(folio.TotalValue(holdings)),
		Invested: folio.M(p.NetInvested()),
		Rows:     make([]HoldingRow, 0, len(holdings)),
	}
	for _, h := range holdings {
		view.Rows = append(view.Rows, HoldingRow{
			AssetName:    h.AssetName,
			AssetType:    h.AssetType.String(),
			Ticker:       h.Ticker,
			Quantity:     h.Quantity.String(),
			AvgPrice:     folio.M(h.AvgPrice),
			CurrentPrice: folio.M(h.CurrentPrice),
			Value:        folio.M(h.CurrentValue),
			PnL:          folio.M(h.PnL),
			PnLPercent:   folio.Percent(h.PnLPercent),
			Weight:       folio.Percent(h.Weight),
		})
	}
	for _, k := range p.Oversold() {
		view.Oversold = append(view.Oversold, fmt.Sprintf("%s (%s)", k.AssetName, k.Ticker))
	}
	return view
}

// RenderHoldings renders the holdings view to a markdown string.
func RenderHoldings(h *Holdings) string {
	partials := map[string]string{
		"holdings_rows":     "holdings_rows.md",
		"holdings_oversold": "holdings_oversold.md",
	}
	return renderTemplate("holdings", "holdings.md", partials, h)
}
