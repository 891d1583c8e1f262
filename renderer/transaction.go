package renderer

import (
	"github.com/hmckay/folio"
	"github.com/hmckay/folio/date"
)

// Transactions is the view behind the transaction log report.
type Transactions struct {
	Count       int              `json:"count"`
	NetInvested folio.Money      `json:"netInvested"`
	Rows        []TransactionRow `json:"rows"`
}

// TransactionRow is one transaction, with its position in the log so it can
// be referenced for deletion.
type TransactionRow struct {
	Index     int         `json:"index"`
	Day       date.Date   `json:"day"`
	Type      string      `json:"type"`
	AssetName string      `json:"assetName"`
	Ticker    string      `json:"ticker"`
	Quantity  string      `json:"quantity"`
	Price     folio.Money `json:"price"`
	Total     folio.Money `json:"total"`
}

// NewTransactions builds the transaction log view, optionally filtered.
func NewTransactions(p *folio.Portfolio, filters ...func(folio.Transaction) bool) *Transactions {
	view := &Transactions{NetInvested: folio.M(p.NetInvested())}
	for i, tx := range p.Transactions(filters...) {
		view.Rows = append(view.Rows, TransactionRow{
			Index:     i,
			Day:       tx.Date,
			Type:      tx.Type.String(),
			AssetName: tx.AssetName,
			Ticker:    tx.Ticker,
			Quantity:  tx.Quantity.String(),
			Price:     folio.M(tx.Price),
			Total:     folio.M(tx.TotalValue),
		})
	}
	view.Count = len(view.Rows)
	return view
}

// RenderTransactions renders the transaction log to a markdown string.
func RenderTransactions(t *Transactions) string {
	return renderTemplate("transactions", "transactions.md", nil, t)
}
