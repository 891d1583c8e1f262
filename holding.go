package folio

import (
	"sort"

	"github.com/shopspring/decimal"
)

// Holding is one aggregated position: all transactions of a group netted into
// a quantity, a cost basis, and a current valuation.
type Holding struct {
	AssetName    string
	AssetType    AssetType
	Ticker       string
	Quantity     decimal.Decimal
	Invested     decimal.Decimal // net capital in the position, buys minus sells
	AvgPrice     decimal.Decimal // Invested / Quantity
	CurrentPrice decimal.Decimal
	CurrentValue decimal.Decimal
	PnL          decimal.Decimal
	PnLPercent   float64
	Weight       float64 // share of total portfolio value, 0..100
}

// Holdings aggregates the portfolio into current positions valued with q.
// Groups with zero or negative net quantity are dropped. Marketable assets
// (stocks, crypto) are valued at the live quote, everything else at its most
// recent transaction price; when no quote is available the average price
// stands in so the position never silently vanishes from the total.
//
// The cost basis is netted: sell proceeds reduce the invested capital, so
// the average price tracks what is still at risk, not what was ever paid.
//
// The result is sorted by current value, largest first, and Weight is filled
// against the total.
func (p *Portfolio) Holdings(q Quoter) []Holding {
	var holdings []Holding
	for _, k := range p.groupKeys() {
		var qty, invested decimal.Decimal
		for _, tx := range p.transactions {
			if tx.AssetName != k.AssetName || tx.AssetType != k.AssetType || tx.Ticker != k.Ticker {
				continue
			}
			qty = qty.Add(tx.SignedQuantity())
			invested = invested.Add(tx.SignedValue())
		}
		if !qty.IsPositive() {
			continue
		}

		avg := invested.Div(qty)

		price := avg
		if k.AssetType.Marketable() {
			if live, ok := q.LivePrice(k.Ticker); ok {
				price = decimal.NewFromFloat(live)
			}
		} else if last, ok := p.LastTradePrice(k.Ticker, p.NewestTransactionDate()); ok {
			price = last
		}

		value := qty.Mul(price)
		pnl := value.Sub(invested)
		pnlPct := 0.0
		if invested.IsPositive() {
			pnlPct, _ = pnl.Div(invested).Mul(decimal.NewFromInt(100)).Float64()
		}

		holdings = append(holdings, Holding{
			AssetName:    k.AssetName,
			AssetType:    k.AssetType,
			Ticker:       k.Ticker,
			Quantity:     qty,
			Invested:     invested,
			AvgPrice:     avg,
			CurrentPrice: price,
			CurrentValue: value,
			PnL:          pnl,
			PnLPercent:   pnlPct,
		})
	}

	sort.SliceStable(holdings, func(i, j int) bool {
		return holdings[i].CurrentValue.GreaterThan(holdings[j].CurrentValue)
	})

	var total decimal.Decimal
	for _, h := range holdings {
		total = total.Add(h.CurrentValue)
	}
	if total.IsPositive() {
		for i := range holdings {
			holdings[i].Weight, _ = holdings[i].CurrentValue.Div(total).Mul(decimal.NewFromInt(100)).Float64()
		}
	}
	return holdings
}

// TotalValue sums the current value of a holdings slice.
func TotalValue(holdings []Holding) decimal.Decimal {
	var total decimal.Decimal
	for _, h := range holdings {
		total = total.Add(h.CurrentValue)
	}
	return total
}
