package folio

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestHoldingsAggregation(t *testing.T) {
	p := NewPortfolio()
	p.Append(
		buy("2025-01-10", "BHP", "BHP.AX", Stocks, 10, 40),
		buy("2025-02-01", "BHP", "BHP.AX", Stocks, 10, 50),
		sell("2025-03-01", "BHP", "BHP.AX", Stocks, 5, 55),
	)
	q := stubQuoter{live: map[string]float64{"BHP.AX": 60}}

	holdings := p.Holdings(q)
	if len(holdings) != 1 {
		t.Fatalf("got %d holdings, want 1", len(holdings))
	}
	h := holdings[0]

	if !h.Quantity.Equal(decimal.NewFromInt(15)) {
		t.Errorf("quantity = %v, want 15", h.Quantity)
	}
	// Net invested: 400 + 500 - 275 = 625, so 625/15 per remaining unit.
	if !h.Invested.Equal(decimal.NewFromInt(625)) {
		t.Errorf("invested = %v, want 625", h.Invested)
	}
	approx(t, "avg price", h.AvgPrice.InexactFloat64(), 625.0/15, 1e-9)
	if !h.CurrentValue.Equal(decimal.NewFromInt(900)) {
		t.Errorf("current value = %v, want 900", h.CurrentValue)
	}
	// PnL = 900 - 625 = 275, on the 625 still invested = 44%.
	if !h.PnL.Equal(decimal.NewFromInt(275)) {
		t.Errorf("pnl = %v, want 275", h.PnL)
	}
	approx(t, "pnl%", h.PnLPercent, 44, 0.01)
	approx(t, "weight", h.Weight, 100, 1e-9)
}

func TestHoldingsNettedCostBasis(t *testing.T) {
	// Selling at a profit lowers the capital still at risk: after buying
	// 10 at 100 and selling 4 at 150, only 400 of the original 1000 remains
	// invested in the 6 units left.
	p := NewPortfolio()
	p.Append(
		buy("2025-01-10", "XYZ", "XYZ", Stocks, 10, 100),
		sell("2025-02-01", "XYZ", "XYZ", Stocks, 4, 150),
	)

	holdings := p.Holdings(stubQuoter{})
	if len(holdings) != 1 {
		t.Fatalf("got %d holdings, want 1", len(holdings))
	}
	h := holdings[0]
	if !h.Quantity.Equal(decimal.NewFromInt(6)) {
		t.Errorf("quantity = %v, want 6", h.Quantity)
	}
	if !h.Invested.Equal(decimal.NewFromInt(400)) {
		t.Errorf("invested = %v, want 400", h.Invested)
	}
	approx(t, "avg price", h.AvgPrice.InexactFloat64(), 400.0/6, 1e-9)
	// No quote, so the position is valued at its average price: break even
	// up to the 400/6 division precision.
	approx(t, "pnl", h.PnL.InexactFloat64(), 0, 1e-9)
}

func TestHoldingsLivePriceFallback(t *testing.T) {
	p := NewPortfolio()
	p.Append(buy("2025-01-10", "BHP", "BHP.AX", Stocks, 10, 40))

	// No live quote available: position is valued at its average price
	// instead of disappearing.
	holdings := p.Holdings(stubQuoter{})
	if len(holdings) != 1 {
		t.Fatalf("got %d holdings, want 1", len(holdings))
	}
	if !holdings[0].CurrentValue.Equal(decimal.NewFromInt(400)) {
		t.Errorf("value = %v, want 400 (avg price fallback)", holdings[0].CurrentValue)
	}
}

func TestHoldingsNonMarketableFrozenPrice(t *testing.T) {
	p := NewPortfolio()
	p.Append(buy("2025-01-10", "House", "House", RealEstate, 1, 500000))

	// A live quote for the ticker must be ignored for non-marketable assets.
	q := stubQuoter{live: map[string]float64{"House": 1}}
	holdings := p.Holdings(q)
	if !holdings[0].CurrentValue.Equal(decimal.NewFromInt(500000)) {
		t.Errorf("value = %v, want 500000 (frozen at last trade)", holdings[0].CurrentValue)
	}
}

func TestHoldingsDropsClosedAndOversold(t *testing.T) {
	p := NewPortfolio()
	p.Append(
		buy("2025-01-10", "BHP", "BHP.AX", Stocks, 10, 40),
		sell("2025-02-01", "BHP", "BHP.AX", Stocks, 10, 50), // closed
		buy("2025-01-10", "CBA", "CBA.AX", Stocks, 2, 100),
		sell("2025-02-01", "CBA", "CBA.AX", Stocks, 5, 100), // oversold
		buy("2025-01-10", "WOW", "WOW.AX", Stocks, 1, 30),
	)

	holdings := p.Holdings(stubQuoter{})
	if len(holdings) != 1 || holdings[0].Ticker != "WOW.AX" {
		t.Errorf("holdings = %+v, want only WOW.AX", holdings)
	}
}

func TestHoldingsSortedByValueWithWeights(t *testing.T) {
	p := NewPortfolio()
	p.Append(
		buy("2025-01-10", "Small", "SML.AX", Stocks, 1, 100),
		buy("2025-01-10", "Big", "BIG.AX", Stocks, 1, 300),
	)

	holdings := p.Holdings(stubQuoter{})
	if holdings[0].Ticker != "BIG.AX" {
		t.Fatalf("holdings not sorted by value: %+v", holdings)
	}
	approx(t, "big weight", holdings[0].Weight, 75, 1e-9)
	approx(t, "small weight", holdings[1].Weight, 25, 1e-9)
	if !TotalValue(holdings).Equal(decimal.NewFromInt(400)) {
		t.Errorf("TotalValue = %v, want 400", TotalValue(holdings))
	}
}
