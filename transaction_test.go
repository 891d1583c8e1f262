package folio

import (
	"testing"

	"github.com/hmckay/folio/date"
	"github.com/shopspring/decimal"
)

func TestNewTransactionDefaults(t *testing.T) {
	tx := buy("2025-01-10", "BHP", "", Stocks, 10, 45.30)
	if tx.Ticker != "BHP" {
		t.Errorf("ticker should default to the asset name, got %q", tx.Ticker)
	}
	if want := decimal.NewFromFloat(453.0); !tx.TotalValue.Equal(want) {
		t.Errorf("total value = %v, want %v", tx.TotalValue, want)
	}
}

func TestValidate(t *testing.T) {
	testCases := []struct {
		name    string
		tx      Transaction
		wantErr bool
	}{
		{name: "valid buy", tx: buy("2025-01-10", "BHP", "BHP.AX", Stocks, 10, 45.30)},
		{name: "valid sell", tx: sell("2025-02-01", "BHP", "BHP.AX", Stocks, 5, 48.10)},
		{
			name:    "zero quantity",
			tx:      buy("2025-01-10", "BHP", "BHP.AX", Stocks, 0, 45.30),
			wantErr: true,
		},
		{
			name:    "negative quantity",
			tx:      buy("2025-01-10", "BHP", "BHP.AX", Stocks, -10, 45.30),
			wantErr: true,
		},
		{
			name:    "zero price",
			tx:      buy("2025-01-10", "BHP", "BHP.AX", Stocks, 10, 0),
			wantErr: true,
		},
		{
			name: "missing name",
			tx: Transaction{
				Quantity: decimal.NewFromInt(1),
				Price:    decimal.NewFromInt(1),
				Date:     date.MustParse("2025-01-10"),
			},
			wantErr: true,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.tx.Validate()
			if (err != nil) != tc.wantErr {
				t.Errorf("Validate() err = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestValidateQuickFixes(t *testing.T) {
	tx := Transaction{
		AssetName: "House",
		AssetType: RealEstate,
		Quantity:  decimal.NewFromInt(1),
		Price:     decimal.NewFromInt(500000),
	}
	fixed, err := tx.Validate()
	if err != nil {
		t.Fatalf("Validate() unexpected error: %v", err)
	}
	if fixed.Ticker != "House" {
		t.Errorf("empty ticker should be fixed to the name, got %q", fixed.Ticker)
	}
	if fixed.Date.IsZero() {
		t.Error("zero date should be fixed to today")
	}
	if want := decimal.NewFromInt(500000); !fixed.TotalValue.Equal(want) {
		t.Errorf("total value should be recomputed, got %v want %v", fixed.TotalValue, want)
	}
}

func TestSignedValues(t *testing.T) {
	b := buy("2025-01-10", "BHP", "BHP.AX", Stocks, 10, 45.30)
	s := sell("2025-01-11", "BHP", "BHP.AX", Stocks, 4, 50.0)

	if !b.SignedQuantity().Equal(decimal.NewFromInt(10)) {
		t.Errorf("buy signed quantity = %v, want 10", b.SignedQuantity())
	}
	if !s.SignedQuantity().Equal(decimal.NewFromInt(-4)) {
		t.Errorf("sell signed quantity = %v, want -4", s.SignedQuantity())
	}
	if !s.SignedValue().Equal(decimal.NewFromInt(-200)) {
		t.Errorf("sell signed value = %v, want -200", s.SignedValue())
	}
}

func TestParseAssetType(t *testing.T) {
	testCases := []struct {
		in      string
		want    AssetType
		wantErr bool
	}{
		{in: "Stocks", want: Stocks},
		{in: "stocks", want: Stocks},
		{in: "Crypto", want: Crypto},
		{in: "Real Estate", want: RealEstate},
		{in: "Other", want: OtherAsset},
		{in: "Derivatives", wantErr: true},
	}
	for _, tc := range testCases {
		got, err := ParseAssetType(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParseAssetType(%q) err = %v, wantErr %v", tc.in, err, tc.wantErr)
			continue
		}
		if err == nil && got != tc.want {
			t.Errorf("ParseAssetType(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
