package folio

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	p := NewPortfolio()
	p.Append(
		buy("2025-01-10", "BHP", "BHP.AX", Stocks, 10, 45.30),
		buy("2025-01-11", "Bitcoin", "BTC-USD", Crypto, 0.5, 97000),
		sell("2025-02-01", "BHP", "BHP.AX", Stocks, 5, 48.10),
	)

	var b strings.Builder
	if err := EncodePortfolio(&b, p); err != nil {
		t.Fatalf("EncodePortfolio: %v", err)
	}

	// Numbers must be persisted bare, not as strings.
	if strings.Contains(b.String(), `"45.3"`) {
		t.Errorf("quantities and prices should be plain JSON numbers:\n%s", b.String())
	}

	got, err := DecodePortfolio(strings.NewReader(b.String()))
	if err != nil {
		t.Fatalf("DecodePortfolio: %v", err)
	}
	if got.Len() != p.Len() {
		t.Fatalf("round trip lost transactions: %d != %d", got.Len(), p.Len())
	}
	for i, tx := range p.Transactions() {
		for j, other := range got.Transactions() {
			if i == j && !tx.Equal(other) {
				t.Errorf("transaction %d changed: %v != %v", i, tx, other)
			}
		}
	}
}

func TestDecodeRejectsInvalid(t *testing.T) {
	const malformed = `[{"asset_name":"BHP","asset_type":"Stocks","ticker":"BHP.AX",
		"quantity":-10,"price":45.3,"date":"2025-01-10","transaction_type":"Buy","total_value":453}]`
	if _, err := DecodePortfolio(strings.NewReader(malformed)); err == nil {
		t.Error("a negative quantity must fail the load")
	}
	if _, err := DecodePortfolio(strings.NewReader("not json")); err == nil {
		t.Error("garbage must fail the load")
	}
}

func TestDecodeSortsByDate(t *testing.T) {
	const unordered = `[
		{"asset_name":"B","asset_type":"Stocks","ticker":"B","quantity":1,"price":2,"date":"2025-03-01","transaction_type":"Buy","total_value":2},
		{"asset_name":"A","asset_type":"Stocks","ticker":"A","quantity":1,"price":1,"date":"2025-01-01","transaction_type":"Buy","total_value":1}
	]`
	p, err := DecodePortfolio(strings.NewReader(unordered))
	if err != nil {
		t.Fatalf("DecodePortfolio: %v", err)
	}
	first := ""
	for _, tx := range p.Transactions() {
		first = tx.AssetName
		break
	}
	if first != "A" {
		t.Errorf("transactions not sorted on load, first = %q", first)
	}
}

func TestSaveAndLoadPortfolio(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "portfolio.json")

	// Loading a missing file yields an empty portfolio.
	p, err := LoadPortfolio(path)
	if err != nil {
		t.Fatalf("LoadPortfolio missing file: %v", err)
	}
	if p.Len() != 0 {
		t.Fatalf("missing file should load empty, got %d", p.Len())
	}

	p.Append(buy("2025-01-10", "BHP", "BHP.AX", Stocks, 10, 45.30))
	if err := SavePortfolio(path, p); err != nil {
		t.Fatalf("SavePortfolio: %v", err)
	}

	// No temp files left behind.
	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("store directory should contain only the store file, got %v", entries)
	}

	got, err := LoadPortfolio(path)
	if err != nil {
		t.Fatalf("LoadPortfolio: %v", err)
	}
	if got.Len() != 1 {
		t.Errorf("loaded %d transactions, want 1", got.Len())
	}
}
