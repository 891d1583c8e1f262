package folio

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/hmckay/folio/date"
	"github.com/shopspring/decimal"
)

// AssetType is the closed set of asset classes a transaction can belong to.
// The type decides the valuation behavior: marketable assets (Stocks, Crypto)
// are priced from market data, all others are frozen at their last transacted
// price.
type AssetType int

const (
	Stocks AssetType = iota
	Crypto
	Cash
	Bonds
	RealEstate
	OtherAsset
)

func (a AssetType) String() string {
	switch a {
	case Stocks:
		return "Stocks"
	case Crypto:
		return "Crypto"
	case Cash:
		return "Cash"
	case Bonds:
		return "Bonds"
	case RealEstate:
		return "Real Estate"
	case OtherAsset:
		return "Other"
	default:
		return "unknown"
	}
}

// Marketable reports whether the asset class carries a daily market price.
func (a AssetType) Marketable() bool { return a == Stocks || a == Crypto }

// ParseAssetType parses a display label into an AssetType. Case does not
// matter.
func ParseAssetType(s string) (AssetType, error) {
	switch strings.ToLower(s) {
	case "stocks":
		return Stocks, nil
	case "crypto":
		return Crypto, nil
	case "cash":
		return Cash, nil
	case "real estate", "realestate":
		return RealEstate, nil
	case "bonds":
		return Bonds, nil
	case "other":
		return OtherAsset, nil
	default:
		return 0, fmt.Errorf("unknown asset type: %q", s)
	}
}

// MarshalJSON persists the asset type by its display label.
func (a AssetType) MarshalJSON() ([]byte, error) { return json.Marshal(a.String()) }

func (a *AssetType) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	v, err := ParseAssetType(s)
	if err != nil {
		return err
	}
	*a = v
	return nil
}

// TxType distinguishes buys from sells.
type TxType int

const (
	Buy TxType = iota
	Sell
)

func (t TxType) String() string {
	switch t {
	case Buy:
		return "Buy"
	case Sell:
		return "Sell"
	default:
		return "unknown"
	}
}

// ParseTxType parses a transaction type label.
func ParseTxType(s string) (TxType, error) {
	switch s {
	case "Buy":
		return Buy, nil
	case "Sell":
		return Sell, nil
	default:
		return 0, fmt.Errorf("unknown transaction type: %q", s)
	}
}

func (t TxType) MarshalJSON() ([]byte, error) { return json.Marshal(t.String()) }

func (t *TxType) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	v, err := ParseTxType(s)
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// Transaction is a single buy or sell record. Once persisted it is immutable:
// edits go through delete-and-reinsert.
type Transaction struct {
	AssetName  string          `json:"asset_name"`
	AssetType  AssetType       `json:"asset_type"`
	Ticker     string          `json:"ticker"`
	Quantity   decimal.Decimal `json:"quantity"`
	Price      decimal.Decimal `json:"price"`
	Date       date.Date       `json:"date"`
	Type       TxType          `json:"transaction_type"`
	TotalValue decimal.Decimal `json:"total_value"` // Quantity * Price, stored redundantly.
}

// NewTransaction builds a transaction with the derived total value. An empty
// ticker defaults to the asset name, the convention for non-market assets.
func NewTransaction(name string, kind AssetType, ticker string, quantity, price decimal.Decimal, on date.Date, txType TxType) Transaction {
	if ticker == "" {
		ticker = name
	}
	return Transaction{
		AssetName:  name,
		AssetType:  kind,
		Ticker:     ticker,
		Quantity:   quantity,
		Price:      price,
		Date:       on,
		Type:       txType,
		TotalValue: quantity.Mul(price),
	}
}

// Validate checks a transaction for correctness and applies quick fixes where
// applicable (defaulting the ticker and date, recomputing the total value).
// It returns the validated (and potentially modified) transaction or an error.
func (t Transaction) Validate() (Transaction, error) {
	if t.AssetName == "" {
		return t, errors.New("asset name is missing")
	}
	if t.Ticker == "" {
		t.Ticker = t.AssetName
	}
	if t.Date.IsZero() {
		t.Date = date.Today()
	}
	if !t.Quantity.IsPositive() {
		return t, fmt.Errorf("%s transaction quantity must be positive, got %s", t.Type, t.Quantity)
	}
	if !t.Price.IsPositive() {
		return t, fmt.Errorf("%s transaction price must be positive, got %s", t.Type, t.Price)
	}
	t.TotalValue = t.Quantity.Mul(t.Price)
	return t, nil
}

// SignedQuantity returns the quantity with a sign: positive for buys,
// negative for sells.
func (t Transaction) SignedQuantity() decimal.Decimal {
	if t.Type == Sell {
		return t.Quantity.Neg()
	}
	return t.Quantity
}

// SignedValue returns the total value with a sign: positive for buys
// (capital in), negative for sells (capital out).
func (t Transaction) SignedValue() decimal.Decimal {
	if t.Type == Sell {
		return t.TotalValue.Neg()
	}
	return t.TotalValue
}

// Equal reports whether two transactions are the same record.
func (t Transaction) Equal(o Transaction) bool {
	return t.AssetName == o.AssetName &&
		t.AssetType == o.AssetType &&
		t.Ticker == o.Ticker &&
		t.Date == o.Date &&
		t.Type == o.Type &&
		t.Quantity.Equal(o.Quantity) &&
		t.Price.Equal(o.Price)
}

func (t Transaction) String() string {
	return fmt.Sprintf("%s %s %s %s @ %s", t.Date, t.Type, t.Quantity, t.AssetName, t.Price)
}
