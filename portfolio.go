package folio

import (
	"fmt"
	"iter"
	"sort"

	"github.com/hmckay/folio/date"
	"github.com/shopspring/decimal"
)

// GroupKey identifies a holding: two transactions belong to the same position
// only when the display name, asset class, and ticker all match. This is a
// deliberate identity policy: the same ticker under two display names is two
// holdings.
type GroupKey struct {
	AssetName string
	AssetType AssetType
	Ticker    string
}

func (k GroupKey) String() string { return fmt.Sprintf("%s/%s/%s", k.AssetName, k.AssetType, k.Ticker) }

// Portfolio is the explicit application state: the full ordered transaction
// list. It replaces any notion of shared session state; the persistence layer
// synchronizes a Portfolio to the store and back.
//
// Transactions are always kept in chronological order.
type Portfolio struct {
	transactions []Transaction
}

// NewPortfolio creates an empty portfolio.
func NewPortfolio() *Portfolio {
	return &Portfolio{transactions: make([]Transaction, 0)}
}

// Append appends transactions without validation and maintains chronological
// order. Same-day transactions keep their relative insertion order.
func (p *Portfolio) Append(txs ...Transaction) {
	p.transactions = append(p.transactions, txs...)
	p.stableSort()
}

// Add validates a transaction and, on success, appends it. The validated
// (quick-fixed) transaction is returned so callers can echo what was stored.
func (p *Portfolio) Add(tx Transaction) (Transaction, error) {
	tx, err := tx.Validate()
	if err != nil {
		return tx, fmt.Errorf("invalid %s transaction on %v: %w", tx.Type, tx.Date, err)
	}
	p.Append(tx)
	return tx, nil
}

// Delete removes the transaction at the given position (in chronological
// order) and returns it.
func (p *Portfolio) Delete(i int) (Transaction, error) {
	if i < 0 || i >= len(p.transactions) {
		return Transaction{}, fmt.Errorf("no transaction at index %d (have %d)", i, len(p.transactions))
	}
	tx := p.transactions[i]
	p.transactions = append(p.transactions[:i], p.transactions[i+1:]...)
	return tx, nil
}

// Len returns the number of transactions.
func (p *Portfolio) Len() int { return len(p.transactions) }

func (p *Portfolio) stableSort() {
	sort.SliceStable(p.transactions, func(i, j int) bool {
		return p.transactions[i].Date.Before(p.transactions[j].Date)
	})
}

// Transactions returns an iterator over transactions in chronological order.
// A transaction is yielded only when every filter accepts it; with no filter
// everything is yielded.
func (p *Portfolio) Transactions(filters ...func(Transaction) bool) iter.Seq2[int, Transaction] {
	return func(yield func(int, Transaction) bool) {
		for i, tx := range p.transactions {
			accept := true
			for _, filter := range filters {
				if !filter(tx) {
					accept = false
					break
				}
			}
			if !accept {
				continue
			}
			if !yield(i, tx) {
				return
			}
		}
	}
}

// ByTicker returns a predicate that filters transactions by ticker.
func ByTicker(ticker string) func(Transaction) bool {
	return func(tx Transaction) bool { return tx.Ticker == ticker }
}

// ByAssetType returns a predicate that filters transactions by asset class.
func ByAssetType(kind AssetType) func(Transaction) bool {
	return func(tx Transaction) bool { return tx.AssetType == kind }
}

// OldestTransactionDate returns the date of the earliest transaction, or the
// zero date if the portfolio is empty.
func (p *Portfolio) OldestTransactionDate() date.Date {
	if len(p.transactions) == 0 {
		return date.Date{}
	}
	return p.transactions[0].Date
}

// NewestTransactionDate returns the date of the latest transaction, or the
// zero date if the portfolio is empty.
func (p *Portfolio) NewestTransactionDate() date.Date {
	if len(p.transactions) == 0 {
		return date.Date{}
	}
	return p.transactions[len(p.transactions)-1].Date
}

// NetInvested computes the net capital moved into the portfolio: buys minus
// sells over all transactions.
func (p *Portfolio) NetInvested() decimal.Decimal {
	var total decimal.Decimal
	for _, tx := range p.transactions {
		total = total.Add(tx.SignedValue())
	}
	return total
}

// groupKeys returns every distinct group in order of first appearance.
func (p *Portfolio) groupKeys() []GroupKey {
	seen := make(map[GroupKey]struct{})
	keys := make([]GroupKey, 0)
	for _, tx := range p.transactions {
		k := GroupKey{AssetName: tx.AssetName, AssetType: tx.AssetType, Ticker: tx.Ticker}
		if _, ok := seen[k]; !ok {
			seen[k] = struct{}{}
			keys = append(keys, k)
		}
	}
	return keys
}

// netQuantity computes buys minus sells for a group over all transactions.
func (p *Portfolio) netQuantity(k GroupKey) decimal.Decimal {
	var q decimal.Decimal
	for _, tx := range p.transactions {
		if tx.AssetName == k.AssetName && tx.AssetType == k.AssetType && tx.Ticker == k.Ticker {
			q = q.Add(tx.SignedQuantity())
		}
	}
	return q
}

// Oversold returns the groups whose sells exceed their buys. Such groups are
// dropped from the holdings view; this reports them so callers can warn about
// the likely data-entry error instead of hiding it.
func (p *Portfolio) Oversold() []GroupKey {
	var over []GroupKey
	for _, k := range p.groupKeys() {
		if p.netQuantity(k).IsNegative() {
			over = append(over, k)
		}
	}
	return over
}

// LastTradePrice returns the price of the most recent transaction for the
// ticker on or before the given day. This is the valuation proxy for assets
// with no daily market price.
func (p *Portfolio) LastTradePrice(ticker string, on date.Date) (decimal.Decimal, bool) {
	var price decimal.Decimal
	found := false
	for _, tx := range p.transactions {
		if tx.Date.After(on) {
			break // chronological order
		}
		if tx.Ticker == ticker {
			price = tx.Price
			found = true
		}
	}
	return price, found
}
