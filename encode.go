package folio

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"
)

// The store file is a single JSON array of transactions, pretty printed so it
// stays human-readable and diffs cleanly in git. Numbers are written bare, not
// as strings, so the file can be consumed by anything that reads JSON.

func init() { decimal.MarshalJSONWithoutQuotes = true }

// DefaultStoreFilename is the store file name inside a portfolio directory.
const DefaultStoreFilename = "portfolio.json"

// DecodePortfolio reads a JSON array of transactions and returns a sorted
// Portfolio. Transactions are validated on the way in: a malformed entry
// fails the whole load rather than silently dropping data.
func DecodePortfolio(r io.Reader) (*Portfolio, error) {
	var txs []Transaction
	dec := json.NewDecoder(r)
	if err := dec.Decode(&txs); err != nil {
		return nil, fmt.Errorf("could not parse transaction list: %w", err)
	}

	p := NewPortfolio()
	for i, tx := range txs {
		tx, err := tx.Validate()
		if err != nil {
			return nil, fmt.Errorf("invalid transaction at index %d: %w", i, err)
		}
		p.transactions = append(p.transactions, tx)
	}
	p.stableSort()
	return p, nil
}

// EncodePortfolio reorders transactions by date and writes them as an
// indented JSON array. Same-day transactions keep their relative order.
func EncodePortfolio(w io.Writer, p *Portfolio) error {
	p.stableSort()
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(p.transactions); err != nil {
		return fmt.Errorf("could not write transaction list: %w", err)
	}
	return nil
}

// LoadPortfolio reads the store file at path. A missing file is not an error:
// it returns an empty portfolio, so a fresh directory just works.
func LoadPortfolio(path string) (*Portfolio, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return NewPortfolio(), nil
		}
		return nil, fmt.Errorf("could not open store file %q: %w", path, err)
	}
	defer f.Close()

	p, err := DecodePortfolio(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode store file %q: %w", path, err)
	}
	return p, nil
}

// SavePortfolio writes the portfolio to the store file at path, creating
// parent directories as needed. The write goes through a temporary file and a
// rename so a crash never leaves a half-written store.
func SavePortfolio(path string, p *Portfolio) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("could not create directory for store %q: %w", path, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".portfolio-*.json")
	if err != nil {
		return fmt.Errorf("could not create temporary store file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := EncodePortfolio(tmp, p); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("could not finish writing store file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("could not replace store file %q: %w", path, err)
	}
	return nil
}
