package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/hmckay/folio"
	"github.com/hmckay/folio/date"
	"github.com/shopspring/decimal"
)

type buyCmd struct {
	name      string
	assetType string
	ticker    string
	quantity  string
	price     string
	day       string
}

func (*buyCmd) Name() string     { return "buy" }
func (*buyCmd) Synopsis() string { return "record a purchase" }
func (*buyCmd) Usage() string {
	return `pft buy -n <name> -q <quantity> -p <price> [-t <ticker>] [-type <asset type>] [-d <date>]

  Records a buy transaction. The ticker defaults to the asset name, the type
  to Stocks, and the date to today.

Usage Examples:
# Buy 10 BHP shares at 45.30
$ pft buy -n BHP -t BHP.AX -q 10 -p 45.30

# Buy half a bitcoin last week
$ pft buy -n Bitcoin -t BTC-USD -type Crypto -q 0.5 -p 97000 -d 2026-08-22
`
}

func (c *buyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "n", "", "Asset name (required).")
	f.StringVar(&c.ticker, "t", "", "Ticker used for market prices. Defaults to the name.")
	f.StringVar(&c.assetType, "type", "Stocks", "Asset type: Stocks, Crypto, Cash, Bonds, Real Estate, Other.")
	f.StringVar(&c.quantity, "q", "", "Quantity bought (required).")
	f.StringVar(&c.price, "p", "", "Price per unit (required).")
	f.StringVar(&c.day, "d", "", "Transaction date, YYYY-MM-DD. Defaults to today.")
}

func (c *buyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return recordTransaction(folio.Buy, c.name, c.assetType, c.ticker, c.quantity, c.price, c.day)
}

// recordTransaction parses the shared buy/sell flag values, appends the
// transaction, and saves the store.
func recordTransaction(kind folio.TxType, name, assetType, ticker, quantity, price, day string) subcommands.ExitStatus {
	if name == "" || quantity == "" || price == "" {
		fmt.Fprintln(os.Stderr, "Error: -n, -q and -p are required.")
		return subcommands.ExitUsageError
	}

	at, err := folio.ParseAssetType(assetType)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	q, err := decimal.NewFromString(quantity)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid quantity %q: %v\n", quantity, err)
		return subcommands.ExitUsageError
	}
	p, err := decimal.NewFromString(price)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid price %q: %v\n", price, err)
		return subcommands.ExitUsageError
	}
	on := date.Today()
	if day != "" {
		if on, err = date.Parse(day); err != nil {
			fmt.Fprintf(os.Stderr, "Error: invalid date %q: %v\n", day, err)
			return subcommands.ExitUsageError
		}
	}

	portfolio, err := LoadStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	tx := folio.NewTransaction(name, at, ticker, q, p, on, kind)
	tx, err = portfolio.Add(tx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	if err := SaveStore(portfolio); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Recorded %s\n", tx)
	return subcommands.ExitSuccess
}
