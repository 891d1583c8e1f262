package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
	"github.com/hmckay/folio"
)

type sellCmd struct {
	name      string
	assetType string
	ticker    string
	quantity  string
	price     string
	day       string
}

func (*sellCmd) Name() string     { return "sell" }
func (*sellCmd) Synopsis() string { return "record a sale" }
func (*sellCmd) Usage() string {
	return `pft sell -n <name> -q <quantity> -p <price> [-t <ticker>] [-type <asset type>] [-d <date>]

  Records a sell transaction. The name, type and ticker must match the buys
  the sale draws from.

Usage Examples:
# Sell 5 BHP shares at 48.10
$ pft sell -n BHP -t BHP.AX -q 5 -p 48.10
`
}

func (c *sellCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "n", "", "Asset name (required).")
	f.StringVar(&c.ticker, "t", "", "Ticker used for market prices. Defaults to the name.")
	f.StringVar(&c.assetType, "type", "Stocks", "Asset type: Stocks, Crypto, Cash, Bonds, Real Estate, Other.")
	f.StringVar(&c.quantity, "q", "", "Quantity sold (required).")
	f.StringVar(&c.price, "p", "", "Price per unit (required).")
	f.StringVar(&c.day, "d", "", "Transaction date, YYYY-MM-DD. Defaults to today.")
}

func (c *sellCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return recordTransaction(folio.Sell, c.name, c.assetType, c.ticker, c.quantity, c.price, c.day)
}
