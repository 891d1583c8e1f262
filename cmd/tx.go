package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/hmckay/folio"
	"github.com/hmckay/folio/renderer"
)

type txCmd struct {
	ticker    string
	assetType string
}

func (*txCmd) Name() string     { return "tx" }
func (*txCmd) Synopsis() string { return "list all transactions" }
func (*txCmd) Usage() string {
	return `pft tx [-t <ticker>] [-type <asset type>]

  Lists transactions in chronological order, with options for filtering.
`
}

func (c *txCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ticker, "t", "", "Only show transactions for this ticker.")
	f.StringVar(&c.assetType, "type", "", "Only show transactions for this asset type.")
}

func (c *txCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	portfolio, err := LoadStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	var filters []func(folio.Transaction) bool
	if c.ticker != "" {
		filters = append(filters, folio.ByTicker(c.ticker))
	}
	if c.assetType != "" {
		at, err := folio.ParseAssetType(c.assetType)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitUsageError
		}
		filters = append(filters, folio.ByAssetType(at))
	}

	printMarkdown(renderer.RenderTransactions(renderer.NewTransactions(portfolio, filters...)))
	return subcommands.ExitSuccess
}
