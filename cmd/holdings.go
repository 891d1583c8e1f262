package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/hmckay/folio/renderer"
)

type holdingsCmd struct{}

func (*holdingsCmd) Name() string     { return "holdings" }
func (*holdingsCmd) Synopsis() string { return "show current positions and their value" }
func (*holdingsCmd) Usage() string {
	return `pft holdings

  Aggregates all transactions into current positions, valued at live market
  prices where available.
`
}

func (c *holdingsCmd) SetFlags(f *flag.FlagSet) {}

func (c *holdingsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	portfolio, err := LoadStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.RenderHoldings(renderer.NewHoldings(portfolio, Quoter())))
	return subcommands.ExitSuccess
}
