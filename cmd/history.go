package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/hmckay/folio/renderer"
)

type historyCmd struct {
	start string
	end   string
}

func (*historyCmd) Name() string     { return "history" }
func (*historyCmd) Synopsis() string { return "show the portfolio's daily value over time" }
func (*historyCmd) Usage() string {
	return `pft history [-s <start_date>] [-e <end_date>]

  Reconstructs the portfolio's value for every day of the range, from
  historical market prices and the transactions that were in effect.
`
}

func (c *historyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.start, "s", "", "Start date, YYYY-MM-DD. Defaults to the first transaction.")
	f.StringVar(&c.end, "e", "", "End date, YYYY-MM-DD. Defaults to today.")
}

func (c *historyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	portfolio, err := LoadStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	r, err := parseRange(portfolio, c.start, c.end)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}

	points, err := portfolio.ValueHistory(Quoter(), r)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.RenderHistory(renderer.NewHistory(points)))
	return subcommands.ExitSuccess
}
