package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/hmckay/folio/renderer"
)

type perfCmd struct {
	start string
	end   string
}

func (*perfCmd) Name() string     { return "perf" }
func (*perfCmd) Synopsis() string { return "show performance and risk metrics" }
func (*perfCmd) Usage() string {
	return `pft perf [-s <start_date>] [-e <end_date>]

  Computes returns (time-weighted, simple, CAGR, year-to-date) and risk
  figures (Sharpe ratio, volatility, max drawdown, concentration) over the
  range.
`
}

func (c *perfCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.start, "s", "", "Start date, YYYY-MM-DD. Defaults to the first transaction.")
	f.StringVar(&c.end, "e", "", "End date, YYYY-MM-DD. Defaults to today.")
}

func (c *perfCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	report, err := portfolio.Performance(Quoter(), r, RiskFreeRate())
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.RenderPerformance(renderer.NewPerformance(report)))
	return subcommands.ExitSuccess
}
