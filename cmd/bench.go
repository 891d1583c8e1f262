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

type benchCmd struct {
	benchmark string
	start     string
	end       string
}

func (*benchCmd) Name() string     { return "bench" }
func (*benchCmd) Synopsis() string { return "compare the portfolio against a market index" }
func (*benchCmd) Usage() string {
	return `pft bench [-b <benchmark>] [-s <start_date>] [-e <end_date>]

  Measures the portfolio against a benchmark: relative return, beta, alpha,
  and tracking error, plus both series rebased to 100.

Usage Examples:
# Compare against the ASX 200 since inception
$ pft bench

# Compare against the S&P 500 for this year
$ pft bench -b "S&P 500" -s 2026-01-01
`
}

func (c *benchCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.benchmark, "b", "ASX 200", "Benchmark name or ticker: "+fmt.Sprint(folio.BenchmarkNames())+".")
	f.StringVar(&c.start, "s", "", "Start date, YYYY-MM-DD. Defaults to the first transaction.")
	f.StringVar(&c.end, "e", "", "End date, YYYY-MM-DD. Defaults to today.")
}

func (c *benchCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	cmp, err := portfolio.Compare(Quoter(), c.benchmark, r)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.RenderBenchmark(renderer.NewBenchmark(cmp)))
	return subcommands.ExitSuccess
}
