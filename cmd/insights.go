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

type insightsCmd struct {
	benchmark string
	start     string
	end       string
}

func (*insightsCmd) Name() string     { return "insights" }
func (*insightsCmd) Synopsis() string { return "plain-language observations about the portfolio" }
func (*insightsCmd) Usage() string {
	return `pft insights [-b <benchmark>] [-s <start_date>] [-e <end_date>]

  Derives rule-based observations from the performance figures: risk worth
  worrying about, concentration, and how the portfolio stacks up against the
  benchmark.
`
}

func (c *insightsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.benchmark, "b", "ASX 200", "Benchmark to compare against. Empty to skip the comparison.")
	f.StringVar(&c.start, "s", "", "Start date, YYYY-MM-DD. Defaults to the first transaction.")
	f.StringVar(&c.end, "e", "", "End date, YYYY-MM-DD. Defaults to today.")
}

func (c *insightsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	quoter := Quoter()
	report, err := portfolio.Performance(quoter, r, RiskFreeRate())
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	var cmp *folio.BenchmarkComparison
	if c.benchmark != "" {
		cmp, err = portfolio.Compare(quoter, c.benchmark, r)
		if err != nil {
			// the comparison is optional, insights still work without it
			fmt.Fprintf(os.Stderr, "Warning: skipping benchmark comparison: %v\n", err)
			cmp = nil
		}
	}

	insights := folio.Insights(report, cmp)
	printMarkdown(renderer.RenderInsights(renderer.NewInsights(insights)))
	return subcommands.ExitSuccess
}
