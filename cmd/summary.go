package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/hmckay/folio"
	"github.com/hmckay/folio/date"
	"github.com/hmckay/folio/renderer"
)

type summaryCmd struct{}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "full dashboard: holdings, performance, insights" }
func (*summaryCmd) Usage() string {
	return `pft summary

  Renders the whole picture in one report: current holdings, performance and
  risk since inception, and the derived insights.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	portfolio, err := LoadStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if portfolio.Len() == 0 {
		fmt.Println("No transactions yet. Record one with 'pft buy', or see 'pft topic readme'.")
		return subcommands.ExitSuccess
	}

	quoter := Quoter()
	r := date.NewRange(portfolio.OldestTransactionDate(), date.Today())
	report, err := portfolio.Performance(quoter, r, RiskFreeRate())
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	var cmp *folio.BenchmarkComparison
	if c, err := portfolio.Compare(quoter, "ASX 200", r); err == nil {
		cmp = c
	}

	summary := &renderer.Summary{
		Holdings:    renderer.NewHoldings(portfolio, quoter),
		Performance: renderer.NewPerformance(report),
		Insights:    renderer.NewInsights(folio.Insights(report, cmp)),
	}
	printMarkdown(renderer.RenderSummary(summary))
	return subcommands.ExitSuccess
}
