package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/hmckay/folio"
	"github.com/hmckay/folio/agent"
	"github.com/hmckay/folio/date"
	"github.com/hmckay/folio/renderer"
	"google.golang.org/genai"
)

type assistCmd struct{}

func (*assistCmd) Name() string     { return "assist" }
func (*assistCmd) Synopsis() string { return "chat with an AI analyst about the portfolio" }
func (*assistCmd) Usage() string {
	return `pft assist [question ...]

  Starts an interactive session with an AI analyst that has the portfolio's
  reports as context. Requires the GEMINI_API_KEY environment variable.
  Arguments are asked as initial questions.
`
}

func (c *assistCmd) SetFlags(f *flag.FlagSet) {}

func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	portfolio, err := LoadStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if portfolio.Len() == 0 {
		fmt.Fprintln(os.Stderr, "No transactions yet, nothing to assist with.")
		return subcommands.ExitFailure
	}

	reports, err := renderReports(portfolio)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating AI client: %v\n", err)
		return subcommands.ExitFailure
	}

	a := agent.New(os.Stdout, os.Stdin, reports)
	if err := a.Run(ctx, client, f.Args()...); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// renderReports builds the markdown context handed to the assistant: the
// transaction log plus the full summary.
func renderReports(p *folio.Portfolio) (string, error) {
	quoter := Quoter()
	r := date.NewRange(p.OldestTransactionDate(), date.Today())
	report, err := p.Performance(quoter, r, RiskFreeRate())
	if err != nil {
		return "", err
	}

	var cmp *folio.BenchmarkComparison
	if c, err := p.Compare(quoter, "ASX 200", r); err == nil {
		cmp = c
	}

	var b strings.Builder
	b.WriteString(renderer.RenderTransactions(renderer.NewTransactions(p)))
	b.WriteString("\n")
	b.WriteString(renderer.RenderSummary(&renderer.Summary{
		Holdings:    renderer.NewHoldings(p, quoter),
		Performance: renderer.NewPerformance(report),
		Insights:    renderer.NewInsights(folio.Insights(report, cmp)),
	}))
	if cmp != nil {
		b.WriteString("\n")
		b.WriteString(renderer.RenderBenchmark(renderer.NewBenchmark(cmp)))
	}
	return b.String(), nil
}
