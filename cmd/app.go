// Package cmd implements the CLI application to track a personal investment
// portfolio.
package cmd

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/google/subcommands"
	"github.com/hmckay/folio"
	"github.com/hmckay/folio/date"
	"github.com/hmckay/folio/rba"
	"github.com/hmckay/folio/yahoo"
)

// Commands lists every subcommand in display order. A main package registers
// them and executes the user-selected one.
var Commands = []subcommands.Command{
	&buyCmd{},
	&sellCmd{},
	&delCmd{},
	&txCmd{},
	&holdingsCmd{},
	&historyCmd{},
	&perfCmd{},
	&benchCmd{},
	&insightsCmd{},
	&summaryCmd{},
	&assistCmd{},
	&topicCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var storeFile = flag.String("store-file", folio.DefaultStoreFilename, "Path to the portfolio transactions file (JSON)")

// EnvStoreFile overrides the default store file location.
const EnvStoreFile = "PFT_STORE_FILE"

// StorePath resolves the store file from the flag or the environment.
func StorePath() string {
	if !isFlagSet("store-file") {
		if env := os.Getenv(EnvStoreFile); env != "" {
			return env
		}
	}
	return *storeFile
}

func isFlagSet(name string) bool {
	set := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}

// LoadStore loads the portfolio from the store file. A missing file yields an
// empty portfolio.
func LoadStore() (*folio.Portfolio, error) {
	return folio.LoadPortfolio(StorePath())
}

// SaveStore persists the portfolio back to the store file.
func SaveStore(p *folio.Portfolio) error {
	return folio.SavePortfolio(StorePath(), p)
}

// Quoter returns the market data source: live quotes memoized in front of a
// disk-cached HTTP client.
func Quoter() folio.Quoter {
	return folio.NewMemoQuoter(yahoo.New())
}

// RiskFreeRate returns the current cash rate, downgrading to the built-in
// default with a log line when the fetch fails.
func RiskFreeRate() float64 {
	rate, err := rba.Latest(folio.DefaultRiskFreeRate)
	if err != nil {
		log.Println(err)
	}
	return rate
}

// parseRange turns optional -s and -e flag values into a date range. Empty
// start means the portfolio's first transaction; empty end means today.
func parseRange(p *folio.Portfolio, start, end string) (date.Range, error) {
	from := p.OldestTransactionDate()
	to := date.Today()
	var err error
	if start != "" {
		if from, err = date.Parse(start); err != nil {
			return date.Range{}, fmt.Errorf("invalid start date: %w", err)
		}
	}
	if end != "" {
		if to, err = date.Parse(end); err != nil {
			return date.Range{}, fmt.Errorf("invalid end date: %w", err)
		}
	}
	return date.NewRange(from, to), nil
}
