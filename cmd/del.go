package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/google/subcommands"
)

type delCmd struct{}

func (*delCmd) Name() string     { return "del" }
func (*delCmd) Synopsis() string { return "delete a transaction by index" }
func (*delCmd) Usage() string {
	return `pft del <index>

  Deletes the transaction at the given index, as shown by 'pft tx'.
`
}

func (c *delCmd) SetFlags(f *flag.FlagSet) {}

func (c *delCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one index, see 'pft tx'.")
		return subcommands.ExitUsageError
	}
	i, err := strconv.Atoi(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid index %q: %v\n", f.Arg(0), err)
		return subcommands.ExitUsageError
	}

	portfolio, err := LoadStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	tx, err := portfolio.Delete(i)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	if err := SaveStore(portfolio); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Deleted %s\n", tx)
	return subcommands.ExitSuccess
}
