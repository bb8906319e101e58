package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type sourcedCmd struct {
	id    int
	unset bool
}

func (*sourcedCmd) Name() string     { return "sourced" }
func (*sourcedCmd) Synopsis() string { return "mark a ledger entry as sourced or unsourced" }
func (*sourcedCmd) Usage() string {
	return `epk sourced -id <entry-id> [-unset]

  Marks the entry as fully sourced, or clears the flag with -unset.
`
}

func (c *sourcedCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.id, "id", 0, "Id of the entry to update.")
	f.BoolVar(&c.unset, "unset", false, "Clear the sourced flag instead of setting it.")
}

func (c *sourcedCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if !ledger.SetSourced(c.id, !c.unset) {
		fmt.Fprintf(os.Stderr, "no ledger entry with id %d\n", c.id)
		return subcommands.ExitUsageError
	}

	if err := EncodeLedger(ledger); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
