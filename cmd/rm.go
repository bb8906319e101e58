package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type rmCmd struct {
	id int
}

func (*rmCmd) Name() string     { return "rm" }
func (*rmCmd) Synopsis() string { return "delete a ledger entry and its sourcing record" }
func (*rmCmd) Usage() string {
	return `epk rm -id <entry-id>

  Deletes the ledger entry with the given id. The entry's sourcing record is
  removed alongside; the remaining entries keep their ids and their order.
`
}

func (c *rmCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.id, "id", 0, "Id of the entry to delete.")
}

func (c *rmCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	sourcing, err := DecodeSourcing()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if !ledger.Delete(c.id) {
		fmt.Fprintf(os.Stderr, "no ledger entry with id %d\n", c.id)
		return subcommands.ExitUsageError
	}
	sourcing.Delete(c.id)

	if err := EncodeLedger(ledger); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := EncodeSourcing(sourcing); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Deleted entry %d\n", c.id)
	return subcommands.ExitSuccess
}
