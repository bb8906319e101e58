package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type statementCmd struct {
	id     int
	name   string
	remove int
}

func (*statementCmd) Name() string     { return "statement" }
func (*statementCmd) Synopsis() string { return "attach or detach a statement document on a ledger entry" }
func (*statementCmd) Usage() string {
	return `epk statement -id <entry-id> -name <asset-name>
epk statement -id <entry-id> -remove <position>

  Attaches the named statement asset to the entry, keeping attachment order.
  Attaching a name that is already attached is a no-op. -remove detaches the
  statement at the given 1-based position; the following statements shift
  down and renumber.
`
}

func (c *statementCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.id, "id", 0, "Id of the entry to update.")
	f.StringVar(&c.name, "name", "", "Name of the statement asset to attach.")
	f.IntVar(&c.remove, "remove", 0, "1-based position of the statement to detach.")
}

func (c *statementCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	sourcing, err := DecodeSourcing()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	switch {
	case c.remove > 0:
		if !sourcing.RemoveStatement(c.id, c.remove-1) {
			fmt.Fprintf(os.Stderr, "entry %d has no statement at position %d\n", c.id, c.remove)
			return subcommands.ExitUsageError
		}
	case c.name != "":
		sourcing.AddStatement(c.id, c.name)
	default:
		fmt.Fprintln(os.Stderr, "either -name or -remove is required")
		return subcommands.ExitUsageError
	}

	if err := EncodeSourcing(sourcing); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
