package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/closingdesk/equitypack/renderer"
	"github.com/google/subcommands"
)

type requestCmd struct {
	id          int
	description string
	remove      int
	list        bool
}

func (*requestCmd) Name() string     { return "request" }
func (*requestCmd) Synopsis() string { return "manage outstanding document requests" }
func (*requestCmd) Usage() string {
	return `epk request -id <entry-id> -desc <description>
epk request -id <entry-id> -remove <position>
epk request -list

  Records a missing-document request on an entry, removes one by its 1-based
  position, or lists all outstanding requests across the ledger. A request
  with a blank description is rejected.
`
}

func (c *requestCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.id, "id", 0, "Id of the entry the request belongs to.")
	f.StringVar(&c.description, "desc", "", "Description of the missing document.")
	f.IntVar(&c.remove, "remove", 0, "1-based position of the request to remove.")
	f.BoolVar(&c.list, "list", false, "List all outstanding requests.")
}

func (c *requestCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	if c.list {
		printMarkdown(renderer.RequestsMarkdown(ledger, sourcing))
		return subcommands.ExitSuccess
	}

	switch {
	case c.remove > 0:
		if !sourcing.RemoveRequest(c.id, c.remove-1) {
			fmt.Fprintf(os.Stderr, "entry %d has no request at position %d\n", c.id, c.remove)
			return subcommands.ExitUsageError
		}
	case c.description != "":
		item := fmt.Sprintf("entry %d", c.id)
		if e, ok := ledger.Entry(c.id); ok {
			item = e.Vendor + " — " + e.FundsUsedFor
		}
		if err := sourcing.AddRequest(c.id, item, c.description); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitUsageError
		}
	default:
		fmt.Fprintln(os.Stderr, "either -desc, -remove or -list is required")
		return subcommands.ExitUsageError
	}

	if err := EncodeSourcing(sourcing); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
