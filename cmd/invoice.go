package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type invoiceCmd struct {
	id    int
	name  string
	clear bool
}

func (*invoiceCmd) Name() string     { return "invoice" }
func (*invoiceCmd) Synopsis() string { return "assign an invoice document to a ledger entry" }
func (*invoiceCmd) Usage() string {
	return `epk invoice -id <entry-id> -name <asset-name> | -id <entry-id> -clear

  Assigns the named invoice asset to the entry, or clears the assignment.
  The name is not checked against the document pool: a name that never
  resolves renders as an unavailable-document page in the compiled package.
`
}

func (c *invoiceCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.id, "id", 0, "Id of the entry to update.")
	f.StringVar(&c.name, "name", "", "Name of the invoice asset to assign.")
	f.BoolVar(&c.clear, "clear", false, "Clear the invoice assignment.")
}

func (c *invoiceCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if !c.clear && c.name == "" {
		fmt.Fprintln(os.Stderr, "either -name or -clear is required")
		return subcommands.ExitUsageError
	}
	sourcing, err := DecodeSourcing()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if c.clear {
		sourcing.AssignInvoice(c.id, "")
	} else {
		sourcing.AssignInvoice(c.id, c.name)
	}

	if err := EncodeSourcing(sourcing); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
