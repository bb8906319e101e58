package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/closingdesk/equitypack"
	"github.com/closingdesk/equitypack/renderer"
	"github.com/google/subcommands"
)

type statusCmd struct{}

func (*statusCmd) Name() string     { return "status" }
func (*statusCmd) Synopsis() string { return "display the ledger with sourcing totals" }
func (*statusCmd) Usage() string {
	return `epk status

  Displays the closing ledger, each entry's sourced flag, and the totals
  against the required equity injection.
`
}

func (c *statusCmd) SetFlags(f *flag.FlagSet) {}

func (c *statusCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	terms, err := LoadTerms()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	totals := equitypack.ComputeTotals(ledger, terms)
	printMarkdown(renderer.StatusMarkdown(terms, ledger, totals))
	return subcommands.ExitSuccess
}
