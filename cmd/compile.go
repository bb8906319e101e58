package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/closingdesk/equitypack"
	"github.com/closingdesk/equitypack/renderer"
	"github.com/google/subcommands"
)

// compileCmd holds the flags for the 'compile' subcommand.
type compileCmd struct {
	output string
}

func (*compileCmd) Name() string     { return "compile" }
func (*compileCmd) Synopsis() string { return "compile the closing package PDF for the lender" }
func (*compileCmd) Usage() string {
	return `epk compile [-o <file>]

  Compiles the ledger summary and every attached document into a single
  paginated PDF: one summary page, then one page per document slot, in
  ledger order. Missing or unreadable documents render as placeholder pages.
  The default output name is derived from the loan name.
`
}

func (c *compileCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "", "Output file. Defaults to closing_package_<loan>.pdf.")
}

func (c *compileCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	registry, err := LoadRegistry()
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
	artifact, err := renderer.CompilePackage(terms, ledger, totals, sourcing, registry)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error compiling package: %v\n", err)
		return subcommands.ExitFailure
	}

	output := c.output
	if output == "" {
		output = fmt.Sprintf("closing_package_%s.pdf", strings.ReplaceAll(terms.LoanName, " ", "_"))
	}
	if err := os.WriteFile(output, artifact, 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing package: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Wrote %s (%d bytes)\n", output, len(artifact))
	return subcommands.ExitSuccess
}
