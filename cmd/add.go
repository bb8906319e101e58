package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/closingdesk/equitypack"
	"github.com/google/subcommands"
)

// addCmd holds the flags for the 'add' subcommand.
type addCmd struct {
	funds   string
	date    string
	vendor  string
	amount  float64
	account string
	invoice string
	sourced bool
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "add a ledger entry" }
func (*addCmd) Usage() string {
	return `epk add -funds <description> -vendor <name> -amount <amount> [-date <date>] [-account <account>] [-invoice <number>] [-sourced]

  Appends a new entry to the closing ledger.

Usage Examples:
$ epk add -funds "Equipment" -vendor "ABC Industrial Supply" -amount 24500 -date 2025-11-15 -account "****4821" -invoice INV-2025-001
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.funds, "funds", "", "What the funds were used for (required).")
	f.StringVar(&c.date, "date", "", "Date of the expense, freeform.")
	f.StringVar(&c.vendor, "vendor", "", "Vendor name (required).")
	f.Float64Var(&c.amount, "amount", 0, "Amount in dollars.")
	f.StringVar(&c.account, "account", "", "Bank account reference.")
	f.StringVar(&c.invoice, "invoice", "", "Invoice number.")
	f.BoolVar(&c.sourced, "sourced", false, "Mark the entry as fully sourced.")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	entry, err := ledger.Append(equitypack.Entry{
		FundsUsedFor: c.funds,
		Date:         c.date,
		Vendor:       c.vendor,
		Amount:       equitypack.M(c.amount),
		Account:      c.account,
		Invoice:      c.invoice,
		Sourced:      c.sourced,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	if err := EncodeLedger(ledger); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Added entry %d: %s — %s\n", entry.ID(), entry.Vendor, entry.Amount)
	return subcommands.ExitSuccess
}
