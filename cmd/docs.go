package cmd

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/closingdesk/equitypack"
	"github.com/google/subcommands"
)

type docsCmd struct {
	add     string
	pool    string
	account string
}

func (*docsCmd) Name() string     { return "docs" }
func (*docsCmd) Synopsis() string { return "list or register document assets" }
func (*docsCmd) Usage() string {
	return `epk docs
epk docs -add <file> -pool invoice
epk docs -add <file> -pool statement [-account <bucket>]

  Without flags, lists the invoice and statement pools, statements grouped by
  account. With -add, registers a local file into the chosen pool and copies
  it into the docs tree. Registering a name that already exists in its pool is
  a no-op. Uploaded statements default to the "uploaded" bucket.
`
}

func (c *docsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.add, "add", "", "Path of a document file to register.")
	f.StringVar(&c.pool, "pool", "", "Pool to register into: invoice or statement.")
	f.StringVar(&c.account, "account", equitypack.AccountUploaded, "Account bucket for an added statement.")
}

func (c *docsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	registry, err := LoadRegistry()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if c.add == "" {
		c.list(registry)
		return subcommands.ExitSuccess
	}
	return c.register(registry)
}

func (c *docsCmd) list(registry *equitypack.Registry) {
	fmt.Printf("Invoices (%d):\n", len(registry.Invoices()))
	for _, a := range registry.Invoices() {
		fmt.Printf("  %s\n", a.Name)
	}
	fmt.Printf("Statements (%d):\n", len(registry.Statements()))
	for _, acct := range registry.StatementAccounts() {
		fmt.Printf("  %s\n", registry.AccountLabel(acct))
		for _, a := range registry.StatementsFor(acct) {
			fmt.Printf("    %s — %s\n", a.Name, equitypack.StatementMonth(a.Name))
		}
	}
}

func (c *docsCmd) register(registry *equitypack.Registry) subcommands.ExitStatus {
	name := filepath.Base(c.add)
	if !equitypack.SupportedImage(name) {
		fmt.Fprintf(os.Stderr, "%s: unsupported document type, expected png, jpg, jpeg or gif\n", name)
		return subcommands.ExitUsageError
	}
	data, err := os.ReadFile(c.add)
	if err != nil {
		fmt.Fprintf(os.Stderr, "could not read document %q: %v\n", c.add, err)
		return subcommands.ExitFailure
	}
	mediaType := http.DetectContentType(data)

	var added bool
	var dir string
	switch c.pool {
	case "invoice":
		added = registry.AddInvoice(equitypack.Asset{Name: name, Data: data, MediaType: mediaType})
		dir = filepath.Join(*docsDir, "invoices")
	case "statement":
		added = registry.AddStatement(equitypack.Asset{Name: name, Data: data, MediaType: mediaType, Account: c.account})
		dir = filepath.Join(*docsDir, "statements", c.account)
	default:
		fmt.Fprintln(os.Stderr, "-pool must be invoice or statement")
		return subcommands.ExitUsageError
	}
	if !added {
		fmt.Printf("%s is already registered\n", name)
		return subcommands.ExitSuccess
	}

	// Persist into the docs tree so the next invocation finds it.
	if err := os.MkdirAll(dir, 0755); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := os.WriteFile(filepath.Join(dir, name), data, 0644); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Registered %s\n", name)
	return subcommands.ExitSuccess
}
