// Package cmd implements the CLI application to manage a closing equity
// injection package.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"

	"github.com/closingdesk/equitypack"
	"github.com/google/subcommands"
)

// Commands lists the subcommands a main package registers.
var Commands = []subcommands.Command{
	&statusCmd{},
	&addCmd{},
	&rmCmd{},
	&sourcedCmd{},
	&invoiceCmd{},
	&statementCmd{},
	&requestCmd{},
	&docsCmd{},
	&compileCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var ledgerFile = flag.String("ledger-file", "ledger.jsonl", "Path to the ledger file (JSONL format)")
var sourcingFile = flag.String("sourcing-file", "sourcing.jsonl", "Path to the sourcing associations file (JSONL format)")
var docsDir = flag.String("docs-dir", ".", "Directory holding the invoices/ and statements/ document folders")
var termsFile = flag.String("terms-file", "terms.yaml", "Path to the loan terms file (YAML)")

// DecodeLedger loads the ledger from the app ledger file. A missing file
// yields an empty ledger.
func DecodeLedger() (*equitypack.Ledger, error) {
	f, err := os.Open(*ledgerFile)
	if errors.Is(err, fs.ErrNotExist) {
		log.Println("warning, ledger file does not exist, starting with an empty ledger")
		return equitypack.NewLedger(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not open ledger file %q: %w", *ledgerFile, err)
	}
	defer f.Close()
	return equitypack.DecodeLedger(f)
}

// EncodeLedger writes the ledger back to the app ledger file.
func EncodeLedger(l *equitypack.Ledger) error {
	f, err := os.Create(*ledgerFile)
	if err != nil {
		return fmt.Errorf("could not write ledger file %q: %w", *ledgerFile, err)
	}
	defer f.Close()
	return equitypack.EncodeLedger(f, l)
}

// DecodeSourcing loads the sourcing map from the app sourcing file. A missing
// file yields an empty map.
func DecodeSourcing() (*equitypack.SourcingMap, error) {
	f, err := os.Open(*sourcingFile)
	if errors.Is(err, fs.ErrNotExist) {
		return equitypack.NewSourcingMap(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not open sourcing file %q: %w", *sourcingFile, err)
	}
	defer f.Close()
	return equitypack.DecodeSourcingMap(f)
}

// EncodeSourcing writes the sourcing map back to the app sourcing file.
func EncodeSourcing(m *equitypack.SourcingMap) error {
	f, err := os.Create(*sourcingFile)
	if err != nil {
		return fmt.Errorf("could not write sourcing file %q: %w", *sourcingFile, err)
	}
	defer f.Close()
	return equitypack.EncodeSourcingMap(f, m)
}

// LoadRegistry loads the document pools from the app docs directory.
func LoadRegistry() (*equitypack.Registry, error) {
	return equitypack.LoadRegistry(os.DirFS(*docsDir))
}

// LoadTerms loads the loan terms, falling back to the demo defaults when the
// terms file does not exist.
func LoadTerms() (equitypack.Terms, error) {
	return equitypack.LoadTerms(*termsFile)
}
