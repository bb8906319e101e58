package renderer

import (
	"strings"
	"testing"

	"github.com/closingdesk/equitypack"
)

func TestStatusMarkdown(t *testing.T) {
	ledger := newLedgerWith(t,
		equitypack.Entry{FundsUsedFor: "Equipment", Date: "2025-11-15", Vendor: "ABC Industrial Supply",
			Amount: equitypack.M(24500.00), Account: "****4821", Invoice: "INV-2025-001", Sourced: true},
		equitypack.Entry{FundsUsedFor: "Deposit", Date: "2025-11-20", Vendor: "Acme Realty",
			Amount: equitypack.M(12000.00), Sourced: false},
	)
	terms := equitypack.DefaultTerms()
	totals := equitypack.ComputeTotals(ledger, terms)

	got := StatusMarkdown(terms, ledger, totals)

	for _, want := range []string{
		"Closing Equity Injection",
		"Moving Company LLC",
		"$24,500.00",
		"Yes",
		"No",
		"$36,500.00", // total amount
		"$12,000.00", // unsourced
		"$75,500.00", // remaining required
	} {
		if !strings.Contains(got, want) {
			t.Errorf("StatusMarkdown() missing %q:\n%s", want, got)
		}
	}
}

func TestRequestsMarkdown(t *testing.T) {
	ledger := newLedgerWith(t,
		equitypack.Entry{FundsUsedFor: "Equipment", Vendor: "ABC", Amount: equitypack.M(100)},
		equitypack.Entry{FundsUsedFor: "Deposit", Vendor: "Acme", Amount: equitypack.M(200)},
	)
	sourcing := equitypack.NewSourcingMap()
	sourcing.AddRequest(2, "Acme — Deposit", "Wire confirmation")
	sourcing.AddRequest(1, "ABC — Equipment", "November statement for ****4821")

	got := RequestsMarkdown(ledger, sourcing)
	if !strings.Contains(got, "2 outstanding request(s)") {
		t.Errorf("RequestsMarkdown() missing the count:\n%s", got)
	}
	// Requests follow ledger order, not the order they were recorded in.
	if strings.Index(got, "November statement") > strings.Index(got, "Wire confirmation") {
		t.Errorf("requests are not in ledger order:\n%s", got)
	}
}

func TestRequestsMarkdown_Empty(t *testing.T) {
	ledger := newLedgerWith(t, equitypack.Entry{FundsUsedFor: "Equipment", Vendor: "ABC", Amount: equitypack.M(100)})
	got := RequestsMarkdown(ledger, equitypack.NewSourcingMap())
	if !strings.Contains(got, "No outstanding requests.") {
		t.Errorf("RequestsMarkdown() on empty map:\n%s", got)
	}
}
