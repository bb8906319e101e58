package equitypack

import (
	"slices"
	"testing"
)

func TestSourcingMap_GetCreatesEmptyRecord(t *testing.T) {
	m := NewSourcingMap()

	rec := m.Get(7)
	if rec == nil {
		t.Fatal("Get(7) = nil")
	}
	if rec.InvoiceRef != "" || len(rec.Statements) != 0 || len(rec.Requests) != 0 {
		t.Errorf("fresh record is not empty: %+v", rec)
	}
	// Same id yields the same record.
	rec.InvoiceRef = "INV-2025-001_ABC.png"
	if got := m.Get(7).InvoiceRef; got != "INV-2025-001_ABC.png" {
		t.Errorf("Get(7).InvoiceRef = %q, want the previously set value", got)
	}
}

func TestSourcingMap_AddStatementIsIdempotent(t *testing.T) {
	m := NewSourcingMap()
	m.AddStatement(1, "2025-10_Chase-Bank.png")
	m.AddStatement(1, "2025-11_Chase-Bank.png")
	m.AddStatement(1, "2025-10_Chase-Bank.png") // duplicate, no-op

	want := []string{"2025-10_Chase-Bank.png", "2025-11_Chase-Bank.png"}
	if got := m.Get(1).Statements; !slices.Equal(got, want) {
		t.Errorf("Statements = %v, want %v", got, want)
	}
}

func TestSourcingMap_RemoveStatementShiftsDown(t *testing.T) {
	m := NewSourcingMap()
	m.AddStatement(1, "A")
	m.AddStatement(1, "B")
	m.AddStatement(1, "C")

	if !m.RemoveStatement(1, 0) {
		t.Fatal("RemoveStatement(1, 0) = false, want true")
	}
	want := []string{"B", "C"}
	if got := m.Get(1).Statements; !slices.Equal(got, want) {
		t.Errorf("Statements = %v, want %v", got, want)
	}

	if m.RemoveStatement(1, 5) {
		t.Error("RemoveStatement(1, 5) = true for out-of-range position")
	}
	if m.RemoveStatement(1, -1) {
		t.Error("RemoveStatement(1, -1) = true for negative position")
	}
}

func TestSourcingMap_AddRequestRejectsBlankDescription(t *testing.T) {
	m := NewSourcingMap()
	if err := m.AddRequest(1, "ABC — Equipment", "Bank statement for ****4821, November 2025"); err != nil {
		t.Fatalf("AddRequest() error = %v", err)
	}

	for _, blank := range []string{"", "   ", "\t\n"} {
		if err := m.AddRequest(1, "ABC — Equipment", blank); err == nil {
			t.Errorf("AddRequest(%q) succeeded, want error", blank)
		}
	}
	if got := len(m.Get(1).Requests); got != 1 {
		t.Errorf("request list length = %d after rejected adds, want 1", got)
	}
}

func TestSourcingMap_AddRequestTrimsDescription(t *testing.T) {
	m := NewSourcingMap()
	if err := m.AddRequest(1, "item", "  missing receipt  "); err != nil {
		t.Fatalf("AddRequest() error = %v", err)
	}
	if got := m.Get(1).Requests[0].Description; got != "missing receipt" {
		t.Errorf("Description = %q, want trimmed", got)
	}
}

func TestSourcingMap_Delete(t *testing.T) {
	m := NewSourcingMap()
	m.AssignInvoice(1, "inv.png")
	m.Delete(1)
	if got := m.Get(1).InvoiceRef; got != "" {
		t.Errorf("record survived Delete, InvoiceRef = %q", got)
	}
}

func TestSourcingMap_SnapshotIsIsolated(t *testing.T) {
	m := NewSourcingMap()
	m.AssignInvoice(1, "inv.png")
	m.AddStatement(1, "A")

	snap := m.Snapshot()

	// Edits after the snapshot must not be visible in it.
	m.AddStatement(1, "B")
	m.AssignInvoice(1, "other.png")
	m.AddRequest(1, "item", "late request")

	rec := snap[1]
	if rec.InvoiceRef != "inv.png" {
		t.Errorf("snapshot InvoiceRef = %q, want %q", rec.InvoiceRef, "inv.png")
	}
	if want := []string{"A"}; !slices.Equal(rec.Statements, want) {
		t.Errorf("snapshot Statements = %v, want %v", rec.Statements, want)
	}
	if len(rec.Requests) != 0 {
		t.Errorf("snapshot Requests = %v, want empty", rec.Requests)
	}
}
