package equitypack

import (
	"errors"
	"fmt"
	"iter"
	"slices"
)

// Entry represents one line item of the closing ledger: a single use of the
// injected equity funds.
type Entry struct {
	id int // assigned by the ledger, stable for the session, never reused

	FundsUsedFor string
	Date         string // freeform, as supplied by the borrower
	Vendor       string
	Amount       Money
	Account      string // bank account reference, e.g. "****4821"
	Invoice      string // invoice number, may be empty
	Sourced      bool
}

// ID returns the entry's session-stable identifier. It is zero for an entry
// that has not been appended to a ledger yet.
func (e Entry) ID() int { return e.id }

// Validate checks an entry for correctness before it enters the ledger.
// It returns an error describing all validation failures at once.
func (e Entry) Validate() error {
	var errs []error
	if e.FundsUsedFor == "" {
		errs = append(errs, errors.New("funds used for is required"))
	}
	if e.Vendor == "" {
		errs = append(errs, errors.New("vendor name is required"))
	}
	if e.Amount.IsNegative() {
		errs = append(errs, fmt.Errorf("amount must not be negative, got %s", e.Amount))
	}
	return errors.Join(errs...)
}

// Ledger represents the ordered list of equity uses for one closing.
//
// Entries keep their insertion order; deleting an entry compacts the list but
// never renumbers the surviving entries.
type Ledger struct {
	entries []Entry
	nextID  int
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{nextID: 1}
}

// Append validates the entry, assigns it the next id and adds it at the end
// of the ledger. It returns the stored entry, with its id set.
func (l *Ledger) Append(e Entry) (Entry, error) {
	if err := e.Validate(); err != nil {
		return Entry{}, fmt.Errorf("invalid ledger entry: %w", err)
	}
	e.id = l.nextID
	l.nextID++
	l.entries = append(l.entries, e)
	return e, nil
}

// restore re-appends a previously persisted entry under its original id and
// moves nextID past it. Ids must stay stable across encode/decode cycles,
// otherwise sourcing records keyed by id would attach to the wrong entries.
func (l *Ledger) restore(e Entry) error {
	if err := e.Validate(); err != nil {
		return fmt.Errorf("invalid ledger entry: %w", err)
	}
	if e.id < 1 {
		return fmt.Errorf("invalid entry id %d", e.id)
	}
	if _, ok := l.Entry(e.id); ok {
		return fmt.Errorf("duplicate entry id %d", e.id)
	}
	l.entries = append(l.entries, e)
	if e.id >= l.nextID {
		l.nextID = e.id + 1
	}
	return nil
}

// Delete removes the entry with the given id, preserving the order of the
// remaining entries. It reports whether an entry was removed.
//
// The caller owns the cascade: the matching sourcing record must be deleted
// from the SourcingMap alongside.
func (l *Ledger) Delete(id int) bool {
	for i, e := range l.entries {
		if e.id == id {
			l.entries = slices.Delete(l.entries, i, i+1)
			return true
		}
	}
	return false
}

// SetSourced toggles the sourced flag of the entry with the given id and
// reports whether the entry exists.
func (l *Ledger) SetSourced(id int, sourced bool) bool {
	for i := range l.entries {
		if l.entries[i].id == id {
			l.entries[i].Sourced = sourced
			return true
		}
	}
	return false
}

// Entry returns the entry with the given id.
func (l *Ledger) Entry(id int) (Entry, bool) {
	for _, e := range l.entries {
		if e.id == id {
			return e, true
		}
	}
	return Entry{}, false
}

// Entries iterates over the entries in ledger order.
func (l *Ledger) Entries() iter.Seq[Entry] {
	return slices.Values(l.entries)
}

// Len returns the number of entries in the ledger.
func (l *Ledger) Len() int { return len(l.entries) }
