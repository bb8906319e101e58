package equitypack

import (
	"errors"
	"slices"
	"strings"
)

// Request records a document the borrower still has to produce for an entry.
type Request struct {
	Item        string `json:"item"` // label of the ledger item the request belongs to
	Description string `json:"description"`
}

// SourcingRecord holds the document associations of a single ledger entry.
//
// Documents are referenced by asset name only. A name that no longer resolves
// in the registry is kept as-is and degrades to a placeholder page when the
// package is compiled.
type SourcingRecord struct {
	InvoiceRef string   // name in the invoice pool, empty when unassigned
	Statements []string // names in the statement pool, in attachment order
	Requests   []Request
}

// SourcingMap associates ledger entries, by id, with their sourcing records.
//
// The map is intentionally permissive: any operation on an id it has never
// seen starts from a fresh empty record. This matches the in-progress nature
// of the sourcing workflow, where associations may be staged before the entry
// or the asset is fully settled.
type SourcingMap struct {
	records map[int]*SourcingRecord
}

// NewSourcingMap creates an empty sourcing map.
func NewSourcingMap() *SourcingMap {
	return &SourcingMap{records: make(map[int]*SourcingRecord)}
}

// Get returns the record for the given entry id, creating an empty one on
// first access. It never fails.
func (m *SourcingMap) Get(id int) *SourcingRecord {
	rec, ok := m.records[id]
	if !ok {
		rec = &SourcingRecord{}
		m.records[id] = rec
	}
	return rec
}

// AssignInvoice sets the entry's invoice reference. An empty name clears it.
// The name is not checked against the registry: assignment may be provisional,
// resolution happens at compile time.
func (m *SourcingMap) AssignInvoice(id int, name string) {
	m.Get(id).InvoiceRef = name
}

// AddStatement appends a statement reference to the entry, keeping attachment
// order. Adding a name that is already attached is a no-op.
func (m *SourcingMap) AddStatement(id int, name string) {
	rec := m.Get(id)
	if slices.Contains(rec.Statements, name) {
		return
	}
	rec.Statements = append(rec.Statements, name)
}

// RemoveStatement removes the statement at the given position, shifting the
// following statements down. It reports whether the position was valid.
func (m *SourcingMap) RemoveStatement(id, i int) bool {
	rec := m.Get(id)
	if i < 0 || i >= len(rec.Statements) {
		return false
	}
	rec.Statements = slices.Delete(rec.Statements, i, i+1)
	return true
}

// AddRequest records an outstanding document request for the entry. The
// description must be non-empty after trimming; a blank description is
// rejected and the record is left unchanged.
func (m *SourcingMap) AddRequest(id int, item, description string) error {
	description = strings.TrimSpace(description)
	if description == "" {
		return errors.New("request description must not be empty")
	}
	rec := m.Get(id)
	rec.Requests = append(rec.Requests, Request{Item: item, Description: description})
	return nil
}

// RemoveRequest removes the request at the given position and reports whether
// the position was valid.
func (m *SourcingMap) RemoveRequest(id, i int) bool {
	rec := m.Get(id)
	if i < 0 || i >= len(rec.Requests) {
		return false
	}
	rec.Requests = slices.Delete(rec.Requests, i, i+1)
	return true
}

// Delete drops the record of a deleted ledger entry.
func (m *SourcingMap) Delete(id int) {
	delete(m.records, id)
}

// Snapshot returns a deep copy of the association data keyed by entry id.
// The compiler reads from a snapshot so edits made while a compile is in
// flight never corrupt its output.
func (m *SourcingMap) Snapshot() map[int]SourcingRecord {
	snap := make(map[int]SourcingRecord, len(m.records))
	for id, rec := range m.records {
		snap[id] = SourcingRecord{
			InvoiceRef: rec.InvoiceRef,
			Statements: slices.Clone(rec.Statements),
			Requests:   slices.Clone(rec.Requests),
		}
	}
	return snap
}
