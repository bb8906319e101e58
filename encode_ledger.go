package equitypack

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// entryCmd is a specialized struct for decoding one ledger line from JSON.
type entryCmd struct {
	ID           int             `json:"id"`
	FundsUsedFor string          `json:"fundsUsedFor"`
	Date         string          `json:"date"`
	Vendor       string          `json:"vendor"`
	Amount       decimal.Decimal `json:"amount"`
	Account      string          `json:"account"`
	Invoice      string          `json:"invoice"`
	Sourced      bool            `json:"sourced"`
}

func (c entryCmd) Entry() Entry {
	return Entry{
		id:           c.ID,
		FundsUsedFor: c.FundsUsedFor,
		Date:         c.Date,
		Vendor:       c.Vendor,
		Amount:       M(c.Amount),
		Account:      c.Account,
		Invoice:      c.Invoice,
		Sourced:      c.Sourced,
	}
}

// DecodeLedger reads ledger entries from a stream of JSONL data, validates
// each line, and returns a ledger holding them in file order.
//
// Persisted ids are restored verbatim, never reassigned: sourcing records are
// keyed by them. A line without an id gets the next free one.
func DecodeLedger(r io.Reader) (*Ledger, error) {
	ledger := NewLedger()
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		lineBytes := scanner.Bytes()
		if len(lineBytes) == 0 {
			continue // Skip empty lines
		}
		var cmd entryCmd
		if err := json.Unmarshal(lineBytes, &cmd); err != nil {
			return nil, fmt.Errorf("could not decode ledger line %d: %w", line, err)
		}
		if cmd.ID == 0 {
			if _, err := ledger.Append(cmd.Entry()); err != nil {
				return nil, fmt.Errorf("ledger line %d: %w", line, err)
			}
		} else if err := ledger.restore(cmd.Entry()); err != nil {
			return nil, fmt.Errorf("ledger line %d: %w", line, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading ledger: %w", err)
	}
	return ledger, nil
}

// EncodeEntry writes a single entry as one JSONL line with a canonical field
// order.
func EncodeEntry(w io.Writer, e Entry) error {
	var obj jsonObjectWriter
	obj.Append("id", e.id)
	obj.Append("fundsUsedFor", e.FundsUsedFor)
	obj.Append("date", e.Date)
	obj.Append("vendor", e.Vendor)
	obj.Append("amount", e.Amount)
	obj.Append("account", e.Account)
	obj.Optional("invoice", e.Invoice)
	obj.Append("sourced", e.Sourced)

	data, err := json.Marshal(&obj)
	if err != nil {
		return fmt.Errorf("could not encode entry %d: %w", e.ID(), err)
	}
	if _, err := fmt.Fprintf(w, "%s\n", data); err != nil {
		return err
	}
	return nil
}

// EncodeLedger writes the whole ledger in JSONL form, one entry per line, in
// ledger order.
func EncodeLedger(w io.Writer, l *Ledger) error {
	for e := range l.Entries() {
		if err := EncodeEntry(w, e); err != nil {
			return err
		}
	}
	return nil
}
