package equitypack

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"slices"
)

// sourcingCmd is a specialized struct for decoding one sourcing line from
// JSON.
type sourcingCmd struct {
	Entry      int       `json:"entry"`
	Invoice    string    `json:"invoice"`
	Statements []string  `json:"statements"`
	Requests   []Request `json:"requests"`
}

// DecodeSourcingMap reads sourcing records from a stream of JSONL data, one
// record per line, and replays them through the map's operations.
func DecodeSourcingMap(r io.Reader) (*SourcingMap, error) {
	m := NewSourcingMap()
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		lineBytes := scanner.Bytes()
		if len(lineBytes) == 0 {
			continue
		}
		var cmd sourcingCmd
		if err := json.Unmarshal(lineBytes, &cmd); err != nil {
			return nil, fmt.Errorf("could not decode sourcing line %d: %w", line, err)
		}
		if cmd.Invoice != "" {
			m.AssignInvoice(cmd.Entry, cmd.Invoice)
		}
		for _, name := range cmd.Statements {
			m.AddStatement(cmd.Entry, name)
		}
		for _, req := range cmd.Requests {
			if err := m.AddRequest(cmd.Entry, req.Item, req.Description); err != nil {
				return nil, fmt.Errorf("sourcing line %d: %w", line, err)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading sourcing map: %w", err)
	}
	return m, nil
}

// EncodeSourcingMap writes the map in JSONL form, one record per line, in
// ascending entry id order. Empty records are skipped.
func EncodeSourcingMap(w io.Writer, m *SourcingMap) error {
	snap := m.Snapshot()
	ids := make([]int, 0, len(snap))
	for id := range snap {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	for _, id := range ids {
		rec := snap[id]
		if rec.InvoiceRef == "" && len(rec.Statements) == 0 && len(rec.Requests) == 0 {
			continue
		}
		var obj jsonObjectWriter
		obj.Append("entry", id)
		obj.Optional("invoice", rec.InvoiceRef)
		if len(rec.Statements) > 0 {
			obj.Append("statements", rec.Statements)
		}
		if len(rec.Requests) > 0 {
			obj.Append("requests", rec.Requests)
		}
		data, err := json.Marshal(&obj)
		if err != nil {
			return fmt.Errorf("could not encode sourcing record %d: %w", id, err)
		}
		if _, err := fmt.Fprintf(w, "%s\n", data); err != nil {
			return err
		}
	}
	return nil
}
