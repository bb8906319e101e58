package equitypack

// Totals aggregates the ledger amounts against the loan terms. It is derived
// on demand, never stored.
type Totals struct {
	Total     Money // sum of all entry amounts
	Sourced   Money // sum of amounts with the sourced flag set
	Unsourced Money // Total - Sourced
	Remaining Money // equity required - Sourced; negative means surplus
}

// ComputeTotals aggregates the ledger. For an empty ledger all sums are zero
// and Remaining equals the required equity.
func ComputeTotals(ledger *Ledger, terms Terms) Totals {
	var total, sourced Money
	for e := range ledger.Entries() {
		total = total.Add(e.Amount)
		if e.Sourced {
			sourced = sourced.Add(e.Amount)
		}
	}
	return Totals{
		Total:     total,
		Sourced:   sourced,
		Unsourced: total.Sub(sourced),
		Remaining: terms.EquityRequired.Sub(sourced),
	}
}
