package equitypack

import "testing"

func TestComputeTotals_EmptyLedger(t *testing.T) {
	terms := DefaultTerms()
	got := ComputeTotals(NewLedger(), terms)

	if !got.Total.IsZero() || !got.Sourced.IsZero() || !got.Unsourced.IsZero() {
		t.Errorf("empty ledger totals = %+v, want all zero", got)
	}
	if !got.Remaining.Equal(terms.EquityRequired) {
		t.Errorf("Remaining = %s, want %s", got.Remaining, terms.EquityRequired)
	}
}

func TestComputeTotals(t *testing.T) {
	testCases := []struct {
		name          string
		amounts       []float64
		sourced       []bool
		wantTotal     Money
		wantSourced   Money
		wantUnsourced Money
		wantRemaining Money
	}{
		{
			name:          "single sourced entry",
			amounts:       []float64{24500},
			sourced:       []bool{true},
			wantTotal:     M(24500),
			wantSourced:   M(24500),
			wantUnsourced: M(0),
			wantRemaining: M(75500),
		},
		{
			name:          "single unsourced entry",
			amounts:       []float64{24500},
			sourced:       []bool{false},
			wantTotal:     M(24500),
			wantSourced:   M(0),
			wantUnsourced: M(24500),
			wantRemaining: M(100_000),
		},
		{
			name:          "mixed entries with cents",
			amounts:       []float64{100.10, 200.25, 49.65},
			sourced:       []bool{true, false, true},
			wantTotal:     M(350.00),
			wantSourced:   M(149.75),
			wantUnsourced: M(200.25),
			wantRemaining: M(99_850.25),
		},
		{
			name:          "sourced beyond the requirement is a surplus",
			amounts:       []float64{120_000},
			sourced:       []bool{true},
			wantTotal:     M(120_000),
			wantSourced:   M(120_000),
			wantUnsourced: M(0),
			wantRemaining: M(-20_000),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			l := NewLedger()
			for i, amount := range tc.amounts {
				if _, err := l.Append(testEntry("Vendor", amount, tc.sourced[i])); err != nil {
					t.Fatalf("Append() error = %v", err)
				}
			}
			got := ComputeTotals(l, DefaultTerms())
			if !got.Total.Equal(tc.wantTotal) {
				t.Errorf("Total = %s, want %s", got.Total, tc.wantTotal)
			}
			if !got.Sourced.Equal(tc.wantSourced) {
				t.Errorf("Sourced = %s, want %s", got.Sourced, tc.wantSourced)
			}
			if !got.Unsourced.Equal(tc.wantUnsourced) {
				t.Errorf("Unsourced = %s, want %s", got.Unsourced, tc.wantUnsourced)
			}
			if !got.Remaining.Equal(tc.wantRemaining) {
				t.Errorf("Remaining = %s, want %s", got.Remaining, tc.wantRemaining)
			}
			// The split is exact: total == sourced + unsourced.
			if !got.Total.Equal(got.Sourced.Add(got.Unsourced)) {
				t.Errorf("Total %s != Sourced %s + Unsourced %s", got.Total, got.Sourced, got.Unsourced)
			}
		})
	}
}
