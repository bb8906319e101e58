package equitypack

import "testing"

func TestMoney_String(t *testing.T) {
	testCases := []struct {
		amount float64
		want   string
	}{
		{24500, "$24,500.00"},
		{24500.5, "$24,500.50"},
		{0, "$0.00"},
		{1_000_000, "$1,000,000.00"},
		{-20_000, "-$20,000.00"},
	}
	for _, tc := range testCases {
		if got := M(tc.amount).String(); got != tc.want {
			t.Errorf("M(%v).String() = %q, want %q", tc.amount, got, tc.want)
		}
	}
}

func TestMoney_WholeString(t *testing.T) {
	if got := M(1_000_000).WholeString(); got != "$1,000,000" {
		t.Errorf("WholeString() = %q, want %q", got, "$1,000,000")
	}
	if got := M(1_000_000.50).WholeString(); got != "$1,000,000.50" {
		t.Errorf("WholeString() = %q, want the cents kept", got)
	}
}

func TestMoney_Arithmetic(t *testing.T) {
	a, b := M(100.10), M(0.20)
	if got := a.Add(b); !got.Equal(M(100.30)) {
		t.Errorf("Add = %s, want $100.30", got)
	}
	if got := b.Sub(a); !got.Equal(M(-99.90)) {
		t.Errorf("Sub = %s, want -$99.90", got)
	}
	if !b.Sub(a).IsNegative() {
		t.Error("Sub result should be negative")
	}
}
