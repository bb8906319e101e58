package equitypack

import (
	"slices"
	"testing"
	"testing/fstest"
)

func TestLoadRegistry(t *testing.T) {
	fsys := fstest.MapFS{
		"invoices/INV-2025-001_ABC.png":                   {Data: []byte("inv1")},
		"invoices/INV-2025-002_Office.png":                {Data: []byte("inv2")},
		"invoices/notes.txt":                              {Data: []byte("ignored")},
		"statements/Checking_4821/2025-10_Chase-Bank.png": {Data: []byte("st1")},
		"statements/Checking_4821/2025-11_Chase-Bank.png": {Data: []byte("st2")},
		"statements/Savings_9177/2025-11_Wells-Fargo.png": {Data: []byte("st3")},
	}

	r, err := LoadRegistry(fsys)
	if err != nil {
		t.Fatalf("LoadRegistry() error = %v", err)
	}

	if got := len(r.Invoices()); got != 2 {
		t.Errorf("loaded %d invoices, want 2 (non-image files skipped)", got)
	}
	if _, ok := r.Invoice("INV-2025-001_ABC.png"); !ok {
		t.Error("invoice INV-2025-001_ABC.png not found")
	}

	if got := len(r.Statements()); got != 3 {
		t.Errorf("loaded %d statements, want 3", got)
	}
	st, ok := r.Statement("2025-10_Chase-Bank.png")
	if !ok {
		t.Fatal("statement 2025-10_Chase-Bank.png not found")
	}
	if st.Account != "Checking_4821" {
		t.Errorf("Account = %q, want Checking_4821", st.Account)
	}

	accounts := r.StatementAccounts()
	if want := []string{"Checking_4821", "Savings_9177"}; !slices.Equal(accounts, want) {
		t.Errorf("StatementAccounts() = %v, want %v", accounts, want)
	}
}

func TestLoadRegistry_MissingDirectories(t *testing.T) {
	r, err := LoadRegistry(fstest.MapFS{})
	if err != nil {
		t.Fatalf("LoadRegistry() on empty tree error = %v", err)
	}
	if len(r.Invoices()) != 0 || len(r.Statements()) != 0 {
		t.Errorf("pools not empty: %d invoices, %d statements", len(r.Invoices()), len(r.Statements()))
	}
}

func TestRegistry_DuplicateNamesAreNoOps(t *testing.T) {
	r := NewRegistry()
	if !r.AddInvoice(Asset{Name: "a.png", Data: []byte("first")}) {
		t.Fatal("first AddInvoice = false")
	}
	if r.AddInvoice(Asset{Name: "a.png", Data: []byte("second")}) {
		t.Error("duplicate AddInvoice = true, want no-op")
	}
	a, _ := r.Invoice("a.png")
	if string(a.Data) != "first" {
		t.Errorf("duplicate registration replaced the asset: %q", a.Data)
	}

	// Invoice and statement pools are separate namespaces.
	if !r.AddStatement(Asset{Name: "a.png", Account: AccountUploaded}) {
		t.Error("AddStatement with a name used in the invoice pool = false, want true")
	}
}

func TestStatementMonth(t *testing.T) {
	testCases := []struct {
		name string
		want string
	}{
		{"2025-11_Chase-Bank.png", "Nov 2025"},
		{"2025-01_Wells-Fargo.png", "Jan 2025"},
		{"receipt.png", "receipt"},
	}
	for _, tc := range testCases {
		if got := StatementMonth(tc.name); got != tc.want {
			t.Errorf("StatementMonth(%q) = %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestBankName(t *testing.T) {
	if got := BankName("2025-11_Chase-Bank.png"); got != "Chase Bank" {
		t.Errorf("BankName() = %q, want Chase Bank", got)
	}
	if got := BankName("receipt.png"); got != "receipt.png" {
		t.Errorf("BankName() without separator = %q, want the name unchanged", got)
	}
}

func TestAccountNumber(t *testing.T) {
	if got := AccountNumber("Checking_4821"); got != "****4821" {
		t.Errorf("AccountNumber() = %q, want ****4821", got)
	}
	if got := AccountNumber("nounderscore"); got != "nounderscore" {
		t.Errorf("AccountNumber() = %q, want the folder unchanged", got)
	}
}

func TestSupportedImage(t *testing.T) {
	testCases := []struct {
		name string
		want bool
	}{
		{"invoice.png", true},
		{"invoice.PNG", true},
		{"scan.jpg", true},
		{"scan.jpeg", true},
		{"scan.gif", true},
		{"contract.pdf", false},
		{"photo.webp", false},
		{"noextension", false},
	}
	for _, tc := range testCases {
		if got := SupportedImage(tc.name); got != tc.want {
			t.Errorf("SupportedImage(%q) = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestRegistry_AccountLabel(t *testing.T) {
	r := NewRegistry()
	r.AddStatement(Asset{Name: "2025-11_Chase-Bank.png", Account: "Checking_4821"})

	if got := r.AccountLabel("Checking_4821"); got != "Chase Bank  (****4821)" {
		t.Errorf("AccountLabel() = %q", got)
	}
	if got := r.AccountLabel(AccountUploaded); got != "Uploaded Files" {
		t.Errorf("AccountLabel(uploaded) = %q", got)
	}
	if got := r.AccountLabel(AccountOther); got != "Other Documents" {
		t.Errorf("AccountLabel(other_docs) = %q", got)
	}
}
