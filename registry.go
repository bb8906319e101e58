package equitypack

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"time"
)

// Reserved account buckets for assets that do not come from a bank statement
// folder.
const (
	AccountUploaded = "uploaded"
	AccountOther    = "other_docs"
)

// Asset is a named binary document available for attachment: an invoice, a
// bank statement, or another supporting file. Assets are immutable once
// registered and live for the duration of the session.
type Asset struct {
	Name      string
	Data      []byte
	MediaType string
	Account   string // statement account folder, a reserved bucket, or empty for invoices
}

// Registry holds the pool of document assets for one closing session.
//
// Invoices and statements are separate namespaces: the same name may exist in
// both pools without conflict.
type Registry struct {
	invoices   []Asset
	statements []Asset
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// AddInvoice registers an invoice asset. Registering a name that already
// exists in the invoice pool is a no-op; it reports whether the asset was
// added.
func (r *Registry) AddInvoice(a Asset) bool {
	if _, ok := r.Invoice(a.Name); ok {
		return false
	}
	r.invoices = append(r.invoices, a)
	return true
}

// AddStatement registers a statement asset, with the same duplicate-name
// semantics as AddInvoice.
func (r *Registry) AddStatement(a Asset) bool {
	if _, ok := r.Statement(a.Name); ok {
		return false
	}
	r.statements = append(r.statements, a)
	return true
}

// Invoice looks up an invoice asset by name.
func (r *Registry) Invoice(name string) (Asset, bool) {
	return findAsset(r.invoices, name)
}

// Statement looks up a statement asset by name.
func (r *Registry) Statement(name string) (Asset, bool) {
	return findAsset(r.statements, name)
}

func findAsset(pool []Asset, name string) (Asset, bool) {
	for _, a := range pool {
		if a.Name == name {
			return a, true
		}
	}
	return Asset{}, false
}

// Invoices returns the invoice pool in registration order.
func (r *Registry) Invoices() []Asset { return r.invoices }

// Statements returns the statement pool in registration order.
func (r *Registry) Statements() []Asset { return r.statements }

// StatementAccounts returns the distinct statement account groups in a stable
// order: bank folders sorted by name, then the reserved buckets.
func (r *Registry) StatementAccounts() []string {
	var banks []string
	seen := make(map[string]bool)
	for _, a := range r.statements {
		if a.Account == "" || a.Account == AccountUploaded || a.Account == AccountOther {
			continue
		}
		if !seen[a.Account] {
			seen[a.Account] = true
			banks = append(banks, a.Account)
		}
	}
	sort.Strings(banks)
	for _, a := range r.statements {
		if (a.Account == AccountUploaded || a.Account == AccountOther) && !seen[a.Account] {
			seen[a.Account] = true
			banks = append(banks, a.Account)
		}
	}
	return banks
}

// StatementsFor returns the statement assets of one account group, in
// registration order.
func (r *Registry) StatementsFor(account string) []Asset {
	var out []Asset
	for _, a := range r.statements {
		if a.Account == account {
			out = append(out, a)
		}
	}
	return out
}

// LoadRegistry bootstraps a registry from a local document tree:
//
//	invoices/*                 -> invoice pool
//	statements/<account>/*     -> statement pool, grouped by folder
//
// Only image files (png, jpg, jpeg, gif) are picked up. Either directory may
// be absent; a missing directory yields the matching empty pool.
func LoadRegistry(fsys fs.FS) (*Registry, error) {
	r := NewRegistry()

	invoices, err := listImages(fsys, "invoices")
	if err != nil {
		return nil, fmt.Errorf("could not scan invoices: %w", err)
	}
	for _, p := range invoices {
		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return nil, fmt.Errorf("could not read invoice %q: %w", p, err)
		}
		r.AddInvoice(Asset{Name: path.Base(p), Data: data, MediaType: mediaType(p)})
	}

	accounts, err := fs.ReadDir(fsys, "statements")
	if errors.Is(err, fs.ErrNotExist) {
		return r, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not scan statements: %w", err)
	}
	for _, acct := range accounts {
		if !acct.IsDir() {
			continue
		}
		files, err := listImages(fsys, path.Join("statements", acct.Name()))
		if err != nil {
			return nil, fmt.Errorf("could not scan statements of %q: %w", acct.Name(), err)
		}
		for _, p := range files {
			data, err := fs.ReadFile(fsys, p)
			if err != nil {
				return nil, fmt.Errorf("could not read statement %q: %w", p, err)
			}
			r.AddStatement(Asset{Name: path.Base(p), Data: data, MediaType: mediaType(p), Account: acct.Name()})
		}
	}
	return r, nil
}

// listImages returns the image files directly under dir, sorted by name. A
// missing dir yields an empty list.
func listImages(fsys fs.FS, dir string) ([]string, error) {
	files, err := fs.ReadDir(fsys, dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var out []string
	for _, f := range files {
		if f.IsDir() {
			continue
		}
		if SupportedImage(f.Name()) {
			out = append(out, path.Join(dir, f.Name()))
		}
	}
	sort.Strings(out)
	return out, nil
}

// SupportedImage reports whether the file name carries an extension the
// registry scanner picks up. Only such files survive a registry reload.
func SupportedImage(name string) bool {
	switch strings.ToLower(path.Ext(name)) {
	case ".png", ".jpg", ".jpeg", ".gif":
		return true
	}
	return false
}

func mediaType(p string) string {
	switch strings.ToLower(path.Ext(p)) {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".gif":
		return "image/gif"
	default:
		return "image/png"
	}
}

// StatementMonth derives a display month from a statement file name of the
// form "2025-11_Chase-Bank.png". A name that does not follow the convention
// yields its leading segment unchanged.
func StatementMonth(name string) string {
	stem, _, _ := strings.Cut(name, ".")
	head, _, _ := strings.Cut(stem, "_")
	t, err := time.Parse("2006-01", head)
	if err != nil {
		return head
	}
	return t.Format("Jan 2006")
}

// BankName derives a display bank name from a statement file name, e.g.
// "2025-11_Chase-Bank.png" -> "Chase Bank".
func BankName(name string) string {
	stem, _, _ := strings.Cut(name, ".")
	_, bank, ok := strings.Cut(stem, "_")
	if !ok {
		return name
	}
	return strings.ReplaceAll(bank, "-", " ")
}

// AccountNumber derives the masked account label from a statement folder
// name, e.g. "Checking_4821" -> "****4821".
func AccountNumber(folder string) string {
	parts := strings.Split(folder, "_")
	if len(parts) < 2 {
		return folder
	}
	return "****" + parts[len(parts)-1]
}

// AccountLabel returns the display label of a statement account group.
func (r *Registry) AccountLabel(account string) string {
	switch account {
	case AccountUploaded:
		return "Uploaded Files"
	case AccountOther:
		return "Other Documents"
	}
	files := r.StatementsFor(account)
	bank := ""
	if len(files) > 0 {
		bank = BankName(files[0].Name)
	}
	return fmt.Sprintf("%s  (%s)", bank, AccountNumber(account))
}
