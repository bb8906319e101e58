package renderer

import (
	"bytes"
	"fmt"

	"github.com/closingdesk/equitypack"
	md "github.com/nao1215/markdown"
)

// StatusMarkdown renders the ledger and its totals as a markdown report, the
// terminal twin of the package's summary page.
func StatusMarkdown(terms equitypack.Terms, ledger *equitypack.Ledger, totals equitypack.Totals) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Closing Equity Injection")
	doc.PlainText(fmt.Sprintf("Loan: %s | Loan Amount: %s | Equity Required: %s",
		terms.LoanName, terms.LoanAmount.WholeString(), terms.EquityRequired.WholeString()))

	rows := make([][]string, 0, ledger.Len())
	for e := range ledger.Entries() {
		sourced := "No"
		if e.Sourced {
			sourced = "Yes"
		}
		rows = append(rows, []string{
			fmt.Sprintf("%d", e.ID()),
			e.FundsUsedFor,
			e.Date,
			e.Vendor,
			e.Amount.String(),
			e.Account,
			e.Invoice,
			sourced,
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"Id", "Funds Used For", "Date", "Vendor Name", "Amount", "Account#", "Invoice#", "Sourced"},
		Rows:   rows,
	})

	doc.H2("Totals")
	doc.Table(md.TableSet{
		Header: []string{"Total", "Amount"},
		Rows: [][]string{
			{"Total Amount", totals.Total.String()},
			{md.Bold("Total Sourced"), md.Bold(totals.Sourced.String())},
			{"Unsourced", totals.Unsourced.String()},
			{"Remaining Required", totals.Remaining.String()},
		},
	})

	return doc.String()
}

// RequestsMarkdown renders the outstanding document requests across all
// entries, in ledger order.
func RequestsMarkdown(ledger *equitypack.Ledger, sourcing *equitypack.SourcingMap) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Pending Requests")

	var items []string
	for e := range ledger.Entries() {
		for _, r := range sourcing.Get(e.ID()).Requests {
			items = append(items, fmt.Sprintf("%s: %s", r.Item, r.Description))
		}
	}
	if len(items) == 0 {
		doc.PlainText("No outstanding requests.")
		return doc.String()
	}
	doc.BulletList(items...)
	doc.PlainText(fmt.Sprintf("%d outstanding request(s)", len(items)))

	return doc.String()
}
