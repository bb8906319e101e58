package renderer

import (
	"strings"

	"github.com/closingdesk/equitypack"
)

// drawSummaryPage renders page 1: the loan header, the full ledger table and
// the totals block.
func drawSummaryPage(c *canvas, terms equitypack.Terms, entries []equitypack.Entry, totals equitypack.Totals) {
	c.pdf.AddPage()
	y := margin

	c.setColor(colText)
	c.text(margin, y, fontTitle, "Closing Equity Injection")
	y += 42

	c.setColor(colMuted)
	subtitle := "Loan: " + terms.LoanName +
		"   |   Loan Amount: " + terms.LoanAmount.WholeString() +
		"   |   Equity Required: " + terms.EquityRequired.WholeString()
	c.text(margin, y, fontXs, subtitle)
	y += 28

	c.setColor(colDivider)
	c.pdf.SetLineWidth(2)
	c.pdf.Line(margin, y, pageW-margin, y)
	y += 18

	// Column headers, uppercased.
	c.setColor(colMuted)
	x := margin
	for i, h := range colHeaders {
		c.text(x, y, fontXs, strings.ToUpper(h))
		x += colWidths[i]
	}
	y += 20
	c.setColor(colDivider)
	c.pdf.SetLineWidth(1)
	c.pdf.Line(margin, y, pageW-margin, y)
	y += 10

	for _, e := range entries {
		cells := [7]string{
			truncate(e.FundsUsedFor, maxFundsChars),
			e.Date,
			truncate(e.Vendor, maxVendorChars),
			e.Amount.String(),
			e.Account,
			e.Invoice,
			"No",
		}
		sourcedColor := colRed
		if e.Sourced {
			cells[6] = "Yes"
			sourcedColor = colGreen
		}
		x = margin
		for i, cell := range cells {
			if i == 6 {
				c.setColor(sourcedColor)
			} else {
				c.setColor(colText)
			}
			c.text(x, y, fontSm, cell)
			x += colWidths[i]
		}
		y += 26
		c.setColor(colRowRule)
		c.pdf.Line(margin, y-5, pageW-margin, y-5)
	}

	y += 8
	c.setColor(colDivider)
	c.pdf.SetLineWidth(2)
	c.pdf.Line(margin, y, pageW-margin, y)
	y += 14

	// Totals, fed from the calculator, aligned under the amount column.
	tx := margin + colWidths[0] + colWidths[1]
	c.setColor(colText)
	c.text(tx, y, fontMd, "Total Amount")
	c.text(tx+colWidths[2], y, fontMd, totals.Total.String())
	y += 30
	c.text(tx, y, fontMd, "Total Sourced")
	c.setColor(colGreen)
	c.text(tx+colWidths[2], y, fontMd, totals.Sourced.String())
}
