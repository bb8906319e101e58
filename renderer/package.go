// Package renderer compiles the closing ledger and its sourcing documents
// into deliverable artifacts: the paginated PDF package for the lender, and
// markdown status reports for the terminal.
package renderer

import (
	"bytes"
	"slices"

	"github.com/closingdesk/equitypack"
	"github.com/go-pdf/fpdf"
)

// RenderError reports an unrecoverable failure while encoding the package
// artifact. Per-document problems never surface here; they degrade to
// placeholder pages instead.
type RenderError struct {
	Err error
}

func (e *RenderError) Error() string { return "could not render package: " + e.Err.Error() }
func (e *RenderError) Unwrap() error { return e.Err }

// CompilePackage renders the whole closing package as a single PDF:
//
//	page 1     ledger summary with totals
//	page 2..N  one page per document slot, per entry, in ledger order
//
// An entry with no invoice and no statements still contributes exactly one
// page, carrying a "No Documents Attached" placeholder. Totals are taken from
// the caller, not recomputed.
//
// The compiler reads from snapshots of its inputs taken up front, so edits
// made to the ledger or the sourcing map while it runs never corrupt the
// output. It either returns the complete artifact or a *RenderError, never a
// partial document.
func CompilePackage(terms equitypack.Terms, ledger *equitypack.Ledger, totals equitypack.Totals, sourcing *equitypack.SourcingMap, registry *equitypack.Registry) ([]byte, error) {
	entries := slices.Collect(ledger.Entries())
	associations := sourcing.Snapshot()

	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           fpdf.SizeType{Wd: pageW, Ht: pageH},
	})
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetMargins(margin, margin, margin)
	c := newCanvas(pdf)

	drawSummaryPage(c, terms, entries, totals)

	docSeq := 0
	for _, e := range entries {
		label := truncate(entryLabel(e), maxLabelChars)
		for _, s := range buildSlots(associations[e.ID()], registry) {
			docSeq++
			drawDocumentPage(c, docSeq, label, s)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, &RenderError{Err: err}
	}
	return buf.Bytes(), nil
}

// entryLabel composes the identifying banner line of an entry's document
// pages.
func entryLabel(e equitypack.Entry) string {
	return e.Vendor + "  —  " + e.FundsUsedFor + "   |   " + e.Amount.String() + "   |   " + e.Date
}

// canvas wraps the document together with the cp1252 translator. The core
// fonts are not unicode; every string must pass through the translator before
// it reaches the page, or punctuation like the em dash in entry labels comes
// out garbled.
type canvas struct {
	pdf *fpdf.Fpdf
	tr  func(string) string
}

func newCanvas(pdf *fpdf.Fpdf) *canvas {
	return &canvas{pdf: pdf, tr: pdf.UnicodeTranslatorFromDescriptor("")}
}

// setColor applies col to both the text and draw colors of the document.
func (c *canvas) setColor(col rgb) {
	c.pdf.SetTextColor(col.r, col.g, col.b)
	c.pdf.SetDrawColor(col.r, col.g, col.b)
}

// text draws s with its top-left corner at (x, y), in the given font size.
func (c *canvas) text(x, y, size float64, s string) {
	c.pdf.SetFont("Helvetica", "", size)
	c.pdf.Text(x, y+size, c.tr(s))
}
