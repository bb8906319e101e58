package renderer

import (
	"bytes"
	"fmt"
	"image/png"

	"github.com/closingdesk/equitypack"
	"github.com/go-pdf/fpdf"
)

// Placeholder labels and notices of the document pages.
const (
	slotInvoice = "Invoice"
	slotNone    = "No Documents Attached"

	noticeNoFile      = "No document file available for this item."
	noticeLoadFailure = "[Could not load document image]"
)

// slot is one logical document position within an entry's page sequence.
// A nil payload means the referenced asset could not be resolved, or the
// entry has no documents at all.
type slot struct {
	label   string
	payload []byte
}

// buildSlots assembles the ordered document list of one entry: the invoice
// first if assigned, then the statements in attachment order. Names are
// resolved against the registry here; a dangling reference keeps its slot but
// carries no payload. An entry with nothing attached gets the single
// placeholder slot, so every entry contributes at least one page.
func buildSlots(rec equitypack.SourcingRecord, registry *equitypack.Registry) []slot {
	var slots []slot
	if rec.InvoiceRef != "" {
		var payload []byte
		if a, ok := registry.Invoice(rec.InvoiceRef); ok {
			payload = a.Data
		}
		slots = append(slots, slot{label: slotInvoice, payload: payload})
	}
	for i, name := range rec.Statements {
		var payload []byte
		if a, ok := registry.Statement(name); ok {
			payload = a.Data
		}
		slots = append(slots, slot{label: fmt.Sprintf("Statement %d", i+1), payload: payload})
	}
	if len(slots) == 0 {
		slots = []slot{{label: slotNone}}
	}
	return slots
}

// drawDocumentPage renders one full page for a document slot: the banner with
// the entry label and the slot label, then the document body. seq must be
// unique across the compile; it names the embedded image resource.
func drawDocumentPage(c *canvas, seq int, entryLabel string, s slot) {
	c.pdf.AddPage()

	c.pdf.SetFillColor(colBanner.r, colBanner.g, colBanner.b)
	c.pdf.Rect(0, 0, pageW, bannerH, "F")
	c.setColor(colWhite)
	c.text(margin, 16, fontSm, entryLabel)
	c.text(margin, 48, fontLg, s.label)

	if s.payload == nil {
		c.setColor(colMuted)
		c.text(margin, (pageH+bannerH)/2-20, fontMd, noticeNoFile)
		return
	}

	img, err := decodeImage(s.payload)
	if err != nil {
		c.setColor(colMuted)
		c.text(margin, bannerH+margin+40, fontMd, noticeLoadFailure)
		return
	}

	// Re-encode the decoded raster as PNG so the embedded stream is always a
	// format the PDF writer accepts, whatever the payload was.
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		c.setColor(colMuted)
		c.text(margin, bannerH+margin+40, fontMd, noticeLoadFailure)
		return
	}

	availW := pageW - 2*margin
	availH := pageH - bannerH - 2*margin
	bounds := img.Bounds()
	w, h := fitRect(float64(bounds.Dx()), float64(bounds.Dy()), availW, availH)
	x := margin + (availW-w)/2
	y := bannerH + margin

	name := fmt.Sprintf("doc-%d", seq)
	opts := fpdf.ImageOptions{ImageType: "PNG"}
	c.pdf.RegisterImageOptionsReader(name, opts, &buf)
	c.pdf.ImageOptions(name, x, y, w, h, false, opts, 0, "")
}
