package renderer

import (
	"bytes"
	"errors"
	"fmt"
	"image"

	// Raster formats accepted for document payloads.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
)

// Page geometry of the compiled package, in points.
const (
	pageW   = 1200.0
	pageH   = 1650.0
	margin  = 60.0
	bannerH = 110.0
)

// Font sizes, matching the page geometry.
const (
	fontTitle = 30.0
	fontLg    = 24.0
	fontMd    = 19.0
	fontSm    = 15.0
	fontXs    = 12.0
)

// Truncation budgets for text that must stay within its column or banner.
const (
	maxFundsChars  = 30
	maxVendorChars = 26
	maxLabelChars  = 95
)

type rgb struct{ r, g, b int }

var (
	colText    = rgb{33, 37, 41}
	colMuted   = rgb{108, 117, 125}
	colGreen   = rgb{25, 135, 84}
	colRed     = rgb{220, 53, 69}
	colDivider = rgb{222, 226, 230}
	colRowRule = rgb{240, 240, 240}
	colBanner  = rgb{13, 110, 253}
	colWhite   = rgb{255, 255, 255}
)

// Ledger table column widths on the summary page, one per header.
var colWidths = [7]float64{220, 105, 195, 115, 120, 120, 75}

var colHeaders = [7]string{"Funds Used For", "Date", "Vendor Name", "Amount", "Account#", "Invoice#", "Sourced"}

// truncate cuts s to at most n runes. The cut itself is the only marker.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

// fitRect scales a w x h image to fit within availW x availH, preserving the
// aspect ratio and never enlarging beyond the original size.
func fitRect(w, h, availW, availH float64) (float64, float64) {
	if w <= 0 || h <= 0 {
		return 0, 0
	}
	scale := min(1, availW/w, availH/h)
	return w * scale, h * scale
}

// decodeImage attempts to decode a document payload as a raster image. The
// caller branches on the result: a failure turns into a placeholder notice on
// the page, never into an aborted compile.
func decodeImage(data []byte) (image.Image, error) {
	if len(data) == 0 {
		return nil, errors.New("empty payload")
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("undecodable payload: %w", err)
	}
	return img, nil
}
