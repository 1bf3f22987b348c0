package export

import (
	"fmt"

	"github.com/go-pdf/fpdf"

	"prodbook/internal/ledger"
)

const (
	pageMargin       = 40.0
	lineHeight       = 16.0
	headerLineHeight = 20.0
	titleFontSize    = 14.0
	headerFontSize   = 9.0
	bodyFontSize     = 8.0
)

// columnFractions are the shares of available width per column, aligned with
// Headers.
var columnFractions = []float64{0.18, 0.12, 0.10, 0.08, 0.07, 0.18, 0.09, 0.12}

// WritePDF renders the entries as a paginated A4 document. The title repeats
// on every page, suffixed with "(Continued)" after the first; the column
// header band is reprinted whenever a new page starts.
func WritePDF(path, title string, entries []ledger.Entry) error {
	doc := renderPDF(title, entries)
	if err := doc.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}

func renderPDF(title string, entries []ledger.Entry) *fpdf.Fpdf {
	pdf := fpdf.New("P", "pt", "A4", "")
	pdf.SetAutoPageBreak(false, 0)

	pageWidth, pageHeight := pdf.GetPageSize()
	available := pageWidth - 2*pageMargin
	widths := make([]float64, len(columnFractions))
	for i, fraction := range columnFractions {
		widths[i] = available * fraction
	}

	startPage := func(pageTitle string) float64 {
		pdf.AddPage()
		pdf.SetFont("Helvetica", "B", titleFontSize)
		y := pageMargin
		pdf.Text(pageMargin, y, pageTitle)
		y += headerLineHeight * 1.5

		pdf.SetFont("Helvetica", "B", headerFontSize)
		x := pageMargin
		for i, header := range Headers {
			pdf.Text(x, y, header)
			x += widths[i]
		}
		y += lineHeight * 0.5
		pdf.Line(pageMargin, y, pageWidth-pageMargin, y)
		y += lineHeight * 0.8

		pdf.SetFont("Helvetica", "", bodyFontSize)
		return y
	}

	y := startPage(title)
	for _, entry := range entries {
		if y > pageHeight-pageMargin-lineHeight {
			y = startPage(title + " (Continued)")
		}
		x := pageMargin
		for i, value := range Row(entry) {
			pdf.Text(x, y, truncate(value, widths[i], bodyFontSize))
			x += widths[i]
		}
		y += lineHeight
	}

	return pdf
}

// truncate shortens cell text with an ellipsis when it would exceed the
// column's character budget, derived from the column width and font size.
// Counting and cutting happen in runes so multibyte text is never split
// mid-character.
func truncate(value string, width, fontSize float64) string {
	maxChars := int(width / (fontSize * 0.5))
	runes := []rune(value)
	if len(runes) > maxChars && maxChars > 3 {
		return string(runes[:maxChars-3]) + "..."
	}
	return value
}
