package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"
)

const (
	pageWidth    = 297.0
	marginLeft   = 12.0
	marginRight  = 12.0
	marginTop    = 12.0
	marginBottom = 15.0
	contentWidth = pageWidth - marginLeft - marginRight
)

// WritePDF сохраняет документ в PDF файл (A4, альбомная ориентация)
func WritePDF(filename string, doc Document) error {
	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetMargins(marginLeft, marginTop, marginRight)
	pdf.SetAutoPageBreak(true, marginBottom)
	pdf.SetTitle(doc.Title, false)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 12)
	pdf.SetTextColor(0, 51, 102)
	pdf.MultiCell(contentWidth, 6, doc.Title, "", "L", false)

	pdf.SetFont("Arial", "I", 9)
	pdf.SetTextColor(80, 80, 80)
	pdf.CellFormat(contentWidth, 6, fmt.Sprintf("Generated: %s", time.Now().Format("2 January 2006")), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	if len(doc.Header) > 0 {
		colWidth := contentWidth / float64(len(doc.Header))

		pdf.SetFont("Arial", "B", 9)
		pdf.SetFillColor(245, 247, 250)
		pdf.SetDrawColor(200, 200, 200)
		pdf.SetTextColor(0, 51, 102)
		for _, title := range doc.Header {
			pdf.CellFormat(colWidth, 7, title, "1", 0, "C", true, 0, "")
		}
		pdf.Ln(-1)

		pdf.SetFont("Arial", "", 9)
		pdf.SetTextColor(50, 50, 50)
		for _, row := range doc.Rows {
			for _, cell := range row {
				pdf.CellFormat(colWidth, 6, cell, "1", 0, "R", false, 0, "")
			}
			pdf.Ln(-1)
		}
	}

	if doc.Footer != "" {
		pdf.Ln(4)
		pdf.SetFont("Arial", "", 10)
		for _, line := range strings.Split(doc.Footer, "\n") {
			pdf.CellFormat(contentWidth, 6, line, "", 1, "L", false, 0, "")
		}
	}

	if err := pdf.OutputFileAndClose(filename); err != nil {
		return fmt.Errorf("failed to write pdf %s: %w", filename, err)
	}
	return nil
}
