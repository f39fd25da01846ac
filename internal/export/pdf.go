// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package export

import (
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"
)

// ToPDF writes the article as a letter-format PDF at path.
func ToPDF(article, path string, now time.Time) error {
	pdf := fpdf.New("P", "mm", "Letter", "")
	pdf.SetMargins(20, 20, 20)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 24)
	pdf.CellFormat(0, 12, DocumentTitle, "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "I", 9)
	pdf.CellFormat(0, 5, "Generated: "+now.Format(timestampLayout), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	for _, block := range ParseArticle(article) {
		switch block.Kind {
		case Heading:
			pdf.SetFont("Helvetica", "B", 14)
			pdf.MultiCell(0, 7, block.Text, "", "L", false)
			pdf.Ln(2)
		case Paragraph:
			pdf.SetFont("Helvetica", "", 11)
			pdf.MultiCell(0, 5, block.Text, "", "L", false)
			pdf.Ln(2)
		}
	}

	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("writing pdf %s: %w", path, err)
	}
	return nil
}
