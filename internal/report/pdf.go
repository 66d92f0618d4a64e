package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/hyperifyio/gozakupki/internal/extract"
)

// PDFOptions controls PDF rendering.
type PDFOptions struct {
	// FontPath is a UTF-8 TrueType font. Core fonts cannot draw Cyrillic,
	// so without it non-Latin text is rendered through a cp1252 translator.
	FontPath string
	// Heading is printed above the records, usually the search URL.
	Heading string
}

const pdfFamily = "body"

// WritePDF renders records as an A4 document with one section per record.
// Links are clickable when they point at a notice page.
func WritePDF(w io.Writer, records []extract.Record, opts PDFOptions) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	family := "Helvetica"
	tr := func(s string) string { return s }
	if strings.TrimSpace(opts.FontPath) != "" {
		pdf.AddUTF8Font(pdfFamily, "", opts.FontPath)
		family = pdfFamily
	} else {
		tr = pdf.UnicodeTranslatorFromDescriptor("")
	}
	if err := pdf.Error(); err != nil {
		return fmt.Errorf("pdf font: %w", err)
	}
	pdf.SetFont(family, "", 11)
	pdf.AddPage()

	if h := strings.TrimSpace(opts.Heading); h != "" {
		pdf.SetFont(family, "", 9)
		pdf.MultiCell(0, 4, tr(h), "", "L", false)
		pdf.Ln(4)
		pdf.SetFont(family, "", 11)
	}
	if len(records) == 0 {
		pdf.MultiCell(0, 6, tr(NothingFound), "", "L", false)
	}
	for i, r := range records {
		pdf.SetFont(family, "", 13)
		pdf.CellFormat(0, 8, tr(fmt.Sprintf("Результат %d", i+1)), "", 1, "L", false, 0, "")
		pdf.SetFont(family, "", 11)
		pdf.MultiCell(0, 5, tr(LabelTitle+": "+r.Title), "", "L", false)
		pdf.MultiCell(0, 5, tr(LabelPrice+": "+r.Price), "", "L", false)
		pdf.MultiCell(0, 5, tr(LabelCustomer+": "+r.Customer), "", "L", false)
		pdf.Write(5, tr(LabelLink+": "))
		if strings.HasPrefix(r.Link, extract.DetailURLPrefix) {
			pdf.WriteLinkString(5, r.Link, r.Link)
		} else {
			pdf.Write(5, tr(r.Link))
		}
		pdf.Ln(10)
	}
	return pdf.Output(w)
}
