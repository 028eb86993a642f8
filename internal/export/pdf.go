package export

import (
	"fmt"
	"io"

	"github.com/go-pdf/fpdf"
)

const (
	pdfMargin    = 10.0
	pdfBottom    = 15.0
	pdfRowHeight = 7.0
)

// PDFRenderer dibuja el documento como tabla en A4 apaisado.
type PDFRenderer struct {
	// NoCompression deja los streams sin comprimir (útil para inspeccionar el PDF).
	NoCompression bool
}

func (PDFRenderer) Ext() string         { return "pdf" }
func (PDFRenderer) ContentType() string { return "application/pdf" }

func (p PDFRenderer) Render(w io.Writer, doc Document) error {
	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetCompression(!p.NoCompression)
	pdf.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	pdf.SetAutoPageBreak(true, pdfBottom)
	pdf.SetCreationDate(doc.GeneratedAt)
	pdf.SetTitle(doc.Title, true)
	pdf.AliasNbPages("")

	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFooterFunc(func() {
		pdf.SetY(-pdfBottom + 5)
		pdf.SetFont("Helvetica", "I", 8)
		pdf.SetTextColor(120, 120, 120)
		pdf.CellFormat(0, 5, fmt.Sprintf("Page %d of {nb}", pdf.PageNo()), "", 0, "C", false, 0, "")
	})

	pdf.AddPage()

	// Título
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetTextColor(33, 33, 33)
	pdf.CellFormat(0, 10, tr(doc.Title), "", 1, "C", false, 0, "")
	if doc.Subtitle != "" {
		pdf.SetFont("Helvetica", "", 11)
		pdf.CellFormat(0, 7, tr(doc.Subtitle), "", 1, "C", false, 0, "")
	}
	pdf.Ln(4)

	header := func() {
		pdf.SetFont("Helvetica", "B", 9)
		pdf.SetFillColor(41, 128, 185)
		pdf.SetTextColor(255, 255, 255)
		pdf.SetDrawColor(200, 200, 200)
		for _, c := range doc.Columns {
			pdf.CellFormat(c.Width, pdfRowHeight+1, tr(c.Header), "1", 0, "C", true, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetFont("Helvetica", "", 8)
		pdf.SetTextColor(33, 33, 33)
	}
	header()

	_, pageH := pdf.GetPageSize()
	for i, row := range doc.Rows {
		if pdf.GetY()+pdfRowHeight > pageH-pdfBottom {
			pdf.AddPage()
			header()
		}
		// filas alternadas sombreadas
		shade := i%2 == 1
		if shade {
			pdf.SetFillColor(245, 245, 245)
		}
		for j, c := range doc.Columns {
			pdf.CellFormat(c.Width, pdfRowHeight, fit(pdf, tr, row[j], c.Width), "1", 0, "L", shade, 0, "")
		}
		pdf.Ln(-1)
	}

	if len(doc.Rows) == 0 {
		pdf.SetFont("Helvetica", "I", 9)
		pdf.CellFormat(0, pdfRowHeight, "No records found for the selected filter.", "1", 1, "C", false, 0, "")
	}

	// Resumen
	if pdf.GetY()+20 > pageH-pdfBottom {
		pdf.AddPage()
	}
	pdf.Ln(6)
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(0, 6, fmt.Sprintf("Total Records: %d", doc.Total()), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(0, 6, "Generated on: "+doc.GeneratedAt.Format("2006-01-02 15:04:05"), "", 1, "L", false, 0, "")

	return pdf.Output(w)
}

// fit recorta s (UTF-8) para que entre en una celda de ancho w y devuelve
// el texto ya traducido al encoding de la fuente.
func fit(pdf *fpdf.Fpdf, tr func(string) string, s string, w float64) string {
	limit := w - 2
	if pdf.GetStringWidth(tr(s)) <= limit {
		return tr(s)
	}
	r := []rune(s)
	for len(r) > 0 && pdf.GetStringWidth(tr(string(r)+"...")) > limit {
		r = r[:len(r)-1]
	}
	return tr(string(r) + "...")
}
