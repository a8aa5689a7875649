package main

import (
	"fmt"
	"strings"
	"time"

	"meerwaarde/engine"

	"github.com/go-pdf/fpdf"
)

const (
	pdfMargin       = 15.0
	pdfContentWidth = 210.0 - 2*pdfMargin
)

// pdfText converts UTF-8 text to the Latin-1 encoding the standard PDF
// fonts expect. The € sign is U+20AC, 0x80 in Windows-1252.
func pdfText(s string) string {
	return strings.ReplaceAll(s, "€", "\x80")
}

func eurPDF(v float64) string {
	return pdfText(eur(v))
}

// planPDF writes a multi-year disposal schedule as a one-page A4 table.
type planPDF struct {
	asset  string
	plan   engine.Plan
	params engine.TaxParams
	growth float64
}

func (p planPDF) Write(filename string) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	pdf.SetAutoPageBreak(true, pdfMargin)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(pdfContentWidth, 10, "Disposal Plan: "+p.asset, "", 1, "L", false, 0, "")

	pdf.SetFont("Arial", "", 9)
	pdf.SetTextColor(80, 80, 80)
	pdf.CellFormat(pdfContentWidth, 5, fmt.Sprintf("Yearly tax-free limit %s, %.0f%% on the excess, %.1f%% assumed growth",
		eurPDF(p.params.YearlyLimit), p.params.TaxRate*100, p.growth*100), "", 1, "L", false, 0, "")
	pdf.CellFormat(pdfContentWidth, 5, "Generated "+time.Now().Format("2 January 2006"), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	widths := []float64{10, 20, 14, 26, 22, 24, 24, 20, 20}
	headers := []string{"Year", "Price", "Units", "Revenue", "Gain", "Taxable", "Tax", "Net", "Left"}

	pdf.SetFillColor(0, 51, 102)
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Arial", "B", 8)
	for i, h := range headers {
		align := "R"
		if i == 0 {
			align = "L"
		}
		pdf.CellFormat(widths[i], 6, h, "1", 0, align, true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 8)
	pdf.SetTextColor(50, 50, 50)
	for i, e := range p.plan {
		if i%2 == 0 {
			pdf.SetFillColor(250, 250, 250)
		} else {
			pdf.SetFillColor(255, 255, 255)
		}
		cells := []string{
			fmt.Sprintf("%d", e.Year),
			eurPDF(e.Price),
			fmt.Sprintf("%d", e.Units),
			eurPDF(e.Revenue),
			eurPDF(e.Gain),
			eurPDF(e.Taxable),
			eurPDF(e.Tax),
			eurPDF(e.Net),
			fmt.Sprintf("%.0f", e.Remaining),
		}
		for j, c := range cells {
			align := "R"
			if j == 0 {
				align = "L"
			}
			pdf.CellFormat(widths[j], 5, c, "1", 0, align, true, 0, "")
		}
		pdf.Ln(-1)
	}

	units, revenue, tax := p.plan.Totals()
	pdf.SetFont("Arial", "B", 8)
	pdf.SetFillColor(240, 240, 240)
	pdf.CellFormat(widths[0]+widths[1], 6, "TOTAL", "1", 0, "L", true, 0, "")
	pdf.CellFormat(widths[2], 6, fmt.Sprintf("%d", units), "1", 0, "R", true, 0, "")
	pdf.CellFormat(widths[3], 6, eurPDF(revenue), "1", 0, "R", true, 0, "")
	pdf.CellFormat(widths[4]+widths[5], 6, "", "1", 0, "R", true, 0, "")
	pdf.CellFormat(widths[6], 6, eurPDF(tax), "1", 0, "R", true, 0, "")
	pdf.CellFormat(widths[7], 6, eurPDF(revenue-tax), "1", 0, "R", true, 0, "")
	pdf.CellFormat(widths[8], 6, "", "1", 1, "R", true, 0, "")

	pdf.Ln(6)
	pdf.SetFont("Arial", "I", 7)
	pdf.SetTextColor(128, 128, 128)
	pdf.MultiCell(pdfContentWidth, 3.5,
		"Projections assume the configured growth rate and tax rules stay constant. Not financial advice.",
		"", "L", false)

	if err := pdf.OutputFileAndClose(filename); err != nil {
		return err
	}
	fmt.Println(filename, "created")
	return nil
}
