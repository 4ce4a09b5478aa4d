package output

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/caportal/prorate-calculator/internal/domain"
)

// PDFFormatter renders a printable statement with a results table.
type PDFFormatter struct{}

func (p PDFFormatter) Name() string      { return "pdf" }
func (p PDFFormatter) Extension() string { return "pdf" }

func (p PDFFormatter) Format(report *domain.ProrationReport) ([]byte, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetTitle(pdfTitle(report), false)
	pdf.SetFont("Arial", "B", 14)
	pdf.AddPage()

	pdf.Cell(0, 8, pdfTitle(report))
	pdf.Ln(10)
	pdf.SetFont("Arial", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Generated: %s", report.GeneratedAt.Format(time.RFC3339)))
	pdf.Ln(8)

	widths := []float64{50, 28, 26, 28, 22, 26, 18, 30, 34}
	header := []string{"Name", "Monthly Cost", "Start", "Calculation", "Days", "Daily", "Used", "Prorated", "Remaining"}
	pdf.SetFont("Arial", "B", 9)
	for i, h := range header {
		pdf.CellFormat(widths[i], 6, h, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 9)
	for i, e := range report.Entries {
		pdf.CellFormat(widths[0], 6, e.Label(i), "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[1], 6, string(e.Request.TotalMonthlyCost), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[2], 6, e.Request.StartDate, "1", 0, "C", false, 0, "")
		pdf.CellFormat(widths[3], 6, e.Request.CalculationDate, "1", 0, "C", false, 0, "")
		if !e.OK() {
			rest := 0.0
			for _, w := range widths[4:] {
				rest += w
			}
			pdf.CellFormat(rest, 6, ErrorMessage(e.Err), "1", 0, "L", false, 0, "")
			pdf.Ln(-1)
			continue
		}
		r := e.Result
		pdf.CellFormat(widths[4], 6, intToString(r.DaysInStartMonth), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[5], 6, FormatCurrency(r.DailyCost), "1", 0, "R", false, 0, "")
		used := intToString(r.DaysUsed)
		if r.CappedToStartMonth {
			used += "*"
		}
		pdf.CellFormat(widths[6], 6, used, "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[7], 6, FormatCurrency(r.ProratedCost), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[8], 6, FormatCurrency(r.ProratedRemaining), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}

	s := Summarize(report)
	pdf.Ln(4)
	pdf.Cell(0, 6, fmt.Sprintf("Calculated: %d   Rejected: %d", s.Calculated, s.Rejected))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Total Prorated Cost: %s   Total Remaining: %s",
		FormatCurrency(s.TotalProratedCost), FormatCurrency(s.TotalProratedRemaining)))
	pdf.Ln(5)
	pdf.SetFont("Arial", "I", 8)
	pdf.Cell(0, 6, "* calculation date falls after the start month; days used are capped to the start month")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func pdfTitle(report *domain.ProrationReport) string {
	if report.Title != "" {
		return report.Title
	}
	return "Proration Report"
}
