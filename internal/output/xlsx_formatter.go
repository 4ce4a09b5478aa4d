package output

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/caportal/prorate-calculator/internal/domain"
)

const (
	xlsxEntriesSheet = "calculations"
	xlsxSummarySheet = "summary"
)

var xlsxEntryHeader = []string{
	"Name", "Total Monthly Cost", "Start Date", "Calculation Date",
	"Days in Start Month", "Daily Cost", "Days Used", "Prorated Cost",
	"Prorated Remaining", "Capped to Start Month", "Error",
}

// XLSXFormatter writes a workbook with a calculations sheet and a summary sheet.
// Money cells are numeric with a three decimal currency format.
type XLSXFormatter struct{}

func (x XLSXFormatter) Name() string      { return "xlsx" }
func (x XLSXFormatter) Extension() string { return "xlsx" }

func (x XLSXFormatter) Format(report *domain.ProrationReport) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", xlsxEntriesSheet); err != nil {
		return nil, err
	}
	if _, err := f.NewSheet(xlsxSummarySheet); err != nil {
		return nil, err
	}

	moneyFmt := "$#,##0.000"
	moneyStyle, err := f.NewStyle(&excelize.Style{CustomNumFmt: &moneyFmt})
	if err != nil {
		return nil, err
	}
	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}

	for i, h := range xlsxEntryHeader {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(xlsxEntriesSheet, cell, h)
	}
	_ = f.SetCellStyle(xlsxEntriesSheet, "A1", "K1", headerStyle)

	for i, e := range report.Entries {
		row := i + 2
		_ = f.SetCellValue(xlsxEntriesSheet, fmt.Sprintf("A%d", row), spreadsheetText(e.Label(i)))
		if amount, ok := parsedAmount(e); ok {
			_ = f.SetCellValue(xlsxEntriesSheet, fmt.Sprintf("B%d", row), amount.InexactFloat64())
			_ = f.SetCellStyle(xlsxEntriesSheet, fmt.Sprintf("B%d", row), fmt.Sprintf("B%d", row), moneyStyle)
		} else {
			_ = f.SetCellValue(xlsxEntriesSheet, fmt.Sprintf("B%d", row), spreadsheetText(string(e.Request.TotalMonthlyCost)))
		}
		_ = f.SetCellValue(xlsxEntriesSheet, fmt.Sprintf("C%d", row), spreadsheetText(e.Request.StartDate))
		_ = f.SetCellValue(xlsxEntriesSheet, fmt.Sprintf("D%d", row), spreadsheetText(e.Request.CalculationDate))
		if !e.OK() {
			_ = f.SetCellValue(xlsxEntriesSheet, fmt.Sprintf("K%d", row), ErrorMessage(e.Err))
			continue
		}
		r := e.Result
		_ = f.SetCellValue(xlsxEntriesSheet, fmt.Sprintf("E%d", row), r.DaysInStartMonth)
		_ = f.SetCellValue(xlsxEntriesSheet, fmt.Sprintf("F%d", row), tenthCentFloat(r.DailyCost))
		_ = f.SetCellValue(xlsxEntriesSheet, fmt.Sprintf("G%d", row), r.DaysUsed)
		_ = f.SetCellValue(xlsxEntriesSheet, fmt.Sprintf("H%d", row), tenthCentFloat(r.ProratedCost))
		_ = f.SetCellValue(xlsxEntriesSheet, fmt.Sprintf("I%d", row), tenthCentFloat(r.ProratedRemaining))
		_ = f.SetCellValue(xlsxEntriesSheet, fmt.Sprintf("J%d", row), r.CappedToStartMonth)
		_ = f.SetCellStyle(xlsxEntriesSheet, fmt.Sprintf("F%d", row), fmt.Sprintf("F%d", row), moneyStyle)
		_ = f.SetCellStyle(xlsxEntriesSheet, fmt.Sprintf("H%d", row), fmt.Sprintf("I%d", row), moneyStyle)
	}

	s := Summarize(report)
	title := report.Title
	if title == "" {
		title = "Proration Report"
	}
	_ = f.SetCellValue(xlsxSummarySheet, "A1", title)
	_ = f.SetCellStyle(xlsxSummarySheet, "A1", "A1", headerStyle)
	_ = f.SetCellValue(xlsxSummarySheet, "A3", "Generated")
	_ = f.SetCellValue(xlsxSummarySheet, "B3", report.GeneratedAt.Format("2006-01-02 15:04:05"))
	_ = f.SetCellValue(xlsxSummarySheet, "A4", "Calculated")
	_ = f.SetCellValue(xlsxSummarySheet, "B4", s.Calculated)
	_ = f.SetCellValue(xlsxSummarySheet, "A5", "Rejected")
	_ = f.SetCellValue(xlsxSummarySheet, "B5", s.Rejected)
	_ = f.SetCellValue(xlsxSummarySheet, "A6", "Total Monthly Cost")
	_ = f.SetCellValue(xlsxSummarySheet, "B6", tenthCentFloat(s.TotalMonthlyCost))
	_ = f.SetCellValue(xlsxSummarySheet, "A7", "Total Prorated Cost")
	_ = f.SetCellValue(xlsxSummarySheet, "B7", tenthCentFloat(s.TotalProratedCost))
	_ = f.SetCellValue(xlsxSummarySheet, "A8", "Total Prorated Remaining")
	_ = f.SetCellValue(xlsxSummarySheet, "B8", tenthCentFloat(s.TotalProratedRemaining))
	_ = f.SetCellStyle(xlsxSummarySheet, "B6", "B8", moneyStyle)

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
