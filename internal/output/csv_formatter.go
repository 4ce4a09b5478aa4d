package output

import (
	"bytes"
	"encoding/csv"

	"github.com/caportal/prorate-calculator/internal/domain"
)

// CSVFormatter writes one row per calculation; rejected rows carry only the error columns.
// Input text that a spreadsheet would evaluate is quoted with a leading apostrophe.
type CSVFormatter struct{}

func (c CSVFormatter) Name() string      { return "csv" }
func (c CSVFormatter) Extension() string { return "csv" }

func (c CSVFormatter) Format(report *domain.ProrationReport) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Name", "TotalMonthlyCost", "StartDate", "CalculationDate", "DaysInStartMonth", "DailyCost", "DaysUsed", "ProratedCost", "ProratedRemaining", "CappedToStartMonth", "ErrorKind", "Error"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for i, e := range report.Entries {
		v := NewEntryView(e)
		row := []string{spreadsheetText(e.Label(i)), amountText(e), spreadsheetText(v.StartDate), spreadsheetText(v.CalculationDate)}
		if v.Error != nil {
			row = append(row, "", "", "", "", "", "", v.Error.Kind, v.Error.Message)
		} else {
			row = append(row,
				intToString(v.Result.DaysInStartMonth),
				v.Result.DailyCost,
				intToString(v.Result.DaysUsed),
				v.Result.ProratedCost,
				v.Result.ProratedRemaining,
				boolToString(v.Result.CappedToStartMonth),
				"", "",
			)
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
