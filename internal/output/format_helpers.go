package output

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/caportal/prorate-calculator/internal/domain"
	money "github.com/caportal/prorate-calculator/pkg/decimal"
)

// FormatCurrency formats a decimal as USD to the tenth of a cent, e.g. "$16.667".
func FormatCurrency(amount decimal.Decimal) string { return money.FormatTenthCent(amount) }

// tenthCentFloat converts a money value for spreadsheet and PDF cells.
func tenthCentFloat(amount decimal.Decimal) float64 {
	return money.RoundTenthCentFloat(amount.InexactFloat64())
}

func intToString(i int) string { return strconv.Itoa(i) }

func boolToString(b bool) string { return strconv.FormatBool(b) }

// leading characters that make a spreadsheet treat a text cell as a formula
const formulaTriggers = "=+-@\t\r"

// spreadsheetText quotes user text that a spreadsheet would otherwise evaluate.
func spreadsheetText(s string) string {
	if s != "" && strings.ContainsRune(formulaTriggers, rune(s[0])) {
		return "'" + s
	}
	return s
}

// parsedAmount is the amount a successful calculation used.
func parsedAmount(e domain.ReportEntry) (decimal.Decimal, bool) {
	if !e.OK() {
		return decimal.Decimal{}, false
	}
	m, err := money.ParseAmount(string(e.Request.TotalMonthlyCost))
	if err != nil {
		return decimal.Decimal{}, false
	}
	return m.Decimal, true
}

// amountText is the parsed amount of a successful entry, or the quoted raw input of a rejected one.
func amountText(e domain.ReportEntry) string {
	if d, ok := parsedAmount(e); ok {
		return d.String()
	}
	return spreadsheetText(string(e.Request.TotalMonthlyCost))
}
