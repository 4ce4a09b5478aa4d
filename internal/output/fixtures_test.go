package output_test

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/caportal/prorate-calculator/internal/domain"
)

func sampleReport() *domain.ProrationReport {
	return &domain.ProrationReport{
		Title:       "Sample",
		GeneratedAt: time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC),
		Entries: []domain.ReportEntry{
			{
				Request: domain.ProrationRequest{Name: "leap february", TotalMonthlyCost: "50", StartDate: "2024-02-01", CalculationDate: "2024-02-15"},
				Result: &domain.ProrationResult{
					DaysInStartMonth:  29,
					DailyCost:         decimal.RequireFromString("1.724"),
					DaysUsed:          15,
					ProratedCost:      decimal.RequireFromString("25.86"),
					ProratedRemaining: decimal.RequireFromString("24.14"),
				},
			},
			{
				Request: domain.ProrationRequest{TotalMonthlyCost: "100", StartDate: "2023-03-10", CalculationDate: "2023-03-05"},
				Err:     domain.NewValidationError(domain.KindDateOrder, "", nil),
			},
			{
				Request: domain.ProrationRequest{Name: "across months", TotalMonthlyCost: "100", StartDate: "2023-01-10", CalculationDate: "2023-02-05"},
				Result: &domain.ProrationResult{
					DaysInStartMonth:   31,
					DailyCost:          decimal.RequireFromString("3.226"),
					DaysUsed:           22,
					ProratedCost:       decimal.RequireFromString("70.972"),
					ProratedRemaining:  decimal.RequireFromString("29.028"),
					CappedToStartMonth: true,
				},
			},
		},
	}
}

func singleReport() *domain.ProrationReport {
	r := sampleReport()
	r.Title = ""
	r.Entries = r.Entries[:1]
	return r
}

func decimalOf(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// formulaReport carries input text that a spreadsheet would evaluate as a formula.
func formulaReport() *domain.ProrationReport {
	return &domain.ProrationReport{
		GeneratedAt: time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC),
		Entries: []domain.ReportEntry{
			{
				Request: domain.ProrationRequest{Name: "@SUM(A1:A9)", TotalMonthlyCost: `=HYPERLINK("http://evil.example","x")`, StartDate: "+2024-02-01", CalculationDate: "-2024-02-15"},
				Err:     domain.NewValidationError(domain.KindInvalidAmount, "", nil),
			},
			{
				Request: domain.ProrationRequest{Name: "dollar", TotalMonthlyCost: "$50", StartDate: "2024-02-01", CalculationDate: "2024-02-15"},
				Result: &domain.ProrationResult{
					DaysInStartMonth:  29,
					DailyCost:         decimal.RequireFromString("1.724"),
					DaysUsed:          15,
					ProratedCost:      decimal.RequireFromString("25.86"),
					ProratedRemaining: decimal.RequireFromString("24.14"),
				},
			},
		},
	}
}
