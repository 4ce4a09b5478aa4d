package output

import (
	"github.com/caportal/prorate-calculator/internal/domain"
	money "github.com/caportal/prorate-calculator/pkg/decimal"
	"github.com/shopspring/decimal"
)

// Summary totals the successful entries of a report.
type Summary struct {
	Calculated             int
	Rejected               int
	TotalMonthlyCost       decimal.Decimal
	TotalProratedCost      decimal.Decimal
	TotalProratedRemaining decimal.Decimal
}

// Summarize adds up the rounded amounts of every successful entry.
func Summarize(report *domain.ProrationReport) Summary {
	s := Summary{
		TotalMonthlyCost:       decimal.Zero,
		TotalProratedCost:      decimal.Zero,
		TotalProratedRemaining: decimal.Zero,
	}
	for _, e := range report.Entries {
		if !e.OK() {
			s.Rejected++
			continue
		}
		s.Calculated++
		if total, err := money.ParseAmount(string(e.Request.TotalMonthlyCost)); err == nil {
			s.TotalMonthlyCost = s.TotalMonthlyCost.Add(total.Decimal)
		}
		s.TotalProratedCost = s.TotalProratedCost.Add(e.Result.ProratedCost)
		s.TotalProratedRemaining = s.TotalProratedRemaining.Add(e.Result.ProratedRemaining)
	}
	return s
}
