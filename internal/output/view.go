package output

import (
	"github.com/caportal/prorate-calculator/internal/domain"
	money "github.com/caportal/prorate-calculator/pkg/decimal"
)

// ResultView is a ProrationResult with money fixed at three decimals.
type ResultView struct {
	DaysInStartMonth   int    `json:"days_in_start_month"`
	DailyCost          string `json:"daily_cost"`
	DaysUsed           int    `json:"days_used"`
	ProratedCost       string `json:"prorated_cost"`
	ProratedRemaining  string `json:"prorated_remaining"`
	CappedToStartMonth bool   `json:"capped_to_start_month"`
}

// ErrorView describes a rejected calculation.
type ErrorView struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// EntryView is the presentation form of one report entry. Result and Error are exclusive.
type EntryView struct {
	Name             string      `json:"name,omitempty"`
	TotalMonthlyCost string      `json:"total_monthly_cost"`
	StartDate        string      `json:"start_date"`
	CalculationDate  string      `json:"calculation_date"`
	Result           *ResultView `json:"result,omitempty"`
	Error            *ErrorView  `json:"error,omitempty"`
}

// NewResultView converts a result for display.
func NewResultView(r *domain.ProrationResult) *ResultView {
	if r == nil {
		return nil
	}
	return &ResultView{
		DaysInStartMonth:   r.DaysInStartMonth,
		DailyCost:          r.DailyCost.StringFixed(money.TenthCentPlaces),
		DaysUsed:           r.DaysUsed,
		ProratedCost:       r.ProratedCost.StringFixed(money.TenthCentPlaces),
		ProratedRemaining:  r.ProratedRemaining.StringFixed(money.TenthCentPlaces),
		CappedToStartMonth: r.CappedToStartMonth,
	}
}

// NewErrorView converts a calculation error for display.
func NewErrorView(err error) *ErrorView {
	if err == nil {
		return nil
	}
	kind := string(domain.KindOf(err))
	if kind == "" {
		kind = "InternalError"
	}
	return &ErrorView{Kind: kind, Message: ErrorMessage(err)}
}

// NewEntryView converts a report entry; a failed entry never carries partial results.
func NewEntryView(e domain.ReportEntry) EntryView {
	v := EntryView{
		Name:             e.Request.Name,
		TotalMonthlyCost: string(e.Request.TotalMonthlyCost),
		StartDate:        e.Request.StartDate,
		CalculationDate:  e.Request.CalculationDate,
	}
	if e.Err != nil {
		v.Error = NewErrorView(e.Err)
		return v
	}
	v.Result = NewResultView(e.Result)
	return v
}
