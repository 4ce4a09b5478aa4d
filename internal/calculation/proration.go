package calculation

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/caportal/prorate-calculator/internal/domain"
	"github.com/caportal/prorate-calculator/pkg/dateutil"
	money "github.com/caportal/prorate-calculator/pkg/decimal"
	"github.com/shopspring/decimal"
)

// ProrationEngine prorates a monthly charge over the calendar month containing
// the subscription start date. It holds no state besides its logger and is
// safe for concurrent use.
type ProrationEngine struct {
	Logger Logger
}

// NewProrationEngine creates a new proration engine
func NewProrationEngine() *ProrationEngine {
	return &ProrationEngine{Logger: NopLogger{}}
}

// SetLogger sets the logger for the engine. If nil is provided, a no-op logger is used.
func (pe *ProrationEngine) SetLogger(l Logger) {
	if l == nil {
		pe.Logger = NopLogger{}
		return
	}
	pe.Logger = l
}

// ParseRequest validates the raw amount and both dates, in that order.
// The date order rule is checked by Calculate.
func (pe *ProrationEngine) ParseRequest(req domain.ProrationRequest) (domain.ProrationInput, error) {
	raw := strings.TrimSpace(string(req.TotalMonthlyCost))
	amount, err := money.ParseAmount(raw)
	if err != nil {
		if errors.Is(err, money.ErrEmptyAmount) {
			return domain.ProrationInput{}, domain.NewValidationError(domain.KindInvalidAmount, "", nil)
		}
		return domain.ProrationInput{}, domain.NewValidationError(domain.KindInvalidAmount, raw, err)
	}
	if !amount.IsPositive() {
		return domain.ProrationInput{}, domain.NewValidationError(domain.KindInvalidAmount, raw, nil)
	}

	start, err := parseDate(req.StartDate, domain.KindInvalidStartDate)
	if err != nil {
		return domain.ProrationInput{}, err
	}
	calc, err := parseDate(req.CalculationDate, domain.KindInvalidCalculationDate)
	if err != nil {
		return domain.ProrationInput{}, err
	}

	return domain.ProrationInput{
		TotalMonthlyCost: amount.Decimal,
		StartDate:        start,
		CalculationDate:  calc,
	}, nil
}

func parseDate(raw string, kind domain.ErrorKind) (time.Time, error) {
	t, err := dateutil.ParseCalendarDate(raw)
	if err == nil {
		return t, nil
	}
	if errors.Is(err, dateutil.ErrEmptyDate) {
		return t, domain.NewValidationError(kind, "", nil)
	}
	return t, domain.NewValidationError(kind, strings.TrimSpace(raw), err)
}

// CalculateRequest validates a raw request and prorates it.
func (pe *ProrationEngine) CalculateRequest(req domain.ProrationRequest) (*domain.ProrationResult, error) {
	input, err := pe.ParseRequest(req)
	if err != nil {
		pe.Logger.Debugf("proration request rejected: %v", err)
		return nil, err
	}
	return pe.Calculate(input)
}

// CalculateFloat prorates a numeric amount; NaN, infinities, zero and negatives are InvalidAmount.
func (pe *ProrationEngine) CalculateFloat(amount float64, startDate, calculationDate string) (*domain.ProrationResult, error) {
	text := strconv.FormatFloat(amount, 'f', -1, 64)
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount <= 0 {
		return nil, domain.NewValidationError(domain.KindInvalidAmount, text, nil)
	}
	return pe.CalculateRequest(domain.ProrationRequest{
		TotalMonthlyCost: domain.Amount(text),
		StartDate:        startDate,
		CalculationDate:  calculationDate,
	})
}

// Calculate prorates a validated input.
func (pe *ProrationEngine) Calculate(input domain.ProrationInput) (*domain.ProrationResult, error) {
	result, err := Prorate(input)
	if err != nil {
		pe.Logger.Debugf("proration rejected: %v", err)
		return nil, err
	}
	pe.Logger.Debugf("prorated %s from %s to %s: days_used=%d/%d prorated=%s remaining=%s",
		input.TotalMonthlyCost.String(),
		dateutil.FormatCalendarDate(input.StartDate),
		dateutil.FormatCalendarDate(input.CalculationDate),
		result.DaysUsed, result.DaysInStartMonth,
		result.ProratedCost.StringFixed(money.TenthCentPlaces),
		result.ProratedRemaining.StringFixed(money.TenthCentPlaces))
	return result, nil
}

// Prorate is the pure calendar-month proration.
//
// Only the start month is prorated: when the calculation date falls in a later
// month the remainder of the start month counts as used and no further months
// are added. Every money value is rounded to the tenth of a cent as soon as it
// is derived, so DailyCost*DaysUsed and ProratedCost+ProratedRemaining need not
// reproduce the monthly charge exactly.
func Prorate(input domain.ProrationInput) (*domain.ProrationResult, error) {
	total := money.NewMoneyFromDecimal(input.TotalMonthlyCost)
	if !total.IsPositive() {
		return nil, domain.NewValidationError(domain.KindInvalidAmount, input.TotalMonthlyCost.String(), nil)
	}
	if input.StartDate.IsZero() {
		return nil, domain.NewValidationError(domain.KindInvalidStartDate, "", nil)
	}
	if input.CalculationDate.IsZero() {
		return nil, domain.NewValidationError(domain.KindInvalidCalculationDate, "", nil)
	}

	start := dateutil.CalendarDay(input.StartDate)
	calc := dateutil.CalendarDay(input.CalculationDate)
	if calc.Before(start) {
		return nil, domain.NewValidationError(domain.KindDateOrder, dateutil.FormatCalendarDate(calc), nil)
	}

	daysInMonth := dateutil.DaysInMonth(start.Year(), start.Month())
	daily := total.Div(decimal.NewFromInt(int64(daysInMonth))).RoundTenthCent()

	capped := !dateutil.SameMonth(start, calc)
	daysUsed := calc.Day() - start.Day() + 1
	if capped {
		daysUsed = daysInMonth - start.Day() + 1
	}

	prorated := daily.Mul(decimal.NewFromInt(int64(daysUsed))).RoundTenthCent()
	remaining := total.Sub(prorated).RoundTenthCent()

	return &domain.ProrationResult{
		DaysInStartMonth:   daysInMonth,
		DailyCost:          daily.Decimal,
		DaysUsed:           daysUsed,
		ProratedCost:       prorated.Decimal,
		ProratedRemaining:  remaining.Decimal,
		CappedToStartMonth: capped,
	}, nil
}
