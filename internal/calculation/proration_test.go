package calculation

import (
	"fmt"
	"math"
	"sync"
	"testing"
	"time"

	"github.com/caportal/prorate-calculator/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func req(amount, start, calc string) domain.ProrationRequest {
	return domain.ProrationRequest{
		TotalMonthlyCost: domain.Amount(amount),
		StartDate:        start,
		CalculationDate:  calc,
	}
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal, field string) {
	t.Helper()
	assert.True(t, decimal.RequireFromString(want).Equal(got), "%s: got %s want %s", field, got.String(), want)
}

// TestProrate_Scenarios reproduces the reference calculations
func TestProrate_Scenarios(t *testing.T) {
	tests := []struct {
		name              string
		request           domain.ProrationRequest
		daysInStartMonth  int
		dailyCost         string
		daysUsed          int
		proratedCost      string
		proratedRemaining string
		capped            bool
	}{
		{
			name:              "Leap February first day",
			request:           req("50.00", "2024-02-01", "2024-02-01"),
			daysInStartMonth:  29,
			dailyCost:         "1.724",
			daysUsed:          1,
			proratedCost:      "1.724",
			proratedRemaining: "48.276",
		},
		{
			name:              "Leap February mid-month to last day",
			request:           req("50.00", "2024-02-15", "2024-02-29"),
			daysInStartMonth:  29,
			dailyCost:         "1.724",
			daysUsed:          15,
			proratedCost:      "25.86",
			proratedRemaining: "24.14",
		},
		{
			name:              "Later month caps at start month",
			request:           req("100", "2024-01-10", "2024-03-05"),
			daysInStartMonth:  31,
			dailyCost:         "3.226",
			daysUsed:          22,
			proratedCost:      "70.972",
			proratedRemaining: "29.028",
			capped:            true,
		},
		{
			name:              "Non-leap February full month",
			request:           req("28", "2023-02-01", "2023-02-28"),
			daysInStartMonth:  28,
			dailyCost:         "1",
			daysUsed:          28,
			proratedCost:      "28",
			proratedRemaining: "0",
		},
		{
			name:              "Thirty day month one third",
			request:           req("50", "2024-04-01", "2024-04-10"),
			daysInStartMonth:  30,
			dailyCost:         "1.667",
			daysUsed:          10,
			proratedCost:      "16.67",
			proratedRemaining: "33.33",
		},
		{
			name:              "Next year still capped",
			request:           req("31", "2024-12-31", "2025-01-01"),
			daysInStartMonth:  31,
			dailyCost:         "1",
			daysUsed:          1,
			proratedCost:      "1",
			proratedRemaining: "30",
			capped:            true,
		},
	}

	engine := NewProrationEngine()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := engine.CalculateRequest(tt.request)
			require.NoError(t, err)
			require.NotNil(t, result)

			assert.Equal(t, tt.daysInStartMonth, result.DaysInStartMonth)
			assertDecimal(t, tt.dailyCost, result.DailyCost, "daily cost")
			assert.Equal(t, tt.daysUsed, result.DaysUsed)
			assertDecimal(t, tt.proratedCost, result.ProratedCost, "prorated cost")
			assertDecimal(t, tt.proratedRemaining, result.ProratedRemaining, "prorated remaining")
			assert.Equal(t, tt.capped, result.CappedToStartMonth)
		})
	}
}

// TestProrate_ValidationOrder checks each rule and that the first failure wins
func TestProrate_ValidationOrder(t *testing.T) {
	tests := []struct {
		name    string
		request domain.ProrationRequest
		want    error
		kind    domain.ErrorKind
	}{
		{"negative amount", req("-5", "2024-01-01", "2024-01-10"), domain.ErrInvalidAmount, domain.KindInvalidAmount},
		{"zero amount", req("0", "2024-01-01", "2024-01-10"), domain.ErrInvalidAmount, domain.KindInvalidAmount},
		{"missing amount", req("", "2024-01-01", "2024-01-10"), domain.ErrInvalidAmount, domain.KindInvalidAmount},
		{"non-numeric amount", req("fifty", "2024-01-01", "2024-01-10"), domain.ErrInvalidAmount, domain.KindInvalidAmount},
		{"amount above float range", req("1e400", "2024-01-01", "2024-01-10"), domain.ErrInvalidAmount, domain.KindInvalidAmount},
		{"amount below float range", req("1e-400", "2024-01-01", "2024-01-10"), domain.ErrInvalidAmount, domain.KindInvalidAmount},
		{"huge exponent", req("1e10000000", "2024-02-01", "2024-02-01"), domain.ErrInvalidAmount, domain.KindInvalidAmount},
		{"amount wins over bad dates", req("abc", "nope", "nope"), domain.ErrInvalidAmount, domain.KindInvalidAmount},
		{"missing start", req("50", "", "2024-01-10"), domain.ErrInvalidStartDate, domain.KindInvalidStartDate},
		{"bad start", req("50", "2024-02-30", "2024-03-01"), domain.ErrInvalidStartDate, domain.KindInvalidStartDate},
		{"start wins over calc", req("50", "bad", "bad"), domain.ErrInvalidStartDate, domain.KindInvalidStartDate},
		{"missing calc", req("50", "2024-01-01", ""), domain.ErrInvalidCalculationDate, domain.KindInvalidCalculationDate},
		{"bad calc", req("50", "2024-01-01", "01/10/2024"), domain.ErrInvalidCalculationDate, domain.KindInvalidCalculationDate},
		{"calc before start", req("50", "2024-05-10", "2024-05-01"), domain.ErrDateOrder, domain.KindDateOrder},
		{"calc one day before start", req("50", "2024-03-01", "2024-02-29"), domain.ErrDateOrder, domain.KindDateOrder},
	}

	engine := NewProrationEngine()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := engine.CalculateRequest(tt.request)
			assert.Nil(t, result)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
			assert.Equal(t, tt.kind, domain.KindOf(err))
		})
	}
}

func TestCalculateFloat(t *testing.T) {
	engine := NewProrationEngine()

	result, err := engine.CalculateFloat(50, "2024-02-15", "2024-02-29")
	require.NoError(t, err)
	assert.Equal(t, 15, result.DaysUsed)
	assertDecimal(t, "25.86", result.ProratedCost, "prorated cost")

	for _, bad := range []float64{0, -1, math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := engine.CalculateFloat(bad, "2024-02-15", "2024-02-29")
		assert.ErrorIs(t, err, domain.ErrInvalidAmount, "amount %v", bad)
	}
}

func TestProrate_DirectInput(t *testing.T) {
	start := time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC)

	_, err := Prorate(domain.ProrationInput{TotalMonthlyCost: decimal.Zero, StartDate: start, CalculationDate: start})
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)

	_, err = Prorate(domain.ProrationInput{TotalMonthlyCost: decimal.NewFromInt(10), CalculationDate: start})
	assert.ErrorIs(t, err, domain.ErrInvalidStartDate)

	_, err = Prorate(domain.ProrationInput{TotalMonthlyCost: decimal.NewFromInt(10), StartDate: start})
	assert.ErrorIs(t, err, domain.ErrInvalidCalculationDate)

	// Time of day never shifts the calendar day.
	late := time.Date(2024, 2, 15, 23, 59, 0, 0, time.UTC)
	result, err := Prorate(domain.ProrationInput{TotalMonthlyCost: decimal.NewFromInt(50), StartDate: late, CalculationDate: start})
	require.NoError(t, err)
	assert.Equal(t, 1, result.DaysUsed)
}

// TestProrate_DaysUsedBounds walks every start/calc pair of a few months
func TestProrate_DaysUsedBounds(t *testing.T) {
	months := []time.Time{
		time.Date(2023, 2, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC),
	}
	amount := decimal.RequireFromString("99.99")

	for _, first := range months {
		days := first.AddDate(0, 1, -1).Day()
		for s := 1; s <= days; s++ {
			start := time.Date(first.Year(), first.Month(), s, 0, 0, 0, 0, time.UTC)
			for c := s; c <= days; c++ {
				calc := time.Date(first.Year(), first.Month(), c, 0, 0, 0, 0, time.UTC)
				result, err := Prorate(domain.ProrationInput{TotalMonthlyCost: amount, StartDate: start, CalculationDate: calc})
				require.NoError(t, err)
				assert.Equal(t, days, result.DaysInStartMonth)
				assert.GreaterOrEqual(t, result.DaysUsed, 1)
				assert.LessOrEqual(t, result.DaysUsed, result.DaysInStartMonth)
				assert.Equal(t, c-s+1, result.DaysUsed)
				assert.False(t, result.CappedToStartMonth)
			}

			later := first.AddDate(0, 2, 3)
			result, err := Prorate(domain.ProrationInput{TotalMonthlyCost: amount, StartDate: start, CalculationDate: later})
			require.NoError(t, err)
			assert.Equal(t, days-s+1, result.DaysUsed, "start %s later %s", start, later)
			assert.True(t, result.CappedToStartMonth)
		}
	}
}

func TestProrate_Boundaries(t *testing.T) {
	engine := NewProrationEngine()

	same, err := engine.CalculateRequest(req("75", "2024-07-19", "2024-07-19"))
	require.NoError(t, err)
	assert.Equal(t, 1, same.DaysUsed)

	full, err := engine.CalculateRequest(req("75", "2024-07-01", "2024-07-31"))
	require.NoError(t, err)
	assert.Equal(t, full.DaysInStartMonth, full.DaysUsed)
}

func TestProrate_LeapYearFebruary(t *testing.T) {
	engine := NewProrationEngine()
	for year, want := range map[int]int{2024: 29, 2023: 28, 2000: 29, 1900: 28} {
		t.Run(fmt.Sprint(year), func(t *testing.T) {
			start := fmt.Sprintf("%04d-02-01", year)
			result, err := engine.CalculateRequest(req("10", start, start))
			require.NoError(t, err)
			assert.Equal(t, want, result.DaysInStartMonth)
		})
	}
}

func TestProrate_RemainingUsesExactAmount(t *testing.T) {
	engine := NewProrationEngine()
	// 10.0004 / 31 rounds to 0.323; remaining comes from the unrounded 10.0004.
	result, err := engine.CalculateRequest(req("10.0004", "2024-01-01", "2024-01-01"))
	require.NoError(t, err)
	assertDecimal(t, "0.323", result.DailyCost, "daily cost")
	assertDecimal(t, "9.677", result.ProratedRemaining, "prorated remaining")
}

func TestProrate_Pure(t *testing.T) {
	engine := NewProrationEngine()
	r := req("123.45", "2024-08-20", "2024-08-27")

	first, err := engine.CalculateRequest(r)
	require.NoError(t, err)

	var wg sync.WaitGroup
	results := make([]*domain.ProrationResult, 32)
	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i], _ = engine.CalculateRequest(r)
		}()
	}
	wg.Wait()

	for _, got := range results {
		require.NotNil(t, got)
		assert.Equal(t, first.DaysUsed, got.DaysUsed)
		assert.Equal(t, first.DaysInStartMonth, got.DaysInStartMonth)
		assert.True(t, first.DailyCost.Equal(got.DailyCost))
		assert.True(t, first.ProratedCost.Equal(got.ProratedCost))
		assert.True(t, first.ProratedRemaining.Equal(got.ProratedRemaining))
	}
}

type recordingLogger struct {
	mu    sync.Mutex
	lines []string
}

func (l *recordingLogger) record(format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines = append(l.lines, fmt.Sprintf(format, args...))
}

func (l *recordingLogger) Debugf(format string, args ...any) { l.record(format, args...) }
func (l *recordingLogger) Infof(format string, args ...any)  { l.record(format, args...) }
func (l *recordingLogger) Warnf(format string, args ...any)  { l.record(format, args...) }
func (l *recordingLogger) Errorf(format string, args ...any) { l.record(format, args...) }

func TestSetLogger(t *testing.T) {
	engine := NewProrationEngine()
	rec := &recordingLogger{}
	engine.SetLogger(rec)

	_, err := engine.CalculateRequest(req("50", "2024-02-15", "2024-02-29"))
	require.NoError(t, err)
	require.Len(t, rec.lines, 1)
	assert.Contains(t, rec.lines[0], "days_used=15/29")

	engine.SetLogger(nil)
	assert.IsType(t, NopLogger{}, engine.Logger)
}

func TestToday(t *testing.T) {
	SetNowFunc(func() time.Time { return time.Date(2026, 10, 19, 22, 0, 0, 0, time.FixedZone("PDT", -7*3600)) })
	defer SetNowFunc(time.Now)
	assert.Equal(t, time.Date(2026, 10, 20, 0, 0, 0, 0, time.UTC), Today())
}
