package dateutil

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParseCalendarDate covers valid and invalid YYYY-MM-DD inputs
func TestParseCalendarDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{name: "Plain date", input: "2024-02-15", want: time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC)},
		{name: "Leap day", input: "2024-02-29", want: time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)},
		{name: "Surrounding spaces", input: " 2024-01-10 ", want: time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)},
		{name: "Leap day in non-leap year", input: "2023-02-29", wantErr: true},
		{name: "Month 13", input: "2024-13-01", wantErr: true},
		{name: "Day 32", input: "2024-01-32", wantErr: true},
		{name: "US format", input: "02/15/2024", wantErr: true},
		{name: "With time", input: "2024-02-15T10:00:00Z", wantErr: true},
		{name: "Garbage", input: "yesterday", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCalendarDate(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %s want %s", got, tt.want)
			assert.Equal(t, time.UTC, got.Location())
		})
	}
}

func TestParseCalendarDate_Empty(t *testing.T) {
	_, err := ParseCalendarDate("")
	assert.ErrorIs(t, err, ErrEmptyDate)
	_, err = ParseCalendarDate("   ")
	assert.ErrorIs(t, err, ErrEmptyDate)
}

func TestFormatCalendarDate(t *testing.T) {
	assert.Equal(t, "2024-03-05", FormatCalendarDate(time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)))
}

func TestCalendarDay(t *testing.T) {
	east := time.FixedZone("UTC+10", 10*3600)
	in := time.Date(2024, 5, 1, 23, 30, 0, 0, east)
	got := CalendarDay(in)
	assert.Equal(t, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), got)
}

func TestToday(t *testing.T) {
	now := func() time.Time { return time.Date(2026, 10, 19, 17, 45, 0, 0, time.UTC) }
	assert.Equal(t, time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC), Today(now))
}

// TestDaysInMonth checks month lengths including leap year handling
func TestDaysInMonth(t *testing.T) {
	tests := []struct {
		year  int
		month time.Month
		want  int
	}{
		{2024, time.January, 31},
		{2024, time.February, 29},
		{2023, time.February, 28},
		{1900, time.February, 28},
		{2000, time.February, 29},
		{2024, time.April, 30},
		{2024, time.December, 31},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d-%02d", tt.year, tt.month), func(t *testing.T) {
			assert.Equal(t, tt.want, DaysInMonth(tt.year, tt.month))
		})
	}
}

func TestIsLeapYear(t *testing.T) {
	assert.True(t, IsLeapYear(2024))
	assert.True(t, IsLeapYear(2000))
	assert.False(t, IsLeapYear(1900))
	assert.False(t, IsLeapYear(2023))
	assert.Equal(t, 366, DaysInYear(2024))
	assert.Equal(t, 365, DaysInYear(2025))
}

func TestSameMonth(t *testing.T) {
	a := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	assert.True(t, SameMonth(a, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)))
	assert.False(t, SameMonth(a, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)))
	assert.False(t, SameMonth(a, time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)))
}

func TestMonthBounds(t *testing.T) {
	d := time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), BeginningOfMonth(d))
	assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), EndOfMonth(d))
	assert.Equal(t, time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC), EndOfMonth(time.Date(2023, 12, 5, 0, 0, 0, 0, time.UTC)))
}

func TestDaysBetween(t *testing.T) {
	a := time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 14, DaysBetween(a, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 0, DaysBetween(a, a))
	assert.Equal(t, -1, DaysBetween(a, time.Date(2024, 2, 14, 0, 0, 0, 0, time.UTC)))
}
