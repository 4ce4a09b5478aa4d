package dateutil

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// CalendarDateLayout is the only accepted textual form of a calendar date.
const CalendarDateLayout = "2006-01-02"

// ErrEmptyDate is returned by ParseCalendarDate for blank input.
var ErrEmptyDate = errors.New("date is empty")

// ParseCalendarDate parses a YYYY-MM-DD string as midnight UTC.
// Impossible dates such as 2023-02-29 are rejected.
func ParseCalendarDate(value string) (time.Time, error) {
	s := strings.TrimSpace(value)
	if s == "" {
		return time.Time{}, ErrEmptyDate
	}
	t, err := time.ParseInLocation(CalendarDateLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse calendar date %q: %w", value, err)
	}
	return t, nil
}

// FormatCalendarDate renders t's calendar day as YYYY-MM-DD.
func FormatCalendarDate(t time.Time) string {
	return t.Format(CalendarDateLayout)
}

// CalendarDay drops the time of day, keeping t's own year, month and day, in UTC.
func CalendarDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Today returns the current UTC calendar day according to now.
func Today(now func() time.Time) time.Time {
	return CalendarDay(now().UTC())
}

// IsLeapYear checks if a year is a leap year
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInYear returns the number of days in a given year
func DaysInYear(year int) int {
	if IsLeapYear(year) {
		return 366
	}
	return 365
}

// DaysInMonth returns the number of days in the given month. Day 0 of the
// following month normalizes to the last day of this one.
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// SameMonth reports whether a and b fall in the same calendar year and month.
func SameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}

// BeginningOfMonth returns the first day of the month containing date.
func BeginningOfMonth(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// EndOfMonth returns the last calendar day of the month containing date.
func EndOfMonth(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), DaysInMonth(date.Year(), date.Month()), 0, 0, 0, 0, time.UTC)
}

// DaysBetween counts whole calendar days from a to b (negative when b is earlier).
func DaysBetween(a, b time.Time) int {
	return int(CalendarDay(b).Sub(CalendarDay(a)).Hours() / 24)
}
