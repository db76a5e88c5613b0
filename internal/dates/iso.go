package dates

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ParseError describes why a date or time string was rejected.
type ParseError struct {
	Input  string
	Reason string
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("dates: invalid value %q: %s", e.Input, e.Reason)
}

// FormatDate serializes the calendar date as an ISO 8601 string (YYYY-MM-DD).
func FormatDate(date time.Time) string {
	return date.Format("2006-01-02")
}

// ParseDate parses a strict ISO 8601 calendar date (YYYY-MM-DD) into a
// midnight UTC value. Malformed strings, out-of-range months or days and
// calendar-invalid dates such as February 31st are rejected; the parser never
// clamps.
func ParseDate(value string) (time.Time, error) {
	parts := strings.Split(value, "-")
	if len(parts) != 3 || len(parts[0]) != 4 || len(parts[1]) != 2 || len(parts[2]) != 2 {
		return time.Time{}, &ParseError{Input: value, Reason: "expected format YYYY-MM-DD"}
	}

	year, err := strconv.Atoi(parts[0])
	if err != nil {
		return time.Time{}, &ParseError{Input: value, Reason: "year is not numeric"}
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil {
		return time.Time{}, &ParseError{Input: value, Reason: "month is not numeric"}
	}
	day, err := strconv.Atoi(parts[2])
	if err != nil {
		return time.Time{}, &ParseError{Input: value, Reason: "day is not numeric"}
	}

	if month < 1 || month > 12 {
		return time.Time{}, &ParseError{Input: value, Reason: fmt.Sprintf("month %d out of range 1..12", month)}
	}
	if day < 1 || day > 31 {
		return time.Time{}, &ParseError{Input: value, Reason: fmt.Sprintf("day %d out of range 1..31", day)}
	}

	date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if date.Year() != year || date.Month() != time.Month(month) || date.Day() != day {
		return time.Time{}, &ParseError{Input: value, Reason: "day does not exist in that month"}
	}
	return date, nil
}

// TimeOfDay is a wall-clock time without a date.
type TimeOfDay struct {
	Hour   int
	Minute int
}

// ParseTimeOfDay parses a strict HH:MM string with HH in 00..23 and MM in
// 00..59.
func ParseTimeOfDay(value string) (TimeOfDay, error) {
	parts := strings.Split(value, ":")
	if len(parts) != 2 || len(parts[0]) != 2 || len(parts[1]) != 2 {
		return TimeOfDay{}, &ParseError{Input: value, Reason: "expected format HH:MM"}
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return TimeOfDay{}, &ParseError{Input: value, Reason: "hour out of range 00..23"}
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return TimeOfDay{}, &ParseError{Input: value, Reason: "minute out of range 00..59"}
	}
	return TimeOfDay{Hour: hour, Minute: minute}, nil
}

// String renders the time as HH:MM.
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}
