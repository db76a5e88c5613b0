// Package recurrence defines the compact recurrence rule emitted for
// repeating ceremonies. Rules describe a repetition (frequency, inclusive end
// instant, weekday filter, exception dates) without materializing individual
// occurrences; expansion is left to the consuming calendar application.
package recurrence

import (
	"errors"
	"time"
)

// Frequency represents supported recurrence intervals.
type Frequency string

const (
	// FrequencyDaily repeats the event every day within the rule window.
	FrequencyDaily Frequency = "daily"
	// FrequencyWeekly repeats the event on the selected weekdays.
	FrequencyWeekly Frequency = "weekly"
)

// ErrInvalidFrequency indicates the recurrence frequency is not supported.
var ErrInvalidFrequency = errors.New("recurrence: invalid frequency")

// ErrInvalidWindow indicates the rule has no end bound.
var ErrInvalidWindow = errors.New("recurrence: rule requires an until bound")

// Weekday codes in iCalendar notation, Monday through Friday.
var WeekdayCodes = []string{"MO", "TU", "WE", "TH", "FR"}

// Rule describes a recurrence configuration attached to an invite.
type Rule struct {
	Frequency    Frequency
	Until        time.Time
	ExcludeDates []time.Time
	ByDay        []string
}

// Validate reports whether the rule is structurally usable.
func (r Rule) Validate() error {
	switch r.Frequency {
	case FrequencyDaily, FrequencyWeekly:
	default:
		return ErrInvalidFrequency
	}
	if r.Until.IsZero() {
		return ErrInvalidWindow
	}
	return nil
}

// Clone returns a deep copy of the rule so callers can hand out rules without
// sharing the exception date slice.
func (r Rule) Clone() Rule {
	clone := r
	if len(r.ExcludeDates) > 0 {
		clone.ExcludeDates = append([]time.Time(nil), r.ExcludeDates...)
	}
	if len(r.ByDay) > 0 {
		clone.ByDay = append([]string(nil), r.ByDay...)
	}
	return clone
}

// WeekdayCode converts a Go weekday into its two-letter iCalendar code.
func WeekdayCode(day time.Weekday) string {
	switch day {
	case time.Monday:
		return "MO"
	case time.Tuesday:
		return "TU"
	case time.Wednesday:
		return "WE"
	case time.Thursday:
		return "TH"
	case time.Friday:
		return "FR"
	case time.Saturday:
		return "SA"
	default:
		return "SU"
	}
}
