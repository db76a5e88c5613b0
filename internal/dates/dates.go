// Package dates implements the calendar arithmetic the ceremony scheduler is
// built on: release date calculation, working day iteration and date/time
// composition.
//
// All functions treat time.Time as an immutable value and never convert
// between locations; the location of the input is carried through unchanged.
// A "date" is any time.Time whose time-of-day component is irrelevant to the
// operation.
package dates

import "time"

// ThirdSaturday returns the third Saturday of the given month at midnight.
// The result always falls inside the month: the third Saturday is at most
// day 21.
func ThirdSaturday(year int, month time.Month) time.Time {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	daysUntilFirstSaturday := (int(time.Saturday) - int(first.Weekday()) + 7) % 7
	return first.AddDate(0, 0, daysUntilFirstSaturday+14)
}

// ReleaseDatesForYear returns the twelve monthly release dates (third
// Saturday of each month) for the given year in calendar order.
func ReleaseDatesForYear(year int) []time.Time {
	releases := make([]time.Time, 0, 12)
	for month := time.January; month <= time.December; month++ {
		releases = append(releases, ThirdSaturday(year, month))
	}
	return releases
}

// SameDate reports whether two instants fall on the same calendar date,
// ignoring their time-of-day components.
func SameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// IsWorkingDay reports whether the date is a weekday and does not match any
// holiday's calendar date. Time-of-day components are ignored.
func IsWorkingDay(date time.Time, holidays []time.Time) bool {
	switch date.Weekday() {
	case time.Saturday, time.Sunday:
		return false
	}
	for _, holiday := range holidays {
		if SameDate(date, holiday) {
			return false
		}
	}
	return true
}

// WorkingDaysInRange returns every working day between start and end,
// inclusive of both bounds, in ascending order. The result is empty when
// every day in the range is a weekend or holiday, or when end precedes start.
func WorkingDaysInRange(start, end time.Time, holidays []time.Time) []time.Time {
	var days []time.Time
	for current := start; !current.After(end); current = current.AddDate(0, 0, 1) {
		if IsWorkingDay(current, holidays) {
			days = append(days, current)
		}
	}
	return days
}

// AddWorkingDays advances the date one calendar day at a time until n working
// days have been passed. Weekends and holidays are skipped without being
// counted.
func AddWorkingDays(date time.Time, n int, holidays []time.Time) time.Time {
	result := date
	for added := 0; added < n; {
		result = result.AddDate(0, 0, 1)
		if IsWorkingDay(result, holidays) {
			added++
		}
	}
	return result
}

// NextWorkingDay returns the first working day strictly after the given
// date.
func NextWorkingDay(date time.Time, holidays []time.Time) time.Time {
	return AddWorkingDays(date, 1, holidays)
}

// SprintStart returns the first day of a sprint that ends with the given
// release date.
func SprintStart(releaseDate time.Time, durationWeeks int) time.Time {
	return releaseDate.AddDate(0, 0, -durationWeeks*7)
}

// SprintEnd returns the last day of the sprint, inclusive.
func SprintEnd(sprintStart time.Time, durationWeeks int) time.Time {
	return sprintStart.AddDate(0, 0, durationWeeks*7-1)
}

// ApplyOffset shifts the base date by dayOffset calendar days and sets the
// clock to the supplied time of day. Seconds and sub-second components are
// zeroed.
func ApplyOffset(base time.Time, dayOffset int, timeOfDay TimeOfDay) time.Time {
	shifted := base.AddDate(0, 0, dayOffset)
	year, month, day := shifted.Date()
	return time.Date(year, month, day, timeOfDay.Hour, timeOfDay.Minute, 0, 0, base.Location())
}

// AtStartOfDay returns midnight on the date's calendar day.
func AtStartOfDay(date time.Time) time.Time {
	year, month, day := date.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, date.Location())
}

// AtEndOfDay returns 23:59:59.999 on the date's calendar day, the inclusive
// upper bound used for recurrence cut-offs.
func AtEndOfDay(date time.Time) time.Time {
	year, month, day := date.Date()
	return time.Date(year, month, day, 23, 59, 59, 999_000_000, date.Location())
}

// Later returns the later of two instants.
func Later(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}
	return b
}
