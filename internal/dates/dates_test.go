package dates

import (
	"testing"
	"time"
)

func mustDate(t *testing.T, value string) time.Time {
	t.Helper()
	date, err := ParseDate(value)
	if err != nil {
		t.Fatalf("ParseDate(%q) returned error: %v", value, err)
	}
	return date
}

func TestThirdSaturday(t *testing.T) {
	cases := []struct {
		name  string
		year  int
		month time.Month
		want  string
	}{
		{name: "january 2025", year: 2025, month: time.January, want: "2025-01-18"},
		{name: "february 2025 starts on saturday", year: 2025, month: time.February, want: "2025-02-15"},
		{name: "march 2025 starts on saturday", year: 2025, month: time.March, want: "2025-03-15"},
		{name: "june 2025 starts on sunday", year: 2025, month: time.June, want: "2025-06-21"},
		{name: "december 2024", year: 2024, month: time.December, want: "2024-12-21"},
		{name: "february leap year", year: 2024, month: time.February, want: "2024-02-17"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ThirdSaturday(tc.year, tc.month)
			if FormatDate(got) != tc.want {
				t.Fatalf("ThirdSaturday(%d, %v) = %s, want %s", tc.year, tc.month, FormatDate(got), tc.want)
			}
			if got.Weekday() != time.Saturday {
				t.Fatalf("ThirdSaturday(%d, %v) falls on %v", tc.year, tc.month, got.Weekday())
			}
			if got.Day() < 15 || got.Day() > 21 {
				t.Fatalf("ThirdSaturday(%d, %v) day %d outside 15..21", tc.year, tc.month, got.Day())
			}
			if h, m, s := got.Clock(); h != 0 || m != 0 || s != 0 {
				t.Fatalf("ThirdSaturday(%d, %v) not at midnight: %v", tc.year, tc.month, got)
			}
		})
	}
}

func TestThirdSaturdayAlwaysInMonth(t *testing.T) {
	for year := 2020; year <= 2030; year++ {
		for month := time.January; month <= time.December; month++ {
			got := ThirdSaturday(year, month)
			if got.Year() != year || got.Month() != month {
				t.Fatalf("ThirdSaturday(%d, %v) = %v left the month", year, month, got)
			}
			if got.Weekday() != time.Saturday {
				t.Fatalf("ThirdSaturday(%d, %v) = %v is not a Saturday", year, month, got)
			}
		}
	}
}

func TestReleaseDatesForYear(t *testing.T) {
	releases := ReleaseDatesForYear(2025)
	if len(releases) != 12 {
		t.Fatalf("expected 12 release dates, got %d", len(releases))
	}
	for i, release := range releases {
		if release.Month() != time.Month(i+1) {
			t.Fatalf("release %d is in %v, want %v", i, release.Month(), time.Month(i+1))
		}
		if i > 0 && !releases[i-1].Before(release) {
			t.Fatalf("release dates not in ascending order at index %d", i)
		}
	}
	if FormatDate(releases[0]) != "2025-01-18" {
		t.Fatalf("first release = %s, want 2025-01-18", FormatDate(releases[0]))
	}
}

func TestIsWorkingDay(t *testing.T) {
	holidays := []time.Time{mustDate(t, "2025-01-01")}

	cases := []struct {
		name string
		date string
		want bool
	}{
		{name: "regular weekday", date: "2025-01-06", want: true},
		{name: "friday", date: "2025-01-03", want: true},
		{name: "saturday", date: "2025-01-04", want: false},
		{name: "sunday", date: "2025-01-05", want: false},
		{name: "holiday on weekday", date: "2025-01-01", want: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsWorkingDay(mustDate(t, tc.date), holidays); got != tc.want {
				t.Fatalf("IsWorkingDay(%s) = %v, want %v", tc.date, got, tc.want)
			}
		})
	}
}

func TestIsWorkingDayIgnoresHolidayClock(t *testing.T) {
	holiday := time.Date(2025, time.January, 1, 14, 30, 0, 0, time.UTC)
	if IsWorkingDay(mustDate(t, "2025-01-01"), []time.Time{holiday}) {
		t.Fatal("holiday with a time-of-day component was not matched")
	}
}

func TestWorkingDaysInRange(t *testing.T) {
	t.Run("full week", func(t *testing.T) {
		days := WorkingDaysInRange(mustDate(t, "2025-01-06"), mustDate(t, "2025-01-12"), nil)
		if len(days) != 5 {
			t.Fatalf("expected 5 working days, got %d", len(days))
		}
		if FormatDate(days[0]) != "2025-01-06" || FormatDate(days[4]) != "2025-01-10" {
			t.Fatalf("unexpected bounds: %s .. %s", FormatDate(days[0]), FormatDate(days[4]))
		}
	})

	t.Run("holiday removed", func(t *testing.T) {
		holidays := []time.Time{mustDate(t, "2025-01-08")}
		days := WorkingDaysInRange(mustDate(t, "2025-01-06"), mustDate(t, "2025-01-10"), holidays)
		if len(days) != 4 {
			t.Fatalf("expected 4 working days, got %d", len(days))
		}
		for _, day := range days {
			if FormatDate(day) == "2025-01-08" {
				t.Fatal("holiday present in working day range")
			}
		}
	})

	t.Run("weekend only range is empty", func(t *testing.T) {
		days := WorkingDaysInRange(mustDate(t, "2025-01-04"), mustDate(t, "2025-01-05"), nil)
		if len(days) != 0 {
			t.Fatalf("expected no working days, got %d", len(days))
		}
	})

	t.Run("end before start is empty", func(t *testing.T) {
		days := WorkingDaysInRange(mustDate(t, "2025-01-10"), mustDate(t, "2025-01-06"), nil)
		if len(days) != 0 {
			t.Fatalf("expected no working days, got %d", len(days))
		}
	})

	t.Run("single inclusive day", func(t *testing.T) {
		days := WorkingDaysInRange(mustDate(t, "2025-01-06"), mustDate(t, "2025-01-06"), nil)
		if len(days) != 1 {
			t.Fatalf("expected 1 working day, got %d", len(days))
		}
	})
}

func TestAddWorkingDays(t *testing.T) {
	cases := []struct {
		name     string
		start    string
		n        int
		holidays []string
		want     string
	}{
		{name: "zero is identity", start: "2025-01-06", n: 0, want: "2025-01-06"},
		{name: "within week", start: "2025-01-06", n: 2, want: "2025-01-08"},
		{name: "skips weekend", start: "2025-01-10", n: 1, want: "2025-01-13"},
		{name: "skips holiday", start: "2025-01-06", n: 1, holidays: []string{"2025-01-07"}, want: "2025-01-08"},
		{name: "skips holiday then weekend", start: "2025-01-09", n: 1, holidays: []string{"2025-01-10"}, want: "2025-01-13"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var holidays []time.Time
			for _, h := range tc.holidays {
				holidays = append(holidays, mustDate(t, h))
			}
			got := AddWorkingDays(mustDate(t, tc.start), tc.n, holidays)
			if FormatDate(got) != tc.want {
				t.Fatalf("AddWorkingDays(%s, %d) = %s, want %s", tc.start, tc.n, FormatDate(got), tc.want)
			}
		})
	}
}

func TestNextWorkingDayIsStrictlyAfter(t *testing.T) {
	got := NextWorkingDay(mustDate(t, "2025-01-06"), nil)
	if FormatDate(got) != "2025-01-07" {
		t.Fatalf("NextWorkingDay(monday) = %s, want 2025-01-07", FormatDate(got))
	}
}

func TestSprintBounds(t *testing.T) {
	release := mustDate(t, "2025-01-18")

	start := SprintStart(release, 3)
	if FormatDate(start) != "2024-12-28" {
		t.Fatalf("SprintStart = %s, want 2024-12-28", FormatDate(start))
	}

	end := SprintEnd(start, 3)
	if FormatDate(end) != "2025-01-17" {
		t.Fatalf("SprintEnd = %s, want 2025-01-17", FormatDate(end))
	}
	if !end.Before(release) {
		t.Fatal("sprint end must precede the release date")
	}

	twoWeeks := SprintStart(release, 2)
	if FormatDate(twoWeeks) != "2025-01-04" {
		t.Fatalf("SprintStart(2 weeks) = %s, want 2025-01-04", FormatDate(twoWeeks))
	}
}

func TestApplyOffset(t *testing.T) {
	base := time.Date(2025, time.January, 18, 9, 45, 33, 123, time.UTC)

	got := ApplyOffset(base, -2, TimeOfDay{Hour: 14, Minute: 0})
	want := time.Date(2025, time.January, 16, 14, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("ApplyOffset = %v, want %v", got, want)
	}

	t.Run("preserves location", func(t *testing.T) {
		loc := time.FixedZone("JST", 9*60*60)
		local := time.Date(2025, time.January, 18, 0, 0, 0, 0, loc)
		got := ApplyOffset(local, 1, TimeOfDay{Hour: 10, Minute: 30})
		if got.Location() != loc {
			t.Fatalf("location changed: %v", got.Location())
		}
		if got.Day() != 19 || got.Hour() != 10 || got.Minute() != 30 {
			t.Fatalf("unexpected result: %v", got)
		}
	})
}

func TestDayBounds(t *testing.T) {
	date := time.Date(2025, time.March, 15, 13, 7, 1, 500, time.UTC)

	start := AtStartOfDay(date)
	if start.Hour() != 0 || start.Minute() != 0 || start.Second() != 0 || start.Nanosecond() != 0 {
		t.Fatalf("AtStartOfDay = %v", start)
	}

	end := AtEndOfDay(date)
	if end.Hour() != 23 || end.Minute() != 59 || end.Second() != 59 || end.Nanosecond() != 999_000_000 {
		t.Fatalf("AtEndOfDay = %v", end)
	}
	if !SameDate(start, end) {
		t.Fatal("day bounds landed on different dates")
	}
}

func TestLater(t *testing.T) {
	a := mustDate(t, "2025-01-18")
	b := mustDate(t, "2025-01-19")
	if !Later(a, b).Equal(b) {
		t.Fatal("Later picked the earlier instant")
	}
	if !Later(b, a).Equal(b) {
		t.Fatal("Later is not symmetric")
	}
	if !Later(a, a).Equal(a) {
		t.Fatal("Later of equal instants changed the value")
	}
}
