package dates

import (
	"errors"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	t.Run("valid dates", func(t *testing.T) {
		cases := []struct {
			input string
			want  time.Time
		}{
			{input: "2025-01-18", want: time.Date(2025, time.January, 18, 0, 0, 0, 0, time.UTC)},
			{input: "2024-02-29", want: time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC)},
			{input: "2025-12-31", want: time.Date(2025, time.December, 31, 0, 0, 0, 0, time.UTC)},
		}
		for _, tc := range cases {
			got, err := ParseDate(tc.input)
			if err != nil {
				t.Fatalf("ParseDate(%q) returned error: %v", tc.input, err)
			}
			if !got.Equal(tc.want) {
				t.Fatalf("ParseDate(%q) = %v, want %v", tc.input, got, tc.want)
			}
			if got.Location() != time.UTC {
				t.Fatalf("ParseDate(%q) location = %v, want UTC", tc.input, got.Location())
			}
		}
	})

	t.Run("rejected inputs", func(t *testing.T) {
		inputs := []string{
			"",
			"2025-1-18",
			"2025/01/18",
			"25-01-18",
			"2025-01-18T00:00",
			"2025-13-01",
			"2025-00-10",
			"2025-01-32",
			"2025-01-00",
			"2025-02-30",
			"2023-02-29",
			"2025-04-31",
			"yyyy-mm-dd",
		}
		for _, input := range inputs {
			if _, err := ParseDate(input); err == nil {
				t.Fatalf("ParseDate(%q) accepted malformed input", input)
			}
		}
	})

	t.Run("error type", func(t *testing.T) {
		_, err := ParseDate("2025-02-30")
		var parseErr *ParseError
		if !errors.As(err, &parseErr) {
			t.Fatalf("expected *ParseError, got %T", err)
		}
		if parseErr.Input != "2025-02-30" {
			t.Fatalf("ParseError.Input = %q", parseErr.Input)
		}
	})
}

func TestFormatDateRoundTrip(t *testing.T) {
	inputs := []string{"2024-02-29", "2025-01-01", "2025-06-21", "2025-12-31"}
	for _, input := range inputs {
		date, err := ParseDate(input)
		if err != nil {
			t.Fatalf("ParseDate(%q) returned error: %v", input, err)
		}
		if got := FormatDate(date); got != input {
			t.Fatalf("round trip of %q produced %q", input, got)
		}
	}
}

func TestParseTimeOfDay(t *testing.T) {
	t.Run("valid times", func(t *testing.T) {
		cases := []struct {
			input string
			want  TimeOfDay
		}{
			{input: "00:00", want: TimeOfDay{Hour: 0, Minute: 0}},
			{input: "09:30", want: TimeOfDay{Hour: 9, Minute: 30}},
			{input: "23:59", want: TimeOfDay{Hour: 23, Minute: 59}},
		}
		for _, tc := range cases {
			got, err := ParseTimeOfDay(tc.input)
			if err != nil {
				t.Fatalf("ParseTimeOfDay(%q) returned error: %v", tc.input, err)
			}
			if got != tc.want {
				t.Fatalf("ParseTimeOfDay(%q) = %+v, want %+v", tc.input, got, tc.want)
			}
		}
	})

	t.Run("rejected inputs", func(t *testing.T) {
		inputs := []string{"", "9:30", "09:3", "24:00", "12:60", "ab:cd", "09-30", "09:30:00"}
		for _, input := range inputs {
			if _, err := ParseTimeOfDay(input); err == nil {
				t.Fatalf("ParseTimeOfDay(%q) accepted malformed input", input)
			}
		}
	})
}

func TestTimeOfDayString(t *testing.T) {
	if got := (TimeOfDay{Hour: 9, Minute: 5}).String(); got != "09:05" {
		t.Fatalf("String() = %q, want 09:05", got)
	}
}
