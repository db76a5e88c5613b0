// Package scheduler computes Scrum ceremony invites anchored to monthly
// release dates and detects conflicts between invites and external events.
package scheduler

import (
	"time"

	"github.com/example/ceremony-scheduler/internal/recurrence"
)

// CeremonyType identifies one of the four standard Scrum ceremonies.
type CeremonyType string

const (
	CeremonySprintPlanning CeremonyType = "sprint-planning"
	CeremonyDailyStandup   CeremonyType = "daily-standup"
	CeremonySprintReview   CeremonyType = "sprint-review"
	CeremonyRetrospective  CeremonyType = "sprint-retrospective"
)

// CeremonyTypes lists all ceremony types in generation order.
var CeremonyTypes = []CeremonyType{
	CeremonySprintPlanning,
	CeremonyDailyStandup,
	CeremonySprintReview,
	CeremonyRetrospective,
}

// AttendeeType describes which audience a ceremony is intended for.
type AttendeeType string

const (
	AttendeeTeam                AttendeeType = "team"
	AttendeeTeamAndStakeholders AttendeeType = "team-and-stakeholders"
)

// CeremonyConfig holds the per-ceremony scheduling parameters.
type CeremonyConfig struct {
	Name            string
	Description     string
	Agenda          []string
	DayOffset       int
	TimeOfDay       string
	DurationMinutes int
	AttendeeType    AttendeeType
}

// Duration returns the configured meeting length.
func (c CeremonyConfig) Duration() time.Duration {
	return time.Duration(c.DurationMinutes) * time.Minute
}

// SprintConfig is the immutable configuration shared by all sprints of a
// generation run.
type SprintConfig struct {
	DurationWeeks int
	Planning      CeremonyConfig
	Standup       CeremonyConfig
	Review        CeremonyConfig
	Retrospective CeremonyConfig
}

// Ceremony returns the configuration for the given ceremony type.
func (c SprintConfig) Ceremony(kind CeremonyType) CeremonyConfig {
	switch kind {
	case CeremonySprintPlanning:
		return c.Planning
	case CeremonyDailyStandup:
		return c.Standup
	case CeremonySprintReview:
		return c.Review
	default:
		return c.Retrospective
	}
}

// Holiday is a non-working calendar date.
type Holiday struct {
	Date    time.Time
	Name    string
	Country string
}

// HolidayDates projects holidays to their calendar dates for the date
// arithmetic helpers.
func HolidayDates(holidays []Holiday) []time.Time {
	if len(holidays) == 0 {
		return nil
	}
	dates := make([]time.Time, len(holidays))
	for i, holiday := range holidays {
		dates[i] = holiday.Date
	}
	return dates
}

// Invite is one generated calendar invite for a ceremony.
type Invite struct {
	ID           string
	Type         CeremonyType
	Title        string
	Description  string
	Start        time.Time
	End          time.Time
	Attendees    []string
	Location     string
	Recurrence   *recurrence.Rule
	SprintNumber int
	ReleaseDate  time.Time
}

// Duration returns the invite length.
func (i Invite) Duration() time.Duration {
	return i.End.Sub(i.Start)
}

// clone returns a deep copy; attendee lists and recurrence rules are never
// shared between the original and the copy.
func (i Invite) clone() Invite {
	copied := i
	if i.Attendees != nil {
		copied.Attendees = append([]string(nil), i.Attendees...)
	}
	if i.Recurrence != nil {
		rule := i.Recurrence.Clone()
		copied.Recurrence = &rule
	}
	return copied
}

// ExternalEvent is an opaque busy interval supplied by the caller.
type ExternalEvent struct {
	Start time.Time
	End   time.Time
	Title string
}

// ConflictType classifies a detected conflict.
type ConflictType string

const (
	ConflictHoliday       ConflictType = "holiday"
	ConflictOverlap       ConflictType = "overlap"
	ConflictExternalEvent ConflictType = "external-event"
)

// Conflict relates an invite to the ceremony or external event it collides
// with.
type Conflict struct {
	Invite               Invite
	Type                 ConflictType
	Date                 time.Time
	Description          string
	SuggestedAlternative *time.Time
}
