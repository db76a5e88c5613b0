// Package testfixtures provides deterministic builders shared by the
// scheduler, conflict and export tests.
package testfixtures

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/example/ceremony-scheduler/internal/scheduler"
)

var inviteCounter uint64

var referenceRelease = time.Date(2025, time.January, 18, 0, 0, 0, 0, time.UTC)

// ReferenceRelease returns the canonical release date used by fixtures: the
// third Saturday of January 2025.
func ReferenceRelease() time.Time {
	return referenceRelease
}

// InviteFixture is a deterministic invite that can be materialised for
// conflict and export tests.
type InviteFixture struct {
	ID           string
	Type         scheduler.CeremonyType
	Title        string
	Description  string
	Start        time.Time
	End          time.Time
	Attendees    []string
	Location     string
	SprintNumber int
	ReleaseDate  time.Time
}

// InviteOption configures the generated invite fixture.
type InviteOption func(*InviteFixture)

// NewInviteFixture returns a deterministic invite fixture with optional
// overrides. Successive fixtures are spaced two hours apart so they do not
// overlap unless a test arranges it.
func NewInviteFixture(opts ...InviteOption) InviteFixture {
	idx := atomic.AddUint64(&inviteCounter, 1)
	start := referenceRelease.Add(time.Duration(idx) * 2 * time.Hour)
	fixture := InviteFixture{
		ID:           fmt.Sprintf("invite-%03d", idx),
		Type:         scheduler.CeremonySprintPlanning,
		Title:        fmt.Sprintf("Ceremony %03d", idx),
		Description:  "fixture ceremony",
		Start:        start,
		End:          start.Add(time.Hour),
		Attendees:    []string{},
		SprintNumber: 1,
		ReleaseDate:  referenceRelease,
	}
	for _, opt := range opts {
		opt(&fixture)
	}
	return fixture
}

// WithInviteID overrides the generated identifier.
func WithInviteID(id string) InviteOption {
	return func(f *InviteFixture) {
		f.ID = id
	}
}

// WithInviteType sets the ceremony type.
func WithInviteType(kind scheduler.CeremonyType) InviteOption {
	return func(f *InviteFixture) {
		f.Type = kind
	}
}

// WithInviteTitle overrides the title.
func WithInviteTitle(title string) InviteOption {
	return func(f *InviteFixture) {
		f.Title = title
	}
}

// WithInviteStartEnd sets the start and end instants.
func WithInviteStartEnd(start, end time.Time) InviteOption {
	return func(f *InviteFixture) {
		f.Start = start
		f.End = end
	}
}

// WithInviteWindow sets the start instant and a duration.
func WithInviteWindow(start time.Time, duration time.Duration) InviteOption {
	return func(f *InviteFixture) {
		f.Start = start
		f.End = start.Add(duration)
	}
}

// WithInviteAttendees sets the attendee list.
func WithInviteAttendees(attendees ...string) InviteOption {
	return func(f *InviteFixture) {
		f.Attendees = append([]string(nil), attendees...)
	}
}

// WithInviteLocation sets the optional location.
func WithInviteLocation(location string) InviteOption {
	return func(f *InviteFixture) {
		f.Location = location
	}
}

// WithInviteSprint sets the sprint number and release date.
func WithInviteSprint(number int, releaseDate time.Time) InviteOption {
	return func(f *InviteFixture) {
		f.SprintNumber = number
		f.ReleaseDate = releaseDate
	}
}

// Invite returns the fixture as a scheduler.Invite value.
func (f InviteFixture) Invite() scheduler.Invite {
	return scheduler.Invite{
		ID:           f.ID,
		Type:         f.Type,
		Title:        f.Title,
		Description:  f.Description,
		Start:        f.Start,
		End:          f.End,
		Attendees:    append([]string(nil), f.Attendees...),
		Location:     f.Location,
		SprintNumber: f.SprintNumber,
		ReleaseDate:  f.ReleaseDate,
	}
}

// Holidays builds a holiday list from ISO dates, panicking on malformed
// input so tests fail loudly.
func Holidays(isoDates ...string) []scheduler.Holiday {
	holidays := make([]scheduler.Holiday, 0, len(isoDates))
	for _, iso := range isoDates {
		date, err := time.Parse("2006-01-02", iso)
		if err != nil {
			panic(fmt.Sprintf("testfixtures: bad holiday date %q: %v", iso, err))
		}
		holidays = append(holidays, scheduler.Holiday{
			Date: time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC),
			Name: "Fixture Holiday",
		})
	}
	return holidays
}
