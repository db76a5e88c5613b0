// Package export renders generated invites as iCalendar documents and
// human-readable schedule summaries.
package export

import (
	"fmt"
	"os"
	"strings"

	ics "github.com/arran4/golang-ical"

	"github.com/example/ceremony-scheduler/internal/recurrence"
	"github.com/example/ceremony-scheduler/internal/scheduler"
)

const productID = "-//Ceremony Scheduler//Scrum Ceremonies//EN"

const icalTimestampLayout = "20060102T150405Z"

// Calendar builds an iCalendar document containing one VEVENT per invite.
func Calendar(invites []scheduler.Invite) *ics.Calendar {
	cal := ics.NewCalendar()
	cal.SetProductId(productID)
	cal.SetMethod(ics.MethodPublish)
	cal.SetCalscale("GREGORIAN")

	for _, invite := range invites {
		event := cal.AddEvent(invite.ID)
		event.SetSummary(invite.Title)
		event.SetDescription(invite.Description)
		event.SetStartAt(invite.Start)
		event.SetEndAt(invite.End)

		for _, attendee := range invite.Attendees {
			event.AddAttendee(attendee,
				ics.CalendarUserTypeIndividual,
				ics.ParticipationStatusNeedsAction,
				ics.ParticipationRoleReqParticipant,
			)
		}

		if invite.Location != "" {
			event.SetLocation(invite.Location)
		}

		if invite.Recurrence != nil {
			event.AddRrule(rrule(invite.Recurrence))
			for _, date := range invite.Recurrence.ExcludeDates {
				event.AddExdate(date.UTC().Format(icalTimestampLayout))
			}
		}
	}

	return cal
}

// Serialize renders the invites as iCalendar text.
func Serialize(invites []scheduler.Invite) string {
	return Calendar(invites).Serialize()
}

// WriteFile writes the iCalendar document for the invites to path.
func WriteFile(invites []scheduler.Invite, path string) error {
	if err := os.WriteFile(path, []byte(Serialize(invites)), 0o644); err != nil {
		return fmt.Errorf("export: write %s: %w", path, err)
	}
	return nil
}

func rrule(rule *recurrence.Rule) string {
	var parts []string
	parts = append(parts, "FREQ="+strings.ToUpper(string(rule.Frequency)))
	parts = append(parts, "UNTIL="+rule.Until.UTC().Format(icalTimestampLayout))
	if len(rule.ByDay) > 0 {
		parts = append(parts, "BYDAY="+strings.Join(rule.ByDay, ","))
	}
	return strings.Join(parts, ";")
}
