package scheduler

import (
	"fmt"
	"time"

	"github.com/example/ceremony-scheduler/internal/dates"
)

// alternativeGap is the spacing between a blocking interval and the suggested
// replacement start, and the step between retry candidates.
const alternativeGap = 30 * time.Minute

// maxProposalAttempts bounds the alternative-time search. When exhausted the
// last candidate is accepted anyway; callers must re-check best-effort
// proposals.
const maxProposalAttempts = 10

// overlaps implements the half-open interval test: touching endpoints do not
// conflict.
func overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

// DetectConflicts finds overlaps between invites and, when external events
// are supplied, between invites and those events.
//
// Every invite is compared against every later invite in input order; each
// overlapping pair yields one Conflict attributed to the earlier invite of
// the pair. Output order is deterministic: all overlap conflicts for invite
// i in pair order, then all external-event conflicts for invite i, for i from
// first to last.
func DetectConflicts(invites []Invite, externalEvents []ExternalEvent) []Conflict {
	var conflicts []Conflict

	for i := range invites {
		first := invites[i]
		for j := i + 1; j < len(invites); j++ {
			second := invites[j]
			if !overlaps(first.Start, first.End, second.Start, second.End) {
				continue
			}
			suggested := second.End.Add(alternativeGap)
			conflicts = append(conflicts, Conflict{
				Invite:               first.clone(),
				Type:                 ConflictOverlap,
				Date:                 first.Start,
				Description:          fmt.Sprintf("Ceremony overlaps with %s", second.Title),
				SuggestedAlternative: &suggested,
			})
		}

		for _, event := range externalEvents {
			if !overlaps(first.Start, first.End, event.Start, event.End) {
				continue
			}
			suggested := event.End.Add(alternativeGap)
			conflicts = append(conflicts, Conflict{
				Invite:               first.clone(),
				Type:                 ConflictExternalEvent,
				Date:                 first.Start,
				Description:          fmt.Sprintf("Ceremony conflicts with external event: %s", event.Title),
				SuggestedAlternative: &suggested,
			})
		}
	}

	return conflicts
}

// ProposeAlternativeTimes maps conflicting invite IDs to proposed start
// times.
//
// For each conflict the search starts at the conflict's suggested alternative
// (or the invite's own end time) and advances in 30 minute steps until the
// candidate interval no longer overlaps any external event, for at most
// maxProposalAttempts tries. A successful proposal replaces any earlier entry
// for the same invite; when the attempts are exhausted the last candidate is
// recorded only if no earlier conflict already produced an entry.
func ProposeAlternativeTimes(conflicts []Conflict, externalEvents []ExternalEvent) map[string]time.Time {
	alternatives := make(map[string]time.Time)

	for _, conflict := range conflicts {
		invite := conflict.Invite
		duration := invite.Duration()

		candidate := invite.End
		if conflict.SuggestedAlternative != nil {
			candidate = *conflict.SuggestedAlternative
		}

		accepted := false
		for attempt := 0; attempt < maxProposalAttempts; attempt++ {
			if !overlapsAnyEvent(candidate, candidate.Add(duration), externalEvents) {
				alternatives[invite.ID] = candidate
				accepted = true
				break
			}
			candidate = candidate.Add(alternativeGap)
		}
		if !accepted {
			if _, exists := alternatives[invite.ID]; !exists {
				alternatives[invite.ID] = candidate
			}
		}
	}

	return alternatives
}

func overlapsAnyEvent(start, end time.Time, events []ExternalEvent) bool {
	for _, event := range events {
		if overlaps(start, end, event.Start, event.End) {
			return true
		}
	}
	return false
}

// FallsOnHoliday reports whether the invite starts on one of the holiday
// calendar dates. Time-of-day components are ignored.
func FallsOnHoliday(invite Invite, holidays []Holiday) bool {
	for _, holiday := range holidays {
		if dates.SameDate(invite.Start, holiday.Date) {
			return true
		}
	}
	return false
}

// RescheduleToNextWorkingDay returns a copy of the invite moved forward to
// the next working day. The invite always advances at least one calendar day
// and keeps its original time of day and duration.
func RescheduleToNextWorkingDay(invite Invite, holidays []Holiday) Invite {
	duration := invite.Duration()
	start := dates.NextWorkingDay(invite.Start, HolidayDates(holidays))

	updated := invite.clone()
	updated.Start = start
	updated.End = start.Add(duration)
	return updated
}
