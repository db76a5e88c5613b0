package export

import (
	"strings"
	"testing"
	"time"

	"github.com/example/ceremony-scheduler/internal/recurrence"
	"github.com/example/ceremony-scheduler/internal/scheduler"
	"github.com/example/ceremony-scheduler/internal/testfixtures"
)

func TestSummary(t *testing.T) {
	planning := testfixtures.NewInviteFixture(
		testfixtures.WithInviteTitle("Sprint 1 Planning"),
		testfixtures.WithInviteWindow(time.Date(2024, time.December, 30, 10, 0, 0, 0, time.UTC), 2*time.Hour),
		testfixtures.WithInviteSprint(1, testfixtures.ReferenceRelease()),
	).Invite()

	standup := testfixtures.NewInviteFixture(
		testfixtures.WithInviteTitle("Sprint 1 Daily Standup"),
		testfixtures.WithInviteWindow(time.Date(2024, time.December, 30, 9, 30, 0, 0, time.UTC), 15*time.Minute),
		testfixtures.WithInviteSprint(1, testfixtures.ReferenceRelease()),
	).Invite()
	standup.Recurrence = &recurrence.Rule{
		Frequency: recurrence.FrequencyDaily,
		Until:     time.Date(2025, time.January, 17, 23, 59, 59, 0, time.UTC),
	}

	review := testfixtures.NewInviteFixture(
		testfixtures.WithInviteTitle("Sprint 2 Review"),
		testfixtures.WithInviteWindow(time.Date(2025, time.February, 13, 14, 0, 0, 0, time.UTC), time.Hour),
		testfixtures.WithInviteSprint(2, time.Date(2025, time.February, 15, 0, 0, 0, 0, time.UTC)),
	).Invite()

	// Deliberately out of order: sprint 2 first, standup before planning.
	summary := Summary([]scheduler.Invite{review, planning, standup})

	t.Run("header and total", func(t *testing.T) {
		if !strings.Contains(summary, "SCRUM CEREMONY SCHEDULE") {
			t.Fatalf("missing header:\n%s", summary)
		}
		if !strings.Contains(summary, "Total Ceremonies: 3") {
			t.Fatalf("missing total:\n%s", summary)
		}
	})

	t.Run("sprints in ascending order", func(t *testing.T) {
		first := strings.Index(summary, "Sprint 1\n")
		second := strings.Index(summary, "Sprint 2\n")
		if first < 0 || second < 0 || first > second {
			t.Fatalf("sprint sections out of order (sprint1 at %d, sprint2 at %d):\n%s", first, second, summary)
		}
	})

	t.Run("chronological within sprint", func(t *testing.T) {
		standupIdx := strings.Index(summary, "Sprint 1 Daily Standup")
		planningIdx := strings.Index(summary, "Sprint 1 Planning")
		if standupIdx < 0 || planningIdx < 0 || standupIdx > planningIdx {
			t.Fatalf("invites not chronological within sprint:\n%s", summary)
		}
	})

	t.Run("invite details", func(t *testing.T) {
		wantFragments := []string{
			"Date: 2024-12-30 at 10:00",
			"Duration: 120 minutes",
			"Duration: 15 minutes",
			"Recurrence: daily until 2025-01-17",
			"Date: 2025-02-13 at 14:00",
		}
		for _, fragment := range wantFragments {
			if !strings.Contains(summary, fragment) {
				t.Fatalf("summary missing %q:\n%s", fragment, summary)
			}
		}
	})
}

func TestSummaryEmpty(t *testing.T) {
	summary := Summary(nil)
	if !strings.Contains(summary, "Total Ceremonies: 0") {
		t.Fatalf("empty summary = %q", summary)
	}
	if strings.Contains(summary, "Sprint ") {
		t.Fatalf("empty summary contains sprint sections:\n%s", summary)
	}
}
