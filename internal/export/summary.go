package export

import (
	"fmt"
	"sort"
	"strings"

	"github.com/example/ceremony-scheduler/internal/scheduler"
)

const summaryWidth = 60

// Summary renders a human-readable schedule: invites grouped by sprint in
// ascending sprint order, chronological within each sprint.
func Summary(invites []scheduler.Invite) string {
	bySprint := make(map[int][]scheduler.Invite)
	for _, invite := range invites {
		bySprint[invite.SprintNumber] = append(bySprint[invite.SprintNumber], invite)
	}

	sprintNumbers := make([]int, 0, len(bySprint))
	for number := range bySprint {
		sprintNumbers = append(sprintNumbers, number)
	}
	sort.Ints(sprintNumbers)

	divider := strings.Repeat("=", summaryWidth)
	var out strings.Builder
	out.WriteString(divider + "\n")
	out.WriteString("SCRUM CEREMONY SCHEDULE\n")
	out.WriteString(divider + "\n\n")

	for _, number := range sprintNumbers {
		sprint := bySprint[number]
		sort.Slice(sprint, func(i, j int) bool { return sprint[i].Start.Before(sprint[j].Start) })

		fmt.Fprintf(&out, "Sprint %d\n", number)
		out.WriteString(strings.Repeat("-", summaryWidth) + "\n")

		for _, invite := range sprint {
			fmt.Fprintf(&out, "  %s\n", invite.Title)
			fmt.Fprintf(&out, "    Date: %s at %s\n", invite.Start.Format("2006-01-02"), invite.Start.Format("15:04"))
			fmt.Fprintf(&out, "    Duration: %d minutes\n", int(invite.Duration().Minutes()))
			if invite.Recurrence != nil {
				fmt.Fprintf(&out, "    Recurrence: %s until %s\n", invite.Recurrence.Frequency, invite.Recurrence.Until.Format("2006-01-02"))
			}
			out.WriteString("\n")
		}
		out.WriteString("\n")
	}

	out.WriteString(divider + "\n")
	fmt.Fprintf(&out, "Total Ceremonies: %d\n", len(invites))
	out.WriteString(divider + "\n")
	return out.String()
}
