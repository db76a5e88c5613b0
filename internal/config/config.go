// Package config supplies the default sprint configuration, validates caller
// supplied configurations and loads configuration documents from YAML files.
package config

import (
	"fmt"
	"strings"

	"github.com/example/ceremony-scheduler/internal/dates"
	"github.com/example/ceremony-scheduler/internal/scheduler"
)

// Issue codes for configuration validation failures.
const (
	CodeInvalidSprintDuration = "INVALID_SPRINT_DURATION"
	CodeInvalidCeremonyConfig = "INVALID_CEREMONY_CONFIG"
)

// Issue is a machine-readable validation failure. Validators return issues as
// values rather than errors so callers can inspect them and decide whether to
// proceed.
type Issue struct {
	Code        string
	Message     string
	Details     map[string]any
	Suggestions []string
}

// Error implements the error interface so an Issue can be surfaced directly
// when a caller treats validation as fatal.
func (i *Issue) Error() string {
	if i == nil {
		return ""
	}
	return fmt.Sprintf("%s: %s", i.Code, i.Message)
}

// ValidateSprintDuration checks the 2-or-3-week sprint constraint.
func ValidateSprintDuration(weeks int) *Issue {
	if weeks == 2 || weeks == 3 {
		return nil
	}
	return &Issue{
		Code:        CodeInvalidSprintDuration,
		Message:     fmt.Sprintf("sprint duration must be 2 or 3 weeks, got %d", weeks),
		Details:     map[string]any{"providedValue": weeks, "validValues": []int{2, 3}},
		Suggestions: []string{"use a sprint duration of 2 or 3 weeks"},
	}
}

// ValidateTimeFormat reports whether the value is a valid HH:MM wall-clock
// time.
func ValidateTimeFormat(value string) bool {
	_, err := dates.ParseTimeOfDay(value)
	return err == nil
}

// ValidateCeremonyConfig checks a single ceremony configuration for missing
// or invalid fields.
func ValidateCeremonyConfig(cfg scheduler.CeremonyConfig) *Issue {
	var missing []string
	var invalid []string

	if cfg.TimeOfDay == "" {
		missing = append(missing, "timeOfDay")
	} else if !ValidateTimeFormat(cfg.TimeOfDay) {
		invalid = append(invalid, "timeOfDay must be in HH:MM format (e.g. 09:30, 14:00)")
	}

	if cfg.DurationMinutes == 0 {
		missing = append(missing, "durationMinutes")
	} else if cfg.DurationMinutes < 0 {
		invalid = append(invalid, "durationMinutes must be a positive integer")
	}

	switch cfg.AttendeeType {
	case "":
		missing = append(missing, "attendeeType")
	case scheduler.AttendeeTeam, scheduler.AttendeeTeamAndStakeholders:
	default:
		invalid = append(invalid, fmt.Sprintf("attendeeType %q is not team or team-and-stakeholders", cfg.AttendeeType))
	}

	if len(missing) == 0 && len(invalid) == 0 {
		return nil
	}

	var parts []string
	if len(missing) > 0 {
		parts = append(parts, "missing required fields: "+strings.Join(missing, ", "))
	}
	if len(invalid) > 0 {
		parts = append(parts, "invalid fields: "+strings.Join(invalid, "; "))
	}

	details := make(map[string]any)
	if len(missing) > 0 {
		details["missingFields"] = missing
	}
	if len(invalid) > 0 {
		details["invalidFields"] = invalid
	}

	return &Issue{
		Code:    CodeInvalidCeremonyConfig,
		Message: strings.Join(parts, ". "),
		Details: details,
		Suggestions: []string{
			"ensure timeOfDay is in HH:MM format",
			"ensure durationMinutes is a positive integer",
			"ensure attendeeType is team or team-and-stakeholders",
		},
	}
}

// ValidateSprintConfig validates the full configuration and returns every
// issue found, in a deterministic order.
func ValidateSprintConfig(cfg scheduler.SprintConfig) []*Issue {
	var issues []*Issue
	if issue := ValidateSprintDuration(cfg.DurationWeeks); issue != nil {
		issues = append(issues, issue)
	}
	for _, kind := range scheduler.CeremonyTypes {
		if issue := ValidateCeremonyConfig(cfg.Ceremony(kind)); issue != nil {
			issue.Details["ceremonyType"] = string(kind)
			issues = append(issues, issue)
		}
	}
	return issues
}

// Default returns the built-in sprint configuration: 3-week sprints with the
// standard ceremony times.
func Default() scheduler.SprintConfig {
	return scheduler.SprintConfig{
		DurationWeeks: 3,
		Planning: scheduler.CeremonyConfig{
			Name:            "Sprint Planning",
			Description:     "Sprint Planning",
			Agenda:          []string{},
			DayOffset:       0,
			TimeOfDay:       "10:00",
			DurationMinutes: 120,
			AttendeeType:    scheduler.AttendeeTeam,
		},
		Standup: scheduler.CeremonyConfig{
			Name:            "Daily Standup",
			Description:     "Daily Standup",
			Agenda:          []string{},
			DayOffset:       0,
			TimeOfDay:       "09:30",
			DurationMinutes: 15,
			AttendeeType:    scheduler.AttendeeTeam,
		},
		Review: scheduler.CeremonyConfig{
			Name:            "Sprint Review",
			Description:     "Sprint Review",
			Agenda:          []string{},
			DayOffset:       -2,
			TimeOfDay:       "14:00",
			DurationMinutes: 60,
			AttendeeType:    scheduler.AttendeeTeamAndStakeholders,
		},
		Retrospective: scheduler.CeremonyConfig{
			Name:            "Sprint Retrospective",
			Description:     "Sprint Retrospective",
			Agenda:          []string{},
			DayOffset:       0,
			TimeOfDay:       "15:30",
			DurationMinutes: 45,
			AttendeeType:    scheduler.AttendeeTeam,
		},
	}
}
