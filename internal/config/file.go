package config

import (
	"fmt"
	"os"
	"time"

	yaml "go.yaml.in/yaml/v3"

	"github.com/example/ceremony-scheduler/internal/dates"
	"github.com/example/ceremony-scheduler/internal/scheduler"
)

// Settings is a fully resolved configuration document.
type Settings struct {
	Sprint   scheduler.SprintConfig
	Holidays []scheduler.Holiday
	Events   []scheduler.ExternalEvent
	Team     string
}

// DefaultSettings returns the built-in configuration with no holidays or
// external events.
func DefaultSettings() Settings {
	return Settings{Sprint: Default()}
}

type fileDocument struct {
	Team     string          `yaml:"team"`
	Sprint   *sprintSection  `yaml:"sprint"`
	Holidays []holidayEntry  `yaml:"holidays"`
	Events   []externalEntry `yaml:"external_events"`
}

type sprintSection struct {
	DurationWeeks *int                       `yaml:"duration_weeks"`
	Ceremonies    map[string]ceremonySection `yaml:"ceremonies"`
}

type ceremonySection struct {
	Name            *string  `yaml:"name"`
	Description     *string  `yaml:"description"`
	Agenda          []string `yaml:"agenda"`
	DayOffset       *int     `yaml:"day_offset"`
	TimeOfDay       *string  `yaml:"time_of_day"`
	DurationMinutes *int     `yaml:"duration_minutes"`
	AttendeeType    *string  `yaml:"attendee_type"`
}

type holidayEntry struct {
	Date    string `yaml:"date"`
	Name    string `yaml:"name"`
	Country string `yaml:"country"`
}

type externalEntry struct {
	Title string `yaml:"title"`
	Start string `yaml:"start"`
	End   string `yaml:"end"`
}

const dateTimeLayout = "2006-01-02T15:04"

// LoadFile reads a YAML configuration document. Omitted sprint fields fall
// back to the built-in defaults. The resolved sprint configuration is
// validated; any issues are returned alongside the settings so the caller can
// decide whether to proceed.
func LoadFile(path string) (Settings, []*Issue, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	var doc fileDocument
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return Settings{}, nil, fmt.Errorf("config: parse %s: %w", path, err)
	}

	settings := DefaultSettings()
	settings.Team = doc.Team

	if doc.Sprint != nil {
		if doc.Sprint.DurationWeeks != nil {
			settings.Sprint.DurationWeeks = *doc.Sprint.DurationWeeks
		}
		for name, section := range doc.Sprint.Ceremonies {
			switch scheduler.CeremonyType(name) {
			case scheduler.CeremonySprintPlanning:
				applyCeremonySection(&settings.Sprint.Planning, section)
			case scheduler.CeremonyDailyStandup:
				applyCeremonySection(&settings.Sprint.Standup, section)
			case scheduler.CeremonySprintReview:
				applyCeremonySection(&settings.Sprint.Review, section)
			case scheduler.CeremonyRetrospective:
				applyCeremonySection(&settings.Sprint.Retrospective, section)
			default:
				return Settings{}, nil, fmt.Errorf("config: unknown ceremony %q in %s", name, path)
			}
		}
	}

	for i, entry := range doc.Holidays {
		date, err := dates.ParseDate(entry.Date)
		if err != nil {
			return Settings{}, nil, fmt.Errorf("config: holiday %d in %s: %w", i+1, path, err)
		}
		settings.Holidays = append(settings.Holidays, scheduler.Holiday{
			Date:    date,
			Name:    entry.Name,
			Country: entry.Country,
		})
	}

	for i, entry := range doc.Events {
		start, err := time.Parse(dateTimeLayout, entry.Start)
		if err != nil {
			return Settings{}, nil, fmt.Errorf("config: external event %d start in %s: %w", i+1, path, err)
		}
		end, err := time.Parse(dateTimeLayout, entry.End)
		if err != nil {
			return Settings{}, nil, fmt.Errorf("config: external event %d end in %s: %w", i+1, path, err)
		}
		settings.Events = append(settings.Events, scheduler.ExternalEvent{
			Title: entry.Title,
			Start: start,
			End:   end,
		})
	}

	return settings, ValidateSprintConfig(settings.Sprint), nil
}

func applyCeremonySection(target *scheduler.CeremonyConfig, section ceremonySection) {
	if section.Name != nil {
		target.Name = *section.Name
	}
	if section.Description != nil {
		target.Description = *section.Description
	}
	if section.Agenda != nil {
		target.Agenda = append([]string{}, section.Agenda...)
	}
	if section.DayOffset != nil {
		target.DayOffset = *section.DayOffset
	}
	if section.TimeOfDay != nil {
		target.TimeOfDay = *section.TimeOfDay
	}
	if section.DurationMinutes != nil {
		target.DurationMinutes = *section.DurationMinutes
	}
	if section.AttendeeType != nil {
		target.AttendeeType = scheduler.AttendeeType(*section.AttendeeType)
	}
}
