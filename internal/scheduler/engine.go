package scheduler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/example/ceremony-scheduler/internal/dates"
	"github.com/example/ceremony-scheduler/internal/logging"
	"github.com/example/ceremony-scheduler/internal/recurrence"
	"github.com/example/ceremony-scheduler/internal/templates"
)

// ErrNoWorkingDays is returned when every day of a sprint is a weekend or
// holiday, leaving the Daily Standup with no anchor date.
var ErrNoWorkingDays = errors.New("scheduler: sprint contains no working days")

// Engine generates ceremony invites. It owns no mutable state between calls;
// independent generations may run concurrently.
type Engine struct {
	templates   templates.Store
	idGenerator func() string
	logger      *slog.Logger
}

// NewEngine wires the engine with its template store. When idGenerator is
// nil, invites receive random UUIDs.
func NewEngine(store templates.Store, idGenerator func() string) *Engine {
	return NewEngineWithLogger(store, idGenerator, nil)
}

// NewEngineWithLogger wires the engine with an explicit logger.
func NewEngineWithLogger(store templates.Store, idGenerator func() string, logger *slog.Logger) *Engine {
	if idGenerator == nil {
		idGenerator = uuid.NewString
	}
	return &Engine{templates: store, idGenerator: idGenerator, logger: logger}
}

// GenerateForReleases produces four invites per release date. Sprint numbers
// are assigned 1..N by position in the input sequence; per-sprint results are
// concatenated in release-date order. The call is all-or-nothing: the first
// failing sprint aborts the batch.
func (e *Engine) GenerateForReleases(ctx context.Context, releaseDates []time.Time, cfg SprintConfig, holidays []Holiday, teamID string) ([]Invite, error) {
	invites := make([]Invite, 0, len(releaseDates)*len(CeremonyTypes))
	for i, releaseDate := range releaseDates {
		sprint, err := e.GenerateForRelease(ctx, releaseDate, i+1, cfg, holidays, teamID)
		if err != nil {
			return nil, err
		}
		invites = append(invites, sprint...)
	}
	return invites, nil
}

// GenerateForRelease produces the four ceremony invites for one sprint.
func (e *Engine) GenerateForRelease(ctx context.Context, releaseDate time.Time, sprintNumber int, cfg SprintConfig, holidays []Holiday, teamID string) ([]Invite, error) {
	logger := e.operationLogger(ctx, "GenerateForRelease", "sprint", sprintNumber, "release_date", dates.FormatDate(releaseDate))

	planning, err := e.SprintPlanning(ctx, releaseDate, sprintNumber, cfg, holidays, teamID)
	if err != nil {
		return nil, err
	}
	standup, err := e.DailyStandup(ctx, releaseDate, sprintNumber, cfg, holidays, teamID)
	if err != nil {
		return nil, err
	}
	review, err := e.SprintReview(ctx, releaseDate, sprintNumber, cfg, holidays, teamID)
	if err != nil {
		return nil, err
	}
	retrospective, err := e.Retrospective(ctx, releaseDate, sprintNumber, cfg, holidays, teamID)
	if err != nil {
		return nil, err
	}

	logger.Debug("generated sprint ceremonies",
		"planning", planning.Start,
		"standup", standup.Start,
		"review", review.Start,
		"retrospective", retrospective.Start)

	return []Invite{planning, standup, review, retrospective}, nil
}

// SprintPlanning schedules planning at the sprint start, shifted by the
// configured offset and advanced to the next working day when needed.
func (e *Engine) SprintPlanning(ctx context.Context, releaseDate time.Time, sprintNumber int, cfg SprintConfig, holidays []Holiday, teamID string) (Invite, error) {
	ceremony := cfg.Planning
	timeOfDay, err := parseTimeOfDay(CeremonySprintPlanning, ceremony.TimeOfDay)
	if err != nil {
		return Invite{}, err
	}

	sprintStart := dates.SprintStart(releaseDate, cfg.DurationWeeks)
	holidayDates := HolidayDates(holidays)

	start := advanceToWorkingDay(dates.ApplyOffset(sprintStart, ceremony.DayOffset, timeOfDay), holidayDates)
	return e.buildInvite(ctx, CeremonySprintPlanning, start, ceremony, releaseDate, sprintNumber, cfg, teamID)
}

// SprintReview schedules the review relative to the release date; the
// configured offset is typically negative so the review precedes the release.
func (e *Engine) SprintReview(ctx context.Context, releaseDate time.Time, sprintNumber int, cfg SprintConfig, holidays []Holiday, teamID string) (Invite, error) {
	ceremony := cfg.Review
	timeOfDay, err := parseTimeOfDay(CeremonySprintReview, ceremony.TimeOfDay)
	if err != nil {
		return Invite{}, err
	}

	start := advanceToWorkingDay(dates.ApplyOffset(releaseDate, ceremony.DayOffset, timeOfDay), HolidayDates(holidays))
	return e.buildInvite(ctx, CeremonySprintReview, start, ceremony, releaseDate, sprintNumber, cfg, teamID)
}

// Retrospective schedules the retrospective strictly after both the review
// and the sprint end. The base date is the later of the day after the review
// and the day after the sprint end, which also keeps the retrospective on a
// different calendar day than the review.
func (e *Engine) Retrospective(ctx context.Context, releaseDate time.Time, sprintNumber int, cfg SprintConfig, holidays []Holiday, teamID string) (Invite, error) {
	ceremony := cfg.Retrospective
	timeOfDay, err := parseTimeOfDay(CeremonyRetrospective, ceremony.TimeOfDay)
	if err != nil {
		return Invite{}, err
	}
	reviewTime, err := parseTimeOfDay(CeremonySprintReview, cfg.Review.TimeOfDay)
	if err != nil {
		return Invite{}, err
	}

	sprintStart := dates.SprintStart(releaseDate, cfg.DurationWeeks)
	sprintEnd := dates.SprintEnd(sprintStart, cfg.DurationWeeks)
	reviewStart := dates.ApplyOffset(releaseDate, cfg.Review.DayOffset, reviewTime)

	dayAfterReview := dates.AtStartOfDay(reviewStart.AddDate(0, 0, 1))
	dayAfterSprintEnd := dates.AtStartOfDay(sprintEnd.AddDate(0, 0, 1))
	base := dates.Later(dayAfterReview, dayAfterSprintEnd)

	start := advanceToWorkingDay(dates.ApplyOffset(base, ceremony.DayOffset, timeOfDay), HolidayDates(holidays))
	return e.buildInvite(ctx, CeremonyRetrospective, start, ceremony, releaseDate, sprintNumber, cfg, teamID)
}

// DailyStandup anchors the single visible occurrence to the first working day
// of the sprint and attaches a daily recurrence rule running until the end of
// the sprint, excluding the supplied holidays.
func (e *Engine) DailyStandup(ctx context.Context, releaseDate time.Time, sprintNumber int, cfg SprintConfig, holidays []Holiday, teamID string) (Invite, error) {
	ceremony := cfg.Standup
	timeOfDay, err := parseTimeOfDay(CeremonyDailyStandup, ceremony.TimeOfDay)
	if err != nil {
		return Invite{}, err
	}

	sprintStart := dates.SprintStart(releaseDate, cfg.DurationWeeks)
	sprintEnd := dates.SprintEnd(sprintStart, cfg.DurationWeeks)
	holidayDates := HolidayDates(holidays)

	workingDays := dates.WorkingDaysInRange(sprintStart, sprintEnd, holidayDates)
	if len(workingDays) == 0 {
		return Invite{}, fmt.Errorf("%w: sprint %d (%s..%s)", ErrNoWorkingDays, sprintNumber, dates.FormatDate(sprintStart), dates.FormatDate(sprintEnd))
	}

	start := dates.ApplyOffset(workingDays[0], 0, timeOfDay)
	invite, err := e.buildInvite(ctx, CeremonyDailyStandup, start, ceremony, releaseDate, sprintNumber, cfg, teamID)
	if err != nil {
		return Invite{}, err
	}

	rule := recurrence.Rule{
		Frequency:    recurrence.FrequencyDaily,
		Until:        dates.AtEndOfDay(sprintEnd),
		ExcludeDates: append([]time.Time(nil), holidayDates...),
		ByDay:        append([]string(nil), recurrence.WeekdayCodes...),
	}
	invite.Recurrence = &rule
	return invite, nil
}

// AddAttendees returns a copy of the invite with the attendee list replaced
// wholesale. The attendeeType parameter is accepted for interface
// compatibility but does not filter the list; see the design notes.
func AddAttendees(invite Invite, attendees []string, _ AttendeeType) Invite {
	updated := invite.clone()
	updated.Attendees = append([]string{}, attendees...)
	return updated
}

func (e *Engine) buildInvite(ctx context.Context, kind CeremonyType, start time.Time, ceremony CeremonyConfig, releaseDate time.Time, sprintNumber int, cfg SprintConfig, teamID string) (Invite, error) {
	template, err := e.templates.Load(ctx, string(kind), teamID)
	if err != nil {
		return Invite{}, fmt.Errorf("load template for %s: %w", kind, err)
	}

	sprintStart := dates.SprintStart(releaseDate, cfg.DurationWeeks)
	sprintEnd := dates.SprintEnd(sprintStart, cfg.DurationWeeks)
	vars := map[string]string{
		"sprint_number": strconv.Itoa(sprintNumber),
		"release_date":  dates.FormatDate(releaseDate),
		"sprint_start":  dates.FormatDate(sprintStart),
		"sprint_end":    dates.FormatDate(sprintEnd),
	}

	return Invite{
		ID:           e.idGenerator(),
		Type:         kind,
		Title:        templates.RenderTitle(template, vars),
		Description:  templates.Render(template, vars),
		Start:        start,
		End:          start.Add(ceremony.Duration()),
		Attendees:    []string{},
		SprintNumber: sprintNumber,
		ReleaseDate:  releaseDate,
	}, nil
}

func (e *Engine) operationLogger(ctx context.Context, operation string, attrs ...any) *slog.Logger {
	logger := logging.FromContext(ctx)
	if logger == nil {
		logger = e.logger
	}
	if logger == nil {
		logger = slog.Default()
	}
	pairs := append([]any{"operation", operation}, attrs...)
	return logger.With(pairs...)
}

func advanceToWorkingDay(start time.Time, holidays []time.Time) time.Time {
	for !dates.IsWorkingDay(start, holidays) {
		start = start.AddDate(0, 0, 1)
	}
	return start
}

func parseTimeOfDay(kind CeremonyType, value string) (dates.TimeOfDay, error) {
	timeOfDay, err := dates.ParseTimeOfDay(value)
	if err != nil {
		return dates.TimeOfDay{}, fmt.Errorf("time of day for %s: %w", kind, err)
	}
	return timeOfDay, nil
}
