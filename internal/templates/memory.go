package templates

import (
	"context"
	"sync"
)

// MemoryStore keeps templates in process memory. It is the default store for
// CLI runs that do not configure a template database, pre-seeded with the
// built-in templates for the four ceremony types.
type MemoryStore struct {
	mu        sync.RWMutex
	templates map[storeKey]Template
}

type storeKey struct {
	ceremonyType string
	teamID       string
}

// NewMemoryStore returns a store seeded with the built-in templates.
func NewMemoryStore() *MemoryStore {
	store := &MemoryStore{templates: make(map[storeKey]Template)}
	for _, template := range Defaults() {
		store.templates[storeKey{ceremonyType: template.CeremonyType}] = template
	}
	return store
}

// Load resolves the template for the ceremony type, preferring a
// team-specific entry over the shared one.
func (s *MemoryStore) Load(_ context.Context, ceremonyType, teamID string) (Template, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if teamID != "" {
		if template, ok := s.templates[storeKey{ceremonyType: ceremonyType, teamID: teamID}]; ok {
			return template.Clone(), nil
		}
	}
	if template, ok := s.templates[storeKey{ceremonyType: ceremonyType}]; ok {
		return template.Clone(), nil
	}
	return Template{}, ErrNotFound
}

// Put stores or replaces a template. An empty teamID targets the shared
// entry.
func (s *MemoryStore) Put(template Template, teamID string) error {
	if err := template.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	s.templates[storeKey{ceremonyType: template.CeremonyType, teamID: teamID}] = template.Clone()
	s.mu.Unlock()
	return nil
}

// Defaults returns the built-in templates for the four standard ceremonies.
func Defaults() []Template {
	return []Template{
		{
			CeremonyType: "sprint-planning",
			Title:        "Sprint {{sprint_number}} Planning",
			Description:  "Plan the scope of sprint {{sprint_number}}, running from {{sprint_start}} to {{sprint_end}} with release on {{release_date}}.",
			Agenda: []string{
				"Review sprint goal",
				"Select backlog items",
				"Estimate and commit",
			},
			Variables: []string{"sprint_number", "sprint_start", "sprint_end", "release_date"},
		},
		{
			CeremonyType: "daily-standup",
			Title:        "Sprint {{sprint_number}} Daily Standup",
			Description:  "Daily synchronization for sprint {{sprint_number}}.",
			Agenda: []string{
				"What did you do yesterday?",
				"What will you do today?",
				"Any blockers?",
			},
			Variables: []string{"sprint_number"},
		},
		{
			CeremonyType: "sprint-review",
			Title:        "Sprint {{sprint_number}} Review",
			Description:  "Demonstrate the sprint {{sprint_number}} increment ahead of the {{release_date}} release.",
			Agenda: []string{
				"Demo completed work",
				"Collect stakeholder feedback",
				"Confirm release readiness",
			},
			Variables: []string{"sprint_number", "release_date"},
		},
		{
			CeremonyType: "sprint-retrospective",
			Title:        "Sprint {{sprint_number}} Retrospective",
			Description:  "Reflect on sprint {{sprint_number}} and agree on improvements.",
			Agenda: []string{
				"What went well?",
				"What could improve?",
				"Action items",
			},
			Variables: []string{"sprint_number"},
		},
	}
}
