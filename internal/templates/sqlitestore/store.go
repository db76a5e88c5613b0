// Package sqlitestore persists ceremony templates in a SQLite database so
// teams can customize invite text without rebuilding the tool.
package sqlitestore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/example/ceremony-scheduler/internal/templates"
)

const schema = `
CREATE TABLE IF NOT EXISTS ceremony_templates (
    ceremony_type TEXT NOT NULL,
    team_id       TEXT NOT NULL DEFAULT '',
    title         TEXT NOT NULL,
    description   TEXT NOT NULL,
    agenda        TEXT NOT NULL,
    variables     TEXT NOT NULL,
    PRIMARY KEY (ceremony_type, team_id)
);
`

// Store is a templates.Store backed by a SQLite database file.
type Store struct {
	db *sql.DB
}

// Open opens (creating if necessary) the template database at path, ensures
// the schema exists and seeds the built-in templates when the table is empty.
func Open(ctx context.Context, path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("sqlitestore: open %s: %w", path, err)
	}
	// SQLite tolerates a single writer best.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	store := &Store{db: db}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sqlitestore: ensure schema: %w", err)
	}
	if err := store.seedDefaults(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Load resolves the template for the ceremony type, preferring a
// team-specific row and falling back to the shared row.
func (s *Store) Load(ctx context.Context, ceremonyType, teamID string) (templates.Template, error) {
	if teamID != "" {
		template, err := s.loadRow(ctx, ceremonyType, teamID)
		if err == nil {
			return template, nil
		}
		if !errors.Is(err, templates.ErrNotFound) {
			return templates.Template{}, err
		}
	}
	return s.loadRow(ctx, ceremonyType, "")
}

// Save upserts a template. An empty teamID targets the shared row.
func (s *Store) Save(ctx context.Context, template templates.Template, teamID string) error {
	if err := template.Validate(); err != nil {
		return err
	}
	agenda, err := json.Marshal(template.Agenda)
	if err != nil {
		return fmt.Errorf("sqlitestore: encode agenda: %w", err)
	}
	variables, err := json.Marshal(template.Variables)
	if err != nil {
		return fmt.Errorf("sqlitestore: encode variables: %w", err)
	}

	const query = `
INSERT INTO ceremony_templates (ceremony_type, team_id, title, description, agenda, variables)
VALUES (?, ?, ?, ?, ?, ?)
ON CONFLICT (ceremony_type, team_id) DO UPDATE SET
    title = excluded.title,
    description = excluded.description,
    agenda = excluded.agenda,
    variables = excluded.variables
`
	if _, err := s.db.ExecContext(ctx, query, template.CeremonyType, teamID, template.Title, template.Description, string(agenda), string(variables)); err != nil {
		return fmt.Errorf("sqlitestore: save template %s/%s: %w", template.CeremonyType, teamID, err)
	}
	return nil
}

func (s *Store) loadRow(ctx context.Context, ceremonyType, teamID string) (templates.Template, error) {
	const query = `
SELECT title, description, agenda, variables
FROM ceremony_templates
WHERE ceremony_type = ? AND team_id = ?
`
	row := s.db.QueryRowContext(ctx, query, ceremonyType, teamID)

	var title, description, agendaJSON, variablesJSON string
	if err := row.Scan(&title, &description, &agendaJSON, &variablesJSON); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return templates.Template{}, templates.ErrNotFound
		}
		return templates.Template{}, fmt.Errorf("sqlitestore: load template %s/%s: %w", ceremonyType, teamID, err)
	}

	template := templates.Template{
		CeremonyType: ceremonyType,
		Title:        title,
		Description:  description,
	}
	if err := json.Unmarshal([]byte(agendaJSON), &template.Agenda); err != nil {
		return templates.Template{}, fmt.Errorf("sqlitestore: decode agenda for %s/%s: %w", ceremonyType, teamID, err)
	}
	if err := json.Unmarshal([]byte(variablesJSON), &template.Variables); err != nil {
		return templates.Template{}, fmt.Errorf("sqlitestore: decode variables for %s/%s: %w", ceremonyType, teamID, err)
	}
	if err := template.Validate(); err != nil {
		return templates.Template{}, err
	}
	return template, nil
}

func (s *Store) seedDefaults(ctx context.Context) error {
	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM ceremony_templates`).Scan(&count); err != nil {
		return fmt.Errorf("sqlitestore: count templates: %w", err)
	}
	if count > 0 {
		return nil
	}
	for _, template := range templates.Defaults() {
		if err := s.Save(ctx, template, ""); err != nil {
			return err
		}
	}
	return nil
}
