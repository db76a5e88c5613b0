// Package templates provides the invite text templates the scheduling engine
// renders titles and descriptions from. Templates are looked up by ceremony
// type with an optional team override and rendered with a single-pass
// {{variable}} substitution.
package templates

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when no template exists for the requested
	// ceremony type and team combination.
	ErrNotFound = errors.New("templates: not found")
)

// Template carries the text blocks for one ceremony type.
type Template struct {
	CeremonyType string
	Title        string
	Description  string
	Agenda       []string
	// Variables lists the placeholder names the template expects, for
	// documentation purposes only; rendering substitutes whatever the caller
	// supplies.
	Variables []string
}

// Validate reports structural completeness. A template without a type, title
// or description cannot produce an invite.
func (t Template) Validate() error {
	var missing []string
	if t.CeremonyType == "" {
		missing = append(missing, "ceremonyType")
	}
	if t.Title == "" {
		missing = append(missing, "title")
	}
	if t.Description == "" {
		missing = append(missing, "description")
	}
	if t.Agenda == nil {
		missing = append(missing, "agenda")
	}
	if len(missing) > 0 {
		return fmt.Errorf("templates: incomplete template for %q: missing %v", t.CeremonyType, missing)
	}
	return nil
}

// Clone returns a copy of the template with a fresh agenda slice.
func (t Template) Clone() Template {
	clone := t
	if t.Agenda != nil {
		clone.Agenda = append([]string{}, t.Agenda...)
	}
	if t.Variables != nil {
		clone.Variables = append([]string{}, t.Variables...)
	}
	return clone
}

// Store resolves templates for the engine. Implementations must return
// ErrNotFound when the type/team combination has no template and no shared
// fallback exists.
type Store interface {
	Load(ctx context.Context, ceremonyType, teamID string) (Template, error)
}
