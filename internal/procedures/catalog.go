// Package procedures holds the static catalog of municipal procedure types:
// stable identifier, display name, category and expected duration. The table
// is loaded once and never mutated, so the catalog is safe for concurrent
// reads without locking.
package procedures

import (
	"errors"
	"fmt"
)

// DefaultDurationMinutes is the fallback duration for procedure types that
// are not in the catalog (legacy identifiers still arrive from old clients).
const DefaultDurationMinutes = 30

// ErrUnknownProcedureType is returned for identifiers missing from the
// catalog when the unknown-type fallback is disabled.
var ErrUnknownProcedureType = errors.New("procedures: unknown procedure type")

// ProcedureType describes one bookable municipal procedure
type ProcedureType struct {
	ID              string `json:"id"`
	Name            string `json:"nombre"`
	Category        string `json:"categoria"`
	DurationMinutes int    `json:"duracion_minutos"`
}

// Catalog is an immutable lookup of procedure types
type Catalog struct {
	byID            map[string]ProcedureType
	order           []string
	defaultDuration int
	allowUnknown    bool
}

// New builds the catalog from the static table. defaultDuration is used for
// unknown identifiers when allowUnknown is true; when false, lookups for
// unknown identifiers fail with ErrUnknownProcedureType instead.
func New(defaultDuration int, allowUnknown bool) (*Catalog, error) {
	if defaultDuration <= 0 {
		defaultDuration = DefaultDurationMinutes
	}

	c := &Catalog{
		byID:            make(map[string]ProcedureType, len(procedureTable)),
		order:           make([]string, 0, len(procedureTable)),
		defaultDuration: defaultDuration,
		allowUnknown:    allowUnknown,
	}

	for _, p := range procedureTable {
		if p.DurationMinutes <= 0 {
			return nil, fmt.Errorf("procedures: type %q has non-positive duration %d", p.ID, p.DurationMinutes)
		}
		if _, ok := c.byID[p.ID]; ok {
			return nil, fmt.Errorf("procedures: duplicate type %q", p.ID)
		}
		c.byID[p.ID] = p
		c.order = append(c.order, p.ID)
	}

	return c, nil
}

// Known returns true if the identifier is in the catalog
func (c *Catalog) Known(id string) bool {
	_, ok := c.byID[id]
	return ok
}

// Get returns the procedure type for the identifier
func (c *Catalog) Get(id string) (ProcedureType, bool) {
	p, ok := c.byID[id]
	return p, ok
}

// DurationMinutes returns the expected duration for the identifier.
// Unknown identifiers get the default duration unless the fallback is
// disabled.
func (c *Catalog) DurationMinutes(id string) (int, error) {
	if p, ok := c.byID[id]; ok {
		return p.DurationMinutes, nil
	}
	if c.allowUnknown {
		return c.defaultDuration, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownProcedureType, id)
}

// DisplayName returns the human-readable name for the identifier, or the
// identifier itself when unknown.
func (c *Catalog) DisplayName(id string) string {
	if p, ok := c.byID[id]; ok {
		return p.Name
	}
	return id
}

// List returns all procedure types in table order
func (c *Catalog) List() []ProcedureType {
	out := make([]ProcedureType, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.byID[id])
	}
	return out
}
