// Package scheduling decides whether a candidate reservation collides with
// the existing reservations of its date. Pure functions over their inputs:
// nothing here blocks, persists, or mutates shared state. Callers that
// persist a reservation after a clear check must run check and insert as one
// serializable unit per date, or two concurrent requests can both pass
// against a stale snapshot and double-book the slot.
package scheduling

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-TramitesService/internal/domain"
	"github.com/m04kA/SMC-TramitesService/internal/procedures"
	"github.com/m04kA/SMC-TramitesService/pkg/types"
)

// Candidate is a proposed reservation slot
type Candidate struct {
	Date            time.Time
	StartTime       types.TimeString
	ProcedureTypeID string
}

// Detector checks candidate reservations for interval conflicts
type Detector struct {
	catalog *procedures.Catalog
}

// NewDetector creates a detector backed by the given procedure catalog
func NewDetector(catalog *procedures.Catalog) *Detector {
	return &Detector{catalog: catalog}
}

// CheckConflict computes the candidate's occupied interval
// [start, start+duration) and compares it against every active reservation on
// the same date. excludeID, when non-nil, removes one reservation from
// consideration so an edit can be re-checked against itself.
//
// The report names the first colliding reservation found; touching intervals
// (one ends exactly when the other starts) do not conflict.
func (d *Detector) CheckConflict(cand Candidate, existing []*domain.Reservation, excludeID *int64) (*domain.ConflictReport, error) {
	if err := cand.StartTime.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidStartTime, err)
	}

	duration, err := d.catalog.DurationMinutes(cand.ProcedureTypeID)
	if err != nil {
		return nil, err
	}
	if duration <= 0 {
		return nil, fmt.Errorf("%w: type %q resolves to %d minutes", ErrInvalidDuration, cand.ProcedureTypeID, duration)
	}

	candEnd, err := cand.StartTime.AddMinutes(duration)
	if err != nil {
		return nil, fmt.Errorf("%w: %s + %d minutes", ErrCrossesMidnight, cand.StartTime, duration)
	}

	for _, res := range existing {
		if excludeID != nil && res.ID == *excludeID {
			continue
		}
		if !res.IsActive() || !sameDate(res.Date, cand.Date) {
			continue
		}

		resDuration, err := d.catalog.DurationMinutes(res.ProcedureTypeID)
		if err != nil || resDuration <= 0 {
			// A stored reservation we cannot interval-ize cannot be
			// compared; skip it rather than fail the whole check.
			continue
		}
		resEnd, err := res.StartTime.AddMinutes(resDuration)
		if err != nil {
			continue
		}

		// Half-open overlap test: [a,b) and [c,d) overlap iff a < d && b > c
		if cand.StartTime.IsBefore(resEnd) && candEnd.IsAfter(res.StartTime) {
			procName := d.catalog.DisplayName(res.ProcedureTypeID)
			return &domain.ConflictReport{
				Conflict: true,
				Message: fmt.Sprintf(
					"El horario %s - %s no está disponible: se cruza con \"%s\" de %s (%s - %s)",
					cand.StartTime, candEnd, procName, res.UserName, res.StartTime, resEnd,
				),
				With: &domain.ConflictingReservation{
					ReservationID: res.ID,
					StartTime:     res.StartTime,
					EndTime:       resEnd,
					ProcedureName: procName,
					UserName:      res.UserName,
				},
			}, nil
		}
	}

	return &domain.ConflictReport{
		Conflict: false,
		Message:  fmt.Sprintf("Horario %s - %s disponible", cand.StartTime, candEnd),
	}, nil
}

func sameDate(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
