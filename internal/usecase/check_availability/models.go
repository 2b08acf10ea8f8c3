package check_availability

import (
	"time"

	"github.com/m04kA/SMC-TramitesService/internal/domain"
	"github.com/m04kA/SMC-TramitesService/pkg/types"
)

// Request asks whether a slot is free for the given procedure type.
// ExcludeReservationID lets a reschedule skip the citizen's own reservation.
type Request struct {
	ProcedureTypeID      string
	Date                 time.Time
	StartTime            types.TimeString
	ExcludeReservationID *int64
}

// Response reports the outcome of the availability check
type Response struct {
	Available bool                          `json:"disponible"`
	Message   string                        `json:"mensaje"`
	Conflict  *domain.ConflictingReservation `json:"conflicto,omitempty"`
}
