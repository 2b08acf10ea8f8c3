package check_availability

import (
	"context"
	"time"

	"github.com/m04kA/SMC-TramitesService/internal/domain"
	"github.com/m04kA/SMC-TramitesService/internal/scheduling"
)

// ReservationRepository lists the reservations occupying slots on a date
type ReservationRepository interface {
	ListActiveByDate(ctx context.Context, date time.Time) ([]*domain.Reservation, error)
}

// ConflictDetector checks a candidate slot against existing reservations
type ConflictDetector interface {
	CheckConflict(cand scheduling.Candidate, existing []*domain.Reservation, excludeID *int64) (*domain.ConflictReport, error)
}

// Logger is the logging surface of the usecase
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
