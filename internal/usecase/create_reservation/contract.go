package create_reservation

import (
	"context"
	"time"

	"github.com/m04kA/SMC-TramitesService/internal/domain"
	"github.com/m04kA/SMC-TramitesService/internal/eligibility"
	"github.com/m04kA/SMC-TramitesService/internal/integrations/authservice"
	"github.com/m04kA/SMC-TramitesService/internal/scheduling"
)

// ReservationRepository is the persistence surface of the usecase
type ReservationRepository interface {
	Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error)
	ListActiveByDate(ctx context.Context, date time.Time) ([]*domain.Reservation, error)
}

// AuthServiceClient resolves the citizen booking the appointment
type AuthServiceClient interface {
	GetUser(ctx context.Context, userID int64) (*authservice.User, error)
}

// MunicipalServiceClient fetches the citizen's municipal record snapshot
type MunicipalServiceClient interface {
	GetRecordSnapshotWithGracefulDegradation(ctx context.Context, rut string) (*domain.CitizenRecordSnapshot, error)
}

// EligibilityEngine evaluates procedure requirements against a snapshot
type EligibilityEngine interface {
	Evaluate(procedureTypeID string, snapshot *domain.CitizenRecordSnapshot) (*eligibility.Finding, error)
}

// ConflictDetector checks a candidate slot against existing reservations
type ConflictDetector interface {
	CheckConflict(cand scheduling.Candidate, existing []*domain.Reservation, excludeID *int64) (*domain.ConflictReport, error)
}

// ProcedureCatalog resolves display names and durations for responses
type ProcedureCatalog interface {
	DisplayName(procedureTypeID string) string
	DurationMinutes(procedureTypeID string) (int, error)
}

// TransactionManager runs the availability check and the insert as one unit
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider supplies the current time (swappable in tests)
type TimeProvider interface {
	Now() time.Time
}

// Logger is the logging surface of the usecase
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider is the production time source
type RealTimeProvider struct{}

// Now returns the current time
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
