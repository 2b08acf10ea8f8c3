package reservations

import (
	"context"

	"github.com/m04kA/SMC-TramitesService/internal/domain"
	"github.com/m04kA/SMC-TramitesService/internal/integrations/authservice"
)

// ReservationRepository is the persistence surface the service needs
type ReservationRepository interface {
	Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error)
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
	GetByUserID(ctx context.Context, userID int64, status *domain.ReservationStatus) ([]*domain.Reservation, error)
	GetWithFilter(ctx context.Context, filter domain.ReservationsFilter) ([]*domain.Reservation, error)
	UpdateStatus(ctx context.Context, id int64, status domain.ReservationStatus) error
	Cancel(ctx context.Context, id int64, status domain.ReservationStatus, reason string) error
}

// AuthServiceClient resolves user records for access checks
type AuthServiceClient interface {
	GetUser(ctx context.Context, userID int64) (*authservice.User, error)
}

// ProcedureCatalog resolves procedure display names for responses
type ProcedureCatalog interface {
	DisplayName(procedureTypeID string) string
}

// Logger is the logging surface of the service
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
