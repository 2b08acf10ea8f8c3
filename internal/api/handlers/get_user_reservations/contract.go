package get_user_reservations

import (
	"context"

	"github.com/m04kA/SMC-TramitesService/internal/service/reservations/models"
)

// ReservationService reads reservation history
type ReservationService interface {
	GetUserReservations(ctx context.Context, req *models.GetUserReservationsRequest) (*models.ReservationListResponse, error)
}

// Logger interface for logging
type Logger interface {
	Info(format string, args ...interface{})
	Warn(format string, args ...interface{})
	Error(format string, args ...interface{})
}
