package get_calendar_reservations

import (
	"context"

	"github.com/m04kA/SMC-TramitesService/internal/service/reservations/models"
)

// ReservationService reads the appointment calendar
type ReservationService interface {
	GetCalendarReservations(ctx context.Context, req *models.GetCalendarReservationsRequest) (*models.ReservationListResponse, error)
}

// Logger interface for logging
type Logger interface {
	Info(format string, args ...interface{})
	Warn(format string, args ...interface{})
	Error(format string, args ...interface{})
}
