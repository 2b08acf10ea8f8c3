package check_availability

import (
	"context"

	usecase "github.com/m04kA/SMC-TramitesService/internal/usecase/check_availability"
)

// AvailabilityUseCase checks whether an appointment slot is free
type AvailabilityUseCase interface {
	Execute(ctx context.Context, req *usecase.Request) (*usecase.Response, error)
}

// Logger interface for logging
type Logger interface {
	Info(format string, args ...interface{})
	Warn(format string, args ...interface{})
	Error(format string, args ...interface{})
}
