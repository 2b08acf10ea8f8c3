package validate_requirements

import (
	"context"

	usecase "github.com/m04kA/SMC-TramitesService/internal/usecase/validate_requirements"
)

// RequirementsUseCase evaluates procedure requirements against the citizen's
// municipal record
type RequirementsUseCase interface {
	Execute(ctx context.Context, req *usecase.Request) (*usecase.Response, error)
}

// Logger interface for logging
type Logger interface {
	Info(format string, args ...interface{})
	Warn(format string, args ...interface{})
	Error(format string, args ...interface{})
}
