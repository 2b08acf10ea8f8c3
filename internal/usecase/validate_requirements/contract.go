package validate_requirements

import (
	"context"

	"github.com/m04kA/SMC-TramitesService/internal/domain"
	"github.com/m04kA/SMC-TramitesService/internal/eligibility"
	"github.com/m04kA/SMC-TramitesService/internal/integrations/authservice"
)

// AuthServiceClient resolves the citizen whose record is being checked
type AuthServiceClient interface {
	GetUser(ctx context.Context, userID int64) (*authservice.User, error)
}

// MunicipalServiceClient fetches the citizen's municipal record snapshot
type MunicipalServiceClient interface {
	GetRecordSnapshot(ctx context.Context, rut string) (*domain.CitizenRecordSnapshot, error)
}

// EligibilityEngine evaluates procedure requirements against a snapshot
type EligibilityEngine interface {
	Evaluate(procedureTypeID string, snapshot *domain.CitizenRecordSnapshot) (*eligibility.Finding, error)
}

// ProcedureCatalog resolves display names for responses
type ProcedureCatalog interface {
	DisplayName(procedureTypeID string) string
}

// Logger is the logging surface of the usecase
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
