package validate_requirements

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-TramitesService/internal/eligibility"
	authClient "github.com/m04kA/SMC-TramitesService/internal/integrations/authservice"
	municipalClient "github.com/m04kA/SMC-TramitesService/internal/integrations/municipalservice"
)

// UseCase evaluates a procedure's requirements against the citizen's current
// municipal record, without touching any reservation.
type UseCase struct {
	authClient      AuthServiceClient
	municipalClient MunicipalServiceClient
	engine          EligibilityEngine
	catalog         ProcedureCatalog
	logger          Logger
}

// NewUseCase creates the requirements-validation usecase
func NewUseCase(
	authClient AuthServiceClient,
	municipalClient MunicipalServiceClient,
	engine EligibilityEngine,
	catalog ProcedureCatalog,
	logger Logger,
) *UseCase {
	return &UseCase{
		authClient:      authClient,
		municipalClient: municipalClient,
		engine:          engine,
		catalog:         catalog,
		logger:          logger,
	}
}

// Execute runs the evaluation
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ValidateRequirements: user=%d, procedure=%s", req.UserID, req.ProcedureTypeID)

	if req.UserID <= 0 {
		return nil, fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}
	if req.ProcedureTypeID == "" {
		return nil, fmt.Errorf("%w: procedure type is required", ErrInvalidInput)
	}

	user, err := uc.authClient.GetUser(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, authClient.ErrUserNotFound) {
			uc.logger.Warn("ValidateRequirements: user id=%d not found", req.UserID)
			return nil, ErrUserNotFound
		}
		uc.logger.Error("ValidateRequirements: failed to get user id=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: failed to get user: %v", ErrInternal, err)
	}

	snapshot, err := uc.municipalClient.GetRecordSnapshot(ctx, user.RUT)
	if err != nil {
		if errors.Is(err, municipalClient.ErrRecordNotFound) {
			uc.logger.Warn("ValidateRequirements: no municipal record for user=%d", req.UserID)
			return nil, ErrRecordNotFound
		}
		uc.logger.Error("ValidateRequirements: failed to get municipal record for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: failed to get municipal record: %v", ErrInternal, err)
	}

	finding, err := uc.engine.Evaluate(req.ProcedureTypeID, snapshot)
	if err != nil {
		if errors.Is(err, eligibility.ErrUnknownProcedureType) {
			uc.logger.Warn("ValidateRequirements: unknown procedure type %q", req.ProcedureTypeID)
			return nil, ErrUnknownProcedureType
		}
		uc.logger.Error("ValidateRequirements: evaluation failed for procedure=%s: %v", req.ProcedureTypeID, err)
		return nil, fmt.Errorf("%w: evaluation failed: %v", ErrInternal, err)
	}

	uc.logger.Info("ValidateRequirements: user=%d, procedure=%s, canProceed=%t, blocking=%d, advisories=%d",
		req.UserID, req.ProcedureTypeID, finding.CanProceed, len(finding.Blocking), len(finding.Advisories))

	return &Response{
		ProcedureTypeID:   req.ProcedureTypeID,
		ProcedureName:     uc.catalog.DisplayName(req.ProcedureTypeID),
		CanProceed:        finding.CanProceed,
		Blocking:          finding.Blocking,
		Advisories:        finding.Advisories,
		Informational:     finding.Informational,
		RequiredDocuments: finding.RequiredDocuments,
	}, nil
}
