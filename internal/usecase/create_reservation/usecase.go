package create_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-TramitesService/internal/domain"
	"github.com/m04kA/SMC-TramitesService/internal/eligibility"
	authClient "github.com/m04kA/SMC-TramitesService/internal/integrations/authservice"
	municipalClient "github.com/m04kA/SMC-TramitesService/internal/integrations/municipalservice"
	"github.com/m04kA/SMC-TramitesService/internal/procedures"
	"github.com/m04kA/SMC-TramitesService/internal/scheduling"
)

// recordUnavailableNotice is shown when the municipal databases could not be
// consulted and the booking proceeds without a requirements check.
const recordUnavailableNotice = "⚠️ No fue posible verificar sus antecedentes municipales. Los requisitos se revisarán al momento de la atención"

// UseCase books an appointment for a municipal procedure.
//
// Order matters: the citizen's requirements are checked before any slot work,
// so an ineligible citizen never holds a slot. The availability check and the
// insert then run inside one serializable transaction per date.
type UseCase struct {
	reservationRepo ReservationRepository
	authClient      AuthServiceClient
	municipalClient MunicipalServiceClient
	engine          EligibilityEngine
	detector        ConflictDetector
	catalog         ProcedureCatalog
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase creates the booking usecase
func NewUseCase(
	reservationRepo ReservationRepository,
	authClient AuthServiceClient,
	municipalClient MunicipalServiceClient,
	engine EligibilityEngine,
	detector ConflictDetector,
	catalog ProcedureCatalog,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		authClient:      authClient,
		municipalClient: municipalClient,
		engine:          engine,
		detector:        detector,
		catalog:         catalog,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute runs the booking flow
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservation: user=%d, procedure=%s, date=%s, time=%s",
		req.UserID, req.ProcedureTypeID, req.Date.Format(domain.DateFormat), req.StartTime)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	if err := validateDate(req.Date, now); err != nil {
		uc.logger.Warn("CreateReservation: date validation failed: %v", err)
		return nil, err
	}

	user, err := uc.authClient.GetUser(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, authClient.ErrUserNotFound) {
			uc.logger.Warn("CreateReservation: user id=%d not found", req.UserID)
			return nil, ErrUserNotFound
		}
		uc.logger.Error("CreateReservation: failed to get user id=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: failed to get user: %v", ErrInternal, err)
	}

	finding, err := uc.checkEligibility(ctx, req.ProcedureTypeID, user)
	if err != nil {
		return nil, err
	}

	var result *domain.Reservation

	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		existing, err := uc.reservationRepo.ListActiveByDate(txCtx, req.Date)
		if err != nil {
			uc.logger.Error("CreateReservation: failed to list reservations: %v", err)
			return fmt.Errorf("%w: failed to list reservations: %v", ErrInternal, err)
		}

		report, err := uc.detector.CheckConflict(scheduling.Candidate{
			Date:            req.Date,
			StartTime:       req.StartTime,
			ProcedureTypeID: req.ProcedureTypeID,
		}, existing, nil)
		if err != nil {
			return uc.mapDetectorError(err)
		}

		if report.Conflict {
			uc.logger.Warn("CreateReservation: slot conflict for user=%d: %s", req.UserID, report.Message)
			return &ConflictError{Report: report}
		}

		uc.logger.Info("CreateReservation: %s", report.Message)

		created, err := uc.reservationRepo.Create(txCtx, &domain.Reservation{
			UserID:          req.UserID,
			UserName:        user.Name,
			ProcedureTypeID: req.ProcedureTypeID,
			Date:            req.Date,
			StartTime:       req.StartTime,
			Description:     req.Description,
			Status:          domain.StatusActive,
		})
		if err != nil {
			uc.logger.Error("CreateReservation: failed to create reservation: %v", err)
			return fmt.Errorf("%w: failed to create reservation: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateReservation: successfully created reservation id=%d", result.ID)

	return uc.toResponse(result, finding)
}

// checkEligibility fetches the citizen's municipal record and evaluates the
// procedure's requirements. A blocking finding stops the flow; an unreachable
// municipal service degrades to an informational notice.
func (uc *UseCase) checkEligibility(ctx context.Context, procedureTypeID string, user *authClient.User) (*eligibilityOutcome, error) {
	snapshot, err := uc.municipalClient.GetRecordSnapshotWithGracefulDegradation(ctx, user.RUT)
	if err != nil {
		if errors.Is(err, municipalClient.ErrServiceDegraded) || errors.Is(err, municipalClient.ErrRecordNotFound) {
			uc.logger.Warn("CreateReservation: proceeding without requirements check for user=%d: %v", user.ID, err)
			return &eligibilityOutcome{
				informational: []string{recordUnavailableNotice},
			}, nil
		}
		uc.logger.Error("CreateReservation: failed to get municipal record for user=%d: %v", user.ID, err)
		return nil, fmt.Errorf("%w: failed to get municipal record: %v", ErrInternal, err)
	}

	finding, err := uc.engine.Evaluate(procedureTypeID, snapshot)
	if err != nil {
		if errors.Is(err, eligibility.ErrUnknownProcedureType) {
			uc.logger.Warn("CreateReservation: unknown procedure type %q", procedureTypeID)
			return nil, ErrUnknownProcedureType
		}
		uc.logger.Error("CreateReservation: eligibility evaluation failed for procedure=%s: %v", procedureTypeID, err)
		return nil, fmt.Errorf("%w: eligibility evaluation failed: %v", ErrInternal, err)
	}

	if !finding.CanProceed {
		uc.logger.Warn("CreateReservation: user=%d blocked for procedure=%s (%d findings)",
			user.ID, procedureTypeID, len(finding.Blocking))
		return nil, &IneligibleError{Finding: finding}
	}

	return &eligibilityOutcome{
		advisories:        finding.Advisories,
		informational:     finding.Informational,
		requiredDocuments: finding.RequiredDocuments,
	}, nil
}

// eligibilityOutcome is what survives a passed (or skipped) requirements check
type eligibilityOutcome struct {
	advisories        []string
	informational     []string
	requiredDocuments []string
}

func (uc *UseCase) mapDetectorError(err error) error {
	switch {
	case errors.Is(err, scheduling.ErrInvalidStartTime):
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	case errors.Is(err, scheduling.ErrCrossesMidnight):
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	case errors.Is(err, procedures.ErrUnknownProcedureType):
		return ErrUnknownProcedureType
	default:
		uc.logger.Error("CreateReservation: conflict check failed: %v", err)
		return fmt.Errorf("%w: conflict check failed: %v", ErrInternal, err)
	}
}

func (uc *UseCase) toResponse(res *domain.Reservation, outcome *eligibilityOutcome) (*Response, error) {
	duration, err := uc.catalog.DurationMinutes(res.ProcedureTypeID)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to resolve duration: %v", ErrInternal, err)
	}

	endTime, err := res.StartTime.AddMinutes(duration)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to compute end time: %v", ErrInternal, err)
	}

	return &Response{
		ID:                res.ID,
		UserID:            res.UserID,
		UserName:          res.UserName,
		ProcedureTypeID:   res.ProcedureTypeID,
		ProcedureName:     uc.catalog.DisplayName(res.ProcedureTypeID),
		Date:              res.Date,
		StartTime:         res.StartTime,
		EndTime:           endTime,
		DurationMinutes:   duration,
		Description:       res.Description,
		Status:            string(res.Status),
		Advisories:        outcome.advisories,
		Informational:     outcome.informational,
		RequiredDocuments: outcome.requiredDocuments,
		CreatedAt:         res.CreatedAt,
		UpdatedAt:         res.UpdatedAt,
	}, nil
}
