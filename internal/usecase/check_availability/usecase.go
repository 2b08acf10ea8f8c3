package check_availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-TramitesService/internal/domain"
	"github.com/m04kA/SMC-TramitesService/internal/procedures"
	"github.com/m04kA/SMC-TramitesService/internal/scheduling"
)

// UseCase answers "is this slot free" for the booking form. The answer is
// advisory: the authoritative check happens again inside the create flow's
// transaction, so a stale answer here can only cost the citizen a retry.
type UseCase struct {
	reservationRepo ReservationRepository
	detector        ConflictDetector
	logger          Logger
}

// NewUseCase creates the availability usecase
func NewUseCase(
	reservationRepo ReservationRepository,
	detector ConflictDetector,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		detector:        detector,
		logger:          logger,
	}
}

// Execute runs the availability check
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CheckAvailability: procedure=%s, date=%s, time=%s, exclude=%v",
		req.ProcedureTypeID, req.Date.Format(domain.DateFormat), req.StartTime, req.ExcludeReservationID)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CheckAvailability: validation failed: %v", err)
		return nil, err
	}

	existing, err := uc.reservationRepo.ListActiveByDate(ctx, req.Date)
	if err != nil {
		uc.logger.Error("CheckAvailability: failed to list reservations: %v", err)
		return nil, fmt.Errorf("%w: failed to list reservations: %v", ErrInternal, err)
	}

	report, err := uc.detector.CheckConflict(scheduling.Candidate{
		Date:            req.Date,
		StartTime:       req.StartTime,
		ProcedureTypeID: req.ProcedureTypeID,
	}, existing, req.ExcludeReservationID)
	if err != nil {
		switch {
		case errors.Is(err, scheduling.ErrInvalidStartTime), errors.Is(err, scheduling.ErrCrossesMidnight):
			uc.logger.Warn("CheckAvailability: invalid slot: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		case errors.Is(err, procedures.ErrUnknownProcedureType):
			uc.logger.Warn("CheckAvailability: unknown procedure type %q", req.ProcedureTypeID)
			return nil, ErrUnknownProcedureType
		default:
			uc.logger.Error("CheckAvailability: conflict check failed: %v", err)
			return nil, fmt.Errorf("%w: conflict check failed: %v", ErrInternal, err)
		}
	}

	uc.logger.Info("CheckAvailability: %s", report.Message)

	return &Response{
		Available: !report.Conflict,
		Message:   report.Message,
		Conflict:  report.With,
	}, nil
}

func validateRequest(req *Request) error {
	if req.ProcedureTypeID == "" {
		return fmt.Errorf("%w: procedure type is required", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	return nil
}
