package reservations

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-TramitesService/internal/domain"
	authClient "github.com/m04kA/SMC-TramitesService/internal/integrations/authservice"
	reservationRepo "github.com/m04kA/SMC-TramitesService/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-TramitesService/internal/service/reservations/models"
)

// Service handles reservation lookups and lifecycle transitions.
// Creation goes through the create_reservation usecase instead; it needs the
// eligibility and conflict checks this service has no business repeating.
type Service struct {
	reservationRepo ReservationRepository
	authClient      AuthServiceClient
	catalog         ProcedureCatalog
	logger          Logger
}

// NewService creates a reservations service
func NewService(
	reservationRepo ReservationRepository,
	authClient AuthServiceClient,
	catalog ProcedureCatalog,
	logger Logger,
) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		authClient:      authClient,
		catalog:         catalog,
		logger:          logger,
	}
}

// GetByID fetches a reservation. Citizens only see their own reservations;
// municipal staff see all of them.
func (s *Service) GetByID(ctx context.Context, id int64, userID int64) (*models.ReservationResponse, error) {
	s.logger.Info("GetByID: fetching reservation id=%d for user=%d", id, userID)

	res, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("GetByID: reservation id=%d not found", id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("GetByID: repository error for reservation id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if err := s.checkUserAccess(ctx, res, userID); err != nil {
		s.logger.Warn("GetByID: access denied for user=%d to reservation id=%d", userID, id)
		return nil, err
	}

	s.logger.Info("GetByID: successfully fetched reservation id=%d", id)
	return models.FromDomainReservation(res, s.catalog.DisplayName(res.ProcedureTypeID)), nil
}

// GetUserReservations lists the user's reservation history, optionally
// narrowed to one status.
func (s *Service) GetUserReservations(ctx context.Context, req *models.GetUserReservationsRequest) (*models.ReservationListResponse, error) {
	s.logger.Info("GetUserReservations: fetching reservations for user=%d, status=%v", req.UserID, req.Status)

	if req.CallerID != req.UserID {
		if err := s.checkStaffAccess(ctx, req.CallerID); err != nil {
			s.logger.Warn("GetUserReservations: access denied for caller=%d to user=%d history", req.CallerID, req.UserID)
			return nil, ErrAccessDenied
		}
	}

	var domainStatus *domain.ReservationStatus
	if req.Status != nil {
		status, err := models.ToDomainStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetUserReservations: invalid status=%s for user=%d", *req.Status, req.UserID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		domainStatus = &status
	}

	reservations, err := s.reservationRepo.GetByUserID(ctx, req.UserID, domainStatus)
	if err != nil {
		s.logger.Error("GetUserReservations: repository error for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: GetUserReservations - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetUserReservations: successfully fetched %d reservations for user=%d", len(reservations), req.UserID)
	return s.toListResponse(reservations), nil
}

// GetCalendarReservations lists reservations over a date range, feeding the
// appointment calendar. Cancelled and annulled reservations are only shown to
// municipal staff who ask for them.
func (s *Service) GetCalendarReservations(ctx context.Context, req *models.GetCalendarReservationsRequest) (*models.ReservationListResponse, error) {
	s.logger.Info("GetCalendarReservations: fetching reservations for user=%d, period=%v..%v",
		req.UserID, req.StartDate, req.EndDate)

	if req.StartDate != nil && req.EndDate != nil && req.EndDate.Before(*req.StartDate) {
		s.logger.Warn("GetCalendarReservations: end date before start date for user=%d", req.UserID)
		return nil, fmt.Errorf("%w: end date before start date", ErrInvalidInput)
	}

	if req.IncludeInactive {
		if err := s.checkStaffAccess(ctx, req.UserID); err != nil {
			return nil, err
		}
	}

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("GetCalendarReservations: invalid filter for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	reservations, err := s.reservationRepo.GetWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetCalendarReservations: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetCalendarReservations - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetCalendarReservations: successfully fetched %d reservations", len(reservations))
	return s.toListResponse(reservations), nil
}

// Cancel calls a reservation off. The owner cancels it; municipal staff
// annul it, which is the administrative variant of the same transition.
func (s *Service) Cancel(ctx context.Context, reservationID int64, req *models.CancelReservationRequest) error {
	s.logger.Info("Cancel: cancelling reservation id=%d by user=%d", reservationID, req.UserID)

	res, err := s.reservationRepo.GetByID(ctx, reservationID)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("Cancel: reservation id=%d not found", reservationID)
			return ErrReservationNotFound
		}
		s.logger.Error("Cancel: repository error for reservation id=%d: %v", reservationID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if !res.CanBeCancelled() {
		s.logger.Warn("Cancel: reservation id=%d cannot be cancelled, status=%s", reservationID, res.Status)
		return ErrCannotCancel
	}

	if len(req.Reason) > domain.MaxCancellationReasonLength {
		return fmt.Errorf("%w: cancellation reason too long", ErrInvalidInput)
	}

	var cancelStatus domain.ReservationStatus
	if res.UserID == req.UserID {
		cancelStatus = domain.StatusCancelled
	} else {
		if err := s.checkStaffAccess(ctx, req.UserID); err != nil {
			s.logger.Warn("Cancel: access denied for user=%d to cancel reservation id=%d", req.UserID, reservationID)
			return ErrAccessDenied
		}
		cancelStatus = domain.StatusAnnulled
	}

	if err := s.reservationRepo.Cancel(ctx, reservationID, cancelStatus, req.Reason); err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("Cancel: reservation id=%d not found during cancellation", reservationID)
			return ErrReservationNotFound
		}
		s.logger.Error("Cancel: repository error for reservation id=%d: %v", reservationID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled reservation id=%d with status=%s", reservationID, cancelStatus)
	return nil
}

// UpdateStatus transitions a reservation to a new state. Staff only; this is
// how the counter marks a reservation completed.
func (s *Service) UpdateStatus(ctx context.Context, reservationID int64, req *models.UpdateStatusRequest) error {
	s.logger.Info("UpdateStatus: updating reservation id=%d to status=%s by user=%d",
		reservationID, req.Status, req.UserID)

	if _, err := s.reservationRepo.GetByID(ctx, reservationID); err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("UpdateStatus: reservation id=%d not found", reservationID)
			return ErrReservationNotFound
		}
		s.logger.Error("UpdateStatus: repository error for reservation id=%d: %v", reservationID, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	if err := s.checkStaffAccess(ctx, req.UserID); err != nil {
		return err
	}

	newStatus, err := models.ToDomainStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s for reservation id=%d", req.Status, reservationID)
		return fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	if err := s.reservationRepo.UpdateStatus(ctx, reservationID, newStatus); err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("UpdateStatus: reservation id=%d not found during update", reservationID)
			return ErrReservationNotFound
		}
		s.logger.Error("UpdateStatus: repository error for reservation id=%d: %v", reservationID, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateStatus: successfully updated reservation id=%d to status=%s", reservationID, newStatus)
	return nil
}

// helpers

// checkUserAccess allows the reservation owner and municipal staff
func (s *Service) checkUserAccess(ctx context.Context, res *domain.Reservation, userID int64) error {
	if res.UserID == userID {
		return nil
	}

	if err := s.checkStaffAccess(ctx, userID); err != nil {
		return ErrAccessDenied
	}

	return nil
}

// checkStaffAccess verifies the user holds an admin or employee role
func (s *Service) checkStaffAccess(ctx context.Context, userID int64) error {
	user, err := s.authClient.GetUser(ctx, userID)
	if err != nil {
		if errors.Is(err, authClient.ErrUserNotFound) {
			s.logger.Warn("checkStaffAccess: user id=%d not found", userID)
			return ErrUserNotFound
		}
		s.logger.Error("checkStaffAccess: failed to get user id=%d: %v", userID, err)
		return fmt.Errorf("%w: checkStaffAccess - failed to get user: %v", ErrInternal, err)
	}

	if !user.IsStaff() {
		s.logger.Warn("checkStaffAccess: user=%d has role=%s, staff required", userID, user.Role)
		return ErrAccessDenied
	}

	s.logger.Info("checkStaffAccess: user=%d is staff (role=%s)", userID, user.Role)
	return nil
}

func (s *Service) toListResponse(reservations []*domain.Reservation) *models.ReservationListResponse {
	resp := &models.ReservationListResponse{
		Reservations: make([]models.ReservationResponse, 0, len(reservations)),
	}

	for _, res := range reservations {
		if converted := models.FromDomainReservation(res, s.catalog.DisplayName(res.ProcedureTypeID)); converted != nil {
			resp.Reservations = append(resp.Reservations, *converted)
		}
	}

	return resp
}
