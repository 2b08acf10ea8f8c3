package models

import (
	"errors"
	"time"

	"github.com/m04kA/SMC-TramitesService/internal/domain"
)

var (
	// ErrInvalidStatus is returned when a status string is not a known state
	ErrInvalidStatus = errors.New("invalid reservation status")
)

// Request models

// CancelReservationRequest asks to cancel a reservation.
// Staff cancelling someone else's reservation annuls it instead.
type CancelReservationRequest struct {
	UserID int64  `json:"usuario_id"`
	Reason string `json:"motivo_cancelacion"`
}

// UpdateStatusRequest transitions a reservation to a new state (staff only)
type UpdateStatusRequest struct {
	UserID int64  `json:"usuario_id"`
	Status string `json:"estado"`
}

// GetUserReservationsRequest lists a user's reservation history.
// CallerID is the authenticated user making the request; listing someone
// else's history requires a staff role.
type GetUserReservationsRequest struct {
	UserID   int64   `json:"usuario_id"`
	CallerID int64   `json:"-"`
	Status   *string `json:"estado,omitempty"`
}

// GetCalendarReservationsRequest lists reservations over a date range.
// IncludeInactive is honored for staff callers only.
type GetCalendarReservationsRequest struct {
	UserID          int64      `json:"usuario_id"`
	StartDate       *time.Time `json:"fecha_inicio,omitempty"`
	EndDate         *time.Time `json:"fecha_fin,omitempty"`
	Status          *string    `json:"estado,omitempty"`
	IncludeInactive bool       `json:"incluir_inactivas,omitempty"`
}

// ToDomainFilter converts the request into the repository filter
func (r *GetCalendarReservationsRequest) ToDomainFilter() (domain.ReservationsFilter, error) {
	filter := domain.ReservationsFilter{
		StartDate:       r.StartDate,
		EndDate:         r.EndDate,
		IncludeInactive: r.IncludeInactive,
	}

	if r.Status != nil {
		status, err := ToDomainStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response models

// ReservationResponse is the wire form of a reservation
type ReservationResponse struct {
	ID            int64  `json:"id"`
	UserID        int64  `json:"usuario_id"`
	UserName      string `json:"usuario_nombre"`
	ProcedureType string `json:"tipo_tramite"`
	ProcedureName string `json:"tipo_tramite_nombre"`
	Date          string `json:"fecha"` // "2025-10-15"
	StartTime     string `json:"hora"`  // "10:00"
	Description   string `json:"descripcion,omitempty"`
	Status        string `json:"estado"`

	CancellationReason *string `json:"motivo_cancelacion,omitempty"`
	CancelledAt        *string `json:"cancelada_en,omitempty"` // ISO 8601

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ReservationListResponse is a list of reservations
type ReservationListResponse struct {
	Reservations []ReservationResponse `json:"reservaciones"`
}

// FromDomainReservation converts a domain reservation into its wire form.
// procedureName is the catalog display name for the reservation's type.
func FromDomainReservation(res *domain.Reservation, procedureName string) *ReservationResponse {
	if res == nil {
		return nil
	}

	resp := &ReservationResponse{
		ID:                 res.ID,
		UserID:             res.UserID,
		UserName:           res.UserName,
		ProcedureType:      res.ProcedureTypeID,
		ProcedureName:      procedureName,
		Date:               res.Date.Format(domain.DateFormat),
		StartTime:          res.StartTime.String(),
		Description:        res.Description,
		Status:             string(res.Status),
		CancellationReason: res.CancellationReason,
		CreatedAt:          res.CreatedAt,
		UpdatedAt:          res.UpdatedAt,
	}

	if res.CancelledAt != nil {
		cancelledStr := res.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledStr
	}

	return resp
}

// ToDomainStatus converts a status string into domain.ReservationStatus
func ToDomainStatus(status string) (domain.ReservationStatus, error) {
	s := domain.ReservationStatus(status)
	if !domain.ValidStatus(s) {
		return "", ErrInvalidStatus
	}
	return s, nil
}
