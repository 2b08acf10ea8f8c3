package domain

import (
	"time"

	"github.com/m04kA/SMC-TramitesService/pkg/types"
)

// ReservationStatus represents the lifecycle state of a reservation
type ReservationStatus string

const (
	// StatusActive is a confirmed, upcoming reservation; it occupies its time slot
	StatusActive ReservationStatus = "activa"
	// StatusCancelled means the citizen called the reservation off
	StatusCancelled ReservationStatus = "cancelada"
	// StatusCompleted means the procedure took place
	StatusCompleted ReservationStatus = "completada"
	// StatusAnnulled means municipal staff voided the reservation
	StatusAnnulled ReservationStatus = "anulada"
)

// ValidStatus reports whether s is a known reservation status
func ValidStatus(s ReservationStatus) bool {
	switch s {
	case StatusActive, StatusCancelled, StatusCompleted, StatusAnnulled:
		return true
	}
	return false
}

// Reservation represents a citizen's appointment for a municipal procedure
type Reservation struct {
	ID              int64
	Date            time.Time        // calendar date, no time component
	StartTime       types.TimeString // "HH:MM"
	ProcedureTypeID string
	UserID          int64
	UserName        string // denormalized for history and conflict messages
	Description     string
	Status          ReservationStatus

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the reservation occupies its time slot.
// Only active reservations participate in conflict detection.
func (r *Reservation) IsActive() bool {
	return r.Status == StatusActive
}

// CanBeCancelled returns true if the reservation can still be called off
func (r *Reservation) CanBeCancelled() bool {
	return r.Status == StatusActive
}

// CanBeUpdated returns true if the reservation can still be rescheduled
func (r *Reservation) CanBeUpdated() bool {
	return r.Status == StatusActive
}

// IsCancelled returns true if the reservation was called off by either side
func (r *Reservation) IsCancelled() bool {
	return r.Status == StatusCancelled || r.Status == StatusAnnulled
}
