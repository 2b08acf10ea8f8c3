package domain

import "time"

// ReservationsFilter narrows calendar queries over reservations.
//
// StartDate/EndDate bound the reservation date (inclusive); Status selects a
// single lifecycle state; when Status is nil and IncludeInactive is false,
// cancelled and annulled reservations are excluded.
type ReservationsFilter struct {
	StartDate       *time.Time
	EndDate         *time.Time
	Status          *ReservationStatus
	IncludeInactive bool
}
