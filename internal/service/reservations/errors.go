package reservations

import "errors"

var (
	// ErrReservationNotFound is returned when the reservation does not exist
	ErrReservationNotFound = errors.New("reservation not found")

	// ErrUserNotFound is returned when the auth service has no such user
	ErrUserNotFound = errors.New("user not found")

	// ErrAccessDenied is returned when the user may not act on the reservation
	ErrAccessDenied = errors.New("access denied")

	// ErrCannotCancel is returned when the reservation is no longer active
	ErrCannotCancel = errors.New("reservation cannot be cancelled")

	// ErrInvalidInput is returned on malformed request data
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned on unexpected downstream failures
	ErrInternal = errors.New("service: internal error")
)
