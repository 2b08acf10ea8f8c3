package create_reservation

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-TramitesService/internal/domain"
	"github.com/m04kA/SMC-TramitesService/internal/eligibility"
)

var (
	// ErrUserNotFound is returned when the auth service has no such user
	ErrUserNotFound = errors.New("create_reservation: user not found")

	// ErrUnknownProcedureType is returned for an unconfigured procedure type
	// when the fallback policy is disabled
	ErrUnknownProcedureType = errors.New("create_reservation: unknown procedure type")

	// ErrInvalidDate is returned when the reservation date is in the past
	ErrInvalidDate = errors.New("create_reservation: invalid reservation date")

	// ErrIneligible is returned when a blocking requirement is not met.
	// The full finding travels in IneligibleError.
	ErrIneligible = errors.New("create_reservation: citizen does not meet procedure requirements")

	// ErrSlotConflict is returned when the slot overlaps an active
	// reservation. The full report travels in ConflictError.
	ErrSlotConflict = errors.New("create_reservation: time slot not available")

	// ErrInvalidInput is returned on malformed request data
	ErrInvalidInput = errors.New("create_reservation: invalid input data")

	// ErrInternal is returned on unexpected downstream failures
	ErrInternal = errors.New("create_reservation: internal error")
)

// IneligibleError carries the eligibility finding that blocked the booking
type IneligibleError struct {
	Finding *eligibility.Finding
}

func (e *IneligibleError) Error() string {
	return fmt.Sprintf("%v: %d blocking findings", ErrIneligible, len(e.Finding.Blocking))
}

func (e *IneligibleError) Unwrap() error {
	return ErrIneligible
}

// ConflictError carries the conflict report for the rejected slot
type ConflictError struct {
	Report *domain.ConflictReport
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%v: %s", ErrSlotConflict, e.Report.Message)
}

func (e *ConflictError) Unwrap() error {
	return ErrSlotConflict
}
