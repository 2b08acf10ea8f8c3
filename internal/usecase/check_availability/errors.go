package check_availability

import "errors"

var (
	// ErrUnknownProcedureType is returned for an unconfigured procedure type
	// when the fallback policy is disabled
	ErrUnknownProcedureType = errors.New("check_availability: unknown procedure type")

	// ErrInvalidInput is returned on malformed request data
	ErrInvalidInput = errors.New("check_availability: invalid input data")

	// ErrInternal is returned on unexpected downstream failures
	ErrInternal = errors.New("check_availability: internal error")
)
