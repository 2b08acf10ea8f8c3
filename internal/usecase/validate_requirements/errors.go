package validate_requirements

import "errors"

var (
	// ErrUserNotFound is returned when the auth service has no such user
	ErrUserNotFound = errors.New("validate_requirements: user not found")

	// ErrRecordNotFound is returned when the citizen has no municipal record
	ErrRecordNotFound = errors.New("validate_requirements: municipal record not found")

	// ErrUnknownProcedureType is returned for an unconfigured procedure type
	// when the fallback policy is disabled
	ErrUnknownProcedureType = errors.New("validate_requirements: unknown procedure type")

	// ErrInvalidInput is returned on malformed request data
	ErrInvalidInput = errors.New("validate_requirements: invalid input data")

	// ErrInternal is returned on unexpected downstream failures
	ErrInternal = errors.New("validate_requirements: internal error")
)
