package authservice

import "errors"

var (
	// ErrUserNotFound is returned when the auth service has no record for the ID
	ErrUserNotFound = errors.New("user not found")

	// ErrInternal is returned on client-side failures (building or sending the request)
	ErrInternal = errors.New("authservice client: internal error")

	// ErrInvalidResponse is returned when the auth service answers with an
	// unexpected status or an undecodable body
	ErrInvalidResponse = errors.New("authservice client: invalid response")
)
