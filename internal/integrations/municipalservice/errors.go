package municipalservice

import "errors"

var (
	// ErrRecordNotFound is returned when no municipal record exists for the RUT
	ErrRecordNotFound = errors.New("municipal record not found")

	// ErrInternal is returned on client-side failures (building or sending the request)
	ErrInternal = errors.New("municipalservice client: internal error")

	// ErrInvalidResponse is returned when the service answers with an
	// unexpected status or an undecodable body
	ErrInvalidResponse = errors.New("municipalservice client: invalid response")

	// ErrServiceDegraded is returned when the municipal databases are
	// unreachable and the caller should decide whether to proceed without a
	// record check
	ErrServiceDegraded = errors.New("municipal databases unavailable: graceful degradation applied")
)
