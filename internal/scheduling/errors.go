package scheduling

import "errors"

var (
	// ErrInvalidStartTime is returned when the candidate start time is
	// missing or not a valid HH:MM value
	ErrInvalidStartTime = errors.New("scheduling: invalid start time")

	// ErrInvalidDuration is returned when the procedure type resolves to a
	// non-positive duration
	ErrInvalidDuration = errors.New("scheduling: non-positive procedure duration")

	// ErrCrossesMidnight is returned when the candidate's occupied interval
	// would end past the end of its calendar date. Reservations are
	// same-day only; the interval is never silently truncated.
	ErrCrossesMidnight = errors.New("scheduling: interval crosses midnight")
)
