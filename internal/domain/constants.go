package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Business validation constants
const (
	MaxDescriptionLength        = 500
	MaxCancellationReasonLength = 500
)

// CancelledStatuses are the terminal states of reservations that were called
// off; used when filtering reservation history.
var CancelledStatuses = []ReservationStatus{
	StatusCancelled,
	StatusAnnulled,
}
