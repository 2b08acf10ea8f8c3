package cancel_reservation

// CancelReservationRequest HTTP request model. The acting user comes from the
// auth middleware, not the body.
type CancelReservationRequest struct {
	Reason string `json:"motivo_cancelacion"`
}

// CancelReservationResponse confirms the cancellation
type CancelReservationResponse struct {
	Message string `json:"mensaje"`
}
