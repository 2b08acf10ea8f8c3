package domain

import "github.com/m04kA/SMC-TramitesService/pkg/types"

// ConflictingReservation identifies the first existing reservation whose
// occupied interval overlaps the candidate's.
type ConflictingReservation struct {
	ReservationID int64            `json:"reservacion_id"`
	StartTime     types.TimeString `json:"hora_inicio"`
	EndTime       types.TimeString `json:"hora_fin"`
	ProcedureName string           `json:"tipo_tramite_nombre"`
	UserName      string           `json:"usuario_nombre"`
}

// ConflictReport is the result of checking a candidate reservation against
// the active reservations of its date. Created fresh per check.
type ConflictReport struct {
	Conflict bool
	Message  string
	With     *ConflictingReservation // nil when Conflict is false
}
