package create_reservation

import (
	"time"

	"github.com/m04kA/SMC-TramitesService/pkg/types"
)

// Request asks to book an appointment for a municipal procedure
type Request struct {
	UserID          int64            // citizen booking the appointment
	ProcedureTypeID string           // catalog key, e.g. "licencia_conducir_renovacion"
	Date            time.Time        // appointment date (no time component)
	StartTime       types.TimeString // slot start, e.g. "09:15"
	Description     string           // optional free-form note
}

// Response is the created reservation plus the non-blocking findings the
// citizen should see (advisories and the document checklist).
type Response struct {
	ID              int64
	UserID          int64
	UserName        string
	ProcedureTypeID string
	ProcedureName   string
	Date            time.Time
	StartTime       types.TimeString
	EndTime         types.TimeString
	DurationMinutes int
	Description     string
	Status          string

	Advisories        []string
	Informational     []string
	RequiredDocuments []string

	CreatedAt time.Time
	UpdatedAt time.Time
}
