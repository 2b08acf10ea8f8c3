package create_reservation

import (
	"time"

	"github.com/m04kA/SMC-TramitesService/internal/domain"
	createReservation "github.com/m04kA/SMC-TramitesService/internal/usecase/create_reservation"
	"github.com/m04kA/SMC-TramitesService/pkg/types"
)

// CreateReservationRequest HTTP request model
type CreateReservationRequest struct {
	ProcedureTypeID string `json:"tipo_tramite"`
	Date            string `json:"fecha"` // "2025-10-15"
	StartTime       string `json:"hora"`  // "09:15"
	Description     string `json:"descripcion,omitempty"`
}

// ReservationResponse HTTP response model
type ReservationResponse struct {
	ID              int64  `json:"id"`
	UserID          int64  `json:"usuario_id"`
	UserName        string `json:"usuario_nombre"`
	ProcedureTypeID string `json:"tipo_tramite"`
	ProcedureName   string `json:"tipo_tramite_nombre"`
	Date            string `json:"fecha"`
	StartTime       string `json:"hora"`
	EndTime         string `json:"hora_fin"`
	DurationMinutes int    `json:"duracion_minutos"`
	Description     string `json:"descripcion,omitempty"`
	Status          string `json:"estado"`

	Advisories        []string `json:"advertencias"`
	Informational     []string `json:"informativos"`
	RequiredDocuments []string `json:"documentos_requeridos"`

	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// ToUseCaseRequest converts the HTTP request, parsing date and time
func (r *CreateReservationRequest) ToUseCaseRequest(userID int64) (*createReservation.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createReservation.Request{
		UserID:          userID,
		ProcedureTypeID: r.ProcedureTypeID,
		Date:            date,
		StartTime:       startTime,
		Description:     r.Description,
	}, nil
}

// FromUseCaseResponse converts the usecase response into the HTTP response
func FromUseCaseResponse(resp *createReservation.Response) *ReservationResponse {
	return &ReservationResponse{
		ID:                resp.ID,
		UserID:            resp.UserID,
		UserName:          resp.UserName,
		ProcedureTypeID:   resp.ProcedureTypeID,
		ProcedureName:     resp.ProcedureName,
		Date:              resp.Date.Format(domain.DateFormat),
		StartTime:         resp.StartTime.String(),
		EndTime:           resp.EndTime.String(),
		DurationMinutes:   resp.DurationMinutes,
		Description:       resp.Description,
		Status:            resp.Status,
		Advisories:        emptyIfNil(resp.Advisories),
		Informational:     emptyIfNil(resp.Informational),
		RequiredDocuments: emptyIfNil(resp.RequiredDocuments),
		CreatedAt:         resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:         resp.UpdatedAt.Format(time.RFC3339),
	}
}

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
