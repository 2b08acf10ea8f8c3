package create_reservation

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-TramitesService/internal/api/handlers"
	"github.com/m04kA/SMC-TramitesService/internal/api/middleware"
	createReservation "github.com/m04kA/SMC-TramitesService/internal/usecase/create_reservation"
)

const (
	msgInvalidRequestBody = "cuerpo de la solicitud inválido"
	msgInvalidDate        = "formato de fecha inválido, se espera YYYY-MM-DD"
	msgInvalidTime        = "formato de hora inválido, se espera HH:MM"
	msgMissingUserID      = "falta el ID del usuario"
	msgUserNotFound       = "usuario no encontrado"
	msgUnknownProcedure   = "tipo de trámite no reconocido"
	msgDateInPast         = "la fecha de la reservación ya pasó"
	msgInvalidInput       = "datos de la reservación inválidos"
)

// IneligibleResponse carries the blocking findings back to the citizen
type IneligibleResponse struct {
	Message  string   `json:"mensaje"`
	Blocking []string `json:"bloqueantes"`
}

// ConflictResponse carries the occupied-slot details back to the citizen
type ConflictResponse struct {
	Message string      `json:"mensaje"`
	With    interface{} `json:"conflicto,omitempty"`
}

type Handler struct {
	useCase CreateReservationUseCase
	logger  Logger
}

func NewHandler(useCase CreateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservaciones
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /reservaciones - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservaciones - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /reservaciones - Failed to parse request: %v", err)
		if req.StartTime != "" && len(req.StartTime) != 5 {
			handlers.RespondBadRequest(w, msgInvalidTime)
		} else {
			handlers.RespondBadRequest(w, msgInvalidDate)
		}
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		var ineligible *createReservation.IneligibleError
		var conflict *createReservation.ConflictError

		switch {
		case errors.As(err, &ineligible):
			h.logger.Warn("POST /reservaciones - Citizen blocked: user_id=%d, procedure=%s",
				userID, req.ProcedureTypeID)
			handlers.RespondJSON(w, http.StatusUnprocessableEntity, IneligibleResponse{
				Message:  "No cumple los requisitos para realizar este trámite",
				Blocking: ineligible.Finding.Blocking,
			})

		case errors.As(err, &conflict):
			h.logger.Warn("POST /reservaciones - Slot conflict: user_id=%d, date=%s, time=%s",
				userID, req.Date, req.StartTime)
			handlers.RespondJSON(w, http.StatusConflict, ConflictResponse{
				Message: conflict.Report.Message,
				With:    conflict.Report.With,
			})

		case errors.Is(err, createReservation.ErrUserNotFound):
			h.logger.Warn("POST /reservaciones - User not found: user_id=%d", userID)
			handlers.RespondNotFound(w, msgUserNotFound)

		case errors.Is(err, createReservation.ErrUnknownProcedureType):
			h.logger.Warn("POST /reservaciones - Unknown procedure: %s", req.ProcedureTypeID)
			handlers.RespondBadRequest(w, msgUnknownProcedure)

		case errors.Is(err, createReservation.ErrInvalidDate):
			h.logger.Warn("POST /reservaciones - Date in past: user_id=%d, date=%s", userID, req.Date)
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, createReservation.ErrInvalidInput):
			h.logger.Warn("POST /reservaciones - Invalid input: user_id=%d: %v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /reservaciones - Failed to create reservation: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservaciones - Reservation created: reservation_id=%d, user_id=%d", result.ID, userID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
