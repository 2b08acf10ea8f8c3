package validate_requirements

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-TramitesService/internal/api/handlers"
	"github.com/m04kA/SMC-TramitesService/internal/api/middleware"
	usecase "github.com/m04kA/SMC-TramitesService/internal/usecase/validate_requirements"
)

const (
	msgMissingUserID      = "falta el ID del usuario"
	msgInvalidRequestBody = "cuerpo de la solicitud inválido"
	msgUserNotFound       = "usuario no encontrado"
	msgRecordNotFound     = "no se encontraron antecedentes municipales para el usuario"
	msgUnknownProcedure   = "tipo de trámite no reconocido"
	msgInvalidInput       = "datos de la solicitud inválidos"
)

type Handler struct {
	usecase RequirementsUseCase
	logger  Logger
}

func NewHandler(uc RequirementsUseCase, logger Logger) *Handler {
	return &Handler{
		usecase: uc,
		logger:  logger,
	}
}

// Handle POST /api/v1/tramites/validar-requisitos
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /tramites/validar-requisitos - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req ValidateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /tramites/validar-requisitos - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	resp, err := h.usecase.Execute(r.Context(), &usecase.Request{
		UserID:          userID,
		ProcedureTypeID: req.ProcedureTypeID,
	})
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrUserNotFound):
			h.logger.Warn("POST /tramites/validar-requisitos - User not found: user_id=%d", userID)
			handlers.RespondNotFound(w, msgUserNotFound)

		case errors.Is(err, usecase.ErrRecordNotFound):
			h.logger.Warn("POST /tramites/validar-requisitos - Record not found: user_id=%d", userID)
			handlers.RespondNotFound(w, msgRecordNotFound)

		case errors.Is(err, usecase.ErrUnknownProcedureType):
			h.logger.Warn("POST /tramites/validar-requisitos - Unknown procedure type: %s", req.ProcedureTypeID)
			handlers.RespondBadRequest(w, msgUnknownProcedure)

		case errors.Is(err, usecase.ErrInvalidInput):
			h.logger.Warn("POST /tramites/validar-requisitos - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /tramites/validar-requisitos - Failed: user_id=%d, procedure=%s, error=%v",
				userID, req.ProcedureTypeID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /tramites/validar-requisitos - Evaluated: user_id=%d, procedure=%s, can_proceed=%t",
		userID, req.ProcedureTypeID, resp.CanProceed)
	handlers.RespondJSON(w, http.StatusOK, resp)
}
