package get_user_reservations

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-TramitesService/internal/api/handlers"
	"github.com/m04kA/SMC-TramitesService/internal/api/middleware"
	"github.com/m04kA/SMC-TramitesService/internal/service/reservations"
	"github.com/m04kA/SMC-TramitesService/internal/service/reservations/models"
)

const (
	msgInvalidUserID = "ID de usuario inválido"
	msgMissingUserID = "falta el ID del usuario"
	msgInvalidStatus = "estado de reservación inválido"
	msgForbidden     = "acceso denegado"
)

type Handler struct {
	service ReservationService
	logger  Logger
}

func NewHandler(service ReservationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/usuarios/{userId}/reservaciones?estado=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	targetUserID, err := strconv.ParseInt(vars["userId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /usuarios/{id}/reservaciones - Invalid user ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidUserID)
		return
	}

	callerID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /usuarios/{id}/reservaciones - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	req := &models.GetUserReservationsRequest{
		UserID:   targetUserID,
		CallerID: callerID,
	}
	if status := r.URL.Query().Get("estado"); status != "" {
		req.Status = &status
	}

	resp, err := h.service.GetUserReservations(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrAccessDenied):
			h.logger.Warn("GET /usuarios/{id}/reservaciones - Access denied: target=%d, caller=%d",
				targetUserID, callerID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, reservations.ErrInvalidInput):
			h.logger.Warn("GET /usuarios/{id}/reservaciones - Invalid status filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("GET /usuarios/{id}/reservaciones - Failed: user_id=%d, error=%v", targetUserID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /usuarios/{id}/reservaciones - Retrieved %d reservations for user_id=%d",
		len(resp.Reservations), targetUserID)
	handlers.RespondJSON(w, http.StatusOK, resp)
}
