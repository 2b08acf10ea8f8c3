package get_calendar_reservations

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SMC-TramitesService/internal/api/handlers"
	"github.com/m04kA/SMC-TramitesService/internal/api/middleware"
	"github.com/m04kA/SMC-TramitesService/internal/domain"
	"github.com/m04kA/SMC-TramitesService/internal/service/reservations"
	"github.com/m04kA/SMC-TramitesService/internal/service/reservations/models"
)

const (
	msgMissingUserID = "falta el ID del usuario"
	msgInvalidDate   = "fecha inválida, use el formato AAAA-MM-DD"
	msgInvalidFilter = "filtro de búsqueda inválido"
	msgForbidden     = "acceso denegado"
	msgUserNotFound  = "usuario no encontrado"
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

// Handle GET /api/v1/reservaciones?fecha_inicio=&fecha_fin=&estado=&incluir_inactivas=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /reservaciones - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	req := &models.GetCalendarReservationsRequest{UserID: userID}

	query := r.URL.Query()

	if raw := query.Get("fecha_inicio"); raw != "" {
		startDate, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			h.logger.Warn("GET /reservaciones - Invalid fecha_inicio=%s: %v", raw, err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		req.StartDate = &startDate
	}

	if raw := query.Get("fecha_fin"); raw != "" {
		endDate, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			h.logger.Warn("GET /reservaciones - Invalid fecha_fin=%s: %v", raw, err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		req.EndDate = &endDate
	}

	if status := query.Get("estado"); status != "" {
		req.Status = &status
	}

	req.IncludeInactive = query.Get("incluir_inactivas") == "true"

	resp, err := h.service.GetCalendarReservations(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrInvalidInput):
			h.logger.Warn("GET /reservaciones - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFilter)

		case errors.Is(err, reservations.ErrAccessDenied):
			h.logger.Warn("GET /reservaciones - Access denied: user_id=%d requested inactive reservations", userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, reservations.ErrUserNotFound):
			h.logger.Warn("GET /reservaciones - User not found: user_id=%d", userID)
			handlers.RespondNotFound(w, msgUserNotFound)

		default:
			h.logger.Error("GET /reservaciones - Failed: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /reservaciones - Retrieved %d reservations for user_id=%d", len(resp.Reservations), userID)
	handlers.RespondJSON(w, http.StatusOK, resp)
}
