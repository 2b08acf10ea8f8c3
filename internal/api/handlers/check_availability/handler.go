package check_availability

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/m04kA/SMC-TramitesService/internal/api/handlers"
	"github.com/m04kA/SMC-TramitesService/internal/domain"
	usecase "github.com/m04kA/SMC-TramitesService/internal/usecase/check_availability"
	"github.com/m04kA/SMC-TramitesService/pkg/types"
)

const (
	msgMissingProcedure = "falta el tipo de trámite"
	msgInvalidDate      = "fecha inválida, use el formato AAAA-MM-DD"
	msgInvalidTime      = "hora inválida, use el formato HH:MM"
	msgInvalidExcludeID = "ID de reserva a excluir inválido"
	msgUnknownProcedure = "tipo de trámite no reconocido"
	msgInvalidSlot      = "horario de atención inválido"
)

type Handler struct {
	usecase AvailabilityUseCase
	logger  Logger
}

func NewHandler(uc AvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		usecase: uc,
		logger:  logger,
	}
}

// Handle GET /api/v1/disponibilidad?tipo_tramite=&fecha=&hora=&excluir_reserva=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	procedureType := query.Get("tipo_tramite")
	if procedureType == "" {
		h.logger.Warn("GET /disponibilidad - Missing tipo_tramite")
		handlers.RespondBadRequest(w, msgMissingProcedure)
		return
	}

	date, err := time.Parse(domain.DateFormat, query.Get("fecha"))
	if err != nil {
		h.logger.Warn("GET /disponibilidad - Invalid fecha=%s: %v", query.Get("fecha"), err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	startTime, err := types.NewTimeStringFromString(query.Get("hora"))
	if err != nil {
		h.logger.Warn("GET /disponibilidad - Invalid hora=%s: %v", query.Get("hora"), err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	req := &usecase.Request{
		ProcedureTypeID: procedureType,
		Date:            date,
		StartTime:       startTime,
	}

	if raw := query.Get("excluir_reserva"); raw != "" {
		excludeID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			h.logger.Warn("GET /disponibilidad - Invalid excluir_reserva=%s: %v", raw, err)
			handlers.RespondBadRequest(w, msgInvalidExcludeID)
			return
		}
		req.ExcludeReservationID = &excludeID
	}

	resp, err := h.usecase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrUnknownProcedureType):
			h.logger.Warn("GET /disponibilidad - Unknown procedure type: %s", procedureType)
			handlers.RespondBadRequest(w, msgUnknownProcedure)

		case errors.Is(err, usecase.ErrInvalidInput):
			h.logger.Warn("GET /disponibilidad - Invalid slot: %v", err)
			handlers.RespondBadRequest(w, msgInvalidSlot)

		default:
			h.logger.Error("GET /disponibilidad - Failed: procedure=%s, error=%v", procedureType, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /disponibilidad - Checked: procedure=%s, date=%s, time=%s, available=%t",
		procedureType, date.Format(domain.DateFormat), startTime, resp.Available)
	handlers.RespondJSON(w, http.StatusOK, resp)
}
