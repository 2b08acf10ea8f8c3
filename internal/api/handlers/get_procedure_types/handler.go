package get_procedure_types

import (
	"net/http"

	"github.com/m04kA/SMC-TramitesService/internal/api/handlers"
	"github.com/m04kA/SMC-TramitesService/internal/procedures"
)

// ProcedureTypesResponse lists the procedure types the portal offers
type ProcedureTypesResponse struct {
	ProcedureTypes []procedures.ProcedureType `json:"tipos_tramite"`
}

type Handler struct {
	catalog ProcedureCatalog
	logger  Logger
}

func NewHandler(catalog ProcedureCatalog, logger Logger) *Handler {
	return &Handler{
		catalog: catalog,
		logger:  logger,
	}
}

// Handle GET /api/v1/tramites
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	types := h.catalog.List()

	h.logger.Info("GET /tramites - Listed %d procedure types", len(types))
	handlers.RespondJSON(w, http.StatusOK, ProcedureTypesResponse{ProcedureTypes: types})
}
