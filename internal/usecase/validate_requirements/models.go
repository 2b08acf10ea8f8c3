package validate_requirements

// Request asks whether the citizen currently meets a procedure's requirements
type Request struct {
	UserID          int64
	ProcedureTypeID string
}

// Response is the evaluation outcome shown on the booking form before the
// citizen commits to a slot. Field names mirror the reservation flow so the
// frontend renders both the same way.
type Response struct {
	ProcedureTypeID   string   `json:"tipo_tramite"`
	ProcedureName     string   `json:"tipo_tramite_nombre"`
	CanProceed        bool     `json:"puede_realizar"`
	Blocking          []string `json:"bloqueantes"`
	Advisories        []string `json:"advertencias"`
	Informational     []string `json:"informativos"`
	RequiredDocuments []string `json:"documentos_requeridos"`
}
