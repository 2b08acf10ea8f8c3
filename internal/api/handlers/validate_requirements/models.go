package validate_requirements

// ValidateRequest is the HTTP request body
type ValidateRequest struct {
	ProcedureTypeID string `json:"tipo_tramite"`
}
