package get_procedure_types

import (
	"github.com/m04kA/SMC-TramitesService/internal/procedures"
)

// ProcedureCatalog lists the bookable procedure types
type ProcedureCatalog interface {
	List() []procedures.ProcedureType
}

// Logger interface for logging
type Logger interface {
	Info(format string, args ...interface{})
	Warn(format string, args ...interface{})
	Error(format string, args ...interface{})
}
