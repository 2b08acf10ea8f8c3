package procedures

// Category identifiers
const (
	CategoryFirstIssue             = "primer_otorgamiento"
	CategoryFirstIssueProfessional = "primer_otorgamiento_profesional"
	CategoryRenewal                = "renovacion"
	CategoryDuplicate              = "duplicado"
	CategoryExchange               = "canje"
	CategorySpecial                = "especial"
	CategoryModification           = "modificacion"
	CategoryGeneral                = "general"
)

// procedureTable is the static catalog. Durations are the desk-time
// estimates published by the licence department.
var procedureTable = []ProcedureType{
	// First issue, non-professional classes
	{ID: "primer_otorg_clase_b", Name: "Primer Otorgamiento - Clase B (Autos)", Category: CategoryFirstIssue, DurationMinutes: 45},
	{ID: "primer_otorg_clase_c", Name: "Primer Otorgamiento - Clase C (Motos)", Category: CategoryFirstIssue, DurationMinutes: 45},
	{ID: "primer_otorg_clase_cr", Name: "Primer Otorgamiento - Clase CR (Triciclos Motorizados)", Category: CategoryFirstIssue, DurationMinutes: 45},
	{ID: "primer_otorg_clase_b_17", Name: "Primer Otorgamiento - Clase B para 17 años", Category: CategoryFirstIssue, DurationMinutes: 45},
	{ID: "primer_otorg_clase_d", Name: "Primer Otorgamiento - Clase D (Maquinaria)", Category: CategoryFirstIssue, DurationMinutes: 45},
	{ID: "primer_otorg_clase_e", Name: "Primer Otorgamiento - Clase E (Tracción Animal)", Category: CategoryFirstIssue, DurationMinutes: 30},
	{ID: "primer_otorg_clase_f", Name: "Primer Otorgamiento - Clase F", Category: CategoryFirstIssue, DurationMinutes: 30},

	// First issue, professional classes
	{ID: "primer_otorg_clase_a1", Name: "Primer Otorgamiento - Clase A1 (Taxis)", Category: CategoryFirstIssueProfessional, DurationMinutes: 45},
	{ID: "primer_otorg_clase_a2", Name: "Primer Otorgamiento - Clase A2 (Transporte Pasajeros Medianos)", Category: CategoryFirstIssueProfessional, DurationMinutes: 45},
	{ID: "primer_otorg_clase_a3", Name: "Primer Otorgamiento - Clase A3 (Buses)", Category: CategoryFirstIssueProfessional, DurationMinutes: 45},
	{ID: "primer_otorg_clase_a4", Name: "Primer Otorgamiento - Clase A4 (Camiones Simples)", Category: CategoryFirstIssueProfessional, DurationMinutes: 45},
	{ID: "primer_otorg_clase_a5", Name: "Primer Otorgamiento - Clase A5 (Camiones Articulados)", Category: CategoryFirstIssueProfessional, DurationMinutes: 45},

	// Renewal and licence paperwork
	{ID: "licencia_conducir_renovacion", Name: "Renovación de Licencia de Conducir", Category: CategoryRenewal, DurationMinutes: 30},
	{ID: "duplicado_licencia", Name: "Duplicado de Licencia de Conducir", Category: CategoryDuplicate, DurationMinutes: 15},
	{ID: "canje_licencia_extranjera", Name: "Canje de Licencia Extranjera", Category: CategoryExchange, DurationMinutes: 30},
	{ID: "licencia_diplomatico", Name: "Licencia de Diplomático", Category: CategorySpecial, DurationMinutes: 20},
	{ID: "cambio_domicilio", Name: "Cambio de Domicilio", Category: CategoryModification, DurationMinutes: 20},
	{ID: "cambio_restriccion", Name: "Cambio de Restricción", Category: CategoryModification, DurationMinutes: 20},
	{ID: "licencia_conducir", Name: "Licencia de Conducir (General)", Category: CategoryGeneral, DurationMinutes: 30},

	// Other municipal procedures
	{ID: "permiso_circulacion", Name: "Permiso de Circulación", Category: CategoryGeneral, DurationMinutes: 20},
	{ID: "certificado_residencia", Name: "Certificado de Residencia", Category: CategoryGeneral, DurationMinutes: 15},
	{ID: "patente_comercial", Name: "Patente Comercial", Category: CategoryGeneral, DurationMinutes: 45},
	{ID: "permiso_edificacion", Name: "Permiso de Edificación", Category: CategoryGeneral, DurationMinutes: 60},
	{ID: "registro_civil", Name: "Registro Civil", Category: CategoryGeneral, DurationMinutes: 20},
	{ID: "subsidios", Name: "Subsidios Municipales", Category: CategoryGeneral, DurationMinutes: 30},
	{ID: "otros", Name: "Otros Trámites", Category: CategoryGeneral, DurationMinutes: 30},
}
