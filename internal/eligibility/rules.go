package eligibility

// requirementsTable maps each procedure type to its requirement rules and
// static document checklist. Pure data, loaded once into immutable engine
// state; rule order within a procedure is the evaluation and output order.
var requirementsTable = map[string]ProcedureRequirements{
	// -------------------------------------------------------------------
	// First issue, non-professional classes
	// -------------------------------------------------------------------
	"primer_otorg_clase_b": {
		Rules: []Rule{
			{
				Field:    FieldCourtFinesPending,
				Operator: OpEqual,
				Value:    0,
				Message:  "❌ No puede obtener licencia con multas pendientes del Juzgado de Policía Local",
				Severity: SeverityBlocking,
			},
			{
				Field:    FieldSanitationStatus,
				Operator: OpEqual,
				Value:    "al_dia",
				Message:  "⚠️ Tiene deudas pendientes en servicio de aseo",
				Severity: SeverityAdvisory,
			},
		},
		RequiredDocuments: []string{
			"Certificado de educación básica",
			"Cédula de identidad vigente",
			"Certificado de residencia",
			"Declaración jurada",
		},
	},

	"primer_otorg_clase_c": {
		Rules: []Rule{
			{
				Field:    FieldCourtFinesPending,
				Operator: OpEqual,
				Value:    0,
				Message:  "❌ No puede obtener licencia con multas pendientes del JPL",
				Severity: SeverityBlocking,
			},
		},
		RequiredDocuments: []string{
			"Certificado de educación básica",
			"Cédula de identidad vigente",
			"Certificado de residencia",
			"Declaración jurada",
		},
	},

	"primer_otorg_clase_cr": {
		Rules: []Rule{
			{
				Field:    FieldCourtFinesPending,
				Operator: OpEqual,
				Value:    0,
				Message:  "❌ No puede obtener licencia con multas pendientes",
				Severity: SeverityBlocking,
			},
		},
		RequiredDocuments: []string{
			"Cédula de identidad vigente",
			"Certificado de residencia",
			"Declaración jurada",
		},
	},

	"primer_otorg_clase_b_17": {
		Rules: []Rule{
			{
				Field:    FieldCourtFinesPending,
				Operator: OpEqual,
				Value:    0,
				Message:  "❌ No puede obtener licencia con multas pendientes",
				Severity: SeverityBlocking,
			},
		},
		RequiredDocuments: []string{
			"Certificado de educación básica",
			"Cédula de identidad vigente",
			"Certificado de residencia",
			"Declaración jurada",
			"Autorización notarial de ambos padres",
			"Certificado de escuela de conductores acreditada",
		},
	},

	// -------------------------------------------------------------------
	// First issue, special classes
	// -------------------------------------------------------------------
	"primer_otorg_clase_d": {
		Rules: []Rule{
			{
				Field:    FieldCourtFinesPending,
				Operator: OpEqual,
				Value:    0,
				Message:  "❌ No puede obtener licencia con multas pendientes",
				Severity: SeverityBlocking,
			},
		},
		RequiredDocuments: []string{
			"Cédula de identidad vigente",
			"Certificado de residencia",
			"Declaración jurada",
		},
	},

	"primer_otorg_clase_e": {
		RequiredDocuments: []string{
			"Cédula de identidad vigente",
			"Certificado de residencia",
			"Declaración jurada",
		},
	},

	"primer_otorg_clase_f": {
		RequiredDocuments: []string{
			"Cédula de identidad vigente",
			"Certificado de residencia",
			"Declaración jurada",
		},
	},

	// -------------------------------------------------------------------
	// First issue, professional classes
	// -------------------------------------------------------------------
	"primer_otorg_clase_a1": {
		Rules: []Rule{
			{
				Field:    FieldCourtFinesPending,
				Operator: OpEqual,
				Value:    0,
				Message:  "❌ No puede obtener licencia profesional con multas pendientes",
				Severity: SeverityBlocking,
			},
			{
				Field:    FieldSanitationStatus,
				Operator: OpEqual,
				Value:    "al_dia",
				Message:  "❌ Debe estar al día con pagos municipales",
				Severity: SeverityBlocking,
			},
		},
		RequiredDocuments: []string{
			"Certificado de escuela de conductores",
			"Cédula de identidad vigente",
			"Certificado de residencia",
			"Declaración jurada",
		},
	},

	"primer_otorg_clase_a2": {
		Rules: []Rule{
			{
				Field:    FieldCourtFinesPending,
				Operator: OpEqual,
				Value:    0,
				Message:  "❌ No puede obtener licencia profesional con multas pendientes",
				Severity: SeverityBlocking,
			},
		},
		RequiredDocuments: []string{
			"Certificado de escuela de conductores",
			"Cédula de identidad vigente",
			"Certificado de residencia",
			"Declaración jurada",
		},
	},

	"primer_otorg_clase_a3": {
		Rules: []Rule{
			{
				Field:    FieldCourtFinesPending,
				Operator: OpEqual,
				Value:    0,
				Message:  "❌ No puede obtener licencia profesional con multas pendientes",
				Severity: SeverityBlocking,
			},
		},
		RequiredDocuments: []string{
			"Certificado de escuela de conductores",
			"Cédula de identidad vigente",
			"Certificado de residencia",
			"Declaración jurada",
		},
	},

	"primer_otorg_clase_a4": {
		Rules: []Rule{
			{
				Field:    FieldCourtFinesPending,
				Operator: OpEqual,
				Value:    0,
				Message:  "❌ No puede obtener licencia profesional con multas pendientes",
				Severity: SeverityBlocking,
			},
		},
		RequiredDocuments: []string{
			"Certificado de escuela de conductores",
			"Cédula de identidad vigente",
			"Certificado de residencia",
			"Declaración jurada",
		},
	},

	"primer_otorg_clase_a5": {
		Rules: []Rule{
			{
				Field:    FieldCourtFinesPending,
				Operator: OpEqual,
				Value:    0,
				Message:  "❌ No puede obtener licencia profesional con multas pendientes",
				Severity: SeverityBlocking,
			},
		},
		RequiredDocuments: []string{
			"Certificado de escuela de conductores",
			"Cédula de identidad vigente",
			"Certificado de residencia",
			"Declaración jurada",
		},
	},

	// -------------------------------------------------------------------
	// Renewal and licence paperwork
	// -------------------------------------------------------------------
	"licencia_conducir_renovacion": {
		Rules: []Rule{
			{
				Field:    FieldCourtFinesPending,
				Operator: OpEqual,
				Value:    0,
				Message:  "❌ No puede renovar licencia con multas pendientes del Juzgado de Policía Local",
				Severity: SeverityBlocking,
			},
			{
				Field:    FieldLicenceFinesPending,
				Operator: OpEqual,
				Value:    0,
				Message:  "⚠️ Tiene multas de tránsito pendientes. Se recomienda pagarlas antes de renovar",
				Severity: SeverityAdvisory,
			},
			{
				Field:    FieldSanitationStatus,
				Operator: OpEqual,
				Value:    "al_dia",
				Message:  "⚠️ Tiene deudas pendientes en servicio de aseo",
				Severity: SeverityAdvisory,
			},
		},
		RequiredDocuments: []string{
			"Cédula de identidad vigente",
			"Declaración jurada",
		},
	},

	"duplicado_licencia": {
		Rules: []Rule{
			{
				Field:    FieldLicenceValid,
				Operator: OpEqual,
				Value:    true,
				Message:  "⚠️ Debe tener una licencia vigente para solicitar duplicado",
				Severity: SeverityAdvisory,
			},
		},
		RequiredDocuments: []string{
			"Cédula de identidad vigente",
		},
	},

	"canje_licencia_extranjera": {
		Rules: []Rule{
			{
				Field:    FieldCourtFinesPending,
				Operator: OpEqual,
				Value:    0,
				Message:  "❌ No puede realizar canje con multas pendientes",
				Severity: SeverityBlocking,
			},
		},
		RequiredDocuments: []string{
			"Cédula de identidad vigente",
			"Declaración jurada",
			"Certificado de canje del MTT",
			"Licencia extranjera original",
		},
	},

	"licencia_diplomatico": {
		RequiredDocuments: []string{
			"Licencia de conducir vigente (extranjera)",
			"Documento que acredite calidad de diplomático",
		},
	},

	"cambio_domicilio": {
		RequiredDocuments: []string{
			"Cédula de identidad vigente",
			"Certificado de residencia",
		},
	},

	"cambio_restriccion": {
		RequiredDocuments: []string{
			"Cédula de identidad vigente",
			"Declaración jurada",
		},
	},

	// -------------------------------------------------------------------
	// Other municipal procedures
	// -------------------------------------------------------------------
	"licencia_conducir": {
		Rules: []Rule{
			{
				Field:    FieldCourtFinesPending,
				Operator: OpEqual,
				Value:    0,
				Message:  "❌ No puede realizar trámites de licencia con multas pendientes",
				Severity: SeverityBlocking,
			},
		},
		RequiredDocuments: []string{
			"Cédula de Identidad vigente",
			"Documentos según tipo de trámite",
		},
	},

	"permiso_circulacion": {
		Rules: []Rule{
			{
				Field:    FieldCourtFinesPending,
				Operator: OpEqual,
				Value:    0,
				Message:  "❌ No puede obtener permiso de circulación con multas pendientes",
				Severity: SeverityBlocking,
			},
			{
				Field:    FieldSanitationStatus,
				Operator: OpEqual,
				Value:    "al_dia",
				Message:  "❌ Debe estar al día con el servicio de aseo domiciliario",
				Severity: SeverityBlocking,
			},
		},
		RequiredDocuments: []string{
			"Cédula de Identidad",
			"Certificado de revisión técnica vigente",
			"Certificado de seguro obligatorio (SOAP)",
			"Padrón del vehículo",
		},
	},

	"certificado_residencia": {
		Rules: []Rule{
			{
				Field:    FieldBuildingPermits,
				Operator: OpExists,
				Message:  "✅ Se verificará su dirección registrada en permisos de construcción",
				Severity: SeverityInformational,
			},
		},
		RequiredDocuments: []string{
			"Cédula de Identidad",
			"Cuenta de luz, agua o gas (últimos 3 meses)",
		},
	},

	"patente_comercial": {
		Rules: []Rule{
			{
				Field:    FieldSanitationStatus,
				Operator: OpEqual,
				Value:    "al_dia",
				Message:  "❌ Debe estar al día con el pago del servicio de aseo",
				Severity: SeverityBlocking,
			},
			{
				Field:    FieldCourtFinesTotal,
				Operator: OpEqual,
				Value:    0,
				Message:  "⚠️ Tiene deuda pendiente en el Juzgado de Policía Local",
				Severity: SeverityAdvisory,
			},
			{
				Field:    FieldCommercialLicences,
				Operator: OpAnyStatus,
				Value:    "vigente",
				Message:  "⚠️ Ya tiene patentes comerciales registradas. Verifique su vigencia",
				Severity: SeverityInformational,
			},
		},
		RequiredDocuments: []string{
			"Cédula de Identidad o RUT empresa",
			"Inicio de actividades (SII)",
			"Plano de ubicación del local",
			"Contrato de arriendo o escritura",
			"Autorización sanitaria (si corresponde)",
		},
	},

	"permiso_edificacion": {
		Rules: []Rule{
			{
				Field:    FieldSanitationStatus,
				Operator: OpEqual,
				Value:    "al_dia",
				Message:  "❌ Debe regularizar deudas municipales antes de solicitar permisos",
				Severity: SeverityBlocking,
			},
			{
				Field:    FieldBuildingPermits,
				Operator: OpAnyStatus,
				Value:    "en_tramite",
				Message:  "⚠️ Tiene permisos de construcción en trámite. Revise su estado",
				Severity: SeverityAdvisory,
			},
		},
		RequiredDocuments: []string{
			"Planos arquitectónicos firmados por arquitecto",
			"Planos de cálculo estructural",
			"Certificado de dominio vigente",
			"Plano de ubicación del terreno",
			"Memoria de cálculo",
			"Especificaciones técnicas",
		},
	},

	"registro_civil": {
		RequiredDocuments: []string{
			"Cédula de Identidad vigente",
			"Documentos específicos según el trámite",
		},
	},

	"subsidios": {
		Rules: []Rule{
			{
				Field:    FieldSanitationStatus,
				Operator: OpEqual,
				Value:    "al_dia",
				Message:  "⚠️ Se recomienda estar al día con pagos municipales",
				Severity: SeverityAdvisory,
			},
		},
		RequiredDocuments: []string{
			"Cédula de Identidad",
			"Certificado de residencia",
			"Ficha de Protección Social",
			"Declaración jurada simple",
			"Comprobantes de ingresos",
		},
	},

	"otros": {
		RequiredDocuments: []string{
			"Cédula de Identidad",
			"Documentos según el trámite específico",
		},
	},
}
