package municipalservice

// Wire models for the municipal-data endpoint of the auth service. Field
// names follow its JSON exactly; conversion to domain types happens in
// snapshot.go.

type municipalRecord struct {
	RUT              string              `json:"rut"`
	ConsultedAt      string              `json:"fecha_consulta"`
	DrivingLicence   drivingLicence      `json:"licencia_conducir"`
	BuildingPermits  []buildingPermit    `json:"permisos_edificacion"`
	CommercialLics   []commercialLicence `json:"patentes_comerciales"`
	CourtFines       []courtFine         `json:"multas_jpl"`
	SanitationFee    sanitationFee       `json:"servicio_aseo"`
}

type drivingLicence struct {
	Has          bool    `json:"tiene_licencia"`
	Number       string  `json:"numero_licencia"`
	Class        string  `json:"clase"`
	ExpiresAt    string  `json:"fecha_vencimiento"`
	Valid        bool    `json:"vigente"`
	PendingFines int     `json:"multas_pendientes"`
	FinesAmount  float64 `json:"monto_multas"`
}

type buildingPermit struct {
	PermitNumber string `json:"numero_permiso"`
	Address      string `json:"direccion"`
	Status       string `json:"estado"`
	RequestedAt  string `json:"fecha_solicitud"`
}

type commercialLicence struct {
	LicenceNumber string `json:"numero_patente"`
	BusinessName  string `json:"nombre_comercial"`
	Status        string `json:"estado"`
	ValidFrom     string `json:"fecha_inicio"`
	ValidUntil    string `json:"fecha_vencimiento"`
}

type courtFine struct {
	CaseNumber string  `json:"numero_causa"`
	Offense    string  `json:"infraccion"`
	Amount     float64 `json:"monto"`
	Status     string  `json:"estado"`
	IssuedAt   string  `json:"fecha_infraccion"`
}

type sanitationFee struct {
	HasService         bool    `json:"tiene_servicio"`
	Current            bool    `json:"al_dia"`
	OutstandingBalance float64 `json:"monto_deuda"`
}

// ErrorResponse is the error envelope returned by the service
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
