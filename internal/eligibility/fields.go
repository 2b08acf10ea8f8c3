package eligibility

import "github.com/m04kA/SMC-TramitesService/internal/domain"

// FieldSelector names one attribute of the citizen record snapshot a rule can
// test. The set is closed and enumerable: an unknown selector is a
// configuration defect detected when the rule table is loaded, not a silent
// runtime miss.
type FieldSelector string

const (
	// FieldCourtFinesPending is the number of pending JPL fines
	FieldCourtFinesPending FieldSelector = "jpl_multas_pendientes"
	// FieldCourtFinesTotal is the total amount owed to the JPL
	FieldCourtFinesTotal FieldSelector = "jpl_monto_total_deuda"
	// FieldLicenceFinesPending is the number of pending traffic fines on the licence
	FieldLicenceFinesPending FieldSelector = "licencia_multas_pendientes"
	// FieldLicenceValid is the driving-licence validity flag
	FieldLicenceValid FieldSelector = "licencia_vigente"
	// FieldSanitationStatus is the sanitation-fee payment standing
	FieldSanitationStatus FieldSelector = "aseo_estado_pago"
	// FieldSanitationBalance is the outstanding sanitation-fee balance
	FieldSanitationBalance FieldSelector = "aseo_deuda_total"
	// FieldBuildingPermits is the list of building permits on record
	FieldBuildingPermits FieldSelector = "permisos_construccion"
	// FieldCommercialLicences is the list of commercial licences on record
	FieldCommercialLicences FieldSelector = "patentes_comerciales"
)

// fieldKind is the type a selector extracts, used both to evaluate rules and
// to validate operator compatibility at load time
type fieldKind int

const (
	kindNumber fieldKind = iota
	kindString
	kindBool
	kindStatusList
)

// fieldValue is the extracted, typed value of one snapshot attribute
type fieldValue struct {
	kind     fieldKind
	number   float64
	str      string
	boolean  bool
	statuses []string // per-element statuses for list-valued fields
}

type fieldAccessor struct {
	kind    fieldKind
	extract func(*domain.CitizenRecordSnapshot) fieldValue
}

// fieldAccessors is the closed dispatch from selector to typed accessor
var fieldAccessors = map[FieldSelector]fieldAccessor{
	FieldCourtFinesPending: {kindNumber, func(s *domain.CitizenRecordSnapshot) fieldValue {
		return fieldValue{kind: kindNumber, number: float64(s.PendingCourtFines())}
	}},
	FieldCourtFinesTotal: {kindNumber, func(s *domain.CitizenRecordSnapshot) fieldValue {
		return fieldValue{kind: kindNumber, number: s.CourtFinesTotal()}
	}},
	FieldLicenceFinesPending: {kindNumber, func(s *domain.CitizenRecordSnapshot) fieldValue {
		return fieldValue{kind: kindNumber, number: float64(s.DrivingLicence.PendingFines)}
	}},
	FieldLicenceValid: {kindBool, func(s *domain.CitizenRecordSnapshot) fieldValue {
		return fieldValue{kind: kindBool, boolean: s.DrivingLicence.Valid}
	}},
	FieldSanitationStatus: {kindString, func(s *domain.CitizenRecordSnapshot) fieldValue {
		return fieldValue{kind: kindString, str: string(s.SanitationFee.PaymentStatus)}
	}},
	FieldSanitationBalance: {kindNumber, func(s *domain.CitizenRecordSnapshot) fieldValue {
		return fieldValue{kind: kindNumber, number: s.SanitationFee.OutstandingBalance}
	}},
	FieldBuildingPermits: {kindStatusList, func(s *domain.CitizenRecordSnapshot) fieldValue {
		statuses := make([]string, 0, len(s.BuildingPermits))
		for _, p := range s.BuildingPermits {
			statuses = append(statuses, p.Status)
		}
		return fieldValue{kind: kindStatusList, statuses: statuses}
	}},
	FieldCommercialLicences: {kindStatusList, func(s *domain.CitizenRecordSnapshot) fieldValue {
		statuses := make([]string, 0, len(s.CommercialLicences))
		for _, l := range s.CommercialLicences {
			statuses = append(statuses, l.Status)
		}
		return fieldValue{kind: kindStatusList, statuses: statuses}
	}},
}
