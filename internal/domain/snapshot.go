package domain

import "time"

// SanitationPaymentStatus is the payment standing of the household
// sanitation-fee account.
type SanitationPaymentStatus string

const (
	SanitationCurrent    SanitationPaymentStatus = "al_dia"
	SanitationDelinquent SanitationPaymentStatus = "moroso"
)

// Permit statuses as reported by the building-permits registry
const (
	PermitStatusCurrent    = "vigente"
	PermitStatusInProgress = "en_tramite"
	PermitStatusRejected   = "rechazado"
	PermitStatusExpired    = "expirado"
)

// CourtFine is a pending fine at the local police court (JPL)
type CourtFine struct {
	CaseNumber string
	Offense    string
	Amount     float64
	IssuedAt   time.Time
}

// DrivingLicence is the citizen's driving-licence record
type DrivingLicence struct {
	Has          bool
	Number       string
	Class        string
	Valid        bool
	ExpiresAt    time.Time
	PendingFines int     // pending traffic fines attached to the licence
	FinesAmount  float64 // total amount of those fines
}

// SanitationFee is the household sanitation-fee account
type SanitationFee struct {
	HasService         bool
	PaymentStatus      SanitationPaymentStatus
	OutstandingBalance float64
}

// BuildingPermit is one construction/building permit on record
type BuildingPermit struct {
	PermitNumber string
	Address      string
	Status       string // one of the PermitStatus* constants
	IssuedAt     time.Time
}

// CommercialLicence is one commercial licence (patente comercial) on record
type CommercialLicence struct {
	LicenceNumber string
	BusinessName  string
	Status        string // one of the PermitStatus* constants
	ValidFrom     time.Time
	ValidUntil    time.Time
}

// CitizenRecordSnapshot is a point-in-time aggregate of a citizen's municipal
// records, assembled by the municipal-data service. The eligibility engine
// treats it as read-only input and never fetches it itself.
type CitizenRecordSnapshot struct {
	CitizenID   string // RUT
	ConsultedAt time.Time

	CourtFines         []CourtFine
	DrivingLicence     DrivingLicence
	SanitationFee      SanitationFee
	BuildingPermits    []BuildingPermit
	CommercialLicences []CommercialLicence
}

// PendingCourtFines returns the number of pending JPL fines
func (s *CitizenRecordSnapshot) PendingCourtFines() int {
	return len(s.CourtFines)
}

// CourtFinesTotal returns the total amount owed to the JPL
func (s *CitizenRecordSnapshot) CourtFinesTotal() float64 {
	var total float64
	for _, f := range s.CourtFines {
		total += f.Amount
	}
	return total
}
