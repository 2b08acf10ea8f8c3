package municipalservice

import (
	"time"

	"github.com/m04kA/SMC-TramitesService/internal/domain"
)

const (
	dateLayout        = "2006-01-02"
	consultedAtLayout = "2006-01-02 15:04:05"
)

// toSnapshot converts the wire record into the domain snapshot. Court fines
// are filtered to pending ones and registry statuses are normalized to the
// domain constants; malformed dates are left zero rather than failing the
// whole record.
func toSnapshot(rec *municipalRecord) *domain.CitizenRecordSnapshot {
	snapshot := &domain.CitizenRecordSnapshot{
		CitizenID:   rec.RUT,
		ConsultedAt: parseTime(rec.ConsultedAt, consultedAtLayout),
		DrivingLicence: domain.DrivingLicence{
			Has:          rec.DrivingLicence.Has,
			Number:       rec.DrivingLicence.Number,
			Class:        rec.DrivingLicence.Class,
			Valid:        rec.DrivingLicence.Valid,
			ExpiresAt:    parseTime(rec.DrivingLicence.ExpiresAt, dateLayout),
			PendingFines: rec.DrivingLicence.PendingFines,
			FinesAmount:  rec.DrivingLicence.FinesAmount,
		},
		SanitationFee: domain.SanitationFee{
			HasService:         rec.SanitationFee.HasService,
			PaymentStatus:      domain.SanitationCurrent,
			OutstandingBalance: rec.SanitationFee.OutstandingBalance,
		},
	}

	if rec.SanitationFee.HasService && !rec.SanitationFee.Current {
		snapshot.SanitationFee.PaymentStatus = domain.SanitationDelinquent
	}

	for _, fine := range rec.CourtFines {
		if fine.Status != "PENDIENTE" {
			continue
		}
		snapshot.CourtFines = append(snapshot.CourtFines, domain.CourtFine{
			CaseNumber: fine.CaseNumber,
			Offense:    fine.Offense,
			Amount:     fine.Amount,
			IssuedAt:   parseTime(fine.IssuedAt, dateLayout),
		})
	}

	for _, permit := range rec.BuildingPermits {
		snapshot.BuildingPermits = append(snapshot.BuildingPermits, domain.BuildingPermit{
			PermitNumber: permit.PermitNumber,
			Address:      permit.Address,
			Status:       normalizePermitStatus(permit.Status),
			IssuedAt:     parseTime(permit.RequestedAt, dateLayout),
		})
	}

	for _, lic := range rec.CommercialLics {
		snapshot.CommercialLicences = append(snapshot.CommercialLicences, domain.CommercialLicence{
			LicenceNumber: lic.LicenceNumber,
			BusinessName:  lic.BusinessName,
			Status:        normalizeLicenceStatus(lic.Status),
			ValidFrom:     parseTime(lic.ValidFrom, dateLayout),
			ValidUntil:    parseTime(lic.ValidUntil, dateLayout),
		})
	}

	return snapshot
}

// normalizePermitStatus maps the building-permits registry vocabulary onto
// the domain constants.
func normalizePermitStatus(status string) string {
	switch status {
	case "Aprobado":
		return domain.PermitStatusCurrent
	case "Finalizado":
		return domain.PermitStatusExpired
	case "Rechazado":
		return domain.PermitStatusRejected
	default:
		// "En Revisión", "Pendiente de Documentación" and anything new
		return domain.PermitStatusInProgress
	}
}

func normalizeLicenceStatus(status string) string {
	if status == "VIGENTE" {
		return domain.PermitStatusCurrent
	}
	return domain.PermitStatusExpired
}

func parseTime(value, layout string) time.Time {
	if value == "" {
		return time.Time{}
	}
	t, err := time.Parse(layout, value)
	if err != nil {
		return time.Time{}
	}
	return t
}
