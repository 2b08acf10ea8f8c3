package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TramitesService/internal/domain"
	"github.com/m04kA/SMC-TramitesService/internal/procedures"
	"github.com/m04kA/SMC-TramitesService/pkg/ptr"
	"github.com/m04kA/SMC-TramitesService/pkg/types"
)

func newTestDetector(t *testing.T) *Detector {
	t.Helper()
	catalog, err := procedures.New(procedures.DefaultDurationMinutes, true)
	require.NoError(t, err)
	return NewDetector(catalog)
}

func activeReservation(id int64, date time.Time, start types.TimeString, procedureTypeID, userName string) *domain.Reservation {
	return &domain.Reservation{
		ID:              id,
		Date:            date,
		StartTime:       start,
		ProcedureTypeID: procedureTypeID,
		UserName:        userName,
		Status:          domain.StatusActive,
	}
}

var testDate = time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

// Existing renewal at 09:00 occupies [09:00, 09:30). A candidate at 09:15
// overlaps; a candidate at 09:30 starts exactly where it ends and does not.
func TestCheckConflict_RenewalScenario(t *testing.T) {
	d := newTestDetector(t)
	existing := []*domain.Reservation{
		activeReservation(1, testDate, "09:00", "licencia_conducir_renovacion", "María Soto"),
	}

	report, err := d.CheckConflict(Candidate{
		Date:            testDate,
		StartTime:       "09:15",
		ProcedureTypeID: "licencia_conducir_renovacion",
	}, existing, nil)
	require.NoError(t, err)
	require.True(t, report.Conflict)
	require.NotNil(t, report.With)
	assert.Equal(t, int64(1), report.With.ReservationID)
	assert.Equal(t, types.TimeString("09:00"), report.With.StartTime)
	assert.Equal(t, types.TimeString("09:30"), report.With.EndTime)
	assert.Equal(t, "Renovación de Licencia de Conducir", report.With.ProcedureName)
	assert.Equal(t, "María Soto", report.With.UserName)
	assert.Contains(t, report.Message, "09:15 - 09:45")
	assert.Contains(t, report.Message, "María Soto")

	report, err = d.CheckConflict(Candidate{
		Date:            testDate,
		StartTime:       "09:30",
		ProcedureTypeID: "licencia_conducir_renovacion",
	}, existing, nil)
	require.NoError(t, err)
	assert.False(t, report.Conflict)
	assert.Nil(t, report.With)
}

func TestCheckConflict_TouchingEndpointsDoNotConflict(t *testing.T) {
	d := newTestDetector(t)
	existing := []*domain.Reservation{
		activeReservation(7, testDate, "10:00", "licencia_conducir_renovacion", "Pedro Díaz"),
	}

	// Candidate [09:30, 10:00) ends exactly when the existing one starts
	report, err := d.CheckConflict(Candidate{Date: testDate, StartTime: "09:30", ProcedureTypeID: "licencia_conducir_renovacion"}, existing, nil)
	require.NoError(t, err)
	assert.False(t, report.Conflict)

	// Candidate [10:30, 11:00) starts exactly when the existing one ends
	report, err = d.CheckConflict(Candidate{Date: testDate, StartTime: "10:30", ProcedureTypeID: "licencia_conducir_renovacion"}, existing, nil)
	require.NoError(t, err)
	assert.False(t, report.Conflict)
}

func TestCheckConflict_DifferentDurationsPerProcedure(t *testing.T) {
	d := newTestDetector(t)
	// Building permit appointments run 60 minutes: [09:00, 10:00)
	existing := []*domain.Reservation{
		activeReservation(3, testDate, "09:00", "permiso_edificacion", "Carla Núñez"),
	}

	// A 15-minute duplicate at 09:45 still lands inside the hour
	report, err := d.CheckConflict(Candidate{Date: testDate, StartTime: "09:45", ProcedureTypeID: "duplicado_licencia"}, existing, nil)
	require.NoError(t, err)
	assert.True(t, report.Conflict)

	report, err = d.CheckConflict(Candidate{Date: testDate, StartTime: "10:00", ProcedureTypeID: "duplicado_licencia"}, existing, nil)
	require.NoError(t, err)
	assert.False(t, report.Conflict)
}

func TestCheckConflict_IgnoresOtherDatesAndInactive(t *testing.T) {
	d := newTestDetector(t)
	otherDate := testDate.AddDate(0, 0, 1)

	cancelled := activeReservation(4, testDate, "09:00", "licencia_conducir_renovacion", "Luis Rojas")
	cancelled.Status = domain.StatusCancelled
	annulled := activeReservation(5, testDate, "09:00", "licencia_conducir_renovacion", "Ana Pérez")
	annulled.Status = domain.StatusAnnulled

	existing := []*domain.Reservation{
		cancelled,
		annulled,
		activeReservation(6, otherDate, "09:00", "licencia_conducir_renovacion", "Rosa Fuentes"),
	}

	report, err := d.CheckConflict(Candidate{Date: testDate, StartTime: "09:00", ProcedureTypeID: "licencia_conducir_renovacion"}, existing, nil)
	require.NoError(t, err)
	assert.False(t, report.Conflict)
}

func TestCheckConflict_ExcludesOwnReservationOnEdit(t *testing.T) {
	d := newTestDetector(t)
	existing := []*domain.Reservation{
		activeReservation(9, testDate, "09:00", "licencia_conducir_renovacion", "María Soto"),
	}

	// Re-checking the reservation against itself must not self-conflict
	report, err := d.CheckConflict(Candidate{Date: testDate, StartTime: "09:00", ProcedureTypeID: "licencia_conducir_renovacion"}, existing, ptr.Ptr(int64(9)))
	require.NoError(t, err)
	assert.False(t, report.Conflict)

	// A different reservation at the same slot still conflicts
	report, err = d.CheckConflict(Candidate{Date: testDate, StartTime: "09:00", ProcedureTypeID: "licencia_conducir_renovacion"}, existing, ptr.Ptr(int64(42)))
	require.NoError(t, err)
	assert.True(t, report.Conflict)
}

func TestCheckConflict_FirstMatchReported(t *testing.T) {
	d := newTestDetector(t)
	existing := []*domain.Reservation{
		activeReservation(11, testDate, "09:00", "licencia_conducir_renovacion", "Primero"),
		activeReservation(12, testDate, "09:15", "licencia_conducir_renovacion", "Segundo"),
	}

	report, err := d.CheckConflict(Candidate{Date: testDate, StartTime: "09:10", ProcedureTypeID: "licencia_conducir_renovacion"}, existing, nil)
	require.NoError(t, err)
	require.True(t, report.Conflict)
	assert.Equal(t, int64(11), report.With.ReservationID)
}

func TestCheckConflict_InvalidStartTime(t *testing.T) {
	d := newTestDetector(t)

	_, err := d.CheckConflict(Candidate{Date: testDate, StartTime: "9 en punto", ProcedureTypeID: "licencia_conducir_renovacion"}, nil, nil)
	assert.ErrorIs(t, err, ErrInvalidStartTime)

	_, err = d.CheckConflict(Candidate{Date: testDate, StartTime: "", ProcedureTypeID: "licencia_conducir_renovacion"}, nil, nil)
	assert.ErrorIs(t, err, ErrInvalidStartTime)
}

func TestCheckConflict_IntervalCrossingMidnightRejected(t *testing.T) {
	d := newTestDetector(t)

	// permiso_edificacion runs 60 minutes; 23:30 + 60 ends past midnight
	_, err := d.CheckConflict(Candidate{Date: testDate, StartTime: "23:30", ProcedureTypeID: "permiso_edificacion"}, nil, nil)
	assert.ErrorIs(t, err, ErrCrossesMidnight)

	// An interval ending exactly at 00:00 of the next day is also invalid
	_, err = d.CheckConflict(Candidate{Date: testDate, StartTime: "23:30", ProcedureTypeID: "licencia_conducir_renovacion"}, nil, nil)
	assert.ErrorIs(t, err, ErrCrossesMidnight)
}

func TestCheckConflict_UnknownProcedureType(t *testing.T) {
	// Fallback enabled: unknown types get the default duration
	d := newTestDetector(t)
	report, err := d.CheckConflict(Candidate{Date: testDate, StartTime: "09:00", ProcedureTypeID: "tramite_legado_1999"}, nil, nil)
	require.NoError(t, err)
	assert.False(t, report.Conflict)

	// Strict mode: unknown types are an error
	strictCatalog, err := procedures.New(procedures.DefaultDurationMinutes, false)
	require.NoError(t, err)
	strict := NewDetector(strictCatalog)
	_, err = strict.CheckConflict(Candidate{Date: testDate, StartTime: "09:00", ProcedureTypeID: "tramite_legado_1999"}, nil, nil)
	assert.ErrorIs(t, err, procedures.ErrUnknownProcedureType)
}

func TestCheckConflict_NonOverlappingDayStaysFree(t *testing.T) {
	d := newTestDetector(t)
	existing := []*domain.Reservation{
		activeReservation(21, testDate, "09:00", "licencia_conducir_renovacion", "A"),
		activeReservation(22, testDate, "10:00", "duplicado_licencia", "B"),
		activeReservation(23, testDate, "11:00", "permiso_edificacion", "C"),
	}

	for _, start := range []types.TimeString{"08:00", "09:30", "10:15", "12:00", "15:45"} {
		report, err := d.CheckConflict(Candidate{Date: testDate, StartTime: start, ProcedureTypeID: "duplicado_licencia"}, existing, nil)
		require.NoError(t, err)
		assert.False(t, report.Conflict, "candidate at %s", start)
	}
}
