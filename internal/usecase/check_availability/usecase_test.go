package check_availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TramitesService/internal/domain"
	"github.com/m04kA/SMC-TramitesService/internal/procedures"
	"github.com/m04kA/SMC-TramitesService/internal/scheduling"
	"github.com/m04kA/SMC-TramitesService/pkg/ptr"
	"github.com/m04kA/SMC-TramitesService/pkg/types"
)

type stubRepo struct {
	existing []*domain.Reservation
}

func (s *stubRepo) ListActiveByDate(_ context.Context, _ time.Time) ([]*domain.Reservation, error) {
	return s.existing, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newUseCase(t *testing.T, existing []*domain.Reservation) *UseCase {
	t.Helper()

	catalog, err := procedures.New(procedures.DefaultDurationMinutes, true)
	require.NoError(t, err)

	return NewUseCase(&stubRepo{existing: existing}, scheduling.NewDetector(catalog), nopLogger{})
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestExecute_FreeSlot(t *testing.T) {
	uc := newUseCase(t, []*domain.Reservation{
		{
			ID:              11,
			Date:            date(2025, 10, 15),
			StartTime:       types.TimeString("09:00"),
			ProcedureTypeID: "licencia_conducir_renovacion",
			Status:          domain.StatusActive,
		},
	})

	resp, err := uc.Execute(context.Background(), &Request{
		ProcedureTypeID: "licencia_conducir_renovacion",
		Date:            date(2025, 10, 15),
		StartTime:       types.TimeString("09:30"),
	})
	require.NoError(t, err)

	assert.True(t, resp.Available)
	assert.Nil(t, resp.Conflict)
	assert.Contains(t, resp.Message, "disponible")
}

func TestExecute_OccupiedSlot(t *testing.T) {
	uc := newUseCase(t, []*domain.Reservation{
		{
			ID:              11,
			Date:            date(2025, 10, 15),
			StartTime:       types.TimeString("09:00"),
			ProcedureTypeID: "licencia_conducir_renovacion",
			UserName:        "Pedro Rojas",
			Status:          domain.StatusActive,
		},
	})

	resp, err := uc.Execute(context.Background(), &Request{
		ProcedureTypeID: "licencia_conducir_renovacion",
		Date:            date(2025, 10, 15),
		StartTime:       types.TimeString("09:15"),
	})
	require.NoError(t, err)

	assert.False(t, resp.Available)
	require.NotNil(t, resp.Conflict)
	assert.Equal(t, int64(11), resp.Conflict.ReservationID)
	assert.Contains(t, resp.Message, "no está disponible")
}

// A reschedule must not collide with the reservation being moved.
func TestExecute_ExcludesOwnReservation(t *testing.T) {
	uc := newUseCase(t, []*domain.Reservation{
		{
			ID:              11,
			Date:            date(2025, 10, 15),
			StartTime:       types.TimeString("09:00"),
			ProcedureTypeID: "licencia_conducir_renovacion",
			Status:          domain.StatusActive,
		},
	})

	resp, err := uc.Execute(context.Background(), &Request{
		ProcedureTypeID:      "licencia_conducir_renovacion",
		Date:                 date(2025, 10, 15),
		StartTime:            types.TimeString("09:15"),
		ExcludeReservationID: ptr.Ptr(int64(11)),
	})
	require.NoError(t, err)

	assert.True(t, resp.Available)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := newUseCase(t, nil)

	cases := map[string]*Request{
		"missing procedure": {
			Date:      date(2025, 10, 15),
			StartTime: types.TimeString("09:00"),
		},
		"missing date": {
			ProcedureTypeID: "licencia_conducir_renovacion",
			StartTime:       types.TimeString("09:00"),
		},
		"malformed time": {
			ProcedureTypeID: "licencia_conducir_renovacion",
			Date:            date(2025, 10, 15),
			StartTime:       types.TimeString("25:99"),
		},
	}

	for name, req := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestExecute_MidnightCrossingRejected(t *testing.T) {
	uc := newUseCase(t, nil)

	_, err := uc.Execute(context.Background(), &Request{
		ProcedureTypeID: "licencia_conducir_renovacion",
		Date:            date(2025, 10, 15),
		StartTime:       types.TimeString("23:45"),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
