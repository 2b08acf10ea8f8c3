package reservations

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TramitesService/internal/domain"
	reservationRepo "github.com/m04kA/SMC-TramitesService/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-TramitesService/internal/integrations/authservice"
	"github.com/m04kA/SMC-TramitesService/internal/service/reservations/models"
	"github.com/m04kA/SMC-TramitesService/pkg/ptr"
	"github.com/m04kA/SMC-TramitesService/pkg/types"
)

// mocks

type mockRepo struct {
	reservations map[int64]*domain.Reservation
	listed       []*domain.Reservation

	cancelledID     int64
	cancelledStatus domain.ReservationStatus
	cancelledReason string

	updatedID     int64
	updatedStatus domain.ReservationStatus

	lastUserID int64
	lastStatus *domain.ReservationStatus
	lastFilter domain.ReservationsFilter
}

func (m *mockRepo) Create(_ context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	return res, nil
}

func (m *mockRepo) GetByID(_ context.Context, id int64) (*domain.Reservation, error) {
	res, ok := m.reservations[id]
	if !ok {
		return nil, reservationRepo.ErrReservationNotFound
	}
	return res, nil
}

func (m *mockRepo) GetByUserID(_ context.Context, userID int64, status *domain.ReservationStatus) ([]*domain.Reservation, error) {
	m.lastUserID = userID
	m.lastStatus = status
	return m.listed, nil
}

func (m *mockRepo) GetWithFilter(_ context.Context, filter domain.ReservationsFilter) ([]*domain.Reservation, error) {
	m.lastFilter = filter
	return m.listed, nil
}

func (m *mockRepo) UpdateStatus(_ context.Context, id int64, status domain.ReservationStatus) error {
	m.updatedID = id
	m.updatedStatus = status
	return nil
}

func (m *mockRepo) Cancel(_ context.Context, id int64, status domain.ReservationStatus, reason string) error {
	m.cancelledID = id
	m.cancelledStatus = status
	m.cancelledReason = reason
	return nil
}

type mockAuth struct {
	users map[int64]*authservice.User
}

func (m *mockAuth) GetUser(_ context.Context, userID int64) (*authservice.User, error) {
	user, ok := m.users[userID]
	if !ok {
		return nil, authservice.ErrUserNotFound
	}
	return user, nil
}

type stubCatalog struct{}

func (stubCatalog) DisplayName(id string) string { return "Trámite " + id }

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

// fixtures

const (
	ownerID    = int64(7)
	strangerID = int64(8)
	staffID    = int64(100)
)

func activeReservation(id int64) *domain.Reservation {
	start, _ := types.NewTimeStringFromString("10:00")
	return &domain.Reservation{
		ID:              id,
		Date:            time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC),
		StartTime:       start,
		ProcedureTypeID: "licencia_conducir_renovacion",
		UserID:          ownerID,
		UserName:        "María González",
		Status:          domain.StatusActive,
	}
}

func newTestService(repo *mockRepo) *Service {
	auth := &mockAuth{users: map[int64]*authservice.User{
		ownerID:    {ID: ownerID, Name: "María González", Role: authservice.RoleUser},
		strangerID: {ID: strangerID, Name: "Pedro Soto", Role: authservice.RoleUser},
		staffID:    {ID: staffID, Name: "Funcionario Municipal", Role: authservice.RoleEmployee},
	}}
	return NewService(repo, auth, stubCatalog{}, noopLogger{})
}

// tests

func TestGetByID_Owner(t *testing.T) {
	repo := &mockRepo{reservations: map[int64]*domain.Reservation{1: activeReservation(1)}}
	svc := newTestService(repo)

	resp, err := svc.GetByID(context.Background(), 1, ownerID)

	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "licencia_conducir_renovacion", resp.ProcedureType)
	assert.Equal(t, "Trámite licencia_conducir_renovacion", resp.ProcedureName)
	assert.Equal(t, "2025-10-15", resp.Date)
	assert.Equal(t, "10:00", resp.StartTime)
}

func TestGetByID_StrangerDenied(t *testing.T) {
	repo := &mockRepo{reservations: map[int64]*domain.Reservation{1: activeReservation(1)}}
	svc := newTestService(repo)

	_, err := svc.GetByID(context.Background(), 1, strangerID)

	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestGetByID_StaffSeesAll(t *testing.T) {
	repo := &mockRepo{reservations: map[int64]*domain.Reservation{1: activeReservation(1)}}
	svc := newTestService(repo)

	resp, err := svc.GetByID(context.Background(), 1, staffID)

	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
}

func TestGetByID_NotFound(t *testing.T) {
	repo := &mockRepo{reservations: map[int64]*domain.Reservation{}}
	svc := newTestService(repo)

	_, err := svc.GetByID(context.Background(), 99, ownerID)

	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestCancel_OwnerCancels(t *testing.T) {
	repo := &mockRepo{reservations: map[int64]*domain.Reservation{1: activeReservation(1)}}
	svc := newTestService(repo)

	err := svc.Cancel(context.Background(), 1, &models.CancelReservationRequest{
		UserID: ownerID,
		Reason: "no puedo asistir",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), repo.cancelledID)
	assert.Equal(t, domain.StatusCancelled, repo.cancelledStatus)
	assert.Equal(t, "no puedo asistir", repo.cancelledReason)
}

func TestCancel_StaffAnnuls(t *testing.T) {
	repo := &mockRepo{reservations: map[int64]*domain.Reservation{1: activeReservation(1)}}
	svc := newTestService(repo)

	err := svc.Cancel(context.Background(), 1, &models.CancelReservationRequest{
		UserID: staffID,
		Reason: "oficina cerrada por feriado",
	})

	require.NoError(t, err)
	assert.Equal(t, domain.StatusAnnulled, repo.cancelledStatus)
}

func TestCancel_StrangerDenied(t *testing.T) {
	repo := &mockRepo{reservations: map[int64]*domain.Reservation{1: activeReservation(1)}}
	svc := newTestService(repo)

	err := svc.Cancel(context.Background(), 1, &models.CancelReservationRequest{
		UserID: strangerID,
	})

	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.Zero(t, repo.cancelledID)
}

func TestCancel_AlreadyCancelled(t *testing.T) {
	res := activeReservation(1)
	res.Status = domain.StatusCancelled
	repo := &mockRepo{reservations: map[int64]*domain.Reservation{1: res}}
	svc := newTestService(repo)

	err := svc.Cancel(context.Background(), 1, &models.CancelReservationRequest{UserID: ownerID})

	assert.ErrorIs(t, err, ErrCannotCancel)
}

func TestCancel_ReasonTooLong(t *testing.T) {
	repo := &mockRepo{reservations: map[int64]*domain.Reservation{1: activeReservation(1)}}
	svc := newTestService(repo)

	longReason := make([]byte, domain.MaxCancellationReasonLength+1)
	for i := range longReason {
		longReason[i] = 'a'
	}

	err := svc.Cancel(context.Background(), 1, &models.CancelReservationRequest{
		UserID: ownerID,
		Reason: string(longReason),
	})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdateStatus_Staff(t *testing.T) {
	repo := &mockRepo{reservations: map[int64]*domain.Reservation{1: activeReservation(1)}}
	svc := newTestService(repo)

	err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{
		UserID: staffID,
		Status: "completada",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), repo.updatedID)
	assert.Equal(t, domain.StatusCompleted, repo.updatedStatus)
}

func TestUpdateStatus_CitizenDenied(t *testing.T) {
	repo := &mockRepo{reservations: map[int64]*domain.Reservation{1: activeReservation(1)}}
	svc := newTestService(repo)

	err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{
		UserID: ownerID,
		Status: "completada",
	})

	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.Zero(t, repo.updatedID)
}

func TestUpdateStatus_InvalidStatus(t *testing.T) {
	repo := &mockRepo{reservations: map[int64]*domain.Reservation{1: activeReservation(1)}}
	svc := newTestService(repo)

	err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{
		UserID: staffID,
		Status: "pendiente",
	})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetUserReservations_OwnHistory(t *testing.T) {
	repo := &mockRepo{listed: []*domain.Reservation{activeReservation(1), activeReservation(2)}}
	svc := newTestService(repo)

	resp, err := svc.GetUserReservations(context.Background(), &models.GetUserReservationsRequest{
		UserID:   ownerID,
		CallerID: ownerID,
		Status:   ptr.Ptr("activa"),
	})

	require.NoError(t, err)
	assert.Len(t, resp.Reservations, 2)
	assert.Equal(t, ownerID, repo.lastUserID)
	require.NotNil(t, repo.lastStatus)
	assert.Equal(t, domain.StatusActive, *repo.lastStatus)
}

func TestGetUserReservations_StrangerDenied(t *testing.T) {
	repo := &mockRepo{}
	svc := newTestService(repo)

	_, err := svc.GetUserReservations(context.Background(), &models.GetUserReservationsRequest{
		UserID:   ownerID,
		CallerID: strangerID,
	})

	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestGetUserReservations_StaffSeesHistory(t *testing.T) {
	repo := &mockRepo{listed: []*domain.Reservation{activeReservation(1)}}
	svc := newTestService(repo)

	resp, err := svc.GetUserReservations(context.Background(), &models.GetUserReservationsRequest{
		UserID:   ownerID,
		CallerID: staffID,
	})

	require.NoError(t, err)
	assert.Len(t, resp.Reservations, 1)
}

func TestGetUserReservations_InvalidStatus(t *testing.T) {
	repo := &mockRepo{}
	svc := newTestService(repo)

	_, err := svc.GetUserReservations(context.Background(), &models.GetUserReservationsRequest{
		UserID:   ownerID,
		CallerID: ownerID,
		Status:   ptr.Ptr("pendiente"),
	})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetCalendarReservations_EndBeforeStart(t *testing.T) {
	repo := &mockRepo{}
	svc := newTestService(repo)

	start := time.Date(2025, 10, 20, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 10, 10, 0, 0, 0, 0, time.UTC)

	_, err := svc.GetCalendarReservations(context.Background(), &models.GetCalendarReservationsRequest{
		UserID:    ownerID,
		StartDate: &start,
		EndDate:   &end,
	})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetCalendarReservations_IncludeInactiveRequiresStaff(t *testing.T) {
	repo := &mockRepo{}
	svc := newTestService(repo)

	_, err := svc.GetCalendarReservations(context.Background(), &models.GetCalendarReservationsRequest{
		UserID:          ownerID,
		IncludeInactive: true,
	})

	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestGetCalendarReservations_FilterPassedThrough(t *testing.T) {
	repo := &mockRepo{listed: []*domain.Reservation{activeReservation(1)}}
	svc := newTestService(repo)

	start := time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 10, 31, 0, 0, 0, 0, time.UTC)

	resp, err := svc.GetCalendarReservations(context.Background(), &models.GetCalendarReservationsRequest{
		UserID:    ownerID,
		StartDate: &start,
		EndDate:   &end,
		Status:    ptr.Ptr("activa"),
	})

	require.NoError(t, err)
	assert.Len(t, resp.Reservations, 1)
	require.NotNil(t, repo.lastFilter.Status)
	assert.Equal(t, domain.StatusActive, *repo.lastFilter.Status)
	assert.Equal(t, &start, repo.lastFilter.StartDate)
}
