package create_reservation

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TramitesService/internal/domain"
	"github.com/m04kA/SMC-TramitesService/internal/eligibility"
	"github.com/m04kA/SMC-TramitesService/internal/integrations/authservice"
	"github.com/m04kA/SMC-TramitesService/internal/integrations/municipalservice"
	"github.com/m04kA/SMC-TramitesService/internal/scheduling"
	"github.com/m04kA/SMC-TramitesService/pkg/types"
)

// mocks

type mockRepo struct {
	calls    *[]string
	existing []*domain.Reservation
	created  *domain.Reservation
	listErr  error
}

func (m *mockRepo) ListActiveByDate(_ context.Context, _ time.Time) ([]*domain.Reservation, error) {
	*m.calls = append(*m.calls, "repo.ListActiveByDate")
	return m.existing, m.listErr
}

func (m *mockRepo) Create(_ context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	*m.calls = append(*m.calls, "repo.Create")
	res.ID = 42
	res.CreatedAt = time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC)
	res.UpdatedAt = res.CreatedAt
	m.created = res
	return res, nil
}

type mockAuth struct {
	user *authservice.User
	err  error
}

func (m *mockAuth) GetUser(_ context.Context, _ int64) (*authservice.User, error) {
	return m.user, m.err
}

type mockMunicipal struct {
	snapshot *domain.CitizenRecordSnapshot
	err      error
}

func (m *mockMunicipal) GetRecordSnapshotWithGracefulDegradation(_ context.Context, _ string) (*domain.CitizenRecordSnapshot, error) {
	return m.snapshot, m.err
}

type mockEngine struct {
	calls   *[]string
	finding *eligibility.Finding
	err     error
}

func (m *mockEngine) Evaluate(_ string, _ *domain.CitizenRecordSnapshot) (*eligibility.Finding, error) {
	*m.calls = append(*m.calls, "engine.Evaluate")
	return m.finding, m.err
}

type mockDetector struct {
	calls  *[]string
	report *domain.ConflictReport
	err    error
}

func (m *mockDetector) CheckConflict(_ scheduling.Candidate, _ []*domain.Reservation, _ *int64) (*domain.ConflictReport, error) {
	*m.calls = append(*m.calls, "detector.CheckConflict")
	return m.report, m.err
}

type mockCatalog struct{}

func (mockCatalog) DisplayName(string) string          { return "Renovación Licencia de Conducir" }
func (mockCatalog) DurationMinutes(string) (int, error) { return 30, nil }

type mockTxManager struct{}

func (mockTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixedTime struct{ t time.Time }

func (f fixedTime) Now() time.Time { return f.t }

// fixture

type fixture struct {
	uc        *UseCase
	calls     []string
	repo      *mockRepo
	auth      *mockAuth
	municipal *mockMunicipal
	engine    *mockEngine
	detector  *mockDetector
}

func newFixture() *fixture {
	f := &fixture{}

	f.repo = &mockRepo{calls: &f.calls}
	f.auth = &mockAuth{user: &authservice.User{
		ID:   7,
		Name: "María Soto",
		RUT:  "12.345.678-9",
		Role: authservice.RoleUser,
	}}
	f.municipal = &mockMunicipal{snapshot: &domain.CitizenRecordSnapshot{CitizenID: "12.345.678-9"}}
	f.engine = &mockEngine{calls: &f.calls, finding: &eligibility.Finding{
		CanProceed:        true,
		Blocking:          []string{},
		Advisories:        []string{},
		Informational:     []string{},
		RequiredDocuments: []string{"Cédula de identidad vigente"},
	}}
	f.detector = &mockDetector{calls: &f.calls, report: &domain.ConflictReport{
		Conflict: false,
		Message:  "Horario 09:15 - 09:45 disponible",
	}}

	f.uc = NewUseCase(
		f.repo,
		f.auth,
		f.municipal,
		f.engine,
		f.detector,
		mockCatalog{},
		mockTxManager{},
		nopLogger{},
	)
	f.uc.timeProvider = fixedTime{t: time.Date(2025, 10, 1, 9, 0, 0, 0, time.UTC)}

	return f
}

func validRequest() *Request {
	return &Request{
		UserID:          7,
		ProcedureTypeID: "licencia_conducir_renovacion",
		Date:            time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC),
		StartTime:       types.TimeString("09:15"),
	}
}

// tests

func TestExecute_Success(t *testing.T) {
	f := newFixture()
	f.engine.finding.Advisories = []string{"⚠️ Tiene multas de tránsito pendientes. Se recomienda pagarlas antes de renovar"}

	resp, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, "María Soto", resp.UserName)
	assert.Equal(t, "activa", resp.Status)
	assert.Equal(t, types.TimeString("09:15"), resp.StartTime)
	assert.Equal(t, types.TimeString("09:45"), resp.EndTime)
	assert.Equal(t, 30, resp.DurationMinutes)
	assert.Len(t, resp.Advisories, 1)
	assert.Equal(t, []string{"Cédula de identidad vigente"}, resp.RequiredDocuments)

	require.NotNil(t, f.repo.created)
	assert.Equal(t, domain.StatusActive, f.repo.created.Status)
	assert.Equal(t, "María Soto", f.repo.created.UserName)
}

func TestExecute_EligibilityRunsBeforeConflictCheck(t *testing.T) {
	f := newFixture()

	_, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, []string{
		"engine.Evaluate",
		"repo.ListActiveByDate",
		"detector.CheckConflict",
		"repo.Create",
	}, f.calls)
}

func TestExecute_BlockingFindingShortCircuits(t *testing.T) {
	f := newFixture()
	f.engine.finding = &eligibility.Finding{
		CanProceed: false,
		Blocking:   []string{"❌ No puede renovar licencia con multas pendientes del Juzgado de Policía Local"},
	}

	_, err := f.uc.Execute(context.Background(), validRequest())
	require.Error(t, err)

	assert.ErrorIs(t, err, ErrIneligible)

	var ineligible *IneligibleError
	require.ErrorAs(t, err, &ineligible)
	assert.Len(t, ineligible.Finding.Blocking, 1)

	// No slot work happens for an ineligible citizen
	assert.Equal(t, []string{"engine.Evaluate"}, f.calls)
	assert.Nil(t, f.repo.created)
}

func TestExecute_SlotConflict(t *testing.T) {
	f := newFixture()
	f.detector.report = &domain.ConflictReport{
		Conflict: true,
		Message:  "El horario 09:15 - 09:45 no está disponible: se cruza con \"Renovación Licencia de Conducir\" de Pedro Rojas (09:00 - 09:30)",
		With: &domain.ConflictingReservation{
			ReservationID: 11,
			StartTime:     types.TimeString("09:00"),
			EndTime:       types.TimeString("09:30"),
		},
	}

	_, err := f.uc.Execute(context.Background(), validRequest())
	require.Error(t, err)

	assert.ErrorIs(t, err, ErrSlotConflict)

	var conflict *ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, int64(11), conflict.Report.With.ReservationID)

	assert.Nil(t, f.repo.created)
}

func TestExecute_DegradedMunicipalServiceProceedsWithNotice(t *testing.T) {
	f := newFixture()
	f.municipal.snapshot = nil
	f.municipal.err = municipalservice.ErrServiceDegraded

	resp, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	require.Len(t, resp.Informational, 1)
	assert.Contains(t, resp.Informational[0], "No fue posible verificar")

	// The engine is skipped entirely
	assert.NotContains(t, f.calls, "engine.Evaluate")
	assert.NotNil(t, f.repo.created)
}

func TestExecute_UserNotFound(t *testing.T) {
	f := newFixture()
	f.auth.user = nil
	f.auth.err = authservice.ErrUserNotFound

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrUserNotFound)
	assert.Empty(t, f.calls)
}

func TestExecute_DateInPast(t *testing.T) {
	f := newFixture()

	req := validRequest()
	req.Date = time.Date(2025, 9, 30, 0, 0, 0, 0, time.UTC)

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestExecute_InvalidInput(t *testing.T) {
	f := newFixture()

	cases := map[string]func(*Request){
		"missing user":          func(r *Request) { r.UserID = 0 },
		"missing procedure":     func(r *Request) { r.ProcedureTypeID = "" },
		"missing date":          func(r *Request) { r.Date = time.Time{} },
		"missing start time":    func(r *Request) { r.StartTime = "" },
		"malformed start time":  func(r *Request) { r.StartTime = "9:15am" },
		"oversized description": func(r *Request) { r.Description = string(make([]byte, domain.MaxDescriptionLength+1)) },
	}

	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			req := validRequest()
			mutate(req)

			_, err := f.uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestExecute_UnknownProcedureStrictEngine(t *testing.T) {
	f := newFixture()
	f.engine.finding = nil
	f.engine.err = eligibility.ErrUnknownProcedureType

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrUnknownProcedureType)
}

func TestExecute_RepositoryFailureInsideTransaction(t *testing.T) {
	f := newFixture()
	f.repo.listErr = errors.New("connection reset")

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrInternal)
	assert.Nil(t, f.repo.created)
}
