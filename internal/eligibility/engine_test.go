package eligibility

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TramitesService/internal/domain"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	engine, err := NewEngine(true)
	require.NoError(t, err)
	return engine
}

func cleanSnapshot() *domain.CitizenRecordSnapshot {
	return &domain.CitizenRecordSnapshot{
		CitizenID: "12.345.678-9",
		DrivingLicence: domain.DrivingLicence{
			Has:   true,
			Valid: true,
		},
		SanitationFee: domain.SanitationFee{
			HasService:    true,
			PaymentStatus: domain.SanitationCurrent,
		},
	}
}

func TestNewEngine_ValidatesStaticTable(t *testing.T) {
	_, err := NewEngine(true)
	require.NoError(t, err)
}

func TestEvaluate_AllRulesSatisfied(t *testing.T) {
	engine := newTestEngine(t)

	finding, err := engine.Evaluate("licencia_conducir_renovacion", cleanSnapshot())
	require.NoError(t, err)

	assert.True(t, finding.CanProceed)
	assert.Empty(t, finding.Blocking)
	assert.Empty(t, finding.Advisories)
	assert.Equal(t, []string{"Cédula de identidad vigente", "Declaración jurada"}, finding.RequiredDocuments)
}

// Two pending court fines against the "== 0" blocking rule must produce
// exactly one blocking message and clear CanProceed.
func TestEvaluate_PendingCourtFinesBlock(t *testing.T) {
	engine := newTestEngine(t)

	snapshot := cleanSnapshot()
	snapshot.CourtFines = []domain.CourtFine{
		{CaseNumber: "JPL-2024-001", Amount: 50000},
		{CaseNumber: "JPL-2024-002", Amount: 35000},
	}

	finding, err := engine.Evaluate("licencia_conducir_renovacion", snapshot)
	require.NoError(t, err)

	assert.False(t, finding.CanProceed)
	require.Len(t, finding.Blocking, 1)
	assert.Contains(t, finding.Blocking[0], "Juzgado de Policía Local")
	assert.Empty(t, finding.Advisories)
}

// A snapshot failing one blocking and one advisory rule yields one message in
// each bucket, in rule-definition order.
func TestEvaluate_BlockingAndAdvisoryBuckets(t *testing.T) {
	engine := newTestEngine(t)

	snapshot := cleanSnapshot()
	snapshot.CourtFines = []domain.CourtFine{{CaseNumber: "JPL-2024-003", Amount: 20000}}
	snapshot.SanitationFee.PaymentStatus = domain.SanitationDelinquent
	snapshot.SanitationFee.OutstandingBalance = 78000

	finding, err := engine.Evaluate("primer_otorg_clase_b", snapshot)
	require.NoError(t, err)

	assert.False(t, finding.CanProceed)
	require.Len(t, finding.Blocking, 1)
	require.Len(t, finding.Advisories, 1)
	assert.Contains(t, finding.Blocking[0], "No puede obtener licencia")
	assert.Contains(t, finding.Advisories[0], "servicio de aseo")
}

func TestEvaluate_MessageOrderMirrorsRuleOrder(t *testing.T) {
	engine := newTestEngine(t)

	// Renewal has two advisory rules: licence fines first, sanitation second
	snapshot := cleanSnapshot()
	snapshot.DrivingLicence.PendingFines = 3
	snapshot.SanitationFee.PaymentStatus = domain.SanitationDelinquent

	finding, err := engine.Evaluate("licencia_conducir_renovacion", snapshot)
	require.NoError(t, err)

	assert.True(t, finding.CanProceed)
	require.Len(t, finding.Advisories, 2)
	assert.Contains(t, finding.Advisories[0], "multas de tránsito")
	assert.Contains(t, finding.Advisories[1], "servicio de aseo")
}

func TestEvaluate_AdvisoryDoesNotBlock(t *testing.T) {
	engine := newTestEngine(t)

	snapshot := cleanSnapshot()
	snapshot.DrivingLicence.Valid = false

	finding, err := engine.Evaluate("duplicado_licencia", snapshot)
	require.NoError(t, err)

	assert.True(t, finding.CanProceed)
	assert.Empty(t, finding.Blocking)
	require.Len(t, finding.Advisories, 1)
	assert.Contains(t, finding.Advisories[0], "licencia vigente")
}

func TestEvaluate_RulelessProcedureAlwaysEligible(t *testing.T) {
	engine := newTestEngine(t)

	finding, err := engine.Evaluate("registro_civil", cleanSnapshot())
	require.NoError(t, err)

	assert.True(t, finding.CanProceed)
	assert.Empty(t, finding.Blocking)
	assert.Empty(t, finding.Advisories)
	assert.NotEmpty(t, finding.RequiredDocuments)
}

func TestEvaluate_UnknownProcedureFallback(t *testing.T) {
	engine := newTestEngine(t)

	finding, err := engine.Evaluate("tramite_legado_1999", cleanSnapshot())
	require.NoError(t, err)

	assert.True(t, finding.CanProceed)
	assert.Empty(t, finding.Blocking)
	require.Len(t, finding.Informational, 1)
	assert.Contains(t, finding.Informational[0], "no configurado")
	assert.Equal(t, []string{"Cédula de Identidad"}, finding.RequiredDocuments)
}

func TestEvaluate_UnknownProcedureStrict(t *testing.T) {
	engine, err := NewEngine(false)
	require.NoError(t, err)

	_, err = engine.Evaluate("tramite_legado_1999", cleanSnapshot())
	assert.ErrorIs(t, err, ErrUnknownProcedureType)
}

func TestEvaluate_NilSnapshot(t *testing.T) {
	engine := newTestEngine(t)

	_, err := engine.Evaluate("licencia_conducir_renovacion", nil)
	assert.ErrorIs(t, err, ErrNilSnapshot)
}

func TestEvaluate_ListOperators(t *testing.T) {
	engine := newTestEngine(t)

	// No building permits: the "exists" informational rule fires
	finding, err := engine.Evaluate("certificado_residencia", cleanSnapshot())
	require.NoError(t, err)
	assert.True(t, finding.CanProceed)
	require.Len(t, finding.Informational, 1)

	// With a permit on record the rule is satisfied
	snapshot := cleanSnapshot()
	snapshot.BuildingPermits = []domain.BuildingPermit{{PermitNumber: "PE-2023-117", Status: domain.PermitStatusCurrent}}
	finding, err = engine.Evaluate("certificado_residencia", snapshot)
	require.NoError(t, err)
	assert.Empty(t, finding.Informational)
}

func TestEvaluate_AnyStatusOperator(t *testing.T) {
	engine := newTestEngine(t)

	// No commercial licences: the any-status rule does not apply
	finding, err := engine.Evaluate("patente_comercial", cleanSnapshot())
	require.NoError(t, err)
	assert.Empty(t, finding.Informational)

	// Licences on record, none current: informational message fires
	snapshot := cleanSnapshot()
	snapshot.CommercialLicences = []domain.CommercialLicence{
		{LicenceNumber: "PC-0012", Status: domain.PermitStatusExpired},
	}
	finding, err = engine.Evaluate("patente_comercial", snapshot)
	require.NoError(t, err)
	require.Len(t, finding.Informational, 1)
	assert.Contains(t, finding.Informational[0], "patentes comerciales")

	// One current licence satisfies the rule
	snapshot.CommercialLicences = append(snapshot.CommercialLicences,
		domain.CommercialLicence{LicenceNumber: "PC-0013", Status: domain.PermitStatusCurrent})
	finding, err = engine.Evaluate("patente_comercial", snapshot)
	require.NoError(t, err)
	assert.Empty(t, finding.Informational)
}

func TestNewEngineWithRequirements_RejectsUnknownSelector(t *testing.T) {
	table := map[string]ProcedureRequirements{
		"tramite_prueba": {
			Rules: []Rule{
				{Field: "campo_inexistente", Operator: OpEqual, Value: 0, Message: "x", Severity: SeverityBlocking},
			},
		},
	}

	_, err := NewEngineWithRequirements(table, true)
	assert.ErrorIs(t, err, ErrInvalidRule)
}

func TestNewEngineWithRequirements_RejectsOperatorTypeMismatch(t *testing.T) {
	cases := map[string]Rule{
		"list operator on scalar": {
			Field: FieldCourtFinesPending, Operator: OpExists, Message: "x", Severity: SeverityBlocking,
		},
		"ordering operator on string": {
			Field: FieldSanitationStatus, Operator: OpGreaterThan, Value: "al_dia", Message: "x", Severity: SeverityBlocking,
		},
		"equality operator on list": {
			Field: FieldBuildingPermits, Operator: OpEqual, Value: 0, Message: "x", Severity: SeverityBlocking,
		},
		"wrong value type for numeric field": {
			Field: FieldCourtFinesPending, Operator: OpEqual, Value: "cero", Message: "x", Severity: SeverityBlocking,
		},
		"non-string status for any_status": {
			Field: FieldCommercialLicences, Operator: OpAnyStatus, Value: 1, Message: "x", Severity: SeverityBlocking,
		},
		"unknown severity": {
			Field: FieldCourtFinesPending, Operator: OpEqual, Value: 0, Message: "x", Severity: "critico",
		},
	}

	for name, rule := range cases {
		t.Run(name, func(t *testing.T) {
			table := map[string]ProcedureRequirements{"tramite_prueba": {Rules: []Rule{rule}}}
			_, err := NewEngineWithRequirements(table, true)
			assert.ErrorIs(t, err, ErrInvalidRule)
		})
	}
}

func TestEvaluate_PermisoCirculacionTwoBlockingRules(t *testing.T) {
	engine := newTestEngine(t)

	snapshot := cleanSnapshot()
	snapshot.CourtFines = []domain.CourtFine{{CaseNumber: "JPL-2025-009", Amount: 15000}}
	snapshot.SanitationFee.PaymentStatus = domain.SanitationDelinquent

	finding, err := engine.Evaluate("permiso_circulacion", snapshot)
	require.NoError(t, err)

	assert.False(t, finding.CanProceed)
	require.Len(t, finding.Blocking, 2)
	assert.Contains(t, finding.Blocking[0], "permiso de circulación")
	assert.Contains(t, finding.Blocking[1], "aseo domiciliario")
}
