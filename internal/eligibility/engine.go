// Package eligibility decides whether a citizen may request a municipal
// procedure. A declarative rule table per procedure type is evaluated against
// a read-only citizen record snapshot; failed rules are classified into
// blocking, advisory and informational findings, and each procedure carries a
// static required-document list. Pure functions over their inputs; the
// snapshot is fetched by the caller, never by the engine.
package eligibility

import (
	"fmt"

	"github.com/m04kA/SMC-TramitesService/internal/domain"
)

// Operator is a rule's comparison against the extracted field value
type Operator string

const (
	OpEqual       Operator = "=="
	OpNotEqual    Operator = "!="
	OpGreaterThan Operator = ">"
	OpLessThan    Operator = "<"
	// OpExists is satisfied when a list-valued field has at least one element
	OpExists Operator = "exists"
	// OpAnyStatus is satisfied when the list is empty (rule does not apply)
	// or when any element is in the expected status
	OpAnyStatus Operator = "any_status"
)

// Severity classifies what a failed rule means for the citizen
type Severity string

const (
	// SeverityBlocking prevents the procedure from being booked
	SeverityBlocking Severity = "bloqueante"
	// SeverityAdvisory is surfaced to the citizen but does not block
	SeverityAdvisory Severity = "advertencia"
	// SeverityInformational is a note shown alongside the result
	SeverityInformational Severity = "informativo"
)

// Rule is one declarative requirement row. Rules are static configuration,
// loaded once, never mutated.
type Rule struct {
	Field    FieldSelector
	Operator Operator
	Value    interface{} // expected value; unused by OpExists
	Message  string
	Severity Severity
}

// ProcedureRequirements are the rules and document checklist of one
// procedure type. Rule order is evaluation and output order.
type ProcedureRequirements struct {
	Rules             []Rule
	RequiredDocuments []string
}

// Finding is the result of one eligibility evaluation
type Finding struct {
	CanProceed        bool     `json:"puede_realizar"`
	Blocking          []string `json:"bloqueantes"`
	Advisories        []string `json:"advertencias"`
	Informational     []string `json:"informativos"`
	RequiredDocuments []string `json:"documentos_requeridos"`
}

// Engine evaluates the rule table. Immutable after construction, safe for
// concurrent use.
type Engine struct {
	table        map[string]ProcedureRequirements
	allowUnknown bool
}

// NewEngine loads and validates the static rule table. Validation runs the
// full selector/operator/value compatibility check for every rule, so a
// configuration defect fails startup instead of surfacing mid-request.
// allowUnknown controls whether procedure types without configured rules are
// treated as always eligible (the historical behavior) or rejected.
func NewEngine(allowUnknown bool) (*Engine, error) {
	return NewEngineWithRequirements(requirementsTable, allowUnknown)
}

// NewEngineWithRequirements builds an engine over a custom requirements
// table, validating every rule the same way NewEngine does
func NewEngineWithRequirements(table map[string]ProcedureRequirements, allowUnknown bool) (*Engine, error) {
	for procedureTypeID, reqs := range table {
		for i, rule := range reqs.Rules {
			if err := validateRule(rule); err != nil {
				return nil, fmt.Errorf("%w: procedure %q rule %d: %v", ErrInvalidRule, procedureTypeID, i, err)
			}
		}
	}
	return &Engine{table: table, allowUnknown: allowUnknown}, nil
}

// Evaluate runs the procedure type's rules against the snapshot. A rule that
// fails files its message under the bucket of its severity; any failed
// blocking rule clears CanProceed. Message order mirrors rule-definition
// order. The returned error is non-nil only for configuration defects.
func (e *Engine) Evaluate(procedureTypeID string, snapshot *domain.CitizenRecordSnapshot) (*Finding, error) {
	if snapshot == nil {
		return nil, ErrNilSnapshot
	}

	reqs, ok := e.table[procedureTypeID]
	if !ok {
		if !e.allowUnknown {
			return nil, fmt.Errorf("%w: %q", ErrUnknownProcedureType, procedureTypeID)
		}
		// Unconfigured procedure types are never blocking
		return &Finding{
			CanProceed: true,
			Blocking:   []string{},
			Advisories: []string{},
			Informational: []string{
				fmt.Sprintf("⚠️ Tipo de trámite '%s' no configurado", procedureTypeID),
			},
			RequiredDocuments: []string{"Cédula de Identidad"},
		}, nil
	}

	finding := &Finding{
		CanProceed:        true,
		Blocking:          []string{},
		Advisories:        []string{},
		Informational:     []string{},
		RequiredDocuments: reqs.RequiredDocuments,
	}

	for _, rule := range reqs.Rules {
		satisfied, err := evaluateRule(rule, snapshot)
		if err != nil {
			return nil, fmt.Errorf("%w: procedure %q field %q: %v", ErrInvalidRule, procedureTypeID, rule.Field, err)
		}
		if satisfied {
			continue
		}

		switch rule.Severity {
		case SeverityBlocking:
			finding.Blocking = append(finding.Blocking, rule.Message)
			finding.CanProceed = false
		case SeverityAdvisory:
			finding.Advisories = append(finding.Advisories, rule.Message)
		case SeverityInformational:
			finding.Informational = append(finding.Informational, rule.Message)
		}
	}

	return finding, nil
}

// RequiredDocuments returns the static document checklist for the procedure
// type, or the generic checklist for unconfigured types.
func (e *Engine) RequiredDocuments(procedureTypeID string) []string {
	if reqs, ok := e.table[procedureTypeID]; ok {
		return reqs.RequiredDocuments
	}
	return []string{"Cédula de Identidad"}
}

func evaluateRule(rule Rule, snapshot *domain.CitizenRecordSnapshot) (bool, error) {
	accessor, ok := fieldAccessors[rule.Field]
	if !ok {
		return false, fmt.Errorf("unknown field selector")
	}

	value := accessor.extract(snapshot)

	switch rule.Operator {
	case OpEqual, OpNotEqual, OpGreaterThan, OpLessThan:
		return compareScalar(rule, value)
	case OpExists:
		if value.kind != kindStatusList {
			return false, fmt.Errorf("operator %q requires a list-valued field", rule.Operator)
		}
		return len(value.statuses) > 0, nil
	case OpAnyStatus:
		if value.kind != kindStatusList {
			return false, fmt.Errorf("operator %q requires a list-valued field", rule.Operator)
		}
		expected, ok := rule.Value.(string)
		if !ok {
			return false, fmt.Errorf("operator %q requires a string expected value", rule.Operator)
		}
		// An empty list means the rule does not apply
		if len(value.statuses) == 0 {
			return true, nil
		}
		for _, status := range value.statuses {
			if status == expected {
				return true, nil
			}
		}
		return false, nil
	default:
		return false, fmt.Errorf("unknown operator %q", rule.Operator)
	}
}

func compareScalar(rule Rule, value fieldValue) (bool, error) {
	switch value.kind {
	case kindNumber:
		expected, err := toNumber(rule.Value)
		if err != nil {
			return false, err
		}
		switch rule.Operator {
		case OpEqual:
			return value.number == expected, nil
		case OpNotEqual:
			return value.number != expected, nil
		case OpGreaterThan:
			return value.number > expected, nil
		case OpLessThan:
			return value.number < expected, nil
		}
	case kindString:
		expected, ok := rule.Value.(string)
		if !ok {
			return false, fmt.Errorf("expected value must be a string")
		}
		switch rule.Operator {
		case OpEqual:
			return value.str == expected, nil
		case OpNotEqual:
			return value.str != expected, nil
		}
		return false, fmt.Errorf("operator %q not supported for string fields", rule.Operator)
	case kindBool:
		expected, ok := rule.Value.(bool)
		if !ok {
			return false, fmt.Errorf("expected value must be a bool")
		}
		switch rule.Operator {
		case OpEqual:
			return value.boolean == expected, nil
		case OpNotEqual:
			return value.boolean != expected, nil
		}
		return false, fmt.Errorf("operator %q not supported for bool fields", rule.Operator)
	case kindStatusList:
		return false, fmt.Errorf("operator %q not supported for list-valued fields", rule.Operator)
	}
	return false, fmt.Errorf("unsupported field kind")
}

func toNumber(v interface{}) (float64, error) {
	switch n := v.(type) {
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case float64:
		return n, nil
	default:
		return 0, fmt.Errorf("expected value must be numeric, got %T", v)
	}
}

// validateRule checks selector existence and operator/value compatibility
// without needing a snapshot
func validateRule(rule Rule) error {
	accessor, ok := fieldAccessors[rule.Field]
	if !ok {
		return fmt.Errorf("unknown field selector %q", rule.Field)
	}
	if rule.Message == "" {
		return fmt.Errorf("empty message")
	}

	switch rule.Severity {
	case SeverityBlocking, SeverityAdvisory, SeverityInformational:
	default:
		return fmt.Errorf("unknown severity %q", rule.Severity)
	}

	switch rule.Operator {
	case OpEqual, OpNotEqual:
		switch accessor.kind {
		case kindNumber:
			if _, err := toNumber(rule.Value); err != nil {
				return err
			}
		case kindString:
			if _, ok := rule.Value.(string); !ok {
				return fmt.Errorf("expected value must be a string")
			}
		case kindBool:
			if _, ok := rule.Value.(bool); !ok {
				return fmt.Errorf("expected value must be a bool")
			}
		case kindStatusList:
			return fmt.Errorf("operator %q not supported for list-valued fields", rule.Operator)
		}
	case OpGreaterThan, OpLessThan:
		if accessor.kind != kindNumber {
			return fmt.Errorf("operator %q requires a numeric field", rule.Operator)
		}
		if _, err := toNumber(rule.Value); err != nil {
			return err
		}
	case OpExists:
		if accessor.kind != kindStatusList {
			return fmt.Errorf("operator %q requires a list-valued field", rule.Operator)
		}
	case OpAnyStatus:
		if accessor.kind != kindStatusList {
			return fmt.Errorf("operator %q requires a list-valued field", rule.Operator)
		}
		if _, ok := rule.Value.(string); !ok {
			return fmt.Errorf("operator %q requires a string expected value", rule.Operator)
		}
	default:
		return fmt.Errorf("unknown operator %q", rule.Operator)
	}

	return nil
}
