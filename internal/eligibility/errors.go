package eligibility

import "errors"

var (
	// ErrInvalidRule marks a configuration defect in the rule table: an
	// unknown field selector, an operator incompatible with the field's
	// type, or a malformed expected value. It is deliberately distinct
	// from "requirement not met" so a broken rule can never silently admit
	// or lock out every citizen for a procedure type.
	ErrInvalidRule = errors.New("eligibility: invalid rule configuration")

	// ErrUnknownProcedureType is returned for procedure types without
	// configured rules when the unknown-type fallback is disabled
	ErrUnknownProcedureType = errors.New("eligibility: unknown procedure type")

	// ErrNilSnapshot is returned when no citizen record snapshot is supplied
	ErrNilSnapshot = errors.New("eligibility: nil citizen record snapshot")
)
