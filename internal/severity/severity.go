// Package severity provides severity level constants and utilities
// for issues reported by the validator and httpvalidator packages.
//
// The severity levels are ordered from least to most severe:
// Info < Warning < Error
package severity

// Severity indicates the severity level of an issue found during validation.
type Severity int

const (
	// SeverityError indicates a schema violation that makes the instance invalid.
	SeverityError Severity = iota

	// SeverityWarning indicates a non-fatal finding, such as an unrecognized
	// schema keyword, that does not affect validity.
	SeverityWarning

	// SeverityInfo indicates informational messages about processing choices.
	SeverityInfo
)

// String returns the string representation of the severity level.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}
