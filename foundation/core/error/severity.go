// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels for errors. The logger picks its level
//              from the severity, and the run journal stores it next to the
//              code of a failed run.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with severity levels
// - 2026-10-12 v0.2.0: Severity mapping for interpreter codes
// - 2026-10-19 v0.3.0: Alerting rules removed

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates a problem in the user's program or input
	SeverityLow Severity = iota

	// SeverityMedium indicates an error with no specific classification
	SeverityMedium

	// SeverityHigh indicates a failure of the environment (config, storage)
	SeverityHigh

	// SeverityCritical indicates a broken invariant inside clite itself
	SeverityCritical
)

var severityNames = [...]string{"low", "medium", "high", "critical"}

func (s Severity) String() string {
	if s < SeverityLow || s > SeverityCritical {
		return "unknown"
	}
	return severityNames[s]
}

// GetSeverityFromCode determines appropriate severity level based on error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeInternal:
		return SeverityCritical

	case CodeDatabaseError, CodeConfigError, CodeInvalidConfig:
		return SeverityHigh

	case CodeSyntax, CodeUnexpectedEOF, CodeDuplicateIdentifier,
		CodeUndeclaredIdentifier, CodeTypeError, CodeInvalidOperandType,
		CodeUninitializedValue, CodeDivisionByZero,
		CodeNotFound, CodeInvalidInput, CodeCanceled:
		return SeverityLow

	default:
		return SeverityMedium
	}
}
