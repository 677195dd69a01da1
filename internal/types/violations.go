// Package types provides type definitions for structured data used throughout the ATS scorer.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Violation kinds and severities.
const (
	ViolationLineTooLong = "line_too_long"

	SeverityWarning = "warning"
	SeverityError   = "error"
)

// Violation is one formatting problem on a line of the resume.
type Violation struct {
	Type     string `json:"type"`
	Severity string `json:"severity"`
	Details  string `json:"details"`

	// 1-based line number and its length in characters, when the problem is
	// tied to a line
	LineNumber *int `json:"line_number,omitempty"`
	CharCount  *int `json:"char_count,omitempty"`

	Excerpt string `json:"excerpt,omitempty"` // start of the offending line
}

// CountSeverity returns how many violations have the given severity.
func CountSeverity(violations []Violation, severity string) int {
	n := 0
	for _, v := range violations {
		if v.Severity == severity {
			n++
		}
	}
	return n
}
