// Package validation provides formatting checks and heuristics over plain resume text.
package validation

import (
	"fmt"
	"strings"

	"github.com/kevohmutwiri9-creator/my-ats-resume-builder-sub000/internal/types"
)

// DefaultMaxLineLength is the longest line, in characters, that is not
// reported as an overrun.
const DefaultMaxLineLength = 140

const excerptLength = 60

// ValidateLineLengths reports every line of text longer than maxChars.
// A non-positive maxChars falls back to DefaultMaxLineLength.
func ValidateLineLengths(text string, maxChars int) []types.Violation {
	if maxChars <= 0 {
		maxChars = DefaultMaxLineLength
	}

	var violations []types.Violation
	for i, line := range splitLines(text) {
		lineNum := i + 1
		length := countContentChars(line)
		if length <= maxChars {
			continue
		}
		violations = append(violations, types.Violation{
			Type:       types.ViolationLineTooLong,
			Severity:   types.SeverityWarning,
			Details:    fmt.Sprintf("Line %d has %d characters, maximum is %d", lineNum, length, maxChars),
			LineNumber: intPtr(lineNum),
			CharCount:  intPtr(length),
			Excerpt:    excerpt(line),
		})
	}
	return violations
}

// countContentChars counts the characters of a line, ignoring trailing whitespace
func countContentChars(line string) int {
	return len([]rune(strings.TrimRight(line, " \t")))
}

func excerpt(line string) string {
	runes := []rune(strings.TrimSpace(line))
	if len(runes) <= excerptLength {
		return string(runes)
	}
	return string(runes[:excerptLength]) + "..."
}

// splitLines splits text on LF, dropping a CR before each break
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.Split(text, "\n")
}

// intPtr returns a pointer to an integer
func intPtr(i int) *int {
	return &i
}
