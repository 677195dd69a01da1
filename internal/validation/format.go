package validation

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/kevohmutwiri9-creator/my-ats-resume-builder-sub000/internal/rules"
	"github.com/kevohmutwiri9-creator/my-ats-resume-builder-sub000/internal/types"
)

// Format check IDs.
const (
	CheckEmail     = "has_email"
	CheckPhone     = "has_phone"
	CheckBullets   = "has_bullets"
	CheckDates     = "has_dates"
	CheckLongLines = "no_long_lines"
)

// MinBulletLines is how many bullet lines a resume needs to pass CheckBullets.
const MinBulletLines = 3

var (
	emailPattern  = regexp.MustCompile(`[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}`)
	phonePattern  = regexp.MustCompile(`(?:\+?\d{1,3}[\s.\-]?)?\(?\d{3}\)?[\s.\-]?\d{3}[\s.\-]?\d{4}`)
	bulletPattern = regexp.MustCompile(`^\s*(?:[-*•▪●◦‣·–]|\d{1,2}[.)])\s+\S`)
	yearPattern   = regexp.MustCompile(`\b(?:19|20)\d{2}\b`)
)

// HasEmail reports whether text contains something shaped like an email address.
func HasEmail(text string) bool {
	return emailPattern.MatchString(text)
}

// HasPhone reports whether text contains something shaped like a phone number.
func HasPhone(text string) bool {
	return phonePattern.MatchString(text)
}

// CountBulletLines counts lines starting with a bullet glyph, dash or list number.
func CountBulletLines(text string) int {
	count := 0
	for _, line := range splitLines(text) {
		if bulletPattern.MatchString(line) {
			count++
		}
	}
	return count
}

// HasDates reports whether text contains a four-digit year between 1900 and 2099.
func HasDates(text string) bool {
	return yearPattern.MatchString(text)
}

// RunFormatChecks runs the boolean formatting heuristics over resume text and
// appends one always-ok entry per advice string in rs. The checks are
// informational and independent of one another.
func RunFormatChecks(text string, rs *rules.RuleSet, maxLine int) []types.FormatCheck {
	if maxLine <= 0 {
		maxLine = DefaultMaxLineLength
	}

	checks := []types.FormatCheck{
		{ID: CheckEmail, OK: HasEmail(text), Label: "Contains an email address"},
		{ID: CheckPhone, OK: HasPhone(text), Label: "Contains a phone number"},
		{ID: CheckBullets, OK: CountBulletLines(text) >= MinBulletLines, Label: fmt.Sprintf("Uses bullet points (%d or more)", MinBulletLines)},
		{ID: CheckDates, OK: HasDates(text), Label: "Includes dates for roles and education"},
		{ID: CheckLongLines, OK: len(ValidateLineLengths(text, maxLine)) == 0, Label: fmt.Sprintf("No lines longer than %d characters", maxLine)},
	}

	for i, advice := range rs.FormatAdvice {
		advice = strings.TrimSpace(advice)
		if advice == "" {
			continue
		}
		checks = append(checks, types.FormatCheck{
			ID:    fmt.Sprintf("advice_%d", i+1),
			OK:    true,
			Label: advice,
		})
	}

	return checks
}
