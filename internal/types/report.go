// Package types provides type definitions for structured data used throughout the ATS scorer.
//
//nolint:revive // types is a standard Go package name pattern
package types

// ScoreReport is the result of scoring one resume against one job description
type ScoreReport struct {
	ID          string           `json:"id,omitempty"`
	Strategy    string           `json:"strategy"`
	GeneratedAt string           `json:"generated_at,omitempty"` // RFC3339 format
	TotalScore  int              `json:"total_score"`
	MaxScore    int              `json:"max_score"`
	Percentage  int              `json:"percentage"`
	Grade       string           `json:"grade"`
	Results     []CategoryResult `json:"results_by_category"`

	// Keyword strategy only
	Must *MatchResult `json:"must,omitempty"`
	Nice *MatchResult `json:"nice,omitempty"`

	FormatChecks []FormatCheck `json:"format_checks"`
	Violations   []Violation   `json:"violations,omitempty"`
	Suggestions  []string      `json:"suggestions,omitempty"`
}

// CategoryResult is the score breakdown for one scoring category
type CategoryResult struct {
	Name     string        `json:"name"`
	Score    int           `json:"score"`
	MaxScore int           `json:"max_score"`
	Checks   []CheckResult `json:"checks,omitempty"`
}

// CheckResult is a single scored rule inside a category
type CheckResult struct {
	ID        string `json:"id"`
	Label     string `json:"label"`
	Passed    bool   `json:"passed"`
	Points    int    `json:"points"`
	MaxPoints int    `json:"max_points"`
	Detail    string `json:"detail,omitempty"`
}

// FormatCheck is a pass/fail formatting heuristic ready for display
type FormatCheck struct {
	ID    string `json:"id"`
	OK    bool   `json:"ok"`
	Label string `json:"label"`
}

// FindCheck returns the check with the given id.
func FindCheck(checks []FormatCheck, id string) (FormatCheck, bool) {
	for _, c := range checks {
		if c.ID == id {
			return c, true
		}
	}
	return FormatCheck{}, false
}

// FindCategory returns the category result with the given name.
func (r *ScoreReport) FindCategory(name string) (CategoryResult, bool) {
	for _, c := range r.Results {
		if c.Name == name {
			return c, true
		}
	}
	return CategoryResult{}, false
}
