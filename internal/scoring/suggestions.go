package scoring

import (
	"fmt"

	"github.com/kevohmutwiri9-creator/my-ats-resume-builder-sub000/internal/types"
	"github.com/kevohmutwiri9-creator/my-ats-resume-builder-sub000/internal/validation"
)

// Limits on how many missing keywords are turned into suggestions.
const (
	maxMustSuggestions = 5
	maxNiceSuggestions = 3
)

var formatSuggestions = map[string]string{
	validation.CheckEmail:     "Add a professional email address to your contact details",
	validation.CheckPhone:     "Add a phone number to your contact details",
	validation.CheckBullets:   "Describe your experience with bullet points",
	validation.CheckDates:     "Include start and end years for each role and degree",
	validation.CheckLongLines: "Break up long lines so each stays readable",
}

var checkSuggestions = map[string]string{
	"no_tables":          "Replace tables with plain text so parsers can read them",
	"no_columns":         "Use a single-column layout",
	"standard_font":      "Use a standard font such as Arial, Calibri or Times New Roman",
	"font_size":          "Keep body text between 10 and 12pt",
	"margins":            "Keep margins between 0.5 and 1 inch",
	"has_summary":        "Add a short summary at the top of your resume",
	"has_experience":     "Add an Experience section with a standard heading",
	"has_education":      "Add an Education section with a standard heading",
	"has_skills":         "Add a Skills section listing your core tools",
	"action_verbs":       "Start bullet points with strong action verbs such as Led, Built or Improved",
	"industry_keywords":  "Mention the tools and practices used in your field",
	"quantified_results": "Quantify results with numbers, percentages or amounts",
	"job_overlap":        "Reuse the wording of the job description where it matches your experience",
}

func keywordSuggestions(report *types.ScoreReport) []string {
	var out []string
	if report.Must != nil {
		for i, item := range report.Must.Missing {
			if i == maxMustSuggestions {
				break
			}
			out = append(out, fmt.Sprintf("Add %q to your resume if it reflects your experience; the job lists it as required", item.Key))
		}
	}
	if report.Nice != nil {
		for i, item := range report.Nice.Missing {
			if i == maxNiceSuggestions {
				break
			}
			out = append(out, fmt.Sprintf("Consider mentioning %q; the job lists it as preferred", item.Key))
		}
	}
	return append(out, formatCheckSuggestions(report.FormatChecks)...)
}

func categorySuggestions(report *types.ScoreReport) []string {
	var out []string
	for _, category := range report.Results {
		for _, c := range category.Checks {
			if c.Passed {
				continue
			}
			// contact checks are covered by the format check suggestions
			if _, dup := formatSuggestions[c.ID]; dup {
				continue
			}
			if s, ok := checkSuggestions[c.ID]; ok {
				out = append(out, s)
			}
		}
	}
	return append(out, formatCheckSuggestions(report.FormatChecks)...)
}

func formatCheckSuggestions(checks []types.FormatCheck) []string {
	var out []string
	for _, c := range checks {
		if c.OK {
			continue
		}
		if s, ok := formatSuggestions[c.ID]; ok {
			out = append(out, s)
		}
	}
	return out
}
