package validation

import (
	"regexp"
	"strings"

	"github.com/kevohmutwiri9-creator/my-ats-resume-builder-sub000/internal/parsing"
	"github.com/kevohmutwiri9-creator/my-ats-resume-builder-sub000/internal/rules"
)

// maxHeadingWords bounds how long a line may be and still count as a heading.
const maxHeadingWords = 4

var (
	quantifiedPattern = regexp.MustCompile(`(?i)(?:\$\s?\d[\d,.]*\s*[kmb]?\b|\d[\d,.]*\s?%|\b\d+(?:\.\d+)?x\b|\b\d[\d,]*\+?\s+(?:users|customers|clients|people|projects|members|engineers|employees|teams|countries|hours|days|weeks|months|requests|transactions|downloads)\b)`)
	tableRowPattern   = regexp.MustCompile(`^\s*\|.*\|\s*$|[┌┬┐├┼┤└┴┘│]`)
	columnGapPattern  = regexp.MustCompile(`\S(?: {4,}|\t+)\S`)
)

// Signals summarizes what a resume contains for category scoring.
type Signals struct {
	HasEmail          bool
	HasPhone          bool
	Sections          map[string]bool
	ActionVerbs       int
	IndustryKeywords  int
	QuantifiedResults int
	HasTables         bool
	HasColumns        bool
}

// Analyze collects Signals from resume text.
func Analyze(text string, rs *rules.RuleSet) Signals {
	return Signals{
		HasEmail:          HasEmail(text),
		HasPhone:          HasPhone(text),
		Sections:          DetectSections(text, rs),
		ActionVerbs:       CountActionVerbs(text, rs),
		IndustryKeywords:  CountIndustryKeywords(text, rs),
		QuantifiedResults: CountQuantifiedResults(text),
		HasTables:         DetectTables(text),
		HasColumns:        DetectColumns(text),
	}
}

// DetectSections reports which standard sections have a heading line.
// A heading line is a short line containing one of the section's heading
// words. Every section in rs.SectionHeadings is present in the result.
func DetectSections(text string, rs *rules.RuleSet) map[string]bool {
	found := make(map[string]bool, len(rs.SectionHeadings))
	for section := range rs.SectionHeadings {
		found[section] = false
	}

	for _, line := range splitLines(text) {
		normalized := parsing.Normalize(line)
		if normalized == "" || len(strings.Fields(normalized)) > maxHeadingWords {
			continue
		}
		padded := " " + normalized + " "
		for section, headings := range rs.SectionHeadings {
			if found[section] {
				continue
			}
			for _, heading := range headings {
				h := parsing.Normalize(heading)
				if h != "" && strings.Contains(padded, " "+h+" ") {
					found[section] = true
					break
				}
			}
		}
	}
	return found
}

// CountActionVerbs counts every occurrence of an action verb in text.
func CountActionVerbs(text string, rs *rules.RuleSet) int {
	count := 0
	for _, word := range strings.Fields(parsing.Normalize(text)) {
		if rs.ActionVerbs.Has(strings.Trim(word, ".-")) {
			count++
		}
	}
	return count
}

// CountIndustryKeywords counts the distinct industry keywords present in
// text as whole words.
func CountIndustryKeywords(text string, rs *rules.RuleSet) int {
	padded := " " + parsing.Normalize(text) + " "
	seen := make(map[string]bool, len(rs.IndustryKeywords))
	count := 0
	for _, keyword := range rs.IndustryKeywords {
		k := parsing.Normalize(keyword)
		if k == "" || seen[k] {
			continue
		}
		seen[k] = true
		if containsWord(padded, k) {
			count++
		}
	}
	return count
}

func containsWord(padded, word string) bool {
	for _, suffix := range []string{" ", ". ", "- "} {
		if strings.Contains(padded, " "+word+suffix) {
			return true
		}
	}
	return false
}

// CountQuantifiedResults counts money amounts, percentages, multipliers and
// counted quantities such as "40 engineers".
func CountQuantifiedResults(text string) int {
	return len(quantifiedPattern.FindAllStringIndex(text, -1))
}

// DetectTables reports whether text looks like it was laid out with tables:
// at least two pipe-delimited rows or any box-drawing characters.
func DetectTables(text string) bool {
	rows := 0
	for _, line := range splitLines(text) {
		if !tableRowPattern.MatchString(line) {
			continue
		}
		if strings.ContainsAny(line, "┌┬┐├┼┤└┴┘│") {
			return true
		}
		rows++
		if rows >= 2 {
			return true
		}
	}
	return false
}

// DetectColumns reports whether three or more lines carry a wide internal gap,
// which is how multi-column layouts usually survive text extraction.
func DetectColumns(text string) bool {
	gapped := 0
	for _, line := range splitLines(text) {
		if columnGapPattern.MatchString(strings.TrimSpace(line)) {
			gapped++
		}
	}
	return gapped >= 3
}
