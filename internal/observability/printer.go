package observability

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/olekukonko/tablewriter"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/kevohmutwiri9-creator/my-ats-resume-builder-sub000/internal/parsing"
	"github.com/kevohmutwiri9-creator/my-ats-resume-builder-sub000/internal/scoring"
	"github.com/kevohmutwiri9-creator/my-ats-resume-builder-sub000/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

var titleCaser = cases.Title(language.English)

// Printer handles formatted output for text mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// Title turns a snake_case name into "Title Case".
func Title(name string) string {
	return titleCaser.String(strings.ReplaceAll(name, "_", " "))
}

func truncate(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	runes := []rune(s)
	return string(runes[:limit-3]) + "..."
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBanner(text string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, text)
	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintReport outputs a full score report: summary, category table, keyword
// coverage, format checks, violations and suggestions.
func (p *Printer) PrintReport(report *types.ScoreReport) {
	if report == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Strategy: %s\n", Title(report.Strategy)))
	sb.WriteString(fmt.Sprintf("Score:    %d / %d (%d%%)\n", report.TotalScore, report.MaxScore, report.Percentage))
	sb.WriteString(fmt.Sprintf("Grade:    %s", report.Grade))
	if report.ID != "" {
		sb.WriteString(fmt.Sprintf("\nReport:   %s", report.ID))
	}
	p.printBox("ATS SCORE", sb.String())

	_ = p.printCategories(report.Results)

	p.PrintMatch("MUST-HAVE KEYWORDS", report.Must)
	p.PrintMatch("NICE-TO-HAVE KEYWORDS", report.Nice)
	p.PrintFormatChecks(report.FormatChecks)
	p.PrintViolations(report.Violations)
	p.PrintSuggestions(report.Suggestions)
}

func (p *Printer) printCategories(results []types.CategoryResult) error {
	if len(results) == 0 {
		return nil
	}

	table := tablewriter.NewTable(p.out)
	table.Header("Category", "Score", "Max")
	for _, category := range results {
		if err := table.Append(Title(category.Name), fmt.Sprint(category.Score), fmt.Sprint(category.MaxScore)); err != nil {
			return err
		}
	}
	return table.Render()
}

// PrintMatch outputs matched and missing keywords of one group.
func (p *Printer) PrintMatch(title string, match *types.MatchResult) {
	if match == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Coverage: %d%% (%d of %d weight)\n", match.Score, match.MatchedWeight, match.TotalWeight))
	writeKeywordList(&sb, "Matched", match.Matched)
	writeKeywordList(&sb, "Missing", match.Missing)

	p.printBox(title, strings.TrimSuffix(sb.String(), "\n"))
}

func writeKeywordList(sb *strings.Builder, label string, group types.KeywordGroup) {
	if len(group) == 0 {
		return
	}
	keys := group.Keys()
	shown := keys[:min(len(keys), maxItemsToShow)]
	sb.WriteString(fmt.Sprintf("%s: %s", label, strings.Join(shown, ", ")))
	if len(keys) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf(" (+%d more)", len(keys)-maxItemsToShow))
	}
	sb.WriteString("\n")
}

// PrintKeywordGroups outputs the weighted keywords extracted from a job description.
func (p *Printer) PrintKeywordGroups(groups types.KeywordGroups) {
	var sb strings.Builder
	writeGroup := func(label string, group types.KeywordGroup) {
		sb.WriteString(fmt.Sprintf("%s (%d):\n", label, len(group)))
		if len(group) == 0 {
			sb.WriteString("  (none)\n")
		}
		for _, item := range group {
			sb.WriteString(fmt.Sprintf("  • %-30s %3d\n", item.Key, item.Weight))
		}
	}
	writeGroup("Must-have", groups.Must)
	sb.WriteString("\n")
	writeGroup("Nice-to-have", groups.Nice)

	p.printBox("JOB KEYWORDS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSections outputs the must-have and nice-to-have text of a job description.
func (p *Printer) PrintSections(sections parsing.Sections) {
	p.printBox(fmt.Sprintf("MUST-HAVE TEXT (mode: %s)", sections.Mode), orNone(sections.MustText))
	p.printBox("NICE-TO-HAVE TEXT", orNone(sections.NiceText))
}

func orNone(s string) string {
	if strings.TrimSpace(s) == "" {
		return "(none)"
	}
	return strings.TrimSpace(s)
}

// PrintFormatChecks outputs pass/fail markers for each formatting check.
func (p *Printer) PrintFormatChecks(checks []types.FormatCheck) {
	if len(checks) == 0 {
		return
	}

	var sb strings.Builder
	for i, check := range checks {
		mark := "✗"
		if check.OK {
			mark = "✓"
		}
		sb.WriteString(fmt.Sprintf("%s %s", mark, check.Label))
		if i < len(checks)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("FORMAT CHECKS", sb.String())
}

// PrintViolations outputs any line-level violations found.
func (p *Printer) PrintViolations(violations []types.Violation) {
	if len(violations) == 0 {
		p.printBanner("✅ NO VIOLATIONS FOUND")
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d violations:\n\n", len(violations)))

	count := min(len(violations), maxItemsToShow)
	for i := 0; i < count; i++ {
		v := violations[i]
		sb.WriteString(fmt.Sprintf("⚠ %s (%s)\n", v.Type, v.Severity))
		sb.WriteString(fmt.Sprintf("  %s\n", truncate(v.Details, 50)))
		if v.Excerpt != "" {
			sb.WriteString(fmt.Sprintf("  %q\n", truncate(v.Excerpt, 48)))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}
	if len(violations) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more violations", len(violations)-maxItemsToShow))
	}

	p.printBox("VIOLATIONS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSuggestions outputs improvement suggestions, if any.
func (p *Printer) PrintSuggestions(suggestions []string) {
	if len(suggestions) == 0 {
		return
	}

	var sb strings.Builder
	for i, s := range suggestions {
		sb.WriteString(fmt.Sprintf("%d. %s", i+1, s))
		if i < len(suggestions)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("SUGGESTIONS", sb.String())
}

// PrintBatch outputs one table row per scored resume, in input order.
func (p *Printer) PrintBatch(results []scoring.BatchResult) error {
	table := tablewriter.NewTable(p.out)
	table.Header("Resume", "Score", "Percent", "Grade")
	for _, r := range results {
		if r.Report == nil {
			continue
		}
		err := table.Append(
			r.Name,
			fmt.Sprintf("%d/%d", r.Report.TotalScore, r.Report.MaxScore),
			fmt.Sprintf("%d%%", r.Report.Percentage),
			r.Report.Grade,
		)
		if err != nil {
			return err
		}
	}
	return table.Render()
}
