package scoring

import (
	"fmt"

	"github.com/kevohmutwiri9-creator/my-ats-resume-builder-sub000/internal/parsing"
	"github.com/kevohmutwiri9-creator/my-ats-resume-builder-sub000/internal/rules"
	"github.com/kevohmutwiri9-creator/my-ats-resume-builder-sub000/internal/types"
	"github.com/kevohmutwiri9-creator/my-ats-resume-builder-sub000/internal/validation"
)

// Category names used by the category strategy.
const (
	CategoryFormatting = "formatting"
	CategoryContent    = "content"
	CategoryKeywords   = "keywords"
	CategoryJobMatch   = "job_match"
)

// Category maximums.
const (
	FormattingMax = 25
	ContentMax    = 40
	KeywordsMax   = 35
	JobMatchMax   = 15
)

// Layout limits. Values outside these ranges lose the corresponding points.
const (
	minFontSizePt = 10.0
	maxFontSizePt = 12.0
	minMarginsIn  = 0.5
	maxMarginsIn  = 1.0
)

// Caps for the keyword category counters.
const (
	actionVerbCap      = 15
	industryKeywordCap = 10
	quantifiedCap      = 10
)

// CategoryStrategy scores a resume against fixed category weights:
// formatting (25), content (40) and keywords (35), plus a bonus of up to 15
// for overlap with the job description when one is given.
type CategoryStrategy struct {
	opts Options
}

// NewCategoryStrategy creates a category strategy.
func NewCategoryStrategy(opts Options) *CategoryStrategy {
	return &CategoryStrategy{opts: opts.withDefaults()}
}

// Name returns "category".
func (s *CategoryStrategy) Name() string {
	return StrategyCategory
}

// Score evaluates every category and returns round(total/max*100) as the percentage.
func (s *CategoryStrategy) Score(req types.ScoreRequest) *types.ScoreReport {
	rs := s.opts.Rules
	signals := validation.Analyze(req.Resume, rs)

	layout := types.Layout{}
	if req.Layout != nil {
		layout = *req.Layout
	}

	results := []types.CategoryResult{
		formattingCategory(signals, layout, rs),
		contentCategory(signals),
		keywordsCategory(signals),
	}
	if bonus, ok := jobMatchCategory(req.Resume, req.JobDescription, rs); ok {
		results = append(results, bonus)
	}

	total, maxScore := 0, 0
	for _, r := range results {
		total += r.Score
		maxScore += r.MaxScore
	}
	pct := 0
	if maxScore > 0 {
		pct = round(float64(total) / float64(maxScore) * 100)
	}

	report := &types.ScoreReport{
		Strategy:     StrategyCategory,
		TotalScore:   total,
		MaxScore:     maxScore,
		Percentage:   pct,
		Grade:        Grade(pct),
		Results:      results,
		FormatChecks: validation.RunFormatChecks(req.Resume, rs, s.opts.MaxLineLength),
		Violations:   validation.ValidateLineLengths(req.Resume, s.opts.MaxLineLength),
	}
	report.Suggestions = categorySuggestions(report)
	return report
}

func formattingCategory(sig validation.Signals, layout types.Layout, rs *rules.RuleSet) types.CategoryResult {
	fontOK := layout.FontFamily == "" || rs.IsStandardFont(layout.FontFamily)
	sizeOK := layout.FontSizePt == 0 || (layout.FontSizePt >= minFontSizePt && layout.FontSizePt <= maxFontSizePt)
	marginsOK := layout.MarginsIn == 0 || (layout.MarginsIn >= minMarginsIn && layout.MarginsIn <= maxMarginsIn)

	return category(CategoryFormatting, FormattingMax,
		flag("no_tables", "No tables", !(sig.HasTables || layout.HasTables), 5),
		flag("no_columns", "Single-column layout", !(sig.HasColumns || layout.HasColumns), 5),
		flag("standard_font", "Standard font", fontOK, 5).withDetail(layout.FontFamily),
		flag("font_size", "Font size between 10 and 12pt", sizeOK, 5).withDetail(formatFloat(layout.FontSizePt, "pt")),
		flag("margins", "Margins between 0.5 and 1 inch", marginsOK, 5).withDetail(formatFloat(layout.MarginsIn, "in")),
	)
}

func contentCategory(sig validation.Signals) types.CategoryResult {
	return category(CategoryContent, ContentMax,
		flag("has_email", "Email address", sig.HasEmail, 5),
		flag("has_phone", "Phone number", sig.HasPhone, 5),
		flag("has_summary", "Summary section", sig.Sections[rules.SectionSummary], 5),
		flag("has_experience", "Experience section", sig.Sections[rules.SectionExperience], 10),
		flag("has_education", "Education section", sig.Sections[rules.SectionEducation], 8),
		flag("has_skills", "Skills section", sig.Sections[rules.SectionSkills], 7),
	)
}

func keywordsCategory(sig validation.Signals) types.CategoryResult {
	return category(CategoryKeywords, KeywordsMax,
		counter("action_verbs", "Action verbs", sig.ActionVerbs, actionVerbCap),
		counter("industry_keywords", "Industry keywords", sig.IndustryKeywords, industryKeywordCap),
		counter("quantified_results", "Quantified results", sig.QuantifiedResults, quantifiedCap),
	)
}

// jobMatchCategory awards round(15*overlap) where overlap is the share of
// distinct job description tokens present in the resume. It reports false
// when the job description has no usable tokens.
func jobMatchCategory(resume, jobDescription string, rs *rules.RuleSet) (types.CategoryResult, bool) {
	jdTokens := uniqueTokens(jobDescription, rs)
	if len(jdTokens) == 0 {
		return types.CategoryResult{}, false
	}

	resumeSet := make(map[string]struct{})
	for _, tok := range parsing.Tokenize(resume, rs.Stopwords) {
		resumeSet[tok] = struct{}{}
	}

	found := 0
	for _, tok := range jdTokens {
		if _, ok := resumeSet[tok]; ok {
			found++
		}
	}
	overlap := float64(found) / float64(len(jdTokens))
	points := round(JobMatchMax * overlap)

	return types.CategoryResult{
		Name:     CategoryJobMatch,
		Score:    points,
		MaxScore: JobMatchMax,
		Checks: []types.CheckResult{{
			ID:        "job_overlap",
			Label:     "Job description overlap",
			Passed:    found == len(jdTokens),
			Points:    points,
			MaxPoints: JobMatchMax,
			Detail:    fmt.Sprintf("%d of %d job terms found", found, len(jdTokens)),
		}},
	}, true
}

func uniqueTokens(text string, rs *rules.RuleSet) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, tok := range parsing.Tokenize(text, rs.Stopwords) {
		if _, ok := seen[tok]; ok {
			continue
		}
		seen[tok] = struct{}{}
		out = append(out, tok)
	}
	return out
}

type check types.CheckResult

func flag(id, label string, passed bool, points int) check {
	c := check{ID: id, Label: label, Passed: passed, MaxPoints: points}
	if passed {
		c.Points = points
	}
	return c
}

func counter(id, label string, n, limit int) check {
	return check{
		ID:        id,
		Label:     label,
		Passed:    n >= limit,
		Points:    min(n, limit),
		MaxPoints: limit,
		Detail:    fmt.Sprintf("%d found", n),
	}
}

func (c check) withDetail(detail string) check {
	c.Detail = detail
	return c
}

func category(name string, maxScore int, checks ...check) types.CategoryResult {
	result := types.CategoryResult{Name: name, MaxScore: maxScore}
	for _, c := range checks {
		result.Score += c.Points
		result.Checks = append(result.Checks, types.CheckResult(c))
	}
	return result
}

func formatFloat(v float64, unit string) string {
	if v == 0 {
		return ""
	}
	return fmt.Sprintf("%g%s", v, unit)
}
