package scoring

import (
	"github.com/kevohmutwiri9-creator/my-ats-resume-builder-sub000/internal/keywords"
	"github.com/kevohmutwiri9-creator/my-ats-resume-builder-sub000/internal/matching"
	"github.com/kevohmutwiri9-creator/my-ats-resume-builder-sub000/internal/types"
	"github.com/kevohmutwiri9-creator/my-ats-resume-builder-sub000/internal/validation"
)

// Keyword strategy weights.
const (
	MustWeight = 0.7
	NiceWeight = 0.3
)

// Category names used by the keyword strategy.
const (
	CategoryMust = "must"
	CategoryNice = "nice"
)

// KeywordStrategy scores a resume by how much of the job description's
// must-have and nice-to-have keywords it covers.
type KeywordStrategy struct {
	opts Options
}

// NewKeywordStrategy creates a keyword strategy.
func NewKeywordStrategy(opts Options) *KeywordStrategy {
	return &KeywordStrategy{opts: opts.withDefaults()}
}

// Name returns "keyword".
func (s *KeywordStrategy) Name() string {
	return StrategyKeyword
}

// Score computes round(must*0.7 + nice*0.3). Format checks are attached to
// the report but do not affect the score.
func (s *KeywordStrategy) Score(req types.ScoreRequest) *types.ScoreReport {
	rs := s.opts.Rules

	groups := keywords.ExtractGroups(req.JobDescription, rs)
	must, nice := matching.MatchGroups(groups, req.Resume)

	final := FinalScore(must.Score, nice.Score)

	report := &types.ScoreReport{
		Strategy:   StrategyKeyword,
		TotalScore: final,
		MaxScore:   100,
		Percentage: final,
		Grade:      Grade(final),
		Results: []types.CategoryResult{
			{Name: CategoryMust, Score: must.Score, MaxScore: 100},
			{Name: CategoryNice, Score: nice.Score, MaxScore: 100},
		},
		Must:         must,
		Nice:         nice,
		FormatChecks: validation.RunFormatChecks(req.Resume, rs, s.opts.MaxLineLength),
		Violations:   validation.ValidateLineLengths(req.Resume, s.opts.MaxLineLength),
	}
	report.Suggestions = keywordSuggestions(report)
	return report
}

// FinalScore blends must and nice coverage, both in [0, 100].
func FinalScore(mustScore, niceScore int) int {
	return round(float64(mustScore)*MustWeight + float64(niceScore)*NiceWeight)
}
