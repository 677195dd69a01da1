// Package matching measures how much of a keyword group a resume covers.
package matching

import (
	"math"
	"strings"

	"github.com/kevohmutwiri9-creator/my-ats-resume-builder-sub000/internal/parsing"
	"github.com/kevohmutwiri9-creator/my-ats-resume-builder-sub000/internal/types"
)

// MatchGroup tests each keyword in group against the resume text and returns
// the weighted coverage. An item matches when its normalized key occurs as a
// substring of the normalized resume. Score is 0 when the group carries no
// weight.
func MatchGroup(group types.KeywordGroup, resume string) *types.MatchResult {
	return matchNormalized(group, parsing.Normalize(resume))
}

// MatchGroups matches both groups against the same resume, normalizing it
// only once.
func MatchGroups(groups types.KeywordGroups, resume string) (must, nice *types.MatchResult) {
	normalized := parsing.Normalize(resume)
	return matchNormalized(groups.Must, normalized), matchNormalized(groups.Nice, normalized)
}

func matchNormalized(group types.KeywordGroup, normalized string) *types.MatchResult {
	result := &types.MatchResult{
		Matched: make(types.KeywordGroup, 0, len(group)),
		Missing: make(types.KeywordGroup, 0, len(group)),
	}

	for _, item := range group {
		result.TotalWeight += item.Weight

		key := parsing.Normalize(item.Key)
		if key != "" && strings.Contains(normalized, key) {
			result.Matched = append(result.Matched, item)
			result.MatchedWeight += item.Weight
		} else {
			result.Missing = append(result.Missing, item)
		}
	}

	result.Score = Percent(result.MatchedWeight, result.TotalWeight)
	return result
}

// Percent returns round(part/total*100), or 0 when total is not positive.
func Percent(part, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(total) * 100))
}
