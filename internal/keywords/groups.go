package keywords

import (
	"github.com/kevohmutwiri9-creator/my-ats-resume-builder-sub000/internal/parsing"
	"github.com/kevohmutwiri9-creator/my-ats-resume-builder-sub000/internal/rules"
	"github.com/kevohmutwiri9-creator/my-ats-resume-builder-sub000/internal/types"
)

// ExtractGroups splits a job description into must-have and nice-to-have
// regions and extracts a keyword group from each.
func ExtractGroups(jobDescription string, rs *rules.RuleSet) types.KeywordGroups {
	sections := parsing.GuessSections(jobDescription, rs)
	return types.KeywordGroups{
		Must: ExtractWeighted(sections.MustText, MustOptions, rs),
		Nice: ExtractWeighted(sections.NiceText, NiceOptions, rs),
	}
}
