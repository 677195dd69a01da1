// Package keywords builds weighted keyword groups from job description text.
package keywords

import (
	"sort"
	"strings"

	"github.com/kevohmutwiri9-creator/my-ats-resume-builder-sub000/internal/parsing"
	"github.com/kevohmutwiri9-creator/my-ats-resume-builder-sub000/internal/rules"
	"github.com/kevohmutwiri9-creator/my-ats-resume-builder-sub000/internal/types"
)

// Options controls how much each detected term is worth.
type Options struct {
	PhraseWeight int
	WordWeight   int
	MaxItems     int
}

// Weighting used by ExtractGroups. Must-have signals are worth more.
var (
	MustOptions = Options{PhraseWeight: 5, WordWeight: 2, MaxItems: types.MaxGroupSize}
	NiceOptions = Options{PhraseWeight: 3, WordWeight: 1, MaxItems: types.MaxGroupSize}
)

// ExtractWeighted returns the heaviest keywords in text. Each curated phrase
// found in the text is credited PhraseWeight once; each word token is
// credited WordWeight per occurrence. Results are sorted by weight
// (descending) with ties kept in first-seen order, then truncated to
// MaxItems.
func ExtractWeighted(text string, opts Options, rs *rules.RuleSet) types.KeywordGroup {
	normalized := parsing.Normalize(text)
	if normalized == "" {
		return types.KeywordGroup{}
	}

	acc := newAccumulator()

	for _, phrase := range rs.Phrases {
		np := parsing.Normalize(phrase)
		if np == "" {
			continue
		}
		if strings.Contains(normalized, np) {
			acc.add(np, opts.PhraseWeight)
		}
	}

	for _, tok := range parsing.Tokenize(normalized, rs.Stopwords) {
		acc.add(tok, opts.WordWeight)
	}

	return acc.top(opts.MaxItems)
}

// accumulator sums weights per key and remembers insertion order so sorting
// is deterministic.
type accumulator struct {
	weights map[string]int
	order   []string
}

func newAccumulator() *accumulator {
	return &accumulator{weights: make(map[string]int)}
}

func (a *accumulator) add(key string, weight int) {
	if weight < 0 {
		weight = 0
	}
	if _, exists := a.weights[key]; !exists {
		a.order = append(a.order, key)
	}
	a.weights[key] += weight
}

func (a *accumulator) top(limit int) types.KeywordGroup {
	group := make(types.KeywordGroup, 0, len(a.order))
	for _, key := range a.order {
		group = append(group, types.KeywordItem{Key: key, Weight: a.weights[key]})
	}

	sort.SliceStable(group, func(i, j int) bool {
		return group[i].Weight > group[j].Weight
	})

	if limit >= 0 && len(group) > limit {
		group = group[:limit]
	}
	return group
}
