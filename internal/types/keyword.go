// Package types provides type definitions for structured data used throughout the ATS scorer.
//
//nolint:revive // types is a standard Go package name pattern
package types

// MaxGroupSize is the maximum number of items kept in a KeywordGroup.
const MaxGroupSize = 25

// KeywordItem is a normalized keyword or phrase with its accumulated weight
type KeywordItem struct {
	Key    string `json:"key"`
	Weight int    `json:"weight"`
}

// KeywordGroup is an ordered list of keywords, heaviest first
type KeywordGroup []KeywordItem

// Keys returns the keyword strings in group order.
func (g KeywordGroup) Keys() []string {
	keys := make([]string, len(g))
	for i, item := range g {
		keys[i] = item.Key
	}
	return keys
}

// TotalWeight sums the weights of every item in the group.
func (g KeywordGroup) TotalWeight() int {
	total := 0
	for _, item := range g {
		total += item.Weight
	}
	return total
}

// KeywordGroups holds the must-have and nice-to-have groups of one job description
type KeywordGroups struct {
	Must KeywordGroup `json:"must"`
	Nice KeywordGroup `json:"nice"`
}

// MatchResult describes how much of a keyword group a resume covers
type MatchResult struct {
	Score         int          `json:"score"` // 0-100
	Matched       KeywordGroup `json:"matched"`
	Missing       KeywordGroup `json:"missing"`
	TotalWeight   int          `json:"total_weight"`
	MatchedWeight int          `json:"matched_weight"`
}
