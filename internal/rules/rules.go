// Package rules holds the data tables that drive keyword extraction, section
// detection and resume checks. Tables are plain data so they can be swapped or
// extended without touching the scoring logic.
package rules

import (
	"slices"
	"sort"
	"strings"
)

// WordSet is a set of lowercase words.
type WordSet map[string]struct{}

// NewWordSet builds a WordSet from words, lowercasing and trimming each one.
func NewWordSet(words ...string) WordSet {
	set := make(WordSet, len(words))
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "" {
			continue
		}
		set[w] = struct{}{}
	}
	return set
}

// Has reports whether word is in the set.
func (s WordSet) Has(word string) bool {
	_, ok := s[word]
	return ok
}

// Sorted returns the members in lexical order.
func (s WordSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for w := range s {
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}

// Section names used by SectionHeadings.
const (
	SectionSummary    = "summary"
	SectionExperience = "experience"
	SectionEducation  = "education"
	SectionSkills     = "skills"
)

// RuleSet is a complete set of tables for one scoring run.
type RuleSet struct {
	Stopwords        WordSet
	Phrases          []string
	MustHints        []string
	NiceHints        []string
	ActionVerbs      WordSet
	IndustryKeywords []string
	SectionHeadings  map[string][]string
	StandardFonts    []string
	FormatAdvice     []string
}

// Default returns a fresh copy of the built-in tables. Callers may modify the
// returned value without affecting other callers.
func Default() *RuleSet {
	headings := make(map[string][]string, len(defaultSectionHeadings))
	for k, v := range defaultSectionHeadings {
		headings[k] = slices.Clone(v)
	}
	return &RuleSet{
		Stopwords:        NewWordSet(defaultStopwords...),
		Phrases:          slices.Clone(defaultPhrases),
		MustHints:        slices.Clone(defaultMustHints),
		NiceHints:        slices.Clone(defaultNiceHints),
		ActionVerbs:      NewWordSet(defaultActionVerbs...),
		IndustryKeywords: slices.Clone(defaultIndustryKeywords),
		SectionHeadings:  headings,
		StandardFonts:    slices.Clone(defaultStandardFonts),
		FormatAdvice:     slices.Clone(defaultFormatAdvice),
	}
}

// IsStandardFont reports whether font matches one of the standard fonts,
// ignoring case and surrounding whitespace.
func (rs *RuleSet) IsStandardFont(font string) bool {
	font = strings.ToLower(strings.TrimSpace(font))
	for _, f := range rs.StandardFonts {
		if strings.ToLower(f) == font {
			return true
		}
	}
	return false
}
