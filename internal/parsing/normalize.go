// Package parsing turns free text into the canonical forms used for keyword
// matching: normalized strings, word tokens and must/nice text regions.
package parsing

import (
	"strings"
	"unicode"

	"github.com/kevohmutwiri9-creator/my-ats-resume-builder-sub000/internal/rules"
)

// MinTokenLength is the shortest token Tokenize keeps.
const MinTokenLength = 3

// Normalize lowercases text, replaces every character outside
// [a-z0-9+.#-] and whitespace with a space, collapses whitespace runs and
// trims. Symbols used in skill names ("c++", "c#", "node.js") survive.
func Normalize(text string) string {
	if text == "" {
		return ""
	}

	lower := strings.ToLower(text)

	var sb strings.Builder
	sb.Grow(len(lower))
	for _, r := range lower {
		if keepRune(r) {
			sb.WriteRune(r)
		} else {
			sb.WriteByte(' ')
		}
	}

	return strings.Join(strings.Fields(sb.String()), " ")
}

func keepRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z':
		return true
	case r >= '0' && r <= '9':
		return true
	case r == '+' || r == '.' || r == '#' || r == '-':
		return true
	default:
		return unicode.IsSpace(r)
	}
}

// Tokenize normalizes text and returns its word tokens in order, keeping
// duplicates. Trailing sentence periods and stray hyphens are dropped ("sql."
// becomes "sql") while a leading dot is kept (".net"); tokens shorter than
// MinTokenLength and stopwords are skipped.
func Tokenize(text string, stopwords rules.WordSet) []string {
	normalized := Normalize(text)
	if normalized == "" {
		return nil
	}

	var tokens []string
	for _, f := range strings.Split(normalized, " ") {
		tok := strings.TrimRight(strings.TrimLeft(f, "-"), ".-")
		if len(tok) < MinTokenLength {
			continue
		}
		if stopwords.Has(tok) {
			continue
		}
		tokens = append(tokens, tok)
	}
	return tokens
}

// ContainsAny reports whether normalized contains the normalized form of any
// phrase as whole words, so "a plus" does not match "java plus". normalized
// must already be the output of Normalize.
func ContainsAny(normalized string, phrases []string) bool {
	padded := padWords(normalized)
	for _, p := range phrases {
		np := Normalize(p)
		if np != "" && strings.Contains(padded, padWords(np)) {
			return true
		}
	}
	return false
}

// RemovePhrases normalizes text and deletes every whole-word occurrence of
// the given phrases.
func RemovePhrases(text string, phrases []string) string {
	padded := padWords(Normalize(text))
	for _, p := range phrases {
		np := Normalize(p)
		if np == "" {
			continue
		}
		target := padWords(np)
		for strings.Contains(padded, target) {
			padded = strings.ReplaceAll(padded, target, " ")
		}
	}
	return strings.TrimSpace(padded)
}

// padWords drops trailing periods from each word and wraps the result in
// spaces, so whole words can be found with strings.Contains.
func padWords(normalized string) string {
	fields := strings.Fields(normalized)
	for i, f := range fields {
		fields[i] = strings.TrimRight(f, ".")
	}
	return " " + strings.Join(fields, " ") + " "
}
