package rules

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

// Overlay modes.
const (
	ModeExtend  = "extend"
	ModeReplace = "replace"
)

// Overlay is the on-disk form of a rule file. Empty lists leave the default
// table untouched. In extend mode non-empty lists are appended to the
// defaults; in replace mode they replace them.
type Overlay struct {
	Mode             string              `yaml:"mode,omitempty"`
	Stopwords        []string            `yaml:"stopwords,omitempty"`
	Phrases          []string            `yaml:"phrases,omitempty"`
	MustHints        []string            `yaml:"must_hints,omitempty"`
	NiceHints        []string            `yaml:"nice_hints,omitempty"`
	ActionVerbs      []string            `yaml:"action_verbs,omitempty"`
	IndustryKeywords []string            `yaml:"industry_keywords,omitempty"`
	SectionHeadings  map[string][]string `yaml:"section_headings,omitempty"`
	StandardFonts    []string            `yaml:"standard_fonts,omitempty"`
	FormatAdvice     []string            `yaml:"format_advice,omitempty"`
}

// LoadError is returned when a rule file cannot be read or parsed.
type LoadError struct {
	Path    string
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to load rules %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to load rules %s: %s", e.Path, e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}

// LoadFile reads a YAML rule file and applies it on top of Default.
// An empty path returns Default.
func LoadFile(path string) (*RuleSet, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Message: "cannot read file", Cause: err}
	}

	rs, err := Parse(data)
	if err != nil {
		return nil, &LoadError{Path: path, Message: "invalid rule file", Cause: err}
	}
	return rs, nil
}

// Parse decodes YAML overlay content and applies it on top of Default.
func Parse(data []byte) (*RuleSet, error) {
	var ov Overlay
	if err := yaml.Unmarshal(data, &ov); err != nil {
		return nil, err
	}
	return ov.Apply(Default())
}

// Apply merges the overlay into rs and returns it.
func (ov *Overlay) Apply(rs *RuleSet) (*RuleSet, error) {
	mode := ov.Mode
	if mode == "" {
		mode = ModeExtend
	}
	if mode != ModeExtend && mode != ModeReplace {
		return nil, fmt.Errorf("unknown mode %q (want %q or %q)", mode, ModeExtend, ModeReplace)
	}
	replace := mode == ModeReplace

	merge := func(base, extra []string) []string {
		if len(extra) == 0 {
			return base
		}
		if replace {
			return append([]string(nil), extra...)
		}
		return append(base, extra...)
	}
	mergeSet := func(base WordSet, extra []string) WordSet {
		if len(extra) == 0 {
			return base
		}
		if replace {
			return NewWordSet(extra...)
		}
		for w := range NewWordSet(extra...) {
			base[w] = struct{}{}
		}
		return base
	}

	rs.Stopwords = mergeSet(rs.Stopwords, ov.Stopwords)
	rs.Phrases = merge(rs.Phrases, ov.Phrases)
	rs.MustHints = merge(rs.MustHints, ov.MustHints)
	rs.NiceHints = merge(rs.NiceHints, ov.NiceHints)
	rs.ActionVerbs = mergeSet(rs.ActionVerbs, ov.ActionVerbs)
	rs.IndustryKeywords = merge(rs.IndustryKeywords, ov.IndustryKeywords)
	rs.StandardFonts = merge(rs.StandardFonts, ov.StandardFonts)
	rs.FormatAdvice = merge(rs.FormatAdvice, ov.FormatAdvice)
	for section, headings := range ov.SectionHeadings {
		rs.SectionHeadings[section] = merge(rs.SectionHeadings[section], headings)
	}

	return rs, nil
}

// Dump renders rs as a replace-mode overlay, suitable for editing and
// loading back with LoadFile.
func Dump(rs *RuleSet) ([]byte, error) {
	ov := Overlay{
		Mode:             ModeReplace,
		Stopwords:        rs.Stopwords.Sorted(),
		Phrases:          rs.Phrases,
		MustHints:        rs.MustHints,
		NiceHints:        rs.NiceHints,
		ActionVerbs:      rs.ActionVerbs.Sorted(),
		IndustryKeywords: rs.IndustryKeywords,
		SectionHeadings:  rs.SectionHeadings,
		StandardFonts:    rs.StandardFonts,
		FormatAdvice:     rs.FormatAdvice,
	}
	return yaml.MarshalWithOptions(ov, yaml.Indent(2), yaml.IndentSequence(false))
}
