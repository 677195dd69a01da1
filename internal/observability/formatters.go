// Package observability provides formatted output for CLI results: boxed
// human-readable summaries plus JSON and YAML renderings of the same data.
package observability

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/kevohmutwiri9-creator/my-ats-resume-builder-sub000/internal/parsing"
	"github.com/kevohmutwiri9-creator/my-ats-resume-builder-sub000/internal/scoring"
	"github.com/kevohmutwiri9-creator/my-ats-resume-builder-sub000/internal/types"
)

// Format is an output format name.
type Format string

const (
	// FormatText is the boxed human-readable format
	FormatText Format = "text"
	// FormatJSON is indented JSON
	FormatJSON Format = "json"
	// FormatYAML is YAML with two-space indentation
	FormatYAML Format = "yaml"
)

// Formatter writes data to w in one output format.
type Formatter interface {
	Format(w io.Writer, data any) error
}

// FormatterFunc allows functions to implement Formatter.
type FormatterFunc func(io.Writer, any) error

// Format implements the Formatter interface.
func (f FormatterFunc) Format(w io.Writer, data any) error {
	return f(w, data)
}

// ParseFormat converts s to a Format. An empty string means text.
func ParseFormat(s string) (Format, error) {
	format := Format(strings.ToLower(strings.TrimSpace(s)))
	switch format {
	case "":
		return FormatText, nil
	case FormatText, FormatJSON, FormatYAML:
		return format, nil
	default:
		return "", fmt.Errorf("unsupported output format %q (want text, json or yaml)", s)
	}
}

// NewFormatter returns the formatter for format, falling back to text.
func NewFormatter(format Format) Formatter {
	switch format {
	case FormatJSON:
		return &JSONFormatter{Indent: "  "}
	case FormatYAML:
		return &YAMLFormatter{}
	default:
		return &TextFormatter{}
	}
}

// JSONFormatter outputs JSON.
type JSONFormatter struct {
	Indent string
}

// Format implements the Formatter interface for JSON output.
func (f *JSONFormatter) Format(w io.Writer, data any) error {
	encoder := json.NewEncoder(w)
	if f.Indent != "" {
		encoder.SetIndent("", f.Indent)
	}
	return encoder.Encode(data)
}

// YAMLFormatter outputs YAML.
type YAMLFormatter struct{}

// Format implements the Formatter interface for YAML output.
func (f *YAMLFormatter) Format(w io.Writer, data any) error {
	yamlData, err := yaml.MarshalWithOptions(data,
		yaml.Indent(2),
		yaml.IndentSequence(false),
	)
	if err != nil {
		return err
	}
	_, err = w.Write(yamlData)
	return err
}

// TextFormatter renders known result types through a Printer and falls back
// to JSON for anything else.
type TextFormatter struct{}

// Format implements the Formatter interface for text output.
func (f *TextFormatter) Format(w io.Writer, data any) error {
	p := NewPrinter(w)
	switch v := data.(type) {
	case *types.ScoreReport:
		p.PrintReport(v)
	case types.KeywordGroups:
		p.PrintKeywordGroups(v)
	case parsing.Sections:
		p.PrintSections(v)
	case []scoring.BatchResult:
		return p.PrintBatch(v)
	case *CheckFormatResult:
		p.PrintFormatChecks(v.FormatChecks)
		p.PrintViolations(v.Violations)
	default:
		return (&JSONFormatter{Indent: "  "}).Format(w, data)
	}
	return nil
}

// CheckFormatResult is the output of a standalone formatting check.
type CheckFormatResult struct {
	FormatChecks []types.FormatCheck `json:"format_checks"`
	Violations   []types.Violation   `json:"violations"`
}
