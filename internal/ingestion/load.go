// Package ingestion loads resumes and job descriptions from files and URLs
// and reduces them to clean plain text.
package ingestion

import (
	"bytes"
	"context"
	"fmt"
	"html"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"

	"github.com/kevohmutwiri9-creator/my-ats-resume-builder-sub000/internal/fetch"
	"github.com/kevohmutwiri9-creator/my-ats-resume-builder-sub000/internal/logging"
)

// Format is an input document format.
type Format string

// Supported formats.
const (
	FormatText Format = "text"
	FormatPDF  Format = "pdf"
	FormatDOCX Format = "docx"
	FormatHTML Format = "html"
	FormatURL  Format = "url"
)

var extensionFormats = map[string]Format{
	".txt":  FormatText,
	".md":   FormatText,
	".text": FormatText,
	".pdf":  FormatPDF,
	".docx": FormatDOCX,
	".html": FormatHTML,
	".htm":  FormatHTML,
}

// unsupportedExtensions are binary formats that must not be read as text.
var unsupportedExtensions = map[string]bool{
	".doc": true, ".rtf": true, ".odt": true, ".pages": true,
	".png": true, ".jpg": true, ".jpeg": true, ".gif": true, ".zip": true,
}

// Document is extracted, cleaned text with its metadata.
type Document struct {
	Text     string
	Metadata *Metadata
}

// Name returns the base name of the document source.
func (d *Document) Name() string {
	return filepath.Base(d.Metadata.Source)
}

// DetectFormat maps a file path to a Format. Unknown extensions are read as
// plain text; known binary formats return *UnsupportedFormatError.
func DetectFormat(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if f, ok := extensionFormats[ext]; ok {
		return f, nil
	}
	if unsupportedExtensions[ext] {
		return "", &UnsupportedFormatError{Path: path, Extension: ext}
	}
	return FormatText, nil
}

// IsSupported reports whether LoadFile can read path.
func IsSupported(path string) bool {
	_, ok := extensionFormats[strings.ToLower(filepath.Ext(path))]
	return ok
}

func supportedList() string {
	exts := make([]string, 0, len(extensionFormats))
	for ext := range extensionFormats {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return strings.Join(exts, ", ")
}

// LoadFile reads a document from disk, extracts its text according to its
// extension and cleans it.
func LoadFile(ctx context.Context, path string) (*Document, error) {
	format, err := DetectFormat(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &ExtractionError{Path: path, Message: "file not found", Cause: err}
		}
		return nil, &ExtractionError{Path: path, Message: "failed to read file", Cause: err}
	}

	text, err := ExtractText(data, format)
	if err != nil {
		return nil, &ExtractionError{Path: path, Message: fmt.Sprintf("failed to extract %s text", format), Cause: err}
	}

	cleaned := CleanText(text)
	logging.FromContext(ctx).Debug().
		Str("path", path).
		Str("format", string(format)).
		Int("bytes", len(data)).
		Int("chars", len(cleaned)).
		Msg("Loaded document")

	return &Document{Text: cleaned, Metadata: NewMetadata(cleaned, path, format)}, nil
}

// LoadURL fetches a job posting and cleans its text.
func LoadURL(ctx context.Context, url string, opts fetch.JobOptions) (*Document, error) {
	posting, err := fetch.JobPosting(ctx, url, opts)
	if err != nil {
		return nil, err
	}

	cleaned := CleanText(posting.Text)
	meta := NewMetadata(cleaned, url, FormatURL)
	meta.Platform = string(posting.Platform)
	meta.Rendered = posting.Rendered

	return &Document{Text: cleaned, Metadata: meta}, nil
}

// LoadDir loads every supported document directly inside dir, sorted by name.
// Unsupported files are skipped.
func LoadDir(ctx context.Context, dir string) ([]*Document, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, &ExtractionError{Path: dir, Message: "failed to read directory", Cause: err}
	}

	var docs []*Document
	for _, entry := range entries {
		if entry.IsDir() || !IsSupported(entry.Name()) {
			continue
		}
		doc, err := LoadFile(ctx, filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

// ExtractText converts raw document bytes of the given format to text.
func ExtractText(data []byte, format Format) (string, error) {
	switch format {
	case FormatPDF:
		return extractPDFText(data)
	case FormatDOCX:
		return extractDocxText(data)
	case FormatHTML:
		return fetch.ExtractMainText(string(data), []string{"main", "article", "body"})
	default:
		return string(data), nil
	}
}

func extractPDFText(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to read pdf: %w", err)
	}

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("failed to read pdf page %d: %w", i, err)
		}
		sb.WriteString(text)
		sb.WriteString("\n")
	}
	return sb.String(), nil
}

var (
	docxParagraphEnd = regexp.MustCompile(`</w:p>|<w:br\s*/>|<w:cr\s*/>`)
	docxTab          = regexp.MustCompile(`<w:tab\s*/>`)
	xmlTag           = regexp.MustCompile(`<[^>]+>`)
)

func extractDocxText(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to parse docx: %w", err)
	}
	defer func() { _ = doc.Close() }()

	return docxXMLToText(doc.Editable().GetContent()), nil
}

// docxXMLToText strips WordprocessingML markup, keeping paragraph breaks
func docxXMLToText(content string) string {
	content = docxParagraphEnd.ReplaceAllString(content, "\n")
	content = docxTab.ReplaceAllString(content, "\t")
	content = xmlTag.ReplaceAllString(content, "")
	return html.UnescapeString(content)
}
