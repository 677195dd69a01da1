package ingestion

import (
	"regexp"
	"strings"
)

var (
	// wideGap is a run of spaces wide enough to separate layout columns
	wideGap        = regexp.MustCompile(`[ \t]*(?: {4,}|\t)[ \t]*`)
	spaceRun       = regexp.MustCompile(`[ \x{00A0}\x{2007}\x{202F}]+`)
	blankLineRun   = regexp.MustCompile(`\n\n\n+`)
	invisibleRunes = strings.NewReplacer("\u200b", "", "\u200c", "", "\u200d", "", "\ufeff", "", "\u00ad", "")
	pageBreaks     = strings.NewReplacer("\f", "\n", "\v", "\n")
)

// CleanText normalizes extracted document text while preserving its line
// structure: line endings become LF, invisible characters are dropped, runs
// of spaces collapse to one, wide gaps between columns collapse to a single
// tab, and at most one blank line is kept between paragraphs.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")
	content = pageBreaks.Replace(content)
	content = invisibleRunes.Replace(content)

	lines := strings.Split(content, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		cleaned = append(cleaned, cleanLine(line))
	}

	result := strings.Join(cleaned, "\n")
	result = blankLineRun.ReplaceAllString(result, "\n\n")
	return strings.TrimSpace(result)
}

// cleanLine trims a line and normalizes the whitespace inside it
func cleanLine(line string) string {
	line = strings.TrimSpace(line)
	if line == "" {
		return ""
	}
	line = wideGap.ReplaceAllString(line, "\t")
	return spaceRun.ReplaceAllString(line, " ")
}
