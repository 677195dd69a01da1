package parsing

import (
	"regexp"
	"strings"

	"github.com/kevohmutwiri9-creator/my-ats-resume-builder-sub000/internal/rules"
)

// Mode is the classifier state while scanning a job description.
type Mode string

const (
	// ModeUnknown is the state before any heading; lines count toward both groups
	ModeUnknown Mode = "unknown"
	// ModeMust follows a must-have heading
	ModeMust Mode = "must"
	// ModeNice follows a nice-to-have heading
	ModeNice Mode = "nice"
	// ModeMixed follows a heading that names both; lines count toward both groups
	ModeMixed Mode = "mixed"
)

// Sections is a job description split into must-have and nice-to-have text.
type Sections struct {
	MustText string `json:"must_text"`
	NiceText string `json:"nice_text"`
	Mode     Mode   `json:"final_mode"`
}

// clauseBoundary splits "Required: Go. Preferred: Rust." into two clauses
// without breaking tokens such as "node.js".
var clauseBoundary = regexp.MustCompile(`[.;]\s+`)

// GuessSections scans text line by line and routes each line to the must
// and/or nice buffer for the current mode. Lines holding a hint phrase are
// split into clauses; a clause containing a hint is a heading that switches
// the mode, and only the text after its colon, if any, is kept, with hint
// phrases removed from it. Without any heading every line lands in both
// buffers.
func GuessSections(text string, rs *rules.RuleSet) Sections {
	mode := ModeUnknown
	var must, nice []string
	hints := append(append([]string(nil), rs.MustHints...), rs.NiceHints...)

	emit := func(s string) {
		switch mode {
		case ModeMust:
			must = append(must, s)
		case ModeNice:
			nice = append(nice, s)
		default:
			must = append(must, s)
			nice = append(nice, s)
		}
	}

	text = strings.ReplaceAll(text, "\r\n", "\n")
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		normalizedLine := Normalize(line)
		if !ContainsAny(normalizedLine, rs.MustHints) && !ContainsAny(normalizedLine, rs.NiceHints) {
			emit(line)
			continue
		}

		for _, clause := range clauseBoundary.Split(line, -1) {
			clause = strings.TrimSpace(clause)
			normalized := Normalize(clause)
			if normalized == "" {
				continue
			}

			isMust := ContainsAny(normalized, rs.MustHints)
			isNice := ContainsAny(normalized, rs.NiceHints)
			if isMust || isNice {
				switch {
				case isMust && isNice:
					mode = ModeMixed
				case isMust:
					mode = ModeMust
				default:
					mode = ModeNice
				}
				if rest := afterColon(clause); rest != "" {
					if ContainsAny(Normalize(rest), hints) {
						rest = RemovePhrases(rest, hints)
					}
					if rest != "" {
						emit(rest)
					}
				}
				continue
			}

			emit(clause)
		}
	}

	return Sections{
		MustText: strings.Join(must, "\n"),
		NiceText: strings.Join(nice, "\n"),
		Mode:     mode,
	}
}

func afterColon(s string) string {
	idx := strings.Index(s, ":")
	if idx < 0 {
		return ""
	}
	return strings.TrimSpace(s[idx+1:])
}
