// Package schemas bundles the JSON Schema documents for the agent's JSON
// artifacts so they can be used without a checkout on disk.
package schemas

import "embed"

// Schema file names.
const (
	ScoreReport   = "score_report.schema.json"
	KeywordGroups = "keyword_groups.schema.json"
	Config        = "config.schema.json"
)

//go:embed *.schema.json
var files embed.FS

// Read returns the raw content of the named schema.
func Read(name string) ([]byte, error) {
	return files.ReadFile(name)
}

// Names lists every bundled schema.
func Names() []string {
	return []string{ScoreReport, KeywordGroups, Config}
}
