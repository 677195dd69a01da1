package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kevohmutwiri9-creator/my-ats-resume-builder-sub000/internal/scoring"
)

func TestScoreBatchCommand_MissingResumesFlag(t *testing.T) {
	_, _, job := writeInputs(t)

	output, err := runCLI(t, "score-batch", "--job", job)

	assert.Error(t, err)
	assert.Contains(t, output, "required flag(s) \"resumes\" not set")
}

func TestScoreBatchCommand_EmptyDirectory(t *testing.T) {
	_, _, job := writeInputs(t)

	output, err := runCLI(t, "score-batch", "--job", job, "--resumes", t.TempDir())

	assert.Error(t, err)
	assert.Contains(t, output, "no supported resume files found")
}

func TestScoreBatchCommand_JSONOutput(t *testing.T) {
	dir, _, job := writeInputs(t)
	resumes := filepath.Join(dir, "resumes")
	require.NoError(t, os.MkdirAll(resumes, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(resumes, "b.txt"), []byte(testResume), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(resumes, "a.md"), []byte("Nothing relevant here"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(resumes, "photo.png"), []byte{0x89, 'P', 'N', 'G'}, 0644))
	outFile := filepath.Join(dir, "batch.json")

	output, err := runCLI(t, "score-batch",
		"--job", job,
		"--resumes", resumes,
		"--concurrency", "2",
		"--format", "json",
		"--out", outFile)
	require.NoError(t, err, output)

	content, err := os.ReadFile(outFile)
	require.NoError(t, err)

	var results []scoring.BatchResult
	require.NoError(t, json.Unmarshal(content, &results))
	require.Len(t, results, 2)
	assert.Equal(t, "a.md", results[0].Name)
	assert.Equal(t, "b.txt", results[1].Name)
	assert.Greater(t, results[1].Report.Percentage, results[0].Report.Percentage)
}
