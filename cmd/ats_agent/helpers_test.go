package main

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const testResume = `Jane Doe
jane.doe@example.com | (555) 123-4567

Experience
Acme Corp, 2019 - 2023
- Built Python ETL pipelines feeding SQL dashboards
- Reduced infrastructure cost by 30%
- Led a team of 6 engineers

Skills
Python, SQL, Docker`

const testJob = `Senior Data Engineer

Requirements:
- Python
- SQL

Nice to have:
- Docker`

// getBinaryPath returns the path to the ats_agent binary for testing
func getBinaryPath(t *testing.T) string {
	if testing.Short() {
		t.Skip("Skipping CLI tests in short mode")
	}

	binaryPath := filepath.Join("..", "..", "bin", "ats_agent")
	if _, err := os.Stat(binaryPath); os.IsNotExist(err) {
		t.Skipf("Binary not found at %s, build it first with 'make build'", binaryPath)
	}

	return binaryPath
}

// writeInputs writes the sample resume and job description into a temp dir.
func writeInputs(t *testing.T) (dir, resume, job string) {
	t.Helper()
	dir = t.TempDir()
	resume = filepath.Join(dir, "resume.txt")
	job = filepath.Join(dir, "job.txt")
	require.NoError(t, os.WriteFile(resume, []byte(testResume), 0644))
	require.NoError(t, os.WriteFile(job, []byte(testJob), 0644))
	return dir, resume, job
}

// runCLI runs the binary with a clean ATS_* environment.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := exec.Command(getBinaryPath(t), args...)
	cmd.Env = append(os.Environ(), "ATS_LOG_FORMAT=json", "ATS_LOG_LEVEL=error")
	output, err := cmd.CombinedOutput()
	return string(output), err
}
