package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kevohmutwiri9-creator/my-ats-resume-builder-sub000/internal/config"
	"github.com/kevohmutwiri9-creator/my-ats-resume-builder-sub000/internal/types"
	bundled "github.com/kevohmutwiri9-creator/my-ats-resume-builder-sub000/schemas"
)

func TestStringFlag(t *testing.T) {
	cmd := &cobra.Command{Use: "test"}
	var value string
	cmd.Flags().StringVar(&value, "strategy", "", "")

	assert.Equal(t, "keyword", stringFlag(cmd, "strategy", value, "keyword"))

	require.NoError(t, cmd.Flags().Set("strategy", "category"))
	assert.Equal(t, "category", stringFlag(cmd, "strategy", value, "keyword"))
}

func TestJobSources(t *testing.T) {
	saved := appConfig
	t.Cleanup(func() { appConfig = saved })
	appConfig = config.Config{Job: "configured.txt"}

	newCmd := func() (*cobra.Command, *string, *string) {
		cmd := &cobra.Command{Use: "test"}
		var job, jobURL string
		cmd.Flags().StringVar(&job, "job", "", "")
		cmd.Flags().StringVar(&jobURL, "job-url", "", "")
		return cmd, &job, &jobURL
	}

	cmd, job, jobURL := newCmd()
	file, url := jobSources(cmd, *job, *jobURL)
	assert.Equal(t, "configured.txt", file)
	assert.Empty(t, url)

	cmd, job, jobURL = newCmd()
	require.NoError(t, cmd.Flags().Set("job-url", "https://example.com/job"))
	file, url = jobSources(cmd, *job, *jobURL)
	assert.Empty(t, file)
	assert.Equal(t, "https://example.com/job", url)

	cmd, job, jobURL = newCmd()
	require.NoError(t, cmd.Flags().Set("job", "flag.txt"))
	file, url = jobSources(cmd, *job, *jobURL)
	assert.Equal(t, "flag.txt", file)
	assert.Empty(t, url)
}

func TestLoadJob_Validation(t *testing.T) {
	ctx := context.Background()

	_, err := loadJob(ctx, "", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "either --job or --job-url")

	_, err = loadJob(ctx, "job.txt", "https://example.com")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mutually exclusive")

	_, err = loadJob(ctx, filepath.Join(t.TempDir(), "missing.txt"), "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "job description file not found")
}

func TestLoadJob_File(t *testing.T) {
	_, _, job := writeInputs(t)

	doc, err := loadJob(context.Background(), job, "")
	require.NoError(t, err)
	assert.Contains(t, doc.Text, "Requirements:")
	assert.Equal(t, "job.txt", doc.Name())
}

func TestEmit_WritesFileAndValidates(t *testing.T) {
	dir := t.TempDir()
	outFile := filepath.Join(dir, "nested", "groups.json")

	groups := types.KeywordGroups{
		Must: types.KeywordGroup{{Key: "python", Weight: 2}},
		Nice: types.KeywordGroup{},
	}
	require.NoError(t, emit(context.Background(), groups, "json", outFile, bundled.KeywordGroups))

	content, err := os.ReadFile(outFile)
	require.NoError(t, err)
	assert.JSONEq(t, `{"must": [{"key": "python", "weight": 2}], "nice": []}`, string(content))
}

func TestEmit_SchemaViolation(t *testing.T) {
	outFile := filepath.Join(t.TempDir(), "groups.json")

	bad := types.KeywordGroups{
		Must: types.KeywordGroup{{Key: "", Weight: 0}},
		Nice: types.KeywordGroup{},
	}
	err := emit(context.Background(), bad, "json", outFile, bundled.KeywordGroups)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "output does not match")

	_, statErr := os.Stat(outFile)
	assert.True(t, os.IsNotExist(statErr))
}

func TestEmit_UnknownSchemaOnlyWarns(t *testing.T) {
	outFile := filepath.Join(t.TempDir(), "out.yaml")

	err := emit(context.Background(), map[string]int{"n": 1}, "yaml", outFile, "missing.schema.json")
	require.NoError(t, err)

	content, err := os.ReadFile(outFile)
	require.NoError(t, err)
	assert.Equal(t, "n: 1\n", string(content))
}

func TestEmit_UnknownFormat(t *testing.T) {
	err := emit(context.Background(), map[string]int{}, "xml", "", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported output format")
}

func TestLayoutFromFlags(t *testing.T) {
	t.Cleanup(func() {
		scoreFont, scoreFontSize, scoreMargins = "", 0, 0
	})

	assert.Nil(t, layoutFromFlags())

	scoreFont, scoreFontSize, scoreMargins = "Arial", 11, 0.75
	layout := layoutFromFlags()
	require.NotNil(t, layout)
	assert.Equal(t, "Arial", layout.FontFamily)
	assert.Equal(t, 11.0, layout.FontSizePt)
	assert.Equal(t, 0.75, layout.MarginsIn)
}

func TestCommandsRegistered(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"score", "score-batch", "keywords", "sections", "check-format", "rules", "validate"} {
		assert.True(t, names[want], "missing command %s", want)
	}
}
