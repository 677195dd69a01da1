package main

import (
	"github.com/spf13/cobra"

	"github.com/kevohmutwiri9-creator/my-ats-resume-builder-sub000/internal/keywords"
	"github.com/kevohmutwiri9-creator/my-ats-resume-builder-sub000/internal/logging"
	bundled "github.com/kevohmutwiri9-creator/my-ats-resume-builder-sub000/schemas"
)

var keywordsCmd = &cobra.Command{
	Use:   "keywords",
	Short: "Extract weighted must-have and nice-to-have keywords from a job description",
	RunE:  runKeywords,
}

var (
	keywordsJob    string
	keywordsJobURL string
	keywordsFormat string
	keywordsOutput string
)

func init() {
	keywordsCmd.Flags().StringVarP(&keywordsJob, "job", "j", "", "Path to job description file")
	keywordsCmd.Flags().StringVarP(&keywordsJobURL, "job-url", "u", "", "URL to fetch job posting from")
	keywordsCmd.Flags().StringVarP(&keywordsFormat, "format", "f", "json", "Output format: text, json or yaml")
	keywordsCmd.Flags().StringVarP(&keywordsOutput, "out", "o", "", "Write the keyword groups to this file instead of stdout")

	rootCmd.AddCommand(keywordsCmd)
}

func runKeywords(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	jobFile, jobURL := jobSources(cmd, keywordsJob, keywordsJobURL)
	job, err := loadJob(ctx, jobFile, jobURL)
	if err != nil {
		return err
	}

	groups := keywords.ExtractGroups(job.Text, ruleSet)

	logging.FromContext(ctx).Debug().
		Object("job", job.Metadata).
		Int("must", len(groups.Must)).
		Int("nice", len(groups.Nice)).
		Msg("Extracted keywords")

	return emit(ctx, groups, keywordsFormat, keywordsOutput, bundled.KeywordGroups)
}
