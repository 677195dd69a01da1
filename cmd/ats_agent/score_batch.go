package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kevohmutwiri9-creator/my-ats-resume-builder-sub000/internal/ingestion"
	"github.com/kevohmutwiri9-creator/my-ats-resume-builder-sub000/internal/logging"
	"github.com/kevohmutwiri9-creator/my-ats-resume-builder-sub000/internal/scoring"
)

var scoreBatchCmd = &cobra.Command{
	Use:   "score-batch",
	Short: "Score every resume in a directory against one job description",
	Long: "Loads every supported resume directly inside --resumes, scores them concurrently " +
		"against the job description and prints one row per resume in file name order.",
	RunE: runScoreBatch,
}

var (
	batchResumes     string
	batchJob         string
	batchJobURL      string
	batchStrategy    string
	batchFormat      string
	batchOutput      string
	batchConcurrency int
)

func init() {
	scoreBatchCmd.Flags().StringVarP(&batchResumes, "resumes", "d", "", "Directory containing resume files (required)")
	scoreBatchCmd.Flags().StringVarP(&batchJob, "job", "j", "", "Path to job description file")
	scoreBatchCmd.Flags().StringVarP(&batchJobURL, "job-url", "u", "", "URL to fetch job posting from")
	scoreBatchCmd.Flags().StringVarP(&batchStrategy, "strategy", "s", "", "Scoring strategy: keyword or category")
	scoreBatchCmd.Flags().StringVarP(&batchFormat, "format", "f", "", "Output format: text, json or yaml")
	scoreBatchCmd.Flags().StringVarP(&batchOutput, "out", "o", "", "Write the results to this file instead of stdout")
	scoreBatchCmd.Flags().IntVar(&batchConcurrency, "concurrency", 0, "Maximum resumes scored at once")

	if err := scoreBatchCmd.MarkFlagRequired("resumes"); err != nil {
		panic(fmt.Sprintf("failed to mark resumes flag as required: %v", err))
	}

	rootCmd.AddCommand(scoreBatchCmd)
}

func runScoreBatch(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	log := logging.FromContext(ctx)

	jobFile, jobURL := jobSources(cmd, batchJob, batchJobURL)
	job, err := loadJob(ctx, jobFile, jobURL)
	if err != nil {
		return err
	}

	docs, err := ingestion.LoadDir(ctx, batchResumes)
	if err != nil {
		return fmt.Errorf("failed to load resumes: %w", err)
	}
	if len(docs) == 0 {
		return fmt.Errorf("no supported resume files found in %s", batchResumes)
	}

	resumes := make([]scoring.Document, len(docs))
	for i, doc := range docs {
		resumes[i] = scoring.Document{Name: doc.Name(), Text: doc.Text}
	}

	concurrency := appConfig.Concurrency
	if cmd.Flags().Changed("concurrency") {
		concurrency = batchConcurrency
	}

	results, err := scoring.ScoreBatch(ctx, scoring.BatchRequest{
		JobDescription: job.Text,
		Strategy:       stringFlag(cmd, "strategy", batchStrategy, appConfig.Strategy),
		Resumes:        resumes,
		Concurrency:    concurrency,
	}, scoringOptions(0))
	if err != nil {
		return err
	}

	log.Debug().Int("resumes", len(results)).Msg("Batch complete")

	return emit(ctx, results, stringFlag(cmd, "format", batchFormat, appConfig.Format), batchOutput, "")
}
