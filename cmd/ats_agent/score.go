package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kevohmutwiri9-creator/my-ats-resume-builder-sub000/internal/logging"
	"github.com/kevohmutwiri9-creator/my-ats-resume-builder-sub000/internal/scoring"
	"github.com/kevohmutwiri9-creator/my-ats-resume-builder-sub000/internal/types"
	bundled "github.com/kevohmutwiri9-creator/my-ats-resume-builder-sub000/schemas"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a resume against a job description",
	Long: "Scores a resume (.txt, .md, .pdf, .docx, .html) against a job description file or URL " +
		"and prints the report. The keyword strategy measures must-have and nice-to-have coverage; " +
		"the category strategy adds formatting and content checks.",
	RunE: runScore,
}

var (
	scoreResume   string
	scoreJob      string
	scoreJobURL   string
	scoreStrategy string
	scoreFormat   string
	scoreOutput   string
	scoreMaxLine  int
	scoreFont     string
	scoreFontSize float64
	scoreMargins  float64
	scoreTables   bool
	scoreColumns  bool
)

func init() {
	scoreCmd.Flags().StringVarP(&scoreResume, "resume", "r", "", "Path to resume file (required)")
	scoreCmd.Flags().StringVarP(&scoreJob, "job", "j", "", "Path to job description file")
	scoreCmd.Flags().StringVarP(&scoreJobURL, "job-url", "u", "", "URL to fetch job posting from")
	scoreCmd.Flags().StringVarP(&scoreStrategy, "strategy", "s", "", "Scoring strategy: keyword or category")
	scoreCmd.Flags().StringVarP(&scoreFormat, "format", "f", "", "Output format: text, json or yaml")
	scoreCmd.Flags().StringVarP(&scoreOutput, "out", "o", "", "Write the report to this file instead of stdout")
	scoreCmd.Flags().IntVar(&scoreMaxLine, "max-line", 0, "Maximum characters per line")
	scoreCmd.Flags().StringVar(&scoreFont, "font", "", "Font family used in the document")
	scoreCmd.Flags().Float64Var(&scoreFontSize, "font-size", 0, "Body font size in points")
	scoreCmd.Flags().Float64Var(&scoreMargins, "margins", 0, "Page margins in inches")
	scoreCmd.Flags().BoolVar(&scoreTables, "has-tables", false, "The document uses tables")
	scoreCmd.Flags().BoolVar(&scoreColumns, "has-columns", false, "The document uses a multi-column layout")

	if err := scoreCmd.MarkFlagRequired("resume"); err != nil {
		panic(fmt.Sprintf("failed to mark resume flag as required: %v", err))
	}

	rootCmd.AddCommand(scoreCmd)
}

func runScore(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	log := logging.FromContext(ctx)

	resume, err := loadResume(ctx, scoreResume)
	if err != nil {
		return err
	}

	jobFile, jobURL := jobSources(cmd, scoreJob, scoreJobURL)
	job, err := loadJob(ctx, jobFile, jobURL)
	if err != nil {
		return err
	}

	log.Debug().Object("resume", resume.Metadata).Object("job", job.Metadata).Msg("Loaded inputs")

	req := types.ScoreRequest{
		Resume:         resume.Text,
		JobDescription: job.Text,
		Strategy:       stringFlag(cmd, "strategy", scoreStrategy, appConfig.Strategy),
		Layout:         layoutFromFlags(),
	}

	report, err := scoring.Evaluate(ctx, req, scoringOptions(scoreMaxLine))
	if err != nil {
		return err
	}

	log.Info().
		Str("resume", resume.Name()).
		Str("job_source", job.Metadata.Source).
		Str("strategy", report.Strategy).
		Int("percentage", report.Percentage).
		Str("grade", report.Grade).
		Msg("Scored resume")

	return emit(ctx, report, stringFlag(cmd, "format", scoreFormat, appConfig.Format), scoreOutput, bundled.ScoreReport)
}

// layoutFromFlags returns nil when no layout flag was given.
func layoutFromFlags() *types.Layout {
	if scoreFont == "" && scoreFontSize == 0 && scoreMargins == 0 && !scoreTables && !scoreColumns {
		return nil
	}
	return &types.Layout{
		FontFamily: scoreFont,
		FontSizePt: scoreFontSize,
		MarginsIn:  scoreMargins,
		HasTables:  scoreTables,
		HasColumns: scoreColumns,
	}
}
