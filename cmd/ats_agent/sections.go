package main

import (
	"github.com/spf13/cobra"

	"github.com/kevohmutwiri9-creator/my-ats-resume-builder-sub000/internal/parsing"
)

var sectionsCmd = &cobra.Command{
	Use:   "sections",
	Short: "Split a job description into must-have and nice-to-have text",
	Long: "Classifies each line of a job description by the requirement headings above it " +
		"and prints the must-have and nice-to-have text. Without headings every line lands in both.",
	RunE: runSections,
}

var (
	sectionsJob    string
	sectionsJobURL string
	sectionsFormat string
)

func init() {
	sectionsCmd.Flags().StringVarP(&sectionsJob, "job", "j", "", "Path to job description file")
	sectionsCmd.Flags().StringVarP(&sectionsJobURL, "job-url", "u", "", "URL to fetch job posting from")
	sectionsCmd.Flags().StringVarP(&sectionsFormat, "format", "f", "", "Output format: text, json or yaml")

	rootCmd.AddCommand(sectionsCmd)
}

func runSections(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	jobFile, jobURL := jobSources(cmd, sectionsJob, sectionsJobURL)
	job, err := loadJob(ctx, jobFile, jobURL)
	if err != nil {
		return err
	}

	sections := parsing.GuessSections(job.Text, ruleSet)
	return emit(ctx, sections, stringFlag(cmd, "format", sectionsFormat, appConfig.Format), "", "")
}
