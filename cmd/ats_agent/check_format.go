package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kevohmutwiri9-creator/my-ats-resume-builder-sub000/internal/logging"
	"github.com/kevohmutwiri9-creator/my-ats-resume-builder-sub000/internal/observability"
	"github.com/kevohmutwiri9-creator/my-ats-resume-builder-sub000/internal/types"
	"github.com/kevohmutwiri9-creator/my-ats-resume-builder-sub000/internal/validation"
)

var checkFormatCmd = &cobra.Command{
	Use:   "check-format",
	Short: "Run formatting checks on a resume",
	Long: "Checks a resume for contact details, bullet points, dates and overlong lines. " +
		"With --strict the command fails when any line exceeds the limit.",
	RunE: runCheckFormat,
}

var (
	checkFormatResume  string
	checkFormatMaxLine int
	checkFormatFormat  string
	checkFormatStrict  bool
)

func init() {
	checkFormatCmd.Flags().StringVarP(&checkFormatResume, "resume", "r", "", "Path to resume file (required)")
	checkFormatCmd.Flags().IntVar(&checkFormatMaxLine, "max-line", 0, "Maximum characters per line")
	checkFormatCmd.Flags().StringVarP(&checkFormatFormat, "format", "f", "", "Output format: text, json or yaml")
	checkFormatCmd.Flags().BoolVar(&checkFormatStrict, "strict", false, "Exit with an error when violations are found")

	if err := checkFormatCmd.MarkFlagRequired("resume"); err != nil {
		panic(fmt.Sprintf("failed to mark resume flag as required: %v", err))
	}

	rootCmd.AddCommand(checkFormatCmd)
}

func runCheckFormat(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	resume, err := loadResume(ctx, checkFormatResume)
	if err != nil {
		return err
	}

	maxLine := scoringOptions(checkFormatMaxLine).MaxLineLength
	result := &observability.CheckFormatResult{
		FormatChecks: validation.RunFormatChecks(resume.Text, ruleSet, maxLine),
		Violations:   validation.ValidateLineLengths(resume.Text, maxLine),
	}

	logging.FromContext(ctx).Debug().
		Object("resume", resume.Metadata).
		Int("warnings", types.CountSeverity(result.Violations, types.SeverityWarning)).
		Int("errors", types.CountSeverity(result.Violations, types.SeverityError)).
		Msg("Checked resume format")

	if err := emit(ctx, result, stringFlag(cmd, "format", checkFormatFormat, appConfig.Format), "", ""); err != nil {
		return err
	}

	if checkFormatStrict && len(result.Violations) > 0 {
		return fmt.Errorf("format check found %d violation(s)", len(result.Violations))
	}
	return nil
}
