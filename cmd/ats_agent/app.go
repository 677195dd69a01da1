package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/kevohmutwiri9-creator/my-ats-resume-builder-sub000/internal/config"
	"github.com/kevohmutwiri9-creator/my-ats-resume-builder-sub000/internal/fetch"
	"github.com/kevohmutwiri9-creator/my-ats-resume-builder-sub000/internal/ingestion"
	"github.com/kevohmutwiri9-creator/my-ats-resume-builder-sub000/internal/logging"
	"github.com/kevohmutwiri9-creator/my-ats-resume-builder-sub000/internal/observability"
	"github.com/kevohmutwiri9-creator/my-ats-resume-builder-sub000/internal/rules"
	"github.com/kevohmutwiri9-creator/my-ats-resume-builder-sub000/internal/schemas"
	"github.com/kevohmutwiri9-creator/my-ats-resume-builder-sub000/internal/scoring"
)

// Resolved per-run state shared by all commands.
var (
	appConfig config.Config
	ruleSet   *rules.RuleSet
)

// setupApp layers flags over env over the config file, configures logging and
// loads the rule tables.
func setupApp(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("rules") {
		cfg.RulesFile = rulesPath
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = logLevel
	}
	if flags.Changed("log-format") {
		cfg.LogFormat = logFormat
	}
	if flags.Changed("verbose") {
		cfg.Verbose = verbose
	}
	if cfg.Verbose {
		cfg.LogLevel = "debug"
	}

	if err := cfg.Validate(); err != nil {
		return err
	}
	appConfig = cfg.MergeWithDefaults(config.Defaults())

	logCfg := logging.DefaultConfig()
	logCfg.Level = appConfig.LogLevel
	logCfg.Format = appConfig.LogFormat
	logging.Configure(logCfg)

	ruleSet, err = rules.LoadFile(appConfig.RulesFile)
	if err != nil {
		return err
	}

	log := logging.Default()
	log.Debug().
		Str("command", cmd.Name()).
		Str("config", configPath).
		Str("rules", appConfig.RulesFile).
		Msg("Configuration loaded")

	cmd.SetContext(logging.WithLogger(cmd.Context(), log))
	return nil
}

// scoringOptions builds scoring options from the resolved configuration.
func scoringOptions(maxLine int) scoring.Options {
	if maxLine <= 0 {
		maxLine = appConfig.MaxLineLength
	}
	return scoring.Options{Rules: ruleSet, MaxLineLength: maxLine}
}

// stringFlag returns the flag value when set on the command line, else fallback.
func stringFlag(cmd *cobra.Command, name, value, fallback string) string {
	if cmd.Flags().Changed(name) {
		return value
	}
	return fallback
}

// jobSources picks the job file and URL. Either flag on the command line
// replaces both config values, so --job-url wins over a configured job file.
func jobSources(cmd *cobra.Command, jobFile, jobURL string) (string, string) {
	flags := cmd.Flags()
	fileSet, urlSet := flags.Changed("job"), flags.Changed("job-url")
	if !fileSet && !urlSet {
		return appConfig.Job, appConfig.JobURL
	}
	if !fileSet {
		jobFile = ""
	}
	if !urlSet {
		jobURL = ""
	}
	return jobFile, jobURL
}

// loadJob loads the job description from a file or URL. Exactly one must be
// given, either as flags or through the configuration.
func loadJob(ctx context.Context, jobFile, jobURL string) (*ingestion.Document, error) {
	if jobFile == "" && jobURL == "" {
		return nil, fmt.Errorf("either --job or --job-url must be provided")
	}
	if jobFile != "" && jobURL != "" {
		return nil, fmt.Errorf("--job and --job-url are mutually exclusive; provide only one")
	}

	if jobFile != "" {
		if _, err := os.Stat(jobFile); os.IsNotExist(err) {
			return nil, fmt.Errorf("job description file not found: %s", jobFile)
		}
		doc, err := ingestion.LoadFile(ctx, jobFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load job description: %w", err)
		}
		return doc, nil
	}

	doc, err := ingestion.LoadURL(ctx, jobURL, fetch.JobOptions{UseBrowser: appConfig.UseBrowser})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch job posting: %w", err)
	}
	return doc, nil
}

// loadResume loads one resume file.
func loadResume(ctx context.Context, path string) (*ingestion.Document, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("resume file not found: %s", path)
	}
	doc, err := ingestion.LoadFile(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("failed to load resume: %w", err)
	}
	return doc, nil
}

// emit validates data against schemaName (when non-empty) and writes it in
// format to outPath, or stdout when outPath is empty. Schema violations are
// errors; a schema that cannot be loaded only produces a warning.
func emit(ctx context.Context, data any, format, outPath, schemaName string) error {
	log := logging.FromContext(ctx)

	parsed, err := observability.ParseFormat(format)
	if err != nil {
		return err
	}

	if schemaName != "" && parsed != observability.FormatText {
		if err := schemas.ValidateBundled(schemaName, data); err != nil {
			var schemaLoadErr *schemas.SchemaLoadError
			if !errors.As(err, &schemaLoadErr) {
				return fmt.Errorf("output does not match %s: %w", schemaName, err)
			}
			log.Warn().Err(err).Str("schema", schemaName).Msg("Could not validate output against schema")
		}
	}

	formatter := observability.NewFormatter(parsed)
	if outPath == "" {
		return formatter.Format(os.Stdout, data)
	}

	outputDir := filepath.Dir(outPath)
	if outputDir != "" && outputDir != "." {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	if err := formatter.Format(f, data); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to write output: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	log.Info().Str("path", outPath).Str("format", string(parsed)).Msg("Wrote output")
	return nil
}
