package scoring

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/kevohmutwiri9-creator/my-ats-resume-builder-sub000/internal/logging"
	"github.com/kevohmutwiri9-creator/my-ats-resume-builder-sub000/internal/types"
)

// Evaluate validates req, scores it with the strategy it names and stamps the
// report with an ID and generation time.
func Evaluate(ctx context.Context, req types.ScoreRequest, opts Options) (*types.ScoreReport, error) {
	req.Strategy = strings.ToLower(strings.TrimSpace(req.Strategy))
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("invalid score request: %w", err)
	}

	strategy, err := ByName(req.Strategy, opts)
	if err != nil {
		return nil, err
	}

	return Run(ctx, strategy, req), nil
}

// Run scores req with strategy and stamps the report. req is assumed valid.
func Run(ctx context.Context, strategy Strategy, req types.ScoreRequest) *types.ScoreReport {
	log := logging.FromContext(ctx)
	start := time.Now()

	report := strategy.Score(req)
	report.ID = uuid.New().String()
	report.GeneratedAt = time.Now().UTC().Format(time.RFC3339)

	log.Debug().
		Str("report_id", report.ID).
		Str("strategy", report.Strategy).
		Int("total_score", report.TotalScore).
		Int("max_score", report.MaxScore).
		Int("percentage", report.Percentage).
		Str("grade", report.Grade).
		Dur("elapsed", time.Since(start)).
		Msg("Scored resume")

	return report
}
