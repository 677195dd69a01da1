package scoring

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/kevohmutwiri9-creator/my-ats-resume-builder-sub000/internal/logging"
	"github.com/kevohmutwiri9-creator/my-ats-resume-builder-sub000/internal/types"
)

// DefaultConcurrency bounds ScoreBatch when no limit is given.
const DefaultConcurrency = 4

// Document is a named resume text.
type Document struct {
	Name string `json:"name"`
	Text string `json:"-"`
}

// BatchRequest scores many resumes against one job description.
type BatchRequest struct {
	JobDescription string
	Strategy       string
	Layout         *types.Layout
	Resumes        []Document
	Concurrency    int
}

// BatchResult is the report for one resume of a batch, in input order.
type BatchResult struct {
	Name   string             `json:"name"`
	Report *types.ScoreReport `json:"report"`
}

// ScoreBatch scores every resume in req concurrently. Results keep the order
// of req.Resumes. The strategy and every request are validated before any
// scoring starts; cancellation of ctx stops work that has not started yet.
func ScoreBatch(ctx context.Context, req BatchRequest, opts Options) ([]BatchResult, error) {
	strategy, err := ByName(req.Strategy, opts)
	if err != nil {
		return nil, err
	}

	requests := make([]types.ScoreRequest, len(req.Resumes))
	for i, doc := range req.Resumes {
		requests[i] = types.ScoreRequest{
			Resume:         doc.Text,
			JobDescription: req.JobDescription,
			Strategy:       strategy.Name(),
			Layout:         req.Layout,
		}
		if err := requests[i].Validate(); err != nil {
			return nil, fmt.Errorf("invalid score request for %s: %w", doc.Name, err)
		}
	}

	limit := req.Concurrency
	if limit <= 0 {
		limit = DefaultConcurrency
	}

	results := make([]BatchResult, len(req.Resumes))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for i := range req.Resumes {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = BatchResult{
				Name:   req.Resumes[i].Name,
				Report: Run(gctx, strategy, requests[i]),
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("batch scoring interrupted: %w", err)
	}

	logging.FromContext(ctx).Info().
		Int("resumes", len(results)).
		Str("strategy", strategy.Name()).
		Int("concurrency", limit).
		Msg("Scored batch")

	return results, nil
}
