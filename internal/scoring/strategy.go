// Package scoring turns a resume and a job description into a ScoreReport.
// Two independent strategies are available: keyword coverage and fixed
// category weights. Both are pure functions of their input and rule tables.
package scoring

import (
	"strings"

	"github.com/kevohmutwiri9-creator/my-ats-resume-builder-sub000/internal/rules"
	"github.com/kevohmutwiri9-creator/my-ats-resume-builder-sub000/internal/types"
	"github.com/kevohmutwiri9-creator/my-ats-resume-builder-sub000/internal/validation"
)

// Strategy names.
const (
	StrategyKeyword  = "keyword"
	StrategyCategory = "category"
)

// Strategy scores one request. Implementations must be safe for concurrent use
// and must not modify the request.
type Strategy interface {
	Name() string
	Score(req types.ScoreRequest) *types.ScoreReport
}

// Options configures a strategy.
type Options struct {
	// Rules are the tables used for extraction and checks; nil means rules.Default()
	Rules *rules.RuleSet

	// MaxLineLength is the line length reported by format checks; 0 means 140
	MaxLineLength int
}

func (o Options) withDefaults() Options {
	if o.Rules == nil {
		o.Rules = rules.Default()
	}
	if o.MaxLineLength <= 0 {
		o.MaxLineLength = validation.DefaultMaxLineLength
	}
	return o
}

// ByName returns the strategy registered under name. An empty name selects
// the keyword strategy.
func ByName(name string, opts Options) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", StrategyKeyword:
		return NewKeywordStrategy(opts), nil
	case StrategyCategory:
		return NewCategoryStrategy(opts), nil
	default:
		return nil, &UnknownStrategyError{Name: name}
	}
}

// Names lists the available strategies.
func Names() []string {
	return []string{StrategyKeyword, StrategyCategory}
}
