// Package types provides type definitions for structured data used throughout the ATS scorer.
package types

import (
	"github.com/go-playground/validator/v10"
)

// ScoreRequest is the input to a scoring run.
type ScoreRequest struct {
	Resume         string  `json:"resume"`
	JobDescription string  `json:"job_description"`
	Strategy       string  `json:"strategy,omitempty" validate:"omitempty,oneof=keyword category"`
	Layout         *Layout `json:"layout,omitempty" validate:"omitempty"`
}

// Layout carries document formatting that cannot be recovered from plain text.
// Zero values mean unknown and are not penalized.
type Layout struct {
	FontFamily string  `json:"font_family,omitempty" validate:"omitempty,max=64"`
	FontSizePt float64 `json:"font_size_pt,omitempty" validate:"gte=0,lte=72"`
	MarginsIn  float64 `json:"margins_in,omitempty" validate:"gte=0,lte=4"`
	HasTables  bool    `json:"has_tables,omitempty"`
	HasColumns bool    `json:"has_columns,omitempty"`
}

// Validate validates the ScoreRequest using the validator.
func (r *ScoreRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
