// Package ai defines the contract between the service and its
// LLM-backed resume matcher.
package ai

import "context"

// FitAssessment is the matcher's verdict on a resume against a candidate
// profile.
type FitAssessment struct {
	ID      string  `json:"id"`
	Fit     bool    `json:"fit"`
	Score   float64 `json:"score"` // 0-100 confidence from the model
	Reason  string  `json:"reason"`
	Message string  `json:"message"`
	Raw     string  `json:"-"`
}

// Matcher evaluates a resume against a serialized candidate report.
type Matcher interface {
	Evaluate(ctx context.Context, resume string, candidateJSON string) (*FitAssessment, error)
}
