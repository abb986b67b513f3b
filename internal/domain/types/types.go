// Package types contains read-model shapes shared by the service and the
// HTTP API.
package types

import (
	"github.com/talentlens/growthboard/internal/domain/model"
	"github.com/talentlens/growthboard/internal/domain/scoring"
	"github.com/talentlens/growthboard/internal/domain/trajectory"
)

// CandidateSummary is one row of the ranked candidate listing.
type CandidateSummary struct {
	Rank  int          `json:"rank"`
	ID    string       `json:"id"`
	Name  string       `json:"name"`
	Role  string       `json:"role"`
	Score float64      `json:"score"`
	Tier  scoring.Tier `json:"tier"`
}

// CandidateReport is the full assessment for one candidate.
type CandidateReport struct {
	ID              string                `json:"id"`
	Name            string                `json:"name"`
	Role            string                `json:"role"`
	ExperienceYears int                   `json:"experience_years"`
	Background      string                `json:"background"`
	Metrics         model.Metrics         `json:"metrics"`
	Breakdown       scoring.Breakdown     `json:"breakdown"`
	Trajectory      trajectory.Summary    `json:"trajectory"`
	Timeline        []model.TimelineEvent `json:"timeline"`
}

// WhatIfResult is the outcome of evaluating an overridden snapshot next to
// the candidate's baseline.
type WhatIfResult struct {
	CandidateID string             `json:"candidate_id"`
	Overrides   map[string]float64 `json:"overrides"`
	Baseline    scoring.Breakdown  `json:"baseline"`
	Scenario    scoring.Breakdown  `json:"scenario"`
	Delta       float64            `json:"delta"` // scenario overall minus baseline overall
}
