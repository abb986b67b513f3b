// Package scoring computes growth-potential scores from raw candidate
// metrics. Every operation is a pure function of its inputs: nothing is
// cached, nothing is mutated, and concurrent callers need no coordination.
package scoring

import (
	"fmt"
	"math"

	"github.com/talentlens/growthboard/internal/domain/model"
)

// Scoring configuration constants.
const (
	maxScoreValue = 100
	// weightTotal is the required sum of the five top-level weights.
	weightTotal = 100
	// weightTolerance absorbs floating error in the weight-sum check.
	weightTolerance = 0.01
)

// Weights maps each factor to its share of the overall score.
// A valid set covers exactly the five factors with non-negative values
// summing to 100 within tolerance.
type Weights map[Factor]float64

// DefaultWeights returns the product's standard factor weighting.
func DefaultWeights() Weights {
	return Weights{
		LearningAgility:     30,
		SkillProgression:    25,
		Adaptability:        20,
		InnovationMindset:   15,
		FeedbackIntegration: 10,
	}
}

// Validate checks the weights contract. Violations are configuration
// errors surfaced to the caller, never silently renormalized.
func (w Weights) Validate() error {
	if len(w) != len(formulas) {
		return fmt.Errorf("%w: expected %d factors, got %d", ErrInvalidWeights, len(formulas), len(w))
	}
	var sum float64
	for _, f := range Factors() {
		weight, ok := w[f]
		if !ok {
			return fmt.Errorf("%w: missing factor %q", ErrInvalidWeights, f)
		}
		if weight < 0 {
			return fmt.Errorf("%w: negative weight for %q", ErrInvalidWeights, f)
		}
		sum += weight
	}
	if math.Abs(sum-weightTotal) > weightTolerance {
		return fmt.Errorf("%w: weights sum to %v, want %d", ErrInvalidWeights, sum, weightTotal)
	}
	return nil
}

// FactorScore computes one factor's score in [0,100] for a metrics
// snapshot. An unrecognized factor is a caller contract violation and
// fails with ErrInvalidFactor; it never silently scores zero.
func FactorScore(m model.Metrics, factor Factor) (float64, error) {
	f, ok := formulas[factor]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidFactor, factor)
	}
	return clamp(f(m)), nil
}

// FactorScores computes all five factor scores.
func FactorScores(m model.Metrics) map[Factor]float64 {
	scores := make(map[Factor]float64, len(formulas))
	for factor, f := range formulas {
		scores[factor] = clamp(f(m))
	}
	return scores
}

// OverallScore combines the five factor scores into one weighted value in
// [0,100], rounded to one decimal.
func OverallScore(m model.Metrics, weights Weights) (float64, error) {
	if err := weights.Validate(); err != nil {
		return 0, err
	}
	return weightedSum(FactorScores(m), weights), nil
}

// Breakdown is the full derivation for one metrics snapshot.
type Breakdown struct {
	FactorScores map[Factor]float64 `json:"factor_scores"`
	Overall      float64            `json:"overall"`
	Tier         Tier               `json:"tier"`
	Explanation  Explanation        `json:"explanation"`
}

// Evaluate computes factor scores, the weighted overall score, its tier,
// and the strengths/gaps explanation in one pass.
func Evaluate(m model.Metrics, weights Weights) (Breakdown, error) {
	if err := weights.Validate(); err != nil {
		return Breakdown{}, err
	}
	scores := FactorScores(m)
	overall := weightedSum(scores, weights)
	return Breakdown{
		FactorScores: scores,
		Overall:      overall,
		Tier:         ClassifyTier(overall),
		Explanation:  explainScores(scores, overall),
	}, nil
}

// weightedSum accumulates in canonical factor order so repeated calls
// produce bit-identical results regardless of map iteration order.
func weightedSum(scores map[Factor]float64, weights Weights) float64 {
	var total float64
	for _, factor := range Factors() {
		total += scores[factor] * weights[factor] / weightTotal
	}
	return roundScore(total)
}

// roundScore keeps published scores at one decimal.
func roundScore(v float64) float64 {
	return math.Round(v*10) / 10
}

func clamp(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Max(0, math.Min(maxScoreValue, v))
}
