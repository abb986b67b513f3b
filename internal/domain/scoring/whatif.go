package scoring

import (
	"errors"
	"fmt"

	"github.com/talentlens/growthboard/internal/domain/model"
)

// WhatIf evaluates a hypothetical snapshot: base with the given field
// overrides applied, unspecified fields unchanged. The base snapshot is
// never mutated, so repeated calls against the same base are independent.
// Empty overrides are a no-op and reproduce Evaluate(base, weights).
//
// An override key outside the recognized metric field set fails with
// ErrUnknownMetricField; a negative override value with ErrOutOfRangeMetric.
func WhatIf(base model.Metrics, overrides map[string]float64, weights Weights) (Breakdown, error) {
	if err := weights.Validate(); err != nil {
		return Breakdown{}, err
	}
	snapshot, err := base.WithOverrides(overrides)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrUnknownField):
			return Breakdown{}, fmt.Errorf("%w: %v", ErrUnknownMetricField, err)
		case errors.Is(err, model.ErrNegativeValue):
			return Breakdown{}, fmt.Errorf("%w: %v", ErrOutOfRangeMetric, err)
		default:
			return Breakdown{}, err
		}
	}
	return Evaluate(snapshot, weights)
}
