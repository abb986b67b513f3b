package scoring

import "errors"

// Sentinel error kinds for this package. These allow errors.Is/As from callers.
var (
	// ErrInvalidFactor reports a factor name outside the five recognized keys.
	ErrInvalidFactor = errors.New("invalid factor")
	// ErrInvalidWeights reports weights that are missing a factor, negative,
	// or do not sum to 100 within tolerance. Weights are never renormalized.
	ErrInvalidWeights = errors.New("invalid weights")
	// ErrUnknownMetricField reports a what-if override key the data model
	// does not define.
	ErrUnknownMetricField = errors.New("unknown metric field")
	// ErrOutOfRangeMetric reports a what-if override with a negative value.
	ErrOutOfRangeMetric = errors.New("metric out of range")
)
