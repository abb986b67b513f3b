// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Defaults come from New, then an optional YAML file, then env vars.
// - External errors are wrapped via this package's error kinds.
package config

import "context"

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// FactorWeights maps the five factor names to their share of the
	// overall score. Must sum to 100.
	FactorWeights map[string]float64 `koanf:"factor_weights"`

	// GeminiAPIKey enables the resume matcher when non-empty.
	GeminiAPIKey string `koanf:"gemini_api_key"`

	// GeminiModel selects the model used by the resume matcher.
	GeminiModel string `koanf:"gemini_model"`

	// MatchMinScore forces fit=false below this matcher score.
	MatchMinScore float64 `koanf:"match_min_score"`
}

// New creates a Config with defaults. Context is accepted first to match
// the project-wide convention; it is reserved for future use.
func New(_ context.Context) *Config {
	return &Config{
		LogLevel: "info",
		Addr:     ":9080",
		FactorWeights: map[string]float64{
			"learning_agility":     30,
			"skill_progression":    25,
			"adaptability":         20,
			"innovation_mindset":   15,
			"feedback_integration": 10,
		},
		GeminiModel:   "gemini-2.5-pro",
		MatchMinScore: 0,
	}
}
