// Package service provides the core business service that implements
// the dependencies required by the HTTP API.
package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"

	"github.com/talentlens/growthboard/internal/adapters/repository"
	"github.com/talentlens/growthboard/internal/ai"
	"github.com/talentlens/growthboard/internal/domain/model"
	"github.com/talentlens/growthboard/internal/domain/scoring"
	"github.com/talentlens/growthboard/internal/domain/trajectory"
	"github.com/talentlens/growthboard/internal/domain/types"
	"github.com/talentlens/growthboard/pkg/logger"
	"github.com/talentlens/growthboard/pkg/metrics"
)

// Service implements the API dependencies for the growth-potential
// dashboard. The catalog and weights are fixed after Start; every scoring
// operation is a pure read, so methods are safe for concurrent use.
type Service struct {
	mu sync.RWMutex

	catalog repository.Store
	weights scoring.Weights
	matcher ai.Matcher

	candidates []model.Candidate // injected via option, seeds the catalog

	started bool
	log     logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(log logger.Logger) Option {
	return func(s *Service) {
		if log != nil {
			s.log = log
		}
	}
}

// WithWeights sets the top-level factor weights used for all evaluations.
func WithWeights(w scoring.Weights) Option {
	return func(s *Service) {
		if len(w) > 0 {
			s.weights = w
		}
	}
}

// WithMatcher enables resume matching.
func WithMatcher(m ai.Matcher) Option {
	return func(s *Service) {
		s.matcher = m
	}
}

// WithCandidates seeds the catalog with a custom candidate set.
func WithCandidates(candidates []model.Candidate) Option {
	return func(s *Service) {
		s.candidates = candidates
	}
}

// New constructs a Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		weights: scoring.DefaultWeights(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start validates the configuration and builds the candidate catalog.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}

	if s.log == nil {
		s.log = logger.Get()
	}

	if err := s.weights.Validate(); err != nil {
		return fmt.Errorf("service weights: %w", err)
	}

	var storeOpts []repository.Option
	if len(s.candidates) > 0 {
		storeOpts = append(storeOpts, repository.WithCandidates(s.candidates))
	}
	catalog, err := repository.NewMemStore(ctx, storeOpts...)
	if err != nil {
		return fmt.Errorf("build catalog: %w", err)
	}
	s.catalog = catalog

	metrics.UpdateCandidatesTotal(catalog.Count(ctx))

	s.started = true
	s.log.Info(ctx, "growthboard service started",
		logger.Int("candidates", catalog.Count(ctx)),
		logger.Any("weights", s.weights),
	)
	return nil
}

// Stop marks the service stopped. The catalog has no resources to release.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.started {
		return
	}
	s.started = false
	s.log.Info(context.Background(), "growthboard service stopped")
}

// Weights returns a copy of the active factor weights.
func (s *Service) Weights() scoring.Weights {
	s.mu.RLock()
	defer s.mu.RUnlock()
	w := make(scoring.Weights, len(s.weights))
	for f, v := range s.weights {
		w[f] = v
	}
	return w
}

// ListCandidates returns all candidates ranked by overall score descending.
// Ties keep catalog (id) order so repeated calls agree.
func (s *Service) ListCandidates(ctx context.Context) ([]types.CandidateSummary, error) {
	weights := s.Weights()

	summaries := make([]types.CandidateSummary, 0, s.catalog.Count(ctx))
	for _, c := range s.catalog.List(ctx) {
		overall, err := scoring.OverallScore(c.Metrics, weights)
		if err != nil {
			return nil, fmt.Errorf("score candidate %q: %w", c.ID, err)
		}
		summaries = append(summaries, types.CandidateSummary{
			ID:    c.ID,
			Name:  c.Name,
			Role:  c.Role,
			Score: overall,
			Tier:  scoring.ClassifyTier(overall),
		})
	}

	sort.SliceStable(summaries, func(i, j int) bool {
		return summaries[i].Score > summaries[j].Score
	})
	for i := range summaries {
		summaries[i].Rank = i + 1
	}
	metrics.RecordScoreComputation()
	return summaries, nil
}

// GetCandidate returns the full report for one candidate.
func (s *Service) GetCandidate(ctx context.Context, id string) (types.CandidateReport, error) {
	c, err := s.catalog.Get(ctx, id)
	if err != nil {
		return types.CandidateReport{}, err
	}
	breakdown, err := scoring.Evaluate(c.Metrics, s.Weights())
	if err != nil {
		return types.CandidateReport{}, fmt.Errorf("evaluate candidate %q: %w", id, err)
	}
	metrics.RecordScoreComputation()
	return types.CandidateReport{
		ID:              c.ID,
		Name:            c.Name,
		Role:            c.Role,
		ExperienceYears: c.ExperienceYears,
		Background:      c.Background,
		Metrics:         c.Metrics,
		Breakdown:       breakdown,
		Trajectory:      trajectory.Analyze(c),
		Timeline:        c.Timeline,
	}, nil
}

// WhatIf evaluates a hypothetical snapshot of a stored candidate. A nil
// weights argument uses the service weights; a caller-supplied set must be
// valid on its own (never renormalized).
func (s *Service) WhatIf(ctx context.Context, id string, overrides map[string]float64, weights scoring.Weights) (types.WhatIfResult, error) {
	if weights == nil {
		weights = s.Weights()
	}

	c, err := s.catalog.Get(ctx, id)
	if err != nil {
		return types.WhatIfResult{}, err
	}

	baseline, err := scoring.Evaluate(c.Metrics, weights)
	if err != nil {
		metrics.RecordScoringError()
		return types.WhatIfResult{}, err
	}
	scenario, err := scoring.WhatIf(c.Metrics, overrides, weights)
	if err != nil {
		metrics.RecordScoringError()
		return types.WhatIfResult{}, err
	}

	metrics.RecordWhatIfRequest()
	return types.WhatIfResult{
		CandidateID: id,
		Overrides:   overrides,
		Baseline:    baseline,
		Scenario:    scenario,
		Delta:       scenario.Overall - baseline.Overall,
	}, nil
}

// MatchResume asks the configured matcher whether a resume fits a stored
// candidate. Returns ErrMatcherDisabled when no matcher is configured.
func (s *Service) MatchResume(ctx context.Context, id string, resume string) (*ai.FitAssessment, error) {
	s.mu.RLock()
	matcher := s.matcher
	s.mu.RUnlock()

	if matcher == nil {
		return nil, ErrMatcherDisabled
	}

	report, err := s.GetCandidate(ctx, id)
	if err != nil {
		return nil, err
	}
	reportJSON, err := json.Marshal(report)
	if err != nil {
		return nil, fmt.Errorf("marshal candidate report: %w", err)
	}

	metrics.RecordMatchRequest()
	assessment, err := matcher.Evaluate(ctx, resume, string(reportJSON))
	if err != nil {
		metrics.RecordMatchError()
		return nil, err
	}
	return assessment, nil
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := map[string]interface{}{
		"started":         s.started,
		"matcher_enabled": s.matcher != nil,
	}
	if s.started {
		n := s.catalog.Count(context.Background())
		stats["candidates"] = n
		metrics.UpdateCandidatesTotal(n)
	}
	return stats
}
