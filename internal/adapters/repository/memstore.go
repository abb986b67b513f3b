package repository

import (
	"context"
	"fmt"
	"sort"

	"github.com/talentlens/growthboard/internal/domain/model"
)

// Option applies a configuration option to the MemStore.
type Option func(*memStoreConfig)

type memStoreConfig struct {
	candidates []model.Candidate
}

// WithCandidates replaces the default seed with a custom candidate set.
func WithCandidates(candidates []model.Candidate) Option {
	return func(c *memStoreConfig) {
		if len(candidates) > 0 {
			c.candidates = candidates
		}
	}
}

// MemStore is an immutable in-memory catalog. All lookups return copies;
// the backing map is never written after construction, so concurrent reads
// need no locking.
type MemStore struct {
	byID map[string]model.Candidate
	ids  []string
}

// NewMemStore builds a catalog from the seed profiles (or a custom set via
// options). Duplicate ids are a construction error.
func NewMemStore(_ context.Context, opts ...Option) (*MemStore, error) {
	cfg := &memStoreConfig{candidates: seedCandidates()}
	for _, opt := range opts {
		opt(cfg)
	}

	byID := make(map[string]model.Candidate, len(cfg.candidates))
	ids := make([]string, 0, len(cfg.candidates))
	for _, c := range cfg.candidates {
		if _, exists := byID[c.ID]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateID, c.ID)
		}
		byID[c.ID] = c
		ids = append(ids, c.ID)
	}
	sort.Strings(ids)

	return &MemStore{byID: byID, ids: ids}, nil
}

// Get returns the candidate with the given id, or ErrNotFound.
func (s *MemStore) Get(_ context.Context, id string) (model.Candidate, error) {
	c, ok := s.byID[id]
	if !ok {
		return model.Candidate{}, fmt.Errorf("%w: %q", ErrNotFound, id)
	}
	return cloneCandidate(c), nil
}

// List returns all candidates ordered by id.
func (s *MemStore) List(_ context.Context) []model.Candidate {
	out := make([]model.Candidate, 0, len(s.ids))
	for _, id := range s.ids {
		out = append(out, cloneCandidate(s.byID[id]))
	}
	return out
}

// Count returns the number of candidates in the catalog.
func (s *MemStore) Count(_ context.Context) int {
	return len(s.ids)
}

// cloneCandidate deep-copies the timeline slice so callers cannot reach
// back into catalog state.
func cloneCandidate(c model.Candidate) model.Candidate {
	out := c
	out.Timeline = append([]model.TimelineEvent(nil), c.Timeline...)
	return out
}
