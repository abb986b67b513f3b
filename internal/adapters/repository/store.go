// Package repository defines the candidate catalog interface and errors.
package repository

import (
	"context"

	"github.com/talentlens/growthboard/internal/domain/model"
)

// Store provides read access to the candidate catalog. The catalog is
// constructed once at startup and never mutated afterwards; hypothetical
// edits go through what-if snapshots, not writes here.
type Store interface {
	// Get returns the candidate with the given id.
	// Returns ErrNotFound if the id is unknown.
	Get(ctx context.Context, id string) (model.Candidate, error)

	// List returns all candidates ordered by id.
	List(ctx context.Context) []model.Candidate

	// Count returns the number of candidates in the catalog.
	Count(ctx context.Context) int
}
