package repository

import "errors"

// Sentinel kinds for catalog errors.
var (
	ErrNotFound    = errors.New("candidate not found")
	ErrDuplicateID = errors.New("duplicate candidate id")
)
