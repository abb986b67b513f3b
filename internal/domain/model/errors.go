package model

import "errors"

// Sentinel error kinds for this package. These allow errors.Is/As from callers.
var (
	ErrUnknownField  = errors.New("unknown metric field")
	ErrNegativeValue = errors.New("metric value must be non-negative")
)
