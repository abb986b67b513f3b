package service

import "errors"

// Sentinel kinds for service errors.
var (
	// ErrMatcherDisabled reports a resume-match request when no Gemini
	// API key is configured.
	ErrMatcherDisabled = errors.New("resume matcher is not configured")
)
