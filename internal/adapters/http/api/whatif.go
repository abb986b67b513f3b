// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/talentlens/growthboard/internal/adapters/repository"
	"github.com/talentlens/growthboard/internal/domain/scoring"
)

// whatIfRequest mirrors the OpenAPI schema for POST /whatif.
type whatIfRequest struct {
	CandidateID string             `json:"candidate_id"`
	Overrides   map[string]float64 `json:"overrides"`
	Weights     map[string]float64 `json:"weights,omitempty"`
}

func (req whatIfRequest) validate() error {
	if strings.TrimSpace(req.CandidateID) == "" {
		return errors.New("missing candidate_id")
	}
	return nil
}

// weights converts the optional request weights; nil means service defaults.
func (req whatIfRequest) weights() scoring.Weights {
	if req.Weights == nil {
		return nil
	}
	w := make(scoring.Weights, len(req.Weights))
	for name, weight := range req.Weights {
		w[scoring.Factor(name)] = weight
	}
	return w
}

// WhatIfHandler handles what-if scenario requests.
type WhatIfHandler struct {
	deps Dependencies
}

// NewWhatIfHandler creates a new what-if handler.
func NewWhatIfHandler(deps Dependencies) *WhatIfHandler {
	return &WhatIfHandler{deps: deps}
}

// HandleWhatIf handles POST /whatif requests.
func (h *WhatIfHandler) HandleWhatIf(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	var req whatIfRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}
	if err := req.validate(); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}

	result, err := h.deps.WhatIf(r.Context(), req.CandidateID, req.Overrides, req.weights())
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			writeError(w, http.StatusNotFound, "not_found", err)
		case errors.Is(err, scoring.ErrInvalidWeights):
			writeError(w, http.StatusBadRequest, "invalid_weights", err)
		case errors.Is(err, scoring.ErrUnknownMetricField):
			writeError(w, http.StatusBadRequest, "unknown_metric_field", err)
		case errors.Is(err, scoring.ErrOutOfRangeMetric):
			writeError(w, http.StatusBadRequest, "out_of_range_metric", err)
		default:
			writeError(w, http.StatusInternalServerError, "internal_error", err)
		}
		return
	}
	writeJSON(w, http.StatusOK, result)
}
