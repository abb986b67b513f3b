// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/talentlens/growthboard/internal/adapters/repository"
	app "github.com/talentlens/growthboard/internal/app"
)

// matchRequest mirrors the OpenAPI schema for POST /match.
type matchRequest struct {
	CandidateID string `json:"candidate_id"`
	Resume      string `json:"resume"`
}

func (req matchRequest) validate() error {
	switch {
	case strings.TrimSpace(req.CandidateID) == "":
		return errors.New("missing candidate_id")
	case strings.TrimSpace(req.Resume) == "":
		return errors.New("missing resume")
	}
	return nil
}

// MatchHandler handles resume match requests.
type MatchHandler struct {
	deps Dependencies
}

// NewMatchHandler creates a new match handler.
func NewMatchHandler(deps Dependencies) *MatchHandler {
	return &MatchHandler{deps: deps}
}

// HandleMatch handles POST /match requests.
func (h *MatchHandler) HandleMatch(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	var req matchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}
	if err := req.validate(); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}

	assessment, err := h.deps.MatchResume(r.Context(), req.CandidateID, req.Resume)
	if err != nil {
		switch {
		case errors.Is(err, app.ErrMatcherDisabled):
			writeError(w, http.StatusServiceUnavailable, "matcher_disabled", err)
		case errors.Is(err, repository.ErrNotFound):
			writeError(w, http.StatusNotFound, "not_found", err)
		default:
			writeError(w, http.StatusBadGateway, "matcher_failed", err)
		}
		return
	}
	writeJSON(w, http.StatusOK, assessment)
}
