// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/talentlens/growthboard/internal/ai"
	"github.com/talentlens/growthboard/internal/domain/scoring"
	"github.com/talentlens/growthboard/internal/domain/types"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	// ListCandidates returns ranked candidate summaries.
	ListCandidates(ctx context.Context) ([]types.CandidateSummary, error)

	// GetCandidate returns the full report for one candidate.
	GetCandidate(ctx context.Context, id string) (types.CandidateReport, error)

	// WhatIf evaluates a hypothetical snapshot; nil weights use defaults.
	WhatIf(ctx context.Context, id string, overrides map[string]float64, weights scoring.Weights) (types.WhatIfResult, error)

	// MatchResume runs the LLM resume matcher against a candidate.
	MatchResume(ctx context.Context, id string, resume string) (*ai.FitAssessment, error)
}

// Server wires HTTP routes for the business API.
type Server struct {
	candidatesHandler *CandidatesHandler
	whatIfHandler     *WhatIfHandler
	matchHandler      *MatchHandler
	statsHandler      *StatsHandler
	healthHandler     *HealthHandler
	dashboardHandler  *dashboardHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider) *Server {
	return &Server{
		candidatesHandler: NewCandidatesHandler(deps),
		whatIfHandler:     NewWhatIfHandler(deps),
		matchHandler:      NewMatchHandler(deps),
		statsHandler:      NewStatsHandler(statsProvider),
		healthHandler:     NewHealthHandler(),
		dashboardHandler:  newDashboardHandler(),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(_ context.Context, mux *http.ServeMux) {
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/dashboard", s.dashboardHandler.HandleDashboard)
	mux.HandleFunc("/candidates", MetricsMiddleware(s.candidatesHandler.HandleListCandidates, "candidates"))
	mux.HandleFunc("/candidates/", MetricsMiddleware(s.candidatesHandler.HandleGetCandidate, "candidate"))
	mux.HandleFunc("/whatif", MetricsMiddleware(s.whatIfHandler.HandleWhatIf, "whatif"))
	mux.HandleFunc("/match", MetricsMiddleware(s.matchHandler.HandleMatch, "match"))
	mux.HandleFunc("/", s.dashboardHandler.HandleRoot)
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}
