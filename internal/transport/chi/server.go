// Package chi implements the HTTP API.
package chi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/hearthlib/curator/internal/domain"
	"github.com/hearthlib/curator/internal/domain/catalog"
	assistantuc "github.com/hearthlib/curator/internal/usecase/assistant"
	healthuc "github.com/hearthlib/curator/internal/usecase/health"
	"github.com/hearthlib/curator/internal/usecase/intent"
	"github.com/hearthlib/curator/internal/usecase/relevance"
	searchuc "github.com/hearthlib/curator/internal/usecase/search"
)

// Error response codes.
const (
	codeBadRequest    = "bad_request"
	codeUnauthorized  = "unauthorized"
	codeRateLimited   = "rate_limited"
	codeProviderError = "provider_error"
	codeCatalogEmpty  = "catalog_empty"
)

// Server wires the use cases to HTTP routes.
type Server struct {
	search    *searchuc.Service
	assistant *assistantuc.Service
	health    *healthuc.Service
	logger    *zap.Logger
}

// NewServer creates an HTTP API server.
func NewServer(
	search *searchuc.Service,
	assistant *assistantuc.Service,
	health *healthuc.Service,
	logger *zap.Logger,
) *Server {
	return &Server{search: search, assistant: assistant, health: health, logger: logger}
}

// Register mounts all routes on the router.
func (s *Server) Register(r chi.Router) {
	r.Post("/v1/search", s.handleSearch)
	r.Post("/v1/chat", s.handleChat)
	r.Get("/health", s.handleHealth)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())
}

// handleSearch handles POST /v1/search.
func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	var req searchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	boost := boostFor(req.Query, req.IntentAware)
	items := s.search.Search(r.Context(), req.Query, req.Limit, boost)

	writeJSON(w, http.StatusOK, searchResponse{
		Results: itemsToJSON(items),
		Count:   len(items),
	})
}

// handleChat handles POST /v1/chat.
func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	messages, err := messagesFromJSON(req.Messages)
	if err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, err.Error())
		return
	}

	reply, err := s.assistant.Chat(r.Context(), messages)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, chatResponse{
		Content:         reply.Content,
		Recommendations: itemsToJSON(reply.Recommendations),
		Fallback:        reply.Fallback,
	})
}

// handleHealth handles GET /health.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	status := http.StatusOK
	if report.Status != healthuc.Healthy {
		status = http.StatusServiceUnavailable
	}

	checks := make(map[string]string, len(report.Checks))
	for name, result := range report.Checks {
		checks[name] = string(result)
	}

	writeJSON(w, status, healthResponse{Status: string(report.Status), Checks: checks})
}

// boostFor builds the intent boost for a query. Intent awareness is on by
// default; callers opt out with "intent_aware": false.
func boostFor(query string, intentAware *bool) relevance.BoostFunc {
	if intentAware != nil && !*intentAware {
		return nil
	}
	in := intent.Analyze(query)
	return func(it catalog.Item) int { return intent.Boost(it, in) }
}

func (s *Server) handleDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidRequest):
		writeError(w, http.StatusBadRequest, codeBadRequest, err.Error())
	case errors.Is(err, domain.ErrCatalogEmpty):
		writeError(w, http.StatusServiceUnavailable, codeCatalogEmpty, err.Error())
	case errors.Is(err, domain.ErrRateLimited):
		writeError(w, http.StatusTooManyRequests, codeRateLimited, err.Error())
	case errors.Is(err, domain.ErrProviderError):
		writeError(w, http.StatusBadGateway, codeProviderError, err.Error())
	default:
		s.logger.Error("unhandled error", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{Code: code, Message: message})
}
