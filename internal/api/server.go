// Package api exposes the enrichment pipeline over HTTP.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/FranksOps/scout/internal/aggregate"
	"github.com/FranksOps/scout/internal/bulk"
	"github.com/FranksOps/scout/internal/enrich"
	"github.com/FranksOps/scout/internal/metrics"
)

// Server routes enrichment requests to the aggregator and bulk orchestrator.
type Server struct {
	agg    *aggregate.Aggregator
	svc    *enrich.Service
	bulk   *bulk.Orchestrator
	logger *slog.Logger
	srv    *http.Server
}

// New builds the API server. addr is the listen address, e.g. ":8080".
func New(addr string, agg *aggregate.Aggregator, svc *enrich.Service, orch *bulk.Orchestrator, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{agg: agg, svc: svc, bulk: orch, logger: logger}

	mux := http.NewServeMux()
	mux.HandleFunc("/enrich", s.handleEnrich)
	mux.HandleFunc("/enrich-bulk", s.handleEnrichBulk)
	for path, handler := range s.sourceRoutes() {
		mux.HandleFunc(path, handler)
	}

	s.srv = &http.Server{
		Addr:              addr,
		Handler:           chain(mux, s.requestLog, cors),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// Handler exposes the fully wired route handler for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.srv.Handler
}

// ListenAndServe blocks serving requests until Shutdown or a listener error.
func (s *Server) ListenAndServe() error {
	s.logger.Info("api server listening", "addr", s.srv.Addr)
	err := s.srv.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}

// enrichRequest is the single-target request body.
type enrichRequest struct {
	Domain      string `json:"domain"`
	CompanyName string `json:"companyName,omitempty"`
	Industry    string `json:"industry,omitempty"`
}

func (s *Server) handleEnrich(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	defer s.recoverTo(w, "/enrich")

	var req enrichRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		metrics.EnrichRequestsTotal.WithLabelValues("/enrich", "bad_request").Inc()
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.Domain == "" {
		metrics.EnrichRequestsTotal.WithLabelValues("/enrich", "bad_request").Inc()
		writeError(w, http.StatusBadRequest, "domain is required")
		return
	}

	result := s.agg.Enrich(r.Context(), enrich.Target{
		Domain:      req.Domain,
		CompanyName: req.CompanyName,
		Industry:    req.Industry,
	})
	metrics.EnrichRequestsTotal.WithLabelValues("/enrich", "ok").Inc()
	writeJSON(w, http.StatusOK, result)
}

// bulkRequest is the batch request body.
type bulkRequest struct {
	Companies       []bulk.Company `json:"companies"`
	EnrichmentTypes []string       `json:"enrichmentTypes,omitempty"`
}

func (s *Server) handleEnrichBulk(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	defer s.recoverTo(w, "/enrich-bulk")

	var req bulkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		metrics.EnrichRequestsTotal.WithLabelValues("/enrich-bulk", "bad_request").Inc()
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if len(req.Companies) == 0 {
		metrics.EnrichRequestsTotal.WithLabelValues("/enrich-bulk", "bad_request").Inc()
		writeError(w, http.StatusBadRequest, "companies is required and must be non-empty")
		return
	}

	result := s.bulk.Run(r.Context(), req.Companies, req.EnrichmentTypes)
	metrics.EnrichRequestsTotal.WithLabelValues("/enrich-bulk", "ok").Inc()
	writeJSON(w, http.StatusOK, result)
}

// recoverTo converts a handler panic into a 500 so one bad request cannot
// take the server down.
func (s *Server) recoverTo(w http.ResponseWriter, endpoint string) {
	if rec := recover(); rec != nil {
		s.logger.Error("handler panic", "endpoint", endpoint, "panic", rec)
		metrics.EnrichRequestsTotal.WithLabelValues(endpoint, "error").Inc()
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
