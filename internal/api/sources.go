package api

import (
	"encoding/json"
	"net/http"

	"github.com/FranksOps/scout/internal/enrich"
	"github.com/FranksOps/scout/internal/metrics"
)

// sourceRoutes exposes individual adapters so callers can probe one source
// without paying for a full enrichment pass.
func (s *Server) sourceRoutes() map[string]http.HandlerFunc {
	return map[string]http.HandlerFunc{
		"/enrich/linkedin": sourceHandler(s, "/enrich/linkedin",
			func(r *http.Request, t enrich.Target) any { return s.svc.EnrichLinkedIn(r.Context(), t) }),
		"/enrich/jobs": sourceHandler(s, "/enrich/jobs",
			func(r *http.Request, t enrich.Target) any { return s.svc.EnrichJobs(r.Context(), t) }),
		"/enrich/techstack": sourceHandler(s, "/enrich/techstack",
			func(r *http.Request, t enrich.Target) any { return s.svc.EnrichTechStack(r.Context(), t) }),
		"/enrich/ads": sourceHandler(s, "/enrich/ads",
			func(r *http.Request, t enrich.Target) any { return s.svc.EnrichAds(r.Context(), t) }),
		"/enrich/website": sourceHandler(s, "/enrich/website",
			func(r *http.Request, t enrich.Target) any { return s.svc.EnrichWebsite(r.Context(), t) }),
		"/enrich/funding": sourceHandler(s, "/enrich/funding",
			func(r *http.Request, t enrich.Target) any { return s.svc.EnrichFunding(r.Context(), t) }),
		"/enrich/social": sourceHandler(s, "/enrich/social",
			func(r *http.Request, t enrich.Target) any { return s.svc.EnrichSocial(r.Context(), t) }),
		"/enrich/contacts": sourceHandler(s, "/enrich/contacts",
			func(r *http.Request, t enrich.Target) any { return s.svc.EnrichContacts(r.Context(), t) }),
	}
}

// sourceHandler wraps one adapter in the shared request plumbing: method
// check, body validation, panic recovery, metrics.
func sourceHandler(s *Server, endpoint string, run func(*http.Request, enrich.Target) any) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}
		defer s.recoverTo(w, endpoint)

		var req enrichRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			metrics.EnrichRequestsTotal.WithLabelValues(endpoint, "bad_request").Inc()
			writeError(w, http.StatusBadRequest, "invalid JSON body")
			return
		}
		if req.Domain == "" {
			metrics.EnrichRequestsTotal.WithLabelValues(endpoint, "bad_request").Inc()
			writeError(w, http.StatusBadRequest, "domain is required")
			return
		}

		env := run(r, enrich.Target{
			Domain:      req.Domain,
			CompanyName: req.CompanyName,
			Industry:    req.Industry,
		})
		metrics.EnrichRequestsTotal.WithLabelValues(endpoint, "ok").Inc()
		writeJSON(w, http.StatusOK, env)
	}
}
