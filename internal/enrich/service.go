// Package enrich implements the source adapters: thin wrappers that turn
// search results and homepage HTML into typed per-source envelopes. Adapters
// never fail outward; any error degrades to a not-found envelope so the
// aggregator can gather all sources concurrently without error handling.
package enrich

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/FranksOps/scout/internal/scraper"
	"github.com/FranksOps/scout/internal/serp"
)

// Service holds the collaborators shared by every adapter.
type Service struct {
	serp    serp.Provider
	fetcher *scraper.Fetcher
	logger  *slog.Logger
}

// NewService creates the adapter layer around a search provider and a website
// fetcher.
func NewService(provider serp.Provider, fetcher *scraper.Fetcher, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{serp: provider, fetcher: fetcher, logger: logger}
}

// search runs one query and degrades any failure to an empty result set.
// Adapters therefore never observe a search error, only absence of results.
func (s *Service) search(ctx context.Context, query string, limit int) *serp.Results {
	res, err := s.serp.Search(ctx, query, limit)
	if err != nil {
		s.logger.Debug("search degraded to empty results", "query", query, "error", err)
		return &serp.Results{Query: query}
	}
	return res
}

// snippetText concatenates titles and snippets from results for regex and
// term scanning.
func snippetText(results ...*serp.Results) string {
	var sb strings.Builder
	for _, r := range results {
		if r == nil {
			continue
		}
		for _, o := range r.Organic {
			sb.WriteString(o.Title)
			sb.WriteString(". ")
			sb.WriteString(o.Snippet)
			sb.WriteString(" ")
		}
		for _, a := range r.Ads {
			sb.WriteString(a.Title)
			sb.WriteString(". ")
			sb.WriteString(a.Snippet)
			sb.WriteString(" ")
		}
	}
	return sb.String()
}

// ladder classifies a count into the fixed intensity ladder: >=3 high,
// >=1 medium, a weaker fallback indicator low, otherwise none. The thresholds
// are part of the adapter contract, not tuning knobs.
func ladder(count int, weakFallback bool) string {
	switch {
	case count >= 3:
		return IntensityHigh
	case count >= 1:
		return IntensityMedium
	case weakFallback:
		return IntensityLow
	default:
		return IntensityNone
	}
}

// brandQuery quotes the company name when present, else the bare domain.
func brandQuery(t Target) string {
	if t.CompanyName != "" {
		return fmt.Sprintf("%q", t.CompanyName)
	}
	return t.Domain
}

// containsAny reports whether s contains any of the needles, case-insensitive.
func containsAny(s string, needles ...string) bool {
	lower := strings.ToLower(s)
	for _, n := range needles {
		if strings.Contains(lower, strings.ToLower(n)) {
			return true
		}
	}
	return false
}
