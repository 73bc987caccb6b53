package enrich

import (
	"context"
	"fmt"
	"sort"
	"strings"
)

// industryKeywords maps an industry label to its classification keywords.
var industryKeywords = map[string][]string{
	"software":      {"saas", "software", "platform", "api", "developer"},
	"ecommerce":     {"shop", "store", "ecommerce", "retail", "checkout"},
	"healthcare":    {"health", "medical", "clinic", "patient", "care"},
	"finance":       {"fintech", "banking", "payments", "lending", "insurance"},
	"manufacturing": {"manufacturing", "factory", "industrial", "equipment"},
	"services":      {"agency", "consulting", "services", "firm"},
	"real estate":   {"real estate", "property", "realty", "brokerage"},
}

// EnrichIndustry classifies the company's industry from search snippets. An
// explicit industry hint on the target short-circuits the classification.
func (s *Service) EnrichIndustry(ctx context.Context, t Target) (env Envelope[IndustryData]) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Warn("industry adapter recovered", "domain", t.Domain, "panic", r)
			env = Miss[IndustryData]()
		}
	}()

	if t.Industry != "" {
		return Hit(&IndustryData{Industry: strings.ToLower(t.Industry)})
	}

	res := s.search(ctx, fmt.Sprintf("%s company about", brandQuery(t)), 10)
	content := strings.ToLower(snippetText(res))
	if content == "" {
		return Miss[IndustryData]()
	}

	best := ""
	bestScore := 0
	var bestKeywords []string

	// Sort labels for deterministic tie-breaking
	labels := make([]string, 0, len(industryKeywords))
	for label := range industryKeywords {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	for _, label := range labels {
		score := 0
		var matched []string
		for _, kw := range industryKeywords[label] {
			if n := strings.Count(content, kw); n > 0 {
				score += n
				matched = append(matched, kw)
			}
		}
		if score > bestScore {
			best, bestScore, bestKeywords = label, score, matched
		}
	}

	if best == "" {
		return Miss[IndustryData]()
	}

	data := &IndustryData{
		Industry: best,
		Keywords: bestKeywords,
		Signals:  []string{fmt.Sprintf("Classified as %s", best)},
	}
	return Hit(data)
}
