package enrich

import (
	"context"
	"fmt"
	"strings"
)

// knownCompetitorTools is the competitor product set scanned for in snippets.
var knownCompetitorTools = []string{
	"Salesforce", "HubSpot", "Pipedrive", "Zoho", "Monday.com",
	"Zendesk", "Freshdesk", "Intercom",
}

// EnrichCompetitors checks whether the company publicly uses a competing tool,
// which is a displacement opportunity.
func (s *Service) EnrichCompetitors(ctx context.Context, t Target) (env Envelope[CompetitorsData]) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Warn("competitors adapter recovered", "domain", t.Domain, "panic", r)
			env = Miss[CompetitorsData]()
		}
	}()

	res := s.search(ctx,
		fmt.Sprintf(`%s "powered by" OR "we use" OR "case study"`, brandQuery(t)), 10)
	content := snippetText(res)

	data := &CompetitorsData{}
	for _, tool := range knownCompetitorTools {
		if containsAny(content, tool) {
			data.Competitors = append(data.Competitors, tool)
		}
	}

	if len(data.Competitors) == 0 {
		return Miss[CompetitorsData]()
	}

	data.UsingCompetitor = true
	data.Signals = append(data.Signals,
		fmt.Sprintf("Using competitor tools: %s", strings.Join(data.Competitors, ", ")))

	return Hit(data)
}

var growthMarkers = []string{"growing", "growth", "record year", "doubled", "fastest-growing", "scaling"}
var declineMarkers = []string{"layoffs", "shutting down", "winding down", "declining"}

// EnrichTraffic estimates the traffic trend from growth-related coverage.
// This is a weak proxy; absence of evidence is a miss, not a "flat" claim.
func (s *Service) EnrichTraffic(ctx context.Context, t Target) (env Envelope[TrafficData]) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Warn("traffic adapter recovered", "domain", t.Domain, "panic", r)
			env = Miss[TrafficData]()
		}
	}()

	res := s.search(ctx, fmt.Sprintf("%s traffic growth statistics", brandQuery(t)), 10)
	content := snippetText(res)
	if content == "" {
		return Miss[TrafficData]()
	}

	data := &TrafficData{Trend: "unknown"}
	switch {
	case containsAny(content, declineMarkers...):
		data.Trend = "declining"
	case containsAny(content, growthMarkers...):
		data.Trend = "growing"
		data.Growing = true
	}

	if data.Trend == "unknown" {
		return Miss[TrafficData]()
	}

	if data.Growing {
		data.Signals = append(data.Signals, "Web traffic and coverage trending up")
	}

	return Hit(data)
}
