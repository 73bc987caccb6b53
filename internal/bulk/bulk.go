// Package bulk orchestrates batch enrichment: a bounded set of companies, each
// enriched with a reduced adapter subset, with per-company failure isolation.
package bulk

import (
	"context"
	"log/slog"
	"net/url"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/FranksOps/scout/internal/enrich"
	"github.com/FranksOps/scout/internal/intent"
)

// BatchCeiling is the hard per-call company limit. Input beyond the ceiling
// is truncated and surfaced via HasMore.
const BatchCeiling = 10

// Enrichment type names accepted in a bulk request. An empty request subset
// means all of them.
const (
	TypeEmail     = "email"
	TypeTechStack = "techStack"
	TypeSocial    = "social"
	TypeFunding   = "funding"
)

// AllTypes is the full bulk adapter subset in run order.
var AllTypes = []string{TypeEmail, TypeTechStack, TypeSocial, TypeFunding}

// Company is one bulk-enrichment input. Domain wins when both a domain and a
// website URL are given.
type Company struct {
	Domain  string `json:"domain,omitempty"`
	Website string `json:"website,omitempty"`
	Name    string `json:"name,omitempty"`
}

// CompanyResult is the per-company outcome. EnrichmentStatus is "success" or
// "failed"; failed companies carry the error and no enrichment payload.
type CompanyResult struct {
	Domain           string           `json:"domain,omitempty"`
	Name             string           `json:"name,omitempty"`
	EnrichmentStatus string           `json:"enrichmentStatus"`
	EnrichmentError  string           `json:"enrichmentError,omitempty"`
	Completeness     int              `json:"completeness"`
	Email            *string          `json:"email,omitempty"`
	HasVerifiedEmail bool             `json:"hasVerifiedEmail"`
	Enrichment       map[string]any   `json:"enrichment,omitempty"`
	Outreach         *intent.Outreach `json:"outreachIntelligence,omitempty"`
}

// BatchResult summarizes one bulk call.
type BatchResult struct {
	Processed int             `json:"processed"`
	Total     int             `json:"total"`
	HasMore   bool            `json:"hasMore"`
	Results   []CompanyResult `json:"results"`
}

// Orchestrator runs bounded batches against the adapter service.
type Orchestrator struct {
	svc     *enrich.Service
	webhook *Webhook
	logger  *slog.Logger
}

// New creates a bulk orchestrator. The webhook is optional.
func New(svc *enrich.Service, webhook *Webhook, logger *slog.Logger) *Orchestrator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Orchestrator{svc: svc, webhook: webhook, logger: logger}
}

// Run enriches up to BatchCeiling companies. Companies are processed
// independently; one company failing to resolve a domain yields a failed
// record without affecting the rest. An empty types subset runs all types.
func (o *Orchestrator) Run(ctx context.Context, companies []Company, types []string) *BatchResult {
	total := len(companies)
	batch := companies
	if len(batch) > BatchCeiling {
		batch = batch[:BatchCeiling]
	}
	if len(types) == 0 {
		types = AllTypes
	}

	res := &BatchResult{
		Processed: len(batch),
		Total:     total,
		HasMore:   total > BatchCeiling,
		Results:   make([]CompanyResult, len(batch)),
	}

	for i, company := range batch {
		res.Results[i] = o.enrichOne(ctx, company, types)
	}

	if o.webhook != nil {
		if err := o.webhook.Trigger(ctx, batch); err != nil {
			o.logger.Warn("scrape webhook trigger failed", "error", err)
		}
	}

	o.logger.Info("bulk enrichment complete",
		"processed", res.Processed, "total", res.Total, "has_more", res.HasMore)

	return res
}

// enrichOne runs the requested adapter subset for one company and scores its
// completeness. Panics and adapter failures never escape the record.
func (o *Orchestrator) enrichOne(ctx context.Context, c Company, types []string) CompanyResult {
	domain := ResolveDomain(c)
	if domain == "" {
		return CompanyResult{
			Name:             c.Name,
			EnrichmentStatus: "failed",
			EnrichmentError:  "No domain provided",
		}
	}

	target := enrich.Target{Domain: domain, CompanyName: c.Name}
	report := &enrich.Report{Target: target}

	wanted := make(map[string]bool, len(types))
	for _, t := range types {
		wanted[t] = true
	}

	g, gctx := errgroup.WithContext(ctx)
	if wanted[TypeEmail] {
		g.Go(func() error { report.Email = o.svc.EnrichEmail(gctx, target); return nil })
	}
	if wanted[TypeTechStack] {
		g.Go(func() error { report.TechStack = o.svc.EnrichTechStack(gctx, target); return nil })
	}
	if wanted[TypeSocial] {
		g.Go(func() error { report.Social = o.svc.EnrichSocial(gctx, target); return nil })
	}
	if wanted[TypeFunding] {
		g.Go(func() error { report.Funding = o.svc.EnrichFunding(gctx, target); return nil })
	}
	_ = g.Wait()

	outreach := intent.BuildOutreach(report)

	result := CompanyResult{
		Domain:           domain,
		Name:             c.Name,
		EnrichmentStatus: "success",
		Completeness:     Completeness(report, &outreach),
		HasVerifiedEmail: report.VerifiedEmail(),
		Enrichment:       subsetMap(report, wanted),
		Outreach:         &outreach,
	}
	if email := report.BestEmail(); email != "" {
		result.Email = &email
	}
	return result
}

// subsetMap builds the enrichment payload map for the requested types only.
func subsetMap(r *enrich.Report, wanted map[string]bool) map[string]any {
	m := make(map[string]any, len(wanted))
	if wanted[TypeEmail] {
		m[TypeEmail] = payload(r.Email)
	}
	if wanted[TypeTechStack] {
		m[TypeTechStack] = payload(r.TechStack)
	}
	if wanted[TypeSocial] {
		m[TypeSocial] = payload(r.Social)
	}
	if wanted[TypeFunding] {
		m[TypeFunding] = payload(r.Funding)
	}
	return m
}

func payload[T any](env enrich.Envelope[T]) any {
	if !env.Found {
		return nil
	}
	return env.Data
}

// ResolveDomain picks the enrichment key for a company: an explicit domain
// first, otherwise the host parsed out of the website URL.
func ResolveDomain(c Company) string {
	if c.Domain != "" {
		return strings.ToLower(strings.TrimSpace(c.Domain))
	}
	if c.Website == "" {
		return ""
	}
	raw := c.Website
	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}
	u, err := url.Parse(raw)
	if err != nil || u.Hostname() == "" {
		return ""
	}
	return strings.ToLower(strings.TrimPrefix(u.Hostname(), "www."))
}

// Completeness scores how much of the bulk enrichment landed, 0-100, from
// five independently capped contributions. This is a coverage measure, not a
// lead score; it deliberately does not reuse the single-target rule table.
func Completeness(r *enrich.Report, o *intent.Outreach) int {
	score := 0
	if r.BestEmail() != "" {
		score += 25
	}
	if r.TechCount() > 0 {
		score += 20
	}
	score += capAt(r.SocialScore()/5, 20)
	score += capAt(growthScore(r), 20)
	if o != nil && len(o.WhyReachOut) > 0 && o.WhyReachOut[0] != "Fits the target profile" {
		score += 15
	}
	return score
}

// growthScore is a small funding-derived sub-score feeding completeness.
func growthScore(r *enrich.Report) int {
	s := 0
	if r.HasRecentFunding() {
		s += 10
	}
	if r.NewsCount() > 0 {
		s += 5
	}
	if r.HasExpansionNews() {
		s += 5
	}
	if r.HasProductLaunch() {
		s += 5
	}
	return s
}

func capAt(v, max int) int {
	if v > max {
		return max
	}
	return v
}
