// Package aggregate runs the full adapter set concurrently for one target and
// folds the envelopes into a single enrichment result.
package aggregate

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/FranksOps/scout/internal/enrich"
	"github.com/FranksOps/scout/internal/intent"
	"github.com/FranksOps/scout/internal/metrics"
	"github.com/FranksOps/scout/internal/score"
)

// SignalRecord is one flattened human-readable observation tagged with the
// source that produced it.
type SignalRecord struct {
	Type    string `json:"type"`
	Source  string `json:"source"`
	Message string `json:"message"`
}

// Metadata describes how an enrichment run went.
type Metadata struct {
	EnrichedAt     time.Time `json:"enrichedAt"`
	SourcesChecked int       `json:"sourcesChecked"`
	SourcesFound   int       `json:"sourcesFound"`
	EmailVerified  bool      `json:"emailVerified"`
}

// Result is the aggregate enrichment output for one target.
type Result struct {
	Domain           string                `json:"domain"`
	CompanyName      *string               `json:"companyName"`
	Score            int                   `json:"score"`
	Signals          []SignalRecord        `json:"signals"`
	BuyingSignals    []intent.BuyingSignal `json:"buyingSignals"`
	WhyNow           string                `json:"whyNow"`
	Email            *string               `json:"email"`
	HasVerifiedEmail bool                  `json:"hasVerifiedEmail"`
	Enrichment       map[string]any        `json:"enrichment"`
	Metadata         Metadata              `json:"metadata"`
}

// Aggregator wires the adapter service to the scorer and intent synthesizer.
type Aggregator struct {
	svc    *enrich.Service
	logger *slog.Logger
	now    func() time.Time
}

// New creates an aggregator over the adapter service.
func New(svc *enrich.Service, logger *slog.Logger) *Aggregator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Aggregator{svc: svc, logger: logger, now: time.Now}
}

// Enrich runs every adapter concurrently, waits for all of them to settle and
// builds the result. Adapter failures are internal to the adapters, so the
// gather never returns an error; the errgroup is used purely as a barrier.
func (a *Aggregator) Enrich(ctx context.Context, t enrich.Target) *Result {
	report := &enrich.Report{Target: t}

	g, gctx := errgroup.WithContext(ctx)
	run := func(source string, fn func(context.Context)) {
		g.Go(func() error {
			start := time.Now()
			fn(gctx)
			metrics.RecordAdapter(source, sourceFound(report, source), time.Since(start))
			return nil
		})
	}

	run(enrich.SourceLinkedIn, func(ctx context.Context) { report.LinkedIn = a.svc.EnrichLinkedIn(ctx, t) })
	run(enrich.SourceJobs, func(ctx context.Context) { report.Jobs = a.svc.EnrichJobs(ctx, t) })
	run(enrich.SourceTechStack, func(ctx context.Context) { report.TechStack = a.svc.EnrichTechStack(ctx, t) })
	run(enrich.SourceAds, func(ctx context.Context) { report.Ads = a.svc.EnrichAds(ctx, t) })
	run(enrich.SourceWebsite, func(ctx context.Context) { report.Website = a.svc.EnrichWebsite(ctx, t) })
	run(enrich.SourceFunding, func(ctx context.Context) { report.Funding = a.svc.EnrichFunding(ctx, t) })
	run(enrich.SourceReviews, func(ctx context.Context) { report.Reviews = a.svc.EnrichReviews(ctx, t) })
	run(enrich.SourceSocial, func(ctx context.Context) { report.Social = a.svc.EnrichSocial(ctx, t) })
	run(enrich.SourceContacts, func(ctx context.Context) { report.Contacts = a.svc.EnrichContacts(ctx, t) })
	run(enrich.SourceIntent, func(ctx context.Context) { report.Intent = a.svc.EnrichIntent(ctx, t) })
	run(enrich.SourceCompetitors, func(ctx context.Context) { report.Competitors = a.svc.EnrichCompetitors(ctx, t) })
	run(enrich.SourceTraffic, func(ctx context.Context) { report.Traffic = a.svc.EnrichTraffic(ctx, t) })
	run(enrich.SourceEmail, func(ctx context.Context) { report.Email = a.svc.EnrichEmail(ctx, t) })
	run(enrich.SourceIndustry, func(ctx context.Context) { report.Industry = a.svc.EnrichIndustry(ctx, t) })

	_ = g.Wait()

	return a.build(report)
}

// build folds a settled report into the result shell.
func (a *Aggregator) build(r *enrich.Report) *Result {
	res := &Result{
		Domain:           r.Target.Domain,
		Score:            score.Score(r),
		Signals:          FoldSignals(r),
		BuyingSignals:    intent.BuyingSignals(r),
		WhyNow:           intent.WhyNow(r),
		HasVerifiedEmail: r.VerifiedEmail(),
		Enrichment:       enrichmentMap(r),
		Metadata: Metadata{
			EnrichedAt:     a.now().UTC(),
			SourcesChecked: len(foldOrder),
			SourcesFound:   sourcesFound(r),
			EmailVerified:  r.VerifiedEmail(),
		},
	}
	if r.Target.CompanyName != "" {
		name := r.Target.CompanyName
		res.CompanyName = &name
	}
	if email := r.BestEmail(); email != "" {
		res.Email = &email
	}

	a.logger.Info("enrichment complete",
		"domain", res.Domain,
		"score", res.Score,
		"sources_found", res.Metadata.SourcesFound,
		"signals", len(res.Signals))

	return res
}
