package bulk

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/FranksOps/scout/internal/enrich"
	"github.com/FranksOps/scout/internal/intent"
	"github.com/FranksOps/scout/internal/serp"
)

type stubProvider struct{}

func (stubProvider) Search(context.Context, string, int) (*serp.Results, error) {
	return nil, errors.New("search unavailable")
}

func newOrchestrator() *Orchestrator {
	return New(enrich.NewService(stubProvider{}, nil, nil), nil, nil)
}

func TestRun_BatchCeiling(t *testing.T) {
	companies := make([]Company, 15)
	for i := range companies {
		companies[i] = Company{Domain: fmt.Sprintf("company%d.io", i)}
	}

	res := newOrchestrator().Run(context.Background(), companies, nil)

	if res.Processed != 10 {
		t.Errorf("expected 10 processed, got %d", res.Processed)
	}
	if res.Total != 15 {
		t.Errorf("expected total 15, got %d", res.Total)
	}
	if !res.HasMore {
		t.Error("expected hasMore")
	}
	if len(res.Results) != 10 {
		t.Errorf("expected 10 results, got %d", len(res.Results))
	}
}

func TestRun_ExactCeilingHasNoMore(t *testing.T) {
	companies := make([]Company, 10)
	for i := range companies {
		companies[i] = Company{Domain: fmt.Sprintf("company%d.io", i)}
	}
	res := newOrchestrator().Run(context.Background(), companies, nil)
	if res.HasMore {
		t.Error("exactly at the ceiling must not report hasMore")
	}
}

func TestRun_FailedCompanyIsolation(t *testing.T) {
	companies := []Company{
		{Domain: "first.io"},
		{Name: "No Domain Inc"},
		{Domain: "third.io"},
	}

	res := newOrchestrator().Run(context.Background(), companies, nil)

	if len(res.Results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(res.Results))
	}
	failed := res.Results[1]
	if failed.EnrichmentStatus != "failed" {
		t.Errorf("expected failed status, got %q", failed.EnrichmentStatus)
	}
	if failed.EnrichmentError != "No domain provided" {
		t.Errorf("expected 'No domain provided', got %q", failed.EnrichmentError)
	}
	if res.Results[2].EnrichmentStatus != "success" {
		t.Error("a failed company must not block later companies")
	}
}

func TestRun_SuccessStatusValue(t *testing.T) {
	// Batch consumers key on the literal status values, so they are part of
	// the wire contract: "success" for an enriched record, "failed" otherwise.
	res := newOrchestrator().Run(context.Background(), []Company{{Domain: "acme.io"}}, nil)
	if got := res.Results[0].EnrichmentStatus; got != "success" {
		t.Errorf("expected enrichmentStatus success, got %q", got)
	}
}

func TestRun_TypeSubset(t *testing.T) {
	res := newOrchestrator().Run(context.Background(),
		[]Company{{Domain: "acme.io"}}, []string{TypeEmail})

	enrichment := res.Results[0].Enrichment
	if _, ok := enrichment[TypeEmail]; !ok {
		t.Error("requested email enrichment missing")
	}
	if _, ok := enrichment[TypeTechStack]; ok {
		t.Error("unrequested techStack enrichment present")
	}
}

func TestResolveDomain(t *testing.T) {
	tests := []struct {
		company Company
		want    string
	}{
		{Company{Domain: "Acme.IO "}, "acme.io"},
		{Company{Website: "https://www.acme.io/about"}, "acme.io"},
		{Company{Website: "acme.io"}, "acme.io"},
		{Company{Domain: "acme.io", Website: "https://other.com"}, "acme.io"},
		{Company{Name: "Acme"}, ""},
		{Company{}, ""},
	}
	for _, tt := range tests {
		if got := ResolveDomain(tt.company); got != tt.want {
			t.Errorf("ResolveDomain(%+v) = %q, want %q", tt.company, got, tt.want)
		}
	}
}

func TestCompleteness(t *testing.T) {
	empty := &enrich.Report{}
	if got := Completeness(empty, nil); got != 0 {
		t.Errorf("empty report should score 0, got %d", got)
	}

	full := &enrich.Report{
		Email:     enrich.Hit(&enrich.EmailData{Email: "sales@acme.io", Verified: true}),
		TechStack: enrich.Hit(&enrich.TechStackData{Technologies: []string{"HubSpot"}}),
		Social:    enrich.Hit(&enrich.SocialData{ActiveNetworks: 5, SocialScore: 100}),
		Funding: enrich.Hit(&enrich.FundingData{
			HasRecentFunding: true,
			RecentNews:       []string{"Acme raises Series B"},
			HasExpansionNews: true,
			HasProductLaunch: true,
		}),
	}
	outreach := intent.BuildOutreach(full)
	// email 25 + tech 20 + social capped 20 + growth capped 20 + rationale 15
	if got := Completeness(full, &outreach); got != 100 {
		t.Errorf("expected 100, got %d", got)
	}
}

func TestCompleteness_SocialAndGrowthCapped(t *testing.T) {
	r := &enrich.Report{
		Social: enrich.Hit(&enrich.SocialData{SocialScore: 100}),
	}
	if got := Completeness(r, nil); got != 20 {
		t.Errorf("social contribution must cap at 20, got %d", got)
	}
}

func TestWebhook_Trigger(t *testing.T) {
	var received webhookPayload
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&received); err != nil {
			t.Errorf("decoding webhook payload: %v", err)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	hook, err := NewWebhook(srv.URL, nil)
	if err != nil {
		t.Fatalf("NewWebhook: %v", err)
	}
	companies := []Company{{Domain: "acme.io"}, {Domain: "globex.com"}}
	if err := hook.Trigger(context.Background(), companies); err != nil {
		t.Fatalf("Trigger: %v", err)
	}
	if len(received.Companies) != 2 {
		t.Errorf("expected 2 companies in payload, got %d", len(received.Companies))
	}
}

func TestNewWebhook_EmptyURLDisables(t *testing.T) {
	hook, err := NewWebhook("", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hook != nil {
		t.Error("empty URL must disable the webhook")
	}
}
