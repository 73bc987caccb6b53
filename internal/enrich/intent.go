package enrich

import (
	"context"
	"fmt"

	"github.com/FranksOps/scout/internal/analyzer"
)

// intentTerms are weighted purchase-readiness markers scanned across all
// brand-query snippets.
var intentTerms = []struct {
	term   string
	weight int
}{
	{"hiring", 15},
	{"funding", 20},
	{"expansion", 15},
	{"new office", 10},
	{"migration", 10},
	{"rfp", 20},
	{"looking for", 10},
	{"switching from", 15},
	{"demo", 5},
}

// EnrichIntent estimates buying intent by scanning search snippets for
// weighted intent terms. The score buckets to high (>=50), medium (>=25),
// low (>0).
func (s *Service) EnrichIntent(ctx context.Context, t Target) (env Envelope[IntentData]) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Warn("intent adapter recovered", "domain", t.Domain, "panic", r)
			env = Miss[IntentData]()
		}
	}()

	brand := brandQuery(t)
	newsRes := s.search(ctx, fmt.Sprintf("%s growth plans announcement", brand), 10)
	activityRes := s.search(ctx, fmt.Sprintf("%s %s", brand, t.Domain), 10)

	content := snippetText(newsRes, activityRes)

	terms := make([]string, len(intentTerms))
	weights := make(map[string]int, len(intentTerms))
	for i, it := range intentTerms {
		terms[i] = it.term
		weights[it.term] = it.weight
	}

	matches := analyzer.FindTermMatches(content, terms)
	if len(matches) == 0 {
		return Miss[IntentData]()
	}

	data := &IntentData{}
	for _, m := range matches {
		data.IntentScore += weights[m.Term]
		data.Indicators = append(data.Indicators, m.Term)
	}
	if data.IntentScore > 100 {
		data.IntentScore = 100
	}

	switch {
	case data.IntentScore >= 50:
		data.Level = IntensityHigh
	case data.IntentScore >= 25:
		data.Level = IntensityMedium
	default:
		data.Level = IntensityLow
	}

	data.Signals = append(data.Signals,
		fmt.Sprintf("Buying intent score %d (%s)", data.IntentScore, data.Level))

	return Hit(data)
}
