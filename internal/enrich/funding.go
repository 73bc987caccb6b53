package enrich

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/FranksOps/scout/internal/extract"
)

var fundingRoundRe = regexp.MustCompile(`(?i)\b(seed|pre-seed|series [a-f])\b`)

var expansionMarkers = []string{"expands", "expansion", "opens new office", "new market", "enters"}
var launchMarkers = []string{"launches", "launch of", "unveils", "introduces", "releases"}
var leadershipMarkers = []string{"appoints", "names new", "hires", "joins as", "new ceo", "new cro", "new vp"}

// EnrichFunding gathers funding, news, awards and leadership activity from
// four independent sub-queries merged into one envelope.
func (s *Service) EnrichFunding(ctx context.Context, t Target) (env Envelope[FundingData]) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Warn("funding adapter recovered", "domain", t.Domain, "panic", r)
			env = Miss[FundingData]()
		}
	}()

	brand := brandQuery(t)
	fundingRes := s.search(ctx, fmt.Sprintf("%s funding raised round", brand), 10)
	newsRes := s.search(ctx, fmt.Sprintf("%s news announcement", brand), 10)
	awardsRes := s.search(ctx, fmt.Sprintf("%s award winner recognized", brand), 5)
	leadershipRes := s.search(ctx, fmt.Sprintf("%s appoints CEO VP leadership", brand), 5)

	data := &FundingData{}

	fundingText := snippetText(fundingRes)
	if containsAny(fundingText, "raised", "funding round", "series ", "seed round") {
		data.HasRecentFunding = true
		if m := fundingRoundRe.FindString(fundingText); m != "" {
			data.FundingRound = strings.ToLower(m)
		}
		if amounts := extract.MoneyAmounts(fundingText); len(amounts) > 0 {
			data.FundingAmount = amounts[0]
		}
	}

	for _, o := range newsRes.Organic {
		headline := strings.TrimSpace(o.Title)
		if headline == "" {
			continue
		}
		data.RecentNews = append(data.RecentNews, headline)
		if containsAny(headline, expansionMarkers...) {
			data.HasExpansionNews = true
		}
		if containsAny(headline, launchMarkers...) {
			data.HasProductLaunch = true
		}
	}

	if containsAny(snippetText(leadershipRes), leadershipMarkers...) {
		data.HasLeadershipChange = true
	}

	for _, o := range awardsRes.Organic {
		if containsAny(o.Title, "award", "winner", "recognized", "best of") {
			data.Awards = append(data.Awards, strings.TrimSpace(o.Title))
		}
	}

	empty := !data.HasRecentFunding && len(data.RecentNews) == 0 &&
		!data.HasLeadershipChange && len(data.Awards) == 0
	if empty {
		return Miss[FundingData]()
	}

	if data.HasRecentFunding {
		sig := "Recent funding round detected"
		if data.FundingAmount != "" {
			sig = fmt.Sprintf("Raised %s in recent funding", data.FundingAmount)
		}
		data.Signals = append(data.Signals, sig)
	}
	if len(data.RecentNews) > 0 {
		data.Signals = append(data.Signals,
			fmt.Sprintf("Active in the news (%d recent items)", len(data.RecentNews)))
	}
	if data.HasExpansionNews {
		data.Signals = append(data.Signals, "Announced market expansion")
	}
	if data.HasProductLaunch {
		data.Signals = append(data.Signals, "Recently launched a product")
	}
	if data.HasLeadershipChange {
		data.Signals = append(data.Signals, "Leadership change announced")
	}
	if len(data.Awards) > 0 {
		data.Signals = append(data.Signals, "Industry awards or recognition")
	}

	return Hit(data)
}
