package enrich

import (
	"context"
	"fmt"
)

// EnrichAds detects paid advertising presence. Paid placements observed for
// brand queries are the primary indicator; a mention in an ad transparency
// library is the weaker fallback.
func (s *Service) EnrichAds(ctx context.Context, t Target) (env Envelope[AdsData]) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Warn("ads adapter recovered", "domain", t.Domain, "panic", r)
			env = Miss[AdsData]()
		}
	}()

	brandRes := s.search(ctx, brandQuery(t), 10)

	// Industry-term query surfaces ads bidding on category keywords
	var industryRes = brandRes
	if t.Industry != "" {
		industryRes = s.search(ctx, fmt.Sprintf("%s %s", t.Industry, t.Domain), 10)
	}

	adCount := len(brandRes.Ads)
	if industryRes != brandRes {
		adCount += len(industryRes.Ads)
	}

	transparencyRes := s.search(ctx,
		fmt.Sprintf("site:adstransparency.google.com %s", t.Domain), 3)
	transparencyMention := len(transparencyRes.Organic) > 0

	data := &AdsData{
		AdCount:   adCount,
		Intensity: ladder(adCount, transparencyMention),
	}
	data.IsRunningAds = data.Intensity != IntensityNone

	if !data.IsRunningAds {
		return Miss[AdsData]()
	}

	data.Platforms = append(data.Platforms, "google")

	switch data.Intensity {
	case IntensityHigh:
		data.Signals = append(data.Signals,
			fmt.Sprintf("Heavy Google Ads investment (%d paid placements observed)", adCount))
	case IntensityMedium:
		data.Signals = append(data.Signals, "Running Google Ads on brand terms")
	case IntensityLow:
		data.Signals = append(data.Signals, "Listed in the Google ad transparency library")
	}

	return Hit(data)
}
