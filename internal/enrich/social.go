package enrich

import (
	"context"
	"fmt"
	"strings"
)

// socialNetworks is the declared sub-query order: one search per network.
// This is the most search-hungry adapter (six calls per target).
var socialNetworks = []struct {
	name string
	site string
}{
	{"linkedin", "linkedin.com/company"},
	{"twitter", "twitter.com"},
	{"facebook", "facebook.com"},
	{"instagram", "instagram.com"},
	{"youtube", "youtube.com"},
	{"tiktok", "tiktok.com"},
}

// EnrichSocial discovers social profiles network by network and scores the
// overall presence 0-100.
func (s *Service) EnrichSocial(ctx context.Context, t Target) (env Envelope[SocialData]) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Warn("social adapter recovered", "domain", t.Domain, "panic", r)
			env = Miss[SocialData]()
		}
	}()

	brand := brandQuery(t)
	data := &SocialData{Profiles: make(map[string]string)}

	for _, network := range socialNetworks {
		res := s.search(ctx, fmt.Sprintf("site:%s %s", network.site, brand), 3)
		for _, o := range res.Organic {
			if strings.Contains(strings.ToLower(o.Link), network.site) {
				data.Profiles[network.name] = o.Link
				data.ActiveNetworks++
				break
			}
		}
	}

	if data.ActiveNetworks == 0 {
		return Miss[SocialData]()
	}

	// Flat score per network, capped at 100
	data.SocialScore = data.ActiveNetworks * 20
	if data.SocialScore > 100 {
		data.SocialScore = 100
	}

	networks := make([]string, 0, len(socialNetworks))
	for _, n := range socialNetworks {
		if _, ok := data.Profiles[n.name]; ok {
			networks = append(networks, n.name)
		}
	}
	data.Signals = append(data.Signals,
		fmt.Sprintf("Active on %d social networks (%s)", data.ActiveNetworks, strings.Join(networks, ", ")))

	return Hit(data)
}
