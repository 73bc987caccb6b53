package enrich

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var reviewPlatforms = []string{"g2.com", "capterra.com", "trustpilot.com", "getapp.com", "clutch.co"}

var ratingRe = regexp.MustCompile(`(\d\.\d)\s*(?:out of 5|/5|stars)`)
var reviewCountRe = regexp.MustCompile(`(\d[\d,]*)\s+reviews`)

// EnrichReviews finds B2B review platform listings and pulls the best-effort
// rating and review count out of the snippets.
func (s *Service) EnrichReviews(ctx context.Context, t Target) (env Envelope[ReviewsData]) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Warn("reviews adapter recovered", "domain", t.Domain, "panic", r)
			env = Miss[ReviewsData]()
		}
	}()

	query := fmt.Sprintf("%s reviews site:g2.com OR site:capterra.com OR site:trustpilot.com", brandQuery(t))
	res := s.search(ctx, query, 10)

	data := &ReviewsData{}
	seen := make(map[string]struct{})

	for _, o := range res.Organic {
		link := strings.ToLower(o.Link)
		for _, platform := range reviewPlatforms {
			if !strings.Contains(link, platform) {
				continue
			}
			name := strings.TrimSuffix(strings.TrimSuffix(platform, ".com"), ".co")
			if _, dup := seen[name]; !dup {
				seen[name] = struct{}{}
				data.Platforms = append(data.Platforms, name)
			}
		}

		if data.Rating == 0 {
			if m := ratingRe.FindStringSubmatch(o.Snippet); m != nil {
				if v, err := strconv.ParseFloat(m[1], 64); err == nil {
					data.Rating = v
				}
			}
		}
		if data.ReviewCount == 0 {
			if m := reviewCountRe.FindStringSubmatch(o.Snippet); m != nil {
				if v, err := strconv.Atoi(strings.ReplaceAll(m[1], ",", "")); err == nil {
					data.ReviewCount = v
				}
			}
		}
	}

	if len(data.Platforms) == 0 {
		return Miss[ReviewsData]()
	}

	data.Signals = append(data.Signals,
		fmt.Sprintf("Listed on %s", strings.Join(data.Platforms, ", ")))
	if data.Rating > 0 {
		data.Signals = append(data.Signals,
			fmt.Sprintf("Rated %.1f across %d reviews", data.Rating, data.ReviewCount))
	}

	return Hit(data)
}
