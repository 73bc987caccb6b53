package enrich

import (
	"context"
	"fmt"
	"strings"
)

var salesTitleMarkers = []string{"sales", "account executive", "sdr", "bdr", "business development", "revenue"}
var leadershipTitleMarkers = []string{"vp ", "vice president", "head of", "director", "chief", "cro", "cmo"}

// EnrichJobs measures hiring activity from job-board search results. It runs
// independent sub-queries per board and merges them before classifying
// intensity on the fixed ladder.
func (s *Service) EnrichJobs(ctx context.Context, t Target) (env Envelope[JobsData]) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Warn("jobs adapter recovered", "domain", t.Domain, "panic", r)
			env = Miss[JobsData]()
		}
	}()

	brand := brandQuery(t)
	queries := []string{
		fmt.Sprintf("site:linkedin.com/jobs %s", brand),
		fmt.Sprintf("site:indeed.com %s", brand),
		fmt.Sprintf("site:greenhouse.io OR site:lever.co %s", brand),
		fmt.Sprintf("%s careers \"we're hiring\"", brand),
	}

	data := &JobsData{HiringIntensity: IntensityNone}
	careersMention := false

	for _, q := range queries {
		res := s.search(ctx, q, 10)
		for _, o := range res.Organic {
			title := strings.ToLower(o.Title)
			if strings.Contains(title, "career") || strings.Contains(title, "hiring") {
				careersMention = true
			}
			// Count only results that look like individual postings
			if !looksLikePosting(o.Link, title) {
				continue
			}
			data.OpenPositions++
			data.Titles = append(data.Titles, o.Title)
			if containsAny(o.Title, salesTitleMarkers...) {
				data.HiringSales = true
			}
			if containsAny(o.Title, leadershipTitleMarkers...) {
				data.HiringLeadership = true
			}
		}
	}

	data.HiringIntensity = ladder(data.OpenPositions, careersMention)
	if data.HiringIntensity == IntensityNone {
		return Miss[JobsData]()
	}

	switch data.HiringIntensity {
	case IntensityHigh:
		data.Signals = append(data.Signals,
			fmt.Sprintf("Actively hiring with %d open positions", data.OpenPositions))
	case IntensityMedium:
		data.Signals = append(data.Signals,
			fmt.Sprintf("Hiring for %d open positions", data.OpenPositions))
	case IntensityLow:
		data.Signals = append(data.Signals, "Careers page suggests occasional hiring")
	}
	if data.HiringSales {
		data.Signals = append(data.Signals, "Building out the sales team")
	}
	if data.HiringLeadership {
		data.Signals = append(data.Signals, "Hiring for leadership roles")
	}

	return Hit(data)
}

func looksLikePosting(link, title string) bool {
	lower := strings.ToLower(link)
	if strings.Contains(lower, "/jobs/view") || strings.Contains(lower, "/job/") ||
		strings.Contains(lower, "greenhouse.io") || strings.Contains(lower, "lever.co") ||
		strings.Contains(lower, "indeed.com/cmp") || strings.Contains(lower, "indeed.com/viewjob") {
		return true
	}
	return strings.Contains(title, "job") || strings.Contains(title, "hiring")
}
