// Package score turns an enrichment report into a 0-100 lead score using a
// fixed additive rule table.
package score

import "github.com/FranksOps/scout/internal/enrich"

// Base is the starting score every company gets before rules apply.
const Base = 30

// VerifiedEmailBonus is applied after the rule-table clamp, then re-clamped.
const VerifiedEmailBonus = 10

// Rule awards Points when its predicate holds against the report.
type Rule struct {
	Name   string
	Points int
	When   func(*enrich.Report) bool
}

// Rules is the scoring table, applied in declared order. Hiring rules are
// mutually exclusive by intensity; everything else stacks.
var Rules = []Rule{
	{
		Name:   "running search ads",
		Points: 10,
		When:   func(r *enrich.Report) bool { return r.AdsRunning() },
	},
	{
		Name:   "hiring aggressively",
		Points: 15,
		When:   func(r *enrich.Report) bool { return r.HiringIntensity() == enrich.IntensityHigh },
	},
	{
		Name:   "hiring moderately",
		Points: 10,
		When:   func(r *enrich.Report) bool { return r.HiringIntensity() == enrich.IntensityMedium },
	},
	{
		Name:   "hiring lightly",
		Points: 5,
		When:   func(r *enrich.Report) bool { return r.HiringIntensity() == enrich.IntensityLow },
	},
	{
		Name:   "recent funding",
		Points: 15,
		When:   func(r *enrich.Report) bool { return r.HasRecentFunding() },
	},
	{
		Name:   "linkedin presence",
		Points: 5,
		When:   func(r *enrich.Report) bool { return r.LinkedIn.Found },
	},
	{
		Name:   "tech stack identified",
		Points: 5,
		When:   func(r *enrich.Report) bool { return r.TechCount() > 0 },
	},
	{
		Name:   "crm in use",
		Points: 5,
		When:   func(r *enrich.Report) bool { return r.CRM() != "" },
	},
	{
		Name:   "recent news coverage",
		Points: 5,
		When:   func(r *enrich.Report) bool { return r.NewsCount() > 0 },
	},
	{
		Name:   "b2b review presence",
		Points: 5,
		When:   func(r *enrich.Report) bool { return r.ReviewPlatformCount() > 0 },
	},
	{
		Name:   "active social presence",
		Points: 5,
		When:   func(r *enrich.Report) bool { return r.ActiveSocialNetworks() >= 2 },
	},
	{
		Name:   "decision makers found",
		Points: 10,
		When:   func(r *enrich.Report) bool { return r.DecisionMakersFound() },
	},
	{
		Name:   "high buying intent",
		Points: 10,
		When:   func(r *enrich.Report) bool { return r.IntentLevel() == enrich.IntensityHigh },
	},
	{
		Name:   "using competitor tool",
		Points: 5,
		When:   func(r *enrich.Report) bool { return r.UsingCompetitor() },
	},
	{
		Name:   "traffic growing",
		Points: 5,
		When:   func(r *enrich.Report) bool { return r.TrafficGrowing() },
	},
}

// Score computes the lead score for a report. The rule-table total is clamped
// to 100 before the verified-email bonus, and the final value is clamped
// again, so the function is idempotent over repeat calls on the same report.
func Score(r *enrich.Report) int {
	total := Base
	for _, rule := range Rules {
		if rule.When(r) {
			total += rule.Points
		}
	}
	total = clamp(total)
	if r.VerifiedEmail() {
		total = clamp(total + VerifiedEmailBonus)
	}
	return total
}

// Matched returns the names of rules that fired, in table order. Used for the
// outreach rationale.
func Matched(r *enrich.Report) []string {
	var names []string
	for _, rule := range Rules {
		if rule.When(r) {
			names = append(names, rule.Name)
		}
	}
	return names
}

func clamp(v int) int {
	if v > 100 {
		return 100
	}
	if v < 0 {
		return 0
	}
	return v
}
