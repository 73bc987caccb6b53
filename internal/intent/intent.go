// Package intent synthesizes discrete buying-signal flags and a why-now
// outreach rationale from an enrichment report.
package intent

import (
	"strings"

	"github.com/FranksOps/scout/internal/enrich"
)

// DefaultWhyNow is emitted when no rationale predicate fires.
const DefaultWhyNow = "Company shows standard growth indicators."

// BuyingSignal is one detected purchase-readiness flag. Only detected flags
// are emitted; Detected is always true on output.
type BuyingSignal struct {
	ID       string `json:"id"`
	Label    string `json:"label"`
	Detected bool   `json:"detected"`
}

// signalCheck pairs a stable id and label with its detection predicate.
type signalCheck struct {
	id    string
	label string
	when  func(*enrich.Report) bool
}

// signalChecks is the canonical detection order. Consumers may display a
// truncated prefix, so this order is part of the contract.
var signalChecks = []signalCheck{
	{"googlePaidTraffic", "Running Google paid search ads",
		func(r *enrich.Report) bool { return r.AdsRunning() }},
	{"afterHoursGap", "No after-hours coverage on website",
		func(r *enrich.Report) bool { return r.NoAfterHoursCoverage() }},
	{"inboundResponseRisk", "No live chat; inbound leads may go unanswered",
		func(r *enrich.Report) bool { return r.NoLiveChat() }},
	{"activelyHiring", "Actively hiring",
		func(r *enrich.Report) bool {
			hi := r.HiringIntensity()
			return hi == enrich.IntensityHigh || hi == enrich.IntensityMedium
		}},
	{"crmUsage", "CRM platform in use",
		func(r *enrich.Report) bool { return r.CRM() != "" }},
	{"recentFunding", "Recently raised funding",
		func(r *enrich.Report) bool { return r.HasRecentFunding() }},
	{"activeNews", "Active news coverage",
		func(r *enrich.Report) bool { return r.NewsCount() > 0 }},
	{"b2bReviews", "Present on B2B review platforms",
		func(r *enrich.Report) bool { return r.ReviewPlatformCount() > 0 }},
	{"activeSocial", "Active on social media",
		func(r *enrich.Report) bool { return r.ActiveSocialNetworks() >= 2 }},
	{"decisionMakersFound", "Decision makers identified",
		func(r *enrich.Report) bool { return r.DecisionMakersFound() }},
	{"highIntent", "High buying-intent indicators",
		func(r *enrich.Report) bool { return r.IntentLevel() == enrich.IntensityHigh }},
	{"leadershipChange", "Recent leadership change",
		func(r *enrich.Report) bool { return r.HasLeadershipChange() }},
	{"competitorUsage", "Using a competitor's product",
		func(r *enrich.Report) bool { return r.UsingCompetitor() }},
	{"trafficGrowth", "Web traffic growing",
		func(r *enrich.Report) bool { return r.TrafficGrowing() }},
}

// BuyingSignals evaluates every check in declared order and returns only the
// detected flags.
func BuyingSignals(r *enrich.Report) []BuyingSignal {
	var out []BuyingSignal
	for _, c := range signalChecks {
		if c.when(r) {
			out = append(out, BuyingSignal{ID: c.id, Label: c.label, Detected: true})
		}
	}
	return out
}

// whyNowReason pairs a rationale sentence with its gate predicate. Sentences
// end without a period; the joiner adds punctuation.
type whyNowReason struct {
	sentence string
	when     func(*enrich.Report) bool
}

var whyNowReasons = []whyNowReason{
	{"Recently secured funding and likely investing in growth",
		func(r *enrich.Report) bool { return r.HasRecentFunding() }},
	{"Showing strong buying-intent indicators right now",
		func(r *enrich.Report) bool { return r.IntentLevel() == enrich.IntensityHigh }},
	{"New leadership often revisits vendor choices",
		func(r *enrich.Report) bool { return r.HasLeadershipChange() }},
	{"Hiring rapidly, which signals scaling pains",
		func(r *enrich.Report) bool { return r.HiringIntensity() == enrich.IntensityHigh }},
	{"Spending heavily on paid search to drive inbound demand",
		func(r *enrich.Report) bool { return r.AdsRunning() && r.AdIntensity() == enrich.IntensityHigh }},
	{"No after-hours coverage means missed inbound opportunities",
		func(r *enrich.Report) bool { return r.NoAfterHoursCoverage() }},
	{"Building out a sales team",
		func(r *enrich.Report) bool { return r.HiringSales() }},
	{"Expanding into new markets",
		func(r *enrich.Report) bool { return r.HasExpansionNews() }},
	{"Just launched a new product",
		func(r *enrich.Report) bool { return r.HasProductLaunch() }},
	{"Already using a competitor, so the category need is proven",
		func(r *enrich.Report) bool { return r.UsingCompetitor() }},
	{"Traffic is trending up",
		func(r *enrich.Report) bool { return r.TrafficGrowing() }},
	{"Review scores suggest customer-experience gaps worth addressing",
		func(r *enrich.Report) bool {
			return r.Reviews.Found && r.Reviews.Data.ReviewCount >= 10 && r.Reviews.Data.Rating > 0 && r.Reviews.Data.Rating < 3.5
		}},
}

// WhyNow joins every passing rationale into a short paragraph. With no
// passing predicate it returns DefaultWhyNow exactly.
func WhyNow(r *enrich.Report) string {
	var parts []string
	for _, reason := range whyNowReasons {
		if reason.when(r) {
			parts = append(parts, reason.sentence)
		}
	}
	if len(parts) == 0 {
		return DefaultWhyNow
	}
	return strings.Join(parts, ". ") + "."
}
