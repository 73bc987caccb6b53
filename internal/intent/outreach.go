package intent

import (
	"fmt"
	"strings"

	"github.com/FranksOps/scout/internal/enrich"
)

// Outreach is the bulk-path message-drafting intelligence. It is derived from
// the email, tech stack, social and funding envelopes only, since bulk scope
// skips the heavier adapters.
type Outreach struct {
	WhyReachOut     []string `json:"whyReachOut"`
	WhenToReachOut  string   `json:"whenToReachOut"`
	UrgencyScore    int      `json:"urgencyScore"`
	Personalization []string `json:"personalization"`
	Icebreakers     []string `json:"icebreakers"`
	PainPoints      []string `json:"painPoints"`
	ValueProps      []string `json:"valueProps"`
}

// outreachRule contributes urgency points plus drafting hooks when its
// predicate holds.
type outreachRule struct {
	urgency int
	apply   func(*enrich.Report, *Outreach)
	when    func(*enrich.Report) bool
}

var outreachRules = []outreachRule{
	{
		urgency: 25,
		when:    func(r *enrich.Report) bool { return r.HasRecentFunding() },
		apply: func(r *enrich.Report, o *Outreach) {
			o.WhyReachOut = append(o.WhyReachOut, "Recently funded and in growth mode")
			round := r.Funding.Data.FundingRound
			if round == "" {
				round = "a funding round"
			}
			o.Icebreakers = append(o.Icebreakers,
				fmt.Sprintf("Congrats on closing %s", round))
			o.ValueProps = append(o.ValueProps, "Scale outreach without scaling headcount")
		},
	},
	{
		urgency: 15,
		when:    func(r *enrich.Report) bool { return r.TechCount() > 0 },
		apply: func(r *enrich.Report, o *Outreach) {
			techs := r.TechStack.Data.Technologies
			o.Personalization = append(o.Personalization,
				fmt.Sprintf("They run %s", strings.Join(techs, ", ")))
			if r.CRM() != "" {
				o.WhyReachOut = append(o.WhyReachOut,
					fmt.Sprintf("Already invested in %s, so tooling budget exists", r.CRM()))
				o.ValueProps = append(o.ValueProps,
					fmt.Sprintf("Native integration with %s", r.CRM()))
			}
		},
	},
	{
		urgency: 10,
		when:    func(r *enrich.Report) bool { return r.SocialScore() >= 40 },
		apply: func(r *enrich.Report, o *Outreach) {
			o.WhyReachOut = append(o.WhyReachOut, "Active social presence shows marketing investment")
			o.Icebreakers = append(o.Icebreakers, "Saw your recent posts, great momentum")
		},
	},
	{
		urgency: 10,
		when:    func(r *enrich.Report) bool { return r.VerifiedEmail() },
		apply: func(r *enrich.Report, o *Outreach) {
			o.Personalization = append(o.Personalization, "Verified direct email available")
		},
	},
	{
		urgency: 15,
		when:    func(r *enrich.Report) bool { return r.HasExpansionNews() || r.HasProductLaunch() },
		apply: func(r *enrich.Report, o *Outreach) {
			o.WhyReachOut = append(o.WhyReachOut, "Visible expansion or launch activity")
			o.PainPoints = append(o.PainPoints, "Growth stretches existing processes thin")
		},
	},
}

// BuildOutreach synthesizes outreach intelligence for a bulk-path report.
func BuildOutreach(r *enrich.Report) Outreach {
	o := Outreach{}
	for _, rule := range outreachRules {
		if rule.when(r) {
			o.UrgencyScore += rule.urgency
			rule.apply(r, &o)
		}
	}
	if o.UrgencyScore > 100 {
		o.UrgencyScore = 100
	}

	switch {
	case o.UrgencyScore >= 50:
		o.WhenToReachOut = "This week"
	case o.UrgencyScore >= 25:
		o.WhenToReachOut = "Within two weeks"
	default:
		o.WhenToReachOut = "This month"
	}

	if len(o.WhyReachOut) == 0 {
		o.WhyReachOut = []string{"Fits the target profile"}
	}
	if len(o.PainPoints) == 0 {
		o.PainPoints = []string{"Manual prospecting eats selling time"}
	}
	if len(o.ValueProps) == 0 {
		o.ValueProps = []string{"Consistent pipeline of qualified leads"}
	}

	return o
}
