package enrich

// Report holds every adapter's envelope for one target. The scorer and intent
// synthesizer read it; the aggregator owns its construction. Fields are typed
// per source rather than a map so predicates stay compile-checked.
type Report struct {
	Target      Target
	LinkedIn    Envelope[LinkedInData]
	Jobs        Envelope[JobsData]
	TechStack   Envelope[TechStackData]
	Ads         Envelope[AdsData]
	Website     Envelope[WebsiteData]
	Funding     Envelope[FundingData]
	Reviews     Envelope[ReviewsData]
	Social      Envelope[SocialData]
	Contacts    Envelope[ContactsData]
	Intent      Envelope[IntentData]
	Competitors Envelope[CompetitorsData]
	Traffic     Envelope[TrafficData]
	Email       Envelope[EmailData]
	Industry    Envelope[IndustryData]
}

// Accessors below guard the found/nil invariant so rule tables read cleanly.

func (r *Report) AdsRunning() bool {
	return r.Ads.Found && r.Ads.Data.IsRunningAds
}

func (r *Report) AdIntensity() string {
	if !r.Ads.Found {
		return IntensityNone
	}
	return r.Ads.Data.Intensity
}

func (r *Report) HiringIntensity() string {
	if !r.Jobs.Found {
		return IntensityNone
	}
	return r.Jobs.Data.HiringIntensity
}

func (r *Report) HiringSales() bool {
	return r.Jobs.Found && r.Jobs.Data.HiringSales
}

func (r *Report) HasRecentFunding() bool {
	return r.Funding.Found && r.Funding.Data.HasRecentFunding
}

func (r *Report) NewsCount() int {
	if !r.Funding.Found {
		return 0
	}
	return len(r.Funding.Data.RecentNews)
}

func (r *Report) HasExpansionNews() bool {
	return r.Funding.Found && r.Funding.Data.HasExpansionNews
}

func (r *Report) HasProductLaunch() bool {
	return r.Funding.Found && r.Funding.Data.HasProductLaunch
}

func (r *Report) HasLeadershipChange() bool {
	return r.Funding.Found && r.Funding.Data.HasLeadershipChange
}

func (r *Report) CRM() string {
	if !r.TechStack.Found {
		return ""
	}
	return r.TechStack.Data.CRM
}

func (r *Report) TechCount() int {
	if !r.TechStack.Found {
		return 0
	}
	return len(r.TechStack.Data.Technologies)
}

func (r *Report) ReviewPlatformCount() int {
	if !r.Reviews.Found {
		return 0
	}
	return len(r.Reviews.Data.Platforms)
}

func (r *Report) ActiveSocialNetworks() int {
	if !r.Social.Found {
		return 0
	}
	return r.Social.Data.ActiveNetworks
}

func (r *Report) SocialScore() int {
	if !r.Social.Found {
		return 0
	}
	return r.Social.Data.SocialScore
}

func (r *Report) DecisionMakersFound() bool {
	return r.Contacts.Found && r.Contacts.Data.DecisionMakers
}

func (r *Report) IntentLevel() string {
	if !r.Intent.Found {
		return IntensityNone
	}
	return r.Intent.Data.Level
}

func (r *Report) UsingCompetitor() bool {
	return r.Competitors.Found && r.Competitors.Data.UsingCompetitor
}

func (r *Report) TrafficGrowing() bool {
	return r.Traffic.Found && r.Traffic.Data.Growing
}

// NoAfterHoursCoverage reports that the website was reachable but shows no
// sign of 24/7 or after-hours availability.
func (r *Report) NoAfterHoursCoverage() bool {
	return r.Website.Found && !r.Website.Data.MentionsAfterHours
}

// NoLiveChat reports a reachable website without a live chat widget, a proxy
// for inbound leads going unanswered.
func (r *Report) NoLiveChat() bool {
	return r.Website.Found && !r.Website.Data.HasLiveChat
}

// VerifiedEmail reports whether the email adapter produced a verified address.
func (r *Report) VerifiedEmail() bool {
	return r.Email.Found && r.Email.Data.Verified
}

// BestEmail picks the outreach email in priority order: the verification
// adapter's pick, then website scrape, then contact discovery.
func (r *Report) BestEmail() string {
	if r.Email.Found && r.Email.Data.Email != "" {
		return r.Email.Data.Email
	}
	if r.Website.Found && len(r.Website.Data.Emails) > 0 {
		return r.Website.Data.Emails[0]
	}
	if r.Contacts.Found && len(r.Contacts.Data.Emails) > 0 {
		return r.Contacts.Data.Emails[0]
	}
	return ""
}
