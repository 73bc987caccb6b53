package aggregate

import "github.com/FranksOps/scout/internal/enrich"

// foldEntry binds a source name and signal type to the extractor that pulls
// its signal strings and payload out of a report.
type foldEntry struct {
	source  string
	sigType string
	signals func(*enrich.Report) []string
	found   func(*enrich.Report) bool
	data    func(*enrich.Report) any
}

// foldOrder is the canonical source order. Signal flattening, the enrichment
// map and the sources-checked count all derive from this one table.
var foldOrder = []foldEntry{
	{
		source: enrich.SourceLinkedIn, sigType: "presence",
		signals: func(r *enrich.Report) []string { return sig(r.LinkedIn, func(d *enrich.LinkedInData) []string { return d.Signals }) },
		found:   func(r *enrich.Report) bool { return r.LinkedIn.Found },
		data:    func(r *enrich.Report) any { return dat(r.LinkedIn) },
	},
	{
		source: enrich.SourceJobs, sigType: "hiring",
		signals: func(r *enrich.Report) []string { return sig(r.Jobs, func(d *enrich.JobsData) []string { return d.Signals }) },
		found:   func(r *enrich.Report) bool { return r.Jobs.Found },
		data:    func(r *enrich.Report) any { return dat(r.Jobs) },
	},
	{
		source: enrich.SourceTechStack, sigType: "technology",
		signals: func(r *enrich.Report) []string {
			return sig(r.TechStack, func(d *enrich.TechStackData) []string { return d.Signals })
		},
		found: func(r *enrich.Report) bool { return r.TechStack.Found },
		data:  func(r *enrich.Report) any { return dat(r.TechStack) },
	},
	{
		source: enrich.SourceAds, sigType: "advertising",
		signals: func(r *enrich.Report) []string { return sig(r.Ads, func(d *enrich.AdsData) []string { return d.Signals }) },
		found:   func(r *enrich.Report) bool { return r.Ads.Found },
		data:    func(r *enrich.Report) any { return dat(r.Ads) },
	},
	{
		source: enrich.SourceWebsite, sigType: "website",
		signals: func(r *enrich.Report) []string { return sig(r.Website, func(d *enrich.WebsiteData) []string { return d.Signals }) },
		found:   func(r *enrich.Report) bool { return r.Website.Found },
		data:    func(r *enrich.Report) any { return dat(r.Website) },
	},
	{
		source: enrich.SourceFunding, sigType: "growth",
		signals: func(r *enrich.Report) []string { return sig(r.Funding, func(d *enrich.FundingData) []string { return d.Signals }) },
		found:   func(r *enrich.Report) bool { return r.Funding.Found },
		data:    func(r *enrich.Report) any { return dat(r.Funding) },
	},
	{
		source: enrich.SourceReviews, sigType: "reputation",
		signals: func(r *enrich.Report) []string { return sig(r.Reviews, func(d *enrich.ReviewsData) []string { return d.Signals }) },
		found:   func(r *enrich.Report) bool { return r.Reviews.Found },
		data:    func(r *enrich.Report) any { return dat(r.Reviews) },
	},
	{
		source: enrich.SourceSocial, sigType: "social",
		signals: func(r *enrich.Report) []string { return sig(r.Social, func(d *enrich.SocialData) []string { return d.Signals }) },
		found:   func(r *enrich.Report) bool { return r.Social.Found },
		data:    func(r *enrich.Report) any { return dat(r.Social) },
	},
	{
		source: enrich.SourceContacts, sigType: "contacts",
		signals: func(r *enrich.Report) []string {
			return sig(r.Contacts, func(d *enrich.ContactsData) []string { return d.Signals })
		},
		found: func(r *enrich.Report) bool { return r.Contacts.Found },
		data:  func(r *enrich.Report) any { return dat(r.Contacts) },
	},
	{
		source: enrich.SourceIntent, sigType: "intent",
		signals: func(r *enrich.Report) []string { return sig(r.Intent, func(d *enrich.IntentData) []string { return d.Signals }) },
		found:   func(r *enrich.Report) bool { return r.Intent.Found },
		data:    func(r *enrich.Report) any { return dat(r.Intent) },
	},
	{
		source: enrich.SourceCompetitors, sigType: "competitive",
		signals: func(r *enrich.Report) []string {
			return sig(r.Competitors, func(d *enrich.CompetitorsData) []string { return d.Signals })
		},
		found: func(r *enrich.Report) bool { return r.Competitors.Found },
		data:  func(r *enrich.Report) any { return dat(r.Competitors) },
	},
	{
		source: enrich.SourceTraffic, sigType: "growth",
		signals: func(r *enrich.Report) []string { return sig(r.Traffic, func(d *enrich.TrafficData) []string { return d.Signals }) },
		found:   func(r *enrich.Report) bool { return r.Traffic.Found },
		data:    func(r *enrich.Report) any { return dat(r.Traffic) },
	},
	{
		source: enrich.SourceEmail, sigType: "contact",
		signals: func(r *enrich.Report) []string { return sig(r.Email, func(d *enrich.EmailData) []string { return d.Signals }) },
		found:   func(r *enrich.Report) bool { return r.Email.Found },
		data:    func(r *enrich.Report) any { return dat(r.Email) },
	},
	{
		source: enrich.SourceIndustry, sigType: "classification",
		signals: func(r *enrich.Report) []string {
			return sig(r.Industry, func(d *enrich.IndustryData) []string { return d.Signals })
		},
		found: func(r *enrich.Report) bool { return r.Industry.Found },
		data:  func(r *enrich.Report) any { return dat(r.Industry) },
	},
}

// FoldSignals flattens every found envelope's signal strings into one ordered
// list. Order within a source is preserved; sources follow foldOrder.
func FoldSignals(r *enrich.Report) []SignalRecord {
	out := []SignalRecord{}
	for _, entry := range foldOrder {
		for _, msg := range entry.signals(r) {
			out = append(out, SignalRecord{
				Type:    entry.sigType,
				Source:  entry.source,
				Message: msg,
			})
		}
	}
	return out
}

// enrichmentMap exposes each source's raw payload keyed by source name; a
// not-found source maps to nil.
func enrichmentMap(r *enrich.Report) map[string]any {
	m := make(map[string]any, len(foldOrder))
	for _, entry := range foldOrder {
		m[entry.source] = entry.data(r)
	}
	return m
}

func sourcesFound(r *enrich.Report) int {
	n := 0
	for _, entry := range foldOrder {
		if entry.found(r) {
			n++
		}
	}
	return n
}

func sourceFound(r *enrich.Report, source string) bool {
	for _, entry := range foldOrder {
		if entry.source == source {
			return entry.found(r)
		}
	}
	return false
}

// sig guards the found/nil invariant for signal extraction.
func sig[T any](env enrich.Envelope[T], get func(*T) []string) []string {
	if !env.Found {
		return nil
	}
	return get(env.Data)
}

// dat returns the payload for the enrichment map, nil when not found.
func dat[T any](env enrich.Envelope[T]) any {
	if !env.Found {
		return nil
	}
	return env.Data
}
