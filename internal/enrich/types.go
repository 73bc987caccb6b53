package enrich

// Target identifies one company to enrich. Domain is the primary key; the
// company name and industry hint only bias search queries.
type Target struct {
	Domain      string `json:"domain"`
	CompanyName string `json:"companyName,omitempty"`
	Industry    string `json:"industry,omitempty"`
}

// Name returns the best available display name for the target.
func (t Target) Name() string {
	if t.CompanyName != "" {
		return t.CompanyName
	}
	return t.Domain
}

// Envelope is the uniform output of any source adapter: either a payload was
// found or it was not. Data is nil exactly when Found is false.
type Envelope[T any] struct {
	Found bool `json:"found"`
	Data  *T   `json:"data"`
}

// Hit wraps a payload in a found envelope.
func Hit[T any](data *T) Envelope[T] {
	return Envelope[T]{Found: true, Data: data}
}

// Miss returns a not-found envelope. Adapters return Miss for any failure:
// network errors, malformed responses, or simply nothing usable.
func Miss[T any]() Envelope[T] {
	return Envelope[T]{}
}

// Source names, used as keys in the enrichment map and as the source field of
// flattened signals. The declared order here is the canonical adapter order.
const (
	SourceLinkedIn    = "linkedin"
	SourceJobs        = "jobs"
	SourceTechStack   = "techStack"
	SourceAds         = "ads"
	SourceWebsite     = "website"
	SourceFunding     = "funding"
	SourceReviews     = "reviews"
	SourceSocial      = "social"
	SourceContacts    = "contacts"
	SourceIntent      = "intent"
	SourceCompetitors = "competitors"
	SourceTraffic     = "traffic"
	SourceEmail       = "emailVerification"
	SourceIndustry    = "industry"
)

// Intensity ladder values shared by the ads and hiring classifiers.
const (
	IntensityHigh   = "high"
	IntensityMedium = "medium"
	IntensityLow    = "low"
	IntensityNone   = "none"
)

// LinkedInData describes the company's LinkedIn presence.
type LinkedInData struct {
	ProfileURL    string   `json:"profileUrl"`
	EmployeeRange string   `json:"employeeRange,omitempty"`
	Industry      string   `json:"industry,omitempty"`
	Description   string   `json:"description,omitempty"`
	Signals       []string `json:"signals,omitempty"`
}

// JobsData describes hiring activity.
type JobsData struct {
	OpenPositions    int      `json:"openPositions"`
	HiringIntensity  string   `json:"hiringIntensity"`
	Titles           []string `json:"titles,omitempty"`
	HiringSales      bool     `json:"hiringSales"`
	HiringLeadership bool     `json:"hiringLeadership"`
	Signals          []string `json:"signals,omitempty"`
}

// TechStackData describes technologies fingerprinted on the company website.
type TechStackData struct {
	Technologies  []string `json:"technologies"`
	CRM           string   `json:"crm,omitempty"`
	HasChatWidget bool     `json:"hasChatWidget"`
	Signals       []string `json:"signals,omitempty"`
}

// AdsData describes paid advertising presence.
type AdsData struct {
	IsRunningAds bool     `json:"isRunningAds"`
	AdCount      int      `json:"adCount"`
	Intensity    string   `json:"intensity"`
	Platforms    []string `json:"platforms,omitempty"`
	Signals      []string `json:"signals,omitempty"`
}

// WebsiteData describes content extracted from the company homepage.
type WebsiteData struct {
	Title              string   `json:"title,omitempty"`
	Description        string   `json:"description,omitempty"`
	Emails             []string `json:"emails,omitempty"`
	Phones             []string `json:"phones,omitempty"`
	HasContactForm     bool     `json:"hasContactForm"`
	HasLiveChat        bool     `json:"hasLiveChat"`
	MentionsAfterHours bool     `json:"mentionsAfterHours"`
	Signals            []string `json:"signals,omitempty"`
}

// FundingData describes funding, news, awards and leadership activity.
type FundingData struct {
	HasRecentFunding    bool     `json:"hasRecentFunding"`
	FundingRound        string   `json:"fundingRound,omitempty"`
	FundingAmount       string   `json:"fundingAmount,omitempty"`
	RecentNews          []string `json:"recentNews,omitempty"`
	HasExpansionNews    bool     `json:"hasExpansionNews"`
	HasProductLaunch    bool     `json:"hasProductLaunch"`
	HasLeadershipChange bool     `json:"hasLeadershipChange"`
	Awards              []string `json:"awards,omitempty"`
	Signals             []string `json:"signals,omitempty"`
}

// ReviewsData describes presence on B2B review platforms.
type ReviewsData struct {
	Platforms   []string `json:"platforms"`
	Rating      float64  `json:"rating,omitempty"`
	ReviewCount int      `json:"reviewCount"`
	Signals     []string `json:"signals,omitempty"`
}

// SocialData describes social media presence across networks.
type SocialData struct {
	Profiles       map[string]string `json:"profiles"`
	ActiveNetworks int               `json:"activeNetworks"`
	SocialScore    int               `json:"socialScore"`
	Signals        []string          `json:"signals,omitempty"`
}

// Person is one discovered decision maker.
type Person struct {
	Name   string `json:"name"`
	Title  string `json:"title,omitempty"`
	Source string `json:"source,omitempty"`
}

// ContactsData describes discovered people and contact channels.
type ContactsData struct {
	People         []Person `json:"people,omitempty"`
	Emails         []string `json:"emails,omitempty"`
	DecisionMakers bool     `json:"decisionMakers"`
	Signals        []string `json:"signals,omitempty"`
}

// IntentData describes aggregate buying-intent indicators.
type IntentData struct {
	IntentScore int      `json:"intentScore"`
	Level       string   `json:"level"`
	Indicators  []string `json:"indicators,omitempty"`
	Signals     []string `json:"signals,omitempty"`
}

// CompetitorsData describes detected competitor tool usage.
type CompetitorsData struct {
	Competitors     []string `json:"competitors"`
	UsingCompetitor bool     `json:"usingCompetitor"`
	Signals         []string `json:"signals,omitempty"`
}

// TrafficData describes web traffic trend estimation.
type TrafficData struct {
	Trend   string   `json:"trend"`
	Growing bool     `json:"growing"`
	Signals []string `json:"signals,omitempty"`
}

// EmailData describes the best discovered outreach email.
type EmailData struct {
	Email    string   `json:"email"`
	Verified bool     `json:"verified"`
	Pattern  string   `json:"pattern,omitempty"`
	Signals  []string `json:"signals,omitempty"`
}

// IndustryData describes the inferred industry classification.
type IndustryData struct {
	Industry string   `json:"industry"`
	Keywords []string `json:"keywords,omitempty"`
	Signals  []string `json:"signals,omitempty"`
}
