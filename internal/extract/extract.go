// Package extract provides best-effort regex extraction of contact details and
// technology fingerprints from snippets and page HTML. Every function returns
// a possibly-empty result and never an error: precision is low by design and
// callers treat misses as absence of signal.
package extract

import (
	"regexp"
	"strings"
)

var (
	emailRe = regexp.MustCompile(`[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}`)
	phoneRe = regexp.MustCompile(`\+?\d{1,3}[\s.\-]?\(?\d{2,4}\)?[\s.\-]?\d{3,4}[\s.\-]?\d{3,4}`)
	moneyRe = regexp.MustCompile(`(?i)[$€£]\s?\d+(?:[.,]\d+)?\s?(?:million|billion|[mbk])\b`)
)

// Junk mailbox prefixes that are never useful outreach contacts.
var ignoredMailboxes = []string{"noreply@", "no-reply@", "donotreply@", "example@", "email@", "user@"}

// Emails returns deduplicated email addresses found in s, filtering out
// obvious placeholder and no-reply mailboxes.
func Emails(s string) []string {
	matches := emailRe.FindAllString(s, -1)
	if len(matches) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(matches))
	var out []string
	for _, m := range matches {
		lower := strings.ToLower(m)
		if _, dup := seen[lower]; dup {
			continue
		}
		if isIgnoredMailbox(lower) || strings.HasSuffix(lower, ".png") || strings.HasSuffix(lower, ".jpg") {
			continue
		}
		seen[lower] = struct{}{}
		out = append(out, lower)
	}
	return out
}

func isIgnoredMailbox(email string) bool {
	for _, prefix := range ignoredMailboxes {
		if strings.HasPrefix(email, prefix) {
			return true
		}
	}
	return false
}

// Phones returns deduplicated phone-number-looking strings found in s.
// Short digit runs (dates, prices) are filtered by a minimum digit count.
func Phones(s string) []string {
	matches := phoneRe.FindAllString(s, -1)
	if len(matches) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(matches))
	var out []string
	for _, m := range matches {
		digits := countDigits(m)
		if digits < 9 || digits > 15 {
			continue
		}
		key := strings.TrimSpace(m)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, key)
	}
	return out
}

func countDigits(s string) int {
	n := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			n++
		}
	}
	return n
}

// MoneyAmounts returns funding-amount-looking strings ("$12 million", "€5M").
func MoneyAmounts(s string) []string {
	return moneyRe.FindAllString(s, -1)
}

// socialPatterns maps a network name to the URL fragment identifying a
// profile link on that network.
var socialPatterns = map[string]string{
	"linkedin":  "linkedin.com/company/",
	"twitter":   "twitter.com/",
	"x":         "x.com/",
	"facebook":  "facebook.com/",
	"instagram": "instagram.com/",
	"youtube":   "youtube.com/",
	"tiktok":    "tiktok.com/@",
}

// SocialLinks scans text for profile URLs and returns network -> first URL.
func SocialLinks(s string) map[string]string {
	urlRe := regexp.MustCompile(`https?://[^\s"'<>)]+`)
	urls := urlRe.FindAllString(s, -1)
	if len(urls) == 0 {
		return nil
	}

	out := make(map[string]string)
	for _, u := range urls {
		lower := strings.ToLower(u)
		for network, fragment := range socialPatterns {
			if _, done := out[network]; done {
				continue
			}
			if strings.Contains(lower, fragment) {
				out[network] = u
			}
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// techFingerprints maps a technology name to markers found in page HTML.
var techFingerprints = map[string][]string{
	"HubSpot":          {"js.hs-scripts.com", "hubspot.com", "_hsq"},
	"Salesforce":       {"salesforce.com", "pardot.com", "force.com"},
	"Marketo":          {"munchkin.marketo", "marketo.com"},
	"Intercom":         {"widget.intercom.io", "intercomcdn"},
	"Drift":            {"js.driftt.com", "drift.com"},
	"Zendesk":          {"zendesk.com", "zdassets.com"},
	"Google Analytics": {"google-analytics.com", "gtag("},
	"Google Tag Manager": {"googletagmanager.com"},
	"Segment":          {"cdn.segment.com"},
	"Shopify":          {"cdn.shopify.com", "myshopify.com"},
	"WordPress":        {"wp-content", "wp-includes"},
	"Stripe":           {"js.stripe.com"},
	"Calendly":         {"calendly.com"},
}

// crmProducts is the subset of fingerprints that indicate a CRM/marketing
// automation platform in use.
var crmProducts = []string{"HubSpot", "Salesforce", "Marketo"}

// chatMarkers indicate a live chat widget on the page.
var chatMarkers = []string{"widget.intercom.io", "js.driftt.com", "crisp.chat", "tawk.to", "livechatinc.com"}

// TechFingerprints returns names of technologies whose markers appear in html,
// in a stable order.
func TechFingerprints(html string) []string {
	lower := strings.ToLower(html)
	var out []string
	// Iterate in declared order for deterministic output
	for _, name := range []string{
		"HubSpot", "Salesforce", "Marketo", "Intercom", "Drift", "Zendesk",
		"Google Analytics", "Google Tag Manager", "Segment", "Shopify",
		"WordPress", "Stripe", "Calendly",
	} {
		for _, marker := range techFingerprints[name] {
			if strings.Contains(lower, strings.ToLower(marker)) {
				out = append(out, name)
				break
			}
		}
	}
	return out
}

// CRM returns the first CRM product detected in html, or "".
func CRM(html string) string {
	detected := TechFingerprints(html)
	for _, crm := range crmProducts {
		for _, d := range detected {
			if d == crm {
				return crm
			}
		}
	}
	return ""
}

// HasLiveChat reports whether a live chat widget marker appears in html.
func HasLiveChat(html string) bool {
	lower := strings.ToLower(html)
	for _, marker := range chatMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}
