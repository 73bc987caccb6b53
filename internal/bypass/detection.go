// Package bypass identifies bot-protection block pages in fetched websites.
// A blocked fetch must not be parsed as real company content: the website
// adapter treats a detected block the same as an unreachable site.
package bypass

import (
	"bytes"
	"net/http"
	"strings"

	"github.com/FranksOps/scout/internal/scraper"
)

// Detector examines a fetched page to determine if a bot protection mechanism
// blocked or challenged the request.
type Detector func(p *scraper.Page) (detected bool, source string)

// DefaultDetectors returns the standard list of bot protection detectors.
func DefaultDetectors() []Detector {
	return []Detector{
		detectCloudflare,
		detectAkamai,
		detectDataDome,
		detectPerimeterX,
	}
}

// Analyze runs the page through all provided detectors. It updates the page
// in place with the detection status and returns true if any detection triggered.
func Analyze(p *scraper.Page, detectors []Detector) bool {
	if p == nil {
		return false
	}
	for _, d := range detectors {
		if detected, source := d(p); detected {
			p.Blocked = true
			p.BlockedBy = source
			return true
		}
	}
	p.Blocked = false
	p.BlockedBy = ""
	return false
}

func getHeader(headers map[string][]string, key string) string {
	if vals, ok := headers[key]; ok && len(vals) > 0 {
		return vals[0]
	}
	// Case-insensitive fallback
	lowerKey := strings.ToLower(key)
	for k, vals := range headers {
		if strings.ToLower(k) == lowerKey && len(vals) > 0 {
			return vals[0]
		}
	}
	return ""
}

// detectCloudflare looks for common Cloudflare challenge/block signatures.
func detectCloudflare(p *scraper.Page) (bool, string) {
	// Status codes 403 or 503 are common for CF challenges
	if p.StatusCode == http.StatusForbidden || p.StatusCode == http.StatusServiceUnavailable {
		server := strings.ToLower(getHeader(p.Headers, "Server"))
		if strings.Contains(server, "cloudflare") {
			return true, "Cloudflare"
		}

		if bytes.Contains(p.Body, []byte("cf-browser-verification")) ||
			bytes.Contains(p.Body, []byte("cloudflare-nginx")) ||
			bytes.Contains(p.Body, []byte("cf-turnstile")) ||
			bytes.Contains(p.Body, []byte("Attention Required! | Cloudflare")) {
			return true, "Cloudflare"
		}
	}
	return false, ""
}

// detectAkamai looks for Akamai Bot Manager signatures.
func detectAkamai(p *scraper.Page) (bool, string) {
	if p.StatusCode == http.StatusForbidden {
		server := strings.ToLower(getHeader(p.Headers, "Server"))
		if strings.Contains(server, "akamai") {
			return true, "Akamai"
		}

		// Akamai often returns a generic "Reference #" block page
		if bytes.Contains(p.Body, []byte("Reference #")) && bytes.Contains(p.Body, []byte("Access Denied")) {
			return true, "Akamai"
		}
	}
	return false, ""
}

// detectDataDome looks for DataDome challenge/block signatures.
func detectDataDome(p *scraper.Page) (bool, string) {
	if p.StatusCode == http.StatusForbidden {
		server := strings.ToLower(getHeader(p.Headers, "Server"))
		if strings.Contains(server, "datadome") {
			return true, "DataDome"
		}

		if getHeader(p.Headers, "X-DataDome") != "" || getHeader(p.Headers, "X-DataDome-Response") != "" {
			return true, "DataDome"
		}

		if bytes.Contains(p.Body, []byte("geo.captcha-delivery.com")) || bytes.Contains(p.Body, []byte("datadome")) {
			return true, "DataDome"
		}
	}
	return false, ""
}

// detectPerimeterX looks for PerimeterX (HUMAN) signatures.
func detectPerimeterX(p *scraper.Page) (bool, string) {
	if p.StatusCode == http.StatusForbidden {
		if getHeader(p.Headers, "X-Px-Captcha") != "" {
			return true, "PerimeterX"
		}

		if bytes.Contains(p.Body, []byte("client.perimeterx.net")) ||
			bytes.Contains(p.Body, []byte("px-captcha")) ||
			bytes.Contains(p.Body, []byte("_pxBlock")) {
			return true, "PerimeterX"
		}
	}
	return false, ""
}
