package enrich

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/FranksOps/scout/internal/bypass"
	"github.com/FranksOps/scout/internal/extract"
	"github.com/PuerkitoBio/goquery"
)

var afterHoursMarkers = []string{"24/7", "24x7", "around the clock", "after hours", "after-hours", "always available"}

// EnrichWebsite fetches the company homepage and extracts contact channels
// and availability hints. A blocked or unreachable site is a miss, never an
// error.
func (s *Service) EnrichWebsite(ctx context.Context, t Target) (env Envelope[WebsiteData]) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Warn("website adapter recovered", "domain", t.Domain, "panic", r)
			env = Miss[WebsiteData]()
		}
	}()

	if s.fetcher == nil || t.Domain == "" {
		return Miss[WebsiteData]()
	}

	page, err := s.fetcher.Fetch(ctx, "https://"+t.Domain)
	if err != nil || !page.OK() {
		return Miss[WebsiteData]()
	}

	// A challenge page must not be parsed as company content
	if bypass.Analyze(page, bypass.DefaultDetectors()) {
		s.logger.Debug("website fetch blocked", "domain", t.Domain, "by", page.BlockedBy)
		return Miss[WebsiteData]()
	}

	html := string(page.Body)
	data := &WebsiteData{
		Emails:             extract.Emails(html),
		Phones:             extract.Phones(html),
		HasLiveChat:        extract.HasLiveChat(html),
		MentionsAfterHours: containsAny(html, afterHoursMarkers...),
	}

	if doc, err := goquery.NewDocumentFromReader(bytes.NewReader(page.Body)); err == nil {
		data.Title = strings.TrimSpace(doc.Find("title").First().Text())
		if desc, ok := doc.Find(`meta[name="description"]`).Attr("content"); ok {
			data.Description = strings.TrimSpace(desc)
		}
		doc.Find("form").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
			action, _ := sel.Attr("action")
			if containsAny(action, "contact", "demo", "quote") || sel.Find(`input[type="email"]`).Length() > 0 {
				data.HasContactForm = true
				return false
			}
			return true
		})
	}

	if len(data.Emails) > 0 {
		data.Signals = append(data.Signals,
			fmt.Sprintf("Contact email published on website (%s)", data.Emails[0]))
	}
	if len(data.Phones) > 0 {
		data.Signals = append(data.Signals, "Phone number published on website")
	}
	if data.HasContactForm {
		data.Signals = append(data.Signals, "Website has a contact form")
	}
	if data.HasLiveChat {
		data.Signals = append(data.Signals, "Live chat widget installed")
	}
	if !data.MentionsAfterHours {
		data.Signals = append(data.Signals, "No after-hours availability mentioned")
	}

	return Hit(data)
}
