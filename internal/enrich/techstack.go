package enrich

import (
	"context"
	"fmt"

	"github.com/FranksOps/scout/internal/bypass"
	"github.com/FranksOps/scout/internal/extract"
)

// EnrichTechStack fingerprints technologies from homepage HTML. It fetches
// independently of the website adapter so one source failing cannot take the
// other down with it.
func (s *Service) EnrichTechStack(ctx context.Context, t Target) (env Envelope[TechStackData]) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Warn("techstack adapter recovered", "domain", t.Domain, "panic", r)
			env = Miss[TechStackData]()
		}
	}()

	if s.fetcher == nil || t.Domain == "" {
		return Miss[TechStackData]()
	}

	page, err := s.fetcher.Fetch(ctx, "https://"+t.Domain)
	if err != nil || !page.OK() {
		return Miss[TechStackData]()
	}
	if bypass.Analyze(page, bypass.DefaultDetectors()) {
		return Miss[TechStackData]()
	}

	html := string(page.Body)
	technologies := extract.TechFingerprints(html)
	if len(technologies) == 0 {
		return Miss[TechStackData]()
	}

	data := &TechStackData{
		Technologies:  technologies,
		CRM:           extract.CRM(html),
		HasChatWidget: extract.HasLiveChat(html),
	}

	data.Signals = append(data.Signals,
		fmt.Sprintf("%d technologies detected on website", len(technologies)))
	if data.CRM != "" {
		data.Signals = append(data.Signals,
			fmt.Sprintf("Using %s for CRM/marketing automation", data.CRM))
	}
	if data.HasChatWidget {
		data.Signals = append(data.Signals, "Chat widget deployed on site")
	}

	return Hit(data)
}
