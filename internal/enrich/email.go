package enrich

import (
	"context"
	"fmt"
	"strings"

	"github.com/FranksOps/scout/internal/extract"
)

// EnrichEmail discovers and best-effort verifies an outreach email address.
// An address is considered verified when it appears verbatim in public search
// results for the domain; a pattern-guessed address is unverified.
func (s *Service) EnrichEmail(ctx context.Context, t Target) (env Envelope[EmailData]) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Warn("email adapter recovered", "domain", t.Domain, "panic", r)
			env = Miss[EmailData]()
		}
	}()

	if t.Domain == "" {
		return Miss[EmailData]()
	}

	res := s.search(ctx, fmt.Sprintf(`"@%s"`, t.Domain), 10)
	domainSuffix := "@" + strings.ToLower(t.Domain)

	for _, email := range extract.Emails(snippetText(res)) {
		if !strings.HasSuffix(email, domainSuffix) {
			continue
		}
		data := &EmailData{
			Email:    email,
			Verified: true,
			Signals:  []string{fmt.Sprintf("Verified email found in public sources (%s)", email)},
		}
		return Hit(data)
	}

	// Fallback: guess the most common pattern, unverified. A guess is not an
	// observation, so it contributes no signal; a fully dark target keeps an
	// empty signal list.
	data := &EmailData{
		Email:    "info" + domainSuffix,
		Verified: false,
		Pattern:  "info@domain",
	}
	return Hit(data)
}
