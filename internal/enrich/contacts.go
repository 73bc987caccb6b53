package enrich

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/FranksOps/scout/internal/extract"
)

var decisionMakerTitles = []string{
	"ceo", "founder", "co-founder", "owner", "president",
	"cto", "cmo", "cro", "coo",
	"vp", "vice president", "head of", "director",
}

// nameTitleRe matches "Jane Doe - VP of Sales" shaped result titles.
var nameTitleRe = regexp.MustCompile(`^([A-Z][a-z]+(?: [A-Z][a-z]+)+)\s*[-–|]\s*(.+)$`)

// EnrichContacts discovers decision makers and contact emails from people
// search results.
func (s *Service) EnrichContacts(ctx context.Context, t Target) (env Envelope[ContactsData]) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Warn("contacts adapter recovered", "domain", t.Domain, "panic", r)
			env = Miss[ContactsData]()
		}
	}()

	brand := brandQuery(t)
	peopleRes := s.search(ctx,
		fmt.Sprintf(`site:linkedin.com/in %s CEO OR founder OR "VP"`, brand), 10)
	emailRes := s.search(ctx,
		fmt.Sprintf(`"@%s" email contact`, t.Domain), 5)

	data := &ContactsData{}

	for _, o := range peopleRes.Organic {
		m := nameTitleRe.FindStringSubmatch(o.Title)
		if m == nil {
			continue
		}
		person := Person{Name: m[1], Title: strings.TrimSpace(m[2]), Source: "linkedin"}
		data.People = append(data.People, person)
		if containsAny(person.Title, decisionMakerTitles...) {
			data.DecisionMakers = true
		}
	}

	for _, email := range extract.Emails(snippetText(emailRes)) {
		if strings.HasSuffix(email, "@"+strings.ToLower(t.Domain)) {
			data.Emails = append(data.Emails, email)
		}
	}

	if len(data.People) == 0 && len(data.Emails) == 0 {
		return Miss[ContactsData]()
	}

	if data.DecisionMakers {
		data.Signals = append(data.Signals,
			fmt.Sprintf("%d decision makers identified", len(data.People)))
	} else if len(data.People) > 0 {
		data.Signals = append(data.Signals,
			fmt.Sprintf("%d people found at the company", len(data.People)))
	}
	if len(data.Emails) > 0 {
		data.Signals = append(data.Signals, "Direct contact email discovered")
	}

	return Hit(data)
}
