package enrich

import (
	"context"
	"fmt"
	"regexp"
	"strings"
)

var employeeRangeRe = regexp.MustCompile(`(?i)(\d[\d,]*(?:\s*-\s*[\d,]+|\+)?)\s+employees`)

// EnrichLinkedIn locates the company's LinkedIn presence from search results.
func (s *Service) EnrichLinkedIn(ctx context.Context, t Target) (env Envelope[LinkedInData]) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Warn("linkedin adapter recovered", "domain", t.Domain, "panic", r)
			env = Miss[LinkedInData]()
		}
	}()

	query := fmt.Sprintf("site:linkedin.com/company %s", brandQuery(t))
	res := s.search(ctx, query, 5)

	for _, o := range res.Organic {
		if !strings.Contains(strings.ToLower(o.Link), "linkedin.com/company/") {
			continue
		}

		data := &LinkedInData{
			ProfileURL:  o.Link,
			Description: o.Snippet,
		}

		if m := employeeRangeRe.FindStringSubmatch(o.Snippet); m != nil {
			data.EmployeeRange = m[1]
		}

		data.Signals = append(data.Signals, "Company has an active LinkedIn presence")
		if data.EmployeeRange != "" {
			data.Signals = append(data.Signals,
				fmt.Sprintf("LinkedIn reports %s employees", data.EmployeeRange))
		}

		return Hit(data)
	}

	return Miss[LinkedInData]()
}
