package serp

import "context"

// Organic is one organic search result.
type Organic struct {
	Title    string `json:"title"`
	Link     string `json:"link"`
	Snippet  string `json:"snippet"`
	Position int    `json:"position"`
}

// Ad is one paid placement returned alongside organic results.
type Ad struct {
	Title   string `json:"title"`
	Link    string `json:"link"`
	Snippet string `json:"snippet"`
}

// Results is the normalized output of one search query.
type Results struct {
	Query   string    `json:"query"`
	Organic []Organic `json:"organic"`
	Ads     []Ad      `json:"ads"`
	Total   int64     `json:"total"`
}

// Provider abstracts the web-search collaborator. Implementations may call a
// hosted search API or serve canned fixtures in tests. The limit parameter
// caps the number of organic results returned.
type Provider interface {
	Search(ctx context.Context, query string, limit int) (*Results, error)
}
