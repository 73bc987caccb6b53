package serp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/FranksOps/scout/internal/cache"
	"github.com/FranksOps/scout/internal/metrics"
	"github.com/FranksOps/scout/pkg/httpclient"
	"github.com/FranksOps/scout/pkg/ratelimit"
)

// Config configures the hosted search API client.
type Config struct {
	// APIKey authenticates against the search API. Required.
	APIKey string
	// Endpoint is the search API URL.
	Endpoint string
	Timeout  time.Duration
	// Limiter paces outbound calls across all concurrent adapters sharing
	// this client. Optional.
	Limiter *ratelimit.Limiter
	// Cache stores raw responses keyed by query. Optional.
	Cache    cache.Backend
	CacheTTL time.Duration
	Logger   *slog.Logger
}

// Client calls a hosted JSON search API. It implements Provider.
type Client struct {
	cfg    Config
	hc     *httpclient.Client
	logger *slog.Logger
}

var _ Provider = (*Client)(nil)

// apiResponse mirrors the wire format of the search API.
type apiResponse struct {
	Organic []struct {
		Title    string `json:"title"`
		Link     string `json:"link"`
		Snippet  string `json:"snippet"`
		Position int    `json:"position"`
	} `json:"organic"`
	Ads []struct {
		Title   string `json:"title"`
		Link    string `json:"link"`
		Snippet string `json:"snippet"`
	} `json:"ads"`
	SearchInformation struct {
		TotalResults int64 `json:"totalResults"`
	} `json:"searchInformation"`
}

// NewClient creates a search API client. The API key must come from
// configuration; it is never a compiled-in literal.
func NewClient(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("search API key is required")
	}
	if cfg.Endpoint == "" {
		return nil, fmt.Errorf("search API endpoint is required")
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 15 * time.Second
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	hc, err := httpclient.New(httpclient.Config{Timeout: cfg.Timeout})
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	return &Client{cfg: cfg, hc: hc, logger: cfg.Logger}, nil
}

// Search runs one query against the search API. Responses are cached by query
// string when a cache backend is configured.
func (c *Client) Search(ctx context.Context, query string, limit int) (*Results, error) {
	if limit <= 0 {
		limit = 10
	}

	if c.cfg.Cache != nil {
		if raw, err := c.cfg.Cache.Get(ctx, query, c.cfg.CacheTTL); err == nil && raw != nil {
			metrics.RecordCache(true)
			var resp apiResponse
			if err := json.Unmarshal(raw, &resp); err == nil {
				return c.normalize(query, &resp, limit), nil
			}
			// Corrupt cache entry falls through to a live call
		} else {
			metrics.RecordCache(false)
		}
	}

	if c.cfg.Limiter != nil {
		if err := c.cfg.Limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limiter failed: %w", err)
		}
	}

	body := map[string]any{"q": query, "num": limit}
	headers := map[string]string{"X-API-KEY": c.cfg.APIKey}

	var resp apiResponse
	if err := c.hc.PostJSON(ctx, c.cfg.Endpoint, headers, body, &resp); err != nil {
		metrics.RecordSearch("error")
		return nil, fmt.Errorf("search failed: %w", err)
	}
	metrics.RecordSearch("ok")

	if c.cfg.Cache != nil {
		if raw, err := json.Marshal(resp); err == nil {
			if err := c.cfg.Cache.Put(ctx, query, raw); err != nil {
				c.logger.Warn("failed to cache search response", "query", query, "error", err)
			}
		}
	}

	return c.normalize(query, &resp, limit), nil
}

func (c *Client) normalize(query string, resp *apiResponse, limit int) *Results {
	out := &Results{
		Query: query,
		Total: resp.SearchInformation.TotalResults,
	}
	for i, o := range resp.Organic {
		if i >= limit {
			break
		}
		out.Organic = append(out.Organic, Organic{
			Title:    o.Title,
			Link:     o.Link,
			Snippet:  o.Snippet,
			Position: o.Position,
		})
	}
	for _, a := range resp.Ads {
		out.Ads = append(out.Ads, Ad{Title: a.Title, Link: a.Link, Snippet: a.Snippet})
	}
	return out
}
