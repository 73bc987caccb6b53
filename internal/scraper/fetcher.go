package scraper

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/FranksOps/scout/internal/fingerprint"
	"github.com/FranksOps/scout/pkg/httpclient"
	"github.com/FranksOps/scout/pkg/proxy"
	"github.com/FranksOps/scout/pkg/ratelimit"
	"github.com/FranksOps/scout/pkg/useragent"
	"github.com/google/uuid"
)

type contextKey string

const proxyKey contextKey = "proxy_url"

// Page is the outcome of fetching one URL. A failed fetch is still a Page:
// the Error field is set and the body is empty, so callers can degrade to a
// not-found envelope instead of handling an error path.
type Page struct {
	ID         string
	URL        string
	StatusCode int
	Headers    map[string][]string
	Body       []byte
	Duration   time.Duration
	CreatedAt  time.Time
	Error      string // non-empty if the fetch failed before an HTTP response
	Blocked    bool
	BlockedBy  string // e.g. "Cloudflare", "Akamai", "PerimeterX", "DataDome"
}

// OK reports whether the fetch produced a usable 2xx HTML response.
func (p *Page) OK() bool {
	return p.Error == "" && p.StatusCode >= 200 && p.StatusCode <= 299
}

// FetchConfig configures a single-page fetcher.
type FetchConfig struct {
	Timeout      time.Duration
	MaxRedirects int
	UseCookieJar bool
	ProxyPool    *proxy.Pool
	UAPool       *useragent.Pool
	Fingerprint  fingerprint.Profile
	Limiter      *ratelimit.Limiter
}

// Fetcher performs single URL fetches for the website adapter.
type Fetcher struct {
	config    FetchConfig
	client    *httpclient.Client
	transport http.RoundTripper
}

// NewFetcher initializes a new Fetcher with the given configuration.
// By holding a single client across requests, cookie jars (if configured)
// persist for the lifetime of the Fetcher.
func NewFetcher(cfg FetchConfig) (*Fetcher, error) {
	if cfg.Timeout == 0 {
		cfg.Timeout = 20 * time.Second
	}
	if cfg.UAPool == nil {
		cfg.UAPool = useragent.NewPool(nil)
	}
	if string(cfg.Fingerprint) == "" {
		cfg.Fingerprint = fingerprint.ProfileChrome
	}

	// One transport per fetcher for connection pooling. The proxy function
	// reads from the request context to allow per-request proxy rotation.
	proxyFunc := func(req *http.Request) (*url.URL, error) {
		if val := req.Context().Value(proxyKey); val != nil {
			if u, ok := val.(*url.URL); ok {
				return u, nil
			}
		}
		// Skip env proxy for local addresses so tests are not broken by
		// system proxy settings.
		if req.URL.Host == "example.com" || req.URL.Hostname() == "127.0.0.1" {
			return nil, nil
		}
		return http.ProxyFromEnvironment(req)
	}

	transport, err := fingerprint.Transport(cfg.Fingerprint, proxyFunc)
	if err != nil {
		return nil, fmt.Errorf("failed to setup transport: %w", err)
	}

	client, err := httpclient.New(httpclient.Config{
		Timeout:      cfg.Timeout,
		MaxRedirects: cfg.MaxRedirects,
		UseCookieJar: cfg.UseCookieJar,
		Transport:    transport,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	return &Fetcher{
		config:    cfg,
		client:    client,
		transport: transport,
	}, nil
}

// Fetch executes a GET request to the target URL. Failures are captured in
// the returned Page, never in the error return.
func (f *Fetcher) Fetch(ctx context.Context, targetURL string) (*Page, error) {
	if f.config.Limiter != nil {
		if err := f.config.Limiter.Wait(ctx); err != nil {
			return &Page{
				ID:        uuid.New().String(),
				URL:       targetURL,
				CreatedAt: time.Now().UTC(),
				Error:     fmt.Sprintf("rate limiter failed: %v", err),
			}, nil
		}
	}

	start := time.Now()

	page := &Page{
		ID:        uuid.New().String(),
		URL:       targetURL,
		CreatedAt: start.UTC(),
	}

	var activeProxy *url.URL
	if f.config.ProxyPool != nil {
		activeProxy = f.config.ProxyPool.Next()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, targetURL, nil)
	if err != nil {
		page.Error = fmt.Sprintf("failed to create request: %v", err)
		page.Duration = time.Since(start)
		return page, nil
	}

	// Dynamic proxy via context; Transport.Proxy reads it back out.
	// Mutating Transport.Proxy directly would race across concurrent fetches.
	if activeProxy != nil {
		req = req.WithContext(context.WithValue(req.Context(), proxyKey, activeProxy))
	}

	req.Header.Set("User-Agent", f.config.UAPool.GetSequential())
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,image/avif,image/webp,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.5")

	resp, err := f.client.Do(req.Context(), req)
	if err != nil {
		if activeProxy != nil {
			_ = f.config.ProxyPool.MarkFailure(activeProxy)
		}
		page.Error = fmt.Sprintf("request failed: %v", err)
		page.Duration = time.Since(start)
		return page, nil
	}
	defer resp.Body.Close()

	if activeProxy != nil {
		_ = f.config.ProxyPool.MarkSuccess(activeProxy)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		page.Error = fmt.Sprintf("failed to read body: %v", err)
	}

	page.StatusCode = resp.StatusCode
	page.Headers = resp.Header
	page.Body = body
	page.Duration = time.Since(start)

	return page, nil
}
