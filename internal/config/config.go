package config

import (
	"errors"
	"time"

	"github.com/spf13/viper"
)

// DefaultWebhookURL is the local-development fallback for the bulk scrape
// workflow webhook. Production deployments must set SCOUT_SCRAPE_WEBHOOK_URL.
const DefaultWebhookURL = "http://localhost:5678/webhook/bulk-scrape"

// Config holds all runtime settings. The search API key is always injected
// through the environment, never compiled in.
type Config struct {
	// SearchAPIKey authenticates against the web-search collaborator.
	SearchAPIKey string
	// SearchEndpoint is the search API URL.
	SearchEndpoint string
	// ScrapeWebhookURL triggers the external bulk scrape workflow.
	ScrapeWebhookURL string

	ListenAddr  string
	MetricsPort int

	// CacheDriver selects the SERP response cache backend: memory, sqlite or postgres.
	CacheDriver string
	CacheDSN    string
	CacheTTL    time.Duration

	// SearchRPS limits outbound search API calls (0 = unlimited).
	SearchRPS float64
	// Jitter randomizes the pacing between search calls (0.0 to 1.0).
	Jitter float64

	FetchTimeout time.Duration
	// ProxyFile optionally lists proxies (one URL per line) rotated by the
	// website fetcher.
	ProxyFile string
}

// Load reads configuration from SCOUT_* environment variables with sane
// defaults for everything except the API key.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("SCOUT")
	v.AutomaticEnv()

	v.SetDefault("SEARCH_ENDPOINT", "https://google.serper.dev/search")
	v.SetDefault("SCRAPE_WEBHOOK_URL", DefaultWebhookURL)
	v.SetDefault("LISTEN_ADDR", ":8080")
	v.SetDefault("METRICS_PORT", 9090)
	v.SetDefault("CACHE_DRIVER", "memory")
	v.SetDefault("CACHE_DSN", "")
	v.SetDefault("CACHE_TTL", "1h")
	v.SetDefault("SEARCH_RPS", 5.0)
	v.SetDefault("JITTER", 0.2)
	v.SetDefault("FETCH_TIMEOUT", "20s")
	v.SetDefault("PROXY_FILE", "")

	cfg := &Config{
		SearchAPIKey:     v.GetString("SEARCH_API_KEY"),
		SearchEndpoint:   v.GetString("SEARCH_ENDPOINT"),
		ScrapeWebhookURL: v.GetString("SCRAPE_WEBHOOK_URL"),
		ListenAddr:       v.GetString("LISTEN_ADDR"),
		MetricsPort:      v.GetInt("METRICS_PORT"),
		CacheDriver:      v.GetString("CACHE_DRIVER"),
		CacheDSN:         v.GetString("CACHE_DSN"),
		CacheTTL:         v.GetDuration("CACHE_TTL"),
		SearchRPS:        v.GetFloat64("SEARCH_RPS"),
		Jitter:           v.GetFloat64("JITTER"),
		FetchTimeout:     v.GetDuration("FETCH_TIMEOUT"),
		ProxyFile:        v.GetString("PROXY_FILE"),
	}

	if cfg.SearchAPIKey == "" {
		return nil, errors.New("SCOUT_SEARCH_API_KEY is required")
	}

	return cfg, nil
}
