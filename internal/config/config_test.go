package config

import (
	"testing"
	"time"
)

func TestLoad_RequiresAPIKey(t *testing.T) {
	t.Setenv("SCOUT_SEARCH_API_KEY", "")
	if _, err := Load(); err == nil {
		t.Fatal("expected error when API key is unset")
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("SCOUT_SEARCH_API_KEY", "test-key")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.SearchAPIKey != "test-key" {
		t.Errorf("expected api key from env, got %q", cfg.SearchAPIKey)
	}
	if cfg.SearchEndpoint == "" {
		t.Error("expected default search endpoint")
	}
	if cfg.ScrapeWebhookURL != DefaultWebhookURL {
		t.Errorf("expected default webhook url, got %q", cfg.ScrapeWebhookURL)
	}
	if cfg.CacheDriver != "memory" {
		t.Errorf("expected memory cache driver default, got %q", cfg.CacheDriver)
	}
	if cfg.CacheTTL != time.Hour {
		t.Errorf("expected 1h cache TTL default, got %v", cfg.CacheTTL)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("SCOUT_SEARCH_API_KEY", "k")
	t.Setenv("SCOUT_CACHE_DRIVER", "sqlite")
	t.Setenv("SCOUT_CACHE_DSN", "file:scout.db")
	t.Setenv("SCOUT_LISTEN_ADDR", ":9999")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.CacheDriver != "sqlite" || cfg.CacheDSN != "file:scout.db" {
		t.Errorf("expected cache overrides, got %q %q", cfg.CacheDriver, cfg.CacheDSN)
	}
	if cfg.ListenAddr != ":9999" {
		t.Errorf("expected listen addr override, got %q", cfg.ListenAddr)
	}
}
