package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/FranksOps/scout/internal/aggregate"
	"github.com/FranksOps/scout/internal/bulk"
	"github.com/FranksOps/scout/internal/cache"
	cachepg "github.com/FranksOps/scout/internal/cache/postgres"
	cachesqlite "github.com/FranksOps/scout/internal/cache/sqlite"
	"github.com/FranksOps/scout/internal/config"
	"github.com/FranksOps/scout/internal/enrich"
	"github.com/FranksOps/scout/internal/scraper"
	"github.com/FranksOps/scout/internal/serp"
	"github.com/FranksOps/scout/pkg/proxy"
	"github.com/FranksOps/scout/pkg/ratelimit"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "scout",
	Short: "Lead-generation enrichment pipeline",
	Long: `Scout enriches company domains with public signals: hiring activity,
tech stack, advertising, funding, social presence and contacts, and
aggregates them into a lead score with an outreach rationale.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(enrichCmd)
}

func newLogger() *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// app bundles the wired pipeline components shared by the commands.
type app struct {
	cfg     *config.Config
	logger  *slog.Logger
	cache   cache.Backend
	limiter *ratelimit.Limiter
	agg     *aggregate.Aggregator
	svc     *enrich.Service
	bulk    *bulk.Orchestrator
}

// buildApp loads configuration and wires cache, rate limiter, search client,
// fetcher and the enrichment pipeline.
func buildApp(ctx context.Context) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	logger := newLogger()

	backend, err := openCache(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("opening cache: %w", err)
	}

	var limiter *ratelimit.Limiter
	if cfg.SearchRPS > 0 {
		limiter = ratelimit.NewLimiter(cfg.SearchRPS, cfg.Jitter)
	}

	provider, err := serp.NewClient(serp.Config{
		APIKey:   cfg.SearchAPIKey,
		Endpoint: cfg.SearchEndpoint,
		Limiter:  limiter,
		Cache:    backend,
		CacheTTL: cfg.CacheTTL,
		Logger:   logger,
	})
	if err != nil {
		return nil, fmt.Errorf("creating search client: %w", err)
	}

	var proxies *proxy.Pool
	if cfg.ProxyFile != "" {
		proxies = proxy.NewPool(proxy.Config{})
		if err := proxies.LoadFile(cfg.ProxyFile); err != nil {
			return nil, fmt.Errorf("loading proxy file: %w", err)
		}
	}

	fetcher, err := scraper.NewFetcher(scraper.FetchConfig{
		Timeout:      cfg.FetchTimeout,
		MaxRedirects: 5,
		UseCookieJar: true,
		ProxyPool:    proxies,
	})
	if err != nil {
		return nil, fmt.Errorf("creating fetcher: %w", err)
	}

	svc := enrich.NewService(provider, fetcher, logger)

	webhook, err := bulk.NewWebhook(cfg.ScrapeWebhookURL, logger)
	if err != nil {
		return nil, fmt.Errorf("creating scrape webhook: %w", err)
	}

	return &app{
		cfg:     cfg,
		logger:  logger,
		cache:   backend,
		limiter: limiter,
		agg:     aggregate.New(svc, logger),
		svc:     svc,
		bulk:    bulk.New(svc, webhook, logger),
	}, nil
}

// Close releases the app's long-lived resources.
func (a *app) Close() {
	if a.limiter != nil {
		a.limiter.Stop()
	}
	if a.cache != nil {
		if err := a.cache.Close(); err != nil {
			a.logger.Warn("closing cache", "error", err)
		}
	}
}

func openCache(ctx context.Context, cfg *config.Config) (cache.Backend, error) {
	switch cfg.CacheDriver {
	case "", "memory":
		return cache.NewMemory(), nil
	case "sqlite":
		return cachesqlite.New(cfg.CacheDSN)
	case "postgres":
		return cachepg.New(ctx, cfg.CacheDSN)
	default:
		return nil, fmt.Errorf("unknown cache driver %q", cfg.CacheDriver)
	}
}
