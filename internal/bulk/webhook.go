package bulk

import (
	"context"
	"log/slog"
	"time"

	"github.com/FranksOps/scout/pkg/httpclient"
)

// Webhook notifies an external scrape pipeline after a batch is enriched so
// heavier browser-based collection can run out of band.
type Webhook struct {
	url    string
	client *httpclient.Client
	logger *slog.Logger
}

// webhookPayload is the wire shape pushed to the scrape pipeline.
type webhookPayload struct {
	Companies []Company `json:"companies"`
	Requested time.Time `json:"requested"`
}

// NewWebhook builds a webhook trigger for the given URL. An empty URL returns
// nil, which disables the trigger.
func NewWebhook(url string, logger *slog.Logger) (*Webhook, error) {
	if url == "" {
		return nil, nil
	}
	client, err := httpclient.New(httpclient.Config{Timeout: 10 * time.Second})
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Webhook{url: url, client: client, logger: logger}, nil
}

// Trigger fires the webhook with the processed batch. Failures are returned
// for logging but never fail the batch.
func (w *Webhook) Trigger(ctx context.Context, companies []Company) error {
	payload := webhookPayload{Companies: companies, Requested: time.Now().UTC()}
	w.logger.Debug("triggering scrape webhook", "url", w.url, "companies", len(companies))
	return w.client.PostJSON(ctx, w.url, nil, payload, nil)
}
