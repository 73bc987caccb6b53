package serp

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/FranksOps/scout/internal/cache"
)

func TestNewClient_RequiresKey(t *testing.T) {
	_, err := NewClient(Config{Endpoint: "http://localhost"})
	if err == nil {
		t.Fatal("expected error when API key is missing")
	}
}

func TestClient_Search(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-API-KEY") != "test-key" {
			t.Errorf("expected api key header, got %q", r.Header.Get("X-API-KEY"))
		}
		var body map[string]any
		_ = json.NewDecoder(r.Body).Decode(&body)
		if body["q"] != `site:linkedin.com/company "Acme"` {
			t.Errorf("unexpected query: %v", body["q"])
		}
		fmt.Fprint(w, `{
			"organic": [
				{"title": "Acme Corp | LinkedIn", "link": "https://linkedin.com/company/acme", "snippet": "Acme Corp. 51-200 employees.", "position": 1},
				{"title": "Acme careers", "link": "https://acme.io/careers", "snippet": "Join us", "position": 2}
			],
			"ads": [{"title": "Acme - Try Free", "link": "https://acme.io", "snippet": "ad"}],
			"searchInformation": {"totalResults": 1234}
		}`)
	}))
	defer ts.Close()

	c, err := NewClient(Config{APIKey: "test-key", Endpoint: ts.URL})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	res, err := c.Search(context.Background(), `site:linkedin.com/company "Acme"`, 10)
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}

	if len(res.Organic) != 2 {
		t.Fatalf("expected 2 organic results, got %d", len(res.Organic))
	}
	if res.Organic[0].Title != "Acme Corp | LinkedIn" {
		t.Errorf("unexpected first result: %+v", res.Organic[0])
	}
	if len(res.Ads) != 1 {
		t.Errorf("expected 1 ad, got %d", len(res.Ads))
	}
	if res.Total != 1234 {
		t.Errorf("expected total 1234, got %d", res.Total)
	}
}

func TestClient_SearchLimit(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"organic": [
			{"title": "a", "position": 1},
			{"title": "b", "position": 2},
			{"title": "c", "position": 3}
		]}`)
	}))
	defer ts.Close()

	c, _ := NewClient(Config{APIKey: "k", Endpoint: ts.URL})
	res, err := c.Search(context.Background(), "q", 2)
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(res.Organic) != 2 {
		t.Errorf("expected limit to cap organic results at 2, got %d", len(res.Organic))
	}
}

func TestClient_SearchUsesCache(t *testing.T) {
	var calls atomic.Int64
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		fmt.Fprint(w, `{"organic": [{"title": "cached", "position": 1}]}`)
	}))
	defer ts.Close()

	c, _ := NewClient(Config{
		APIKey:   "k",
		Endpoint: ts.URL,
		Cache:    cache.NewMemory(),
		CacheTTL: time.Hour,
	})

	ctx := context.Background()
	for i := 0; i < 3; i++ {
		res, err := c.Search(ctx, "same query", 10)
		if err != nil {
			t.Fatalf("search %d failed: %v", i, err)
		}
		if len(res.Organic) != 1 || res.Organic[0].Title != "cached" {
			t.Errorf("search %d returned unexpected results: %+v", i, res.Organic)
		}
	}

	if calls.Load() != 1 {
		t.Errorf("expected exactly 1 upstream call, got %d", calls.Load())
	}
}

func TestClient_SearchError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer ts.Close()

	c, _ := NewClient(Config{APIKey: "k", Endpoint: ts.URL})
	if _, err := c.Search(context.Background(), "q", 10); err == nil {
		t.Fatal("expected error on non-2xx response")
	}
}
