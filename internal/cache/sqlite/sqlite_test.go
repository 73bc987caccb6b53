package sqlite

import (
	"context"
	"testing"
	"time"
)

func TestSQLiteBackend(t *testing.T) {
	// Use an in-memory database for testing
	b, err := New("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("failed to create sqlite cache: %v", err)
	}
	defer b.Close()

	ctx := context.Background()

	got, err := b.Get(ctx, "missing", time.Hour)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != nil {
		t.Errorf("expected miss for absent entry, got %q", got)
	}

	payload := []byte(`{"organic":[{"title":"Acme"}]}`)
	if err := b.Put(ctx, "acme.io jobs", payload); err != nil {
		t.Fatalf("put failed: %v", err)
	}

	got, err = b.Get(ctx, "acme.io jobs", time.Hour)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if string(got) != string(payload) {
		t.Errorf("unexpected payload: %q", got)
	}

	// Upsert replaces the previous payload
	if err := b.Put(ctx, "acme.io jobs", []byte("updated")); err != nil {
		t.Fatalf("upsert failed: %v", err)
	}
	got, _ = b.Get(ctx, "acme.io jobs", time.Hour)
	if string(got) != "updated" {
		t.Errorf("expected upserted payload, got %q", got)
	}
}
