package cache

import (
	"context"
	"sync"
	"time"
)

// Backend stores raw search API responses keyed by query. Caching cuts the
// external call volume: a single enrichment fans out to more than twenty
// search requests, and bulk runs multiply that per company.
type Backend interface {
	// Get returns the cached payload for query, or nil if absent or older
	// than maxAge.
	Get(ctx context.Context, query string, maxAge time.Duration) ([]byte, error)
	// Put stores the payload for query, replacing any previous entry.
	Put(ctx context.Context, query string, payload []byte) error
	Close() error
}

type memoryEntry struct {
	payload   []byte
	createdAt time.Time
}

type memoryBackend struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	now     func() time.Time
}

// NewMemory returns an in-process Backend suitable for single-instance
// deployments and tests.
func NewMemory() Backend {
	return &memoryBackend{
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

func (m *memoryBackend) Get(_ context.Context, query string, maxAge time.Duration) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	e, ok := m.entries[query]
	if !ok {
		return nil, nil
	}
	if maxAge > 0 && m.now().Sub(e.createdAt) > maxAge {
		return nil, nil
	}
	// Copy so callers cannot mutate the cached payload
	out := make([]byte, len(e.payload))
	copy(out, e.payload)
	return out, nil
}

func (m *memoryBackend) Put(_ context.Context, query string, payload []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored := make([]byte, len(payload))
	copy(stored, payload)
	m.entries[query] = memoryEntry{payload: stored, createdAt: m.now()}
	return nil
}

func (m *memoryBackend) Close() error { return nil }
