package middleware

import (
	"context"
	"sync"
	"time"
)

// WindowCounter counts hits for a key within a fixed time window.
type WindowCounter interface {
	// Increment records one hit and returns the number of hits in the
	// current window, this one included.
	Increment(ctx context.Context, key string, window time.Duration) (int64, error)
}

type bucket struct {
	count int64
	start time.Time
}

// MemoryCounter keeps windows in process memory. Expired buckets are swept at
// most once per window.
type MemoryCounter struct {
	mu        sync.Mutex
	buckets   map[string]*bucket
	now       func() time.Time
	lastSweep time.Time
}

func NewMemoryCounter() *MemoryCounter {
	return &MemoryCounter{
		buckets: make(map[string]*bucket),
		now:     time.Now,
	}
}

func (m *MemoryCounter) Increment(_ context.Context, key string, window time.Duration) (int64, error) {
	now := m.now()

	m.mu.Lock()
	defer m.mu.Unlock()

	if now.Sub(m.lastSweep) >= window {
		m.sweep(now, window)
	}

	b, ok := m.buckets[key]
	if !ok || now.Sub(b.start) >= window {
		b = &bucket{start: now}
		m.buckets[key] = b
	}

	b.count++
	return b.count, nil
}

func (m *MemoryCounter) sweep(now time.Time, window time.Duration) {
	for key, b := range m.buckets {
		if now.Sub(b.start) >= window {
			delete(m.buckets, key)
		}
	}
	m.lastSweep = now
}
