// Package cache provides a small TTL memo for fetched payloads, so repeated
// dashboard renders inside the freshness window reuse upstream responses.
package cache

import (
	"sync"
	"time"
)

type entry struct {
	value     any
	expiresAt time.Time
}

// Memo is a thread-safe key/value cache with per-entry expiry. Entries are
// evicted lazily on read; the dashboard's working set is a handful of keys,
// so there is no background sweeper.
type Memo struct {
	mu      sync.RWMutex
	entries map[string]entry
	now     func() time.Time
}

// NewMemo constructs an empty Memo.
func NewMemo() *Memo {
	return &Memo{
		entries: make(map[string]entry),
		now:     time.Now,
	}
}

// Get returns the cached value for key if it has not expired.
func (m *Memo) Get(key string) (any, bool) {
	m.mu.RLock()
	e, ok := m.entries[key]
	m.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if m.now().After(e.expiresAt) {
		m.mu.Lock()
		if cur, still := m.entries[key]; still && cur.expiresAt.Equal(e.expiresAt) {
			delete(m.entries, key)
		}
		m.mu.Unlock()
		return nil, false
	}
	return e.value, true
}

// Set stores value under key for ttl. A non-positive ttl stores nothing.
func (m *Memo) Set(key string, value any, ttl time.Duration) {
	if ttl <= 0 {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries[key] = entry{
		value:     value,
		expiresAt: m.now().Add(ttl),
	}
}

// Invalidate removes key from the cache.
func (m *Memo) Invalidate(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.entries, key)
}

// Len reports the number of entries currently held, expired or not.
func (m *Memo) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.entries)
}
