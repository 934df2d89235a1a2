// Package vcache provides version cache implementations for wildcard
// resolution: an in-memory TTL cache and a null always-miss cache.
package vcache

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
)

const DefaultCleanupInterval = 30 * time.Minute

// Memory is an in-memory TTL cache backed by go-cache. It implements
// both the read and write sides of the version cache contract.
type Memory struct {
	cache *gocache.Cache
}

// NewMemory creates an in-memory version cache. Expired entries are
// swept at the default cleanup interval; per-entry TTLs come from each
// Put call.
func NewMemory() *Memory {
	return &Memory{
		cache: gocache.New(gocache.NoExpiration, DefaultCleanupInterval),
	}
}

// Has reports whether a resolved path is cached under key.
func (m *Memory) Has(key string) bool {
	_, found := m.cache.Get(key)
	return found
}

// Get returns the cached resolved path for key.
func (m *Memory) Get(key string) (string, bool) {
	value, found := m.cache.Get(key)
	if !found {
		return "", false
	}
	s, ok := value.(string)
	if !ok {
		return "", false
	}
	return s, true
}

// Put stores a resolved path under key. A zero or negative ttl stores
// it without expiration.
func (m *Memory) Put(key, value string, ttl time.Duration) {
	if ttl <= 0 {
		ttl = gocache.NoExpiration
	}
	m.cache.Set(key, value, ttl)
}

// Flush drops every cached entry.
func (m *Memory) Flush() {
	m.cache.Flush()
}

// Null is a read-only cache that never holds anything. Useful for
// keeping the cache contract satisfied while forcing a directory scan
// on every resolution; it exposes no write side, so the store step is
// skipped.
type Null struct{}

// NewNull creates a null version cache.
func NewNull() *Null {
	return &Null{}
}

// Has always reports a miss.
func (Null) Has(key string) bool {
	return false
}

// Get always reports a miss.
func (Null) Get(key string) (string, bool) {
	return "", false
}
