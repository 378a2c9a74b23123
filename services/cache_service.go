// File: /services/cache_service.go
package services

import (
	"sync"
	"time"
)

// CacheService is an in-process key/value store with per-entry expiry.
// The home feed controller stores rendered page bodies in it; entries
// expire by time only and are never invalidated by data mutations, so
// readers inside the window see exactly what the first reader saw.
type CacheService struct {
	mutex   sync.RWMutex
	entries map[string]cacheEntry
	ttl     time.Duration
}

type cacheEntry struct {
	body      []byte
	expiresAt time.Time
}

func NewCacheService(ttl time.Duration) *CacheService {
	return &CacheService{
		entries: make(map[string]cacheEntry),
		ttl:     ttl,
	}
}

// Get returns the cached body for key. An expired entry is a miss.
func (cs *CacheService) Get(key string) ([]byte, bool) {
	cs.mutex.RLock()
	entry, ok := cs.entries[key]
	cs.mutex.RUnlock()

	if !ok || time.Now().After(entry.expiresAt) {
		return nil, false
	}
	return entry.body, true
}

// Set stores body under key with the service's default lifetime.
func (cs *CacheService) Set(key string, body []byte) {
	cs.SetWithTTL(key, body, cs.ttl)
}

// SetWithTTL stores body under key for an explicit lifetime.
func (cs *CacheService) SetWithTTL(key string, body []byte, ttl time.Duration) {
	cs.mutex.Lock()
	cs.entries[key] = cacheEntry{
		body:      body,
		expiresAt: time.Now().Add(ttl),
	}
	cs.mutex.Unlock()
}

// Delete drops a single entry.
func (cs *CacheService) Delete(key string) {
	cs.mutex.Lock()
	delete(cs.entries, key)
	cs.mutex.Unlock()
}

// Clear drops all entries.
func (cs *CacheService) Clear() {
	cs.mutex.Lock()
	cs.entries = make(map[string]cacheEntry)
	cs.mutex.Unlock()
}

// PurgeExpired removes entries whose lifetime has elapsed and reports
// how many were dropped. Expired entries are already invisible to Get;
// this only reclaims memory.
func (cs *CacheService) PurgeExpired() int {
	now := time.Now()
	purged := 0

	cs.mutex.Lock()
	for key, entry := range cs.entries {
		if now.After(entry.expiresAt) {
			delete(cs.entries, key)
			purged++
		}
	}
	cs.mutex.Unlock()

	return purged
}
