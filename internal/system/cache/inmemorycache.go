/*
 * Copyright (c) 2025, WSO2 LLC. (https://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

package cache

import (
	"sync"
	"time"
)

// inMemoryCache is a size-bounded in-memory cache implementation with TTL based expiry.
type inMemoryCache[T any] struct {
	cacheName string
	maxSize   int
	ttl       time.Duration
	entries   map[string]cacheEntry[T]
	mu        sync.RWMutex
}

// newInMemoryCache creates a new in-memory cache with the given name, size and TTL.
func newInMemoryCache[T any](cacheName string, maxSize int, ttl time.Duration) *inMemoryCache[T] {
	return &inMemoryCache[T]{
		cacheName: cacheName,
		maxSize:   maxSize,
		ttl:       ttl,
		entries:   make(map[string]cacheEntry[T]),
	}
}

// GetName returns the name of the cache.
func (c *inMemoryCache[T]) GetName() string {
	return c.cacheName
}

// Set stores a value in the cache, evicting entries when the cache is full.
func (c *inMemoryCache[T]) Set(key CacheKey, value T) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.entries) >= c.maxSize {
		c.evictLocked()
	}

	c.entries[key.ToString()] = cacheEntry[T]{
		value:     value,
		expiresAt: time.Now().Add(c.ttl),
	}
	return nil
}

// Get retrieves a value from the cache. Expired entries are treated as absent.
func (c *inMemoryCache[T]) Get(key CacheKey) (T, bool) {
	c.mu.RLock()
	entry, found := c.entries[key.ToString()]
	c.mu.RUnlock()

	if !found || entry.isExpired() {
		var zero T
		return zero, false
	}
	return entry.value, true
}

// Delete removes a value from the cache.
func (c *inMemoryCache[T]) Delete(key CacheKey) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.entries, key.ToString())
	return nil
}

// Clear removes all values from the cache.
func (c *inMemoryCache[T]) Clear() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]cacheEntry[T])
	return nil
}

// CleanupExpired removes all expired entries from the cache.
func (c *inMemoryCache[T]) CleanupExpired() {
	c.mu.Lock()
	defer c.mu.Unlock()

	for key, entry := range c.entries {
		if entry.isExpired() {
			delete(c.entries, key)
		}
	}
}

// evictLocked removes expired entries, falling back to the entry closest to expiry.
// The caller must hold the write lock.
func (c *inMemoryCache[T]) evictLocked() {
	evicted := false
	for key, entry := range c.entries {
		if entry.isExpired() {
			delete(c.entries, key)
			evicted = true
		}
	}
	if evicted {
		return
	}

	var oldestKey string
	var oldestExpiry time.Time
	for key, entry := range c.entries {
		if oldestKey == "" || entry.expiresAt.Before(oldestExpiry) {
			oldestKey = key
			oldestExpiry = entry.expiresAt
		}
	}
	if oldestKey != "" {
		delete(c.entries, oldestKey)
	}
}
