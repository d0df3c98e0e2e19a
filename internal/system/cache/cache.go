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

// Package cache provides a generic in-memory cache with TTL based expiry.
package cache

import (
	"time"

	"github.com/asgardeo/gate/internal/system/config"
	"github.com/asgardeo/gate/internal/system/log"
)

const (
	defaultCacheSize = 1000
	defaultCacheTTL  = 600
)

// CacheInterface defines the common interface for cache operations.
type CacheInterface[T any] interface {
	GetName() string
	Set(key CacheKey, value T) error
	Get(key CacheKey) (T, bool)
	Delete(key CacheKey) error
	Clear() error
	IsEnabled() bool
	CleanupExpired()
}

// Cache implements the CacheInterface for individual caches.
type Cache[T any] struct {
	enabled       bool
	cacheName     string
	internalCache *inMemoryCache[T]
}

// GetCache creates a cache instance for the given name using the configured cache settings.
// When caching is disabled, the returned cache accepts writes silently and never returns hits.
func GetCache[T any](cacheName string) CacheInterface[T] {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "Cache"),
		log.String("cacheName", cacheName))

	cacheConfig := config.GetGateRuntime().Config.Cache
	if cacheConfig.Disabled {
		logger.Debug("Caching is disabled, returning empty")
		return &Cache[T]{
			enabled:   false,
			cacheName: cacheName,
		}
	}

	size := cacheConfig.Size
	if size <= 0 {
		size = defaultCacheSize
	}

	ttl := cacheConfig.TTL
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}

	return &Cache[T]{
		enabled:       true,
		cacheName:     cacheName,
		internalCache: newInMemoryCache[T](cacheName, size, time.Duration(ttl)*time.Second),
	}
}

// GetName returns the name of the cache.
func (c *Cache[T]) GetName() string {
	return c.cacheName
}

// IsEnabled checks if the cache is enabled.
func (c *Cache[T]) IsEnabled() bool {
	return c.enabled
}

// Set stores a value in the cache.
func (c *Cache[T]) Set(key CacheKey, value T) error {
	if !c.enabled {
		return nil
	}
	return c.internalCache.Set(key, value)
}

// Get retrieves a value from the cache.
func (c *Cache[T]) Get(key CacheKey) (T, bool) {
	if !c.enabled {
		var zero T
		return zero, false
	}
	return c.internalCache.Get(key)
}

// Delete removes a value from the cache.
func (c *Cache[T]) Delete(key CacheKey) error {
	if !c.enabled {
		return nil
	}
	return c.internalCache.Delete(key)
}

// Clear removes all values from the cache.
func (c *Cache[T]) Clear() error {
	if !c.enabled {
		return nil
	}
	return c.internalCache.Clear()
}

// CleanupExpired removes all expired entries from the cache.
func (c *Cache[T]) CleanupExpired() {
	if !c.enabled {
		return
	}
	c.internalCache.CleanupExpired()
}
