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

import "time"

// CacheKey represents a key used to identify cached values.
type CacheKey struct {
	Key string
}

// ToString returns the string representation of the cache key.
func (k CacheKey) ToString() string {
	return k.Key
}

// cacheEntry holds a cached value together with its expiry time.
type cacheEntry[T any] struct {
	value     T
	expiresAt time.Time
}

// isExpired checks whether the entry has passed its expiry time.
func (e cacheEntry[T]) isExpired() bool {
	return time.Now().After(e.expiresAt)
}
