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

package store

import (
	"github.com/asgardeo/gate/internal/client/model"
	"github.com/asgardeo/gate/internal/system/cache"
	"github.com/asgardeo/gate/internal/system/log"
)

// CachedBackedClientStore is a client store decorator that caches client lookups.
type CachedBackedClientStore struct {
	store       ClientStoreInterface
	clientCache cache.CacheInterface[model.OAuthClient]
}

// NewCachedBackedClientStore creates a new cache backed client store.
func NewCachedBackedClientStore() ClientStoreInterface {
	return &CachedBackedClientStore{
		store:       NewClientStore(),
		clientCache: cache.GetCache[model.OAuthClient]("ClientCache"),
	}
}

// GetClientByID retrieves a client by its identifier, serving from the cache when possible.
func (s *CachedBackedClientStore) GetClientByID(clientID string) (*model.OAuthClient, error) {
	cacheKey := cache.CacheKey{Key: clientID}
	if cachedClient, found := s.clientCache.Get(cacheKey); found {
		return &cachedClient, nil
	}

	client, err := s.store.GetClientByID(clientID)
	if err != nil {
		return nil, err
	}

	s.cacheClient(client)
	return client, nil
}

// CreateClient inserts a new client registration and caches it.
func (s *CachedBackedClientStore) CreateClient(client *model.OAuthClient) error {
	if err := s.store.CreateClient(client); err != nil {
		return err
	}
	s.cacheClient(client)
	return nil
}

// DeleteClientByID deletes a client registration and invalidates the cache entry.
func (s *CachedBackedClientStore) DeleteClientByID(clientID string) error {
	if err := s.store.DeleteClientByID(clientID); err != nil {
		return err
	}
	s.invalidateClientCache(clientID)
	return nil
}

// cacheClient adds a client to the cache.
func (s *CachedBackedClientStore) cacheClient(client *model.OAuthClient) {
	if client == nil || client.ClientID == "" {
		return
	}

	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "CachedBackedClientStore"))
	if err := s.clientCache.Set(cache.CacheKey{Key: client.ClientID}, *client); err != nil {
		logger.Error("Failed to cache client", log.Error(err),
			log.String(log.LoggerKeyClientID, log.MaskString(client.ClientID)))
	}
}

// invalidateClientCache removes a client entry from the cache.
func (s *CachedBackedClientStore) invalidateClientCache(clientID string) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "CachedBackedClientStore"))
	if err := s.clientCache.Delete(cache.CacheKey{Key: clientID}); err != nil {
		logger.Error("Failed to invalidate client cache", log.Error(err),
			log.String(log.LoggerKeyClientID, log.MaskString(clientID)))
	}
}
