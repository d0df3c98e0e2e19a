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
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/asgardeo/gate/internal/client/model"
	"github.com/asgardeo/gate/internal/system/cache"
	"github.com/asgardeo/gate/internal/system/config"
)

type mockClientStore struct {
	mock.Mock
}

func (m *mockClientStore) GetClientByID(clientID string) (*model.OAuthClient, error) {
	args := m.Called(clientID)
	client, _ := args.Get(0).(*model.OAuthClient)
	return client, args.Error(1)
}

func (m *mockClientStore) CreateClient(client *model.OAuthClient) error {
	return m.Called(client).Error(0)
}

func (m *mockClientStore) DeleteClientByID(clientID string) error {
	return m.Called(clientID).Error(0)
}

type CachedBackedClientStoreTestSuite struct {
	suite.Suite
	mockStore *mockClientStore
	store     *CachedBackedClientStore
}

func TestCachedBackedClientStoreSuite(t *testing.T) {
	suite.Run(t, new(CachedBackedClientStoreTestSuite))
}

func (suite *CachedBackedClientStoreTestSuite) SetupTest() {
	config.ResetGateRuntime()
	err := config.InitializeGateRuntime("/test/gate/home", &config.Config{
		Cache: config.CacheConfig{Size: 10, TTL: 300},
	})
	if err != nil {
		suite.T().Fatal("Failed to initialize GateRuntime:", err)
	}

	suite.mockStore = &mockClientStore{}
	suite.store = &CachedBackedClientStore{
		store:       suite.mockStore,
		clientCache: cache.GetCache[model.OAuthClient]("ClientCacheTest"),
	}
}

func (suite *CachedBackedClientStoreTestSuite) TearDownTest() {
	config.ResetGateRuntime()
}

func (suite *CachedBackedClientStoreTestSuite) TestGetClientByIDCachesResult() {
	client := &model.OAuthClient{
		ClientID:     "client123",
		ClientSecret: "secret123",
		RedirectURIs: []string{"https://app.example.com/callback"},
	}
	suite.mockStore.On("GetClientByID", "client123").Return(client, nil).Once()

	// First call hits the underlying store, second is served from the cache.
	first, err := suite.store.GetClientByID("client123")
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "client123", first.ClientID)

	second, err := suite.store.GetClientByID("client123")
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "client123", second.ClientID)

	suite.mockStore.AssertNumberOfCalls(suite.T(), "GetClientByID", 1)
}

func (suite *CachedBackedClientStoreTestSuite) TestGetClientByIDError() {
	suite.mockStore.On("GetClientByID", "client123").Return(nil, errors.New("lookup failed"))

	client, err := suite.store.GetClientByID("client123")
	assert.Nil(suite.T(), client)
	assert.Error(suite.T(), err)
}

func (suite *CachedBackedClientStoreTestSuite) TestDeleteClientInvalidatesCache() {
	client := &model.OAuthClient{ClientID: "client123"}
	suite.mockStore.On("GetClientByID", "client123").Return(client, nil).Twice()
	suite.mockStore.On("DeleteClientByID", "client123").Return(nil)

	_, err := suite.store.GetClientByID("client123")
	assert.NoError(suite.T(), err)

	assert.NoError(suite.T(), suite.store.DeleteClientByID("client123"))

	// Cache entry is gone, so the lookup goes back to the store.
	_, err = suite.store.GetClientByID("client123")
	assert.NoError(suite.T(), err)
	suite.mockStore.AssertNumberOfCalls(suite.T(), "GetClientByID", 2)
}

func (suite *CachedBackedClientStoreTestSuite) TestCreateClientPopulatesCache() {
	client := &model.OAuthClient{ClientID: "client123"}
	suite.mockStore.On("CreateClient", client).Return(nil)

	assert.NoError(suite.T(), suite.store.CreateClient(client))

	fetched, err := suite.store.GetClientByID("client123")
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "client123", fetched.ClientID)
	suite.mockStore.AssertNotCalled(suite.T(), "GetClientByID", "client123")
}
