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

package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/asgardeo/gate/internal/client/constants"
	"github.com/asgardeo/gate/internal/client/model"
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

type ClientServiceTestSuite struct {
	suite.Suite
	mockStore *mockClientStore
	service   ClientServiceInterface
}

func TestClientServiceSuite(t *testing.T) {
	suite.Run(t, new(ClientServiceTestSuite))
}

func (suite *ClientServiceTestSuite) SetupTest() {
	suite.mockStore = &mockClientStore{}
	suite.service = &ClientService{Store: suite.mockStore}
}

func (suite *ClientServiceTestSuite) TestGetOAuthClient() {
	client := &model.OAuthClient{
		ClientID:     "client123",
		ClientSecret: "secret123",
		RedirectURIs: []string{"https://app.example.com/callback"},
	}
	suite.mockStore.On("GetClientByID", "client123").Return(client, nil)

	result, svcErr := suite.service.GetOAuthClient("client123")
	assert.Nil(suite.T(), svcErr)
	assert.Equal(suite.T(), "client123", result.ClientID)
}

func (suite *ClientServiceTestSuite) TestGetOAuthClientEmptyID() {
	result, svcErr := suite.service.GetOAuthClient("")
	assert.Nil(suite.T(), result)
	assert.Equal(suite.T(), constants.ErrorInvalidClientRequest, svcErr)
	suite.mockStore.AssertNotCalled(suite.T(), "GetClientByID")
}

func (suite *ClientServiceTestSuite) TestGetOAuthClientNotFound() {
	suite.mockStore.On("GetClientByID", "missing").Return(nil, constants.ErrClientNotFound)

	result, svcErr := suite.service.GetOAuthClient("missing")
	assert.Nil(suite.T(), result)
	assert.Equal(suite.T(), constants.ErrorClientNotFound, svcErr)
}

func (suite *ClientServiceTestSuite) TestGetOAuthClientStoreFailure() {
	suite.mockStore.On("GetClientByID", "client123").Return(nil, errors.New("connection reset"))

	result, svcErr := suite.service.GetOAuthClient("client123")
	assert.Nil(suite.T(), result)
	assert.Equal(suite.T(), constants.ErrorInternalServerError, svcErr)
}

func (suite *ClientServiceTestSuite) TestRegisterClient() {
	client := &model.OAuthClient{
		ClientID:     "client123",
		RedirectURIs: []string{"https://app.example.com/callback"},
	}
	suite.mockStore.On("CreateClient", client).Return(nil)

	assert.Nil(suite.T(), suite.service.RegisterClient(client))
	suite.mockStore.AssertExpectations(suite.T())
}

func (suite *ClientServiceTestSuite) TestRegisterClientValidation() {
	assert.Equal(suite.T(), constants.ErrorInvalidClientRequest, suite.service.RegisterClient(nil))
	assert.Equal(suite.T(), constants.ErrorInvalidClientRequest, suite.service.RegisterClient(
		&model.OAuthClient{RedirectURIs: []string{"https://app.example.com/callback"}}))
	assert.Equal(suite.T(), constants.ErrorInvalidClientRequest, suite.service.RegisterClient(
		&model.OAuthClient{ClientID: "client123"}))
	suite.mockStore.AssertNotCalled(suite.T(), "CreateClient")
}

func (suite *ClientServiceTestSuite) TestUnregisterClient() {
	suite.mockStore.On("DeleteClientByID", "client123").Return(nil)

	assert.Nil(suite.T(), suite.service.UnregisterClient("client123"))
	assert.Equal(suite.T(), constants.ErrorInvalidClientRequest, suite.service.UnregisterClient(""))
}
