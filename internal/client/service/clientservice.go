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

// Package service provides OAuth client related business logic and operations.
package service

import (
	"errors"

	"github.com/asgardeo/gate/internal/client/constants"
	"github.com/asgardeo/gate/internal/client/model"
	"github.com/asgardeo/gate/internal/client/store"
	"github.com/asgardeo/gate/internal/system/error/serviceerror"
	"github.com/asgardeo/gate/internal/system/log"
)

// ClientServiceInterface defines the interface for the OAuth client service.
type ClientServiceInterface interface {
	GetOAuthClient(clientID string) (*model.OAuthClient, *serviceerror.ServiceError)
	RegisterClient(client *model.OAuthClient) *serviceerror.ServiceError
	UnregisterClient(clientID string) *serviceerror.ServiceError
}

// ClientService is the default implementation of the ClientServiceInterface.
type ClientService struct {
	Store store.ClientStoreInterface
}

// GetClientService creates a new instance of ClientService.
func GetClientService() ClientServiceInterface {
	return &ClientService{
		Store: store.NewCachedBackedClientStore(),
	}
}

// GetOAuthClient retrieves the registered OAuth client based on the client id.
func (cs *ClientService) GetOAuthClient(clientID string) (*model.OAuthClient, *serviceerror.ServiceError) {
	if clientID == "" {
		return nil, constants.ErrorInvalidClientRequest
	}
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "ClientService"))

	client, err := cs.Store.GetClientByID(clientID)
	if err != nil {
		if errors.Is(err, constants.ErrClientNotFound) {
			return nil, constants.ErrorClientNotFound
		}
		logger.Error("Failed to retrieve OAuth client", log.Error(err),
			log.String(log.LoggerKeyClientID, log.MaskString(clientID)))
		return nil, constants.ErrorInternalServerError
	}
	return client, nil
}

// RegisterClient registers a new OAuth client.
func (cs *ClientService) RegisterClient(client *model.OAuthClient) *serviceerror.ServiceError {
	if client == nil || client.ClientID == "" || len(client.RedirectURIs) == 0 {
		return constants.ErrorInvalidClientRequest
	}

	if err := cs.Store.CreateClient(client); err != nil {
		logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "ClientService"))
		logger.Error("Failed to register OAuth client", log.Error(err),
			log.String(log.LoggerKeyClientID, log.MaskString(client.ClientID)))
		return constants.ErrorInternalServerError
	}
	return nil
}

// UnregisterClient removes an OAuth client registration.
func (cs *ClientService) UnregisterClient(clientID string) *serviceerror.ServiceError {
	if clientID == "" {
		return constants.ErrorInvalidClientRequest
	}

	if err := cs.Store.DeleteClientByID(clientID); err != nil {
		logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "ClientService"))
		logger.Error("Failed to unregister OAuth client", log.Error(err),
			log.String(log.LoggerKeyClientID, log.MaskString(clientID)))
		return constants.ErrorInternalServerError
	}
	return nil
}
