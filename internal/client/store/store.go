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

// Package store provides functionality for handling OAuth client data persistence.
package store

import (
	"fmt"

	"github.com/asgardeo/gate/internal/client/constants"
	"github.com/asgardeo/gate/internal/client/model"
	"github.com/asgardeo/gate/internal/system/database/provider"
	"github.com/asgardeo/gate/internal/system/log"
	"github.com/asgardeo/gate/internal/system/utils"
)

// ClientStoreInterface defines the interface for OAuth client persistence operations.
type ClientStoreInterface interface {
	GetClientByID(clientID string) (*model.OAuthClient, error)
	CreateClient(client *model.OAuthClient) error
	DeleteClientByID(clientID string) error
}

// ClientStore is the default database backed implementation of ClientStoreInterface.
type ClientStore struct {
	DBProvider provider.DBProviderInterface
}

// NewClientStore creates a new instance of ClientStore.
func NewClientStore() ClientStoreInterface {
	return &ClientStore{
		DBProvider: provider.NewDBProvider(),
	}
}

// GetClientByID retrieves a registered OAuth client by its client identifier.
func (s *ClientStore) GetClientByID(clientID string) (*model.OAuthClient, error) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "ClientStore"))

	dbClient, err := s.DBProvider.GetDBClient("identity")
	if err != nil {
		logger.Error("Failed to get database client", log.Error(err))
		return nil, fmt.Errorf("failed to get database client: %w", err)
	}

	results, err := dbClient.Query(QueryGetClientByClientID, clientID)
	if err != nil {
		logger.Error("Failed to execute query", log.Error(err))
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}

	if len(results) == 0 {
		return nil, constants.ErrClientNotFound
	}
	if len(results) != 1 {
		logger.Error("Unexpected number of results for client query", log.Int("count", len(results)))
		return nil, fmt.Errorf("unexpected number of results: %d", len(results))
	}

	client, err := buildClientFromResultRow(results[0])
	if err != nil {
		logger.Error("Failed to build client from result row", log.Error(err))
		return nil, fmt.Errorf("failed to build client from result row: %w", err)
	}
	return client, nil
}

// CreateClient inserts a new OAuth client registration into the database.
func (s *ClientStore) CreateClient(client *model.OAuthClient) error {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "ClientStore"))

	dbClient, err := s.DBProvider.GetDBClient("identity")
	if err != nil {
		logger.Error("Failed to get database client", log.Error(err))
		return fmt.Errorf("failed to get database client: %w", err)
	}

	_, err = dbClient.Execute(QueryCreateClient, client.ClientID, client.ClientSecret, client.Name,
		client.OwnerID, utils.JoinStringArray(client.RedirectURIs))
	if err != nil {
		logger.Error("Failed to execute query", log.Error(err))
		return fmt.Errorf("failed to execute query: %w", err)
	}
	return nil
}

// DeleteClientByID deletes an OAuth client registration from the database.
func (s *ClientStore) DeleteClientByID(clientID string) error {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "ClientStore"))

	dbClient, err := s.DBProvider.GetDBClient("identity")
	if err != nil {
		logger.Error("Failed to get database client", log.Error(err))
		return fmt.Errorf("failed to get database client: %w", err)
	}

	_, err = dbClient.Execute(QueryDeleteClientByClientID, clientID)
	if err != nil {
		logger.Error("Failed to execute query", log.Error(err))
		return fmt.Errorf("failed to execute query: %w", err)
	}
	return nil
}

// buildClientFromResultRow constructs an OAuthClient object from a database result row.
func buildClientFromResultRow(row map[string]interface{}) (*model.OAuthClient, error) {
	clientID, ok := row["client_id"].(string)
	if !ok {
		return nil, fmt.Errorf("failed to parse client_id as string")
	}

	// A missing secret marks a public client, so NULL columns are tolerated here.
	clientSecret, _ := row["client_secret"].(string)
	clientName, _ := row["client_name"].(string)
	ownerID, _ := row["owner_id"].(string)

	return &model.OAuthClient{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		Name:         clientName,
		OwnerID:      ownerID,
		RedirectURIs: utils.ParseStringArray(row["redirect_uris"]),
	}, nil
}
