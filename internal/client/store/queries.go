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

import dbmodel "github.com/asgardeo/gate/internal/system/database/model"

var (
	// QueryGetClientByClientID retrieves a registered OAuth client by its client identifier.
	QueryGetClientByClientID = dbmodel.DBQuery{
		ID: "GTQ-CLIENT_MGT-00",
		Query: "SELECT CLIENT_ID, CLIENT_SECRET, CLIENT_NAME, OWNER_ID, REDIRECT_URIS " +
			"FROM OAUTH_CLIENT WHERE CLIENT_ID = $1",
		SQLiteQuery: "SELECT CLIENT_ID, CLIENT_SECRET, CLIENT_NAME, OWNER_ID, REDIRECT_URIS " +
			"FROM OAUTH_CLIENT WHERE CLIENT_ID = ?",
	}

	// QueryCreateClient inserts a new OAuth client registration.
	QueryCreateClient = dbmodel.DBQuery{
		ID: "GTQ-CLIENT_MGT-01",
		Query: "INSERT INTO OAUTH_CLIENT (CLIENT_ID, CLIENT_SECRET, CLIENT_NAME, OWNER_ID, REDIRECT_URIS) " +
			"VALUES ($1, $2, $3, $4, $5)",
		SQLiteQuery: "INSERT INTO OAUTH_CLIENT (CLIENT_ID, CLIENT_SECRET, CLIENT_NAME, OWNER_ID, REDIRECT_URIS) " +
			"VALUES (?, ?, ?, ?, ?)",
	}

	// QueryDeleteClientByClientID deletes an OAuth client registration.
	QueryDeleteClientByClientID = dbmodel.DBQuery{
		ID:          "GTQ-CLIENT_MGT-02",
		Query:       "DELETE FROM OAUTH_CLIENT WHERE CLIENT_ID = $1",
		SQLiteQuery: "DELETE FROM OAUTH_CLIENT WHERE CLIENT_ID = ?",
	}
)
