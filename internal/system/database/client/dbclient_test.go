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

package client

import (
	"database/sql"
	"database/sql/driver"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/asgardeo/gate/internal/system/database/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type DBClientTestSuite struct {
	suite.Suite
	mockDB   *sql.DB
	mock     sqlmock.Sqlmock
	dbClient DBClientInterface
}

func TestDBClientSuite(t *testing.T) {
	suite.Run(t, new(DBClientTestSuite))
}

func (suite *DBClientTestSuite) SetupTest() {
	var err error
	suite.mockDB, suite.mock, err = sqlmock.New()
	if err != nil {
		suite.T().Fatalf("Failed to create mock database: %v", err)
	}

	db := model.NewDB(suite.mockDB)
	suite.dbClient = NewDBClient(db, "mock")
}

func (suite *DBClientTestSuite) TearDownTest() {
	if suite.mock != nil {
		if err := suite.mock.ExpectationsWereMet(); err != nil {
			suite.T().Fatalf("There were unfulfilled expectations: %v", err)
		}
	}
}

func (suite *DBClientTestSuite) TestQuerySuccess() {
	testQuery := model.DBQuery{
		ID:    "test_query_success",
		Query: "SELECT client_id, client_name FROM oauth_client WHERE client_id = ?",
	}
	args := []interface{}{"abc"}
	mockArgs := []driver.Value{"abc"}

	columns := []string{"client_id", "client_name"}
	rows := sqlmock.NewRows(columns).
		AddRow("abc", "Atlas")
	suite.mock.ExpectQuery("SELECT client_id, client_name FROM oauth_client WHERE client_id = ?").
		WithArgs(mockArgs...).
		WillReturnRows(rows)

	results, err := suite.dbClient.Query(testQuery, args...)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), results, 1)
	assert.Equal(suite.T(), "abc", results[0]["client_id"])
	assert.Equal(suite.T(), "Atlas", results[0]["client_name"])
	assert.NoError(suite.T(), suite.mock.ExpectationsWereMet())
}

func (suite *DBClientTestSuite) TestQueryNormalizesColumnNames() {
	testQuery := model.DBQuery{
		ID:    "test_query_columns",
		Query: "SELECT CLIENT_ID FROM oauth_client",
	}

	rows := sqlmock.NewRows([]string{"CLIENT_ID"}).AddRow("abc")
	suite.mock.ExpectQuery("SELECT CLIENT_ID FROM oauth_client").WillReturnRows(rows)

	results, err := suite.dbClient.Query(testQuery)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), results, 1)
	assert.Equal(suite.T(), "abc", results[0]["client_id"])
}

func (suite *DBClientTestSuite) TestQueryEmptyResults() {
	testQuery := model.DBQuery{
		ID:    "test_query_empty",
		Query: "SELECT client_id FROM oauth_client WHERE client_id = ?",
	}
	args := []interface{}{"missing"}
	mockArgs := []driver.Value{"missing"}

	rows := sqlmock.NewRows([]string{"client_id"})
	suite.mock.ExpectQuery("SELECT client_id FROM oauth_client WHERE client_id = ?").
		WithArgs(mockArgs...).
		WillReturnRows(rows)

	results, err := suite.dbClient.Query(testQuery, args...)

	assert.NoError(suite.T(), err)
	assert.Empty(suite.T(), results)
	assert.NoError(suite.T(), suite.mock.ExpectationsWereMet())
}

func (suite *DBClientTestSuite) TestQueryDatabaseError() {
	testQuery := model.DBQuery{
		ID:    "test_query_error",
		Query: "SELECT client_id FROM non_existent_table",
	}

	expectedErr := errors.New("table not found")
	suite.mock.ExpectQuery("SELECT client_id FROM non_existent_table").WillReturnError(expectedErr)

	results, err := suite.dbClient.Query(testQuery)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), results)
	assert.Equal(suite.T(), expectedErr, err)
}

func (suite *DBClientTestSuite) TestExecuteSuccess() {
	testQuery := model.DBQuery{
		ID:    "test_execute_success",
		Query: "DELETE FROM oauth_client WHERE client_id = ?",
	}
	mockArgs := []driver.Value{"abc"}

	suite.mock.ExpectExec("DELETE FROM oauth_client WHERE client_id = ?").
		WithArgs(mockArgs...).
		WillReturnResult(sqlmock.NewResult(0, 1))

	rowsAffected, err := suite.dbClient.Execute(testQuery, "abc")

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(1), rowsAffected)
}

func (suite *DBClientTestSuite) TestExecuteDatabaseError() {
	testQuery := model.DBQuery{
		ID:    "test_execute_error",
		Query: "DELETE FROM non_existent_table",
	}

	expectedErr := errors.New("table not found")
	suite.mock.ExpectExec("DELETE FROM non_existent_table").WillReturnError(expectedErr)

	rowsAffected, err := suite.dbClient.Execute(testQuery)

	assert.Error(suite.T(), err)
	assert.Equal(suite.T(), int64(0), rowsAffected)
}

func (suite *DBClientTestSuite) TestBeginTxAndCommit() {
	suite.mock.ExpectBegin()
	suite.mock.ExpectCommit()

	tx, err := suite.dbClient.BeginTx()

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), tx)
	assert.NoError(suite.T(), tx.Commit())
}

func (suite *DBClientTestSuite) TestGetQuerySelectsDriverVariant() {
	testQuery := model.DBQuery{
		ID:            "test_query_variant",
		Query:         "SELECT 1",
		PostgresQuery: "SELECT 1::int",
		SQLiteQuery:   "SELECT CAST(1 AS INTEGER)",
	}

	assert.Equal(suite.T(), "SELECT 1::int", testQuery.GetQuery("postgres"))
	assert.Equal(suite.T(), "SELECT CAST(1 AS INTEGER)", testQuery.GetQuery("sqlite"))
	assert.Equal(suite.T(), "SELECT 1", testQuery.GetQuery("mock"))
}
