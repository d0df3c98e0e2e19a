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

package log

import (
	"os"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap/zapcore"
)

type LogTestSuite struct {
	suite.Suite
	originalLogLevel string
}

func TestLogSuite(t *testing.T) {
	suite.Run(t, new(LogTestSuite))
}

func (suite *LogTestSuite) SetupTest() {
	suite.originalLogLevel = os.Getenv(LogLevelEnvironmentVariable)
}

func (suite *LogTestSuite) TearDownTest() {
	err := os.Setenv(LogLevelEnvironmentVariable, suite.originalLogLevel)
	if err != nil {
		suite.T().Errorf("Failed to restore environment variable: %v", err)
	}

	// Reset logger singleton for next test
	logger = nil
	once = sync.Once{}
}

func (suite *LogTestSuite) TestGetLoggerReturnsSingleton() {
	first := GetLogger()
	second := GetLogger()

	assert.NotNil(suite.T(), first)
	assert.Same(suite.T(), first, second)
}

func (suite *LogTestSuite) TestParseLogLevel() {
	testCases := []struct {
		name     string
		logLevel string
		expected zapcore.Level
	}{
		{"DefaultLevel", "", zapcore.InfoLevel},
		{"DebugLevel", "debug", zapcore.DebugLevel},
		{"InfoLevel", "info", zapcore.InfoLevel},
		{"WarnLevel", "warn", zapcore.WarnLevel},
		{"ErrorLevel", "error", zapcore.ErrorLevel},
		{"UpperCaseLevel", "DEBUG", zapcore.DebugLevel},
		{"UnknownLevel", "unknown", zapcore.InfoLevel},
	}

	for _, tc := range testCases {
		suite.T().Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, parseLogLevel(tc.logLevel))
		})
	}
}

func (suite *LogTestSuite) TestIsDebugEnabled() {
	err := os.Setenv(LogLevelEnvironmentVariable, "debug")
	assert.NoError(suite.T(), err)

	logger = nil
	once = sync.Once{}
	assert.True(suite.T(), GetLogger().IsDebugEnabled())
}

func (suite *LogTestSuite) TestWithReturnsNewLogger() {
	base := GetLogger()
	derived := base.With(String(LoggerKeyComponentName, "LogTest"))

	assert.NotNil(suite.T(), derived)
	assert.NotSame(suite.T(), base, derived)
}

func (suite *LogTestSuite) TestMaskString() {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{"EmptyString", "", ""},
		{"ShortString", "abc", "***"},
		{"LongString", "client-id", "c*******d"},
	}

	for _, tc := range testCases {
		suite.T().Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, MaskString(tc.input))
		})
	}
}
