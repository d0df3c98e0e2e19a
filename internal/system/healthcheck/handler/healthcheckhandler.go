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

// Package handler provides HTTP handlers for readiness and liveness checks.
package handler

import (
	"encoding/json"
	"net/http"

	"github.com/asgardeo/gate/internal/system/database/provider"
	"github.com/asgardeo/gate/internal/system/log"
)

const (
	statusUp   = "UP"
	statusDown = "DOWN"
)

type healthStatus struct {
	Status string `json:"status"`
}

// HealthCheckHandler handles readiness and liveness check requests.
type HealthCheckHandler struct {
	dbProvider provider.DBProviderInterface
}

// NewHealthCheckHandler creates a new instance of HealthCheckHandler.
func NewHealthCheckHandler() *HealthCheckHandler {
	return &HealthCheckHandler{
		dbProvider: provider.NewDBProvider(),
	}
}

// HandleLivenessRequest handles the liveness check request.
func (h *HealthCheckHandler) HandleLivenessRequest(w http.ResponseWriter, r *http.Request) {
	writeHealthStatus(w, http.StatusOK, statusUp)
}

// HandleReadinessRequest handles the readiness check request. The server is
// ready once the identity database is reachable.
func (h *HealthCheckHandler) HandleReadinessRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "HealthCheckHandler"))

	if _, err := h.dbProvider.GetDBClient("identity"); err != nil {
		logger.Error("Readiness check failed", log.Error(err))
		writeHealthStatus(w, http.StatusServiceUnavailable, statusDown)
		return
	}
	writeHealthStatus(w, http.StatusOK, statusUp)
}

func writeHealthStatus(w http.ResponseWriter, statusCode int, status string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(healthStatus{Status: status}); err != nil {
		log.GetLogger().Error("Failed to write health status", log.Error(err))
	}
}
