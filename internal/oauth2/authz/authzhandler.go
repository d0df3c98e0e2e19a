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

package authz

import (
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/asgardeo/gate/internal/client/provider"
	"github.com/asgardeo/gate/internal/oauth2/constants"
	"github.com/asgardeo/gate/internal/system/config"
	"github.com/asgardeo/gate/internal/system/log"
	"github.com/asgardeo/gate/internal/system/utils"
)

// AuthorizationCompleterInterface completes an authorization request after it
// has been validated, e.g. by authenticating the resource owner and issuing a
// grant for the resolved response type.
type AuthorizationCompleterInterface interface {
	CompleteAuthorization(w http.ResponseWriter, r *http.Request, authRequest *AuthorizationRequest)
}

// notImplementedCompleter rejects validated requests until grant issuance is built.
type notImplementedCompleter struct{}

func (c *notImplementedCompleter) CompleteAuthorization(w http.ResponseWriter, r *http.Request,
	authRequest *AuthorizationRequest) {
	utils.WriteJSONError(w, constants.ErrorServerError,
		"Authorization flow completion is not implemented", http.StatusNotImplemented, nil)
}

// AuthorizeHandler handles OAuth2 authorization requests on the authorization endpoint.
type AuthorizeHandler struct {
	clientProvider provider.ClientProviderInterface
	completer      AuthorizationCompleterInterface
}

// NewAuthorizeHandler creates a new authorize handler with the default completer.
func NewAuthorizeHandler() *AuthorizeHandler {
	return &AuthorizeHandler{
		clientProvider: provider.NewClientProvider(),
		completer:      &notImplementedCompleter{},
	}
}

// HandleAuthorizeGetRequest handles the OAuth2 authorization GET request.
//
// Validation failures are routed per RFC 6749 sections 4.1.2.1 and 4.2.2.1:
// client and redirect URI failures get a direct 400 response and never
// redirect, while all later failures are sent to the client application via a
// 303 redirect carrying the error query parameters.
func (ah *AuthorizeHandler) HandleAuthorizeGetRequest(w http.ResponseWriter, r *http.Request) {
	requestID := uuid.New().String()
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "AuthorizeHandler"),
		log.String(log.LoggerKeyRequestID, requestID))

	authRequest := NewAuthorizationRequest(r.URL.Query(),
		ah.clientProvider.GetClientService(), getSupportedResponseTypes())

	// Deriving state and response type forces the client and redirect URI
	// derivations first, preserving the error routing order.
	if _, err := authRequest.State(); err != nil {
		ah.handleValidationError(w, r, logger, err)
		return
	}
	if _, err := authRequest.ResponseType(); err != nil {
		ah.handleValidationError(w, r, logger, err)
		return
	}

	logger.Debug("Authorization request validated")
	ah.completer.CompleteAuthorization(w, r, authRequest)
}

func (ah *AuthorizeHandler) handleValidationError(w http.ResponseWriter, r *http.Request,
	logger *log.Logger, err error) {
	var authzErr *AuthorizationError
	if !errors.As(err, &authzErr) {
		logger.Error("Unexpected error while validating authorization request", log.Error(err))
		utils.WriteJSONError(w, constants.ErrorServerError, "Failed to process the authorization request",
			http.StatusInternalServerError, nil)
		return
	}

	if authzErr.IsRedirect() {
		logger.Debug("Redirecting authorization error to the client application",
			log.String("error", authzErr.Code))
		http.Redirect(w, r, authzErr.Location(), http.StatusSeeOther)
		return
	}

	logger.Debug("Rejecting authorization request", log.String("error", authzErr.Code))
	utils.WriteJSONError(w, authzErr.Code, authzErr.Description, http.StatusBadRequest, nil)
}

// getSupportedResponseTypes returns the response types the authorization
// endpoint supports, falling back to the authorization code flow.
func getSupportedResponseTypes() []string {
	supported := config.GetGateRuntime().Config.OAuth.Authorize.SupportedResponseTypes
	if len(supported) == 0 {
		return []string{constants.ResponseTypeCode}
	}
	return supported
}
