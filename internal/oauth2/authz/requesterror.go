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
	"net/url"

	"github.com/asgardeo/gate/internal/oauth2/constants"
)

// AuthorizationError represents a failed authorization request derivation.
//
// Errors are routed one of two ways, per RFC 6749 sections 4.1.2.1 and 4.2.2.1.
// Failures identifying the client or its redirect URI are returned directly to
// the user agent and must never redirect. All other failures are sent back to
// the client application via its validated redirect URI.
type AuthorizationError struct {
	Code        string
	Description string

	// redirectURI is the validated redirect target, set only for redirect routed errors.
	redirectURI string
}

// newDirectError creates an authorization error that is returned directly to the user agent.
func newDirectError(code, description string) *AuthorizationError {
	return &AuthorizationError{
		Code:        code,
		Description: description,
	}
}

// newRedirectError creates an authorization error that is sent to the client
// application via the given validated redirect URI.
func newRedirectError(code, description, redirectURI string) *AuthorizationError {
	return &AuthorizationError{
		Code:        code,
		Description: description,
		redirectURI: redirectURI,
	}
}

// Error returns the error message.
func (e *AuthorizationError) Error() string {
	return e.Code + ": " + e.Description
}

// IsRedirect checks whether the error must be delivered via a redirect to the
// client application rather than returned directly to the user agent.
func (e *AuthorizationError) IsRedirect() bool {
	return e.redirectURI != ""
}

// Location returns the redirect target carrying the error query parameters.
// The redirect URI is already normalized to end with a "?" when it had no
// query component, so the encoded parameters are appended as-is.
func (e *AuthorizationError) Location() string {
	if !e.IsRedirect() {
		return ""
	}
	query := url.Values{
		constants.Error:            {e.Code},
		constants.ErrorDescription: {e.Description},
	}
	return e.redirectURI + query.Encode()
}
