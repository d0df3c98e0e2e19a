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

// Package constants defines the constants used in OAuth2 request processing.
package constants

// OAuth2 request parameters.
const (
	ClientID         = "client_id"
	RedirectURI      = "redirect_uri"
	ResponseType     = "response_type"
	Scope            = "scope"
	State            = "state"
	Error            = "error"
	ErrorDescription = "error_description"
)

// OAuth2 endpoint paths.
const (
	OAuth2AuthorizationEndpoint = "/oauth2/authorize"
)

// OAuth2 response types.
const (
	ResponseTypeCode  = "code"
	ResponseTypeToken = "token"
)

// OAuth2 error codes returned on authorization failures.
const (
	ErrorInvalidRequest          = "invalid_request"
	ErrorInvalidClient           = "invalid_client"
	ErrorUnauthorizedClient      = "unauthorized_client"
	ErrorInvalidScope            = "invalid_scope"
	ErrorServerError             = "server_error"
	ErrorUnsupportedResponseType = "unsupported_response_type"
	ErrorAccessDenied            = "access_denied"
)

// Error descriptions returned to the client on authorization failures.
// The wording follows RFC 6749 sections 4.1.2.1 and 4.2.2.1.
const (
	ErrorDescriptionInvalidRequest = "The request is missing a required parameter, includes an invalid " +
		"parameter value, includes a parameter more than once, or is otherwise malformed."
	ErrorDescriptionUnsupportedResponseType = "The authorization server does not support obtaining an " +
		"access token using this method."
)
