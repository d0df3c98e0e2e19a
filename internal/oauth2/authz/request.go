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

// Package authz provides functionality for handling OAuth2 authorization requests
// as defined in RFC 6749 sections 3.1, 4.1 and 4.2.
package authz

import (
	"errors"
	"net/url"
	"strings"

	clientmodel "github.com/asgardeo/gate/internal/client/model"
	"github.com/asgardeo/gate/internal/client/service"
	"github.com/asgardeo/gate/internal/oauth2/constants"
)

// ErrScopeNotImplemented is returned on scope access until scope handling is built.
// Callers must surface this condition rather than treating the scope as absent.
var ErrScopeNotImplemented = errors.New("scope handling is not implemented")

// AuthorizationRequest parses and validates an OAuth2 authorization request.
//
// Field derivations are ordered and short-circuiting: client, then redirect
// URI, then state, then response type. Each derivation depends on the previous
// one, and each result (including a failure) is memoized so repeated reads
// return the first outcome without re-invoking the client lookup. Per RFC 6749
// section 3.1, parameters sent without a value are treated as omitted.
type AuthorizationRequest struct {
	query                  url.Values
	clientService          service.ClientServiceInterface
	supportedResponseTypes []string

	clientResolved bool
	client         *clientmodel.OAuthClient
	clientErr      error

	redirectResolved bool
	redirectURI      string
	redirectErr      error

	stateResolved bool
	state         string
	stateErr      error

	responseTypeResolved bool
	responseType         string
	responseTypeErr      error
}

// NewAuthorizationRequest creates an authorization request over the given
// query parameters. supportedResponseTypes declares the flows the endpoint
// supports, e.g. "code" and "token".
func NewAuthorizationRequest(query url.Values, clientService service.ClientServiceInterface,
	supportedResponseTypes []string) *AuthorizationRequest {
	return &AuthorizationRequest{
		query:                  query,
		clientService:          clientService,
		supportedResponseTypes: supportedResponseTypes,
	}
}

// Client resolves the OAuth client that made this request.
//
// Client identification failures must never redirect, so they are always
// routed as direct errors regardless of the other request parameters.
func (r *AuthorizationRequest) Client() (*clientmodel.OAuthClient, error) {
	if !r.clientResolved {
		r.clientResolved = true
		r.client, r.clientErr = r.resolveClient()
	}
	if r.clientErr != nil {
		return nil, r.clientErr
	}
	return r.client, nil
}

func (r *AuthorizationRequest) resolveClient() (*clientmodel.OAuthClient, error) {
	clientID := r.query.Get(constants.ClientID)
	if clientID == "" {
		return nil, newDirectError(constants.ErrorInvalidClient, "invalid client_id")
	}

	client, svcErr := r.clientService.GetOAuthClient(clientID)
	if svcErr != nil || client == nil {
		return nil, newDirectError(constants.ErrorInvalidClient, "invalid client_id")
	}
	return client, nil
}

// RedirectURI resolves the redirect URI for this request.
//
// When the request carries a redirect_uri it must exactly match one of the
// client's registered URIs. When omitted, it defaults to the registered URI
// only if exactly one is registered. The resolved URI is normalized to end
// with a "?" when it has no query component, so that response parameters can
// be appended directly.
func (r *AuthorizationRequest) RedirectURI() (string, error) {
	if !r.redirectResolved {
		r.redirectResolved = true
		r.redirectURI, r.redirectErr = r.resolveRedirectURI()
	}
	return r.redirectURI, r.redirectErr
}

func (r *AuthorizationRequest) resolveRedirectURI() (string, error) {
	client, err := r.Client()
	if err != nil {
		return "", err
	}

	redirectURI := r.query.Get(constants.RedirectURI)
	if redirectURI != "" {
		if !client.IsRegisteredRedirectURI(redirectURI) {
			return "", newDirectError(constants.ErrorInvalidRequest, "invalid redirect_uri")
		}
	} else {
		if len(client.RedirectURIs) != 1 {
			return "", newDirectError(constants.ErrorInvalidRequest, "invalid redirect_uri")
		}
		redirectURI = client.RedirectURIs[0]
	}

	if !strings.Contains(redirectURI, "?") {
		redirectURI += "?"
	}
	return redirectURI, nil
}

// State resolves the state parameter for this request. The parameter is
// required here to force CSRF protection as recommended by RFC 6749
// section 10.12. A missing state is reported to the client application via
// the validated redirect URI.
func (r *AuthorizationRequest) State() (string, error) {
	if !r.stateResolved {
		r.stateResolved = true
		r.state, r.stateErr = r.resolveState()
	}
	return r.state, r.stateErr
}

func (r *AuthorizationRequest) resolveState() (string, error) {
	redirectURI, err := r.RedirectURI()
	if err != nil {
		return "", err
	}

	state := r.query.Get(constants.State)
	if state == "" {
		return "", newRedirectError(constants.ErrorInvalidRequest,
			constants.ErrorDescriptionInvalidRequest, redirectURI)
	}
	return state, nil
}

// ResponseType resolves the response_type parameter for this request. A
// missing value or a value outside the endpoint's supported flows is reported
// to the client application via the validated redirect URI.
func (r *AuthorizationRequest) ResponseType() (string, error) {
	if !r.responseTypeResolved {
		r.responseTypeResolved = true
		r.responseType, r.responseTypeErr = r.resolveResponseType()
	}
	return r.responseType, r.responseTypeErr
}

func (r *AuthorizationRequest) resolveResponseType() (string, error) {
	redirectURI, err := r.RedirectURI()
	if err != nil {
		return "", err
	}

	responseType := r.query.Get(constants.ResponseType)
	if responseType == "" {
		return "", newRedirectError(constants.ErrorInvalidRequest,
			constants.ErrorDescriptionInvalidRequest, redirectURI)
	}
	if !r.isSupportedResponseType(responseType) {
		return "", newRedirectError(constants.ErrorUnsupportedResponseType,
			constants.ErrorDescriptionUnsupportedResponseType, redirectURI)
	}
	return responseType, nil
}

// Scope resolves the scope parameter for this request.
func (r *AuthorizationRequest) Scope() (string, error) {
	return "", ErrScopeNotImplemented
}

func (r *AuthorizationRequest) isSupportedResponseType(responseType string) bool {
	for _, supported := range r.supportedResponseTypes {
		if responseType == supported {
			return true
		}
	}
	return false
}
