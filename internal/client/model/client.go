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

// Package model defines the data structures for OAuth client management.
package model

// OAuthClient represents a registered OAuth client application.
type OAuthClient struct {
	ClientID     string
	ClientSecret string
	Name         string
	OwnerID      string
	RedirectURIs []string
}

// IsPublic checks whether the client is a public client without a secret.
func (c *OAuthClient) IsPublic() bool {
	return c.ClientSecret == ""
}

// IsRegisteredRedirectURI checks whether the given URI exactly matches a registered redirect URI.
func (c *OAuthClient) IsRegisteredRedirectURI(redirectURI string) bool {
	for _, registeredURI := range c.RedirectURIs {
		if registeredURI == redirectURI {
			return true
		}
	}
	return false
}
