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

package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsPublic(t *testing.T) {
	confidential := &OAuthClient{ClientID: "abc", ClientSecret: "secret"}
	assert.False(t, confidential.IsPublic())

	public := &OAuthClient{ClientID: "abc"}
	assert.True(t, public.IsPublic())
}

func TestIsRegisteredRedirectURI(t *testing.T) {
	client := &OAuthClient{
		ClientID:     "abc",
		RedirectURIs: []string{"https://app.example.com/callback", "https://app.example.com/alt"},
	}

	assert.True(t, client.IsRegisteredRedirectURI("https://app.example.com/alt"))
	assert.False(t, client.IsRegisteredRedirectURI("https://app.example.com/other"))
	// Prefix matches are not sufficient, the URI must match exactly.
	assert.False(t, client.IsRegisteredRedirectURI("https://app.example.com/callback?foo=bar"))
	assert.False(t, client.IsRegisteredRedirectURI(""))
}
