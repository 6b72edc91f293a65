/*
 * Copyright (c) 2026, InvestHub Ltd. (https://www.investhub.io).
 *
 * InvestHub Ltd. licenses this file to you under the Apache License,
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

package authn

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/investhub/cookie-consent-service/internal/system/config"
)

const testSecret = "test-secret"

func init() {
	config.OverrideRuntime(config.Config{
		Auth: config.AuthConfig{
			JWTSecret:        testSecret,
			ExpectedAudience: "investhub-marketplace",
		},
	})
}

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return token
}

func requestWithToken(token string) *http.Request {
	r := httptest.NewRequest(http.MethodGet, "/api/v1/cookie-consent", nil)
	if token != "" {
		r.Header.Set("Authorization", "Bearer "+token)
	}
	return r
}

func Test_ResolveUser_NoHeaderIsAnonymous(t *testing.T) {
	userID, err := ResolveUser(httptest.NewRequest(http.MethodGet, "/", nil))
	assert.NoError(t, err)
	assert.Empty(t, userID, "A missing Authorization header means an anonymous caller, not an error")
}

func Test_ResolveUser_ValidToken(t *testing.T) {
	token := signToken(t, jwt.MapClaims{
		"sub": "user-42",
		"aud": "investhub-marketplace",
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	userID, err := ResolveUser(requestWithToken(token))
	assert.NoError(t, err)
	assert.Equal(t, "user-42", userID)
}

func Test_ResolveUser_ExpiredToken(t *testing.T) {
	token := signToken(t, jwt.MapClaims{
		"sub": "user-42",
		"aud": "investhub-marketplace",
		"exp": time.Now().Add(-time.Hour).Unix(),
	})

	_, err := ResolveUser(requestWithToken(token))
	assert.Error(t, err)
}

func Test_ResolveUser_WrongAudience(t *testing.T) {
	token := signToken(t, jwt.MapClaims{
		"sub": "user-42",
		"aud": "some-other-service",
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	_, err := ResolveUser(requestWithToken(token))
	assert.Error(t, err)
}

func Test_ResolveUser_MissingSubject(t *testing.T) {
	token := signToken(t, jwt.MapClaims{
		"aud": "investhub-marketplace",
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	_, err := ResolveUser(requestWithToken(token))
	assert.Error(t, err)
}

func Test_ResolveUser_MalformedHeader(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set("Authorization", "Basic dXNlcjpwYXNz")

	_, err := ResolveUser(r)
	assert.Error(t, err)
}
