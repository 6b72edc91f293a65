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
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/investhub/cookie-consent-service/internal/system/config"
	errors2 "github.com/investhub/cookie-consent-service/internal/system/errors"
	"github.com/investhub/cookie-consent-service/internal/system/log"
)

// ResolveUser extracts and validates the bearer token from the request and
// returns the authenticated user id. An absent Authorization header is not
// an error; the caller falls back to session-id addressing and the returned
// user id is empty. An invalid or expired token yields a 401 client error.
func ResolveUser(r *http.Request) (string, error) {

	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", nil
	}
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return "", unauthorizedError("Malformed Authorization header")
	}

	token := strings.TrimPrefix(authHeader, "Bearer ")
	userID, err := validateTokenAndExtractSubject(token)
	if err != nil {
		return "", err
	}
	return userID, nil
}

// validateTokenAndExtractSubject verifies the JWT signature, audience and
// expiry against the deployment configuration and returns the subject claim.
func validateTokenAndExtractSubject(tokenString string) (string, error) {

	logger := log.GetLogger()
	authConfig := config.GetRuntime().Config.Auth

	claims := jwt.MapClaims{}
	parserOptions := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if authConfig.ExpectedAudience != "" {
		parserOptions = append(parserOptions, jwt.WithAudience(authConfig.ExpectedAudience))
	}

	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(authConfig.JWTSecret), nil
	}, parserOptions...)
	if err != nil {
		logger.Debug("Bearer token validation failed.", log.Error(err))
		return "", unauthorizedError("Invalid or expired bearer token")
	}

	subject, err := claims.GetSubject()
	if err != nil || subject == "" {
		logger.Debug("Bearer token does not carry a subject claim.")
		return "", unauthorizedError("Token does not identify a user")
	}
	return subject, nil
}

func unauthorizedError(description string) error {
	return errors2.NewClientError(errors2.ErrorMessage{
		Code:        errors2.UN_AUTHORIZED.Code,
		Message:     errors2.UN_AUTHORIZED.Message,
		Description: description,
	}, http.StatusUnauthorized)
}
