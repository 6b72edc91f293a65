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

package service

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	model "github.com/investhub/cookie-consent-service/internal/consent/model"
	errors2 "github.com/investhub/cookie-consent-service/internal/system/errors"
)

func Test_UpsertConsent_RequiresPrincipal(t *testing.T) {
	svc := GetConsentService()

	_, err := svc.UpsertConsent("", model.UpsertConsentRequest{Version: "1.0"}, "", "")
	assertClientError(t, err, http.StatusUnauthorized)
}

func Test_UpsertConsent_RequiresVersion(t *testing.T) {
	svc := GetConsentService()

	_, err := svc.UpsertConsent("user-1", model.UpsertConsentRequest{}, "", "")
	assertClientError(t, err, http.StatusBadRequest)
}

func Test_GetConsent_RequiresPrincipal(t *testing.T) {
	svc := GetConsentService()

	_, err := svc.GetConsent("", "")
	assertClientError(t, err, http.StatusUnauthorized)
}

func Test_DeleteConsent_WithoutPrincipalIsNoOp(t *testing.T) {
	svc := GetConsentService()

	assert.NoError(t, svc.DeleteConsent("", ""), "Deleting without any principal must not fail")
}

func assertClientError(t *testing.T, err error, statusCode int) {
	t.Helper()
	var clientError *errors2.ClientError
	assert.ErrorAs(t, err, &clientError)
	assert.Equal(t, statusCode, clientError.StatusCode)
}
