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

package handler

import (
	"encoding/json"
	"net/http"

	consentModel "github.com/investhub/cookie-consent-service/internal/consent/model"
	"github.com/investhub/cookie-consent-service/internal/consent/provider"
	"github.com/investhub/cookie-consent-service/internal/system/authn"
	"github.com/investhub/cookie-consent-service/internal/system/errors"
	"github.com/investhub/cookie-consent-service/internal/system/utils"
)

type ConsentHandler struct{}

func NewConsentHandler() *ConsentHandler {
	return &ConsentHandler{}
}

// GetConsent handles GET /cookie-consent
func (h *ConsentHandler) GetConsent(w http.ResponseWriter, r *http.Request) {

	userID, err := authn.ResolveUser(r)
	if err != nil {
		// An unusable token means there is no server record for this
		// caller, not a fatal error; fall back to session addressing.
		userID = ""
	}
	sessionID := r.URL.Query().Get("session_id")

	service := provider.NewConsentProvider().GetConsentService()
	record, err := service.GetConsent(userID, sessionID)
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, consentModel.ConsentResponse{
		Success: true,
		Consent: record,
	})
}

// UpsertConsent handles POST /cookie-consent
func (h *ConsentHandler) UpsertConsent(w http.ResponseWriter, r *http.Request) {

	userID, err := authn.ResolveUser(r)
	if err != nil {
		userID = ""
	}

	var request consentModel.UpsertConsentRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		clientError := errors.NewClientError(errors.ErrorMessage{
			Code:        errors.BAD_REQUEST.Code,
			Message:     errors.BAD_REQUEST.Message,
			Description: utils.HandleDecodeError(err, "cookie consent"),
		}, http.StatusBadRequest)
		utils.HandleError(w, clientError)
		return
	}

	service := provider.NewConsentProvider().GetConsentService()
	record, err := service.UpsertConsent(userID, request, utils.ExtractClientIP(r), r.UserAgent())
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, consentModel.ConsentResponse{
		Success: true,
		Consent: record,
	})
}

// DeleteConsent handles DELETE /cookie-consent
func (h *ConsentHandler) DeleteConsent(w http.ResponseWriter, r *http.Request) {

	userID, err := authn.ResolveUser(r)
	if err != nil {
		userID = ""
	}
	sessionID := r.URL.Query().Get("session_id")

	service := provider.NewConsentProvider().GetConsentService()
	if err := service.DeleteConsent(userID, sessionID); err != nil {
		utils.HandleError(w, err)
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, map[string]bool{"success": true})
}

// GetCategories handles GET /cookie-consent/categories
func (h *ConsentHandler) GetCategories(w http.ResponseWriter, r *http.Request) {

	userID, err := authn.ResolveUser(r)
	if err != nil {
		userID = ""
	}
	sessionID := r.URL.Query().Get("session_id")

	service := provider.NewConsentProvider().GetConsentService()
	categories, err := service.GetCategories(userID, sessionID)
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, categories)
}
