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
	"sync"
	"time"

	"github.com/google/uuid"

	auditModel "github.com/investhub/cookie-consent-service/internal/audit/model"
	auditStore "github.com/investhub/cookie-consent-service/internal/audit/store"
	model "github.com/investhub/cookie-consent-service/internal/consent/model"
	"github.com/investhub/cookie-consent-service/internal/consent/store"
	"github.com/investhub/cookie-consent-service/internal/system/cache"
	"github.com/investhub/cookie-consent-service/internal/system/config"
	"github.com/investhub/cookie-consent-service/internal/system/constants"
	errors2 "github.com/investhub/cookie-consent-service/internal/system/errors"
	"github.com/investhub/cookie-consent-service/internal/system/log"
)

// ConsentServiceInterface defines the service interface.
type ConsentServiceInterface interface {
	GetConsent(userID, sessionID string) (*model.ConsentRecord, error)
	UpsertConsent(userID string, request model.UpsertConsentRequest, clientIP, userAgent string) (*model.ConsentRecord, error)
	DeleteConsent(userID, sessionID string) error
	GetCategories(userID, sessionID string) ([]model.CookieCategory, error)
}

// ConsentService is the default implementation.
type ConsentService struct{}

// GetConsentService returns a new instance.
func GetConsentService() ConsentServiceInterface {
	return &ConsentService{}
}

var (
	consentCache     *cache.Cache
	consentCacheOnce sync.Once
)

func getConsentCache() *cache.Cache {
	consentCacheOnce.Do(func() {
		ttlMinutes := config.GetRuntime().Config.Consent.CacheTTLMinutes
		if ttlMinutes <= 0 {
			ttlMinutes = 5
		}
		consentCache = cache.NewCache(time.Duration(ttlMinutes) * time.Minute)
	})
	return consentCache
}

// GetConsent retrieves the consent record for the principal. Returns nil
// when no record exists; absence of a record is not an error.
func (cs *ConsentService) GetConsent(userID, sessionID string) (*model.ConsentRecord, error) {

	if userID == "" && sessionID == "" {
		return nil, missingPrincipalError()
	}

	cacheKey := principalCacheKey(userID, sessionID)
	if cached, found := getConsentCache().Get(cacheKey); found {
		record := cached.(model.ConsentRecord)
		return &record, nil
	}

	record, err := store.GetConsentByPrincipal(userID, sessionID)
	if err != nil {
		return nil, err
	}
	if record != nil {
		getConsentCache().Set(cacheKey, *record)
	}
	return record, nil
}

// UpsertConsent validates the request, replaces the principal's consent
// record wholesale and appends a best-effort audit entry.
func (cs *ConsentService) UpsertConsent(userID string, request model.UpsertConsentRequest,
	clientIP, userAgent string) (*model.ConsentRecord, error) {

	sessionID := request.SessionID
	if userID == "" && sessionID == "" {
		return nil, missingPrincipalError()
	}
	if request.Version == "" {
		return nil, errors2.NewClientError(errors2.ErrorMessage{
			Code:        errors2.CONSENT_VALIDATION.Code,
			Message:     errors2.CONSENT_VALIDATION.Message,
			Description: "Consent schema version is required.",
		}, http.StatusBadRequest)
	}

	timestamp := request.Timestamp
	if timestamp <= 0 {
		timestamp = time.Now().UnixMilli()
	}

	record := model.ConsentRecord{
		ID:          uuid.New().String(),
		UserID:      userID,
		SessionID:   sessionID,
		Preferences: request.Preferences.Normalize(),
		Version:     request.Version,
		Timestamp:   timestamp,
		ClientIP:    clientIP,
		UserAgent:   userAgent,
		CreatedAt:   time.Now().UTC(),
	}

	if err := store.UpsertConsent(record); err != nil {
		return nil, err
	}
	invalidatePrincipal(userID, sessionID)

	appendAuditEntry(auditModel.AuditEntry{
		UserID:      userID,
		SessionID:   sessionID,
		Action:      constants.AuditActionSave,
		Preferences: &record.Preferences,
		Version:     record.Version,
		ClientIP:    clientIP,
		UserAgent:   userAgent,
		RecordedAt:  time.Now().UTC(),
	})
	return &record, nil
}

// DeleteConsent removes the consent record for the principal. Calling it
// with no record, or with no principal at all, is a no-op.
func (cs *ConsentService) DeleteConsent(userID, sessionID string) error {

	if userID == "" && sessionID == "" {
		log.GetLogger().Debug("Delete consent called without a principal; nothing to do")
		return nil
	}

	if err := store.DeleteConsentByPrincipal(userID, sessionID); err != nil {
		return err
	}
	invalidatePrincipal(userID, sessionID)

	appendAuditEntry(auditModel.AuditEntry{
		UserID:     userID,
		SessionID:  sessionID,
		Action:     constants.AuditActionDelete,
		RecordedAt: time.Now().UTC(),
	})
	return nil
}

// GetCategories merges the static category catalog with the principal's
// stored preferences. Without a record the optional categories are off.
func (cs *ConsentService) GetCategories(userID, sessionID string) ([]model.CookieCategory, error) {

	var prefs model.Preferences
	if userID != "" || sessionID != "" {
		record, err := cs.GetConsent(userID, sessionID)
		if err != nil {
			return nil, err
		}
		if record != nil {
			prefs = record.Preferences
		}
	}
	return model.CategoryCatalog(prefs), nil
}

// appendAuditEntry writes the audit document when the audit store is
// enabled. Failures are logged and swallowed so consent writes never block.
func appendAuditEntry(entry auditModel.AuditEntry) {

	if !config.GetRuntime().Config.AuditStore.Enabled {
		return
	}
	if err := auditStore.AppendAuditEntry(entry); err != nil {
		log.GetLogger().Warn("Consent audit entry could not be recorded.", log.Error(err))
	}
}

func principalCacheKey(userID, sessionID string) string {
	if userID != "" {
		return "user:" + userID
	}
	return "session:" + sessionID
}

// invalidatePrincipal drops both cache keys; an authenticated save also
// supersedes the session-keyed record from the same browser session.
func invalidatePrincipal(userID, sessionID string) {
	if userID != "" {
		getConsentCache().Delete("user:" + userID)
	}
	if sessionID != "" {
		getConsentCache().Delete("session:" + sessionID)
	}
}

func missingPrincipalError() error {
	return errors2.NewClientError(errors2.ErrorMessage{
		Code:        errors2.MISSING_PRINCIPAL.Code,
		Message:     errors2.MISSING_PRINCIPAL.Message,
		Description: "Either an authenticated user or a session id is required.",
	}, http.StatusUnauthorized)
}
