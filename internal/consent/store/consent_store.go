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

package store

import (
	"fmt"
	"time"

	model "github.com/investhub/cookie-consent-service/internal/consent/model"
	"github.com/investhub/cookie-consent-service/internal/system/database/provider"
	errors2 "github.com/investhub/cookie-consent-service/internal/system/errors"
	"github.com/investhub/cookie-consent-service/internal/system/log"
)

// UpsertConsent replaces the consent record for the record's principal.
// Records are overwritten wholesale, never patched.
func UpsertConsent(record model.ConsentRecord) error {

	dbClient, err := provider.NewDBProvider().GetDBClient()
	logger := log.GetLogger()
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to get db client for upserting consent record: %s", record.ID)
		logger.Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.UPSERT_CONSENT.Code,
			Message:     errors2.UPSERT_CONSENT.Message,
			Description: errorMsg,
		}, err)
	}
	defer dbClient.Close()

	tx, err := dbClient.BeginTx()
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to begin transaction for upserting consent record: %s", record.ID)
		logger.Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.UPSERT_CONSENT.Code,
			Message:     errors2.UPSERT_CONSENT.Message,
			Description: errorMsg,
		}, err)
	}

	deleteQuery, deleteArgs := principalDeleteQuery(record.UserID, record.SessionID)
	if _, err = tx.Exec(deleteQuery, deleteArgs...); err == nil {
		insertQuery := `INSERT INTO cookie_consents
			(consent_id, user_id, session_id, strictly_necessary, functional, analytics, marketing,
			 version, consent_timestamp, client_ip, user_agent, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
		_, err = tx.Exec(insertQuery, record.ID, nullable(record.UserID), nullable(record.SessionID),
			record.Preferences.StrictlyNecessary, record.Preferences.Functional,
			record.Preferences.Analytics, record.Preferences.Marketing,
			record.Version, record.Timestamp, record.ClientIP, record.UserAgent, record.CreatedAt)
	}
	if err != nil {
		if errRollback := tx.Rollback(); errRollback != nil {
			errorMsg := fmt.Sprintf("Failed to rollback upserting consent record: %s", record.ID)
			logger.Debug(errorMsg, log.Error(errRollback))
			return errors2.NewServerError(errors2.ErrorMessage{
				Code:        errors2.UPSERT_CONSENT.Code,
				Message:     errors2.UPSERT_CONSENT.Message,
				Description: errorMsg,
			}, errRollback)
		}
		errorMsg := fmt.Sprintf("Failed to execute query for upserting consent record: %s", record.ID)
		logger.Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.UPSERT_CONSENT.Code,
			Message:     errors2.UPSERT_CONSENT.Message,
			Description: errorMsg,
		}, err)
	}
	logger.Info(fmt.Sprintf("Successfully upserted consent record: %s", record.ID))
	return tx.Commit()
}

// GetConsentByPrincipal retrieves the consent record for the given principal.
// Returns nil when no record exists.
func GetConsentByPrincipal(userID, sessionID string) (*model.ConsentRecord, error) {

	dbClient, err := provider.NewDBProvider().GetDBClient()
	logger := log.GetLogger()
	if err != nil {
		errorMsg := "Failed to get db client for fetching consent record."
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.FETCH_CONSENT.Code,
			Message:     errors2.FETCH_CONSENT.Message,
			Description: errorMsg,
		}, err)
	}
	defer dbClient.Close()

	query, arg := principalFilter(`SELECT consent_id, user_id, session_id, strictly_necessary, functional,
		analytics, marketing, version, consent_timestamp, client_ip, user_agent, created_at
		FROM cookie_consents WHERE `, userID, sessionID)
	results, err := dbClient.ExecuteQuery(query, arg)
	if err != nil {
		errorMsg := "Failed to execute query for fetching consent record."
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.FETCH_CONSENT.Code,
			Message:     errors2.FETCH_CONSENT.Message,
			Description: errorMsg,
		}, err)
	}

	if len(results) == 0 {
		logger.Debug("No consent record found for principal")
		return nil, nil
	}

	record := scanConsentRow(results[0])
	return &record, nil
}

// DeleteConsentByPrincipal removes the consent record for the given
// principal. Deleting a missing record is a no-op.
func DeleteConsentByPrincipal(userID, sessionID string) error {

	dbClient, err := provider.NewDBProvider().GetDBClient()
	logger := log.GetLogger()
	if err != nil {
		errorMsg := "Failed to get db client for deleting consent record."
		logger.Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.DELETE_CONSENT.Code,
			Message:     errors2.DELETE_CONSENT.Message,
			Description: errorMsg,
		}, err)
	}
	defer dbClient.Close()

	tx, err := dbClient.BeginTx()
	if err != nil {
		errorMsg := "Failed to begin transaction for deleting consent record."
		logger.Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.DELETE_CONSENT.Code,
			Message:     errors2.DELETE_CONSENT.Message,
			Description: errorMsg,
		}, err)
	}

	query, arg := principalFilter("DELETE FROM cookie_consents WHERE ", userID, sessionID)
	if _, err = tx.Exec(query, arg); err != nil {
		if errRollback := tx.Rollback(); errRollback != nil {
			logger.Debug("Failed to rollback deleting consent record.", log.Error(errRollback))
		}
		errorMsg := "Failed to execute query for deleting consent record."
		logger.Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.DELETE_CONSENT.Code,
			Message:     errors2.DELETE_CONSENT.Message,
			Description: errorMsg,
		}, err)
	}
	logger.Info("Successfully deleted consent record for principal")
	return tx.Commit()
}

// principalFilter appends the owner predicate: authenticated users are keyed
// by user id, anonymous visitors by session id.
func principalFilter(queryPrefix, userID, sessionID string) (string, interface{}) {
	if userID != "" {
		return queryPrefix + "user_id = $1", userID
	}
	return queryPrefix + "session_id = $1", sessionID
}

// principalDeleteQuery removes every row the new record supersedes. An
// authenticated save also clears the anonymous record left over from the
// same session, otherwise the insert would trip the session unique index.
func principalDeleteQuery(userID, sessionID string) (string, []interface{}) {
	if userID != "" && sessionID != "" {
		return "DELETE FROM cookie_consents WHERE user_id = $1 OR session_id = $2",
			[]interface{}{userID, sessionID}
	}
	query, arg := principalFilter("DELETE FROM cookie_consents WHERE ", userID, sessionID)
	return query, []interface{}{arg}
}

func nullable(value string) interface{} {
	if value == "" {
		return nil
	}
	return value
}

func scanConsentRow(row map[string]interface{}) model.ConsentRecord {
	return model.ConsentRecord{
		ID:        asString(row["consent_id"]),
		UserID:    asString(row["user_id"]),
		SessionID: asString(row["session_id"]),
		Preferences: model.Preferences{
			StrictlyNecessary: asBool(row["strictly_necessary"]),
			Functional:        asBool(row["functional"]),
			Analytics:         asBool(row["analytics"]),
			Marketing:         asBool(row["marketing"]),
		},
		Version:   asString(row["version"]),
		Timestamp: asInt64(row["consent_timestamp"]),
		ClientIP:  asString(row["client_ip"]),
		UserAgent: asString(row["user_agent"]),
		CreatedAt: asTime(row["created_at"]),
	}
}

func asString(value interface{}) string {
	switch v := value.(type) {
	case string:
		return v
	case []byte:
		return string(v)
	default:
		return ""
	}
}

func asBool(value interface{}) bool {
	b, ok := value.(bool)
	return ok && b
}

func asInt64(value interface{}) int64 {
	switch v := value.(type) {
	case int64:
		return v
	case int:
		return int64(v)
	default:
		return 0
	}
}

func asTime(value interface{}) time.Time {
	t, ok := value.(time.Time)
	if !ok {
		return time.Time{}
	}
	return t
}
