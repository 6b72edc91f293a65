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
	"context"
	"time"

	model "github.com/investhub/cookie-consent-service/internal/audit/model"
	"github.com/investhub/cookie-consent-service/internal/system/database/provider"
	errors2 "github.com/investhub/cookie-consent-service/internal/system/errors"
	"github.com/investhub/cookie-consent-service/internal/system/log"
)

// AppendAuditEntry inserts one consent audit document. Callers treat audit
// failures as non-fatal; the consent write itself must never be blocked.
func AppendAuditEntry(entry model.AuditEntry) error {

	logger := log.GetLogger()

	collection, err := provider.GetAuditCollection()
	if err != nil {
		logger.Debug("Failed to get audit log collection.", log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.AUDIT_CLIENT_INIT.Code,
			Message:     errors2.AUDIT_CLIENT_INIT.Message,
			Description: "Failed to get audit log collection.",
		}, err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := collection.InsertOne(ctx, entry); err != nil {
		logger.Debug("Failed to append consent audit entry.", log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.AUDIT_WRITE.Code,
			Message:     errors2.AUDIT_WRITE.Message,
			Description: "Failed to append consent audit entry.",
		}, err)
	}
	return nil
}
