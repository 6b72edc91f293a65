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

package models

import (
	"time"

	consentModel "github.com/investhub/cookie-consent-service/internal/consent/model"
)

// AuditEntry is one append-only record of a consent mutation. Entries are
// never updated or deleted by the service.
type AuditEntry struct {
	UserID      string                    `bson:"user_id,omitempty"`
	SessionID   string                    `bson:"session_id,omitempty"`
	Action      string                    `bson:"action"`
	Preferences *consentModel.Preferences `bson:"preferences,omitempty"`
	Version     string                    `bson:"version,omitempty"`
	ClientIP    string                    `bson:"client_ip,omitempty"`
	UserAgent   string                    `bson:"user_agent,omitempty"`
	RecordedAt  time.Time                 `bson:"recorded_at"`
}
