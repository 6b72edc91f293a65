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

import "time"

// Preferences is the per-category consent decision set. The category set is
// fixed; strictly necessary cookies are always on and cannot be opted out of.
type Preferences struct {
	StrictlyNecessary bool `json:"strictly_necessary" bson:"strictly_necessary"`
	Functional        bool `json:"functional" bson:"functional"`
	Analytics         bool `json:"analytics" bson:"analytics"`
	Marketing         bool `json:"marketing" bson:"marketing"`
}

// Normalize forces the invariant that strictly necessary cookies are
// always consented to.
func (p Preferences) Normalize() Preferences {
	p.StrictlyNecessary = true
	return p
}

// ConsentRecord is the server-side consent record for a principal. Exactly
// one of UserID or SessionID identifies the owner: authenticated users are
// keyed by user id, anonymous visitors by their durable session id.
type ConsentRecord struct {
	ID          string      `json:"id"`
	UserID      string      `json:"user_id,omitempty"`
	SessionID   string      `json:"session_id,omitempty"`
	Preferences Preferences `json:"preferences"`
	Version     string      `json:"version"`
	Timestamp   int64       `json:"timestamp"` // Epoch milliseconds when consent was captured.
	ClientIP    string      `json:"-"`
	UserAgent   string      `json:"-"`
	CreatedAt   time.Time   `json:"created_at"`
}

// UpsertConsentRequest is the POST /cookie-consent payload.
type UpsertConsentRequest struct {
	Preferences Preferences `json:"preferences"`
	Version     string      `json:"version"`
	Timestamp   int64       `json:"timestamp"`
	SessionID   string      `json:"session_id"`
}

// ConsentResponse is the GET /cookie-consent payload. Consent is null when
// no record exists for the principal; that is a success, not an error.
type ConsentResponse struct {
	Success bool           `json:"success"`
	Consent *ConsentRecord `json:"consent"`
}

// CookieCategory describes one entry of the static cookie category catalog.
// Enabled is derived from the caller's preferences at read time.
type CookieCategory struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Required    bool   `json:"required"`
	Enabled     bool   `json:"enabled"`
}
