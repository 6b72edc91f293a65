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

// Package consentclient implements the cookie consent state machine used by
// InvestHub clients: a durable local consent store, a consent service that
// owns every state transition and drives best-effort synchronization with
// the consent endpoint, and a reconciler that resolves local versus server
// truth when the authentication state changes.
package consentclient

import "time"

// Preferences is the per-category consent decision set. The category set is
// fixed; strictly necessary cookies are always on and cannot be opted out of.
type Preferences struct {
	StrictlyNecessary bool `json:"strictly_necessary"`
	Functional        bool `json:"functional"`
	Analytics         bool `json:"analytics"`
	Marketing         bool `json:"marketing"`
}

// Normalize forces the invariant that strictly necessary cookies are
// always consented to.
func (p Preferences) Normalize() Preferences {
	p.StrictlyNecessary = true
	return p
}

// DefaultPreferences is the state before any consent has been captured:
// only the strictly necessary category is on.
func DefaultPreferences() Preferences {
	return Preferences{StrictlyNecessary: true}
}

// AllAccepted returns preferences with every category consented to.
func AllAccepted() Preferences {
	return Preferences{
		StrictlyNecessary: true,
		Functional:        true,
		Analytics:         true,
		Marketing:         true,
	}
}

// ConsentRecord is the locally persisted consent state. It is overwritten
// wholesale by every consent action, never partially patched.
type ConsentRecord struct {
	Version      string      `json:"version"`
	Timestamp    int64       `json:"timestamp"` // Epoch milliseconds when consent was captured.
	HasConsented bool        `json:"has_consented"`
	Categories   Preferences `json:"categories"`
}

// Category describes one entry of the cookie category catalog as presented
// to the consent banner and preferences surface.
type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Required    bool   `json:"required"`
	Enabled     bool   `json:"enabled"`
}

// ServerConsent is the consent record as returned by the consent endpoint.
type ServerConsent struct {
	ID          string      `json:"id"`
	Preferences Preferences `json:"preferences"`
	Version     string      `json:"version"`
	Timestamp   int64       `json:"timestamp"`
	CreatedAt   time.Time   `json:"created_at"`
}

// Category identifiers.
const (
	CategoryStrictlyNecessary = "strictly_necessary"
	CategoryFunctional        = "functional"
	CategoryAnalytics         = "analytics"
	CategoryMarketing         = "marketing"
)
