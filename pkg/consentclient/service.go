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

package consentclient

import (
	"context"
	"sync"
	"time"

	"github.com/investhub/cookie-consent-service/internal/system/log"
)

// ServiceConfig carries the consent schema version and retention window the
// service validates records against. Now is injectable for tests.
type ServiceConfig struct {
	Version    string
	ExpiryDays int
	Now        func() time.Time
}

// Service is the single authority for consent state transitions. Every
// consent action writes locally first, then attempts a best-effort sync with
// the consent endpoint; a remote failure never rolls back local state.
type Service struct {
	store     Store
	transport Transport
	version   string
	expiry    time.Duration
	now       func() time.Time

	mu          sync.Mutex
	subscribers map[int]func(Preferences)
	nextSubID   int
}

// NewService creates a consent service. Store and transport are injected so
// tests can substitute fakes.
func NewService(store Store, transport Transport, cfg ServiceConfig) *Service {
	if cfg.Version == "" {
		cfg.Version = "1.0"
	}
	if cfg.ExpiryDays <= 0 {
		cfg.ExpiryDays = 365
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &Service{
		store:       store,
		transport:   transport,
		version:     cfg.Version,
		expiry:      time.Duration(cfg.ExpiryDays) * 24 * time.Hour,
		now:         cfg.Now,
		subscribers: make(map[int]func(Preferences)),
	}
}

// HasConsent reports whether any consent decision has been captured.
func (s *Service) HasConsent() bool {
	record, ok := s.store.Read()
	return ok && record.HasConsented
}

// IsConsentValid reports whether the stored record is still within the
// retention window and matches the current consent schema version. A stale
// or mismatched record forces re-consent without being physically removed.
func (s *Service) IsConsentValid() bool {
	record, ok := s.store.Read()
	if !ok {
		return false
	}
	if record.Version != s.version {
		return false
	}
	capturedAt := time.UnixMilli(record.Timestamp)
	return s.now().Before(capturedAt.Add(s.expiry))
}

// ShouldShowBanner is the single gate the UI uses for banner visibility.
func (s *Service) ShouldShowBanner() bool {
	return !s.HasConsent() || !s.IsConsentValid()
}

// GetPreferences returns the stored preferences, or the default set when no
// record exists. Strictly necessary is always reported as consented.
func (s *Service) GetPreferences() Preferences {
	record, ok := s.store.Read()
	if !ok {
		return DefaultPreferences()
	}
	return record.Categories.Normalize()
}

// SaveConsent captures a consent decision: it writes the record locally,
// attempts a best-effort server sync and then notifies subscribers. The
// local write is the operation's success criterion; the notification fires
// exactly once per call regardless of the remote outcome.
func (s *Service) SaveConsent(ctx context.Context, prefs Preferences) {
	prefs = prefs.Normalize()
	record := ConsentRecord{
		Version:      s.version,
		Timestamp:    s.now().UnixMilli(),
		HasConsented: true,
		Categories:   prefs,
	}
	s.store.Write(record)
	s.saveConsentToServer(ctx, record)
	s.notify(prefs)
}

// AcceptAll consents to every category.
func (s *Service) AcceptAll(ctx context.Context) {
	s.SaveConsent(ctx, AllAccepted())
}

// RejectAll declines every optional category.
func (s *Service) RejectAll(ctx context.Context) {
	s.SaveConsent(ctx, DefaultPreferences())
}

// ClearConsent removes the local record and issues a best-effort remote
// delete. Local clearing succeeds even when the remote delete fails or the
// caller is unauthenticated.
func (s *Service) ClearConsent(ctx context.Context) {
	s.store.Clear()
	if err := s.transport.DeleteConsent(ctx, s.store.SessionID()); err != nil {
		log.GetLogger().Debug("Best-effort consent delete failed; continuing local-only.", log.Error(err))
	}
}

// GetCategories merges the static category catalog with the current
// preferences; a category is enabled when it is required or consented to.
func (s *Service) GetCategories() []Category {
	return categoryCatalog(s.GetPreferences())
}

// SessionID exposes the anonymous session identifier attached to every
// outbound sync call.
func (s *Service) SessionID() string {
	return s.store.SessionID()
}

// Subscribe registers a consent-changed listener and returns its
// unsubscribe function. Listeners are invoked at most once per save call,
// with no ordering guarantee between them.
func (s *Service) Subscribe(fn func(Preferences)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextSubID
	s.nextSubID++
	s.subscribers[id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subscribers, id)
	}
}

// applyServerConsent overwrites local state with the server record during
// authenticated reconciliation. No sync-back is attempted; subscribers are
// notified so every consumer converges on the server truth.
func (s *Service) applyServerConsent(remote ServerConsent) {
	record := ConsentRecord{
		Version:      remote.Version,
		Timestamp:    remote.Timestamp,
		HasConsented: true,
		Categories:   remote.Preferences.Normalize(),
	}
	s.store.Write(record)
	s.notify(record.Categories)
}

// pushToServer uploads the current local record, used when the server has
// no record for a freshly authenticated user. Best-effort.
func (s *Service) pushToServer(ctx context.Context) {
	record, ok := s.store.Read()
	if !ok || !record.HasConsented {
		return
	}
	s.saveConsentToServer(ctx, record)
}

// fetchFromServer returns the server record for the current principal, or
// nil when the server holds none.
func (s *Service) fetchFromServer(ctx context.Context) (*ServerConsent, error) {
	return s.transport.FetchConsent(ctx, s.store.SessionID())
}

// saveConsentToServer is fire-and-forget from the caller's perspective:
// failures are logged and swallowed so no remote outage can block a user
// from dismissing the banner.
func (s *Service) saveConsentToServer(ctx context.Context, record ConsentRecord) {
	payload := SyncPayload{
		Preferences: record.Categories,
		Version:     record.Version,
		Timestamp:   record.Timestamp,
		SessionID:   s.store.SessionID(),
	}
	if err := s.transport.SaveConsent(ctx, payload); err != nil {
		log.GetLogger().Debug("Best-effort consent sync failed; continuing local-only.", log.Error(err))
	}
}

func (s *Service) notify(prefs Preferences) {
	s.mu.Lock()
	listeners := make([]func(Preferences), 0, len(s.subscribers))
	for _, fn := range s.subscribers {
		listeners = append(listeners, fn)
	}
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(prefs)
	}
}
