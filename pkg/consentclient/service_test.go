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
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// memoryStore is an in-memory Store for tests.
type memoryStore struct {
	mu        sync.Mutex
	record    *ConsentRecord
	sessionID string
}

func newMemoryStore() *memoryStore {
	return &memoryStore{sessionID: "session-test-001"}
}

func (m *memoryStore) Read() (ConsentRecord, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.record == nil {
		return ConsentRecord{}, false
	}
	return *m.record, true
}

func (m *memoryStore) Write(record ConsentRecord) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record = &record
}

func (m *memoryStore) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record = nil
}

func (m *memoryStore) SessionID() string {
	return m.sessionID
}

// fakeTransport records calls and can be made to fail.
type fakeTransport struct {
	mu         sync.Mutex
	saved      []SyncPayload
	deletes    int
	fetches    int
	remote     *ServerConsent
	failSave   bool
	failDelete bool
	failFetch  bool
}

func (f *fakeTransport) FetchConsent(ctx context.Context, sessionID string) (*ServerConsent, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fetches++
	if f.failFetch {
		return nil, errors.New("fetch failed")
	}
	return f.remote, nil
}

func (f *fakeTransport) SaveConsent(ctx context.Context, payload SyncPayload) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failSave {
		return errors.New("save failed")
	}
	f.saved = append(f.saved, payload)
	return nil
}

func (f *fakeTransport) DeleteConsent(ctx context.Context, sessionID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failDelete {
		return errors.New("delete failed")
	}
	f.deletes++
	return nil
}

func (f *fakeTransport) savedCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.saved)
}

func newTestService(transport *fakeTransport) (*Service, *memoryStore) {
	store := newMemoryStore()
	svc := NewService(store, transport, ServiceConfig{Version: "1.0", ExpiryDays: 365})
	return svc, store
}

func Test_BannerGate(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(&fakeTransport{})

	assert.False(t, svc.HasConsent())
	assert.True(t, svc.ShouldShowBanner(), "Fresh client must show the banner")

	svc.AcceptAll(ctx)
	assert.False(t, svc.ShouldShowBanner(), "Banner must hide after accepting")

	svc.ClearConsent(ctx)
	assert.True(t, svc.ShouldShowBanner(), "Banner must reappear after clearing")

	svc.RejectAll(ctx)
	assert.False(t, svc.ShouldShowBanner(), "Rejecting is also a complete consent decision")
}

func Test_SaveConsent_ForcesStrictlyNecessary(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(&fakeTransport{})

	svc.SaveConsent(ctx, Preferences{
		StrictlyNecessary: false,
		Functional:        true,
	})

	prefs := svc.GetPreferences()
	assert.True(t, prefs.StrictlyNecessary, "Strictly necessary can never be opted out of")
	assert.True(t, prefs.Functional)
	assert.False(t, prefs.Analytics)
	assert.False(t, prefs.Marketing)
}

func Test_AcceptAll_RejectAll(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(&fakeTransport{})

	svc.AcceptAll(ctx)
	assert.Equal(t, AllAccepted(), svc.GetPreferences())

	svc.RejectAll(ctx)
	assert.Equal(t, DefaultPreferences(), svc.GetPreferences())
}

func Test_SaveConsent_Idempotent(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(&fakeTransport{})

	prefs := Preferences{StrictlyNecessary: true, Analytics: true}
	svc.SaveConsent(ctx, prefs)
	first := svc.GetPreferences()
	svc.SaveConsent(ctx, prefs)
	second := svc.GetPreferences()

	assert.Equal(t, first, second, "Saving the same preferences twice must be observably identical")
	assert.False(t, svc.ShouldShowBanner())
}

func Test_ConsentExpiry(t *testing.T) {
	ctx := context.Background()
	store := newMemoryStore()
	now := time.Now()
	svc := NewService(store, &fakeTransport{}, ServiceConfig{
		Version:    "1.0",
		ExpiryDays: 30,
		Now:        func() time.Time { return now },
	})

	svc.AcceptAll(ctx)
	assert.True(t, svc.IsConsentValid())

	// Jump past the retention window.
	now = now.Add(31 * 24 * time.Hour)
	assert.True(t, svc.HasConsent(), "The record is still present")
	assert.False(t, svc.IsConsentValid(), "An expired record forces re-consent")
	assert.True(t, svc.ShouldShowBanner())
}

func Test_VersionMismatch(t *testing.T) {
	store := newMemoryStore()
	store.Write(ConsentRecord{
		Version:      "0.9",
		Timestamp:    time.Now().UnixMilli(),
		HasConsented: true,
		Categories:   AllAccepted(),
	})
	svc := NewService(store, &fakeTransport{}, ServiceConfig{Version: "1.0", ExpiryDays: 365})

	assert.True(t, svc.HasConsent())
	assert.False(t, svc.IsConsentValid(), "A schema version change forces re-consent")
	assert.True(t, svc.ShouldShowBanner())
}

func Test_ClearConsent(t *testing.T) {
	ctx := context.Background()
	transport := &fakeTransport{}
	svc, _ := newTestService(transport)

	svc.AcceptAll(ctx)
	svc.ClearConsent(ctx)

	assert.Equal(t, DefaultPreferences(), svc.GetPreferences())
	assert.True(t, svc.ShouldShowBanner())
	assert.Equal(t, 1, transport.deletes)
}

func Test_RemoteFailure_DoesNotBlockLocal(t *testing.T) {
	ctx := context.Background()
	transport := &fakeTransport{failSave: true, failDelete: true}
	svc, _ := newTestService(transport)

	var events []Preferences
	unsubscribe := svc.Subscribe(func(p Preferences) { events = append(events, p) })
	defer unsubscribe()

	svc.AcceptAll(ctx)
	assert.Equal(t, AllAccepted(), svc.GetPreferences(), "Local state reflects the change despite the failed sync")
	assert.Len(t, events, 1, "The change event fires regardless of the remote outcome")

	svc.ClearConsent(ctx)
	assert.True(t, svc.ShouldShowBanner(), "Local clearing succeeds even when the remote delete fails")
}

func Test_Notification_OncePerSave(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(&fakeTransport{})

	var events []Preferences
	unsubscribe := svc.Subscribe(func(p Preferences) { events = append(events, p) })

	svc.AcceptAll(ctx)
	svc.RejectAll(ctx)
	assert.Len(t, events, 2)
	assert.Equal(t, AllAccepted(), events[0])
	assert.Equal(t, DefaultPreferences(), events[1])

	unsubscribe()
	svc.AcceptAll(ctx)
	assert.Len(t, events, 2, "Unsubscribed listeners receive no further events")
}

func Test_SyncPayload_CarriesSessionID(t *testing.T) {
	ctx := context.Background()
	transport := &fakeTransport{}
	svc, store := newTestService(transport)

	svc.AcceptAll(ctx)
	assert.Equal(t, 1, transport.savedCount())
	assert.Equal(t, store.SessionID(), transport.saved[0].SessionID)
	assert.Equal(t, "1.0", transport.saved[0].Version)
}

func Test_GetCategories(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(&fakeTransport{})

	svc.SaveConsent(ctx, Preferences{Analytics: true})
	categories := svc.GetCategories()
	assert.Len(t, categories, 4)

	byID := map[string]Category{}
	for _, c := range categories {
		byID[c.ID] = c
	}
	assert.True(t, byID[CategoryStrictlyNecessary].Required)
	assert.True(t, byID[CategoryStrictlyNecessary].Enabled)
	assert.True(t, byID[CategoryAnalytics].Enabled)
	assert.False(t, byID[CategoryFunctional].Enabled)
	assert.False(t, byID[CategoryMarketing].Enabled)
}
