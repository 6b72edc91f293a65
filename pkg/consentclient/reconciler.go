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

	"github.com/investhub/cookie-consent-service/internal/system/log"
)

// Reconcile resolves local versus server consent state. Server wins when
// the user is authenticated and the server holds a record; local state is
// pushed up (pendingSync) when the server holds none; local is otherwise
// authoritative. The function is pure so the merge policy is testable in
// isolation from any network call.
func Reconcile(local, remote *Preferences, authenticated bool) (resolved Preferences, pendingSync bool) {
	switch {
	case authenticated && remote != nil:
		return remote.Normalize(), false
	case authenticated && local != nil:
		return local.Normalize(), true
	case local != nil:
		return local.Normalize(), false
	default:
		return DefaultPreferences(), false
	}
}

// Reconciler bridges the consent service to reactive consumers (banner,
// preferences surface, analytics gating). It loads local state exactly once
// per lifetime and re-runs server reconciliation on every transition into
// the authenticated state, so logging in after anonymous browsing triggers
// a fresh sync.
type Reconciler struct {
	service *Service

	mu               sync.Mutex
	localLoaded      bool
	wasAuthenticated bool
	prefs            Preferences
	showBanner       bool

	unsubscribe func()
}

// NewReconciler creates a reconciler subscribed to the service's
// consent-changed notifications. Callers must Close it on teardown.
func NewReconciler(service *Service) *Reconciler {
	r := &Reconciler{
		service:    service,
		prefs:      DefaultPreferences(),
		showBanner: true,
	}
	r.unsubscribe = service.Subscribe(r.onConsentChanged)
	return r
}

// SetAuthState feeds the current authentication state into the state
// machine. While auth is still loading nothing runs; the first settled call
// loads local preferences immediately so the UI never blocks on network.
func (r *Reconciler) SetAuthState(ctx context.Context, authenticated, loading bool) {
	if loading {
		return
	}

	r.mu.Lock()
	firstLoad := !r.localLoaded
	r.localLoaded = true
	needsServerSync := authenticated && (firstLoad || !r.wasAuthenticated)
	r.wasAuthenticated = authenticated
	r.mu.Unlock()

	if firstLoad {
		r.refresh()
	}
	if needsServerSync {
		r.reconcileWithServer(ctx)
		r.refresh()
	}
}

// Preferences returns the current view-state snapshot.
func (r *Reconciler) Preferences() Preferences {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.prefs
}

// ShouldShowBanner returns the published banner gate.
func (r *Reconciler) ShouldShowBanner() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.showBanner
}

// AcceptAll consents to every category. State updates arrive through the
// consent-changed notification, keeping every subscriber consistent.
func (r *Reconciler) AcceptAll(ctx context.Context) {
	r.service.AcceptAll(ctx)
}

// RejectAll declines every optional category.
func (r *Reconciler) RejectAll(ctx context.Context) {
	r.service.RejectAll(ctx)
}

// SavePreferences persists an explicit per-category decision. The banner
// and the preferences surface share this single save path.
func (r *Reconciler) SavePreferences(ctx context.Context, prefs Preferences) {
	r.service.SaveConsent(ctx, prefs)
}

// ClearConsent wipes the local decision and the server record, after which
// the banner reappears.
func (r *Reconciler) ClearConsent(ctx context.Context) {
	r.service.ClearConsent(ctx)
	r.refresh()
}

// Close unsubscribes from consent-changed notifications.
func (r *Reconciler) Close() {
	if r.unsubscribe != nil {
		r.unsubscribe()
		r.unsubscribe = nil
	}
}

// reconcileWithServer runs the authenticated merge: fetch the server
// record, let the pure Reconcile policy decide, then either adopt the
// server truth locally or push the local record up. A failed fetch keeps
// local state.
func (r *Reconciler) reconcileWithServer(ctx context.Context) {
	remote, err := r.service.fetchFromServer(ctx)
	if err != nil {
		log.GetLogger().Debug("Consent reconciliation fetch failed; keeping local state.", log.Error(err))
		return
	}

	var local *Preferences
	if r.service.HasConsent() {
		prefs := r.service.GetPreferences()
		local = &prefs
	}
	var remotePrefs *Preferences
	if remote != nil {
		remotePrefs = &remote.Preferences
	}

	_, pendingSync := Reconcile(local, remotePrefs, true)
	if remote != nil {
		r.service.applyServerConsent(*remote)
		return
	}
	if pendingSync {
		r.service.pushToServer(ctx)
	}
}

// onConsentChanged republishes the new preferences and recomputes the
// banner gate from the service, the only allowed source for it.
func (r *Reconciler) onConsentChanged(prefs Preferences) {
	showBanner := r.service.ShouldShowBanner()
	r.mu.Lock()
	r.prefs = prefs
	r.showBanner = showBanner
	r.mu.Unlock()
}

// refresh pulls a fresh snapshot from the service outside the notification
// path (initial local load, clears).
func (r *Reconciler) refresh() {
	prefs := r.service.GetPreferences()
	showBanner := r.service.ShouldShowBanner()
	r.mu.Lock()
	r.prefs = prefs
	r.showBanner = showBanner
	r.mu.Unlock()
}
