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
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

// Transport talks to the remote consent endpoint. Every call is best-effort
// from the service's perspective: callers catch and log failures instead of
// propagating them.
type Transport interface {
	// FetchConsent returns the server record for the current principal, or
	// nil when the server holds none. A 401 means "no server record", not
	// an error.
	FetchConsent(ctx context.Context, sessionID string) (*ServerConsent, error)
	SaveConsent(ctx context.Context, payload SyncPayload) error
	DeleteConsent(ctx context.Context, sessionID string) error
}

// SyncPayload is the POST /cookie-consent body.
type SyncPayload struct {
	Preferences Preferences `json:"preferences"`
	Version     string      `json:"version"`
	Timestamp   int64       `json:"timestamp"`
	SessionID   string      `json:"session_id"`
}

// TokenProvider supplies the bearer token of the authenticated user, or an
// empty string for anonymous visitors.
type TokenProvider func() string

// HTTPTransport is the default Transport over the consent REST endpoint.
type HTTPTransport struct {
	baseURL    string
	httpClient *http.Client
	token      TokenProvider
}

// NewHTTPTransport creates a transport for the consent endpoint rooted at
// baseURL (for example "https://api.investhub.io/api/v1").
func NewHTTPTransport(baseURL string, httpClient *http.Client, token TokenProvider) *HTTPTransport {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &HTTPTransport{
		baseURL:    baseURL,
		httpClient: httpClient,
		token:      token,
	}
}

type fetchConsentResponse struct {
	Success bool           `json:"success"`
	Consent *ServerConsent `json:"consent"`
}

// FetchConsent implements Transport.
func (t *HTTPTransport) FetchConsent(ctx context.Context, sessionID string) (*ServerConsent, error) {

	endpoint := t.baseURL + "/cookie-consent"
	if sessionID != "" {
		endpoint += "?session_id=" + url.QueryEscape(sessionID)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	t.setHeaders(req)

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusNotFound:
		// No server-side record for this principal.
		return nil, nil
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("consent fetch returned status %d", resp.StatusCode)
	}

	var body fetchConsentResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, err
	}
	return body.Consent, nil
}

// SaveConsent implements Transport.
func (t *HTTPTransport) SaveConsent(ctx context.Context, payload SyncPayload) error {

	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.baseURL+"/cookie-consent", bytes.NewReader(data))
	if err != nil {
		return err
	}
	t.setHeaders(req)
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("consent save returned status %d", resp.StatusCode)
	}
	return nil
}

// DeleteConsent implements Transport.
func (t *HTTPTransport) DeleteConsent(ctx context.Context, sessionID string) error {

	endpoint := t.baseURL + "/cookie-consent"
	if sessionID != "" {
		endpoint += "?session_id=" + url.QueryEscape(sessionID)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, endpoint, nil)
	if err != nil {
		return err
	}
	t.setHeaders(req)

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	// Deleting a missing record is a no-op on the server; only transport
	// level failures and server errors are reported.
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusUnauthorized {
		return fmt.Errorf("consent delete returned status %d", resp.StatusCode)
	}
	return nil
}

func (t *HTTPTransport) setHeaders(req *http.Request) {
	if t.token != nil {
		if token := t.token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}
}
