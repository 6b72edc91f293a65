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
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_FileStore_ReadAbsent(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	_, ok := store.Read()
	assert.False(t, ok, "A missing record reads as absent, not as an error")
}

func Test_FileStore_WriteReadRoundtrip(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	record := ConsentRecord{
		Version:      "1.0",
		Timestamp:    time.Now().UnixMilli(),
		HasConsented: true,
		Categories:   Preferences{StrictlyNecessary: true, Analytics: true},
	}
	store.Write(record)

	got, ok := store.Read()
	require.True(t, ok)
	assert.Equal(t, record, got)
}

func Test_FileStore_MalformedRecordIsAbsent(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFileStore(dir)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, recordFileName), []byte("{not json"), 0o600))

	_, ok := store.Read()
	assert.False(t, ok, "A malformed record reads as absent")
}

func Test_FileStore_ClearKeepsSessionID(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	sessionID := store.SessionID()
	require.NotEmpty(t, sessionID)

	store.Write(ConsentRecord{Version: "1.0", HasConsented: true, Categories: DefaultPreferences()})
	store.Clear()

	_, ok := store.Read()
	assert.False(t, ok)
	assert.Equal(t, sessionID, store.SessionID(), "The anonymous session id survives Clear")
}

func Test_FileStore_SessionIDIsStable(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFileStore(dir)
	require.NoError(t, err)

	first := store.SessionID()

	// A second store over the same directory sees the same id.
	reopened, err := NewFileStore(dir)
	require.NoError(t, err)
	assert.Equal(t, first, reopened.SessionID())
}

func Test_FileStore_WritesPreferencesCopy(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFileStore(dir)
	require.NoError(t, err)

	store.Write(ConsentRecord{
		Version:      "1.0",
		HasConsented: true,
		Categories:   AllAccepted(),
	})

	data, err := os.ReadFile(filepath.Join(dir, preferencesFileName))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"strictly_necessary":true`)
}
