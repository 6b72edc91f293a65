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
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/investhub/cookie-consent-service/internal/system/log"
)

// Store is the durable local persistence for the consent record. A missing
// or malformed record reads as absent, never as an error.
type Store interface {
	Read() (ConsentRecord, bool)
	Write(record ConsentRecord)
	Clear()
	SessionID() string
}

const (
	recordFileName      = "consent_record.json"
	preferencesFileName = "consent_preferences.json"
	sessionFileName     = "session_id"
)

// FileStore persists the consent record, a denormalized preferences copy
// and the anonymous session id as files under a state directory. The
// session id has an independent lifecycle and survives Clear.
type FileStore struct {
	dir string
	mu  sync.Mutex
}

// NewFileStore creates the state directory if needed and returns the store.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, err
	}
	return &FileStore{dir: dir}, nil
}

// Read deserializes the stored consent record. Missing or malformed
// entries are treated as absent.
func (s *FileStore) Read() (ConsentRecord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(filepath.Join(s.dir, recordFileName))
	if err != nil {
		return ConsentRecord{}, false
	}

	var record ConsentRecord
	if err := json.Unmarshal(data, &record); err != nil {
		log.GetLogger().Debug("Discarding malformed consent record.", log.Error(err))
		return ConsentRecord{}, false
	}
	return record, true
}

// Write serializes and persists the record, overwriting any prior value.
// The denormalized preferences copy is refreshed in the same call.
func (s *FileStore) Write(record ConsentRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.writeFileAtomic(recordFileName, record)
	s.writeFileAtomic(preferencesFileName, record.Categories)
}

// Clear removes the consent record and the preferences copy. The anonymous
// session id is deliberately kept.
func (s *FileStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	_ = os.Remove(filepath.Join(s.dir, recordFileName))
	_ = os.Remove(filepath.Join(s.dir, preferencesFileName))
}

// SessionID returns the anonymous session identifier, creating and
// persisting it on first use.
func (s *FileStore) SessionID() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	sessionPath := filepath.Join(s.dir, sessionFileName)
	data, err := os.ReadFile(sessionPath)
	if err == nil {
		id := strings.TrimSpace(string(data))
		if id != "" {
			return id
		}
	}

	id := uuid.New().String()
	if err := os.WriteFile(sessionPath, []byte(id), 0o600); err != nil {
		log.GetLogger().Warn("Failed to persist anonymous session id.", log.Error(err))
	}
	return id
}

// writeFileAtomic writes via a temp file and rename so readers never
// observe a partial record.
func (s *FileStore) writeFileAtomic(name string, value interface{}) {
	data, err := json.Marshal(value)
	if err != nil {
		log.GetLogger().Warn("Failed to serialize consent state.", log.Error(err))
		return
	}

	target := filepath.Join(s.dir, name)
	tmp, err := os.CreateTemp(s.dir, name+".tmp-*")
	if err != nil {
		log.GetLogger().Warn("Failed to persist consent state.", log.Error(err))
		return
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		log.GetLogger().Warn("Failed to persist consent state.", log.Error(err))
		return
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		log.GetLogger().Warn("Failed to persist consent state.", log.Error(err))
		return
	}
	if err := os.Rename(tmpName, target); err != nil {
		_ = os.Remove(tmpName)
		log.GetLogger().Warn("Failed to persist consent state.", log.Error(err))
	}
}
