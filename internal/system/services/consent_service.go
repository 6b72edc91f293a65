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

package services

import (
	"fmt"
	"net/http"

	"github.com/investhub/cookie-consent-service/internal/consent/handler"
)

// ConsentSyncService wires the cookie consent endpoints into the mux.
type ConsentSyncService struct {
	handler *handler.ConsentHandler
}

func NewConsentSyncService(mux *http.ServeMux, apiBasePath string) *ConsentSyncService {
	instance := &ConsentSyncService{
		handler: handler.NewConsentHandler(),
	}
	instance.RegisterRoutes(mux, apiBasePath)
	return instance
}

func (s *ConsentSyncService) RegisterRoutes(mux *http.ServeMux, apiBasePath string) {
	mux.HandleFunc(fmt.Sprintf("GET %s/cookie-consent", apiBasePath), s.handler.GetConsent)
	mux.HandleFunc(fmt.Sprintf("POST %s/cookie-consent", apiBasePath), s.handler.UpsertConsent)
	mux.HandleFunc(fmt.Sprintf("DELETE %s/cookie-consent", apiBasePath), s.handler.DeleteConsent)
	mux.HandleFunc(fmt.Sprintf("GET %s/cookie-consent/categories", apiBasePath), s.handler.GetCategories)
}
