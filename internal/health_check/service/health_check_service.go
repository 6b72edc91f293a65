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

package service

import (
	"errors"
	"fmt"

	"github.com/investhub/cookie-consent-service/internal/system/database/provider"
	"github.com/investhub/cookie-consent-service/internal/system/log"
)

// HealthCheckServiceInterface defines the service interface.
type HealthCheckServiceInterface interface {
	CheckReadiness() error
}

// HealthCheckService is the default implementation.
type HealthCheckService struct{}

// GetHealthCheckService returns a new instance.
func GetHealthCheckService() HealthCheckServiceInterface {
	return &HealthCheckService{}
}

func (h HealthCheckService) CheckReadiness() error {
	logger := log.GetLogger()
	if logger == nil {
		return errors.New("logger not initialized")
	}

	dbProvider := provider.NewDBProvider()
	dbClient, err := dbProvider.GetDBClient()
	if err != nil {
		return fmt.Errorf("failed to create database client: %v", err)
	}
	defer dbClient.Close()

	// Perform a lightweight query to ensure DB connectivity.
	_, err = dbClient.ExecuteQuery("SELECT 1;")
	if err != nil {
		return fmt.Errorf("database connectivity check failed: %v", err)
	}

	return nil
}
