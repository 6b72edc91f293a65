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

package integration

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/investhub/cookie-consent-service/internal/system/config"
	"github.com/investhub/cookie-consent-service/internal/system/database/provider"
	"github.com/investhub/cookie-consent-service/internal/system/log"
	"github.com/investhub/cookie-consent-service/test/setup"
)

func TestMain(m *testing.M) {
	ctx := context.Background()
	os.Setenv("TEST_MODE", "true")

	conf := config.Config{
		Log: config.LogConfig{
			LogLevel: "DEBUG",
		},
		Consent: config.ConsentConfig{
			Version:         "1.0",
			ExpiryDays:      365,
			CacheTTLMinutes: 5,
		},
		AuditStore: config.AuditStoreConfig{
			Enabled: false,
		},
	}
	config.OverrideRuntime(conf)
	_ = log.Init("DEBUG")

	pg, err := setup.SetupTestPostgres(ctx)
	if err != nil {
		fmt.Println("Failed to start test DB:", err)
		os.Exit(1)
	}

	provider.SetTestDB(pg.DB)

	schemaBytes, err := os.ReadFile(filepath.Join("..", "..", "dbscripts", "postgres.sql"))
	if err != nil {
		fmt.Println("Failed to read schema file:", err)
		os.Exit(1)
	}
	if _, err := pg.DB.Exec(string(schemaBytes)); err != nil {
		fmt.Println("Failed to create tables from schema:", err)
		os.Exit(1)
	}

	// Run tests
	code := m.Run()

	// Terminate container manually after tests complete
	_ = pg.Container.Terminate(ctx)

	os.Exit(code)
}
