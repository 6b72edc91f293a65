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

package config

type AddrConfig struct {
	Port int    `yaml:"port"`
	Host string `yaml:"host"`
}

type LogConfig struct {
	LogLevel string `yaml:"log_level"`
}

type AuthConfig struct {
	JWTSecret          string   `yaml:"jwt_secret"`
	ExpectedAudience   string   `yaml:"expected_audience"`
	CORSAllowedOrigins []string `yaml:"cors_allowed_origins"`
}

// ConsentConfig carries the consent schema version and retention window
// enforced by the server when validating incoming records.
type ConsentConfig struct {
	Version         string `yaml:"version"`
	ExpiryDays      int    `yaml:"expiry_days"`
	CacheTTLMinutes int    `yaml:"cache_ttl_minutes"`
}

type DataSourceConfig struct {
	Hostname string `yaml:"hostname"`
	Port     int    `yaml:"port"`
	Name     string `yaml:"name"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	SSLMode  string `yaml:"sslmode"`
}

// AuditStoreConfig points at the MongoDB deployment holding the
// append-only consent audit trail.
type AuditStoreConfig struct {
	URI        string `yaml:"uri"`
	Database   string `yaml:"database"`
	Collection string `yaml:"collection"`
	Enabled    bool   `yaml:"enabled"`
}

type Config struct {
	Addr       AddrConfig       `yaml:"addr"`
	Log        LogConfig        `yaml:"log"`
	Auth       AuthConfig       `yaml:"auth"`
	Consent    ConsentConfig    `yaml:"consent"`
	DataSource DataSourceConfig `yaml:"datasource"`
	AuditStore AuditStoreConfig `yaml:"audit_store"`
}
