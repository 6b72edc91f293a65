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

package constants

const ApiBasePath = "/api/v1"

// Cookie category identifiers. The catalog is fixed; strictly necessary
// cookies can never be opted out of.
const (
	CategoryStrictlyNecessary = "strictly_necessary"
	CategoryFunctional        = "functional"
	CategoryAnalytics         = "analytics"
	CategoryMarketing         = "marketing"
)

// Audit actions recorded for every consent mutation.
const (
	AuditActionSave   = "save"
	AuditActionDelete = "delete"
)

// DefaultConsentVersion is used when the deployment configuration does not
// pin a consent schema version.
const DefaultConsentVersion = "1.0"

// DefaultExpiryDays is the consent retention window after which users are
// asked to re-consent.
const DefaultExpiryDays = 365
