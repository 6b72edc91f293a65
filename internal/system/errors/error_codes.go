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

package errors

const errorPrefix = "CCS-"

var (
	// Server error codes

	UPSERT_CONSENT = ErrorMessage{
		Code:    errorPrefix + "15001",
		Message: "Error while saving the consent record.",
	}

	FETCH_CONSENT = ErrorMessage{
		Code:    errorPrefix + "15002",
		Message: "Error while fetching the consent record.",
	}

	DELETE_CONSENT = ErrorMessage{
		Code:    errorPrefix + "15003",
		Message: "Error while deleting the consent record.",
	}

	DB_CLIENT_INIT = ErrorMessage{
		Code:    errorPrefix + "15004",
		Message: "Unable to initialize database client.",
	}

	AUDIT_CLIENT_INIT = ErrorMessage{
		Code:    errorPrefix + "15005",
		Message: "Unable to initialize audit log client.",
	}

	AUDIT_WRITE = ErrorMessage{
		Code:    errorPrefix + "15006",
		Message: "Error while appending consent audit entry.",
	}

	MARSHAL_JSON = ErrorMessage{
		Code:    errorPrefix + "15007",
		Message: "Error while marshalling JSON.",
	}

	PARSING_ERROR = ErrorMessage{
		Code:    errorPrefix + "15008",
		Message: "Error while parsing the access token.",
	}

	// Client error codes

	BAD_REQUEST = ErrorMessage{
		Code:    errorPrefix + "60001",
		Message: "Invalid request.",
	}

	CONSENT_VALIDATION = ErrorMessage{
		Code:    errorPrefix + "60002",
		Message: "Consent record validation failed.",
	}

	CONSENT_NOT_FOUND = ErrorMessage{
		Code:    errorPrefix + "60003",
		Message: "Consent record not found.",
	}

	MISSING_PRINCIPAL = ErrorMessage{
		Code:    errorPrefix + "60004",
		Message: "No principal available for the consent operation.",
	}

	UN_AUTHORIZED = ErrorMessage{
		Code:    errorPrefix + "60005",
		Message: "Authentication failed.",
	}
)
