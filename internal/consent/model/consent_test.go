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

package models

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/investhub/cookie-consent-service/internal/system/constants"
)

func Test_Normalize_ForcesStrictlyNecessary(t *testing.T) {
	prefs := Preferences{StrictlyNecessary: false, Marketing: true}
	normalized := prefs.Normalize()

	assert.True(t, normalized.StrictlyNecessary)
	assert.True(t, normalized.Marketing)
	assert.False(t, normalized.Functional)
}

func Test_CategoryCatalog(t *testing.T) {
	catalog := CategoryCatalog(Preferences{Functional: true})
	assert.Len(t, catalog, 4)

	byID := map[string]CookieCategory{}
	for _, c := range catalog {
		byID[c.ID] = c
	}

	assert.True(t, byID[constants.CategoryStrictlyNecessary].Required)
	assert.True(t, byID[constants.CategoryStrictlyNecessary].Enabled, "Required categories are always enabled")
	assert.True(t, byID[constants.CategoryFunctional].Enabled)
	assert.False(t, byID[constants.CategoryAnalytics].Enabled)
	assert.False(t, byID[constants.CategoryMarketing].Enabled)
}
