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

// categoryCatalog merges the static cookie category catalog with the given
// preferences. The catalog is bundled so the banner renders offline.
func categoryCatalog(prefs Preferences) []Category {

	prefs = prefs.Normalize()
	return []Category{
		{
			ID:          CategoryStrictlyNecessary,
			Name:        "Strictly Necessary",
			Description: "Cookies required for the site to function, such as session and security cookies. These cannot be disabled.",
			Required:    true,
			Enabled:     true,
		},
		{
			ID:          CategoryFunctional,
			Name:        "Functional",
			Description: "Cookies that remember preferences such as language and region to personalize your experience.",
			Required:    false,
			Enabled:     prefs.Functional,
		},
		{
			ID:          CategoryAnalytics,
			Name:        "Analytics",
			Description: "Cookies that help us understand how visitors use the marketplace so we can improve it.",
			Required:    false,
			Enabled:     prefs.Analytics,
		},
		{
			ID:          CategoryMarketing,
			Name:        "Marketing",
			Description: "Cookies used to deliver relevant investment offers and measure campaign effectiveness.",
			Required:    false,
			Enabled:     prefs.Marketing,
		},
	}
}
