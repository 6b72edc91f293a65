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

import "sync"

// Runtime holds the runtime configuration for the consent service.
type Runtime struct {
	ServiceHome string `yaml:"service_home"`
	Config      Config `yaml:"config"`
}

var (
	runtimeConfig *Runtime
	once          sync.Once
)

// InitializeRuntime initializes the runtime configuration.
func InitializeRuntime(serviceHome string, config *Config) error {

	once.Do(func() {
		runtimeConfig = &Runtime{
			ServiceHome: serviceHome,
			Config:      *config,
		}
	})

	return nil
}

// GetRuntime returns the runtime configuration.
func GetRuntime() *Runtime {

	if runtimeConfig == nil {
		panic("runtime configuration is not initialized")
	}
	return runtimeConfig
}
