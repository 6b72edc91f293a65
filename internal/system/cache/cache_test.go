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

package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func Test_Cache_SetGet(t *testing.T) {
	c := NewCache(time.Minute)
	c.Set("key", "value")

	value, found := c.Get("key")
	assert.True(t, found)
	assert.Equal(t, "value", value)
}

func Test_Cache_Expiry(t *testing.T) {
	c := NewCache(time.Millisecond)
	c.Set("key", "value")

	time.Sleep(5 * time.Millisecond)
	_, found := c.Get("key")
	assert.False(t, found)
}

func Test_Cache_Delete(t *testing.T) {
	c := NewCache(time.Minute)
	c.Set("key", "value")
	c.Delete("key")

	_, found := c.Get("key")
	assert.False(t, found)
}

func Test_Cache_Clear(t *testing.T) {
	c := NewCache(time.Minute)
	c.Set("a", 1)
	c.Set("b", 2)
	c.Clear()

	_, foundA := c.Get("a")
	_, foundB := c.Get("b")
	assert.False(t, foundA)
	assert.False(t, foundB)
}
