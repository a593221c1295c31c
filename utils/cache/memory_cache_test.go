/*
 * Copyright 2025 The ScriptFlow Authors.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package cache

import (
	"testing"
	"time"

	"github.com/scriptflow/scriptflow/test/assert"
)

func TestMemoryCacheSetGet(t *testing.T) {
	c := NewMemoryCache(time.Minute)
	defer c.StopGC()

	err := c.Set("k1", "v1", "")
	assert.Nil(t, err)
	assert.Equal(t, "v1", c.Get("k1"))
	assert.True(t, c.Has("k1"))

	assert.Nil(t, c.Get("missing"))
	assert.False(t, c.Has("missing"))

	err = c.Set("k1", "v2", "")
	assert.Nil(t, err)
	assert.Equal(t, "v2", c.Get("k1"))

	_ = c.Delete("k1")
	assert.Nil(t, c.Get("k1"))
}

func TestMemoryCacheInvalidTtl(t *testing.T) {
	c := NewMemoryCache(time.Minute)
	err := c.Set("k1", "v1", "not-a-duration")
	assert.NotNil(t, err)
}

func TestMemoryCacheExpiration(t *testing.T) {
	c := NewMemoryCache(time.Minute)
	defer c.StopGC()

	err := c.Set("k1", "v1", "10ms")
	assert.Nil(t, err)
	assert.Equal(t, "v1", c.Get("k1"))

	time.Sleep(time.Millisecond * 30)
	assert.Nil(t, c.Get("k1"))
	assert.False(t, c.Has("k1"))
}

func TestMemoryCachePrefix(t *testing.T) {
	c := NewMemoryCache(time.Minute)
	defer c.StopGC()

	_ = c.Set("var:p1:a", 1, "")
	_ = c.Set("var:p1:b", 2, "")
	_ = c.Set("var:p2:a", 3, "")

	result := c.GetByPrefix("var:p1:")
	assert.Equal(t, 2, len(result))
	assert.Equal(t, 1, result["var:p1:a"])

	_ = c.DeleteByPrefix("var:p1:")
	assert.Equal(t, 0, len(c.GetByPrefix("var:p1:")))
	assert.Equal(t, 3, c.Get("var:p2:a"))
}

func TestNamespaceCache(t *testing.T) {
	c := NewMemoryCache(time.Minute)
	defer c.StopGC()
	ns := NewNamespaceCache(c, "ns1:")

	err := ns.Set("k1", "v1", "")
	assert.Nil(t, err)
	assert.Equal(t, "v1", ns.Get("k1"))
	assert.Equal(t, "v1", c.Get("ns1:k1"))
	assert.True(t, ns.Has("k1"))

	result := ns.GetByPrefix("")
	assert.Equal(t, "v1", result["k1"])

	_ = ns.Delete("k1")
	assert.False(t, ns.Has("k1"))
}

func TestNamespaceCacheNotInitialized(t *testing.T) {
	ns := NewNamespaceCache(nil, "ns1:")
	assert.Nil(t, ns)

	var broken = &NamespaceCache{}
	assert.NotNil(t, broken.Set("k1", "v1", ""))
	assert.Nil(t, broken.Get("k1"))
}
