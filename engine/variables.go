/*
 * Copyright 2024 The ScriptFlow Authors.
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

package engine

import (
	"sync"

	"github.com/scriptflow/scriptflow/api/types"
	"github.com/scriptflow/scriptflow/utils/cache"
)

// VariableStore 流程变量存储接口
// VariableStore holds the named variables of one process instance. Writes
// are last-write-wins; the host engine serializes script-task execution per
// process instance, so implementations only need to be safe against
// concurrent use of the backing storage by different instances.
type VariableStore interface {
	// Get 读取变量
	Get(name string) (interface{}, bool)
	// Put 写入变量，覆盖旧值
	Put(name string, value interface{})
	// Values 返回所有变量的快照
	Values() map[string]interface{}
}

// MemoryVariables 内存流程变量存储
type MemoryVariables struct {
	items map[string]interface{}
	sync.RWMutex
}

// NewMemoryVariables 创建内存变量存储实例
func NewMemoryVariables() *MemoryVariables {
	return &MemoryVariables{
		items: make(map[string]interface{}),
	}
}

func (v *MemoryVariables) Get(name string) (interface{}, bool) {
	v.RLock()
	defer v.RUnlock()
	value, ok := v.items[name]
	return value, ok
}

func (v *MemoryVariables) Put(name string, value interface{}) {
	if name == "" {
		return
	}
	v.Lock()
	defer v.Unlock()
	v.items[name] = value
}

func (v *MemoryVariables) Values() map[string]interface{} {
	v.RLock()
	defer v.RUnlock()
	snapshot := make(map[string]interface{}, len(v.items))
	for k, val := range v.items {
		snapshot[k] = val
	}
	return snapshot
}

// CacheVariables 基于共享缓存的流程变量存储
// CacheVariables stores process variables in a shared types.Cache, isolated
// per process instance through a namespace prefix. Variables written here
// survive as long as the cache entry does; no ttl is applied.
type CacheVariables struct {
	cache types.Cache
}

// NewCacheVariables 创建缓存变量存储，变量key按流程实例ID隔离
func NewCacheVariables(c types.Cache, processInstanceId string) *CacheVariables {
	return &CacheVariables{
		cache: cache.NewNamespaceCache(c, "var:"+processInstanceId+":"),
	}
}

func (v *CacheVariables) Get(name string) (interface{}, bool) {
	if !v.cache.Has(name) {
		return nil, false
	}
	return v.cache.Get(name), true
}

func (v *CacheVariables) Put(name string, value interface{}) {
	if name == "" {
		return
	}
	_ = v.cache.Set(name, value, "")
}

func (v *CacheVariables) Values() map[string]interface{} {
	return v.cache.GetByPrefix("")
}

// Ensure both stores implement the VariableStore interface.
var _ VariableStore = (*MemoryVariables)(nil)
var _ VariableStore = (*CacheVariables)(nil)
