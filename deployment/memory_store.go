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

package deployment

import (
	"bytes"
	"io"
	"sort"
	"sync"
)

// MemoryStore 内存部署资源存储，用于测试和嵌入场景
// MemoryStore keeps deployment resources in memory. Resources handed out are
// copies, so readers never observe later AddResource calls.
type MemoryStore struct {
	deployments map[string]map[string][]byte
	sync.RWMutex
}

// NewMemoryStore 创建内存存储实例
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		deployments: make(map[string]map[string][]byte),
	}
}

// AddResource 添加资源到部署，已存在则覆盖
// AddResource puts a resource into a deployment, creating the deployment on
// first use.
func (s *MemoryStore) AddResource(deploymentId, name string, data []byte) {
	s.Lock()
	defer s.Unlock()
	resources, ok := s.deployments[deploymentId]
	if !ok {
		resources = make(map[string][]byte)
		s.deployments[deploymentId] = resources
	}
	cp := make([]byte, len(data))
	copy(cp, data)
	resources[name] = cp
}

// GetResource 获取部署资源
func (s *MemoryStore) GetResource(deploymentId, name string) (io.ReadCloser, error) {
	s.RLock()
	defer s.RUnlock()
	resources, ok := s.deployments[deploymentId]
	if !ok {
		return nil, resourceNotFoundError(deploymentId, name)
	}
	data, ok := resources[name]
	if !ok {
		return nil, resourceNotFoundError(deploymentId, name)
	}
	cp := make([]byte, len(data))
	copy(cp, data)
	return io.NopCloser(bytes.NewReader(cp)), nil
}

// ListResources 返回部署下的所有资源名称，按名称排序
func (s *MemoryStore) ListResources(deploymentId string) ([]string, error) {
	s.RLock()
	defer s.RUnlock()
	resources, ok := s.deployments[deploymentId]
	if !ok {
		return nil, deploymentNotFoundError(deploymentId)
	}
	names := make([]string, 0, len(resources))
	for name := range resources {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// Ensure MemoryStore implements the Store interface.
var _ Store = (*MemoryStore)(nil)
