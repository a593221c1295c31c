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

package base

import (
	"sync"

	"github.com/scriptflow/scriptflow/api/types"
)

// Registry 组件包级注册器
// Registry collects the components a package declares through init(), so the
// default root registry can aggregate them.
type Registry struct {
	components []types.Task
	sync.Mutex
}

// Add 登记组件
func (r *Registry) Add(task types.Task) {
	r.Lock()
	defer r.Unlock()
	r.components = append(r.components, task)
}

// Components 返回该包登记的所有组件
func (r *Registry) Components() []types.Task {
	r.Lock()
	defer r.Unlock()
	components := make([]types.Task, len(r.components))
	copy(components, r.components)
	return components
}
