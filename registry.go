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

package scriptflow

import (
	"errors"
	"fmt"
	"sync"

	"github.com/scriptflow/scriptflow/api/types"
	"github.com/scriptflow/scriptflow/components/action"
	"github.com/scriptflow/scriptflow/components/script"
)

// Registry 任务组件默认注册器
var Registry = new(TaskComponentRegistry)

// 注册默认组件
func init() {
	var components []types.Task
	components = append(components, action.Registry.Components()...)
	components = append(components, script.Registry.Components()...)

	// 把组件注册到默认组件库
	for _, task := range components {
		_ = Registry.Register(task)
	}
}

// TaskComponentRegistry 组件注册器
type TaskComponentRegistry struct {
	// 任务组件列表
	components map[string]types.Task
	sync.RWMutex
}

// Register 注册任务组件
func (r *TaskComponentRegistry) Register(task types.Task) error {
	r.Lock()
	defer r.Unlock()
	if r.components == nil {
		r.components = make(map[string]types.Task)
	}
	if _, ok := r.components[task.Type()]; ok {
		return errors.New("the component already exists. taskType=" + task.Type())
	}
	r.components[task.Type()] = task

	return nil
}

// Unregister 删除组件
func (r *TaskComponentRegistry) Unregister(taskType string) error {
	r.Lock()
	defer r.Unlock()
	if _, ok := r.components[taskType]; ok {
		delete(r.components, taskType)
		return nil
	}
	return fmt.Errorf("component not found. taskType=%s", taskType)
}

// NewTask 通过taskType创建一个新的task实例
func (r *TaskComponentRegistry) NewTask(taskType string) (types.Task, error) {
	r.RLock()
	defer r.RUnlock()
	if task, ok := r.components[taskType]; ok {
		return task.New(), nil
	}
	return nil, fmt.Errorf("component not found. taskType=%s", taskType)
}

// GetComponents 获取所有注册组件列表
func (r *TaskComponentRegistry) GetComponents() map[string]types.Task {
	r.RLock()
	defer r.RUnlock()
	components := make(map[string]types.Task, len(r.components))
	for k, v := range r.components {
		components[k] = v
	}
	return components
}

// Ensure TaskComponentRegistry implements the ComponentRegistry interface.
var _ types.ComponentRegistry = (*TaskComponentRegistry)(nil)
