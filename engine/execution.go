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

// Package engine implements the execution context script tasks run against.
package engine

import (
	"errors"
	"io"

	"github.com/gofrs/uuid/v5"
	"github.com/scriptflow/scriptflow/api/types"
	"github.com/scriptflow/scriptflow/deployment"
)

// Execution 一次流程执行的上下文
// Execution is the default ExecutionContext implementation. It binds one
// process instance to a deployment, resolves resources through a
// deployment.Store and delegates variable access to a VariableStore.
//
// 一个Execution只在单个脚本任务调用内同步使用，不做内部并发协调。
type Execution struct {
	config              types.Config
	store               deployment.Store
	variables           VariableStore
	processInstanceId   string
	processDefinitionId string
	deploymentId        string
}

// ExecutionOption 修改Execution选项的函数
type ExecutionOption func(*Execution)

// WithProcessInstanceId 指定流程实例ID，默认通过uuid生成
func WithProcessInstanceId(id string) ExecutionOption {
	return func(e *Execution) {
		e.processInstanceId = id
	}
}

// WithProcessDefinitionId 指定流程定义ID
func WithProcessDefinitionId(id string) ExecutionOption {
	return func(e *Execution) {
		e.processDefinitionId = id
	}
}

// NewExecution 创建一次流程执行
// NewExecution creates an execution bound to the given deployment. A missing
// variable store defaults to an in-memory one; the process-instance id
// defaults to a new uuid. When Config.SecretKey is set, the store is wrapped
// so protected resources are decrypted transparently.
func NewExecution(config types.Config, store deployment.Store, variables VariableStore, deploymentId string, opts ...ExecutionOption) *Execution {
	e := &Execution{
		config:       config,
		store:        store,
		variables:    variables,
		deploymentId: deploymentId,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.store != nil && config.SecretKey != "" {
		e.store = deployment.NewEncryptedStore(e.store, config.SecretKey)
	}
	if e.variables == nil {
		e.variables = NewMemoryVariables()
	}
	if e.processInstanceId == "" {
		uuId, _ := uuid.NewV4()
		e.processInstanceId = uuId.String()
	}
	return e
}

// ProcessInstanceId 当前流程实例ID
func (e *Execution) ProcessInstanceId() string {
	return e.processInstanceId
}

// ProcessDefinitionId 当前流程定义ID
func (e *Execution) ProcessDefinitionId() string {
	return e.processDefinitionId
}

// DeploymentId 当前部署ID
func (e *Execution) DeploymentId() string {
	return e.deploymentId
}

// GetResource 获取当前部署下的命名资源
func (e *Execution) GetResource(name string) (io.ReadCloser, error) {
	if e.store == nil {
		return nil, errors.New("execution has no deployment store")
	}
	return e.store.GetResource(e.deploymentId, name)
}

// GetVariable 读取流程变量
func (e *Execution) GetVariable(name string) (interface{}, bool) {
	return e.variables.Get(name)
}

// SetVariable 写入流程变量，覆盖旧值
func (e *Execution) SetVariable(name string, value interface{}) {
	e.variables.Put(name, value)
}

// Variables 返回所有流程变量的快照
func (e *Execution) Variables() map[string]interface{} {
	return e.variables.Values()
}

// Config 获取引擎配置
func (e *Execution) Config() types.Config {
	return e.config
}

// Ensure Execution implements the ExecutionContext interface.
var _ types.ExecutionContext = (*Execution)(nil)
