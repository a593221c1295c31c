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

package types

import (
	"io"
)

// Js脚本类型，用于Script类型的UDF注册
const Js = "Js"

// Configuration 组件配置类型
// Configuration is the raw configuration map of a task component, decoded
// into the component's Config struct during Init.
type Configuration map[string]interface{}

// Vars 组件配置里传递给脚本引擎的变量key
const Vars = "vars"

// ExecutionContext 脚本任务运行时上下文
// ExecutionContext is the runtime handle through which a running script task
// accesses process and deployment metadata, deployment resources and process
// variables. It replaces the ambient `execution` global of BPM script tasks
// with an explicit collaborator that is injected into every task.
//
// 宿主引擎负责按流程实例串行执行脚本任务，本接口实现不做并发协调。
// The host engine serializes script-task execution per process instance;
// implementations perform no concurrency coordination of their own.
type ExecutionContext interface {
	// ProcessInstanceId 当前流程实例ID
	ProcessInstanceId() string
	// ProcessDefinitionId 当前流程定义ID
	ProcessDefinitionId() string
	// DeploymentId 当前部署ID，部署资源通过该ID解析
	// DeploymentId returns the deployment the execution's resources are
	// resolved against.
	DeploymentId() string
	// GetResource 以流的方式获取当前部署下的命名资源
	// GetResource fetches the named resource of the current deployment as a
	// readable stream. The caller must close the returned stream on every
	// exit path.
	GetResource(name string) (io.ReadCloser, error)
	// GetVariable 读取流程变量
	GetVariable(name string) (interface{}, bool)
	// SetVariable 写入流程变量，覆盖旧值
	// SetVariable writes a process variable, overwriting any prior value
	// (last-write-wins).
	SetVariable(name string, value interface{})
	// Variables 返回所有流程变量的快照
	Variables() map[string]interface{}
	// Config 获取引擎配置
	Config() Config
}

// Task 脚本任务组件接口
// Task is the component interface for script-task style components. Business
// or generic logic is wrapped into a component and invoked through task
// configuration, the same way rule-engine nodes are.
type Task interface {
	// New 创建一个组件新实例
	// 每个流程定义里的任务都会创建一个新的实例，数据是独立的
	New() Task
	// Type 组件类型，类型不能重复
	// 建议使用`/`区分命名空间，防止冲突。例如：x/httpLoader
	Type() string
	// Init 组件初始化，解析Configuration并做一次性准备工作
	Init(config Config, configuration Configuration) error
	// Execute 在一次流程执行里同步运行该任务
	// 所有错误立即返回给宿主，由宿主决定是否使流程失败
	Execute(execution ExecutionContext) error
	// Destroy 销毁，做一些资源释放操作
	Destroy()
}

// ComponentRegistry 任务组件注册器
type ComponentRegistry interface {
	// Register 注册组件，如果`task.Type()`已经存在则返回一个`已存在`错误
	Register(task Task) error
	// Unregister 删除组件
	Unregister(taskType string) error
	// NewTask 通过taskType创建一个新的task实例
	NewTask(taskType string) (Task, error)
	// GetComponents 获取所有注册组件列表
	GetComponents() map[string]Task
}

// ScriptEngine 脚本引擎
// ScriptEngine executes a named function of a previously compiled script.
type ScriptEngine interface {
	// Execute 执行脚本指定函数，脚本在引擎实例化的时候编译
	// functionName 执行的函数名
	// argumentList 函数参数列表
	Execute(execution ExecutionContext, functionName string, argumentList ...interface{}) (interface{}, error)
	// Stop 释放脚本引擎资源
	Stop()
}

// ScriptFuncSeparator 脚本函数名分割符
const ScriptFuncSeparator = "#"

// Script 脚本 用于注册原生函数或者使用go定义的自定义函数
type Script struct {
	// Type 脚本类型，默认Js
	Type string
	// Content 脚本内容或者自定义函数
	Content interface{}
}
