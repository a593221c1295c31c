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

// Package scriptflow is an embeddable script-task runtime for process
// engines. It provides the execution context a script task runs against,
// deployment resource stores, a JSON configuration loader and a small set of
// task components (JavaScript scripts, expr expressions, declarative
// configuration loading).
//
// 典型用法：
//
//	config := scriptflow.NewConfig()
//	store := deployment.NewMemoryStore()
//	store.AddResource("dep-1", "config.json", []byte(`{"myProcess":{"a":1}}`))
//	execution := engine.NewExecution(config, store, nil, "dep-1")
//
//	task, _ := scriptflow.NewTask(scriptflow.JsScriptType, config, types.Configuration{
//		"script": "execution.loadConfig('config.json', 'myProcess', true);",
//	})
//	err := task.Execute(execution)
package scriptflow

import (
	"github.com/scriptflow/scriptflow/api/types"
	"github.com/scriptflow/scriptflow/components/action"
	"github.com/scriptflow/scriptflow/components/script"
	"github.com/scriptflow/scriptflow/utils/cache"
)

// 常用组件类型
const (
	ConfigLoadType = action.ConfigLoadType
	JsScriptType   = script.JsScriptType
	ExprEvalType   = script.ExprEvalType
)

// NewConfig 创建默认引擎配置
// NewConfig creates a new Config with default values and applies the provided options.
func NewConfig(opts ...types.Option) types.Config {
	c := types.NewConfig(opts...)
	if c.Cache == nil {
		c.Cache = cache.DefaultCache
	}
	return c
}

// NewTask 通过默认注册器创建并初始化一个任务组件实例
// NewTask instantiates a task component from the default Registry and
// initializes it with the given configuration.
func NewTask(taskType string, config types.Config, configuration types.Configuration) (types.Task, error) {
	task, err := Registry.NewTask(taskType)
	if err != nil {
		return nil, err
	}
	if err = task.Init(config, configuration); err != nil {
		return nil, err
	}
	return task, nil
}
