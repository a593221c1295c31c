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

package action

//任务配置示例：
//{
//	"type": "configLoad",
//	"configuration": {
//		"fileName": "config.json",
//		"key": "myProcess",
//		"persist": true
//	}
//}
import (
	"errors"

	"github.com/scriptflow/scriptflow/api/types"
	"github.com/scriptflow/scriptflow/loader"
	"github.com/scriptflow/scriptflow/utils/maps"
)

// ConfigLoadType 组件类型标识符
const ConfigLoadType = "configLoad"

func init() {
	Registry.Add(&ConfigLoadTask{})
}

// ConfigLoadTaskConfiguration 节点配置
type ConfigLoadTaskConfiguration struct {
	// FileName 当前部署下的资源名称，必填
	FileName string
	// Key 可选，取解析结果的顶层字段，其余字段丢弃；字段不存在则任务失败
	Key string
	// Persist 可选，默认false；true时把结果写入`_config`变量槽，覆盖旧值
	Persist bool
	// ResultVariable 可选，额外把结果写入指定名称的变量
	ResultVariable string
}

// ConfigLoadTask 配置加载任务组件
// ConfigLoadTask loads a JSON configuration resource from the execution's
// deployment into process variables, for hosts that configure the loader
// declaratively instead of calling it from a script.
type ConfigLoadTask struct {
	// Config 节点配置
	Config ConfigLoadTaskConfiguration
}

// Type 返回组件类型
func (x *ConfigLoadTask) Type() string {
	return ConfigLoadType
}

// New 创建新实例
func (x *ConfigLoadTask) New() types.Task {
	return &ConfigLoadTask{Config: ConfigLoadTaskConfiguration{
		FileName: "config.json",
	}}
}

// Init 初始化组件
func (x *ConfigLoadTask) Init(config types.Config, configuration types.Configuration) error {
	err := maps.Map2Struct(configuration, &x.Config)
	if err != nil {
		return err
	}
	if x.Config.FileName == "" {
		return errors.New("fileName can not empty")
	}
	return nil
}

// Execute 加载配置资源
func (x *ConfigLoadTask) Execute(execution types.ExecutionContext) error {
	value, err := loader.Load(execution, x.Config.FileName, x.Config.Key, x.Config.Persist)
	if err != nil {
		return err
	}
	if x.Config.ResultVariable != "" {
		execution.SetVariable(x.Config.ResultVariable, value.Export())
	}
	return nil
}

// Destroy 清理资源
func (x *ConfigLoadTask) Destroy() {
	// 无资源需要清理
}
