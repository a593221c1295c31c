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

package script

//任务配置示例：
//{
//	"type": "jsScript",
//	"configuration": {
//		"script": "var cfg = execution.loadConfig('config.json', 'myProcess', true); execution.setVariable('threshold', cfg.threshold);"
//	}
//}
import (
	"fmt"
	"strings"

	"github.com/scriptflow/scriptflow/api/types"
	"github.com/scriptflow/scriptflow/components/base"
	"github.com/scriptflow/scriptflow/utils/js"
	"github.com/scriptflow/scriptflow/utils/maps"
)

const (
	// JsScriptType 组件类型标识符
	JsScriptType = "jsScript"
	// JsScriptFuncTemplate JS函数模板，用于包装用户脚本
	JsScriptFuncTemplate = "function Task(execution) { %s }"
	// JsScriptFuncName JS引擎中执行的函数名称
	JsScriptFuncName = "Task"
)

func init() {
	Registry.Add(&JsScriptTask{})
}

// JsScriptTaskConfiguration JS脚本任务配置结构
type JsScriptTaskConfiguration struct {
	// Script 用户自定义的JavaScript脚本内容
	// 脚本会被包装成完整函数：function Task(execution) { ${Script} }
	// execution对象见newExecutionApi
	Script string
}

// JsScriptTask JavaScript脚本任务组件
// JsScriptTask runs a user script inside one process execution. The script
// receives the `execution` object and can read/write process variables, load
// deployment configuration resources and log through the engine logger.
//
// 脚本执行受Config.ScriptMaxExecutionTime限制，超时中断。
type JsScriptTask struct {
	// Config 节点配置信息
	Config JsScriptTaskConfiguration
	// jsEngine JavaScript执行引擎实例
	jsEngine types.ScriptEngine
	// passThrough 空脚本直通模式
	passThrough bool
}

// Type 返回组件类型标识符
func (x *JsScriptTask) Type() string {
	return JsScriptType
}

// New 创建新的JS脚本任务实例
func (x *JsScriptTask) New() types.Task {
	return &JsScriptTask{Config: JsScriptTaskConfiguration{}}
}

// Init 初始化任务，编译脚本
func (x *JsScriptTask) Init(config types.Config, configuration types.Configuration) error {
	err := maps.Map2Struct(configuration, &x.Config)
	if err != nil {
		return err
	}

	// 空脚本任务直通
	if strings.TrimSpace(x.Config.Script) == "" {
		x.passThrough = true
		return nil
	}

	jsScript := fmt.Sprintf(JsScriptFuncTemplate, x.Config.Script)
	x.jsEngine, err = js.NewGojaJsEngine(config, jsScript, base.TaskUtils.GetVars(configuration))
	return err
}

// Execute 在一次流程执行里运行脚本
func (x *JsScriptTask) Execute(execution types.ExecutionContext) error {
	if x.passThrough {
		return nil
	}
	_, err := x.jsEngine.Execute(execution, JsScriptFuncName, newExecutionApi(execution))
	return err
}

// Destroy 销毁任务，释放JavaScript引擎资源
func (x *JsScriptTask) Destroy() {
	if x.jsEngine != nil {
		x.jsEngine.Stop()
	}
}
