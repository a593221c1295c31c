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

import (
	"strings"

	"github.com/scriptflow/scriptflow/api/types"
	"github.com/scriptflow/scriptflow/loader"
	"github.com/scriptflow/scriptflow/utils/str"
)

// newExecutionApi 构建暴露给脚本的execution对象
// newExecutionApi builds the `execution` object handed to a script. It is
// the script-side view of the ExecutionContext:
//
//	execution.processInstanceId
//	execution.getVariable(name) / execution.setVariable(name, value)
//	execution.hasVariable(name)
//	execution.loadConfig(fileName[, key[, persist]])
//	execution.log(args...)
//
// loadConfig surfaces loader errors as script exceptions; the surrounding
// script decides whether to catch them or fail the task.
func newExecutionApi(execution types.ExecutionContext) map[string]interface{} {
	logger := types.NewLogger(execution.Config().Logger)
	return map[string]interface{}{
		"processInstanceId":   execution.ProcessInstanceId(),
		"processDefinitionId": execution.ProcessDefinitionId(),
		"deploymentId":        execution.DeploymentId(),
		"getVariable": func(name string) interface{} {
			value, _ := execution.GetVariable(name)
			return value
		},
		"hasVariable": func(name string) bool {
			_, ok := execution.GetVariable(name)
			return ok
		},
		"setVariable": func(name string, value interface{}) {
			execution.SetVariable(name, value)
		},
		"loadConfig": func(fileName string, args ...interface{}) (interface{}, error) {
			var key string
			var persist bool
			if len(args) > 0 {
				key = str.ToString(args[0])
			}
			if len(args) > 1 {
				persist, _ = args[1].(bool)
			}
			value, err := loader.Load(execution, fileName, key, persist)
			if err != nil {
				return nil, err
			}
			return value.Export(), nil
		},
		"log": func(args ...interface{}) {
			parts := make([]string, len(args))
			for i, arg := range args {
				parts[i] = str.ToString(arg)
			}
			logger.Printf("%s", strings.Join(parts, " "))
		},
	}
}
