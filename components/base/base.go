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

// Package base provides helpers shared by task component packages.
package base

import (
	"github.com/scriptflow/scriptflow/api/types"
	"github.com/scriptflow/scriptflow/utils/str"
)

var TaskUtils = &taskUtils{}

type taskUtils struct {
}

// GetVars 从组件配置里取出传递给脚本引擎的变量
// 变量值统一转成string，脚本通过vars.xx读取
func (t *taskUtils) GetVars(configuration types.Configuration) map[string]interface{} {
	if v, ok := configuration[types.Vars]; ok {
		fromVars := make(map[string]interface{})
		fromVars[types.Vars] = str.ToStringMapString(v)
		return fromVars
	} else {
		return nil
	}
}
