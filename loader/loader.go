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

// Package loader loads JSON configuration resources from a deployment into
// process variables.
//
// 典型用法（脚本任务内）：
//
//	cfg, err := loader.Load(execution, "config.json", "myProcess", true)
//
// Load是一次读取加可选写入：不修改源资源，相同输入对未变化的部署返回相同
// 结果；持久化副作用是对`_config`变量槽的覆盖写。
package loader

import (
	"errors"
	"io"

	"github.com/scriptflow/scriptflow/api/types"
)

// ConfigVariable 持久化配置使用的保留变量名
// ConfigVariable is the reserved variable slot Load persists into.
const ConfigVariable = "_config"

// ParseError 资源内容不是合法JSON
// ParseError reports a resource whose content could not be parsed as JSON.
type ParseError struct {
	FileName string
	Err      error
}

func (e *ParseError) Error() string {
	return "parse resource " + e.FileName + ": " + e.Err.Error()
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Load 从当前部署加载JSON配置资源
// Load fetches fileName from the execution's deployment, reads the stream to
// EOF and parses it as JSON.
//
// key非空时取顶层字段并丢弃其余字段；字段不存在返回*types.MissingKeyError。
// persist为true时把（可能已收窄的）结果导出为普通Go值写入`_config`变量槽，
// 覆盖旧值。
//
// Error taxonomy: a missing resource wraps deployment.ErrResourceNotFound,
// unparseable content yields *ParseError, an absent key yields
// *types.MissingKeyError. Nothing is retried or recovered internally.
func Load(execution types.ExecutionContext, fileName string, key string, persist bool) (types.Value, error) {
	if fileName == "" {
		return types.Value{}, errors.New("fileName can not empty")
	}
	rc, err := execution.GetResource(fileName)
	if err != nil {
		return types.Value{}, err
	}
	// The stream is released on every exit path, including error paths.
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return types.Value{}, err
	}

	value, err := types.ParseValue(data)
	if err != nil {
		return types.Value{}, &ParseError{FileName: fileName, Err: err}
	}

	if key != "" {
		value, err = value.Key(key)
		if err != nil {
			return types.Value{}, err
		}
	}

	if persist {
		execution.SetVariable(ConfigVariable, value.Export())
	}
	return value, nil
}
