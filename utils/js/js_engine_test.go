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

package js

import (
	"testing"
	"time"

	"github.com/scriptflow/scriptflow/api/types"
	"github.com/scriptflow/scriptflow/test/assert"
)

func TestGojaJsEngine(t *testing.T) {
	config := types.NewConfig()
	engine, err := NewGojaJsEngine(config, "function Task(a, b) { return a + b }", nil)
	assert.Nil(t, err)
	defer engine.Stop()

	out, err := engine.Execute(nil, "Task", 1, 2)
	assert.Nil(t, err)
	assert.Equal(t, int64(3), out)
}

func TestGojaJsEngineFromVars(t *testing.T) {
	config := types.NewConfig()
	fromVars := map[string]interface{}{
		types.Vars: map[string]interface{}{"ip": "127.0.0.1"},
	}
	engine, err := NewGojaJsEngine(config, "function Task() { return vars.ip }", fromVars)
	assert.Nil(t, err)
	defer engine.Stop()

	out, err := engine.Execute(nil, "Task")
	assert.Nil(t, err)
	assert.Equal(t, "127.0.0.1", out)
}

func TestGojaJsEngineGlobal(t *testing.T) {
	config := types.NewConfig(types.WithProperties(types.Properties{"env": "prod"}))
	engine, err := NewGojaJsEngine(config, "function Task() { return global.env }", nil)
	assert.Nil(t, err)
	defer engine.Stop()

	out, err := engine.Execute(nil, "Task")
	assert.Nil(t, err)
	assert.Equal(t, "prod", out)
}

func TestGojaJsEngineUdf(t *testing.T) {
	config := types.NewConfig()
	config.RegisterUdf("add", func(a, b int) int {
		return a + b
	})
	// 原生JS UDF
	config.RegisterUdf("utilsFunc", `function utilsFunc(v) { return v * 10 }`)
	// Script包装的Go函数
	config.RegisterUdf("sub", types.Script{Type: types.Js, Content: func(a, b int) int {
		return a - b
	}})

	engine, err := NewGojaJsEngine(config, "function Task() { return add(1, 2) + utilsFunc(3) + sub(5, 4) }", nil)
	assert.Nil(t, err)
	defer engine.Stop()

	out, err := engine.Execute(nil, "Task")
	assert.Nil(t, err)
	assert.Equal(t, int64(34), out)
}

func TestGojaJsEngineUdfCompileError(t *testing.T) {
	config := types.NewConfig()
	config.RegisterUdf("bad", `function bad( {`)
	_, err := NewGojaJsEngine(config, "function Task() { return 1 }", nil)
	assert.NotNil(t, err)
}

func TestGojaJsEngineNotFunction(t *testing.T) {
	engine, err := NewGojaJsEngine(types.NewConfig(), "var x = 1", nil)
	assert.Nil(t, err)
	defer engine.Stop()

	_, err = engine.Execute(nil, "Task")
	assert.NotNil(t, err)
}

func TestGojaJsEngineTimeout(t *testing.T) {
	config := types.NewConfig(types.WithScriptMaxExecutionTime(time.Millisecond * 100))
	engine, err := NewGojaJsEngine(config, "function Task() { while (true) {} }", nil)
	assert.Nil(t, err)
	defer engine.Stop()

	_, err = engine.Execute(nil, "Task")
	assert.NotNil(t, err)
}
