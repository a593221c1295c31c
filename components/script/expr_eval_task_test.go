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
	"testing"

	"github.com/scriptflow/scriptflow/api/types"
	"github.com/scriptflow/scriptflow/test"
	"github.com/scriptflow/scriptflow/test/assert"
)

func newExprEvalTask(t *testing.T, config types.Config, configuration types.Configuration) types.Task {
	task := (&ExprEvalTask{}).New()
	err := task.Init(config, configuration)
	assert.Nil(t, err)
	return task
}

func TestExprEvalTask(t *testing.T) {
	config := types.NewConfig()
	task := newExprEvalTask(t, config, types.Configuration{
		"expr":           "vars.threshold > 50",
		"resultVariable": "alarm",
	})
	defer task.Destroy()
	assert.Equal(t, ExprEvalType, task.Type())

	execution := test.NewExecution(config, nil)
	execution.SetVariable("threshold", 60)
	err := task.Execute(execution)
	assert.Nil(t, err)

	alarm, ok := execution.GetVariable("alarm")
	assert.True(t, ok)
	assert.Equal(t, true, alarm)

	execution.SetVariable("threshold", 10)
	err = task.Execute(execution)
	assert.Nil(t, err)
	alarm, _ = execution.GetVariable("alarm")
	assert.Equal(t, false, alarm)
}

func TestExprEvalTaskGlobalAndMetadata(t *testing.T) {
	config := types.NewConfig(types.WithProperties(types.Properties{"env": "prod"}))
	task := newExprEvalTask(t, config, types.Configuration{
		"expr":           `global.env + ":" + deploymentId`,
		"resultVariable": "tag",
	})
	defer task.Destroy()

	execution := test.NewExecution(config, nil)
	err := task.Execute(execution)
	assert.Nil(t, err)

	tag, _ := execution.GetVariable("tag")
	assert.Equal(t, "prod:"+test.TestDeploymentId, tag)
}

func TestExprEvalTaskInitErrors(t *testing.T) {
	task := (&ExprEvalTask{}).New()

	err := task.Init(types.NewConfig(), types.Configuration{
		"resultVariable": "out",
	})
	assert.NotNil(t, err)

	err = task.Init(types.NewConfig(), types.Configuration{
		"expr": "1 + 1",
	})
	assert.NotNil(t, err)

	err = task.Init(types.NewConfig(), types.Configuration{
		"expr":           "1 +",
		"resultVariable": "out",
	})
	assert.NotNil(t, err)
}

func TestExprEvalTaskUndefinedVariables(t *testing.T) {
	config := types.NewConfig()
	task := newExprEvalTask(t, config, types.Configuration{
		"expr":           "vars.missing == nil",
		"resultVariable": "isNil",
	})
	defer task.Destroy()

	execution := test.NewExecution(config, nil)
	err := task.Execute(execution)
	assert.Nil(t, err)

	isNil, _ := execution.GetVariable("isNil")
	assert.Equal(t, true, isNil)
}
