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
//	"type": "exprEval",
//	"configuration": {
//		"expr": "vars.threshold > 50",
//		"resultVariable": "alarm"
//	}
//}
import (
	"errors"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/scriptflow/scriptflow/api/types"
	"github.com/scriptflow/scriptflow/utils/maps"
)

// ExprEvalType 组件类型标识符
const ExprEvalType = "exprEval"

func init() {
	Registry.Add(&ExprEvalTask{})
}

// ExprEvalTaskConfiguration 节点配置
type ExprEvalTaskConfiguration struct {
	// Expr 求值表达式
	// 通过`vars`变量访问流程变量，例如：vars.threshold > 50
	// 通过`global`变量访问全局属性
	// 通过`processInstanceId`、`deploymentId`变量访问流程元数据
	Expr string
	// ResultVariable 求值结果写入的变量名，必填
	ResultVariable string
}

// ExprEvalTask 表达式求值任务组件
// ExprEvalTask evaluates an expr-lang expression over the execution's
// variables and stores the result into a named process variable.
type ExprEvalTask struct {
	// Config 节点配置
	Config  ExprEvalTaskConfiguration
	program *vm.Program
}

// Type 组件类型
func (x *ExprEvalTask) Type() string {
	return ExprEvalType
}

func (x *ExprEvalTask) New() types.Task {
	return &ExprEvalTask{Config: ExprEvalTaskConfiguration{}}
}

// Init 初始化，编译表达式
func (x *ExprEvalTask) Init(config types.Config, configuration types.Configuration) error {
	err := maps.Map2Struct(configuration, &x.Config)
	if err != nil {
		return err
	}
	exprV := strings.TrimSpace(x.Config.Expr)
	if exprV == "" {
		return errors.New("expr can not empty")
	}
	if x.Config.ResultVariable == "" {
		return errors.New("resultVariable can not empty")
	}
	program, err := expr.Compile(exprV, expr.AllowUndefinedVariables())
	if err != nil {
		return err
	}
	x.program = program
	return nil
}

// Execute 求值并写入结果变量
func (x *ExprEvalTask) Execute(execution types.ExecutionContext) error {
	env := map[string]interface{}{
		"vars":              execution.Variables(),
		"global":            execution.Config().Properties.Values(),
		"processInstanceId": execution.ProcessInstanceId(),
		"deploymentId":      execution.DeploymentId(),
	}
	out, err := expr.Run(x.program, env)
	if err != nil {
		return err
	}
	execution.SetVariable(x.Config.ResultVariable, out)
	return nil
}

// Destroy 清理资源
func (x *ExprEvalTask) Destroy() {
	// 无资源需要清理
}
