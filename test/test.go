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

// Package test provides helpers for component tests.
package test

import (
	"github.com/scriptflow/scriptflow/api/types"
	"github.com/scriptflow/scriptflow/deployment"
	"github.com/scriptflow/scriptflow/engine"
)

// TestDeploymentId 测试部署ID
const TestDeploymentId = "test-deployment"

// NewExecution 创建一个基于内存部署的测试执行上下文
// NewExecution builds an execution over an in-memory deployment holding the
// given resources, for single-task tests.
func NewExecution(config types.Config, resources map[string]string) types.ExecutionContext {
	store := deployment.NewMemoryStore()
	for name, data := range resources {
		store.AddResource(TestDeploymentId, name, []byte(data))
	}
	return engine.NewExecution(config, store, nil, TestDeploymentId)
}
