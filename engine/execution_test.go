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

package engine

import (
	"errors"
	"io"
	"testing"

	"github.com/scriptflow/scriptflow/api/types"
	"github.com/scriptflow/scriptflow/deployment"
	"github.com/scriptflow/scriptflow/test/assert"
	"github.com/scriptflow/scriptflow/utils/aes"
	"github.com/scriptflow/scriptflow/utils/cache"
)

func TestNewExecutionDefaults(t *testing.T) {
	config := types.NewConfig()
	store := deployment.NewMemoryStore()

	e := NewExecution(config, store, nil, "dep-1")
	assert.Equal(t, "dep-1", e.DeploymentId())
	assert.Equal(t, "", e.ProcessDefinitionId())
	// 未指定时流程实例ID通过uuid生成
	assert.True(t, e.ProcessInstanceId() != "")

	other := NewExecution(config, store, nil, "dep-1")
	assert.NotEqual(t, e.ProcessInstanceId(), other.ProcessInstanceId())
}

func TestNewExecutionOptions(t *testing.T) {
	e := NewExecution(types.NewConfig(), deployment.NewMemoryStore(), nil, "dep-1",
		WithProcessInstanceId("instance-1"),
		WithProcessDefinitionId("definition-1"),
	)
	assert.Equal(t, "instance-1", e.ProcessInstanceId())
	assert.Equal(t, "definition-1", e.ProcessDefinitionId())
}

func TestExecutionGetResource(t *testing.T) {
	store := deployment.NewMemoryStore()
	store.AddResource("dep-1", "config.json", []byte(`{"a":1}`))
	e := NewExecution(types.NewConfig(), store, nil, "dep-1")

	rc, err := e.GetResource("config.json")
	assert.Nil(t, err)
	data, _ := io.ReadAll(rc)
	assert.Nil(t, rc.Close())
	assert.Equal(t, `{"a":1}`, string(data))

	_, err = e.GetResource("missing.json")
	assert.True(t, errors.Is(err, deployment.ErrResourceNotFound))
}

func TestExecutionGetResourceWithoutStore(t *testing.T) {
	e := NewExecution(types.NewConfig(), nil, nil, "dep-1")
	_, err := e.GetResource("config.json")
	assert.NotNil(t, err)
}

func TestExecutionVariables(t *testing.T) {
	e := NewExecution(types.NewConfig(), deployment.NewMemoryStore(), nil, "dep-1")

	_, ok := e.GetVariable("a")
	assert.False(t, ok)

	e.SetVariable("a", 1)
	e.SetVariable("a", 2)
	value, ok := e.GetVariable("a")
	assert.True(t, ok)
	assert.Equal(t, 2, value)
	assert.Equal(t, map[string]interface{}{"a": 2}, e.Variables())
}

func TestExecutionSecretKey(t *testing.T) {
	secretKey := "secret"
	plaintext := `{"myProcess":{"a":1}}`
	ciphertext, err := aes.Encrypt(plaintext, []byte(secretKey))
	assert.Nil(t, err)

	store := deployment.NewMemoryStore()
	store.AddResource("dep-1", "config.json.enc", []byte(ciphertext))
	store.AddResource("dep-1", "plain.json", []byte(`{"b":2}`))

	config := types.NewConfig(types.WithSecretKey(secretKey))
	e := NewExecution(config, store, nil, "dep-1")

	// 配置了SecretKey时受保护资源自动解密
	rc, err := e.GetResource("config.json.enc")
	assert.Nil(t, err)
	data, _ := io.ReadAll(rc)
	assert.Nil(t, rc.Close())
	assert.Equal(t, plaintext, string(data))

	rc, err = e.GetResource("plain.json")
	assert.Nil(t, err)
	data, _ = io.ReadAll(rc)
	assert.Nil(t, rc.Close())
	assert.Equal(t, `{"b":2}`, string(data))
}

func TestExecutionCacheVariables(t *testing.T) {
	config := types.NewConfig(types.WithCache(cache.NewMemoryCache(0)))
	vars := NewCacheVariables(config.Cache, "instance-1")
	e := NewExecution(config, deployment.NewMemoryStore(), vars, "dep-1",
		WithProcessInstanceId("instance-1"))

	e.SetVariable("a", "x")
	value, ok := e.GetVariable("a")
	assert.True(t, ok)
	assert.Equal(t, "x", value)
}
