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

// Package deployment provides access to the resources of process deployments.
//
// A deployment is a versioned bundle of process-definition artifacts and
// resources owned by the host engine. Stores in this package only read
// resources; they never mutate a deployed bundle.
package deployment

import (
	"errors"
	"fmt"
	"io"
)

// ErrResourceNotFound 部署下不存在该资源
// ErrResourceNotFound is returned when a deployment does not contain the
// requested resource.
var ErrResourceNotFound = errors.New("resource not found")

// ErrDeploymentNotFound 部署不存在
var ErrDeploymentNotFound = errors.New("deployment not found")

// Store 部署资源存储接口
// Store resolves named resources against deployments. Implementations must
// be safe for concurrent use, because one store instance is shared by all
// executions.
type Store interface {
	// GetResource 以流的方式获取部署下的命名资源
	// GetResource fetches the named resource of a deployment as a readable
	// stream. The caller must close the stream on every exit path.
	// Returns an error wrapping ErrResourceNotFound if the deployment does
	// not contain the resource.
	GetResource(deploymentId, name string) (io.ReadCloser, error)
	// ListResources 返回部署下的所有资源名称
	ListResources(deploymentId string) ([]string, error)
}

// resourceNotFoundError 带部署和资源标识的未找到错误
func resourceNotFoundError(deploymentId, name string) error {
	return fmt.Errorf("deployment=%s resource=%s: %w", deploymentId, name, ErrResourceNotFound)
}

func deploymentNotFoundError(deploymentId string) error {
	return fmt.Errorf("deployment=%s: %w", deploymentId, ErrDeploymentNotFound)
}
