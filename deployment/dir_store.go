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

package deployment

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/scriptflow/scriptflow/utils/fs"
)

// DirStore 目录部署资源存储
// DirStore serves deployment resources from a directory tree: each
// subdirectory of the root is one deployment, each file inside it one
// resource. The tree is read-only from the store's point of view.
type DirStore struct {
	root string
}

// NewDirStore 创建目录存储实例，root必须是已存在的目录
func NewDirStore(root string) (*DirStore, error) {
	// 规范化root，否则带尾部分隔符的路径会使前缀校验永远失败
	root = filepath.Clean(root)
	info, err := os.Stat(root)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("deployment root is not a directory: %s", root)
	}
	return &DirStore{root: root}, nil
}

// GetResource 获取部署目录下的资源文件
func (s *DirStore) GetResource(deploymentId, name string) (io.ReadCloser, error) {
	path, err := s.resolve(deploymentId, name)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, resourceNotFoundError(deploymentId, name)
		}
		return nil, err
	}
	return f, nil
}

// ListResources 返回部署目录下的所有资源文件名，按名称排序
func (s *DirStore) ListResources(deploymentId string) ([]string, error) {
	dir, err := s.deploymentDir(deploymentId)
	if err != nil {
		return nil, err
	}
	paths, err := fs.GetFilePaths(filepath.Join(dir, "*"))
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(paths))
	for _, p := range paths {
		names = append(names, filepath.Base(p))
	}
	sort.Strings(names)
	return names, nil
}

// resolve 校验并拼接资源路径，拒绝越出部署目录的名称
func (s *DirStore) resolve(deploymentId, name string) (string, error) {
	dir, err := s.deploymentDir(deploymentId)
	if err != nil {
		return "", err
	}
	path := filepath.Join(dir, filepath.Clean(name))
	if !strings.HasPrefix(path, dir+string(os.PathSeparator)) {
		return "", resourceNotFoundError(deploymentId, name)
	}
	return path, nil
}

func (s *DirStore) deploymentDir(deploymentId string) (string, error) {
	dir := filepath.Join(s.root, filepath.Clean(deploymentId))
	if !strings.HasPrefix(dir, s.root+string(os.PathSeparator)) {
		return "", deploymentNotFoundError(deploymentId)
	}
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return "", deploymentNotFoundError(deploymentId)
	}
	return dir, nil
}

// Ensure DirStore implements the Store interface.
var _ Store = (*DirStore)(nil)
