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
	"strings"

	"github.com/scriptflow/scriptflow/utils/aes"
)

// EncryptedSuffix 加密资源的文件名后缀
// Resources whose name carries this suffix are stored AES-256 encrypted
// (hex encoded) and are decrypted transparently when fetched through an
// EncryptedStore. Other resources pass through unchanged.
const EncryptedSuffix = ".enc"

// EncryptedStore 解密底层存储里受保护资源的装饰器
// EncryptedStore decorates a Store with decryption of protected resources
// using the runtime's secret key.
type EncryptedStore struct {
	store     Store
	secretKey string
}

// NewEncryptedStore 创建解密装饰器，secretKey为AES-256密钥
func NewEncryptedStore(store Store, secretKey string) *EncryptedStore {
	return &EncryptedStore{
		store:     store,
		secretKey: secretKey,
	}
}

// GetResource 获取资源，带EncryptedSuffix后缀的资源先解密再返回
func (s *EncryptedStore) GetResource(deploymentId, name string) (io.ReadCloser, error) {
	rc, err := s.store.GetResource(deploymentId, name)
	if err != nil {
		return nil, err
	}
	if !strings.HasSuffix(name, EncryptedSuffix) {
		return rc, nil
	}
	defer rc.Close()
	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, err
	}
	plaintext, err := aes.Decrypt(string(data), []byte(s.secretKey))
	if err != nil {
		return nil, fmt.Errorf("decrypt resource %s: %w", name, err)
	}
	return io.NopCloser(strings.NewReader(plaintext)), nil
}

// ListResources 返回底层存储的资源名称
func (s *EncryptedStore) ListResources(deploymentId string) ([]string, error) {
	return s.store.ListResources(deploymentId)
}

// Ensure EncryptedStore implements the Store interface.
var _ Store = (*EncryptedStore)(nil)
