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
	"errors"
	"io"
	"testing"

	"github.com/scriptflow/scriptflow/test/assert"
	"github.com/scriptflow/scriptflow/utils/aes"
)

func TestEncryptedStore(t *testing.T) {
	secretKey := "secret"
	plaintext := `{"myProcess":{"a":1}}`
	ciphertext, err := aes.Encrypt(plaintext, []byte(secretKey))
	assert.Nil(t, err)

	inner := NewMemoryStore()
	inner.AddResource("dep-1", "config.json.enc", []byte(ciphertext))
	inner.AddResource("dep-1", "plain.json", []byte(`{"b":2}`))
	store := NewEncryptedStore(inner, secretKey)

	rc, err := store.GetResource("dep-1", "config.json.enc")
	assert.Nil(t, err)
	data, _ := io.ReadAll(rc)
	assert.Nil(t, rc.Close())
	assert.Equal(t, plaintext, string(data))

	// resources without the suffix pass through unchanged
	rc, err = store.GetResource("dep-1", "plain.json")
	assert.Nil(t, err)
	data, _ = io.ReadAll(rc)
	assert.Nil(t, rc.Close())
	assert.Equal(t, `{"b":2}`, string(data))

	names, err := store.ListResources("dep-1")
	assert.Nil(t, err)
	assert.Equal(t, []string{"config.json.enc", "plain.json"}, names)
}

func TestEncryptedStoreBadCiphertext(t *testing.T) {
	inner := NewMemoryStore()
	inner.AddResource("dep-1", "config.json.enc", []byte("not-hex"))
	store := NewEncryptedStore(inner, "secret")

	_, err := store.GetResource("dep-1", "config.json.enc")
	assert.NotNil(t, err)
}

func TestEncryptedStoreNotFound(t *testing.T) {
	store := NewEncryptedStore(NewMemoryStore(), "secret")
	_, err := store.GetResource("dep-1", "missing.json.enc")
	assert.True(t, errors.Is(err, ErrResourceNotFound))
}
