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

package aes

import (
	"testing"

	"github.com/scriptflow/scriptflow/test/assert"
)

func TestGenerateKey(t *testing.T) {
	key := generateKey([]byte("short"))
	assert.Equal(t, 32, len(key))
	assert.Equal(t, "short000000000000000000000000000", string(key))

	key = generateKey([]byte("exactlythirtytwobyteslongkey1234"))
	assert.Equal(t, "exactlythirtytwobyteslongkey1234", string(key))
}

func TestAes(t *testing.T) {
	key := "secret"
	plaintext := `{"myProcess":{"a":1}}`

	ciphertext, err := Encrypt(plaintext, []byte(key))
	assert.Nil(t, err)
	assert.NotEqual(t, plaintext, ciphertext)

	decrypted, err := Decrypt(ciphertext, []byte(key))
	assert.Nil(t, err)
	assert.Equal(t, plaintext, decrypted)
}

func TestDecryptInvalidInput(t *testing.T) {
	_, err := Decrypt("not-hex", []byte("secret"))
	assert.NotNil(t, err)

	_, err = Decrypt("abcd", []byte("secret"))
	assert.NotNil(t, err)
}
