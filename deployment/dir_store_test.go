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
	"os"
	"path/filepath"
	"testing"

	"github.com/scriptflow/scriptflow/test/assert"
)

func newTestDirStore(t *testing.T) *DirStore {
	root := t.TempDir()
	depDir := filepath.Join(root, "dep-1")
	_ = os.MkdirAll(depDir, 0o755)
	_ = os.WriteFile(filepath.Join(depDir, "config.json"), []byte(`{"a":1}`), 0o644)
	_ = os.WriteFile(filepath.Join(depDir, "b.json"), []byte(`{}`), 0o644)

	store, err := NewDirStore(root)
	assert.Nil(t, err)
	return store
}

func TestDirStore(t *testing.T) {
	store := newTestDirStore(t)

	rc, err := store.GetResource("dep-1", "config.json")
	assert.Nil(t, err)
	data, err := io.ReadAll(rc)
	assert.Nil(t, err)
	assert.Nil(t, rc.Close())
	assert.Equal(t, `{"a":1}`, string(data))

	names, err := store.ListResources("dep-1")
	assert.Nil(t, err)
	assert.Equal(t, []string{"b.json", "config.json"}, names)
}

func TestDirStoreNotFound(t *testing.T) {
	store := newTestDirStore(t)

	_, err := store.GetResource("dep-1", "missing.json")
	assert.True(t, errors.Is(err, ErrResourceNotFound))

	_, err = store.ListResources("dep-2")
	assert.True(t, errors.Is(err, ErrDeploymentNotFound))
}

func TestDirStoreRejectsEscapingNames(t *testing.T) {
	store := newTestDirStore(t)

	_, err := store.GetResource("dep-1", "../other/config.json")
	assert.NotNil(t, err)

	_, err = store.GetResource("../dep-1", "config.json")
	assert.NotNil(t, err)
}

func TestNewDirStoreInvalidRoot(t *testing.T) {
	_, err := NewDirStore(filepath.Join(t.TempDir(), "missing"))
	assert.NotNil(t, err)
}

func TestDirStoreTrailingSlashRoot(t *testing.T) {
	root := t.TempDir()
	depDir := filepath.Join(root, "dep-1")
	_ = os.MkdirAll(depDir, 0o755)
	_ = os.WriteFile(filepath.Join(depDir, "config.json"), []byte(`{"a":1}`), 0o644)

	store, err := NewDirStore(root + string(os.PathSeparator))
	assert.Nil(t, err)

	rc, err := store.GetResource("dep-1", "config.json")
	assert.Nil(t, err)
	data, _ := io.ReadAll(rc)
	assert.Nil(t, rc.Close())
	assert.Equal(t, `{"a":1}`, string(data))

	names, err := store.ListResources("dep-1")
	assert.Nil(t, err)
	assert.Equal(t, []string{"config.json"}, names)
}
