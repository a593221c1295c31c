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
	"bytes"
	"database/sql"
	"errors"
	"io"
	"sync"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/lib/pq"

	"github.com/scriptflow/scriptflow/utils/str"
)

const (
	// 驱动名称，mysql或postgres
	DriverMysql    = "mysql"
	DriverPostgres = "postgres"
)

const (
	getResourceSql  = "SELECT resource_data FROM deployment_resource WHERE deployment_id = ? AND resource_name = ?"
	listResourceSql = "SELECT resource_name FROM deployment_resource WHERE deployment_id = ? ORDER BY resource_name"
)

// SQLStoreConfig SQL存储配置
type SQLStoreConfig struct {
	// DriverName 数据库驱动名称，mysql或postgres
	DriverName string
	// Dsn 数据库连接配置，参考sql.Open参数
	Dsn string
	// PoolSize 连接池大小
	PoolSize int
}

// SQLStore 数据库部署资源存储
// SQLStore reads deployment resources from the deployment_resource table of
// a relational database. The client connection is established lazily on
// first use, the way shared net clients are initialized elsewhere.
type SQLStore struct {
	Config SQLStoreConfig
	client *sql.DB
	// Locker 保护懒初始化
	Locker sync.Mutex
}

// NewSQLStore 创建数据库存储实例，连接在第一次使用时建立
func NewSQLStore(config SQLStoreConfig) (*SQLStore, error) {
	if config.DriverName == "" {
		config.DriverName = DriverMysql
	}
	if config.Dsn == "" {
		return nil, errors.New("dsn can not empty")
	}
	return &SQLStore{Config: config}, nil
}

// GetResource 查询部署资源
func (s *SQLStore) GetResource(deploymentId, name string) (io.ReadCloser, error) {
	client, err := s.initClient()
	if err != nil {
		return nil, err
	}
	query := str.ConvertDollarPlaceholder(getResourceSql, s.Config.DriverName)
	var data []byte
	err = client.QueryRow(query, deploymentId, name).Scan(&data)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, resourceNotFoundError(deploymentId, name)
		}
		return nil, err
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

// ListResources 查询部署下的所有资源名称
func (s *SQLStore) ListResources(deploymentId string) ([]string, error) {
	client, err := s.initClient()
	if err != nil {
		return nil, err
	}
	query := str.ConvertDollarPlaceholder(listResourceSql, s.Config.DriverName)
	rows, err := client.Query(query, deploymentId)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var names []string
	for rows.Next() {
		var name string
		if err = rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	if names == nil {
		return nil, deploymentNotFoundError(deploymentId)
	}
	return names, nil
}

// Close 关闭数据库连接
func (s *SQLStore) Close() error {
	s.Locker.Lock()
	defer s.Locker.Unlock()
	if s.client != nil {
		err := s.client.Close()
		s.client = nil
		return err
	}
	return nil
}

// initClient 初始化客户端
func (s *SQLStore) initClient() (*sql.DB, error) {
	if s.client != nil {
		return s.client, nil
	}
	s.Locker.Lock()
	defer s.Locker.Unlock()
	if s.client != nil {
		return s.client, nil
	}
	client, err := sql.Open(s.Config.DriverName, s.Config.Dsn)
	if err != nil {
		return nil, err
	}
	if s.Config.PoolSize > 0 {
		client.SetMaxOpenConns(s.Config.PoolSize)
		client.SetMaxIdleConns(s.Config.PoolSize / 2)
	}
	if err = client.Ping(); err != nil {
		_ = client.Close()
		return nil, err
	}
	s.client = client
	return s.client, nil
}

// Ensure SQLStore implements the Store interface.
var _ Store = (*SQLStore)(nil)
