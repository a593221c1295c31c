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

package types

import (
	"time"
)

// Config defines the configuration shared by all task components of one
// runtime instance.
type Config struct {
	// ScriptMaxExecutionTime is the maximum execution time for scripts, defaulting to 2000 milliseconds.
	ScriptMaxExecutionTime time.Duration
	// Logger is the logging interface, defaulting to `DefaultLogger()`.
	Logger Logger
	// Properties are global properties in key-value format.
	// Scripts can read them through the `global` object.
	Properties Properties
	// Udf is a map for registering custom Golang functions and native scripts that can be called
	// at runtime by script engines like JavaScript.
	// Function names can be repeated for different script types.
	Udf map[string]interface{}
	// SecretKey is an AES-256 key of up to 32 characters, used for decrypting
	// protected deployment resources.
	SecretKey string
	// Cache is a shared cache instance, used for storing runtime shared data,
	// e.g. as a backend for process variables.
	Cache Cache
}

// RegisterUdf registers a custom function. Function names can be repeated for different script types.
func (c *Config) RegisterUdf(name string, value interface{}) {
	if c.Udf == nil {
		c.Udf = make(map[string]interface{})
	}
	if script, ok := value.(Script); ok {
		// Resolve function name conflicts for different script types.
		name = script.Type + ScriptFuncSeparator + name
	}
	c.Udf[name] = value
}

// NewConfig creates a new Config with default values and applies the provided options.
func NewConfig(opts ...Option) Config {
	c := &Config{
		ScriptMaxExecutionTime: time.Millisecond * 2000,
		Logger:                 DefaultLogger(),
		Properties:             NewProperties(),
	}

	for _, opt := range opts {
		_ = opt(c)
	}
	return *c
}

// Properties 全局属性，key-value格式
// Properties holds global key-value properties of a runtime instance.
type Properties map[string]string

// NewProperties 创建一个新的全局属性实例
func NewProperties() Properties {
	return make(Properties)
}

// Has 是否存在某个key
func (p Properties) Has(key string) bool {
	_, ok := p[key]
	return ok
}

// GetValue 通过key获取值
func (p Properties) GetValue(key string) string {
	v := p[key]
	return v
}

// PutValue 设置值
func (p Properties) PutValue(key, value string) {
	if key != "" {
		p[key] = value
	}
}

// Values 获取所有值
func (p Properties) Values() map[string]string {
	return p
}
