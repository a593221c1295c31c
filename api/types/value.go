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
	"encoding/json"
	"fmt"
)

// ValueKind 结构化值的类型
// ValueKind identifies the variant held by a Value.
type ValueKind int

const (
	NullKind ValueKind = iota
	ObjectKind
	ArrayKind
	StringKind
	NumberKind
	BoolKind
)

// String returns the kind name used in error messages.
func (k ValueKind) String() string {
	switch k {
	case ObjectKind:
		return "object"
	case ArrayKind:
		return "array"
	case StringKind:
		return "string"
	case NumberKind:
		return "number"
	case BoolKind:
		return "bool"
	default:
		return "null"
	}
}

// MissingKeyError is returned when a requested top-level key does not exist
// in an object value. The lookup fails instead of returning an implicit null.
type MissingKeyError struct {
	Key string
}

func (e *MissingKeyError) Error() string {
	return "key not found: " + e.Key
}

// Value 结构化JSON值（object/array/string/number/bool/null）
// Value is a typed structured value parsed from JSON. Key access is explicit:
// absent keys fail with *MissingKeyError rather than yielding a null value.
// A Value is immutable after construction; narrowing returns sub-values that
// share no mutable state with the caller-visible result of Export.
type Value struct {
	kind ValueKind
	obj  map[string]Value
	arr  []Value
	str  string
	num  float64
	b    bool
}

// ParseValue parses UTF-8 JSON text into a Value.
func ParseValue(data []byte) (Value, error) {
	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return Value{}, err
	}
	return valueOf(raw), nil
}

// ValueOf converts plain Go values (as produced by encoding/json or by
// script engines) into a Value. Unsupported Go types become their JSON
// round-trip equivalent; conversion fails only if marshalling fails.
func ValueOf(v interface{}) (Value, error) {
	switch v.(type) {
	case nil, bool, float64, string, map[string]interface{}, []interface{}:
		return valueOf(v), nil
	}
	// Anything else goes through one JSON round trip.
	data, err := json.Marshal(v)
	if err != nil {
		return Value{}, err
	}
	return ParseValue(data)
}

func valueOf(v interface{}) Value {
	switch val := v.(type) {
	case nil:
		return Value{kind: NullKind}
	case bool:
		return Value{kind: BoolKind, b: val}
	case float64:
		return Value{kind: NumberKind, num: val}
	case string:
		return Value{kind: StringKind, str: val}
	case []interface{}:
		arr := make([]Value, len(val))
		for i, item := range val {
			arr[i] = valueOf(item)
		}
		return Value{kind: ArrayKind, arr: arr}
	case map[string]interface{}:
		obj := make(map[string]Value, len(val))
		for k, item := range val {
			obj[k] = valueOf(item)
		}
		return Value{kind: ObjectKind, obj: obj}
	default:
		// Callers reach here only through valueOf misuse; treat as null.
		return Value{kind: NullKind}
	}
}

// Kind 返回值类型
func (v Value) Kind() ValueKind {
	return v.kind
}

// IsNull 是否为null
func (v Value) IsNull() bool {
	return v.kind == NullKind
}

// Has 检查object是否存在顶层key，非object返回false
// Has reports whether the value is an object containing the given top-level key.
func (v Value) Has(key string) bool {
	if v.kind != ObjectKind {
		return false
	}
	_, ok := v.obj[key]
	return ok
}

// Key 获取object的顶层字段，key不存在返回*MissingKeyError
// Key returns the value of a top-level object field. A missing key fails
// with *MissingKeyError naming the key; a non-object value fails with a
// kind error.
func (v Value) Key(key string) (Value, error) {
	if v.kind != ObjectKind {
		return Value{}, fmt.Errorf("cannot get key %q: value is %s, not object", key, v.kind)
	}
	item, ok := v.obj[key]
	if !ok {
		return Value{}, &MissingKeyError{Key: key}
	}
	return item, nil
}

// Keys 返回object的所有顶层key，非object返回nil
func (v Value) Keys() []string {
	if v.kind != ObjectKind {
		return nil
	}
	keys := make([]string, 0, len(v.obj))
	for k := range v.obj {
		keys = append(keys, k)
	}
	return keys
}

// Index 获取array的第i个元素
func (v Value) Index(i int) (Value, error) {
	if v.kind != ArrayKind {
		return Value{}, fmt.Errorf("cannot index: value is %s, not array", v.kind)
	}
	if i < 0 || i >= len(v.arr) {
		return Value{}, fmt.Errorf("index %d out of range [0,%d)", i, len(v.arr))
	}
	return v.arr[i], nil
}

// Len 返回array长度或者object字段数，其他类型返回0
func (v Value) Len() int {
	switch v.kind {
	case ArrayKind:
		return len(v.arr)
	case ObjectKind:
		return len(v.obj)
	default:
		return 0
	}
}

// StringVal 返回string值，非string类型ok=false
func (v Value) StringVal() (string, bool) {
	return v.str, v.kind == StringKind
}

// Float64 返回number值，非number类型ok=false
func (v Value) Float64() (float64, bool) {
	return v.num, v.kind == NumberKind
}

// Bool 返回bool值，非bool类型ok=false
func (v Value) Bool() (bool, bool) {
	return v.b, v.kind == BoolKind
}

// Export 导出为普通Go值（map[string]interface{}、[]interface{}、标量）
// Export converts the value into plain Go values, the representation stored
// into process variables and handed to script engines. The returned data is
// freshly allocated on every call.
func (v Value) Export() interface{} {
	switch v.kind {
	case ObjectKind:
		m := make(map[string]interface{}, len(v.obj))
		for k, item := range v.obj {
			m[k] = item.Export()
		}
		return m
	case ArrayKind:
		s := make([]interface{}, len(v.arr))
		for i, item := range v.arr {
			s[i] = item.Export()
		}
		return s
	case StringKind:
		return v.str
	case NumberKind:
		return v.num
	case BoolKind:
		return v.b
	default:
		return nil
	}
}

// MarshalJSON implements json.Marshaler.
func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Export())
}

// UnmarshalJSON implements json.Unmarshaler.
func (v *Value) UnmarshalJSON(data []byte) error {
	parsed, err := ParseValue(data)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// String implements fmt.Stringer and returns the JSON encoding.
func (v Value) String() string {
	data, err := v.MarshalJSON()
	if err != nil {
		return ""
	}
	return string(data)
}
