/*
 * Copyright (C) 2022 IBM, Inc.
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
 *
 */

package api

import (
	"fmt"
	"reflect"
)

// enums lists the enum structs referenced by the "enum" tags of the API
type enums struct {
	ResolveEngineEnum ResolveEngineEnum
	WriteFormatEnum   WriteFormatEnum
}

// enumValue returns the configuration name of one value of an enum struct.
// It panics when the enum has no such value.
func enumValue(enum interface{}, value string) string {
	field, found := reflect.TypeOf(enum).FieldByName(value)
	if !found {
		panic(fmt.Sprintf("api: %T has no value %s", enum, value))
	}
	return field.Tag.Get(TagYaml)
}

// enumValues returns every configuration name of an enum struct, in declaration order
func enumValues(enum interface{}) []string {
	t := reflect.TypeOf(enum)
	values := make([]string, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		values = append(values, t.Field(i).Tag.Get(TagYaml))
	}
	return values
}

// EnumType returns the enum struct type named by an "enum" tag
func EnumType(name string) reflect.Type {
	field, found := reflect.TypeOf(enums{}).FieldByName(name)
	if !found {
		panic(fmt.Sprintf("api: unknown enum %s", name))
	}
	return field.Type
}
