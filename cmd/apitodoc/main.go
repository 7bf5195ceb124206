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

package main

import (
	"bytes"
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/netobserv/ip2as/pkg/api"
)

func pad(indent int) string {
	return strings.Repeat(" ", 4*indent)
}

// iterate writes the yaml name and doc tag of each documented field of data.
// Fields whose doc starts with "#" open a section; enum fields list their values.
func iterate(output io.Writer, data interface{}, indent int) {
	t := reflect.TypeOf(data)
	switch t.Kind() {
	case reflect.Ptr, reflect.Slice, reflect.Map:
		// document the element type at the same depth
		iterate(output, reflect.Zero(t.Elem()).Interface(), indent)
		return
	case reflect.Struct:
	default:
		return
	}
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		name := strings.ReplaceAll(field.Tag.Get(api.TagYaml), ",omitempty", "")
		doc := field.Tag.Get(api.TagDoc)
		if doc == "" {
			continue
		}
		zero := reflect.Zero(field.Type).Interface()
		switch {
		case field.Tag.Get(api.TagEnum) != "":
			fmt.Fprintf(output, "%s %s: (enum) %s\n", pad(indent+1), name, doc)
			iterate(output, reflect.Zero(api.EnumType(field.Tag.Get(api.TagEnum))).Interface(), indent+1)
		case strings.HasPrefix(doc, "#"):
			fmt.Fprintf(output, "\n%s\n<pre>\n%s %s:\n", doc, pad(indent), name)
			iterate(output, zero, indent+1)
			fmt.Fprint(output, "</pre>")
		default:
			fmt.Fprintf(output, "%s %s: %s\n", pad(indent+1), name, doc)
			iterate(output, zero, indent+1)
		}
	}
}

func main() {
	output := new(bytes.Buffer)
	iterate(output, api.API{}, 0)
	fmt.Print(output)
}
