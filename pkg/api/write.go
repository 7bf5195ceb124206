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
	"slices"
	"strings"
)

type Write struct {
	Format string `yaml:"format" enum:"WriteFormatEnum" doc:"the format of each result, one of the following:"`
}

type WriteFormatEnum struct {
	Text string `yaml:"text" doc:"'<network>/<mask> <AS> <address>' or '<address> does not have a corresponding AS' (default)"`
	JSON string `yaml:"json" doc:"one JSON object per line"`
	YAML string `yaml:"yaml" doc:"one YAML document per result"`
}

func WriteFormatName(format string) string {
	return enumValue(WriteFormatEnum{}, format)
}

func (w *Write) SetDefaults() {
	if w.Format == "" {
		w.Format = WriteFormatName("Text")
	}
}

func (w *Write) Validate() error {
	if slices.Contains(enumValues(WriteFormatEnum{}), w.Format) {
		return nil
	}
	return fmt.Errorf("write.format: unknown format %q, expected one of %s", w.Format, strings.Join(enumValues(WriteFormatEnum{}), ", "))
}
