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

type Resolve struct {
	Engine string `yaml:"engine" enum:"ResolveEngineEnum" doc:"lookup engine, one of the following:"`
}

type ResolveEngineEnum struct {
	Trie string `yaml:"trie" doc:"binary trie walking one address bit per level (default)"`
	Bart string `yaml:"bart" doc:"balanced routing table from github.com/gaissmai/bart"`
}

func ResolveEngineName(engine string) string {
	return enumValue(ResolveEngineEnum{}, engine)
}

func (r *Resolve) SetDefaults() {
	if r.Engine == "" {
		r.Engine = ResolveEngineName("Trie")
	}
}

func (r *Resolve) Validate() error {
	if slices.Contains(enumValues(ResolveEngineEnum{}), r.Engine) {
		return nil
	}
	return fmt.Errorf("resolve.engine: unknown engine %q, expected one of %s", r.Engine, strings.Join(enumValues(ResolveEngineEnum{}), ", "))
}
