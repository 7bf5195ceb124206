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

import "errors"

type Ingest struct {
	Table         string `yaml:"table" doc:"path of the AS table, one '<address> <mask length> <AS number>' record per line"`
	Queries       string `yaml:"queries" doc:"path of the query list, one IPv4 address per line"`
	SkipMalformed bool   `yaml:"skipMalformed" doc:"log and skip malformed lines instead of failing (default: false)"`
}

func (i *Ingest) Validate() error {
	if i.Table == "" {
		return errors.New("ingest.table can't be empty")
	}
	return nil
}
