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

const TagYaml = "yaml"
const TagDoc = "doc"
const TagEnum = "enum"

// Note: items beginning with doc: "## title" are top level items that get divided into sections inside api.md.

type API struct {
	Ingest  Ingest  `yaml:"ingest" doc:"## Ingest API\nFollowing is the supported API format for the AS table and query inputs:\n"`
	Resolve Resolve `yaml:"resolve" doc:"## Resolve API\nFollowing is the supported API format for the lookup engine:\n"`
	Enrich  Enrich  `yaml:"enrich" doc:"## Enrich API\nFollowing is the supported API format for result enrichment:\n"`
	Write   Write   `yaml:"write" doc:"## Write API\nFollowing is the supported API format for writing results:\n"`
	Server  Server  `yaml:"server" doc:"## Server API\nFollowing is the supported API format for the lookup service:\n"`
	Metrics Metrics `yaml:"metrics" doc:"## Metrics API\nFollowing is the supported API format for operational metrics:\n"`
}
