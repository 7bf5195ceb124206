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

const (
	DefaultServerAddress = "0.0.0.0:8080"
)

type Server struct {
	Address string `yaml:"address" doc:"listen address of the lookup service (default: 0.0.0.0:8080)"`
}

func (s *Server) SetDefaults() {
	if s.Address == "" {
		s.Address = DefaultServerAddress
	}
}

type Metrics struct {
	Port int `yaml:"port" doc:"port exposing /metrics while resolving a query list (default: disabled)"`
}
