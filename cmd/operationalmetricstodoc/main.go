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
	"fmt"

	operationalMetrics "github.com/netobserv/ip2as/pkg/operational/metrics"
	"github.com/netobserv/ip2as/pkg/pipeline"
	"github.com/netobserv/ip2as/pkg/server"
)

func main() {
	// Do not remove these unnamed variables: linking the pipeline and server packages
	// runs the package-level metric definitions that fill up the documentation registry
	var _ *pipeline.Pipeline
	var _ *server.Server

	header := `
> Note: this file was automatically generated, to update execute "make docs"

# ip2as Operational Metrics

Each table below provides documentation for an exported ip2as operational metric.

`
	fmt.Printf("%s\n%s\n", header, operationalMetrics.GetDocumentation())
}
