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

package ingest

import (
	operationalMetrics "github.com/netobserv/ip2as/pkg/operational/metrics"
	"github.com/prometheus/client_golang/prometheus"
)

var recordsLoaded = operationalMetrics.NewCounterVec(prometheus.CounterOpts{
	Name: "ip2as_records_loaded",
	Help: "Number of AS table records ingested",
}, []string{"source"})

var linesSkipped = operationalMetrics.NewCounterVec(prometheus.CounterOpts{
	Name: "ip2as_lines_skipped",
	Help: "Number of malformed input lines skipped",
}, []string{"source"})
