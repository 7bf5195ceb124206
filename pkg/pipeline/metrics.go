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

package pipeline

import (
	operationalMetrics "github.com/netobserv/ip2as/pkg/operational/metrics"
	"github.com/prometheus/client_golang/prometheus"
)

var lookupsCounter = operationalMetrics.NewCounterVec(prometheus.CounterOpts{
	Name: "ip2as_lookups_total",
	Help: "Number of resolved queries, by result (match or miss)",
}, []string{"result"})

var prefixesGauge = operationalMetrics.NewGauge(prometheus.GaugeOpts{
	Name: "ip2as_prefixes",
	Help: "Number of distinct prefixes in the lookup engine",
})

var trieNodes = operationalMetrics.NewGauge(prometheus.GaugeOpts{
	Name: "ip2as_trie_nodes",
	Help: "Number of nodes allocated by the binary trie engine",
})

var buildDuration = operationalMetrics.NewGauge(prometheus.GaugeOpts{
	Name: "ip2as_build_duration_seconds",
	Help: "Time spent loading the AS table into the lookup engine",
})
