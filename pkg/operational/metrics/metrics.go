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

package operationalMetrics

import (
	"fmt"
	"sort"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type metricDefinition struct {
	Name   string
	Help   string
	Type   string
	Labels []string
}

var metricsOpts []metricDefinition

func register(name, help, metricType string, labels ...string) {
	metricsOpts = append(metricsOpts, metricDefinition{
		Name:   name,
		Help:   help,
		Type:   metricType,
		Labels: labels,
	})
}

func NewCounter(opts prometheus.CounterOpts) prometheus.Counter {
	register(opts.Name, opts.Help, "counter")
	return promauto.NewCounter(opts)
}

func NewCounterVec(opts prometheus.CounterOpts, labelNames []string) *prometheus.CounterVec {
	register(opts.Name, opts.Help, "counter", labelNames...)
	return promauto.NewCounterVec(opts, labelNames)
}

func NewGauge(opts prometheus.GaugeOpts) prometheus.Gauge {
	register(opts.Name, opts.Help, "gauge")
	return promauto.NewGauge(opts)
}

func NewHistogram(opts prometheus.HistogramOpts) prometheus.Histogram {
	register(opts.Name, opts.Help, "histogram")
	return promauto.NewHistogram(opts)
}

// GetDocumentation renders every metric created through this package as markdown, sorted by name
func GetDocumentation() string {
	defs := make([]metricDefinition, len(metricsOpts))
	copy(defs, metricsOpts)
	sort.Slice(defs, func(i, j int) bool { return defs[i].Name < defs[j].Name })

	doc := ""
	for _, opts := range defs {
		labels := "none"
		if len(opts.Labels) > 0 {
			labels = strings.Join(opts.Labels, ", ")
		}
		doc += fmt.Sprintf(
			`
### %s
| **Name** | %s | 
|:---|:---|
| **Description** | %s | 
| **Type** | %s | 
| **Labels** | %s | 

`,
			opts.Name,
			opts.Name,
			opts.Help,
			opts.Type,
			labels,
		)
	}

	return doc
}
