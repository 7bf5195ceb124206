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

package server

import (
	"context"
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/netobserv/ip2as/pkg/api"
	"github.com/netobserv/ip2as/pkg/operational/health"
	operationalMetrics "github.com/netobserv/ip2as/pkg/operational/metrics"
	"github.com/netobserv/ip2as/pkg/pipeline/ingest"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var requestDuration = operationalMetrics.NewHistogram(prometheus.HistogramOpts{
	Name:    "ip2as_lookup_request_duration_seconds",
	Help:    "Time spent answering /lookup requests",
	Buckets: prometheus.ExponentialBuckets(0.00001, 4, 8),
})

var rejectedRequests = operationalMetrics.NewCounter(prometheus.CounterOpts{
	Name: "ip2as_lookup_requests_rejected",
	Help: "Number of /lookup requests answered with an error status",
})

// Resolver answers queries once its AS table is loaded
type Resolver interface {
	health.Checker
	Resolve(query string) (api.Result, error)
}

type apiError struct {
	Error string `json:"error"`
}

type Server struct {
	resolver Resolver
	srv      *http.Server
}

// NewServer creates the lookup service; it only reads from resolver
func NewServer(params api.Server, resolver Resolver) *Server {
	s := &Server{resolver: resolver}
	mux := http.NewServeMux()
	healthHandler := health.NewHandler(resolver)
	mux.Handle("/live", healthHandler)
	mux.Handle("/ready", healthHandler)
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/lookup", s.handleLookup)
	s.srv = &http.Server{
		Addr:              params.Address,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

func (s *Server) Handler() http.Handler {
	return s.srv.Handler
}

// Serve listens until Shutdown is called
func (s *Server) Serve() error {
	log.Infof("lookup server: addr = %s", s.srv.Addr)
	if err := s.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}

func (s *Server) handleLookup(w http.ResponseWriter, r *http.Request) {
	timer := prometheus.NewTimer(requestDuration)
	defer timer.ObserveDuration()
	if r.Method != http.MethodGet {
		writeErr(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	query := r.URL.Query().Get("ip")
	if query == "" {
		writeErr(w, http.StatusBadRequest, "missing ip parameter")
		return
	}
	result, err := s.resolver.Resolve(query)
	switch {
	case errors.Is(err, ingest.ErrMalformed):
		writeErr(w, http.StatusBadRequest, err.Error())
	case err != nil:
		writeErr(w, http.StatusServiceUnavailable, err.Error())
	default:
		writeJSON(w, http.StatusOK, result)
	}
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeErr(w http.ResponseWriter, code int, msg string) {
	rejectedRequests.Inc()
	log.WithField("code", code).Debugf("lookup error: %s", msg)
	writeJSON(w, code, apiError{Error: msg})
}
