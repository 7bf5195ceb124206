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
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/netobserv/ip2as/pkg/api"
	"github.com/netobserv/ip2as/pkg/pipeline"
	"github.com/netobserv/ip2as/pkg/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, build bool) *httptest.Server {
	opts := test.InitConfig(t, fmt.Sprintf("ingest:\n  table: %s\n", test.CreateFile(t, "table.txt", test.ASTable)))
	p, err := pipeline.NewPipeline(opts)
	require.NoError(t, err)
	if build {
		require.NoError(t, p.Build())
	}
	ts := httptest.NewServer(NewServer(api.Server{}, p).Handler())
	t.Cleanup(ts.Close)
	return ts
}

func get(t *testing.T, url string, out any) int {
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	if out != nil {
		require.Equal(t, "application/json", resp.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

func TestLookup(t *testing.T) {
	ts := newTestServer(t, true)

	var res api.Result
	require.Equal(t, http.StatusOK, get(t, ts.URL+"/lookup?ip=10.1.2.3", &res))
	assert.Equal(t, api.Result{Query: "10.1.2.3", Matched: true, ASN: "200", MaskLen: 16, Network: "10.1.0.0"}, res)

	res = api.Result{}
	require.Equal(t, http.StatusOK, get(t, ts.URL+"/lookup?ip=11.0.0.0", &res))
	assert.Equal(t, api.Result{Query: "11.0.0.0"}, res)

	var apiErr apiError
	require.Equal(t, http.StatusBadRequest, get(t, ts.URL+"/lookup?ip=10.1", &apiErr))
	assert.Contains(t, apiErr.Error, "invalid address")

	require.Equal(t, http.StatusBadRequest, get(t, ts.URL+"/lookup", &apiErr))
	assert.Equal(t, "missing ip parameter", apiErr.Error)

	resp, err := http.Post(ts.URL+"/lookup?ip=10.1.2.3", "text/plain", nil)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}

func TestHealthAndMetrics(t *testing.T) {
	ts := newTestServer(t, false)
	assert.Equal(t, http.StatusOK, get(t, ts.URL+"/live", nil))
	assert.Equal(t, http.StatusServiceUnavailable, get(t, ts.URL+"/ready", nil))

	var apiErr apiError
	assert.Equal(t, http.StatusServiceUnavailable, get(t, ts.URL+"/lookup?ip=10.1.2.3", &apiErr))
	assert.Contains(t, apiErr.Error, "not loaded")

	ts = newTestServer(t, true)
	assert.Equal(t, http.StatusOK, get(t, ts.URL+"/ready", nil))
	assert.Equal(t, http.StatusOK, get(t, ts.URL+"/metrics", nil))
}
