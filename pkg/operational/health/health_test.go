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

package health

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/heptiolabs/healthcheck"
	"github.com/stretchr/testify/require"
)

type fakeChecker struct {
	ready bool
}

func (f *fakeChecker) IsAlive() healthcheck.Check {
	return func() error { return nil }
}

func (f *fakeChecker) IsReady() healthcheck.Check {
	return func() error {
		if !f.ready {
			return errors.New("not ready")
		}
		return nil
	}
}

func TestNewHandler(t *testing.T) {
	tests := []struct {
		name      string
		ready     bool
		liveCode  int
		readyCode int
	}{
		{name: "table loaded", ready: true, liveCode: http.StatusOK, readyCode: http.StatusOK},
		{name: "table not loaded", ready: false, liveCode: http.StatusOK, readyCode: http.StatusServiceUnavailable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewHandler(&fakeChecker{ready: tt.ready})

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/live", nil))
			require.Equal(t, tt.liveCode, rec.Code)

			rec = httptest.NewRecorder()
			handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ready", nil))
			require.Equal(t, tt.readyCode, rec.Code)
		})
	}
}
