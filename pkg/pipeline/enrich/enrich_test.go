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

package enrich

import (
	"path/filepath"
	"testing"

	"github.com/ip2location/ip2location-go/v9"
	"github.com/netobserv/ip2as/pkg/api"
	"github.com/stretchr/testify/require"
)

func TestNewLocator(t *testing.T) {
	l, err := NewLocator(api.Enrich{})
	require.NoError(t, err)
	require.Nil(t, l)

	_, err = NewLocator(api.Enrich{LocationDB: filepath.Join(t.TempDir(), "missing.BIN")})
	require.ErrorContains(t, err, "OpenDB")
}

func TestCountry(t *testing.T) {
	l := &ip2locationDB{}
	_, err := l.Country("10.1.2.3")
	require.ErrorContains(t, err, "no location DB available")

	l = &ip2locationDB{db: &ip2location.DB{}}
	country, err := l.Country("10.1.2.3")
	require.ErrorContains(t, err, "Invalid database file.")
	require.Empty(t, country)
}

func TestIsCountryCode(t *testing.T) {
	for _, tc := range []struct {
		code  string
		valid bool
	}{
		{"US", true},
		{"FR", true},
		{"-", false},
		{"", false},
		{"us", false},
		{"USA", false},
		{"Invalid database file.", false},
		{"This parameter is unavailable for selected data file. Please upgrade the data file.", false},
	} {
		t.Run(tc.code, func(t *testing.T) {
			require.Equal(t, tc.valid, isCountryCode(tc.code))
		})
	}
}
