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
	"fmt"

	"github.com/ip2location/ip2location-go/v9"
	"github.com/netobserv/ip2as/pkg/api"
	log "github.com/sirupsen/logrus"
)

// Locator resolves the country of an address
type Locator interface {
	Country(ip string) (string, error)
	Close()
}

type ip2locationDB struct {
	db *ip2location.DB
}

// NewLocator opens the location database configured in params.
// It returns a nil Locator when no database is configured.
func NewLocator(params api.Enrich) (Locator, error) {
	if params.LocationDB == "" {
		return nil, nil
	}
	log.Debugf("loading location DB %s", params.LocationDB)
	db, err := ip2location.OpenDB(params.LocationDB)
	if err != nil {
		return nil, fmt.Errorf("OpenDB err - %v ", err)
	}
	return &ip2locationDB{db: db}, nil
}

func (l *ip2locationDB) Country(ip string) (string, error) {
	if l.db == nil {
		return "", fmt.Errorf("no location DB available")
	}
	res, err := l.db.Get_all(ip)
	if err != nil {
		return "", err
	}
	// ip2location reports lookup failures and unknown ranges as text in the record
	if !isCountryCode(res.Country_short) {
		return "", fmt.Errorf("no country for %s: %s", ip, res.Country_short)
	}
	return res.Country_short, nil
}

// isCountryCode accepts ISO 3166-1 alpha-2 codes
func isCountryCode(code string) bool {
	if len(code) != 2 {
		return false
	}
	for i := 0; i < len(code); i++ {
		if code[i] < 'A' || code[i] > 'Z' {
			return false
		}
	}
	return true
}

func (l *ip2locationDB) Close() {
	if l.db != nil {
		l.db.Close()
	}
}
