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

package write

import (
	"github.com/netobserv/ip2as/pkg/api"
	log "github.com/sirupsen/logrus"
)

type WriteFake struct {
	AllRecords []api.Result
}

// Write stores in memory all records.
func (w *WriteFake) Write(result api.Result) error {
	log.Debugf("entering writeFake Write")
	w.AllRecords = append(w.AllRecords, result)
	return nil
}

// NewWriteFake creates a new write.
func NewWriteFake() *WriteFake {
	log.Debugf("entering NewWriteFake")
	return &WriteFake{}
}
