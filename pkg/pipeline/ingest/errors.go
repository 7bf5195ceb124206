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
	"fmt"

	"github.com/pkg/errors"
)

// ErrMalformed is matched by every error reporting an invalid input line.
var ErrMalformed = errors.New("malformed input")

// MalformedError reports an input line that can't be turned into a route or a query address.
type MalformedError struct {
	Source string
	Line   int
	Text   string
	Reason string
}

func (e *MalformedError) Error() string {
	if e.Source == "" {
		return fmt.Sprintf("%s: %q", e.Reason, e.Text)
	}
	return fmt.Sprintf("%s:%d: %s: %q", e.Source, e.Line, e.Reason, e.Text)
}

func (e *MalformedError) Unwrap() error {
	return ErrMalformed
}
