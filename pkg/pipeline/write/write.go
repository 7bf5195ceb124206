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
	"fmt"
	"io"
	"os"

	"github.com/netobserv/ip2as/pkg/api"
)

type Writer interface {
	Write(result api.Result) error
}

// NewWriter creates the writer for the configured format, writing to out (stdout when nil)
func NewWriter(params api.Write, out io.Writer) (Writer, error) {
	if out == nil {
		out = os.Stdout
	}
	switch params.Format {
	case "", api.WriteFormatName("Text"), api.WriteFormatName("JSON"), api.WriteFormatName("YAML"):
		return NewWriteStdout(params, out), nil
	}
	return nil, fmt.Errorf("unknown write format %q", params.Format)
}
