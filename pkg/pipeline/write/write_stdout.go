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

	jsoniter "github.com/json-iterator/go"
	"github.com/netobserv/ip2as/pkg/api"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"
)

const noMatchSuffix = "does not have a corresponding AS"

type writeStdout struct {
	format string
	out    io.Writer
	json   jsoniter.API
	docs   int
}

// Write writes a single result in the configured format
func (t *writeStdout) Write(result api.Result) error {
	switch t.format {
	case api.WriteFormatName("JSON"):
		txt, err := t.json.Marshal(result)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(t.out, string(txt))
		return err
	case api.WriteFormatName("YAML"):
		txt, err := yaml.Marshal(result)
		if err != nil {
			return err
		}
		if t.docs > 0 {
			if _, err := fmt.Fprintln(t.out, "---"); err != nil {
				return err
			}
		}
		t.docs++
		_, err = t.out.Write(txt)
		return err
	default:
		_, err := fmt.Fprintln(t.out, FormatText(result))
		return err
	}
}

// FormatText renders a result as a single text line:
// "<network>/<mask> <AS> <query>[ <country>]" or "<query> does not have a corresponding AS"
func FormatText(result api.Result) string {
	if !result.Matched {
		return fmt.Sprintf("%s %s", result.Query, noMatchSuffix)
	}
	line := fmt.Sprintf("%s/%d %s %s", result.Network, result.MaskLen, result.ASN, result.Query)
	if result.Country != "" {
		line += " " + result.Country
	}
	return line
}

// NewWriteStdout create a new write
func NewWriteStdout(params api.Write, out io.Writer) Writer {
	log.Debugf("entering NewWriteStdout, format = %s", params.Format)
	format := params.Format
	if format == "" {
		format = api.WriteFormatName("Text")
	}
	return &writeStdout{
		format: format,
		out:    out,
		json:   jsoniter.ConfigCompatibleWithStandardLibrary,
	}
}
