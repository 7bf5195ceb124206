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

package test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/netobserv/ip2as/pkg/config"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

// ASTable holds nested prefixes, a duplicated prefix and a comment
const ASTable = `# network mask AS
10.0.0.0 8 100
10.1.0.0 16 200
192.0.2.0 24 64500
192.0.2.0 24 64501
`

// Queries covers a /16 match, a /8 fallback, the overwritten /24 and a miss
const Queries = `10.1.2.3
10.2.0.0
192.0.2.77
11.0.0.0
`

// ExpectedText is the text output for ASTable and Queries
const ExpectedText = `10.1.0.0/16 200 10.1.2.3
10.0.0.0/8 100 10.2.0.0
192.0.2.0/24 64501 192.0.2.77
11.0.0.0 does not have a corresponding AS
`

// CreateFile writes content into a new file of a per-test temporary directory
func CreateFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// InitConfig reads a yaml configuration the same way the command line does and returns validated options
func InitConfig(t *testing.T, conf string) *config.Options {
	t.Helper()
	v := viper.New()
	v.SetConfigType("yaml")
	require.NoError(t, v.ReadConfig(bytes.NewReader([]byte(conf))))

	opts, err := config.Decode(v.AllSettings())
	require.NoError(t, err)
	require.NoError(t, config.ParseConfig(opts))
	return opts
}
